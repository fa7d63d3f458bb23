// Package resample converts directories of WAV files to a uniform sample
// rate using cubic spline interpolation.
package resample

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/audiocodec"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/config"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/dsp"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/logging"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/naming"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/pipeline"
)

var wavExts = pipeline.ExtSet([]string{".wav"})

// Run resamples every WAV under cfg.InputDir to cfg.TargetRate.
func Run(ctx context.Context, cfg *config.ResampleConfig, log *logging.Logger) pipeline.RunStats {
	var stats pipeline.RunStats

	files, err := pipeline.Discover(cfg.InputDir, wavExts, cfg.Recursive)
	if err != nil {
		log.Error("File discovery failed: %v", err)
		return stats
	}
	stats.Total = len(files)

	log.Info("Found %d WAV files", stats.Total)
	log.Info("Target rate: %d Hz", cfg.TargetRate)
	if cfg.Overwrite {
		log.Info("Overwriting originals in place")
	} else {
		log.Info("Output suffix: %q", cfg.OutputSuffix)
	}
	fmt.Println()

	for i, path := range files {
		stats.Current = i + 1
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}
		processFile(cfg, log, path, &stats)
	}

	log.Info("==============================")
	log.Info("Done: %d resampled, %d skipped, %d failed", stats.Processed, stats.Skipped, stats.Failed)
	return stats
}

func processFile(cfg *config.ResampleConfig, log *logging.Logger, path string, stats *pipeline.RunStats) {
	basename := filepath.Base(path)
	log.Info("[%d/%d] %s", stats.Current, stats.Total, basename)

	outputPath := path
	if !cfg.Overwrite {
		outputPath = naming.WithSuffix(path, cfg.OutputSuffix)
		if _, err := os.Stat(outputPath); err == nil {
			log.Warn("Skip (exists): %s", filepath.Base(outputPath))
			stats.Skipped++
			fmt.Println()
			return
		}
	}

	// Header-only check avoids decoding files already at the target rate.
	rate, _, _, err := audiocodec.WAVInfo(path)
	if err != nil {
		log.Error("Cannot read WAV header: %v", err)
		stats.Failed++
		fmt.Println()
		return
	}
	if rate == cfg.TargetRate {
		log.Warn("Already at %d Hz, skipping", cfg.TargetRate)
		stats.Skipped++
		fmt.Println()
		return
	}

	if cfg.DryRun {
		log.Success("[DRY] Would resample %d Hz -> %d Hz", rate, cfg.TargetRate)
		stats.Processed++
		fmt.Println()
		return
	}

	start := time.Now()
	inFrames, outFrames, err := resampleFile(path, outputPath, cfg.TargetRate)
	if err != nil {
		log.Error("Resampling failed: %v", err)
		if !cfg.Overwrite {
			os.Remove(outputPath)
		}
		stats.Failed++
		fmt.Println()
		return
	}

	if fi, err := os.Stat(path); err == nil {
		stats.TotalInputBytes += fi.Size()
	}
	if fi, err := os.Stat(outputPath); err == nil {
		stats.TotalOutputBytes += fi.Size()
	}
	stats.Processed++

	log.Success("Resampled %d Hz -> %d Hz in %.1fs (%d -> %d frames)",
		rate, cfg.TargetRate, time.Since(start).Seconds(), inFrames, outFrames)
	if !cfg.Overwrite {
		log.Info("  -> %s", filepath.Base(outputPath))
	}
	fmt.Println()
}

// resampleFile converts one file, each channel independently.
func resampleFile(inputPath, outputPath string, targetRate int) (inFrames, outFrames int, err error) {
	clip, err := audiocodec.ReadWAV(inputPath)
	if err != nil {
		return 0, 0, err
	}
	inFrames = clip.Frames()

	channels := dsp.Deinterleave(clip.Samples, clip.Channels)
	for ch := range channels {
		channels[ch] = dsp.Resample(channels[ch], clip.SampleRate, targetRate)
	}

	out := &audiocodec.Clip{
		SampleRate: targetRate,
		Channels:   clip.Channels,
		Samples:    dsp.Interleave(channels),
	}
	if err := audiocodec.WriteWAV(outputPath, out); err != nil {
		return inFrames, 0, err
	}
	return inFrames, out.Frames(), nil
}
