package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/check"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/config"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/display"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/logging"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/naming"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/pipeline"
)

// Run is the batch entry point for the WAV converter. It discovers source
// files, converts each one next to its original, and returns aggregate
// stats.
func Run(ctx context.Context, cfg *config.ConvertConfig, log *logging.Logger) pipeline.RunStats {
	var stats pipeline.RunStats

	files, err := pipeline.Discover(cfg.InputDir, pipeline.ExtSet(InputExts), cfg.Recursive)
	if err != nil {
		log.Error("File discovery failed: %v", err)
		return stats
	}
	stats.Total = len(files)

	// ffmpeg is only the fallback route; a batch of natively decodable
	// formats must run without it.
	if NeedsFfmpeg(files) {
		if err := check.CheckDeps(true, false); err != nil {
			log.Error("%v", err)
			stats.Failed++
			return stats
		}
	}

	resolver := naming.NewCollisionResolver()

	log.Info("Found %d files", stats.Total)
	log.Info("Raw PCM interpreted as 16-bit mono at %d Hz", cfg.PCMRate)
	if cfg.DeleteOriginal {
		log.Info("Originals are deleted after conversion")
	}
	fmt.Println()

	for i, path := range files {
		stats.Current = i + 1
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}
		processFile(ctx, cfg, log, path, resolver, &stats)
	}

	logSummary(cfg, log, &stats)
	return stats
}

func processFile(
	ctx context.Context,
	cfg *config.ConvertConfig,
	log *logging.Logger,
	path string,
	resolver *naming.CollisionResolver,
	stats *pipeline.RunStats,
) {
	basename := filepath.Base(path)
	log.Info("[%d/%d] %s", stats.Current, stats.Total, basename)

	fi, err := os.Stat(path)
	if err != nil {
		log.Error("File not found: %s", path)
		stats.Failed++
		fmt.Println()
		return
	}
	if fi.Size() == 0 {
		log.Error("Empty file: %s", path)
		stats.Failed++
		fmt.Println()
		return
	}

	outputPath := naming.ReplaceExt(path, ".wav")

	if cfg.SkipExisting {
		if _, err := os.Stat(outputPath); err == nil {
			log.Warn("Skip (exists): %s", filepath.Base(outputPath))
			stats.Skipped++
			fmt.Println()
			return
		}
	}
	outputPath = resolver.Resolve(path, outputPath)

	log.Info("  -> %s", filepath.Base(outputPath))

	if cfg.DryRun {
		log.Success("[DRY] Would convert")
		stats.Processed++
		fmt.Println()
		return
	}

	start := time.Now()
	if err := convertFile(ctx, path, outputPath, cfg.PCMRate, cfg.Verbose); err != nil {
		log.Error("Conversion failed: %v", err)
		os.Remove(outputPath)
		stats.Failed++
		fmt.Println()
		return
	}

	var outSize int64
	if outInfo, err := os.Stat(outputPath); err == nil {
		outSize = outInfo.Size()
	}
	stats.TotalInputBytes += fi.Size()
	stats.TotalOutputBytes += outSize
	stats.Processed++

	log.Success("Converted in %.1fs (%s -> %s)",
		time.Since(start).Seconds(),
		display.FormatBytes(fi.Size()),
		display.FormatBytes(outSize))

	if cfg.DeleteOriginal {
		if err := os.Remove(path); err != nil {
			log.Error("Cannot delete original: %v", err)
		} else {
			log.Info("  Deleted original: %s", basename)
		}
	}
	fmt.Println()
}

func logSummary(cfg *config.ConvertConfig, log *logging.Logger, stats *pipeline.RunStats) {
	log.Info("==============================")
	log.Info("Done: %d converted, %d skipped, %d failed", stats.Processed, stats.Skipped, stats.Failed)
	if cfg.DryRun {
		log.Info("  Disk usage: n/a (dry run)")
		return
	}
	if stats.TotalOutputBytes > 0 {
		log.Info("  Input %s -> output %s (%s)",
			display.FormatBytes(stats.TotalInputBytes),
			display.FormatBytes(stats.TotalOutputBytes),
			display.FormatBytesWithSign(stats.SpaceDelta()))
	}
}
