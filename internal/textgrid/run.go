package textgrid

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/config"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/logging"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/pipeline"
)

var textGridExts = pipeline.ExtSet([]string{".textgrid"})

// Run pairs every TextGrid in cfg.TextGridDir with its WAV, cuts out the
// clean speech intervals and writes a manifest of the results.
func Run(ctx context.Context, cfg *config.SegmentConfig, log *logging.Logger) pipeline.RunStats {
	var stats pipeline.RunStats

	if cfg.DeleteOriginals && !cfg.DryRun {
		if !confirmDeletion(cfg, log) {
			log.Warn("Operation cancelled")
			return stats
		}
	}

	grids, err := pipeline.Discover(cfg.TextGridDir, textGridExts, false)
	if err != nil {
		log.Error("File discovery failed: %v", err)
		return stats
	}
	stats.Total = len(grids)
	if stats.Total == 0 {
		log.Warn("No .TextGrid files found in %s", cfg.TextGridDir)
		return stats
	}

	log.Info("Found %d TextGrid files", stats.Total)
	log.Info("Tier: item [%d], minimum segment duration: %.2fs", cfg.Tier, cfg.MinDuration)
	fmt.Println()

	if !cfg.DryRun {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			log.Error("Cannot create output directory: %v", err)
			stats.Failed++
			return stats
		}
	}

	cutter := &Cutter{OutputDir: cfg.OutputDir, MinDuration: cfg.MinDuration}

	var allSegments []Segment
	var processedPairs [][2]string

	for i, gridPath := range grids {
		stats.Current = i + 1
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		base := strings.TrimSuffix(filepath.Base(gridPath), filepath.Ext(gridPath))
		log.Info("[%d/%d] %s", stats.Current, stats.Total, filepath.Base(gridPath))

		wavPath := filepath.Join(cfg.WavDir, base+".wav")
		if _, err := os.Stat(wavPath); err != nil {
			log.Warn("No corresponding WAV file, skipping")
			stats.Skipped++
			fmt.Println()
			continue
		}

		intervals, err := ParseTier(gridPath, cfg.Tier)
		if err != nil {
			log.Error("Parse failed: %v", err)
			stats.Failed++
			fmt.Println()
			continue
		}
		if len(intervals) == 0 {
			log.Warn("No clean intervals found, skipping")
			stats.Skipped++
			fmt.Println()
			continue
		}
		log.Info("  %d clean speech intervals", len(intervals))

		if cfg.DryRun {
			log.Success("[DRY] Would cut %d segments", len(intervals))
			stats.Processed++
			fmt.Println()
			continue
		}

		segments, err := cutter.Cut(wavPath, gridPath, base, intervals)
		if err != nil {
			log.Error("Cutting failed: %v", err)
			stats.Failed++
			fmt.Println()
			continue
		}
		for _, s := range segments {
			log.Debug(cfg.Verbose, "  Saved %s (%.2fs): %q", filepath.Base(s.AudioPath), s.Duration, s.Transcription)
		}

		if fi, err := os.Stat(wavPath); err == nil {
			stats.TotalInputBytes += fi.Size()
		}
		allSegments = append(allSegments, segments...)
		processedPairs = append(processedPairs, [2]string{gridPath, wavPath})
		stats.Processed++
		log.Success("Saved %d segments from %s", len(segments), base)
		fmt.Println()
	}

	if cfg.SaveManifest && len(allSegments) > 0 && !cfg.DryRun {
		path, err := WriteManifest(cfg, allSegments)
		if err != nil {
			log.Error("Cannot write manifest: %v", err)
			stats.Failed++
		} else {
			var total float64
			for _, s := range allSegments {
				total += s.Duration
			}
			log.Success("Manifest saved: %s (%d segments, %.2fs total)", path, len(allSegments), total)
		}
	}

	if cfg.DeleteOriginals && !cfg.DryRun {
		deleteOriginals(log, processedPairs)
	}

	log.Info("==============================")
	log.Info("Done: %d processed, %d skipped, %d failed (%d segments)",
		stats.Processed, stats.Skipped, stats.Failed, len(allSegments))
	return stats
}

// confirmDeletion asks before a destructive run unless --yes was given.
func confirmDeletion(cfg *config.SegmentConfig, log *logging.Logger) bool {
	if cfg.AssumeYes {
		return true
	}
	log.Warn("Original TextGrid and WAV files will be deleted after processing")
	fmt.Print("Continue? (y/N): ")
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func deleteOriginals(log *logging.Logger, pairs [][2]string) {
	deleted := 0
	for _, pair := range pairs {
		if err := os.Remove(pair[0]); err != nil {
			log.Error("Cannot delete %s: %v", pair[0], err)
			continue
		}
		if err := os.Remove(pair[1]); err != nil {
			log.Error("Cannot delete %s: %v", pair[1], err)
			continue
		}
		deleted++
		log.Info("Deleted: %s and %s", filepath.Base(pair[0]), filepath.Base(pair[1]))
	}
	log.Info("Deleted %d pairs of original files", deleted)
}
