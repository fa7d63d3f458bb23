package duration

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/config"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/display"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/logging"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/manifest"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/pipeline"
)

// Run measures every audio file named by the manifest and reports dataset
// duration statistics.
func Run(ctx context.Context, cfg *config.DurationConfig, log *logging.Logger) pipeline.RunStats {
	var stats pipeline.RunStats

	calc := &Calculator{
		BaseDir:   cfg.AudioBaseDir,
		Formats:   cfg.Formats,
		Separator: cfg.Separator,
	}

	paths, err := calc.EntryPaths(cfg.ManifestFile)
	if err != nil {
		log.Error("Cannot read manifest: %v", err)
		stats.Failed++
		return stats
	}
	stats.Total = len(paths)
	log.Info("Analyzing %s (%d entries)", cfg.ManifestFile, len(paths))
	log.Info("Audio base directory: %s", cfg.AudioBaseDir)
	fmt.Println()

	var details []FileDetail
	var errorFiles []string

	for i, path := range paths {
		stats.Current = i + 1
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		full, ok := calc.Resolve(path)
		if !ok {
			errorFiles = append(errorFiles, fmt.Sprintf("File not found: %s", path))
			stats.Failed++
			continue
		}
		d, err := calc.Measure(ctx, full)
		if err != nil {
			errorFiles = append(errorFiles, fmt.Sprintf("Could not process: %s", full))
			stats.Failed++
			continue
		}
		details = append(details, FileDetail{Path: path, FullPath: full, Duration: d})
		if fi, err := os.Stat(full); err == nil {
			stats.TotalInputBytes += fi.Size()
		}
		stats.Processed++
	}

	results := Compute(details, errorFiles)
	report(cfg, log, results)

	if cfg.OutputFile != "" {
		if err := os.WriteFile(cfg.OutputFile, []byte(renderReport(cfg, results)), 0o644); err != nil {
			log.Error("Cannot write report: %v", err)
			stats.Failed++
		} else {
			log.Success("Report saved to %s", cfg.OutputFile)
		}
	}
	if cfg.JSONOutput != "" {
		if err := manifest.WriteJSON(cfg.JSONOutput, results); err != nil {
			log.Error("Cannot write JSON report: %v", err)
			stats.Failed++
		} else {
			log.Success("Detailed results saved to %s", cfg.JSONOutput)
		}
	}
	return stats
}

func report(cfg *config.DurationConfig, log *logging.Logger, r *Results) {
	log.Info("==============================")
	log.Info("Total duration: %s (%.1fs)", r.TotalDurationFormatted, r.TotalDurationSeconds)
	log.Info("Files processed: %d", r.TotalFilesProcessed)
	if r.TotalFilesErrors > 0 {
		log.Warn("Files with errors: %d", r.TotalFilesErrors)
	}

	if r.Distribution != nil {
		log.Info("Mean %s | median %s | min %s | max %s | stddev %.3fs",
			display.FormatClock(r.AverageDuration),
			display.FormatClock(r.MedianDuration),
			display.FormatClock(r.MinDuration),
			display.FormatClock(r.MaxDuration),
			r.StdDeviation)
		d := r.Distribution
		log.Info("Distribution: <1s: %d | 1-5s: %d | 5-10s: %d | 10-30s: %d | >=30s: %d",
			d.Under1s, d.OneTo5s, d.FiveTo10, d.TenTo30, d.Over30s)

		// Clips under a second are usually segmentation mistakes.
		if r.TotalFilesProcessed > 0 && d.Under1s*10 > r.TotalFilesProcessed {
			log.Outlier("More than 10%% of clips are under 1s (%d of %d)", d.Under1s, r.TotalFilesProcessed)
		}
	}

	for _, e := range r.ErrorFiles {
		log.Error("  %s", e)
	}

	if cfg.Verbose && len(r.FileDetails) > 0 {
		log.Debug(true, "File details:")
		limit := len(r.FileDetails)
		if limit > 10 {
			limit = 10
		}
		for _, fd := range r.FileDetails[:limit] {
			log.Debug(true, "  %s: %s", fd.Path, display.FormatClock(fd.Duration))
		}
		if len(r.FileDetails) > 10 {
			log.Debug(true, "  ... and %d more files", len(r.FileDetails)-10)
		}
	}
}

// renderReport builds the plain-text report written with --output.
func renderReport(cfg *config.DurationConfig, r *Results) string {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line(strings.Repeat("=", 60))
	line("DATASET DURATION ANALYSIS")
	line(strings.Repeat("=", 60))
	line("Total Duration: %s", r.TotalDurationFormatted)
	line("Total Files Processed: %d", r.TotalFilesProcessed)
	line("Files with Errors: %d", r.TotalFilesErrors)

	if r.Distribution != nil {
		line("")
		line("STATISTICS:")
		line("Average Duration: %s", display.FormatClock(r.AverageDuration))
		line("Median Duration: %s", display.FormatClock(r.MedianDuration))
		line("Min Duration: %s", display.FormatClock(r.MinDuration))
		line("Max Duration: %s", display.FormatClock(r.MaxDuration))
		line("Standard Deviation: %.3fs", r.StdDeviation)
		line("")
		line("DURATION DISTRIBUTION:")
		d := r.Distribution
		line("Under 1s: %d files", d.Under1s)
		line("1s to 5s: %d files", d.OneTo5s)
		line("5s to 10s: %d files", d.FiveTo10)
		line("10s to 30s: %d files", d.TenTo30)
		line("Over 30s: %d files", d.Over30s)
	}

	if len(r.ErrorFiles) > 0 {
		line("")
		line("ERROR FILES:")
		for _, e := range r.ErrorFiles {
			line("  %s", e)
		}
	}
	return b.String()
}
