package normalize

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/config"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/logging"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/naming"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/pipeline"
)

var transcriptExts = pipeline.ExtSet([]string{".txt", ".json", ".csv"})

// Run normalizes every transcript file named by cfg, directly or found
// inside named directories, and returns aggregate stats.
func Run(ctx context.Context, cfg *config.NormalizeConfig, log *logging.Logger) pipeline.RunStats {
	var stats pipeline.RunStats

	rules := Rules{}
	if cfg.RulesFile != "" {
		var err error
		rules, err = LoadRules(cfg.RulesFile)
		if err != nil {
			log.Error("Cannot load rules: %v", err)
			return stats
		}
	}
	norm, err := New(rules)
	if err != nil {
		log.Error("Invalid rules: %v", err)
		return stats
	}

	files, err := collectInputs(cfg, log)
	if err != nil {
		log.Error("File discovery failed: %v", err)
		return stats
	}
	stats.Total = len(files)
	if stats.Total == 0 {
		log.Warn("No transcript files to process")
		return stats
	}

	log.Info("Found %d transcript files", stats.Total)
	log.Info("Separator: %q", cfg.Separator)
	if cfg.RulesFile != "" {
		log.Info("Rules: %s", cfg.RulesFile)
	}
	fmt.Println()

	for i, path := range files {
		stats.Current = i + 1
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}
		processFile(cfg, log, norm, path, len(files), &stats)
	}

	log.Info("==============================")
	log.Info("Done: %d normalized, %d skipped, %d failed", stats.Processed, stats.Skipped, stats.Failed)
	return stats
}

func processFile(
	cfg *config.NormalizeConfig,
	log *logging.Logger,
	norm *Normalizer,
	path string,
	total int,
	stats *pipeline.RunStats,
) {
	log.Info("[%d/%d] %s", stats.Current, stats.Total, filepath.Base(path))

	outputPath := cfg.OutputFile
	if outputPath == "" || total > 1 {
		outputPath = naming.WithSuffix(path, cfg.Suffix)
	}

	if cfg.DryRun {
		log.Success("[DRY] Would normalize -> %s", filepath.Base(outputPath))
		stats.Processed++
		fmt.Println()
		return
	}

	if err := norm.File(path, outputPath, cfg.Separator); err != nil {
		log.Error("Normalize failed: %v", err)
		stats.Failed++
		fmt.Println()
		return
	}

	if in, err := os.Stat(path); err == nil {
		stats.TotalInputBytes += in.Size()
	}
	if out, err := os.Stat(outputPath); err == nil {
		stats.TotalOutputBytes += out.Size()
	}

	stats.Processed++
	log.Success("Saved %s", filepath.Base(outputPath))
	fmt.Println()
}

func collectInputs(cfg *config.NormalizeConfig, log *logging.Logger) ([]string, error) {
	var files []string
	seen := map[string]bool{}

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, input := range cfg.Inputs {
		fi, err := os.Stat(input)
		if err != nil {
			log.Warn("Not found, skipping: %s", input)
			continue
		}
		if !fi.IsDir() {
			add(input)
			continue
		}
		found, err := pipeline.Discover(input, transcriptExts, cfg.Recursive)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			if !strings.Contains(filepath.Base(f), cfg.Suffix) {
				add(f)
			}
		}
	}
	return files, nil
}
