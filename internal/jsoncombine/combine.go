// Package jsoncombine merges the train/test/valid manifests of several
// datasets into one combined dataset directory.
package jsoncombine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/config"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/logging"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/manifest"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/pipeline"
)

// split groups the filenames different pipelines use for the same split.
// The first existing alias in a directory wins.
type split struct {
	name    string
	aliases []string
}

var splits = []split{
	{"train", []string{"train.json", "training.json", "train_data.json"}},
	{"test", []string{"test.json", "testing.json", "test_data.json"}},
	{"valid", []string{"valid.json", "validation.json", "val.json", "valid_data.json"}},
}

// Run merges the split manifests from every dataset directory and writes
// train.json, test.json and valid.json to cfg.OutputDir. A split with no
// records in any directory produces no output file.
func Run(ctx context.Context, cfg *config.CombineConfig, log *logging.Logger) pipeline.RunStats {
	var stats pipeline.RunStats
	stats.Total = len(cfg.DatasetDirs)

	combined := map[string][]manifest.Entry{}

	for i, dir := range cfg.DatasetDirs {
		stats.Current = i + 1
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		log.Info("[%d/%d] %s", stats.Current, stats.Total, dir)
		if _, err := os.Stat(dir); err != nil {
			log.Warn("Directory not found, skipping")
			stats.Skipped++
			fmt.Println()
			continue
		}

		failed := false
		for _, sp := range splits {
			path, ok := findAlias(dir, sp.aliases)
			if !ok {
				log.Warn("  No %s file found", sp.name)
				continue
			}
			entries, err := manifest.LoadEntries(path)
			if err != nil {
				log.Error("  Cannot load %s: %v", filepath.Base(path), err)
				failed = true
				continue
			}
			log.Info("  %s: %d entries", filepath.Base(path), len(entries))
			combined[sp.name] = append(combined[sp.name], entries...)
			if fi, err := os.Stat(path); err == nil {
				stats.TotalInputBytes += fi.Size()
			}
		}

		if failed {
			stats.Failed++
		} else {
			stats.Processed++
		}
		fmt.Println()
	}

	if cfg.DryRun {
		log.Success("[DRY] Would write: train %d, test %d, valid %d entries",
			len(combined["train"]), len(combined["test"]), len(combined["valid"]))
		return stats
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Error("Cannot create output directory: %v", err)
		stats.Failed++
		return stats
	}

	for _, sp := range splits {
		entries := combined[sp.name]
		if len(entries) == 0 {
			log.Warn("No data for %s.json, skipping", sp.name)
			continue
		}
		path := filepath.Join(cfg.OutputDir, sp.name+".json")
		if err := manifest.WriteJSON(path, entries); err != nil {
			log.Error("Cannot write %s: %v", path, err)
			stats.Failed++
			continue
		}
		log.Success("Saved %s with %d entries", path, len(entries))
		if fi, err := os.Stat(path); err == nil {
			stats.TotalOutputBytes += fi.Size()
		}
	}

	log.Info("==============================")
	log.Info("Done: train %d, test %d, valid %d entries",
		len(combined["train"]), len(combined["test"]), len(combined["valid"]))
	return stats
}

func findAlias(dir string, aliases []string) (string, bool) {
	for _, name := range aliases {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}
