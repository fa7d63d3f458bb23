package datasplit

import (
	"context"
	"os"
	"path/filepath"

	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/config"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/logging"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/manifest"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/pipeline"
)

// Run loads the input manifest, converts every entry, splits the records
// and writes train.json, test.json and valid.json to cfg.OutputDir.
func Run(ctx context.Context, cfg *config.SplitConfig, log *logging.Logger) pipeline.RunStats {
	var stats pipeline.RunStats

	entries, err := manifest.LoadEntries(cfg.InputFile)
	if err != nil {
		log.Error("Cannot load manifest: %v", err)
		stats.Failed++
		return stats
	}
	stats.Total = len(entries)
	log.Info("Loaded %d entries from %s", len(entries), cfg.InputFile)

	records := make([]manifest.Record, 0, len(entries))
	for _, e := range entries {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			return stats
		}
		records = append(records, Convert(e, cfg))
	}

	var train, test, valid []manifest.Record
	if cfg.BySpeaker {
		train, test, valid = SplitBySpeaker(records, cfg.TrainRatio, cfg.TestRatio, cfg.Seed)
		log.Info("Split by speaker: %d train, %d test, %d valid speakers",
			CountSpeakers(train), CountSpeakers(test), CountSpeakers(valid))
	} else {
		train, test, valid = SplitRandom(records, cfg.TrainRatio, cfg.TestRatio, cfg.Seed)
		log.Info("Split randomly (seed %d)", cfg.Seed)
	}

	if cfg.DryRun {
		log.Success("[DRY] Would write: train %d, test %d, valid %d entries", len(train), len(test), len(valid))
		stats.Processed = len(records)
		return stats
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Error("Cannot create output directory: %v", err)
		stats.Failed++
		return stats
	}

	outputs := []struct {
		name string
		set  []manifest.Record
	}{
		{"train.json", train},
		{"test.json", test},
		{"valid.json", valid},
	}
	for _, out := range outputs {
		path := filepath.Join(cfg.OutputDir, out.name)
		// Empty sets still produce a file, as [] rather than null.
		set := out.set
		if set == nil {
			set = []manifest.Record{}
		}
		if err := manifest.WriteJSON(path, set); err != nil {
			log.Error("Cannot write %s: %v", out.name, err)
			stats.Failed++
			return stats
		}
		log.Success("  %s: %d entries", out.name, len(out.set))
		if fi, err := os.Stat(path); err == nil {
			stats.TotalOutputBytes += fi.Size()
		}
	}

	stats.Processed = len(records)
	log.Info("==============================")
	log.Info("Done: %d entries split into %d/%d/%d", len(records), len(train), len(test), len(valid))
	return stats
}
