// Package cleanse drops manifest records whose transcript contains Latin
// letters or digits, leaving a monolingual corpus behind.
package cleanse

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/config"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/logging"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/manifest"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/pipeline"
)

var latinOrDigit = regexp.MustCompile(`[a-zA-Z0-9]`)

// splitFiles are the manifests a dataset split produces; each is cleaned
// independently and missing ones are skipped.
var splitFiles = []string{"train.json", "valid.json", "test.json"}

// ContainsLatinOrDigit reports whether text contains an ASCII letter or
// digit.
func ContainsLatinOrDigit(text string) bool {
	return latinOrDigit.MatchString(text)
}

// transcript pulls the transcript out of a record, trying the keys the
// split tools emit.
func transcript(e manifest.Entry) (string, bool) {
	for _, key := range []string{"text", "sentence"} {
		if v, ok := e[key]; ok {
			if s, ok := v.(string); ok {
				return s, true
			}
		}
	}
	return "", false
}

// CleanFile filters one manifest and writes the survivors to outputPath.
// It returns the original and kept record counts.
func CleanFile(inputPath, outputPath string) (original, kept int, err error) {
	entries, err := manifest.LoadEntries(inputPath)
	if err != nil {
		return 0, 0, err
	}

	cleaned := make([]manifest.Entry, 0, len(entries))
	for _, e := range entries {
		text, ok := transcript(e)
		if !ok {
			continue
		}
		if !ContainsLatinOrDigit(text) {
			cleaned = append(cleaned, e)
		}
	}

	if err := manifest.WriteJSON(outputPath, cleaned); err != nil {
		return len(entries), len(cleaned), err
	}
	return len(entries), len(cleaned), nil
}

// Run cleans the train/valid/test manifests in cfg.DatasetDir.
func Run(ctx context.Context, cfg *config.CleanConfig, log *logging.Logger) pipeline.RunStats {
	var stats pipeline.RunStats
	stats.Total = len(splitFiles)

	var totalOriginal, totalKept int

	log.Info("Removing records with Latin letters or digits in the transcript")
	fmt.Println()

	for i, name := range splitFiles {
		stats.Current = i + 1
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		inputPath := filepath.Join(cfg.DatasetDir, name)
		log.Info("[%d/%d] %s", stats.Current, stats.Total, name)

		if _, err := os.Stat(inputPath); err != nil {
			log.Warn("Not found, skipping")
			stats.Skipped++
			fmt.Println()
			continue
		}

		base := strings.TrimSuffix(name, ".json")
		outputPath := filepath.Join(cfg.DatasetDir, base+cfg.Suffix+".json")

		if cfg.DryRun {
			log.Success("[DRY] Would clean -> %s", filepath.Base(outputPath))
			stats.Processed++
			fmt.Println()
			continue
		}

		original, kept, err := CleanFile(inputPath, outputPath)
		if err != nil {
			log.Error("Clean failed: %v", err)
			stats.Failed++
			fmt.Println()
			continue
		}

		removed := original - kept
		pct := 0.0
		if original > 0 {
			pct = float64(removed) / float64(original) * 100
		}
		log.Success("Kept %d of %d records (removed %d, %.1f%%)", kept, original, removed, pct)
		log.Info("  -> %s", filepath.Base(outputPath))
		totalOriginal += original
		totalKept += kept
		stats.Processed++
		fmt.Println()
	}

	log.Info("==============================")
	log.Info("Done: %d cleaned, %d skipped, %d failed", stats.Processed, stats.Skipped, stats.Failed)
	if totalOriginal > 0 {
		totalRemoved := totalOriginal - totalKept
		log.Info("  Total records: %d -> %d (removed %d, %.1f%%)",
			totalOriginal, totalKept, totalRemoved,
			float64(totalRemoved)/float64(totalOriginal)*100)
	}
	return stats
}
