// Package pipeline provides the batch plumbing shared by every tool: input
// discovery and aggregate run statistics.
package pipeline

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover collects files under inputDir whose lowercase extension is in
// exts, and returns the paths sorted lexicographically for deterministic
// processing order. When recursive is false only the top-level directory is
// scanned, matching the legacy --no-recursive behavior.
func Discover(inputDir string, exts map[string]bool, recursive bool) ([]string, error) {
	var files []string

	if !recursive {
		entries, err := os.ReadDir(inputDir)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if exts[strings.ToLower(filepath.Ext(e.Name()))] {
				files = append(files, filepath.Join(inputDir, e.Name()))
			}
		}
		sort.Strings(files)
		return files, nil
	}

	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if exts[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ExtSet builds an extension lookup set from a list of extensions, normalized
// to lowercase with a leading dot.
func ExtSet(exts []string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		set[e] = true
	}
	return set
}
