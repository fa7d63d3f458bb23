// Package naming derives output file paths (extension swaps, stem suffixes)
// and resolves collisions between inputs that map to the same output name.
package naming

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ReplaceExt swaps the extension of path for newExt (with leading dot).
// The original extension's case does not matter.
func ReplaceExt(path, newExt string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + newExt
}

// WithSuffix inserts suffix between the stem and the extension:
// "a/b/x.wav" + "_resampled" → "a/b/x_resampled.wav".
func WithSuffix(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}

// SegmentPath builds the output path for one cut segment:
// <outputDir>/<base>/<base>_NNN.wav with the index zero-padded to three
// digits, matching the legacy segment naming.
func SegmentPath(outputDir, base string, index int) string {
	return filepath.Join(outputDir, base, fmt.Sprintf("%s_%03d.wav", base, index))
}
