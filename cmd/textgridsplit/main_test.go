package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/config"
)

func TestPathResolutionThroughSymlinks(t *testing.T) {
	dir := t.TempDir()
	wavDir := filepath.Join(dir, "wavs")
	require.NoError(t, os.Mkdir(wavDir, 0o755))
	link := filepath.Join(dir, "wavs-link")
	if err := os.Symlink(wavDir, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	wavAbs, err := absPath(wavDir)
	require.NoError(t, err)

	// An output addressed through the symlink lands inside the WAV tree
	// and must be rejected, even though the directory does not exist yet.
	outAbs, err := outputAbsPath(filepath.Join(link, "segments"))
	require.NoError(t, err)
	assert.Error(t, config.ValidatePaths(wavAbs, outAbs))

	// The symlink itself resolves to the WAV directory.
	outAbs, err = outputAbsPath(link)
	require.NoError(t, err)
	assert.Error(t, config.ValidatePaths(wavAbs, outAbs))

	// A sibling output is fine whether or not it exists.
	outAbs, err = outputAbsPath(filepath.Join(dir, "segments"))
	require.NoError(t, err)
	assert.NoError(t, config.ValidatePaths(wavAbs, outAbs))
}
