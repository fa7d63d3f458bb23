package jsoncombine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/config"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/logging"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/manifest"
)

func testLogger(t *testing.T) *logging.Logger {
	t.Helper()
	common := config.DefaultCommon()
	common.ColorMode = config.ColorNever
	log, err := logging.NewLogger(&common)
	require.NoError(t, err)
	t.Cleanup(func() { log.Close() })
	return log
}

func writeSplit(t *testing.T, dir, name string, sentences ...string) {
	t.Helper()
	entries := make([]manifest.Entry, len(sentences))
	for i, s := range sentences {
		entries[i] = manifest.Entry{"sentence": s}
	}
	require.NoError(t, manifest.WriteJSON(filepath.Join(dir, name), entries))
}

func TestFindAliasPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeSplit(t, dir, "training.json", "a")
	writeSplit(t, dir, "train_data.json", "b")

	path, ok := findAlias(dir, []string{"train.json", "training.json", "train_data.json"})
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "training.json"), path)

	_, ok = findAlias(dir, []string{"nope.json"})
	assert.False(t, ok)
}

func TestRunMergesAcrossDirectories(t *testing.T) {
	root := t.TempDir()
	dirA := filepath.Join(root, "a")
	dirB := filepath.Join(root, "b")
	require.NoError(t, os.MkdirAll(dirA, 0o755))
	require.NoError(t, os.MkdirAll(dirB, 0o755))

	writeSplit(t, dirA, "train.json", "a1", "a2")
	writeSplit(t, dirA, "test.json", "a3")
	writeSplit(t, dirB, "training.json", "b1")
	writeSplit(t, dirB, "validation.json", "b2")

	cfg := config.DefaultCombineConfig()
	cfg.DatasetDirs = []string{dirA, dirB}
	cfg.OutputDir = filepath.Join(root, "combined")

	stats := Run(context.Background(), &cfg, testLogger(t))
	assert.Equal(t, 2, stats.Processed)
	assert.Equal(t, 0, stats.Failed)

	train, err := manifest.LoadEntries(filepath.Join(cfg.OutputDir, "train.json"))
	require.NoError(t, err)
	require.Len(t, train, 3)
	assert.Equal(t, "a1", manifest.String(train[0], "sentence"))
	assert.Equal(t, "b1", manifest.String(train[2], "sentence"))

	test, err := manifest.LoadEntries(filepath.Join(cfg.OutputDir, "test.json"))
	require.NoError(t, err)
	assert.Len(t, test, 1)

	valid, err := manifest.LoadEntries(filepath.Join(cfg.OutputDir, "valid.json"))
	require.NoError(t, err)
	assert.Len(t, valid, 1)
}

func TestRunSkipsEmptySplitAndMissingDir(t *testing.T) {
	root := t.TempDir()
	dirA := filepath.Join(root, "a")
	require.NoError(t, os.MkdirAll(dirA, 0o755))
	writeSplit(t, dirA, "train.json", "only")

	cfg := config.DefaultCombineConfig()
	cfg.DatasetDirs = []string{dirA, filepath.Join(root, "missing")}
	cfg.OutputDir = filepath.Join(root, "combined")

	stats := Run(context.Background(), &cfg, testLogger(t))
	assert.Equal(t, 1, stats.Processed)
	assert.Equal(t, 1, stats.Skipped)

	_, err := os.Stat(filepath.Join(cfg.OutputDir, "train.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(cfg.OutputDir, "test.json"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(cfg.OutputDir, "valid.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunDryRunWritesNothing(t *testing.T) {
	root := t.TempDir()
	dirA := filepath.Join(root, "a")
	require.NoError(t, os.MkdirAll(dirA, 0o755))
	writeSplit(t, dirA, "train.json", "x")

	cfg := config.DefaultCombineConfig()
	cfg.DatasetDirs = []string{dirA}
	cfg.OutputDir = filepath.Join(root, "combined")
	cfg.DryRun = true

	Run(context.Background(), &cfg, testLogger(t))
	_, err := os.Stat(cfg.OutputDir)
	assert.True(t, os.IsNotExist(err))
}
