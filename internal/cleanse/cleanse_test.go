package cleanse

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

func TestContainsLatinOrDigit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"latin word", "hello", true},
		{"single digit", "둘 3 넷", true},
		{"hangul only", "안녕하세요", false},
		{"punctuation only", "...!?", false},
		{"empty", "", false},
		{"mixed script", "안녕 ok", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsLatinOrDigit(tt.text))
		})
	}
}

func TestCleanFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "train.json")
	output := filepath.Join(dir, "train_cleaned.json")

	require.NoError(t, manifest.WriteJSON(input, []manifest.Entry{
		{"text": "좋은 아침"},
		{"text": "meeting at 9"},
		{"sentence": "감사합니다"},
		{"sentence": "abc"},
		{"speaker": "s01"}, // no transcript key, dropped
	}))

	original, kept, err := CleanFile(input, output)
	require.NoError(t, err)
	assert.Equal(t, 5, original)
	assert.Equal(t, 2, kept)

	entries, err := manifest.LoadEntries(output)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "좋은 아침", manifest.String(entries[0], "text"))
	assert.Equal(t, "감사합니다", manifest.String(entries[1], "sentence"))
}

func TestCleanFilePrefersTextKey(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "valid.json")
	output := filepath.Join(dir, "valid_cleaned.json")

	// "text" wins over "sentence": the record survives even though the
	// sentence field carries Latin characters.
	require.NoError(t, manifest.WriteJSON(input, []manifest.Entry{
		{"text": "한국어", "sentence": "korean"},
	}))

	_, kept, err := CleanFile(input, output)
	require.NoError(t, err)
	assert.Equal(t, 1, kept)
}

func TestRunSummaryReportsTotalRemoval(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, manifest.WriteJSON(filepath.Join(dir, "train.json"), []manifest.Entry{
		{"text": "첫 문장"},
		{"text": "has latin"},
		{"text": "둘째 문장"},
		{"text": "ends with 7"},
	}))

	common := config.DefaultCommon()
	common.ColorMode = config.ColorNever
	common.LogFile = filepath.Join(dir, "run.log")
	log, err := logging.NewLogger(&common)
	require.NoError(t, err)

	cfg := config.DefaultCleanConfig()
	cfg.Common = common
	cfg.DatasetDir = dir

	stats := Run(context.Background(), &cfg, log)
	require.NoError(t, log.Close())
	assert.Equal(t, 1, stats.Processed)
	assert.Equal(t, 2, stats.Skipped) // valid.json and test.json absent

	raw, err := os.ReadFile(common.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Total records: 4 -> 2 (removed 2, 50.0%)")
}

func TestCleanFileMissingInput(t *testing.T) {
	dir := t.TempDir()
	_, _, err := CleanFile(filepath.Join(dir, "nope.json"), filepath.Join(dir, "out.json"))
	assert.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "out.json"))
	assert.True(t, os.IsNotExist(statErr))
}
