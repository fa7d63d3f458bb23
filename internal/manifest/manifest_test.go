package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		sep      string
		wantPath string
		wantText string
		wantOK   bool
	}{
		{"configured separator", "a.wav :: hello", "::", "a.wav", "hello", true},
		{"fallback to colon", "a.wav: hello", "::", "a.wav", "hello", true},
		{"fallback to tab", "a.wav\thello", "::", "a.wav", "hello", true},
		{"fallback to pipe", "a.wav | hello", "::", "a.wav", "hello", true},
		{"custom separator", "a.wav %% hello", "%%", "a.wav", "hello", true},
		{"no separator", "just words here", "::", "", "", false},
		{"empty line", "   ", "::", "", "", false},
		{"only first separator splits", "a.wav :: x :: y", "::", "a.wav", "x :: y", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, text, ok := ParseLine(tt.line, tt.sep)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantPath, path)
			assert.Equal(t, tt.wantText, text)
		})
	}
}

func TestLoadEntriesJSON(t *testing.T) {
	dir := t.TempDir()

	t.Run("list", func(t *testing.T) {
		path := filepath.Join(dir, "list.json")
		require.NoError(t, os.WriteFile(path, []byte(
			`[{"sentence": "one"}, {"sentence": "two"}]`), 0o644))
		entries, err := LoadEntries(path)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "one", String(entries[0], "sentence"))
	})

	t.Run("single object wrapped", func(t *testing.T) {
		path := filepath.Join(dir, "single.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"sentence": "solo"}`), 0o644))
		entries, err := LoadEntries(path)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "solo", String(entries[0], "sentence"))
	})

	t.Run("malformed", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{broken`), 0o644))
		_, err := LoadEntries(path)
		assert.Error(t, err)
	})
}

func TestLoadEntriesCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(
		"audio_path,transcription\nx.wav,hello\ny.wav,bye\n"), 0o644))

	entries, err := LoadEntries(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "x.wav", String(entries[0], "audio_path"))
	assert.Equal(t, "bye", String(entries[1], "transcription"))
}

func TestLoadEntriesUnknownFormat(t *testing.T) {
	_, err := LoadEntries("data.parquet")
	assert.Error(t, err)
}

func TestWriteJSONKeepsLiteralCharacters(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")
	require.NoError(t, WriteJSON(path, []map[string]string{{"sentence": "a < b & c"}}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "a < b & c")
}

func TestFloat(t *testing.T) {
	e := Entry{
		"f": 1.5,
		"i": 3,
		"s": "2.25",
		"x": "not a number",
	}
	f, ok := Float(e, "f")
	assert.True(t, ok)
	assert.Equal(t, 1.5, f)

	i, ok := Float(e, "i")
	assert.True(t, ok)
	assert.Equal(t, 3.0, i)

	s, ok := Float(e, "s")
	assert.True(t, ok)
	assert.Equal(t, 2.25, s)

	_, ok = Float(e, "x")
	assert.False(t, ok)
	_, ok = Float(e, "missing")
	assert.False(t, ok)
}
