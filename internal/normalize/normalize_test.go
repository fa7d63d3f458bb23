package normalize

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNormalizer(t *testing.T, rules Rules) *Normalizer {
	t.Helper()
	n, err := New(rules)
	require.NoError(t, err)
	return n
}

func TestText(t *testing.T) {
	n := newNormalizer(t, Rules{})

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "hello there", "hello there"},
		{"written number extracted", "costs (300)/(three hundred) won", "costs three hundred won"},
		{"repeated number patterns", "(1)/(one) and (2)/(two)", "one and two"},
		{"marker removed", "b/ hello l/ there", "hello there"},
		{"uppercase marker removed", "B/ hello", "hello"},
		{"special chars removed", "wait* what+ ok/", "wait what ok"},
		{"spaces collapsed", "too   many    spaces", "too many spaces"},
		{"leading and trailing trimmed", "  padded  ", "padded"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Text(tt.in))
		})
	}
}

func TestTextCustomReplacements(t *testing.T) {
	n := newNormalizer(t, Rules{
		CustomReplacements: map[string]string{"pct": "percent", "&": "and"},
	})
	assert.Equal(t, "five percent and six", n.Text("five pct & six"))
}

func TestTextCustomMarkerChars(t *testing.T) {
	n := newNormalizer(t, Rules{MarkerChars: "xy"})
	// Custom set replaces the default one entirely.
	assert.Equal(t, "go b go", n.Text("x/ go b/ go"))
}

func TestNewRejectsBadSpecialChars(t *testing.T) {
	_, err := New(Rules{SpecialChars: "[unclosed"})
	assert.Error(t, err)
}

func TestFilePath(t *testing.T) {
	n := newNormalizer(t, Rules{})
	assert.Equal(t, "rec/a.wav", n.FilePath("rec/a.pcm"))
	assert.Equal(t, "rec/a.wav", n.FilePath("rec/a.raw"))
	assert.Equal(t, "rec/a.wav", n.FilePath("rec/a.wav"))
	assert.Equal(t, "rec/a.mp3", n.FilePath("rec/a.mp3"))
	// Only the trailing extension is rewritten, even when the stem
	// repeats it.
	assert.Equal(t, "rec/a.pcm.wav", n.FilePath("rec/a.pcm.pcm"))
	assert.Equal(t, "rec/pcm.raw.wav", n.FilePath("rec/pcm.raw.raw"))
}

func TestEntry(t *testing.T) {
	n := newNormalizer(t, Rules{})
	assert.Equal(t, "a.wav :: one two", n.Entry("a.pcm", "(1)/(one) two", "::"))
	assert.Equal(t, "just text", n.Entry("", "just  text", "::"))
}

func TestTxtFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "transcripts.txt")
	out := filepath.Join(dir, "transcripts_normalized.txt")
	content := strings.Join([]string{
		"a.pcm :: b/ hello there",
		"",
		"b.wav :: (3)/(three) dogs",
		"no separator line here",
	}, "\n")
	require.NoError(t, os.WriteFile(in, []byte(content), 0o644))

	n := newNormalizer(t, Rules{})
	require.NoError(t, n.File(in, out, "::"))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"a.wav :: hello there",
		"b.wav :: three dogs",
		"no separator line here",
	}, "\n"), string(got))
}

func TestJSONFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "data.json")
	out := filepath.Join(dir, "data_normalized.json")
	require.NoError(t, os.WriteFile(in, []byte(`[
	  {"path": "a.pcm", "text": "b/ hi  there", "speaker": "s1"}
	]`), 0o644))

	n := newNormalizer(t, Rules{})
	require.NoError(t, n.File(in, out, "::"))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	var entries []map[string]any
	require.NoError(t, json.Unmarshal(raw, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "a.wav", entries[0]["path"])
	assert.Equal(t, "hi there", entries[0]["text"])
	assert.Equal(t, "s1", entries[0]["speaker"])
}

func TestCSVFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "data.csv")
	out := filepath.Join(dir, "data_normalized.csv")
	require.NoError(t, os.WriteFile(in, []byte(
		"audio,transcription,speaker\na.raw,(2)/(two)  cats,s1\n"), 0o644))

	n := newNormalizer(t, Rules{})
	require.NoError(t, n.File(in, out, "::"))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "audio,transcription,speaker\na.wav,two cats,s1\n", string(got))
}

func TestFileRejectsUnknownFormat(t *testing.T) {
	n := newNormalizer(t, Rules{})
	assert.Error(t, n.File("in.yaml", "out.yaml", "::"))
}

func TestLoadRules(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
	  "marker_chars": "xy",
	  "custom_replacements": {"&": "and"}
	}`), 0o644))

	rules, err := LoadRules(path)
	require.NoError(t, err)
	assert.Equal(t, "xy", rules.MarkerChars)
	assert.Equal(t, map[string]string{"&": "and"}, rules.CustomReplacements)

	_, err = LoadRules(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
