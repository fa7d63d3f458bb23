// Package normalize cleans corpus transcripts: written-number extraction,
// annotation marker removal, special character stripping and whitespace
// collapsing, with optional rule overrides from a JSON file.
package normalize

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

// Rules overrides the built-in normalization behavior. All fields are
// optional; zero values fall back to the defaults.
type Rules struct {
	// MarkerChars are the single-letter annotation prefixes removed when
	// followed by a slash (for example "b/" or "N/").
	MarkerChars string `json:"marker_chars,omitempty"`

	// SpecialChars is a regular expression matching characters to delete.
	SpecialChars string `json:"special_chars,omitempty"`

	// CustomReplacements are applied verbatim after the built-in rules,
	// in sorted key order.
	CustomReplacements map[string]string `json:"custom_replacements,omitempty"`

	// ExtensionReplacements rewrite audio path suffixes, such as raw PCM
	// extensions that a prior conversion turned into .wav.
	ExtensionReplacements map[string]string `json:"extension_replacements,omitempty"`
}

// LoadRules reads a Rules JSON file.
func LoadRules(path string) (Rules, error) {
	var r Rules
	raw, err := os.ReadFile(path)
	if err != nil {
		return r, err
	}
	if err := json.Unmarshal(raw, &r); err != nil {
		return r, fmt.Errorf("parse rules %s: %w", path, err)
	}
	return r, nil
}

// Normalizer applies transcript cleanup rules.
type Normalizer struct {
	numberPattern  *regexp.Regexp
	markerPattern  *regexp.Regexp
	specialPattern *regexp.Regexp
	spacePattern   *regexp.Regexp

	replacements []replacement
	extensions   []replacement
}

type replacement struct {
	old, new string
}

// New builds a Normalizer from rules. Invalid configured patterns are
// reported rather than silently ignored.
func New(rules Rules) (*Normalizer, error) {
	markerChars := rules.MarkerChars
	if markerChars == "" {
		markerChars = "blnourw"
	}
	markerPattern, err := regexp.Compile("(?i)[" + regexp.QuoteMeta(markerChars) + "]/")
	if err != nil {
		return nil, fmt.Errorf("marker_chars %q: %w", markerChars, err)
	}

	specialChars := rules.SpecialChars
	if specialChars == "" {
		specialChars = `[/*+]`
	}
	specialPattern, err := regexp.Compile(specialChars)
	if err != nil {
		return nil, fmt.Errorf("special_chars %q: %w", specialChars, err)
	}

	n := &Normalizer{
		numberPattern:  regexp.MustCompile(`\(.*?\)/\((.*?)\)`),
		markerPattern:  markerPattern,
		specialPattern: specialPattern,
		spacePattern:   regexp.MustCompile(` +`),
		replacements:   sortedReplacements(rules.CustomReplacements),
		extensions:     sortedReplacements(rules.ExtensionReplacements),
	}
	if len(n.extensions) == 0 {
		n.extensions = []replacement{{".pcm", ".wav"}, {".raw", ".wav"}}
	}
	return n, nil
}

func sortedReplacements(m map[string]string) []replacement {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]replacement, 0, len(keys))
	for _, k := range keys {
		out = append(out, replacement{k, m[k]})
	}
	return out
}

// Text normalizes one transcript. Alternatives written as
// "(digits)/(words)" collapse to the spoken form, repeatedly, so nested
// occurrences resolve too.
func (n *Normalizer) Text(text string) string {
	for n.numberPattern.MatchString(text) {
		text = n.numberPattern.ReplaceAllString(text, "${1}")
	}
	text = n.markerPattern.ReplaceAllString(text, "")
	text = n.specialPattern.ReplaceAllString(text, "")
	text = n.spacePattern.ReplaceAllString(text, " ")
	for _, r := range n.replacements {
		text = strings.ReplaceAll(text, r.old, r.new)
	}
	return strings.TrimSpace(text)
}

// FilePath rewrites the audio path portion of an entry, swapping stale
// extensions for their converted forms.
func (n *Normalizer) FilePath(path string) string {
	for _, r := range n.extensions {
		if strings.HasSuffix(path, r.old) {
			path = strings.TrimSuffix(path, r.old) + r.new
		}
	}
	return path
}

// Entry normalizes a "path <sep> transcript" pair back into one line.
func (n *Normalizer) Entry(filePart, textPart, sep string) string {
	textPart = n.Text(textPart)
	if filePart == "" {
		return textPart
	}
	return fmt.Sprintf("%s %s %s", n.FilePath(filePart), sep, textPart)
}

func isPathKey(key string) bool {
	switch strings.ToLower(key) {
	case "file", "filename", "audio", "path":
		return true
	}
	return false
}

func isTextKey(key string) bool {
	switch strings.ToLower(key) {
	case "transcription", "text", "transcript":
		return true
	}
	return false
}
