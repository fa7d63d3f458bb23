// Package textgrid parses Praat TextGrid annotations and cuts the aligned
// WAV files into per-utterance segments.
package textgrid

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Interval is one labeled time span on a TextGrid tier.
type Interval struct {
	Start float64
	End   float64
	Text  string
}

var (
	itemPattern     = regexp.MustCompile(`item \[(\d+)\]:`)
	intervalPattern = regexp.MustCompile(`intervals \[(\d+)\]:\s*xmin = ([\d.]+)\s*xmax = ([\d.]+)\s*text = "([^"]*)"`)

	// Annotator conventions for non-speech spans.
	noisePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)<NOISE>`),
		regexp.MustCompile(`(?i)<IVER>`),
		regexp.MustCompile(`(?i)<VOCNOISE>`),
		regexp.MustCompile(`(?i)<LAUGH.*?>`),
		regexp.MustCompile(`(?i)<SIL>`),
		regexp.MustCompile(`(?i)<UNKNOWN>`),
		regexp.MustCompile(`(?i)<PRIVATE\.INFO>`),
	}
)

// IsCleanText reports whether an interval label is actual speech rather
// than a noise marker or filler. Labels under two characters are rejected.
func IsCleanText(text string) bool {
	text = strings.TrimSpace(text)
	if len(text) < 2 {
		return false
	}
	for _, p := range noisePatterns {
		if p.MatchString(text) {
			return false
		}
	}
	return true
}

// ParseTier reads a TextGrid file and returns the clean speech intervals of
// the numbered tier. Transcription corpora conventionally keep the
// utterance tier at item [4].
func ParseTier(path string, tier int) ([]Interval, error) {
	content, err := readTextGrid(path)
	if err != nil {
		return nil, err
	}

	section, ok := tierSection(content, tier)
	if !ok {
		return nil, fmt.Errorf("item [%d] not found in %s", tier, path)
	}

	var intervals []Interval
	for _, m := range intervalPattern.FindAllStringSubmatch(section, -1) {
		start, err1 := strconv.ParseFloat(m[2], 64)
		end, err2 := strconv.ParseFloat(m[3], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		text := strings.TrimSpace(m[4])
		if IsCleanText(text) {
			intervals = append(intervals, Interval{Start: start, End: end, Text: text})
		}
	}
	return intervals, nil
}

// tierSection slices the content of one "item [N]:" block, up to the next
// item header or end of file.
func tierSection(content string, tier int) (string, bool) {
	locs := itemPattern.FindAllStringSubmatchIndex(content, -1)
	for i, loc := range locs {
		n, err := strconv.Atoi(content[loc[2]:loc[3]])
		if err != nil || n != tier {
			continue
		}
		end := len(content)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		return content[loc[1]:end], true
	}
	return "", false
}

// readTextGrid loads a TextGrid file, tolerating the encodings Praat emits:
// UTF-8, UTF-16 with BOM, BOM-less UTF-16, and Latin-1.
func readTextGrid(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return decodeText(raw), nil
}

func decodeText(raw []byte) string {
	if len(raw) >= 2 {
		if raw[0] == 0xFE && raw[1] == 0xFF {
			return decodeUTF16(raw[2:], true)
		}
		if raw[0] == 0xFF && raw[1] == 0xFE {
			return decodeUTF16(raw[2:], false)
		}
	}
	if utf8.Valid(raw) {
		return strings.TrimPrefix(string(raw), "\ufeff")
	}

	// BOM-less UTF-16: ASCII-heavy TextGrid text puts zero bytes on one
	// side of every code unit.
	if len(raw) >= 4 && len(raw)%2 == 0 {
		if raw[0] == 0 {
			return decodeUTF16(raw, true)
		}
		if raw[1] == 0 {
			return decodeUTF16(raw, false)
		}
	}

	// Latin-1: every byte is the corresponding code point.
	runes := make([]rune, len(raw))
	for i, b := range raw {
		runes[i] = rune(b)
	}
	return string(runes)
}

func decodeUTF16(raw []byte, bigEndian bool) string {
	if len(raw)%2 != 0 {
		raw = raw[:len(raw)-1]
	}
	units := make([]uint16, len(raw)/2)
	for i := range units {
		if bigEndian {
			units[i] = uint16(raw[2*i])<<8 | uint16(raw[2*i+1])
		} else {
			units[i] = uint16(raw[2*i+1])<<8 | uint16(raw[2*i])
		}
	}
	return string(utf16.Decode(units))
}
