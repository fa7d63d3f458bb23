// Package manifest reads and writes the JSON/CSV dataset manifests shared by
// the split, cleaning and statistics tools.
package manifest

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Audio describes one audio file referenced by a manifest record.
type Audio struct {
	Path         string  `json:"path"`
	SamplingRate int     `json:"sampling_rate"`
	Duration     float64 `json:"duration,omitempty"`
}

// Metadata carries segment provenance for records produced by the TextGrid
// splitter.
type Metadata struct {
	SegmentIndex     int     `json:"segment_index"`
	StartTime        float64 `json:"start_time"`
	EndTime          float64 `json:"end_time"`
	OriginalTextGrid string  `json:"original_textgrid,omitempty"`
	OriginalWav      string  `json:"original_wav,omitempty"`
	FullAudioPath    string  `json:"full_audio_path,omitempty"`
	RelativePath     string  `json:"relative_path,omitempty"`
}

// Record is one training example: an audio reference plus its transcript.
type Record struct {
	Audio    Audio     `json:"audio"`
	Sentence string    `json:"sentence"`
	Speaker  string    `json:"speaker,omitempty"`
	Metadata *Metadata `json:"metadata,omitempty"`
}

// Entry is a loosely-typed manifest row. Source manifests come from many
// pipelines and do not share a schema, so lookups go through string keys.
type Entry = map[string]any

// LoadEntries reads a manifest file into a list of entries. JSON files may
// hold either a list of objects or a single object (treated as one entry).
// CSV files are read with the first row as the header.
func LoadEntries(path string) ([]Entry, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return loadJSONEntries(path)
	case ".csv":
		return loadCSVEntries(path)
	default:
		return nil, fmt.Errorf("unsupported manifest format %q (use .csv or .json)", filepath.Ext(path))
	}
}

func loadJSONEntries(path string) ([]Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var list []Entry
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	var single Entry
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return []Entry{single}, nil
}

func loadCSVEntries(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var entries []Entry
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		e := Entry{}
		for i, name := range header {
			if i < len(row) {
				e[name] = row[i]
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// ParseLine splits one transcript manifest line into an audio path and a
// transcript. If sep is absent from the line, the usual suspects are tried
// in order: "::", ":", tab, "|". Lines with no separator report ok=false.
func ParseLine(line, sep string) (path, text string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", "", false
	}
	seps := []string{sep, "::", ":", "\t", "|"}
	for _, s := range seps {
		if s == "" {
			continue
		}
		if i := strings.Index(line, s); i >= 0 {
			return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+len(s):]), true
		}
	}
	return "", "", false
}

// WriteJSON writes v to path as indented JSON. HTML escaping is disabled so
// transcripts keep their literal characters.
func WriteJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// String returns the entry's value for key as a string, or "" when the key
// is absent or not string-like.
func String(e Entry, key string) string {
	switch v := e[key].(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return ""
	}
}

// Float returns the entry's value for key as a float64 when possible.
func Float(e Entry, key string) (float64, bool) {
	switch v := e[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		var f float64
		if _, err := fmt.Sscanf(v, "%g", &f); err == nil {
			return f, true
		}
	}
	return 0, false
}
