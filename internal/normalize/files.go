package normalize

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/manifest"
)

// File normalizes one transcript file, dispatching on extension. Supported
// formats are .txt (one entry per line), .json and .csv.
func (n *Normalizer) File(inputPath, outputPath, sep string) error {
	switch strings.ToLower(filepath.Ext(inputPath)) {
	case ".txt":
		return n.txtFile(inputPath, outputPath, sep)
	case ".json":
		return n.jsonFile(inputPath, outputPath, sep)
	case ".csv":
		return n.csvFile(inputPath, outputPath)
	default:
		return fmt.Errorf("unsupported transcript format %q", filepath.Ext(inputPath))
	}
}

func (n *Normalizer) txtFile(inputPath, outputPath, sep string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	var lines []string
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		filePart, textPart, ok := manifest.ParseLine(line, sep)
		if !ok {
			// No separator: the whole line is the transcript.
			filePart, textPart = "", line
		}
		lines = append(lines, n.Entry(filePart, textPart, sep))
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return os.WriteFile(outputPath, []byte(strings.Join(lines, "\n")), 0o644)
}

func (n *Normalizer) jsonFile(inputPath, outputPath, sep string) error {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("parse %s: %w", inputPath, err)
	}
	return manifest.WriteJSON(outputPath, n.jsonValue(data, sep))
}

func (n *Normalizer) jsonValue(v any, sep string) any {
	switch val := v.(type) {
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = n.jsonValue(item, sep)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for key, item := range val {
			switch s := item.(type) {
			case string:
				if isPathKey(key) {
					out[key] = n.FilePath(s)
				} else if isTextKey(key) {
					out[key] = n.Text(s)
				} else {
					out[key] = item
				}
			default:
				out[key] = item
			}
		}
		return out
	case string:
		filePart, textPart, ok := manifest.ParseLine(val, sep)
		if !ok {
			filePart, textPart = "", strings.TrimSpace(val)
		}
		return n.Entry(filePart, textPart, sep)
	default:
		return v
	}
}

func (n *Normalizer) csvFile(inputPath, outputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	r := csv.NewReader(in)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("parse %s: %w", inputPath, err)
	}
	if len(rows) == 0 {
		return os.WriteFile(outputPath, nil, 0o644)
	}

	header := rows[0]
	for _, row := range rows[1:] {
		for i := range row {
			if i >= len(header) || row[i] == "" {
				continue
			}
			if isPathKey(header[i]) {
				row[i] = n.FilePath(row[i])
			} else if isTextKey(header[i]) {
				row[i] = n.Text(row[i])
			}
		}
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	w := csv.NewWriter(out)
	if err := w.WriteAll(rows); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
