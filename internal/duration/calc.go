package duration

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/audiocodec"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/manifest"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/probe"
)

// pathKeys are the manifest fields that may hold an audio reference, most
// specific first.
var pathKeys = []string{"file", "filename", "audio", "path", "wav_file", "audio_file"}

// Calculator resolves manifest entries against a base directory and
// measures each file's duration.
type Calculator struct {
	BaseDir   string
	Formats   []string
	Separator string
}

// EntryPaths extracts the audio references from a manifest file. Text files
// yield the portion before the separator; JSON and CSV entries are probed
// for known path keys, then for any value that looks like an audio path.
func (c *Calculator) EntryPaths(inputFile string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(inputFile)) {
	case ".txt":
		return c.txtPaths(inputFile)
	case ".json", ".csv":
		entries, err := manifest.LoadEntries(inputFile)
		if err != nil {
			return nil, err
		}
		var paths []string
		for _, e := range entries {
			if p := c.entryPath(e); p != "" {
				paths = append(paths, p)
			}
		}
		return paths, nil
	default:
		return nil, fmt.Errorf("unsupported manifest format %q (use .txt, .csv or .json)", filepath.Ext(inputFile))
	}
}

func (c *Calculator) txtPaths(inputFile string) ([]string, error) {
	f, err := os.Open(inputFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var paths []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if p, _, ok := manifest.ParseLine(line, c.Separator); ok {
			paths = append(paths, p)
		} else {
			// A bare line is treated as a path with no transcript.
			paths = append(paths, line)
		}
	}
	return paths, scanner.Err()
}

func (c *Calculator) entryPath(e manifest.Entry) string {
	for _, key := range pathKeys {
		if v := manifest.String(e, key); v != "" {
			return v
		}
	}
	// Nested layout from the split tools.
	if a, ok := e["audio"].(map[string]any); ok {
		if v := manifest.String(a, "path"); v != "" {
			return v
		}
	}
	for _, v := range e {
		s, ok := v.(string)
		if !ok {
			continue
		}
		lower := strings.ToLower(s)
		for _, ext := range c.Formats {
			if strings.Contains(lower, ext) {
				return s
			}
		}
	}
	return ""
}

// Resolve locates the audio file on disk. The literal path under BaseDir is
// tried first, then each supported extension in place of the original one.
func (c *Calculator) Resolve(path string) (string, bool) {
	full := filepath.Join(c.BaseDir, path)
	if _, err := os.Stat(full); err == nil {
		return full, true
	}
	base := strings.TrimSuffix(full, filepath.Ext(full))
	for _, ext := range c.Formats {
		candidate := base + ext
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}

// Measure returns the duration of one audio file in seconds. WAV headers
// are read directly; everything else goes through ffprobe.
func (c *Calculator) Measure(ctx context.Context, path string) (float64, error) {
	if strings.ToLower(filepath.Ext(path)) == ".wav" {
		_, _, d, err := audiocodec.WAVInfo(path)
		if err != nil {
			return 0, err
		}
		return d, nil
	}
	pr, err := probe.Probe(ctx, path)
	if err != nil {
		return 0, err
	}
	d := pr.Duration()
	if d <= 0 {
		return 0, fmt.Errorf("no duration reported for %s", path)
	}
	return d, nil
}
