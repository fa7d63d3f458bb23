package textgrid

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/config"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/manifest"
)

// manifestHeader is the column order of manifest.csv. Downstream split
// tools match these names.
var manifestHeader = []string{
	"audio_path", "relative_path", "transcription", "duration",
	"start_time", "end_time", "original_textgrid", "original_wav",
	"base_filename", "segment_index", "sample_rate",
}

// runMetadata heads the JSON manifest; the run id ties segments back to
// one invocation when manifests from several runs get merged.
type runMetadata struct {
	Run           string  `json:"run_id"`
	TotalSegments int     `json:"total_segments"`
	TotalDuration float64 `json:"total_duration"`
	TextGridDir   string  `json:"textgrid_dir"`
	WavDir        string  `json:"wav_dir"`
	OutputDir     string  `json:"output_dir"`
	MinDuration   float64 `json:"min_duration"`
}

type jsonManifest struct {
	Metadata runMetadata `json:"metadata"`
	Segments []Segment   `json:"segments"`
}

// WriteManifest records all saved segments in cfg.OutputDir, as
// manifest.csv or manifest.json depending on the configured format. The
// written path is returned.
func WriteManifest(cfg *config.SegmentConfig, segments []Segment) (string, error) {
	if cfg.ManifestFormat == config.ManifestJSON {
		return writeJSONManifest(cfg, segments)
	}
	return writeCSVManifest(cfg.OutputDir, segments)
}

func writeCSVManifest(outputDir string, segments []Segment) (string, error) {
	path := filepath.Join(outputDir, "manifest.csv")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	w := csv.NewWriter(f)
	rows := make([][]string, 0, len(segments)+1)
	rows = append(rows, manifestHeader)
	for _, s := range segments {
		rows = append(rows, []string{
			s.AudioPath,
			s.RelativePath,
			s.Transcription,
			strconv.FormatFloat(s.Duration, 'f', -1, 64),
			strconv.FormatFloat(s.StartTime, 'f', -1, 64),
			strconv.FormatFloat(s.EndTime, 'f', -1, 64),
			s.OriginalTextGrid,
			s.OriginalWav,
			s.BaseFilename,
			strconv.Itoa(s.SegmentIndex),
			strconv.Itoa(s.SampleRate),
		})
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}

func writeJSONManifest(cfg *config.SegmentConfig, segments []Segment) (string, error) {
	var total float64
	for _, s := range segments {
		total += s.Duration
	}

	absGrid, _ := filepath.Abs(cfg.TextGridDir)
	absWav, _ := filepath.Abs(cfg.WavDir)
	absOut, _ := filepath.Abs(cfg.OutputDir)

	doc := jsonManifest{
		Metadata: runMetadata{
			Run:           uuid.NewString(),
			TotalSegments: len(segments),
			TotalDuration: total,
			TextGridDir:   absGrid,
			WavDir:        absWav,
			OutputDir:     absOut,
			MinDuration:   cfg.MinDuration,
		},
		Segments: segments,
	}

	path := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := manifest.WriteJSON(path, doc); err != nil {
		return "", err
	}
	return path, nil
}
