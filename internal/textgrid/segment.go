package textgrid

import (
	"math"
	"os"
	"path/filepath"

	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/audiocodec"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/naming"
)

// Segment describes one utterance cut out of a source recording.
type Segment struct {
	AudioPath        string  `json:"audio_path"`
	RelativePath     string  `json:"relative_path"`
	Transcription    string  `json:"transcription"`
	Duration         float64 `json:"duration"`
	StartTime        float64 `json:"start_time"`
	EndTime          float64 `json:"end_time"`
	OriginalTextGrid string  `json:"original_textgrid"`
	OriginalWav      string  `json:"original_wav"`
	BaseFilename     string  `json:"base_filename"`
	SegmentIndex     int     `json:"segment_index"`
	SampleRate       int     `json:"sample_rate"`
}

// Cutter slices one source WAV into per-interval files under
// outputDir/<base>/.
type Cutter struct {
	OutputDir   string
	MinDuration float64
}

// Cut writes one WAV file per interval at least MinDuration long and
// returns the saved segments. Segment indices follow the interval order, so
// skipped intervals leave gaps in the numbering.
func (c *Cutter) Cut(wavPath, textgridPath, base string, intervals []Interval) ([]Segment, error) {
	clip, err := audiocodec.ReadWAV(wavPath)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Join(c.OutputDir, base), 0o755); err != nil {
		return nil, err
	}

	absWav, _ := filepath.Abs(wavPath)
	absGrid, _ := filepath.Abs(textgridPath)

	var segments []Segment
	for i, iv := range intervals {
		piece := clip.Slice(iv.Start, iv.End)
		if piece.Duration() < c.MinDuration {
			continue
		}

		outputPath := naming.SegmentPath(c.OutputDir, base, i)
		if err := audiocodec.WriteWAV(outputPath, piece); err != nil {
			return segments, err
		}

		absOut, _ := filepath.Abs(outputPath)
		rel, err := filepath.Rel(c.OutputDir, outputPath)
		if err != nil {
			rel = filepath.Join(base, filepath.Base(outputPath))
		}

		segments = append(segments, Segment{
			AudioPath:        absOut,
			RelativePath:     rel,
			Transcription:    iv.Text,
			Duration:         round3(piece.Duration()),
			StartTime:        round3(iv.Start),
			EndTime:          round3(iv.End),
			OriginalTextGrid: absGrid,
			OriginalWav:      absWav,
			BaseFilename:     base,
			SegmentIndex:     i,
			SampleRate:       clip.SampleRate,
		})
	}
	return segments, nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
