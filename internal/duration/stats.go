// Package duration computes aggregate duration statistics for a dataset
// manifest, resolving each referenced audio file on disk.
package duration

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/display"
)

// FileDetail records one resolved audio file and its measured duration.
type FileDetail struct {
	Path     string  `json:"path"`
	FullPath string  `json:"full_path"`
	Duration float64 `json:"duration"`
}

// Distribution buckets the per-file durations.
type Distribution struct {
	Under1s  int `json:"under_1s"`
	OneTo5s  int `json:"1s_to_5s"`
	FiveTo10 int `json:"5s_to_10s"`
	TenTo30  int `json:"10s_to_30s"`
	Over30s  int `json:"over_30s"`
}

// Results is the full analysis report. Field names match the JSON layout
// downstream training scripts already consume.
type Results struct {
	TotalDurationSeconds   float64       `json:"total_duration_seconds"`
	TotalDurationFormatted string        `json:"total_duration_formatted"`
	TotalFilesProcessed    int           `json:"total_files_processed"`
	TotalFilesErrors       int           `json:"total_files_errors"`
	ErrorFiles             []string      `json:"error_files"`
	FileDetails            []FileDetail  `json:"file_details"`
	AverageDuration        float64       `json:"average_duration,omitempty"`
	MedianDuration         float64       `json:"median_duration,omitempty"`
	MinDuration            float64       `json:"min_duration,omitempty"`
	MaxDuration            float64       `json:"max_duration,omitempty"`
	StdDeviation           float64       `json:"std_deviation,omitempty"`
	Distribution           *Distribution `json:"duration_distribution,omitempty"`
}

// Compute assembles a Results report from per-file measurements.
func Compute(details []FileDetail, errorFiles []string) *Results {
	r := &Results{
		TotalFilesProcessed: len(details),
		TotalFilesErrors:    len(errorFiles),
		ErrorFiles:          errorFiles,
		FileDetails:         details,
	}
	if r.ErrorFiles == nil {
		r.ErrorFiles = []string{}
	}
	if r.FileDetails == nil {
		r.FileDetails = []FileDetail{}
	}

	if len(details) == 0 {
		r.TotalDurationFormatted = display.FormatClock(0)
		return r
	}

	durations := make([]float64, len(details))
	for i, d := range details {
		durations[i] = d.Duration
		r.TotalDurationSeconds += d.Duration
	}
	r.TotalDurationFormatted = display.FormatClock(r.TotalDurationSeconds)

	sorted := make([]float64, len(durations))
	copy(sorted, durations)
	sort.Float64s(sorted)

	r.AverageDuration = stat.Mean(durations, nil)
	r.MedianDuration = stat.Quantile(0.5, stat.LinInterp, sorted, nil)
	r.MinDuration = sorted[0]
	r.MaxDuration = sorted[len(sorted)-1]
	if len(durations) > 1 {
		r.StdDeviation = stat.StdDev(durations, nil)
	}

	dist := &Distribution{}
	for _, d := range durations {
		switch {
		case d < 1:
			dist.Under1s++
		case d < 5:
			dist.OneTo5s++
		case d < 10:
			dist.FiveTo10++
		case d < 30:
			dist.TenTo30++
		default:
			dist.Over30s++
		}
	}
	r.Distribution = dist
	return r
}
