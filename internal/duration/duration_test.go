package duration

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/audiocodec"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/manifest"
)

func detail(d float64) FileDetail {
	return FileDetail{Path: "x.wav", FullPath: "/data/x.wav", Duration: d}
}

func TestComputeEmpty(t *testing.T) {
	r := Compute(nil, nil)
	assert.Equal(t, 0, r.TotalFilesProcessed)
	assert.Equal(t, 0, r.TotalFilesErrors)
	assert.Equal(t, "00:00:00.000", r.TotalDurationFormatted)
	assert.NotNil(t, r.ErrorFiles)
	assert.NotNil(t, r.FileDetails)
	assert.Nil(t, r.Distribution)
}

func TestComputeStats(t *testing.T) {
	details := []FileDetail{detail(1), detail(2), detail(3), detail(4)}
	r := Compute(details, []string{"gone.wav"})

	assert.Equal(t, 4, r.TotalFilesProcessed)
	assert.Equal(t, 1, r.TotalFilesErrors)
	assert.Equal(t, 10.0, r.TotalDurationSeconds)
	assert.Equal(t, "00:00:10.000", r.TotalDurationFormatted)
	assert.Equal(t, 2.5, r.AverageDuration)
	assert.Equal(t, 2.5, r.MedianDuration)
	assert.Equal(t, 1.0, r.MinDuration)
	assert.Equal(t, 4.0, r.MaxDuration)
	assert.InDelta(t, math.Sqrt(5.0/3.0), r.StdDeviation, 1e-12)
}

func TestComputeSingleFile(t *testing.T) {
	r := Compute([]FileDetail{detail(2.5)}, nil)
	assert.Equal(t, 2.5, r.MinDuration)
	assert.Equal(t, 2.5, r.MaxDuration)
	assert.Equal(t, 2.5, r.MedianDuration)
	assert.Zero(t, r.StdDeviation)
}

func TestComputeDistribution(t *testing.T) {
	details := []FileDetail{
		detail(0.4), detail(0.99),
		detail(1.0), detail(4.99),
		detail(5.0), detail(9.5),
		detail(10.0), detail(29.9),
		detail(30.0), detail(120),
	}
	r := Compute(details, nil)
	require.NotNil(t, r.Distribution)
	assert.Equal(t, 2, r.Distribution.Under1s)
	assert.Equal(t, 2, r.Distribution.OneTo5s)
	assert.Equal(t, 2, r.Distribution.FiveTo10)
	assert.Equal(t, 2, r.Distribution.TenTo30)
	assert.Equal(t, 2, r.Distribution.Over30s)
}

func TestEntryPathsTxt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.txt")
	require.NoError(t, os.WriteFile(path, []byte(
		"a.wav :: first line\n\nb.wav :: second\nc.wav\n"), 0o644))

	c := &Calculator{Separator: "::", Formats: []string{".wav"}}
	paths, err := c.EntryPaths(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.wav", "b.wav", "c.wav"}, paths)
}

func TestEntryPathsJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.json")
	require.NoError(t, manifest.WriteJSON(path, []manifest.Entry{
		{"file": "a.wav"},
		{"audio": map[string]any{"path": "nested/b.wav"}},
		{"note": "the clip is stored at lost/c.wav somewhere"},
		{"unrelated": 12},
	}))

	c := &Calculator{Separator: "::", Formats: []string{".wav", ".flac"}}
	paths, err := c.EntryPaths(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.wav", "nested/b.wav", "the clip is stored at lost/c.wav somewhere"}, paths)
}

func TestEntryPathsUnsupported(t *testing.T) {
	c := &Calculator{}
	_, err := c.EntryPaths("list.yaml")
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.wav"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.flac"), []byte("x"), 0o644))

	c := &Calculator{BaseDir: dir, Formats: []string{".wav", ".flac"}}

	full, ok := c.Resolve("a.wav")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "a.wav"), full)

	// Manifest says .pcm, only the converted .flac exists.
	full, ok = c.Resolve("b.pcm")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "b.flac"), full)

	_, ok = c.Resolve("missing.wav")
	assert.False(t, ok)
}

func TestMeasureWAV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tone.wav")

	clip := &audiocodec.Clip{SampleRate: 16000, Channels: 1, Samples: make([]float64, 16000*2)}
	require.NoError(t, audiocodec.WriteWAV(path, clip))

	c := &Calculator{}
	d, err := c.Measure(context.Background(), path)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, d, 1e-9)
}
