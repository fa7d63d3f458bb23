package dsp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResampleSameRateCopies(t *testing.T) {
	in := []float64{0.1, 0.2, 0.3}
	out := Resample(in, 16000, 16000)

	assert.Equal(t, in, out)
	// Must be a copy, not an alias.
	out[0] = 9
	assert.Equal(t, 0.1, in[0])
}

func TestResampleLength(t *testing.T) {
	tests := []struct {
		name             string
		n, src, dst, want int
	}{
		{"upsample 8k to 16k", 8000, 8000, 16000, 16000},
		{"downsample 44.1k to 16k", 44100, 44100, 16000, 16000},
		{"upsample 22.05k to 16k", 22050, 22050, 16000, 16000},
		{"short signal", 100, 8000, 16000, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := make([]float64, tt.n)
			out := Resample(in, tt.src, tt.dst)
			assert.Len(t, out, tt.want)
		})
	}
}

func TestResampleConstantSignal(t *testing.T) {
	in := make([]float64, 800)
	for i := range in {
		in[i] = 0.5
	}
	out := Resample(in, 8000, 16000)
	require.Len(t, out, 1600)
	for _, v := range out {
		assert.InDelta(t, 0.5, v, 1e-9)
	}
}

func TestResampleSinePreservesShape(t *testing.T) {
	const srcRate, dstRate = 8000, 16000
	in := make([]float64, srcRate) // one second of 100 Hz
	for i := range in {
		in[i] = math.Sin(2 * math.Pi * 100 * float64(i) / srcRate)
	}

	out := Resample(in, srcRate, dstRate)
	require.Len(t, out, dstRate)

	total := float64(len(in)) / srcRate
	for i := 0; i < len(out); i += 97 {
		x := float64(i) * total / float64(len(out)-1)
		want := math.Sin(2 * math.Pi * 100 * x)
		assert.InDelta(t, want, out[i], 0.01)
	}
}

func TestResampleTinySignals(t *testing.T) {
	assert.Empty(t, Resample(nil, 8000, 16000))
	assert.Equal(t, []float64{0.3}, Resample([]float64{0.3}, 8000, 16000))

	// Below the cubic fit minimum, linear interpolation takes over.
	out := Resample([]float64{0.0, 1.0}, 8000, 16000)
	assert.Len(t, out, 4)
	assert.InDelta(t, 0.0, out[0], 1e-9)
	assert.InDelta(t, 1.0, out[3], 1e-9)
}

func TestDeinterleaveInterleave(t *testing.T) {
	samples := []float64{1, 10, 2, 20, 3, 30}
	channels := Deinterleave(samples, 2)
	require.Len(t, channels, 2)
	assert.Equal(t, []float64{1, 2, 3}, channels[0])
	assert.Equal(t, []float64{10, 20, 30}, channels[1])

	assert.Equal(t, samples, Interleave(channels))
}

func TestDeinterleaveMono(t *testing.T) {
	samples := []float64{1, 2, 3}
	channels := Deinterleave(samples, 1)
	require.Len(t, channels, 1)
	assert.Equal(t, samples, channels[0])
}
