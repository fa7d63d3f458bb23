package audiocodec

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePCM16(t *testing.T) {
	// Little-endian int16: 0, 16384, -16384, 32767.
	raw := []byte{
		0x00, 0x00,
		0x00, 0x40,
		0x00, 0xC0,
		0xFF, 0x7F,
	}
	clip := DecodePCM16(raw, 16000)

	assert.Equal(t, 16000, clip.SampleRate)
	assert.Equal(t, 1, clip.Channels)
	require.Len(t, clip.Samples, 4)
	assert.InDelta(t, 0.0, clip.Samples[0], 1e-9)
	assert.InDelta(t, 0.5, clip.Samples[1], 1e-9)
	assert.InDelta(t, -0.5, clip.Samples[2], 1e-9)
	assert.InDelta(t, 32767.0/32768.0, clip.Samples[3], 1e-9)
}

func TestDecodePCM16OddTrailingByte(t *testing.T) {
	raw := []byte{0x00, 0x40, 0x7F}
	clip := DecodePCM16(raw, 8000)
	assert.Len(t, clip.Samples, 1)
}

func TestDecodePCM16Empty(t *testing.T) {
	clip := DecodePCM16(nil, 16000)
	assert.Equal(t, 0, clip.Frames())
	assert.Equal(t, 0.0, clip.Duration())
}

func TestClipFramesAndDuration(t *testing.T) {
	clip := &Clip{SampleRate: 8000, Channels: 2, Samples: make([]float64, 16000)}
	assert.Equal(t, 8000, clip.Frames())
	assert.InDelta(t, 1.0, clip.Duration(), 1e-9)
}

func TestClipSlice(t *testing.T) {
	clip := &Clip{SampleRate: 10, Channels: 1, Samples: make([]float64, 100)}
	for i := range clip.Samples {
		clip.Samples[i] = float64(i)
	}

	t.Run("interior", func(t *testing.T) {
		s := clip.Slice(2.0, 5.0)
		assert.Equal(t, 30, len(s.Samples))
		assert.Equal(t, 20.0, s.Samples[0])
		assert.InDelta(t, 3.0, s.Duration(), 1e-9)
	})

	t.Run("clamped to bounds", func(t *testing.T) {
		s := clip.Slice(-1.0, 100.0)
		assert.Equal(t, 100, len(s.Samples))
	})

	t.Run("empty range", func(t *testing.T) {
		s := clip.Slice(5.0, 5.0)
		assert.Equal(t, 0, len(s.Samples))
		assert.Equal(t, 10, s.SampleRate)
	})

	t.Run("stereo slices whole frames", func(t *testing.T) {
		stereo := &Clip{SampleRate: 10, Channels: 2, Samples: make([]float64, 200)}
		s := stereo.Slice(1.0, 2.0)
		assert.Equal(t, 20, len(s.Samples))
		assert.Equal(t, 10, s.Frames())
	})
}

func TestWAVRoundtrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tone.wav")

	in := &Clip{SampleRate: 16000, Channels: 1, Samples: make([]float64, 1600)}
	for i := range in.Samples {
		in.Samples[i] = 0.25 * math.Sin(2*math.Pi*440*float64(i)/16000)
	}

	require.NoError(t, WriteWAV(path, in))

	out, err := ReadWAV(path)
	require.NoError(t, err)
	assert.Equal(t, in.SampleRate, out.SampleRate)
	assert.Equal(t, in.Channels, out.Channels)
	require.Equal(t, len(in.Samples), len(out.Samples))
	for i := range in.Samples {
		// 16-bit quantization noise.
		assert.InDelta(t, in.Samples[i], out.Samples[i], 2.0/32767)
	}

	rate, channels, duration, err := WAVInfo(path)
	require.NoError(t, err)
	assert.Equal(t, 16000, rate)
	assert.Equal(t, 1, channels)
	assert.InDelta(t, 0.1, duration, 1e-3)
}

func TestWriteWAVClampsOvershoot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hot.wav")

	in := &Clip{SampleRate: 8000, Channels: 1, Samples: []float64{1.2, -1.7, 0.0}}
	require.NoError(t, WriteWAV(path, in))

	out, err := ReadWAV(path)
	require.NoError(t, err)
	require.Len(t, out.Samples, 3)
	assert.InDelta(t, 1.0, out.Samples[0], 1.0/32767)
	assert.InDelta(t, -1.0, out.Samples[1], 1.0/32767)
}
