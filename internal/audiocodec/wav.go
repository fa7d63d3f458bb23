package audiocodec

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// ReadWAV decodes a whole WAV file into a Clip. Samples are normalized by
// the source bit depth so 8/16/24/32-bit input all land in [-1, 1).
func ReadWAV(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode wav %q: %w", path, err)
	}
	if buf.Format == nil || buf.Format.NumChannels == 0 || buf.Format.SampleRate == 0 {
		return nil, fmt.Errorf("decode wav %q: missing format information", path)
	}

	bitDepth := buf.SourceBitDepth
	if bitDepth == 0 {
		bitDepth = int(dec.BitDepth)
	}
	if bitDepth == 0 {
		bitDepth = 16
	}
	scale := float64(int64(1) << (bitDepth - 1))

	clip := &Clip{
		SampleRate: buf.Format.SampleRate,
		Channels:   buf.Format.NumChannels,
		Samples:    make([]float64, len(buf.Data)),
	}
	for i, v := range buf.Data {
		clip.Samples[i] = float64(v) / scale
	}
	return clip, nil
}

// WAVInfo reads only the WAV header and returns sample rate, channel count,
// and duration in seconds. Used as the fast path for duration statistics.
func WAVInfo(path string) (sampleRate, channels int, duration float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	dec.ReadInfo()
	if dec.Err() != nil {
		return 0, 0, 0, fmt.Errorf("read wav header %q: %w", path, dec.Err())
	}
	d, err := dec.Duration()
	if err != nil {
		return 0, 0, 0, fmt.Errorf("read wav header %q: %w", path, err)
	}
	return int(dec.SampleRate), int(dec.NumChans), d.Seconds(), nil
}

// WriteWAV encodes a Clip as canonical 16-bit PCM. Samples are clamped to
// [-1, 1] before scaling; out-of-range values from interpolation overshoot
// must not wrap.
func WriteWAV(path string, c *Clip) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: c.Channels,
			SampleRate:  c.SampleRate,
		},
		Data:           make([]int, len(c.Samples)),
		SourceBitDepth: 16,
	}
	for i, s := range c.Samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		v := int(s * 32767)
		buf.Data[i] = v
	}

	enc := wav.NewEncoder(f, c.SampleRate, 16, c.Channels, 1)
	if err := enc.Write(buf); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("encode wav %q: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("finalize wav %q: %w", path, err)
	}
	return f.Close()
}
