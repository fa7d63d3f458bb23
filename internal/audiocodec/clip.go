// Package audiocodec reads and writes the audio formats the toolkit handles
// natively. All decoders produce a Clip: interleaved float64 samples
// normalized to [-1, 1), the working representation shared by conversion,
// resampling, and segmentation.
package audiocodec

// Clip is decoded audio: interleaved samples with their format.
type Clip struct {
	SampleRate int
	Channels   int
	Samples    []float64
}

// Frames returns the number of sample frames (samples per channel).
func (c *Clip) Frames() int {
	if c.Channels == 0 {
		return 0
	}
	return len(c.Samples) / c.Channels
}

// Duration returns the clip length in seconds.
func (c *Clip) Duration() float64 {
	if c.SampleRate == 0 {
		return 0
	}
	return float64(c.Frames()) / float64(c.SampleRate)
}

// Slice returns the sub-clip covering [start, end) in seconds, clamped to
// the clip bounds. The returned clip shares the underlying sample slice.
func (c *Clip) Slice(start, end float64) *Clip {
	startFrame := int(start * float64(c.SampleRate))
	endFrame := int(end * float64(c.SampleRate))
	if startFrame < 0 {
		startFrame = 0
	}
	if endFrame > c.Frames() {
		endFrame = c.Frames()
	}
	if startFrame >= endFrame {
		return &Clip{SampleRate: c.SampleRate, Channels: c.Channels}
	}
	return &Clip{
		SampleRate: c.SampleRate,
		Channels:   c.Channels,
		Samples:    c.Samples[startFrame*c.Channels : endFrame*c.Channels],
	}
}
