package probe

// FormatInfo holds container-level metadata from ffprobe's format section.
type FormatInfo struct {
	Filename   string
	FormatName string
	Duration   float64
	Size       int64
	BitRate    int64
}

// AudioStream holds the parsed properties of a single audio stream.
type AudioStream struct {
	Index         int
	Codec         string
	Channels      int
	ChannelLayout string
	SampleRate    int
	Duration      float64
	BitRate       int64
}

// Result is the fully parsed output of a single ffprobe JSON call.
// PrimaryAudio is the first audio stream (nil if none).
type Result struct {
	Format       FormatInfo
	PrimaryAudio *AudioStream
	AudioStreams []AudioStream
}

// Duration returns the best available duration in seconds: the primary audio
// stream's own duration when present, otherwise the container duration.
func (r *Result) Duration() float64 {
	if r.PrimaryAudio != nil && r.PrimaryAudio.Duration > 0 {
		return r.PrimaryAudio.Duration
	}
	return r.Format.Duration
}

// SampleRate returns the primary audio stream's sample rate, or 0 when the
// file has no audio stream.
func (r *Result) SampleRate() int {
	if r.PrimaryAudio == nil {
		return 0
	}
	return r.PrimaryAudio.SampleRate
}
