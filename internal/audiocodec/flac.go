package audiocodec

import (
	"errors"
	"fmt"
	"io"

	"github.com/mewkiz/flac"
)

// ReadFLAC decodes a FLAC file into an interleaved Clip. Samples are
// normalized by the stream's declared bit depth.
func ReadFLAC(path string) (*Clip, error) {
	stream, err := flac.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer stream.Close()

	info := stream.Info
	channels := int(info.NChannels)
	scale := float64(int64(1) << (info.BitsPerSample - 1))

	clip := &Clip{
		SampleRate: int(info.SampleRate),
		Channels:   channels,
		Samples:    make([]float64, 0, int(info.NSamples)*channels),
	}

	for {
		frame, err := stream.ParseNext()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		n := len(frame.Subframes[0].Samples)
		for i := 0; i < n; i++ {
			for _, sub := range frame.Subframes {
				clip.Samples = append(clip.Samples, float64(sub.Samples[i])/scale)
			}
		}
	}
	return clip, nil
}
