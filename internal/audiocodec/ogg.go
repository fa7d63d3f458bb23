package audiocodec

import (
	"fmt"
	"os"

	"github.com/jfreymuth/oggvorbis"
)

// ReadOgg decodes an Ogg Vorbis file into an interleaved Clip.
func ReadOgg(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, format, err := oggvorbis.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	clip := &Clip{
		SampleRate: format.SampleRate,
		Channels:   format.Channels,
		Samples:    make([]float64, len(data)),
	}
	for i, v := range data {
		clip.Samples[i] = float64(v)
	}
	return clip, nil
}
