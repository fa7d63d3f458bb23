package audiocodec

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/go-mp3"
)

// ReadMP3 decodes an MP3 file. The decoder always produces 16-bit
// little-endian stereo output regardless of the source channel layout.
func ReadMP3(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if len(raw)%2 != 0 {
		raw = raw[:len(raw)-1]
	}

	clip := &Clip{
		SampleRate: dec.SampleRate(),
		Channels:   2,
		Samples:    make([]float64, len(raw)/2),
	}
	for i := range clip.Samples {
		v := int16(binary.LittleEndian.Uint16(raw[2*i:]))
		clip.Samples[i] = float64(v) / 32768.0
	}
	return clip, nil
}
