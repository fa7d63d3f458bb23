package audiocodec

import (
	"encoding/binary"
	"os"
)

// ReadPCM16 reads a headerless 16-bit little-endian mono PCM file, assuming
// sampleRate. An odd trailing byte is dropped (truncated recordings are
// common in telephony dumps). Samples are normalized by 1/32768.
func ReadPCM16(path string, sampleRate int) (*Clip, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodePCM16(raw, sampleRate), nil
}

// DecodePCM16 converts raw 16-bit little-endian mono PCM bytes into a Clip.
func DecodePCM16(raw []byte, sampleRate int) *Clip {
	if len(raw)%2 != 0 {
		raw = raw[:len(raw)-1]
	}
	clip := &Clip{
		SampleRate: sampleRate,
		Channels:   1,
		Samples:    make([]float64, len(raw)/2),
	}
	for i := range clip.Samples {
		v := int16(binary.LittleEndian.Uint16(raw[2*i:]))
		clip.Samples[i] = float64(v) / 32768.0
	}
	return clip
}
