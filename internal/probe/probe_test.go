package probe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFfprobeJSON = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "mp3",
      "codec_type": "audio",
      "sample_rate": "44100",
      "channels": 2,
      "channel_layout": "stereo",
      "duration": "12.345000",
      "bit_rate": "128000"
    }
  ],
  "format": {
    "filename": "clip.mp3",
    "format_name": "mp3",
    "duration": "12.380000",
    "size": "198042",
    "bit_rate": "128123"
  }
}`

func TestParseJSON(t *testing.T) {
	r, err := ParseJSON([]byte(sampleFfprobeJSON))
	require.NoError(t, err)

	assert.Equal(t, "mp3", r.Format.FormatName)
	assert.Equal(t, int64(198042), r.Format.Size)
	require.NotNil(t, r.PrimaryAudio)
	assert.Equal(t, "mp3", r.PrimaryAudio.Codec)
	assert.Equal(t, 44100, r.SampleRate())
	assert.Equal(t, 2, r.PrimaryAudio.Channels)
	// Stream duration wins over the container duration.
	assert.InDelta(t, 12.345, r.Duration(), 1e-9)
}

func TestParseJSONMultipleAudioStreams(t *testing.T) {
	r, err := ParseJSON([]byte(`{
	  "streams": [
	    {"index": 0, "codec_type": "video", "codec_name": "h264"},
	    {"index": 1, "codec_type": "audio", "codec_name": "aac", "sample_rate": "48000", "channels": 2},
	    {"index": 2, "codec_type": "audio", "codec_name": "mp3", "sample_rate": "44100", "channels": 1},
	    {"index": 3, "codec_type": "audio", "codec_name": "flac", "sample_rate": "96000", "channels": 2}
	  ],
	  "format": {"duration": "10.0"}
	}`))
	require.NoError(t, err)

	require.Len(t, r.AudioStreams, 3)
	require.NotNil(t, r.PrimaryAudio)
	// PrimaryAudio is the first audio stream, and aliases the slice
	// element itself rather than a copy from a reallocated append.
	assert.Same(t, &r.AudioStreams[0], r.PrimaryAudio)
	assert.Equal(t, "aac", r.PrimaryAudio.Codec)
	assert.Equal(t, 48000, r.SampleRate())
}

func TestParseJSONNoAudio(t *testing.T) {
	r, err := ParseJSON([]byte(`{
	  "streams": [{"index": 0, "codec_type": "video", "codec_name": "h264"}],
	  "format": {"duration": "60.0"}
	}`))
	require.NoError(t, err)

	assert.Nil(t, r.PrimaryAudio)
	assert.Equal(t, 0, r.SampleRate())
	// Falls back to the container duration.
	assert.InDelta(t, 60.0, r.Duration(), 1e-9)
}

func TestParseJSONMalformed(t *testing.T) {
	_, err := ParseJSON([]byte(`{not json`))
	assert.Error(t, err)
}

func TestParseJSONMissingFields(t *testing.T) {
	r, err := ParseJSON([]byte(`{
	  "streams": [{"index": 0, "codec_type": "audio", "codec_name": "pcm_s16le"}],
	  "format": {}
	}`))
	require.NoError(t, err)

	require.NotNil(t, r.PrimaryAudio)
	assert.Equal(t, 0, r.PrimaryAudio.SampleRate)
	assert.Equal(t, float64(0), r.Duration())
}
