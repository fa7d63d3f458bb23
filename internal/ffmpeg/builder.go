// Package ffmpeg builds and runs the ffmpeg commands used as the decode
// fallback for container formats the toolkit has no native decoder for
// (m4a, aac, wma, aiff, au, …).
package ffmpeg

// BuildDecodeArgs returns the full argv for decoding inputPath to a canonical
// 16-bit PCM WAV at outputPath. Sample rate and channel count are preserved;
// only the first audio stream is taken. -nostdin keeps a batch run from
// swallowing terminal input, and -y is safe because the caller has already
// applied its skip-existing policy.
func BuildDecodeArgs(inputPath, outputPath string) []string {
	return []string{
		"ffmpeg",
		"-hide_banner",
		"-nostdin",
		"-y",
		"-i", inputPath,
		"-map", "0:a:0",
		"-acodec", "pcm_s16le",
		"-f", "wav",
		outputPath,
	}
}
