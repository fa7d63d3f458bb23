// Package convert turns a directory of mixed-format audio into 16-bit PCM
// WAV files, next to the originals.
package convert

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/audiocodec"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/ffmpeg"
)

// InputExts are the source formats the converter accepts. WAV itself is
// deliberately absent.
var InputExts = []string{
	".pcm", ".raw", ".mp3", ".flac", ".ogg",
	".m4a", ".aac", ".wma", ".aiff", ".au",
}

// nativeDecodable reports whether we decode the format in-process. The
// remaining formats go through ffmpeg.
func nativeDecodable(ext string) bool {
	switch ext {
	case ".pcm", ".raw", ".mp3", ".flac", ".ogg":
		return true
	}
	return false
}

// NeedsFfmpeg reports whether any of the files requires the ffmpeg fallback
// route, i.e. has no native Go decoder for its format.
func NeedsFfmpeg(files []string) bool {
	for _, f := range files {
		if !nativeDecodable(strings.ToLower(filepath.Ext(f))) {
			return true
		}
	}
	return false
}

// convertFile produces outputPath from inputPath. Headerless PCM and the
// formats with native Go decoders are handled in-process; everything else
// shells out to ffmpeg.
func convertFile(ctx context.Context, inputPath, outputPath string, pcmRate int, verbose bool) error {
	ext := strings.ToLower(filepath.Ext(inputPath))

	if !nativeDecodable(ext) {
		result := ffmpeg.Execute(ctx, verbose, ffmpeg.BuildDecodeArgs(inputPath, outputPath))
		if result.Err != nil {
			return fmt.Errorf("ffmpeg: %w (%s)", result.Err, lastStderrLine(result.Stderr))
		}
		return nil
	}

	var clip *audiocodec.Clip
	var err error
	switch ext {
	case ".pcm", ".raw":
		clip, err = audiocodec.ReadPCM16(inputPath, pcmRate)
	case ".mp3":
		clip, err = audiocodec.ReadMP3(inputPath)
	case ".flac":
		clip, err = audiocodec.ReadFLAC(inputPath)
	case ".ogg":
		clip, err = audiocodec.ReadOgg(inputPath)
	}
	if err != nil {
		return err
	}
	return audiocodec.WriteWAV(outputPath, clip)
}

func lastStderrLine(stderr string) string {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[len(lines)-1])
}
