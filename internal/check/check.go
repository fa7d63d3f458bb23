// Package check provides system diagnostics (--check mode) and pre-batch
// dependency validation for the ffmpeg/ffprobe decode fallback.
package check

import (
	"errors"
	"os/exec"
	"strings"
)

// Sentinel errors returned by CheckDeps when a required tool is missing.
var (
	ErrFfmpegNotFound  = errors.New("ffmpeg not found on PATH (needed for m4a/aac/wma/aiff/au input)")
	ErrFfprobeNotFound = errors.New("ffprobe not found on PATH (needed for non-WAV duration probing)")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the interactive --check flow: prints availability of ffmpeg
// and ffprobe and runs a synthetic decode test. Informational only; it does
// not stop on failure. Returns false when any check failed.
func RunCheck(log Logger) bool {
	log.Info("=== System Check ===")

	ok := checkTool(log, "ffmpeg")
	ok = checkTool(log, "ffprobe") && ok
	ok = checkDecode(log) && ok
	return ok
}

// CheckDeps fails fast before a batch when a tool the run may need is absent.
// Native WAV/PCM/MP3/FLAC/Ogg handling works without either binary, so
// callers only invoke this when the discovered inputs include fallback formats.
func CheckDeps(needFfmpeg, needFfprobe bool) error {
	if needFfmpeg {
		if _, err := exec.LookPath("ffmpeg"); err != nil {
			return ErrFfmpegNotFound
		}
	}
	if needFfprobe {
		if _, err := exec.LookPath("ffprobe"); err != nil {
			return ErrFfprobeNotFound
		}
	}
	return nil
}

// checkTool verifies a binary is on PATH and logs its version line.
func checkTool(log Logger, name string) bool {
	if _, err := exec.LookPath(name); err != nil {
		log.Error("%s not found", name)
		return false
	}
	out, err := exec.Command(name, "-version").Output()
	if err != nil {
		log.Warn("%s found but -version failed: %v", name, err)
		return false
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("%s: %s", name, firstLine)
	return true
}

// checkDecode runs a minimal synthetic decode (sine source to WAV on the
// null muxer) to verify ffmpeg can actually produce PCM output.
func checkDecode(log Logger) bool {
	cmd := exec.Command("ffmpeg",
		"-hide_banner", "-nostdin",
		"-f", "lavfi", "-i", "sine=frequency=440:duration=0.1",
		"-acodec", "pcm_s16le",
		"-f", "null", "-",
	)
	if err := cmd.Run(); err != nil {
		log.Error("Synthetic decode test failed: %v", err)
		return false
	}
	log.Success("Synthetic decode test passed")
	return true
}
