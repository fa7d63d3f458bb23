// Command textgridsplit cuts WAV recordings into per-utterance segments
// using the clean speech intervals of their Praat TextGrid annotations.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/config"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/display"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/logging"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/textgrid"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	config.LoadEnv()
	cfg := config.DefaultSegmentConfig()
	if err := config.ParseSegmentFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "textgridsplit: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "textgridsplit: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg.Common)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textgridsplit: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner()

	for _, dir := range []string{cfg.TextGridDir, cfg.WavDir} {
		if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
			log.Error("Not a directory: %s", dir)
			return 1
		}
	}

	// Segments land in the output tree; cutting them into the source WAV
	// directory would feed outputs back into later runs.
	wavAbs, err := absPath(cfg.WavDir)
	if err == nil {
		if outAbs, err := outputAbsPath(cfg.OutputDir); err == nil {
			if err := config.ValidatePaths(wavAbs, outAbs); err != nil {
				log.Error("%v", err)
				log.Error("Choose an output path outside: %s", cfg.WavDir)
				return 1
			}
		}
	}

	log.Info("=== textgridsplit v%s (%s) ===", version, commit)
	log.Info("TextGrids: %s", cfg.TextGridDir)
	log.Info("WAVs:      %s", cfg.WavDir)
	log.Info("Out:       %s", cfg.OutputDir)
	if cfg.DryRun {
		log.Warn("DRY RUN — no files will be written")
	}
	log.Info("")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file…")
		cancel()
	}()

	stats := textgrid.Run(ctx, &cfg, log)
	if stats.Failed > 0 {
		return 1
	}
	return 0
}

// absPath returns the absolute, symlink-resolved path for safe comparison
// of directory hierarchies.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// outputAbsPath resolves the output directory the same way as absPath. The
// directory may not exist yet, so the nearest existing ancestor is resolved
// and the remainder reattached; otherwise a symlinked side would slip past
// the nesting check.
func outputAbsPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	rest := ""
	for {
		resolved, err := filepath.EvalSymlinks(abs)
		if err == nil {
			return filepath.Join(resolved, rest), nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return filepath.Join(abs, rest), nil
		}
		rest = filepath.Join(filepath.Base(abs), rest)
		abs = parent
	}
}
