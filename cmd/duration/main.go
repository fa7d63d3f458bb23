// Command duration reports total and per-file duration statistics for the
// audio referenced by a dataset manifest.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/check"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/config"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/display"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/duration"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/logging"
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
	cfg := config.DefaultDurationConfig()
	if err := config.ParseDurationFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "duration: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "duration: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg.Common)
	if err != nil {
		fmt.Fprintf(os.Stderr, "duration: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(log) {
			return 1
		}
		return 0
	}

	if _, err := os.Stat(cfg.ManifestFile); err != nil {
		log.Error("Manifest file not found: %s", cfg.ManifestFile)
		return 1
	}
	if fi, err := os.Stat(cfg.AudioBaseDir); err != nil || !fi.IsDir() {
		log.Error("Audio base is not a directory: %s", cfg.AudioBaseDir)
		return 1
	}

	log.Info("=== duration v%s (%s) ===", version, commit)
	log.Info("")

	// ffprobe measures everything that isn't WAV.
	if needsProbe(cfg.Formats) {
		if err := check.CheckDeps(false, true); err != nil {
			log.Error("%v", err)
			return 1
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file…")
		cancel()
	}()

	stats := duration.Run(ctx, &cfg, log)
	if stats.Failed > 0 {
		return 1
	}
	return 0
}

func needsProbe(formats []string) bool {
	for _, f := range formats {
		if f != ".wav" {
			return true
		}
	}
	return false
}
