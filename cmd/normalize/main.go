// Command normalize cleans transcript files: written-number extraction,
// annotation marker removal and whitespace normalization across .txt, .json
// and .csv manifests.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/config"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/display"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/logging"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/normalize"
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
	cfg := config.DefaultNormalizeConfig()
	if err := config.ParseNormalizeFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "normalize: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "normalize: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg.Common)
	if err != nil {
		fmt.Fprintf(os.Stderr, "normalize: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner()

	log.Info("=== normalize v%s (%s) ===", version, commit)
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

	stats := normalize.Run(ctx, &cfg, log)
	if stats.Failed > 0 {
		return 1
	}
	return 0
}
