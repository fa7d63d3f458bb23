// Command jsoncombine merges the train/test/valid manifests of several
// dataset directories into one combined dataset.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/config"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/display"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/jsoncombine"
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
	cfg := config.DefaultCombineConfig()
	if err := config.ParseCombineFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "jsoncombine: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "jsoncombine: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg.Common)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsoncombine: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner()

	log.Info("=== jsoncombine v%s (%s) ===", version, commit)
	log.Info("Out: %s", cfg.OutputDir)
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
		log.Warn("Received interrupt, finishing current directory…")
		cancel()
	}()

	stats := jsoncombine.Run(ctx, &cfg, log)
	if stats.Failed > 0 {
		return 1
	}
	return 0
}
