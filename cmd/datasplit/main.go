// Command datasplit converts a segment manifest (CSV or JSON) into the
// train/test/valid JSON layout, split randomly or by speaker.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/config"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/datasplit"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/display"
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
	cfg := config.DefaultSplitConfig()
	if err := config.ParseSplitFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "datasplit: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "datasplit: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg.Common)
	if err != nil {
		fmt.Fprintf(os.Stderr, "datasplit: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner()

	if _, err := os.Stat(cfg.InputFile); err != nil {
		log.Error("Input file not found: %s", cfg.InputFile)
		return 1
	}

	log.Info("=== datasplit v%s (%s) ===", version, commit)
	log.Info("In:  %s", cfg.InputFile)
	log.Info("Out: %s", cfg.OutputDir)
	log.Info("Ratios: train %.2f / test %.2f / valid %.2f (seed %d)",
		cfg.TrainRatio, cfg.TestRatio, cfg.ValidRatio, cfg.Seed)
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
		log.Warn("Received interrupt, stopping…")
		cancel()
	}()

	stats := datasplit.Run(ctx, &cfg, log)
	if stats.Failed > 0 {
		return 1
	}
	return 0
}
