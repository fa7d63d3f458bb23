// Command manifestclean removes records whose transcript contains Latin
// letters or digits from a dataset's train/valid/test manifests.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/cleanse"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/config"
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
	cfg := config.DefaultCleanConfig()
	if err := config.ParseCleanFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "manifestclean: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "manifestclean: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg.Common)
	if err != nil {
		fmt.Fprintf(os.Stderr, "manifestclean: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner()

	if fi, err := os.Stat(cfg.DatasetDir); err != nil || !fi.IsDir() {
		log.Error("Dataset path is not a directory: %s", cfg.DatasetDir)
		return 1
	}

	log.Info("=== manifestclean v%s (%s) ===", version, commit)
	log.Info("In: %s", cfg.DatasetDir)
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

	stats := cleanse.Run(ctx, &cfg, log)
	if stats.Failed > 0 {
		return 1
	}
	return 0
}
