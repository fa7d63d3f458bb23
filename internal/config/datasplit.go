package config

// Configuration and flag parsing for the datasplit tool: converting a CSV or
// JSON manifest to the standard record shape and splitting it into
// train/test/valid partitions.

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// SplitConfig holds all runtime settings for datasplit.
type SplitConfig struct {
	Common

	// Paths (set from positional args).
	InputFile string
	OutputDir string

	AudioBasePath   string // Prepended to every emitted audio path.
	UseAbsolutePath bool   // Prefer audio_path over relative_path.
	DefaultRate     bool   // Force sampling_rate 16000 instead of the record's value.
	IncludeMetadata bool   // Emit segment metadata alongside each record.
	BySpeaker       bool   // Group records by speaker before splitting.

	TrainRatio float64 // Default: 0.9.
	TestRatio  float64 // Default: 0.05.
	ValidRatio float64 // Default: 0.05.
	Seed       int64   // Shuffle seed for reproducible splits. Default: 42.
}

// DefaultSplitConfig returns a SplitConfig with legacy-parity defaults.
func DefaultSplitConfig() SplitConfig {
	return SplitConfig{
		Common:     DefaultCommon(),
		TrainRatio: envFloat("SPT_TRAIN_RATIO", 0.9),
		TestRatio:  envFloat("SPT_TEST_RATIO", 0.05),
		ValidRatio: envFloat("SPT_VALID_RATIO", 0.05),
		Seed:       42,
	}
}

// ParseSplitFlags parses os.Args into cfg. On --help or --version it prints
// and exits.
func ParseSplitFlags(cfg *SplitConfig, version string) error {
	fs := flag.NewFlagSet("datasplit", flag.ContinueOnError)
	usage := func() { printSplitUsage(version) }
	fs.Usage = usage

	var common commonFlags
	var seed int

	fs.StringVar(&cfg.AudioBasePath, "audio-base-path", cfg.AudioBasePath, "Base path prepended to audio paths")
	fs.BoolVar(&cfg.UseAbsolutePath, "use-absolute-path", false, "Use audio_path instead of relative_path")
	fs.BoolVar(&cfg.DefaultRate, "default-sampling-rate", false, "Force sampling_rate 16000")
	fs.BoolVar(&cfg.IncludeMetadata, "include-metadata", false, "Emit segment metadata per record")
	fs.BoolVar(&cfg.BySpeaker, "by-speaker", false, "Split by speaker to avoid leakage across partitions")
	fs.Float64Var(&cfg.TrainRatio, "train-ratio", cfg.TrainRatio, "Training set ratio")
	fs.Float64Var(&cfg.TestRatio, "test-ratio", cfg.TestRatio, "Test set ratio")
	fs.Float64Var(&cfg.ValidRatio, "valid-ratio", cfg.ValidRatio, "Validation set ratio")
	fs.IntVar(&seed, "random-seed", int(cfg.Seed), "Shuffle seed for reproducibility")
	defineDisplayFlags(fs, &cfg.Common, &common)
	defineUtilityFlags(fs, &common)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	cfg.Seed = int64(seed)
	applyCommonFlags("datasplit", version, &cfg.Common, &common, usage)

	args := fs.Args()
	if len(args) != 2 {
		return fmt.Errorf("need exactly input_file and output_dir")
	}
	cfg.InputFile = args[0]
	cfg.OutputDir = NormalizeDirArg(args[1])
	return nil
}

// Validate checks the ratio sum and the input format. Ratios must sum to 1.0
// within 1e-6, matching the legacy tool.
func (c *SplitConfig) Validate() error {
	if c.TrainRatio < 0 || c.TestRatio < 0 || c.ValidRatio < 0 {
		return errors.New("ratios must not be negative")
	}
	if math.Abs(c.TrainRatio+c.TestRatio+c.ValidRatio-1.0) > 1e-6 {
		return errors.New("train, test, and validation ratios must sum to 1.0")
	}
	if c.InputFile == "" || c.OutputDir == "" {
		return errors.New("need exactly input_file and output_dir")
	}
	switch strings.ToLower(filepath.Ext(c.InputFile)) {
	case ".csv", ".json":
		return nil
	default:
		return fmt.Errorf("unsupported input format %q (use .csv or .json)", filepath.Ext(c.InputFile))
	}
}

func printSplitUsage(version string) {
	printUsage([]usageLine{
		{"", "datasplit v" + version + " — split a manifest into train/test/valid JSON"},
		{"", ""},
		{"  datasplit [OPTIONS] <input_file> <output_dir>", ""},
		{"", ""},
		{"Records", ""},
		{"  --audio-base-path <p>", "Base path prepended to audio paths"},
		{"  --use-absolute-path", "Use audio_path instead of relative_path"},
		{"  --default-sampling-rate", "Force sampling_rate 16000"},
		{"  --include-metadata", "Emit segment metadata per record"},
		{"", ""},
		{"Splitting", ""},
		{"  --by-speaker", "Split by speaker (no speaker crosses partitions)"},
		{"  --train-ratio <f>", "Training set ratio (default: 0.9)"},
		{"  --test-ratio <f>", "Test set ratio (default: 0.05)"},
		{"  --valid-ratio <f>", "Validation set ratio (default: 0.05)"},
		{"  --random-seed <n>", "Shuffle seed (default: 42)"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	})
}
