package config

// Configuration and flag parsing for the jsoncombine tool: merging per-dataset
// train/test/valid JSON files into combined splits.

import (
	"errors"
	"flag"
	"os"
)

// CombineConfig holds all runtime settings for jsoncombine.
type CombineConfig struct {
	Common

	// DatasetDirs are the directories to merge, set from positional args.
	DatasetDirs []string

	OutputDir string // Default: "combined_data".
}

// DefaultCombineConfig returns a CombineConfig with legacy-parity defaults.
func DefaultCombineConfig() CombineConfig {
	return CombineConfig{
		Common:    DefaultCommon(),
		OutputDir: "combined_data",
	}
}

// ParseCombineFlags parses os.Args into cfg. On --help or --version it prints
// and exits.
func ParseCombineFlags(cfg *CombineConfig, version string) error {
	fs := flag.NewFlagSet("jsoncombine", flag.ContinueOnError)
	usage := func() { printCombineUsage(version) }
	fs.Usage = usage

	var common commonFlags

	fs.StringVar(&cfg.OutputDir, "output", cfg.OutputDir, "Output directory for combined splits")
	fs.StringVar(&cfg.OutputDir, "o", cfg.OutputDir, "Same as --output")
	defineDisplayFlags(fs, &cfg.Common, &common)
	defineUtilityFlags(fs, &common)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyCommonFlags("jsoncombine", version, &cfg.Common, &common, usage)

	if len(fs.Args()) == 0 {
		return errors.New("need at least one dataset_dir argument")
	}
	for _, d := range fs.Args() {
		cfg.DatasetDirs = append(cfg.DatasetDirs, NormalizeDirArg(d))
	}
	return nil
}

// Validate checks required settings.
func (c *CombineConfig) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must not be empty")
	}
	if len(c.DatasetDirs) == 0 {
		return errors.New("need at least one dataset directory")
	}
	return nil
}

func printCombineUsage(version string) {
	printUsage([]usageLine{
		{"", "jsoncombine v" + version + " — merge train/test/valid JSON across datasets"},
		{"", ""},
		{"  jsoncombine [OPTIONS] <dataset_dir>...", ""},
		{"", ""},
		{"Output & behavior", ""},
		{"  -o, --output <dir>", "Output directory (default: combined_data)"},
		{"  -d, --dry-run", "Report what would be merged without writing"},
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
