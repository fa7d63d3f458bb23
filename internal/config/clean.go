package config

// Configuration and flag parsing for the manifestclean tool: dropping
// samples whose transcript contains Latin letters or ASCII digits.

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

// CleanConfig holds all runtime settings for manifestclean.
type CleanConfig struct {
	Common

	DatasetDir string

	Suffix string // Appended to the stem of output files. Default: "_cleaned".
}

// DefaultCleanConfig returns a CleanConfig with legacy-parity defaults.
func DefaultCleanConfig() CleanConfig {
	return CleanConfig{
		Common: DefaultCommon(),
		Suffix: "_cleaned",
	}
}

// ParseCleanFlags parses os.Args into cfg. On --help or --version it prints
// and exits.
func ParseCleanFlags(cfg *CleanConfig, version string) error {
	fs := flag.NewFlagSet("manifestclean", flag.ContinueOnError)
	usage := func() { printCleanUsage(version) }
	fs.Usage = usage

	var common commonFlags

	fs.StringVar(&cfg.Suffix, "suffix", cfg.Suffix, "Suffix for cleaned output filenames")
	defineDisplayFlags(fs, &cfg.Common, &common)
	defineUtilityFlags(fs, &common)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyCommonFlags("manifestclean", version, &cfg.Common, &common, usage)

	args := fs.Args()
	if len(args) != 1 {
		return fmt.Errorf("need exactly one dataset_dir argument")
	}
	cfg.DatasetDir = NormalizeDirArg(args[0])
	return nil
}

// Validate checks required settings.
func (c *CleanConfig) Validate() error {
	if c.Suffix == "" {
		return errors.New("suffix must not be empty (outputs would overwrite inputs)")
	}
	if c.DatasetDir == "" {
		return errors.New("need a dataset directory")
	}
	return nil
}

func printCleanUsage(version string) {
	printUsage([]usageLine{
		{"", "manifestclean v" + version + " — drop samples with Latin letters or digits"},
		{"", ""},
		{"  manifestclean [OPTIONS] <dataset_dir>", ""},
		{"", ""},
		{"Output & behavior", ""},
		{"  --suffix <s>", "Suffix for cleaned outputs (default: _cleaned)"},
		{"  -d, --dry-run", "Report what would be removed without writing"},
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
