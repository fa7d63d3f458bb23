package config

// Configuration and flag parsing for the resample tool: batch cubic-spline
// resampling of WAV files to a target sample rate.

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

// ResampleConfig holds all runtime settings for resample.
type ResampleConfig struct {
	Common

	InputDir string

	TargetRate   int    // Default: 16000. Overridable via SPT_TARGET_RATE.
	OutputSuffix string // Appended to the stem of output files. Default: "_resampled".
	Overwrite    bool   // Replace the source file instead of writing a sibling.
	Recursive    bool   // Default: true. Cleared by --no-recursive.
}

// DefaultResampleConfig returns a ResampleConfig with legacy-parity defaults.
func DefaultResampleConfig() ResampleConfig {
	return ResampleConfig{
		Common:       DefaultCommon(),
		TargetRate:   envInt("SPT_TARGET_RATE", 16000),
		OutputSuffix: envString("SPT_OUTPUT_SUFFIX", "_resampled"),
		Recursive:    true,
	}
}

// ParseResampleFlags parses os.Args into cfg. On --help or --version it
// prints and exits.
func ParseResampleFlags(cfg *ResampleConfig, version string) error {
	fs := flag.NewFlagSet("resample", flag.ContinueOnError)
	usage := func() { printResampleUsage(version) }
	fs.Usage = usage

	var common commonFlags
	var noRecursive bool

	fs.IntVar(&cfg.TargetRate, "target-rate", cfg.TargetRate, "Target sample rate in Hz")
	fs.IntVar(&cfg.TargetRate, "r", cfg.TargetRate, "Same as --target-rate")
	fs.StringVar(&cfg.OutputSuffix, "output-suffix", cfg.OutputSuffix, "Suffix for output filenames")
	fs.BoolVar(&cfg.Overwrite, "overwrite", false, "Overwrite source files in place")
	fs.BoolVar(&noRecursive, "no-recursive", false, "Do not search subdirectories")
	defineDisplayFlags(fs, &cfg.Common, &common)
	defineUtilityFlags(fs, &common)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	if noRecursive {
		cfg.Recursive = false
	}
	applyCommonFlags("resample", version, &cfg.Common, &common, usage)

	args := fs.Args()
	if len(args) != 1 {
		return fmt.Errorf("need exactly one input_dir argument")
	}
	cfg.InputDir = NormalizeDirArg(args[0])
	return nil
}

// Validate checks value ranges and required settings.
func (c *ResampleConfig) Validate() error {
	if c.TargetRate <= 0 {
		return errors.New("target-rate must be a positive sample rate in Hz")
	}
	if !c.Overwrite && c.OutputSuffix == "" {
		return errors.New("output-suffix must not be empty unless --overwrite is set")
	}
	if c.InputDir == "" {
		return errors.New("need an input directory")
	}
	return nil
}

func printResampleUsage(version string) {
	printUsage([]usageLine{
		{"", "resample v" + version + " — resample WAV files to a target rate"},
		{"", ""},
		{"  resample [OPTIONS] <input_dir>", ""},
		{"", ""},
		{"Resampling", ""},
		{"  -r, --target-rate <hz>", "Target sample rate in Hz (default: 16000)"},
		{"  --output-suffix <s>", "Suffix for output filenames (default: _resampled)"},
		{"  --overwrite", "Overwrite source files in place"},
		{"  --no-recursive", "Do not search subdirectories"},
		{"", ""},
		{"Output & behavior", ""},
		{"  -d, --dry-run", "Preview only; do not resample"},
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
