package config

// Configuration and flag parsing for the wavconv tool: batch conversion of
// supported audio formats to canonical 16-bit WAV.

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

// ConvertConfig holds all runtime settings for wavconv. Populated by
// [DefaultConvertConfig] and then mutated by [ParseConvertFlags] before being
// passed (by pointer) to the packages that need it.
type ConvertConfig struct {
	Common

	// Path (set from the positional arg).
	InputDir string

	// Behavior.
	PCMRate        int  // Sample rate assumed for headerless .pcm/.raw input. Default: 16000.
	DeleteOriginal bool // Remove the source file after a successful conversion.
	Recursive      bool // Default: true. Cleared by --no-recursive.
	SkipExisting   bool // Default: true. Cleared by --force.
	CheckOnly      bool // Run --check diagnostics and exit.
}

// DefaultConvertConfig returns a ConvertConfig with defaults matching the
// legacy converter behavior, overridable via SPT_PCM_RATE.
func DefaultConvertConfig() ConvertConfig {
	return ConvertConfig{
		Common:       DefaultCommon(),
		PCMRate:      envInt("SPT_PCM_RATE", 16000),
		Recursive:    true,
		SkipExisting: true,
	}
}

// ParseConvertFlags parses os.Args into cfg. On --help or --version it prints
// and exits. On error it returns non-nil (unknown flag, missing positional arg).
func ParseConvertFlags(cfg *ConvertConfig, version string) error {
	fs := flag.NewFlagSet("wavconv", flag.ContinueOnError)
	usage := func() { printConvertUsage(version) }
	fs.Usage = usage

	var common commonFlags
	var noRecursive, force bool

	fs.IntVar(&cfg.PCMRate, "pcm-rate", cfg.PCMRate, "Sample rate for headerless PCM input (Hz)")
	fs.BoolVar(&cfg.DeleteOriginal, "delete-original", false, "Delete source files after conversion")
	fs.BoolVar(&noRecursive, "no-recursive", false, "Do not search subdirectories")
	fs.BoolVar(&force, "force", false, "Overwrite existing .wav outputs")
	fs.BoolVar(&force, "f", false, "Same as --force")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run decoder diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	defineDisplayFlags(fs, &cfg.Common, &common)
	defineUtilityFlags(fs, &common)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	if noRecursive {
		cfg.Recursive = false
	}
	if force {
		cfg.SkipExisting = false
	}
	applyCommonFlags("wavconv", version, &cfg.Common, &common, usage)

	if cfg.CheckOnly {
		return nil
	}
	args := fs.Args()
	if len(args) != 1 {
		return fmt.Errorf("need exactly one input_dir argument")
	}
	cfg.InputDir = NormalizeDirArg(args[0])
	return nil
}

// Validate checks value ranges; paths are checked later once resolved.
func (c *ConvertConfig) Validate() error {
	if c.PCMRate <= 0 {
		return errors.New("pcm-rate must be a positive sample rate in Hz")
	}
	if c.CheckOnly {
		return nil
	}
	if c.InputDir == "" {
		return errors.New("need an input directory")
	}
	return nil
}

func printConvertUsage(version string) {
	printUsage([]usageLine{
		{"", "wavconv v" + version + " — convert audio files to canonical WAV"},
		{"", ""},
		{"  wavconv [OPTIONS] <input_dir>", ""},
		{"", ""},
		{"Conversion", ""},
		{"  --pcm-rate <hz>", "Sample rate for headerless PCM input (default: 16000)"},
		{"  --delete-original", "Delete source files after conversion"},
		{"  --no-recursive", "Do not search subdirectories"},
		{"", ""},
		{"Output & behavior", ""},
		{"  -f, --force", "Overwrite existing .wav outputs"},
		{"  -d, --dry-run", "Preview only; do not convert"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Decoder diagnostics (ffmpeg, ffprobe)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	})
}
