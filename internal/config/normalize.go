package config

// Configuration and flag parsing for the normalize tool: transcript cleanup
// for TXT, JSON, and CSV manifests.

import (
	"errors"
	"flag"
	"os"
)

// NormalizeConfig holds all runtime settings for normalize.
type NormalizeConfig struct {
	Common

	// Inputs are files or (with Recursive) directories, set from positional args.
	Inputs []string

	OutputFile string // -o: output path, only valid with a single input file.
	Separator  string // Separator between file and transcription. Default: "::".
	RulesFile  string // -c: optional JSON rules config.
	Suffix     string // Appended to the stem of batch outputs. Default: "_normalized".
	Recursive  bool   // Walk directories for .txt/.json/.csv inputs.
}

// DefaultNormalizeConfig returns a NormalizeConfig with legacy-parity defaults.
func DefaultNormalizeConfig() NormalizeConfig {
	return NormalizeConfig{
		Common:    DefaultCommon(),
		Separator: envString("SPT_SEPARATOR", "::"),
		Suffix:    envString("SPT_OUTPUT_SUFFIX", "_normalized"),
	}
}

// ParseNormalizeFlags parses os.Args into cfg. On --help or --version it
// prints and exits.
func ParseNormalizeFlags(cfg *NormalizeConfig, version string) error {
	fs := flag.NewFlagSet("normalize", flag.ContinueOnError)
	usage := func() { printNormalizeUsage(version) }
	fs.Usage = usage

	var common commonFlags

	fs.StringVar(&cfg.OutputFile, "output", "", "Output file (single input only)")
	fs.StringVar(&cfg.OutputFile, "o", "", "Same as --output")
	fs.StringVar(&cfg.Separator, "separator", cfg.Separator, "Separator between file and transcription")
	fs.StringVar(&cfg.Separator, "s", cfg.Separator, "Same as --separator")
	fs.StringVar(&cfg.RulesFile, "config", "", "JSON rules config file")
	fs.StringVar(&cfg.RulesFile, "c", "", "Same as --config")
	fs.StringVar(&cfg.Suffix, "suffix", cfg.Suffix, "Suffix for batch output filenames")
	fs.BoolVar(&cfg.Recursive, "recursive", false, "Walk directories for transcript files")
	fs.BoolVar(&cfg.Recursive, "r", false, "Same as --recursive")
	defineDisplayFlags(fs, &cfg.Common, &common)
	defineUtilityFlags(fs, &common)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyCommonFlags("normalize", version, &cfg.Common, &common, usage)

	if len(fs.Args()) == 0 {
		return errors.New("need at least one input file or directory")
	}
	cfg.Inputs = fs.Args()
	return nil
}

// Validate checks flag combinations that only make sense together.
func (c *NormalizeConfig) Validate() error {
	if c.Separator == "" {
		return errors.New("separator must not be empty")
	}
	if c.OutputFile != "" && len(c.Inputs) > 1 {
		return errors.New("--output is only valid with a single input file")
	}
	if c.Suffix == "" && c.OutputFile == "" {
		return errors.New("suffix must not be empty (outputs would overwrite inputs)")
	}
	return nil
}

func printNormalizeUsage(version string) {
	printUsage([]usageLine{
		{"", "normalize v" + version + " — normalize transcript files (txt/json/csv)"},
		{"", ""},
		{"  normalize [OPTIONS] <input>...", ""},
		{"", ""},
		{"Normalization", ""},
		{"  -s, --separator <sep>", "Separator between file and transcription (default: ::)"},
		{"  -c, --config <path>", "JSON rules config (markers, replacements)"},
		{"", ""},
		{"Output & behavior", ""},
		{"  -o, --output <path>", "Output file (single input only)"},
		{"  --suffix <s>", "Suffix for batch outputs (default: _normalized)"},
		{"  -r, --recursive", "Walk directories for transcript files"},
		{"  -d, --dry-run", "List files that would be processed"},
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
