package config

// Configuration and flag parsing for the duration tool: dataset duration
// statistics from a TXT/JSON/CSV manifest.

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
)

// DurationConfig holds all runtime settings for duration.
type DurationConfig struct {
	Common

	// Paths (set from positional args).
	ManifestFile string
	AudioBaseDir string

	Separator  string   // Separator for text manifests. Default: "::".
	Formats    []string // Accepted audio extensions (with leading dot, lowercase).
	OutputFile string   // -o: save the text report.
	JSONOutput string   // Save full results as JSON.
	CheckOnly  bool     // Run --check diagnostics and exit.
}

// defaultFormats are the extensions accepted when -f is not given.
var defaultFormats = []string{".wav", ".flac", ".mp3", ".ogg", ".m4a", ".aac"}

// DefaultDurationConfig returns a DurationConfig with legacy-parity defaults.
func DefaultDurationConfig() DurationConfig {
	return DurationConfig{
		Common:    DefaultCommon(),
		Separator: envString("SPT_SEPARATOR", "::"),
		Formats:   append([]string(nil), defaultFormats...),
	}
}

// formatsValue is a flag.Value collecting a comma- or repeat-separated list
// of audio extensions, normalized to lowercase with a leading dot.
type formatsValue struct{ p *[]string }

func (f *formatsValue) String() string { return strings.Join(*f.p, ",") }
func (f *formatsValue) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if !strings.HasPrefix(part, ".") {
			part = "." + part
		}
		*f.p = append(*f.p, part)
	}
	return nil
}

// ParseDurationFlags parses os.Args into cfg. On --help or --version it
// prints and exits.
func ParseDurationFlags(cfg *DurationConfig, version string) error {
	fs := flag.NewFlagSet("duration", flag.ContinueOnError)
	usage := func() { printDurationUsage(version) }
	fs.Usage = usage

	var common commonFlags
	var formats []string

	fs.StringVar(&cfg.Separator, "separator", cfg.Separator, "Separator for text manifests")
	fs.StringVar(&cfg.Separator, "s", cfg.Separator, "Same as --separator")
	fs.Var(&formatsValue{&formats}, "formats", "Accepted audio formats (repeatable or comma-separated)")
	fs.Var(&formatsValue{&formats}, "f", "Same as --formats")
	fs.StringVar(&cfg.OutputFile, "output", "", "Save the text report to a file")
	fs.StringVar(&cfg.OutputFile, "o", "", "Same as --output")
	fs.StringVar(&cfg.JSONOutput, "json-output", "", "Save full results as JSON")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run probe diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	defineDisplayFlags(fs, &cfg.Common, &common)
	defineUtilityFlags(fs, &common)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	if len(formats) > 0 {
		cfg.Formats = formats
	}
	applyCommonFlags("duration", version, &cfg.Common, &common, usage)

	if cfg.CheckOnly {
		return nil
	}
	args := fs.Args()
	if len(args) != 2 {
		return fmt.Errorf("need exactly manifest_file and audio_base_dir")
	}
	cfg.ManifestFile = args[0]
	cfg.AudioBaseDir = NormalizeDirArg(args[1])
	return nil
}

// Validate checks required settings.
func (c *DurationConfig) Validate() error {
	if c.Separator == "" {
		return errors.New("separator must not be empty")
	}
	if len(c.Formats) == 0 {
		return errors.New("need at least one accepted audio format")
	}
	if c.CheckOnly {
		return nil
	}
	if c.ManifestFile == "" || c.AudioBaseDir == "" {
		return errors.New("need exactly manifest_file and audio_base_dir")
	}
	return nil
}

func printDurationUsage(version string) {
	printUsage([]usageLine{
		{"", "duration v" + version + " — dataset duration statistics"},
		{"", ""},
		{"  duration [OPTIONS] <manifest_file> <audio_base_dir>", ""},
		{"", ""},
		{"Analysis", ""},
		{"  -s, --separator <sep>", "Separator for text manifests (default: ::)"},
		{"  -f, --formats <list>", "Accepted audio formats (default: wav flac mp3 ogg m4a aac)"},
		{"", ""},
		{"Output", ""},
		{"  -o, --output <path>", "Save the text report to a file"},
		{"  --json-output <path>", "Save full results as JSON"},
		{"  -v, --verbose", "List per-file details"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Probe diagnostics (ffprobe)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	})
}
