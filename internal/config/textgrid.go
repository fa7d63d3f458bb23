package config

// Configuration and flag parsing for the textgridsplit tool: cutting WAV
// files into per-interval segments using Praat TextGrid annotations.

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
)

// ManifestFormat selects the segment manifest encoding.
type ManifestFormat string

const (
	ManifestCSV  ManifestFormat = "csv"  // Flat rows (default).
	ManifestJSON ManifestFormat = "json" // Rows plus run metadata.
)

// SegmentConfig holds all runtime settings for textgridsplit.
type SegmentConfig struct {
	Common

	TextGridDir string
	WavDir      string
	OutputDir   string

	Tier            int     // TextGrid item index holding the transcription tier. Default: 4.
	MinDuration     float64 // Segments shorter than this many seconds are skipped. Default: 0.5.
	DeleteOriginals bool    // Remove source pairs after successful processing.
	AssumeYes       bool    // Skip the interactive deletion confirmation.
	SaveManifest    bool    // Default: true. Cleared by --no-manifest.
	ManifestFormat  ManifestFormat
}

// DefaultSegmentConfig returns a SegmentConfig with legacy-parity defaults.
func DefaultSegmentConfig() SegmentConfig {
	return SegmentConfig{
		Common:         DefaultCommon(),
		Tier:           4,
		MinDuration:    envFloat("SPT_MIN_DURATION", 0.5),
		SaveManifest:   true,
		ManifestFormat: ManifestCSV,
	}
}

// ParseSegmentFlags parses os.Args into cfg. On --help or --version it prints
// and exits.
func ParseSegmentFlags(cfg *SegmentConfig, version string) error {
	fs := flag.NewFlagSet("textgridsplit", flag.ContinueOnError)
	usage := func() { printSegmentUsage(version) }
	fs.Usage = usage

	var common commonFlags
	var noManifest bool

	fs.StringVar(&cfg.TextGridDir, "textgrid-dir", "", "Directory containing .TextGrid files")
	fs.StringVar(&cfg.TextGridDir, "t", "", "Same as --textgrid-dir")
	fs.StringVar(&cfg.WavDir, "wav-dir", "", "Directory containing corresponding .wav files")
	fs.StringVar(&cfg.WavDir, "w", "", "Same as --wav-dir")
	fs.StringVar(&cfg.OutputDir, "output-dir", "", "Directory for split audio files")
	fs.StringVar(&cfg.OutputDir, "o", "", "Same as --output-dir")
	fs.IntVar(&cfg.Tier, "tier", cfg.Tier, "TextGrid item index of the transcription tier")
	fs.Float64Var(&cfg.MinDuration, "min-duration", cfg.MinDuration, "Minimum segment duration in seconds")
	fs.BoolVar(&cfg.DeleteOriginals, "delete-originals", false, "Delete source pairs after processing")
	fs.BoolVar(&cfg.AssumeYes, "yes", false, "Skip the deletion confirmation prompt")
	fs.BoolVar(&cfg.AssumeYes, "y", false, "Same as --yes")
	fs.BoolVar(&noManifest, "no-manifest", false, "Do not write a segment manifest")
	fs.Var(&manifestFormatValue{&cfg.ManifestFormat}, "manifest-format", "Manifest format: csv | json")
	defineDisplayFlags(fs, &cfg.Common, &common)
	defineUtilityFlags(fs, &common)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	if noManifest {
		cfg.SaveManifest = false
	}
	applyCommonFlags("textgridsplit", version, &cfg.Common, &common, usage)

	cfg.TextGridDir = NormalizeDirArg(cfg.TextGridDir)
	cfg.WavDir = NormalizeDirArg(cfg.WavDir)
	cfg.OutputDir = NormalizeDirArg(cfg.OutputDir)
	return nil
}

// Validate checks required directories and value ranges.
func (c *SegmentConfig) Validate() error {
	if c.TextGridDir == "" || c.WavDir == "" || c.OutputDir == "" {
		return errors.New("need --textgrid-dir, --wav-dir, and --output-dir")
	}
	if c.Tier < 1 {
		return errors.New("tier must be a positive item index")
	}
	if c.MinDuration < 0 {
		return errors.New("min-duration must not be negative")
	}
	switch c.ManifestFormat {
	case ManifestCSV, ManifestJSON:
		return nil
	default:
		return errors.New("invalid manifest format (use 'csv' or 'json')")
	}
}

// manifestFormatValue is a flag.Value adapter for the ManifestFormat enum.
type manifestFormatValue struct{ p *ManifestFormat }

func (m *manifestFormatValue) String() string { return string(*m.p) }
func (m *manifestFormatValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "csv":
		*m.p = ManifestCSV
	case "json":
		*m.p = ManifestJSON
	default:
		return fmt.Errorf("invalid manifest format %q (use 'csv' or 'json')", s)
	}
	return nil
}

func printSegmentUsage(version string) {
	printUsage([]usageLine{
		{"", "textgridsplit v" + version + " — cut WAV files along TextGrid intervals"},
		{"", ""},
		{"  textgridsplit -t <dir> -w <dir> -o <dir> [OPTIONS]", ""},
		{"", ""},
		{"Paths", ""},
		{"  -t, --textgrid-dir <dir>", "Directory containing .TextGrid files"},
		{"  -w, --wav-dir <dir>", "Directory containing corresponding .wav files"},
		{"  -o, --output-dir <dir>", "Directory for split audio files"},
		{"", ""},
		{"Segmentation", ""},
		{"  --tier <n>", "TextGrid item index of the transcription tier (default: 4)"},
		{"  --min-duration <sec>", "Minimum segment duration (default: 0.5)"},
		{"", ""},
		{"Output & behavior", ""},
		{"  --no-manifest", "Do not write a segment manifest"},
		{"  --manifest-format <f>", "Manifest format: csv | json (default: csv)"},
		{"  --delete-originals", "Delete source pairs after processing"},
		{"  -y, --yes", "Skip the deletion confirmation prompt"},
		{"  -d, --dry-run", "Preview only; do not cut audio"},
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
