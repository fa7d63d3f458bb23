// Package config holds per-tool runtime configuration: defaults, CLI flag
// parsing, and validation. Each tool owns a Config struct in its own file;
// this file carries the settings and helpers every tool shares.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Common holds the display and logging settings shared by every tool.
// Tool configs embed it so the logger and flag plumbing stay uniform.
type Common struct {
	Verbose   bool
	DryRun    bool
	ColorMode ColorMode
	LogFile   string // Optional log file path.
}

// DefaultCommon returns the shared defaults (auto color, no log file).
func DefaultCommon() Common {
	return Common{ColorMode: ColorAuto}
}

// commonFlags holds boolean flags that are applied after Parse. These either
// invert a default (noColor -> ColorNever) or trigger exit (showHelp).
type commonFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineDisplayFlags registers --color, --no-color, verbose, --log, --dry-run.
func defineDisplayFlags(fs *flag.FlagSet, c *Common, n *commonFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&c.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&c.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&c.DryRun, "dry-run", false, "Preview only; do not write files")
	fs.BoolVar(&c.DryRun, "d", false, "Same as --dry-run")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "Append logs to file")
	fs.StringVar(&c.LogFile, "l", c.LogFile, "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, n *commonFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyCommonFlags copies negated flag values into c and handles the
// help/version exits shared by all tools.
func applyCommonFlags(name, version string, c *Common, n *commonFlags, usage func()) {
	if n.noColor {
		c.ColorMode = ColorNever
	} else if n.forceColor {
		c.ColorMode = ColorAlways
	}
	if n.showHelp {
		usage()
		os.Exit(0)
	}
	if n.showVersion {
		fmt.Fprintln(os.Stdout, name+" v"+version)
		os.Exit(0)
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// ValidatePaths ensures the resolved output directory is not inside (or equal
// to) the resolved input directory. This prevents a batch run from
// recursively discovering its own output files. Both arguments must be
// absolute, symlink-resolved paths.
func ValidatePaths(inputAbs, outputAbs string) error {
	sep := string(filepath.Separator)
	if outputAbs == inputAbs || strings.HasPrefix(outputAbs+sep, inputAbs+sep) {
		return errors.New("output directory must not be inside input directory")
	}
	return nil
}

// usageLine is one row of help output: flag column and description column.
type usageLine struct {
	flags string
	desc  string
}

// printUsage writes column-aligned help text to stderr.
func printUsage(lines []usageLine) {
	const col1 = 30 // width of "  -x, --long-name <arg>  "
	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// colorModeValue is a flag.Value adapter for the ColorMode enum.
type colorModeValue struct{ p *ColorMode }

func (c *colorModeValue) String() string { return string(*c.p) }
func (c *colorModeValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "auto":
		*c.p = ColorAuto
	case "always":
		*c.p = ColorAlways
	case "never":
		*c.p = ColorNever
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
	return nil
}
