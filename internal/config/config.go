// Package config holds runtime configuration: defaults, command-line
// parsing, the optional TOML file, and validation. With no arguments the
// tool processes *.tga under the current directory and writes the PNG
// outputs next to the sources.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then by [LoadFile] and [Args.Apply], and validated before being passed
// (by pointer) to packages that need it.
type Config struct {
	// Paths.
	InputDir  string // Default: current directory.
	OutputDir string // Default: InputDir (in-place).

	// Processing.
	GeneratePSD      bool     // Accepted and stored; layered export is not implemented.
	Workers          int      // Default: runtime.NumCPU().
	SourceExtensions []string // Default: ["tga"].
	SharpenSigma     float64  // Default: 1.0. Zero disables sharpening.

	// Display and logging.
	Verbose    bool
	ColorMode  ColorMode // Default: "auto".
	LogFile    string    // Optional log file path.
	CheckOnly  bool      // Run -check diagnostics and exit.
	ConfigFile string    // TOML file loaded before CLI overrides, if any.
}

// DefaultConfig returns a Config rooted at the current working directory.
func DefaultConfig() Config {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return Config{
		InputDir:         NormalizeDirArg(wd),
		Workers:          runtime.NumCPU(),
		SourceExtensions: []string{"tga"},
		SharpenSigma:     1.0,
		ColorMode:        ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes and backslashes from a directory
// path. The filesystem root "/" is returned unchanged so we don't produce an
// empty string.
func NormalizeDirArg(path string) string {
	if path == "/" || path == `\` {
		return path
	}
	return strings.TrimRight(path, `/\`)
}

// Validate normalizes paths and extensions and checks numeric and enum
// fields. An empty OutputDir becomes InputDir.
func (c *Config) Validate() error {
	c.InputDir = NormalizeDirArg(c.InputDir)
	c.OutputDir = NormalizeDirArg(c.OutputDir)
	if c.InputDir == "" {
		return errors.New("input directory must not be empty")
	}
	if c.OutputDir == "" {
		c.OutputDir = c.InputDir
	}

	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1 (got %d)", c.Workers)
	}
	if c.SharpenSigma < 0 {
		return fmt.Errorf("sharpen sigma must not be negative (got %g)", c.SharpenSigma)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	exts, err := normalizeExtensions(c.SourceExtensions)
	if err != nil {
		return err
	}
	c.SourceExtensions = exts
	return nil
}

// normalizeExtensions lower-cases, strips leading dots, de-duplicates and
// sorts exts. Every entry must be 1-3 ASCII letters or digits, the only
// extensions the file-name grammar accepts.
func normalizeExtensions(exts []string) ([]string, error) {
	if len(exts) == 0 {
		return nil, errors.New("at least one source extension is required")
	}
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		n := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
		if !validExtension(n) {
			return nil, fmt.Errorf("invalid source extension %q (use 1-3 letters or digits)", e)
		}
		out = append(out, n)
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}

func validExtension(ext string) bool {
	if len(ext) < 1 || len(ext) > 3 {
		return false
	}
	for _, r := range ext {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}

// InPlace reports whether outputs are written next to their sources.
func (c *Config) InPlace() bool {
	return filepath.Clean(c.InputDir) == filepath.Clean(c.OutputDir)
}

// NestedOutput reports whether the output directory lies strictly inside
// the input directory, in which case the directory walk must skip it. Both
// arguments must be absolute, symlink-resolved paths.
func NestedOutput(inputAbs, outputAbs string) bool {
	sep := string(filepath.Separator)
	return outputAbs != inputAbs && strings.HasPrefix(outputAbs+sep, inputAbs+sep)
}

// ForDirectory returns a copy of c scoped to dir, a directory at or below
// InputDir. In-place runs write into dir itself; otherwise the output
// mirrors dir's path relative to InputDir under OutputDir.
func (c *Config) ForDirectory(dir string) (Config, error) {
	scoped := c.Clone()
	scoped.InputDir = dir
	if c.InPlace() {
		scoped.OutputDir = dir
		return scoped, nil
	}
	rel, err := filepath.Rel(c.InputDir, dir)
	if err != nil {
		return Config{}, fmt.Errorf("relative path of %q: %w", dir, err)
	}
	scoped.OutputDir = filepath.Join(c.OutputDir, rel)
	return scoped, nil
}

// Clone returns a deep copy of c.
func (c *Config) Clone() Config {
	return Config{
		InputDir:         c.InputDir,
		OutputDir:        c.OutputDir,
		GeneratePSD:      c.GeneratePSD,
		Workers:          c.Workers,
		SourceExtensions: slices.Clone(c.SourceExtensions),
		SharpenSigma:     c.SharpenSigma,
		Verbose:          c.Verbose,
		ColorMode:        c.ColorMode,
		LogFile:          c.LogFile,
		CheckOnly:        c.CheckOnly,
		ConfigFile:       c.ConfigFile,
	}
}

// String renders every field as a "Name: value" line, for verbose logs.
func (c *Config) String() string {
	var b strings.Builder
	line := func(name string, v any) { fmt.Fprintf(&b, "%s: %v\n", name, v) }
	line("InputDir", c.InputDir)
	line("OutputDir", c.OutputDir)
	line("GeneratePSD", c.GeneratePSD)
	line("Workers", c.Workers)
	line("SourceExtensions", strings.Join(c.SourceExtensions, ","))
	line("SharpenSigma", c.SharpenSigma)
	line("Verbose", c.Verbose)
	line("ColorMode", c.ColorMode)
	line("LogFile", c.LogFile)
	line("CheckOnly", c.CheckOnly)
	line("ConfigFile", c.ConfigFile)
	return b.String()
}
