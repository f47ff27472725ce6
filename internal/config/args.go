package config

// This file implements command-line parsing and help text.
// Keys are case-insensitive and may start with "-" or "--". Valued keys take
// the next token unless it is itself a key; flags never take a value.

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// version is shown in help; override at build time with -ldflags "-X ...config.version=...".
var version = "1.0.0-dev"

// Version returns the build version string.
func Version() string { return version }

// valued lists keys that require a value, flags lists keys that never take one.
var (
	valued = map[string]bool{"in": true, "out": true, "workers": true, "config": true, "log": true}
	flags  = map[string]bool{"psd": true, "h": true, "help": true, "verbose": true, "v": true, "color": true, "nocolor": true, "check": true}
)

// Args is the parsed command line: lower-case key to (possibly empty) value.
// Later occurrences of a key replace earlier ones.
type Args struct {
	pairs map[string]string
}

// ParseArgs splits args into key/value pairs. Every failure is an
// *ArgumentError. An empty args slice is valid and selects all defaults.
func ParseArgs(args []string) (Args, error) {
	a := Args{pairs: make(map[string]string)}
	for n := 0; n < len(args); n++ {
		tok := args[n]
		if !strings.HasPrefix(tok, "-") {
			return Args{}, argumentf(tok, "command line arguments invalid format")
		}
		key := strings.ToLower(strings.TrimPrefix(strings.TrimPrefix(tok, "-"), "-"))
		if strings.TrimSpace(key) == "" {
			return Args{}, argumentf(tok, "command line arguments invalid format")
		}

		switch {
		case flags[key]:
			a.pairs[key] = ""
		case valued[key]:
			value := ""
			if n+1 < len(args) && !strings.HasPrefix(args[n+1], "-") {
				n++
				value = cleanValue(args[n])
			}
			if strings.TrimSpace(value) == "" {
				return Args{}, argumentf(tok, "missing value for '%s' parameter", key)
			}
			a.pairs[key] = value
		default:
			return Args{}, argumentf(tok, "unknown parameter '%s'", key)
		}
	}
	return a, nil
}

// cleanValue strips one surrounding quote character at each end and a
// trailing backslash, as left behind by Windows shells for "C:\dir\".
func cleanValue(v string) string {
	if strings.HasPrefix(v, `"`) || strings.HasPrefix(v, "'") {
		v = v[1:]
	}
	if strings.HasSuffix(v, `"`) || strings.HasSuffix(v, "'") {
		v = v[:len(v)-1]
	}
	return strings.TrimSuffix(v, `\`)
}

// Has reports whether key was given.
func (a Args) Has(key string) bool {
	_, ok := a.pairs[key]
	return ok
}

// Value returns the value of key, or "" when absent.
func (a Args) Value(key string) string { return a.pairs[key] }

// HelpRequested reports whether the first token of args is -h or -help (any
// dash count or case). It is checked before ParseArgs so a leading help
// request wins over the rest of the line.
func HelpRequested(args []string) bool {
	if len(args) == 0 {
		return false
	}
	key := strings.ToLower(strings.TrimLeft(args[0], "-"))
	return strings.HasPrefix(args[0], "-") && (key == "h" || key == "help")
}

// Help reports whether -h or -help was given.
func (a Args) Help() bool { return a.Has("h") || a.Has("help") }

// ConfigFile returns the -config path, or "".
func (a Args) ConfigFile() string { return a.Value("config") }

// Apply copies the parsed arguments into cfg, overriding defaults and any
// config file values. A non-integer -workers is an *ArgumentError.
func (a Args) Apply(cfg *Config) error {
	if v := a.Value("in"); v != "" {
		cfg.InputDir = NormalizeDirArg(v)
	}
	if v := a.Value("out"); v != "" {
		cfg.OutputDir = NormalizeDirArg(v)
	}
	if a.Has("psd") {
		cfg.GeneratePSD = true
	}
	if v := a.Value("workers"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return argumentf(v, "workers must be a whole number")
		}
		cfg.Workers = n
	}
	if v := a.Value("config"); v != "" {
		cfg.ConfigFile = v
	}
	if v := a.Value("log"); v != "" {
		cfg.LogFile = v
	}
	if a.Has("verbose") || a.Has("v") {
		cfg.Verbose = true
	}
	if a.Has("nocolor") {
		cfg.ColorMode = ColorNever
	} else if a.Has("color") {
		cfg.ColorMode = ColorAlways
	}
	if a.Has("check") {
		cfg.CheckOnly = true
	}
	return nil
}

// PrintUsage writes the help text to w. Column-aligned for readability.
func PrintUsage(w io.Writer) {
	const col1 = 24 // width of "  -key <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "texbake v" + version + " - bake parameter maps into albedo textures"},
		{"", ""},
		{"  texbake [-in <dir>] [-out <dir>] [OPTIONS]", ""},
		{"", ""},
		{"Paths", ""},
		{"  -in <dir>", "Input root, walked recursively (default: current directory)"},
		{"  -out <dir>", "Output root, mirrors the input tree (default: input root)"},
		{"", ""},
		{"Processing", ""},
		{"  -workers <n>", "Bundles processed in parallel (default: CPU count)"},
		{"  -config <file>", "TOML config file; command-line values win"},
		{"  -psd", "Accepted for compatibility; layered output is not written"},
		{"", ""},
		{"Display", ""},
		{"  -color", "Force colored logs"},
		{"  -nocolor", "Disable colored logs"},
		{"  -v, -verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -log <file>", "Append logs to file"},
		{"  -check", "Show decoder and output diagnostics and exit"},
		{"  -h, -help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(w)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(w, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(w, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
