// Package term owns the console color state shared by the logger, the
// banner and the summary table.
//
// The sequences live in package-level strings so callers can concatenate
// them unconditionally; they are empty while colors are off. [Configure]
// also switches go-pretty's global color flag so rendered tables follow the
// same mode as log lines.
package term

import (
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/backmassage/texbake/internal/config"
)

// Escape sequences, empty when colors are disabled.
var (
	Red     = ""
	Green   = ""
	Yellow  = ""
	Blue    = ""
	Cyan    = ""
	Magenta = ""
	NC      = "" // reset
)

var palette = []struct {
	dst    *string
	colors text.Colors
}{
	{&Red, text.Colors{text.Bold, text.FgHiRed}},
	{&Green, text.Colors{text.Bold, text.FgHiGreen}},
	{&Yellow, text.Colors{text.Bold, text.FgHiYellow}},
	{&Blue, text.Colors{text.Bold, text.FgHiBlue}},
	{&Cyan, text.Colors{text.Bold, text.FgHiCyan}},
	{&Magenta, text.Colors{text.Bold, text.FgHiMagenta}},
	{&NC, text.Colors{text.Reset}},
}

// Configure resolves mode against stdout and the environment and sets the
// escape strings. NewLogger calls it once at startup.
func Configure(mode config.ColorMode) {
	on := resolve(mode)
	for _, p := range palette {
		*p.dst = ""
		if on {
			*p.dst = p.colors.EscapeSeq()
		}
	}
	if on {
		text.EnableColors()
	} else {
		text.DisableColors()
	}
}

// Enabled reports whether colors are on.
func Enabled() bool { return NC != "" }

// resolve honours NO_COLOR (https://no-color.org) and TERM=dumb in auto mode.
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" || strings.EqualFold(os.Getenv("TERM"), "dumb") {
		return false
	}
	return IsTerminal(os.Stdout)
}

// IsTerminal reports whether f is a terminal, Cygwin and MSYS ptys included.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
