package display

import (
	"fmt"
	"io"

	"github.com/backmassage/texbake/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Magenta)
	fmt.Fprint(w, ` _            _           _
| |_ _____  _| |__   __ _| | _____
| __/ _ \ \/ / '_ \ / _`+"`"+` | |/ / _ \
| ||  __/>  <| |_) | (_| |   <  __/
 \__\___/_/\_\_.__/ \__,_|_|\_\___|
`)
	if term.Enabled() {
		fmt.Fprintln(w, term.NC)
	}
}
