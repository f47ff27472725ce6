// Package display renders human-facing output: the banner, byte and time
// formatting, and the end-of-run summary table.
package display

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatBytes returns a human-readable IEC size (B, KiB, MiB, ...).
// Negative values are shown as zero.
func FormatBytes(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	return humanize.IBytes(uint64(bytes))
}

// FormatElapsed renders d in seconds with four decimals, e.g. "1.2500 s".
func FormatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.4f s", d.Seconds())
}
