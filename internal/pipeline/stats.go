package pipeline

import (
	"time"

	"github.com/backmassage/texbake/internal/display"
)

// DirStats tracks the outcome of one processed directory.
type DirStats struct {
	Directory string
	Bundles   int   // bundles found
	Processed int   // bundles whose plan ran without error
	Failed    int   // bundles that failed, including output claim conflicts
	Unparsed  int   // source files whose name did not parse
	Bytes     int64 // total size of the listed sources
	Elapsed   time.Duration
}

// RunStats aggregates every directory of a run. Directories without
// bundles or unparsed files are not recorded.
type RunStats struct {
	Directories []DirStats
	Elapsed     time.Duration
}

// Bundles returns the total number of bundles found.
func (s *RunStats) Bundles() int {
	n := 0
	for _, d := range s.Directories {
		n += d.Bundles
	}
	return n
}

// Processed returns the total number of bundles processed without error.
func (s *RunStats) Processed() int {
	n := 0
	for _, d := range s.Directories {
		n += d.Processed
	}
	return n
}

// Failed returns the total number of failed bundles.
func (s *RunStats) Failed() int {
	n := 0
	for _, d := range s.Directories {
		n += d.Failed
	}
	return n
}

// Rows converts the per-directory stats for display.RenderSummary.
func (s *RunStats) Rows() []display.SummaryRow {
	rows := make([]display.SummaryRow, len(s.Directories))
	for i, d := range s.Directories {
		rows[i] = display.SummaryRow{
			Directory: d.Directory,
			Bundles:   d.Bundles,
			Processed: d.Processed,
			Failed:    d.Failed,
			Unparsed:  d.Unparsed,
			Bytes:     d.Bytes,
			Elapsed:   d.Elapsed,
		}
	}
	return rows
}
