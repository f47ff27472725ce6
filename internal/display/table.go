package display

import (
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// SummaryRow is one processed directory in the end-of-run table.
type SummaryRow struct {
	Directory string
	Bundles   int
	Processed int
	Failed    int
	Unparsed  int
	Bytes     int64
	Elapsed   time.Duration
}

var summaryHeaders = table.Row{"Directory", "Bundles", "Done", "Failed", "Unparsed", "Source size", "Elapsed"}

// RenderSummary returns rows as a rounded table with a totals footer, or ""
// when there are no rows.
func RenderSummary(rows []SummaryRow) string {
	if len(rows) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	// Keep unit suffixes such as "KiB" intact in the totals row.
	tw.Style().Format.Footer = text.FormatDefault
	tw.AppendHeader(summaryHeaders)

	var total SummaryRow
	for _, r := range rows {
		tw.AppendRow(summaryRow(r))
		total.Bundles += r.Bundles
		total.Processed += r.Processed
		total.Failed += r.Failed
		total.Unparsed += r.Unparsed
		total.Bytes += r.Bytes
		total.Elapsed += r.Elapsed
	}
	total.Directory = "Total"
	tw.AppendFooter(summaryRow(total))

	configs := make([]table.ColumnConfig, 0, len(summaryHeaders))
	for i := range summaryHeaders {
		align := text.AlignRight
		if i == 0 {
			align = text.AlignLeft
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignFooter: align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

func summaryRow(r SummaryRow) table.Row {
	return table.Row{
		r.Directory,
		strconv.Itoa(r.Bundles),
		strconv.Itoa(r.Processed),
		strconv.Itoa(r.Failed),
		strconv.Itoa(r.Unparsed),
		FormatBytes(r.Bytes),
		FormatElapsed(r.Elapsed),
	}
}
