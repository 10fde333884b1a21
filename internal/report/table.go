package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func renderTable(w io.Writer, s Summary) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "Problem"})
	for _, finding := range s.Findings {
		tw.AppendRow(table.Row{finding.ID, finding.Reason})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})

	if len(s.Findings) > 0 {
		if _, err := fmt.Fprintln(w, tw.Render()); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "%d of %d records flagged\n", len(s.Findings), s.Records); err != nil {
		return err
	}
	if s.Skipped > 0 {
		if _, err := fmt.Fprintf(w, "%d records skipped (missing identifier)\n", s.Skipped); err != nil {
			return err
		}
	}
	return nil
}
