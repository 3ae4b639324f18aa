package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderTable draws rows under headers. Columns named in rightAligned (by
// zero-based index) are right aligned; short rows are padded.
func renderTable(headers []string, rows [][]string, rightAligned ...int) string {
	if len(headers) == 0 {
		return ""
	}
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(toRow(headers, len(headers)))
	for _, row := range rows {
		tw.AppendRow(toRow(row, len(headers)))
	}

	configs := make([]table.ColumnConfig, 0, len(rightAligned))
	for _, col := range rightAligned {
		if col < 0 || col >= len(headers) {
			continue
		}
		configs = append(configs, table.ColumnConfig{Number: col + 1, Align: text.AlignRight, AlignHeader: text.AlignLeft})
	}
	tw.SetColumnConfigs(configs)
	return tw.Render()
}

func toRow(cells []string, width int) table.Row {
	row := make(table.Row, width)
	for i := range row {
		row[i] = ""
		if i < len(cells) {
			row[i] = cells[i]
		}
	}
	return row
}
