package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/vmunix/wdtvmd/internal/walker"
)

// renderFailures formats the per-file error report: a table on a
// terminal, one "path: error" line per failure otherwise.
func renderFailures(w io.Writer, failures []walker.Failure) string {
	if len(failures) == 0 {
		return ""
	}
	if !isTerminal(w) {
		return plainFailures(failures)
	}

	rows := make([][]string, len(failures))
	for i, f := range failures {
		rows[i] = []string{f.Path, f.Err.Error()}
	}
	header := fmt.Sprintf("%d file(s) failed:\n", len(failures))
	return header + renderTable([]string{"File", "Error"}, rows) + "\n"
}

func plainFailures(failures []walker.Failure) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d file(s) failed:\n", len(failures))
	for _, f := range failures {
		fmt.Fprintf(&b, "  %s: %v\n", f.Path, f.Err)
	}
	return b.String()
}

func renderTable(headers []string, rows [][]string) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault

	header := make(table.Row, columns)
	for i := range columns {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := range columns {
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignLeft,
			AlignHeader: text.AlignLeft,
			WidthMax:    80,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
