package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Paginate slices items down to the requested page (1-based) and returns the
// page along with the total page count. Out-of-range pages clamp to the
// nearest valid one.
func Paginate[T any](items []T, page, perPage int) ([]T, int) {
	if perPage <= 0 {
		perPage = 10
	}
	total := (len(items) + perPage - 1) / perPage
	if total == 0 {
		return nil, 0
	}
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}
	start := (page - 1) * perPage
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], total
}

// RenderTable writes rows as an aligned table with a serial-number column,
// offset so numbering continues across pages.
func RenderTable(w io.Writer, headers []string, rows [][]string, serialOffset int) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Sl. No\t"+strings.Join(headers, "\t"))
	for i, row := range rows {
		fmt.Fprintf(tw, "%d\t%s\n", serialOffset+i+1, strings.Join(row, "\t"))
	}
	tw.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
