package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// column describes one report column. A table whose columns all have empty
// titles is printed without a heading.
type column struct {
	title string
	right bool
}

var (
	countColumn = column{title: "Count", right: true}
	labelColumn = column{}
	valueColumn = column{right: true}
)

// layout renders rows under cols. Titled tables get a heading line followed by
// a dashed rule as wide as each column.
func layout(cols []column, rows [][]string) []string {
	if len(cols) == 0 {
		return nil
	}
	widths := columnWidths(cols, rows)

	lines := make([]string, 0, len(rows)+2)
	if titled(cols) {
		titles := make([]string, len(cols))
		rule := make([]string, len(cols))
		for i, col := range cols {
			titles[i] = col.title
			rule[i] = strings.Repeat("-", widths[i])
		}
		lines = append(lines, joinCells(cols, widths, titles), strings.Join(rule, " "))
	}
	for _, row := range rows {
		lines = append(lines, joinCells(cols, widths, row))
	}
	return lines
}

func titled(cols []column) bool {
	for _, col := range cols {
		if col.title != "" {
			return true
		}
	}
	return false
}

func columnWidths(cols []column, rows [][]string) []int {
	widths := make([]int, len(cols))
	for i, col := range cols {
		widths[i] = runewidth.StringWidth(col.title)
	}
	for _, row := range rows {
		for i := range cols {
			if i < len(row) {
				widths[i] = max(widths[i], runewidth.StringWidth(row[i]))
			}
		}
	}
	return widths
}

func joinCells(cols []column, widths []int, cells []string) string {
	var b strings.Builder
	for i, col := range cols {
		if i > 0 {
			b.WriteByte(' ')
		}
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		gap := strings.Repeat(" ", max(0, widths[i]-runewidth.StringWidth(cell)))
		if col.right {
			b.WriteString(gap + cell)
		} else {
			b.WriteString(cell + gap)
		}
	}
	return strings.TrimRight(b.String(), " ")
}
