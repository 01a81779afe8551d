// Package table provides utilities for rendering formatted tables in the
// terminal, used to list the animation registry.
package table

import (
	"fmt"
	"io"
	"strings"
)

// Column represents a table column with its configuration.
type Column struct {
	Header   string
	MinWidth int
	Align    Alignment
}

// Alignment specifies how content should be aligned within a column.
type Alignment int

const (
	// AlignLeft aligns content to the left.
	AlignLeft Alignment = iota
	// AlignRight aligns content to the right.
	AlignRight
)

// Table represents a table with columns and rows.
type Table struct {
	columns []Column
	rows    [][]string
	widths  []int
}

// New creates a new table with the specified columns.
func New(columns ...Column) *Table {
	t := &Table{
		columns: columns,
		widths:  make([]int, len(columns)),
	}

	// Initialize widths with header lengths and minimum widths
	for i, col := range columns {
		t.widths[i] = len(col.Header)
		if col.MinWidth > t.widths[i] {
			t.widths[i] = col.MinWidth
		}
	}

	return t
}

// AddRow adds a row of values to the table. Missing values render empty.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.columns))
	for i := range t.columns {
		if i < len(values) {
			row[i] = values[i]
		}
	}

	// Grow column widths to fit content
	for i, val := range row {
		if len(val) > t.widths[i] {
			t.widths[i] = len(val)
		}
	}

	t.rows = append(t.rows, row)
}

// RowCount returns the number of rows in the table.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// formatCell formats a cell value according to column width and alignment.
func formatCell(value string, width int, align Alignment) string {
	if align == AlignRight {
		return fmt.Sprintf("%*s", width, value)
	}
	return fmt.Sprintf("%-*s", width, value)
}

// renderHeader returns the formatted header row (bold).
func (t *Table) renderHeader() string {
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		parts[i] = formatCell(col.Header, t.widths[i], col.Align)
	}
	return "\033[1m" + strings.Join(parts, " │ ") + "\033[0m"
}

// renderSeparator returns the separator line between header and rows.
func (t *Table) renderSeparator() string {
	parts := make([]string, len(t.widths))
	for i, w := range t.widths {
		parts[i] = strings.Repeat("─", w)
	}
	return strings.Join(parts, "─┼─")
}

// renderRow returns the formatted row at the given index.
func (t *Table) renderRow(index int) string {
	row := t.rows[index]
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		parts[i] = formatCell(row[i], t.widths[i], col.Align)
	}
	return strings.Join(parts, " │ ")
}

// Render returns the complete table as a string.
func (t *Table) Render() string {
	lines := make([]string, 0, len(t.rows)+2)
	lines = append(lines, t.renderHeader(), t.renderSeparator())
	for i := range t.rows {
		lines = append(lines, t.renderRow(i))
	}
	return strings.Join(lines, "\n")
}

// Fprint writes the rendered table to w with a two-space indent.
func (t *Table) Fprint(w io.Writer) {
	for _, line := range strings.Split(t.Render(), "\n") {
		fmt.Fprintf(w, "  %s\n", line)
	}
}
