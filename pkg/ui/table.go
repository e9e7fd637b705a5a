package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Align is the horizontal alignment of a column
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// TableColumn represents a column in the table
type TableColumn struct {
	Header string
	// Width is the minimum display width
	Width int
	// MaxWidth truncates longer cells; zero means no limit
	MaxWidth int
	Align    Align
}

// Table renders rows under a header. Rows whose first cell is empty continue
// the group of the row above and share its shading.
type Table struct {
	Columns []TableColumn
	Rows    [][]string
}

// NewTable creates a new table with specified columns
func NewTable(columns []TableColumn) *Table {
	return &Table{
		Columns: columns,
		Rows:    [][]string{},
	}
}

// AddRow adds a row to the table. Missing cells render empty, extra cells are dropped.
func (t *Table) AddRow(cells []string) {
	row := make([]string, len(t.Columns))
	for i := range row {
		if i >= len(cells) {
			break
		}
		row[i] = cells[i]
		if limit := t.Columns[i].MaxWidth; limit > 0 {
			row[i] = Truncate(row[i], limit)
		}
	}
	t.Rows = append(t.Rows, row)
}

// Render renders the table as a string
func (t *Table) Render() string {
	if len(t.Columns) == 0 {
		return ""
	}

	widths := t.widths()
	var builder strings.Builder

	header := make([]string, len(t.Columns))
	sep := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = padString(col.Header, widths[i], AlignLeft)
		sep[i] = strings.Repeat("─", widths[i])
	}
	builder.WriteString(StyleTableHeader.Render(strings.Join(header, "  ")))
	builder.WriteString("\n")
	builder.WriteString(StyleTableBorder.Render(strings.Join(sep, "  ")))
	builder.WriteString("\n")

	group := -1
	for idx, row := range t.Rows {
		if idx == 0 || row[0] != "" {
			group++
		}

		parts := make([]string, len(t.Columns))
		for i, cell := range row {
			parts[i] = padString(cell, widths[i], t.Columns[i].Align)
		}

		style := StyleTableRow
		if group%2 == 1 {
			style = StyleTableRowAlt
		}
		builder.WriteString(style.Render(strings.Join(parts, "  ")))
		builder.WriteString("\n")
	}

	return builder.String()
}

// widths returns the display width of every column
func (t *Table) widths() []int {
	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		widths[i] = max(col.Width, lipgloss.Width(col.Header))
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}
	return widths
}

// padString pads s to width display columns
func padString(s string, width int, align Align) string {
	padding := width - lipgloss.Width(s)
	if padding <= 0 {
		return s
	}

	switch align {
	case AlignRight:
		return strings.Repeat(" ", padding) + s
	case AlignCenter:
		left := padding / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", padding-left)
	default:
		return s + strings.Repeat(" ", padding)
	}
}

// Truncate shortens s to max display columns, ending with an ellipsis
func Truncate(s string, max int) string {
	if max <= 0 || lipgloss.Width(s) <= max {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > max {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// RenderKeyValue renders a key-value pair
func RenderKeyValue(key, value string) string {
	return fmt.Sprintf("%s: %s",
		StyleAccent.Render(key),
		value,
	)
}
