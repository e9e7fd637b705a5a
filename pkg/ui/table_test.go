package ui

import (
	"strings"
	"testing"
)

func TestPadString(t *testing.T) {
	tests := []struct {
		s        string
		width    int
		align    Align
		expected string
	}{
		{"ab", 4, AlignLeft, "ab  "},
		{"ab", 4, AlignRight, "  ab"},
		{"ab", 5, AlignCenter, " ab  "},
		{"abcdef", 3, AlignLeft, "abcdef"},
		{"◆", 3, AlignLeft, "◆  "},
	}

	for _, tt := range tests {
		if got := padString(tt.s, tt.width, tt.align); got != tt.expected {
			t.Errorf("padString(%q, %d, %d) = %q, want %q", tt.s, tt.width, tt.align, got, tt.expected)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("chair_v001", 20); got != "chair_v001" {
		t.Errorf("Truncate should keep short strings, got %q", got)
	}
	if got := Truncate("chair_v001", 6); got != "chair…" {
		t.Errorf("Truncate = %q, want %q", got, "chair…")
	}
	if got := Truncate("abc", 0); got != "abc" {
		t.Errorf("Truncate with no limit = %q", got)
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]TableColumn{
		{Header: "NAME"},
		{Header: "OBJECTS", Align: AlignRight},
	})
	table.AddRow([]string{"chair", "2"})
	table.AddRow([]string{"long_table_name", "12"})

	out := table.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, separator and 2 rows, got %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(out, "long_table_name") || !strings.Contains(out, "OBJECTS") {
		t.Errorf("table is missing content:\n%s", out)
	}

	if NewTable(nil).Render() != "" {
		t.Error("a table without columns renders nothing")
	}
}

func TestTableAddRow(t *testing.T) {
	table := NewTable([]TableColumn{
		{Header: "ATTRIBUTE"},
		{Header: "VALUE", MaxWidth: 6},
	})
	table.AddRow([]string{"translateX", "0.123456789"})
	table.AddRow([]string{"visibility"})
	table.AddRow([]string{"a", "b", "dropped"})

	if got := table.Rows[0][1]; got != "0.123…" {
		t.Errorf("expected value truncated to 6 columns, got %q", got)
	}
	if len(table.Rows[1]) != 2 || table.Rows[1][1] != "" {
		t.Errorf("missing cells should be empty, got %q", table.Rows[1])
	}
	if len(table.Rows[2]) != 2 {
		t.Errorf("extra cells should be dropped, got %q", table.Rows[2])
	}
}

func TestTableWidths(t *testing.T) {
	table := NewTable([]TableColumn{
		{Header: "OBJECT", Width: 10},
		{Header: "ATTRIBUTE"},
	})
	table.AddRow([]string{"pCube1", "translateX"})
	table.AddRow([]string{"", "visibility"})

	widths := table.widths()
	if widths[0] != 10 {
		t.Errorf("minimum width should apply, got %d", widths[0])
	}
	if widths[1] != len("translateX") {
		t.Errorf("width should follow the widest cell, got %d", widths[1])
	}
}
