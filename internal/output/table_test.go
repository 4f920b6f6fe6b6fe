package output

import (
	"strings"
	"testing"
)

func init() {
	// Style-free output keeps assertions simple.
	SetNoColor(true)
}

func TestTableRender(t *testing.T) {
	tbl := NewTable("Field", "Count")
	tbl.AddRow("goodThoughts", "3")
	tbl.AddRow("badThoughts", "0")

	out := tbl.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, separator, and 2 rows; got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Field") {
		t.Errorf("unexpected header line: %q", lines[0])
	}
	if !strings.Contains(lines[2], "goodThoughts") || !strings.Contains(lines[2], "3") {
		t.Errorf("unexpected row: %q", lines[2])
	}
}

func TestTableColumnWidthTracksLongestCell(t *testing.T) {
	tbl := NewTable("F")
	tbl.AddRow("a-much-longer-value")
	out := tbl.Render()
	if !strings.Contains(out, "a-much-longer-value") {
		t.Errorf("long cell missing: %q", out)
	}
}

func TestBalanceBarZero(t *testing.T) {
	out := BalanceBar(0, 0, 10)
	if !strings.Contains(out, "0 / 0") {
		t.Errorf("unexpected zero bar: %q", out)
	}
}

func TestBalanceBarProportions(t *testing.T) {
	out := BalanceBar(3, 1, 8)
	if !strings.Contains(out, "3 / 1") {
		t.Errorf("expected counts in bar: %q", out)
	}
	if strings.Count(out, "█") != 6 {
		t.Errorf("expected 6 filled cells for 3:1 over width 8, got %q", out)
	}
}

func TestSection(t *testing.T) {
	out := Section("리포트")
	if !strings.Contains(out, "리포트") || !strings.Contains(out, "─") {
		t.Errorf("unexpected section: %q", out)
	}
}
