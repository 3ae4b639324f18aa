package main

import (
	"strings"
	"testing"
)

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable([]string{"Check", "Status", "Detail"}, [][]string{{"Output directory", "ok"}})
	requireContains(t, out, "Output directory")
	if strings.Contains(out, "<nil>") {
		t.Fatalf("short row should be padded with blanks, got:\n%s", out)
	}
}

func TestRenderTableRightAlignsColumn(t *testing.T) {
	out := renderTable([]string{"Week", "Monday"}, [][]string{{"7", "February 13 2017"}, {"44", "October 31 2016"}}, 0, 9)
	var weekSeven string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "February") {
			weekSeven = line
		}
	}
	if !strings.Contains(weekSeven, "  7 │") {
		t.Fatalf("expected week column right aligned, got %q", weekSeven)
	}
}

func TestRenderTableWithoutHeaders(t *testing.T) {
	if out := renderTable(nil, [][]string{{"x"}}); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}
