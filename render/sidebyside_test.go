package render

import (
	"strings"
	"testing"

	"github.com/signadot/docdiff/align"

	"github.com/google/go-cmp/cmp"
)

type sideBySideTest struct {
	a    []string
	b    []string
	rows []Row
}

var sideBySideTests = []sideBySideTest{
	{
		a:    []string{"hello world"},
		b:    []string{"hello world"},
		rows: []Row{{Tag: align.Equal, Left: "hello world", Right: "hello world"}},
	},
	{
		a: []string{"line one", "line two"},
		b: []string{"line one", "line three"},
		rows: []Row{
			{Tag: align.Equal, Left: "line one", Right: "line one"},
			{Tag: align.Replace, Left: "line two", Right: "line three"},
		},
	},
	{
		// the shorter block pads with blanks up to the longer one
		a: []string{"keep", "x", "y", "z", "keep"},
		b: []string{"keep", "q", "keep"},
		rows: []Row{
			{Tag: align.Equal, Left: "keep", Right: "keep"},
			{Tag: align.Replace, Left: "x", Right: "q"},
			{Tag: align.Replace, Left: "y", Right: ""},
			{Tag: align.Replace, Left: "z", Right: ""},
			{Tag: align.Equal, Left: "keep", Right: "keep"},
		},
	},
	{
		a:    nil,
		b:    []string{"new line"},
		rows: []Row{{Tag: align.Insert, Left: "", Right: "new line"}},
	},
}

func TestSideBySide(t *testing.T) {
	for i, tst := range sideBySideTests {
		spans := align.Lines(tst.a, tst.b)
		got := SideBySide(tst.a, tst.b, spans)
		if d := cmp.Diff(tst.rows, got); d != "" {
			t.Errorf("test %d: rows mismatch (-want +got):\n%s", i, d)
		}
	}
}

func TestSideBySideRowCount(t *testing.T) {
	for i, tst := range sideBySideTests {
		spans := align.Lines(tst.a, tst.b)
		rows := SideBySide(tst.a, tst.b, spans)
		want := 0
		for _, s := range spans {
			want += max(s.ALen(), s.BLen())
		}
		if len(rows) != want {
			t.Errorf("test %d: %d rows, want %d", i, len(rows), want)
		}
	}
}

func TestColorsWriteRows(t *testing.T) {
	rows := []Row{
		{Tag: align.Equal, Left: "same", Right: "same"},
		{Tag: align.Replace, Left: "left text", Right: "right"},
	}
	var sb strings.Builder
	if err := NoColors().WriteRows(&sb, rows); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines: %q", len(lines), sb.String())
	}
	if !strings.Contains(lines[1], "replace") || !strings.Contains(lines[1], "left text | right") {
		t.Errorf("row line %q", lines[1])
	}
}
