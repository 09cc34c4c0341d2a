package normalize

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type normalizeTest struct {
	in  string
	out []string
}

var normalizeTests = []normalizeTest{
	{
		in:  "",
		out: nil,
	},
	{
		in:  "\n\n\n",
		out: nil,
	},
	{
		in:  "   \t  \n  ",
		out: nil,
	},
	{
		in:  "Hello World",
		out: []string{"hello world"},
	},
	{
		in:  "  Hello \t  World  ",
		out: []string{"hello world"},
	},
	{
		in:  "one\ntwo\nthree",
		out: []string{"one", "two", "three"},
	},
	{
		in:  "one\r\ntwo\rthree",
		out: []string{"one", "two", "three"},
	},
	{
		// page boundary from pdf extraction
		in:  "end of page one\fstart of page two",
		out: []string{"end of page one", "start of page two"},
	},
	{
		in:  "MiXeD Case\n\n  spaced   out  words\n",
		out: []string{"mixed case", "spaced out words"},
	},
	{
		// extraction error markers pass through like any text
		in:  "<ERROR page 3: bad xref>",
		out: []string{"<error page 3: bad xref>"},
	},
}

func TestLines(t *testing.T) {
	for i, tst := range normalizeTests {
		got := Lines(tst.in)
		if d := cmp.Diff(tst.out, got); d != "" {
			t.Errorf("test %d: Lines(%q) mismatch (-want +got):\n%s", i, tst.in, d)
		}
	}
}

func TestLinesIdempotent(t *testing.T) {
	for i, tst := range normalizeTests {
		once := Lines(tst.in)
		twice := Lines(strings.Join(once, "\n"))
		if d := cmp.Diff(once, twice); d != "" {
			t.Errorf("test %d: not idempotent (-once +twice):\n%s", i, d)
		}
	}
}
