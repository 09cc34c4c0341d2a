package linepatch

import (
	"encoding/json"
	"testing"

	"github.com/signadot/docdiff/align"

	"github.com/google/go-cmp/cmp"
)

type roundTripTest struct {
	a []string
	b []string
}

var roundTripTests = []roundTripTest{
	{a: nil, b: nil},
	{a: nil, b: []string{"new line"}},
	{a: []string{"old line"}, b: nil},
	{a: []string{"same"}, b: []string{"same"}},
	{a: []string{"line one", "line two"}, b: []string{"line one", "line three"}},
	{a: []string{"a", "b", "c"}, b: []string{"a", "c"}},
	{a: []string{"a", "c"}, b: []string{"a", "b", "c"}},
	// replace blocks that shrink and grow
	{a: []string{"keep", "x", "y", "z", "keep"}, b: []string{"keep", "q", "keep"}},
	{a: []string{"keep", "q", "keep"}, b: []string{"keep", "x", "y", "z", "keep"}},
	// change at the very end
	{a: []string{"one", "two"}, b: []string{"one", "two", "three"}},
	{a: []string{"one", "two", "three"}, b: []string{"three", "one", "two"}},
}

func TestRoundTrip(t *testing.T) {
	for i, tst := range roundTripTests {
		spans := align.Lines(tst.a, tst.b)
		patch, err := FromSpans(tst.a, tst.b, spans)
		if err != nil {
			t.Fatalf("test %d: %v", i, err)
		}
		got, err := Apply(patch, tst.a)
		if err != nil {
			t.Fatalf("test %d: apply: %v\npatch:\n%s", i, err, patch)
		}
		want := tst.b
		if want == nil {
			want = []string{}
		}
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("test %d: (-want +got):\n%s\npatch:\n%s", i, d, patch)
		}
	}
}

func TestFromSpansEqualIsEmpty(t *testing.T) {
	a := []string{"one", "two"}
	patch, err := FromSpans(a, a, align.Lines(a, a))
	if err != nil {
		t.Fatal(err)
	}
	var ops []map[string]any
	if err := json.Unmarshal(patch, &ops); err != nil {
		t.Fatal(err)
	}
	if len(ops) != 0 {
		t.Errorf("equal sequences yielded ops: %v", ops)
	}
}

func TestApplyBadPatch(t *testing.T) {
	if _, err := Apply([]byte("{"), []string{"x"}); err == nil {
		t.Error("no error for malformed patch")
	}
	if _, err := Apply([]byte(`[{"op":"remove","path":"/9"}]`), []string{"x"}); err == nil {
		t.Error("no error for out of range remove")
	}
}
