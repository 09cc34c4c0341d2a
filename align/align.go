package align

import (
	"fmt"
	"unicode/utf8"

	"github.com/signadot/docdiff/debug"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Tag classifies an alignment span.
type Tag int

const (
	Equal Tag = iota
	Replace
	Delete
	Insert
)

func (t Tag) String() string {
	d, err := t.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (t Tag) MarshalText() ([]byte, error) {
	switch t {
	case Equal:
		return []byte("equal"), nil
	case Replace:
		return []byte("replace"), nil
	case Delete:
		return []byte("delete"), nil
	case Insert:
		return []byte("insert"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a tag>", t)
	}
}

func (t *Tag) UnmarshalText(d []byte) error {
	switch string(d) {
	case "equal":
		*t = Equal
	case "replace":
		*t = Replace
	case "delete":
		*t = Delete
	case "insert":
		*t = Insert
	default:
		return fmt.Errorf("bad tag: %q", string(d))
	}
	return nil
}

// Span is a contiguous region of correspondence or divergence between
// two line sequences a and b.  [A1,A2) indexes a and [B1,B2) indexes b;
// both intervals are half-open.  Delete spans have B1 == B2 and insert
// spans have A1 == A2.
type Span struct {
	Tag Tag `json:"tag"`
	A1  int `json:"a1"`
	A2  int `json:"a2"`
	B1  int `json:"b1"`
	B2  int `json:"b2"`
}

func (s Span) ALen() int { return s.A2 - s.A1 }
func (s Span) BLen() int { return s.B2 - s.B1 }

// we intern lines into runes and diff the rune sequences:
//
//  1. identical lines map to the same rune, so the rune sequences
//     preserve exactly the equality structure of the line sequences
//  2. diff the rune sequences
//  3. every equal/insert/delete run becomes a span; an insert run
//     immediately following a delete run merges into a replace span

// Lines aligns two line sequences.  The returned spans cover [0,len(a))
// and [0,len(b)) exactly once each, in increasing order.  Aligning
// equal sequences yields a single equal span; aligning against an empty
// sequence yields a single insert or delete span; aligning two empty
// sequences yields no spans.
func Lines(a, b []string) []Span {
	in := newInterner()
	aRunes := in.intern(a)
	bRunes := in.intern(b)
	diffCfg := diffpatch.New()
	diffCfg.DiffTimeout = 0 // no time-based cutoff, results must be deterministic
	diffs := diffCfg.DiffMainRunes(aRunes, bRunes, false)

	var spans []Span
	ai, bi := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		n := utf8.RuneCountInString(diff.Text)
		if n == 0 {
			continue
		}
		switch diff.Type {
		case diffpatch.DiffEqual:
			spans = append(spans, Span{Tag: Equal, A1: ai, A2: ai + n, B1: bi, B2: bi + n})
			ai += n
			bi += n
		case diffpatch.DiffDelete:
			spans = append(spans, Span{Tag: Delete, A1: ai, A2: ai + n, B1: bi, B2: bi})
			ai += n
		case diffpatch.DiffInsert:
			if k := len(spans) - 1; k >= 0 && spans[k].Tag == Delete && spans[k].A2 == ai && spans[k].B2 == bi {
				// insert after delete -> make replace
				spans[k].Tag = Replace
				spans[k].B2 = bi + n
			} else {
				spans = append(spans, Span{Tag: Insert, A1: ai, A2: ai, B1: bi, B2: bi + n})
			}
			bi += n
		}
	}
	if debug.Align() {
		for _, s := range spans {
			debug.Logf("align %s a[%d:%d) b[%d:%d)\n", s.Tag, s.A1, s.A2, s.B1, s.B2)
		}
	}
	return spans
}

const (
	surrogateMin = 0xd800
	surrogateMax = 0xdfff
)

type interner struct {
	runes map[string]rune
	next  rune
}

func newInterner() *interner {
	return &interner{runes: map[string]rune{}}
}

func (in *interner) intern(lines []string) []rune {
	rs := make([]rune, len(lines))
	for i, line := range lines {
		r, ok := in.runes[line]
		if !ok {
			r = in.next
			in.runes[line] = r
			in.next++
			if in.next == surrogateMin {
				// surrogates do not survive the rune<->string
				// round trip inside the matcher
				in.next = surrogateMax + 1
			}
		}
		rs[i] = r
	}
	return rs
}
