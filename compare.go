package docdiff

import (
	"github.com/signadot/docdiff/align"
	"github.com/signadot/docdiff/linepatch"
	"github.com/signadot/docdiff/normalize"
	"github.com/signadot/docdiff/render"
	"github.com/signadot/docdiff/source"
)

// Result holds one comparison: the normalized line sequences, their
// alignment, and the derived summary.  Names are labels only.
type Result struct {
	AName string `json:"aName"`
	BName string `json:"bName"`

	A []string `json:"-"`
	B []string `json:"-"`

	Spans   []align.Span  `json:"spans"`
	Summary align.Summary `json:"summary"`
}

// Compare derives fresh line sequences from the raw texts and aligns
// them.  Any text is valid input, including empty strings and
// extraction error markers.
func Compare(aName, aText, bName, bText string) *Result {
	a := normalize.Lines(aText)
	b := normalize.Lines(bText)
	spans := align.Lines(a, b)
	return &Result{
		AName:   aName,
		BName:   bName,
		A:       a,
		B:       b,
		Spans:   spans,
		Summary: align.Summarize(spans),
	}
}

// CompareDocuments compares two loaded documents.
func CompareDocuments(a, b *source.Document) *Result {
	return Compare(a.Name, a.Text, b.Name, b.Text)
}

func (r *Result) Unified() string {
	return render.Unified(r.AName, r.BName, r.A, r.B, r.Spans)
}

func (r *Result) Rows() []render.Row {
	return render.SideBySide(r.A, r.B, r.Spans)
}

func (r *Result) Patch() ([]byte, error) {
	return linepatch.FromSpans(r.A, r.B, r.Spans)
}
