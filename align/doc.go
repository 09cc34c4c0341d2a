// Package align computes line-level alignments between two documents.
//
// # Usage
//
//	spans := align.Lines(a, b)
//	sum := align.Summarize(spans)
//	fmt.Printf("%.1f%% different\n", sum.PercentDifferent())
//
// An alignment is an ordered list of spans which partition both input
// sequences completely, in order, with no gaps or overlaps.  Each span
// carries a tag classifying the region as equal, replace, delete or
// insert.
//
// Every line is treated as significant regardless of how often it
// occurs; there is no frequency-based junk heuristic, so alignments are
// deterministic functions of their inputs.
//
// # Related Packages
//
//   - github.com/signadot/docdiff/normalize - line sequence derivation
//   - github.com/signadot/docdiff/render - presentation of span lists
package align
