// Package docdiff computes textual differences between documents.
//
// # Usage
//
//	res := docdiff.Compare("a.pdf", aText, "b.pdf", bText)
//	fmt.Println(res.Unified())
//	fmt.Printf("%.1f%% different\n", res.Summary.PercentDifferent())
//
// Compare normalizes raw text into line sequences, aligns the
// sequences, and classifies the aligned regions.  A comparison is a
// pure computation over its inputs: independent comparisons share no
// state and may run concurrently without coordination.
//
// # Related Packages
//
//   - github.com/signadot/docdiff/normalize - line normalization
//   - github.com/signadot/docdiff/align - alignment and summaries
//   - github.com/signadot/docdiff/render - unified and side-by-side forms
//   - github.com/signadot/docdiff/linepatch - JSON patch form
//   - github.com/signadot/docdiff/source - document loading and caching
package docdiff
