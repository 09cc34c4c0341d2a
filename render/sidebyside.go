package render

import "github.com/signadot/docdiff/align"

// Row is one display row of a side-by-side rendering.  Within a span
// the shorter block is padded with empty strings, so a span always
// yields max(left block, right block) rows.
type Row struct {
	Tag   align.Tag `json:"tag"`
	Left  string    `json:"left"`
	Right string    `json:"right"`
}

// SideBySide emits one row per line position of each span, pairing left
// and right lines where both exist.  Row order matches sequence order.
func SideBySide(a, b []string, spans []align.Span) []Row {
	var rows []Row
	for _, s := range spans {
		left := a[s.A1:s.A2]
		right := b[s.B1:s.B2]
		for k := 0; k < max(len(left), len(right)); k++ {
			row := Row{Tag: s.Tag}
			if k < len(left) {
				row.Left = left[k]
			}
			if k < len(right) {
				row.Right = right[k]
			}
			rows = append(rows, row)
		}
	}
	return rows
}
