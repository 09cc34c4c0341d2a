package normalize

import "strings"

// Lines turns raw document text into the normalized line sequence used
// for alignment.  Each line is trimmed, internal whitespace runs are
// collapsed to single spaces, and the result is lowercased.  Lines that
// become empty are dropped, so the result never contains "".
//
// Lines is idempotent: normalizing the newline-join of its own output
// yields the same sequence.
func Lines(text string) []string {
	var norm []string
	for _, raw := range strings.FieldsFunc(text, lineBreak) {
		s := strings.Join(strings.Fields(raw), " ")
		if s == "" {
			continue
		}
		norm = append(norm, strings.ToLower(s))
	}
	return norm
}

// lineBreak reports whether r ends a line.  Form feeds count because
// PDF extraction joins pages with \f.
func lineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '', ' ', ' ':
		return true
	}
	return false
}
