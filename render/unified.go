package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/docdiff/align"
)

// hunks carry up to this many equal lines of context on each side
const contextLines = 3

// Unified renders spans as a line-prefixed diff between two named
// documents.  Equal regions appear once with a leading space, deleted
// lines with "-", inserted lines with "+".  The result has no trailing
// newline; it is empty when the sequences are equal.
func Unified(aName, bName string, a, b []string, spans []align.Span) string {
	var sb strings.Builder
	started := false
	for _, group := range groupSpans(spans, contextLines) {
		if !started {
			started = true
			fmt.Fprintf(&sb, "--- %s\n", aName)
			fmt.Fprintf(&sb, "+++ %s\n", bName)
		}
		first, last := group[0], group[len(group)-1]
		fmt.Fprintf(&sb, "@@ -%s +%s @@\n",
			formatRange(first.A1, last.A2),
			formatRange(first.B1, last.B2))
		for _, s := range group {
			switch s.Tag {
			case align.Equal:
				for _, line := range a[s.A1:s.A2] {
					sb.WriteString(" " + line + "\n")
				}
			default:
				for _, line := range a[s.A1:s.A2] {
					sb.WriteString("-" + line + "\n")
				}
				for _, line := range b[s.B1:s.B2] {
					sb.WriteString("+" + line + "\n")
				}
			}
		}
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func WriteUnified(w io.Writer, aName, bName string, a, b []string, spans []align.Span) error {
	diff := Unified(aName, bName, a, b, spans)
	if diff == "" {
		return nil
	}
	_, err := io.WriteString(w, diff+"\n")
	return err
}

// groupSpans splits a span list into hunk groups, trimming equal
// regions to n lines of context and dropping groups that contain no
// changes.
func groupSpans(spans []align.Span, n int) [][]align.Span {
	if len(spans) == 0 {
		return nil
	}
	codes := make([]align.Span, len(spans))
	copy(codes, spans)
	if first := &codes[0]; first.Tag == align.Equal {
		first.A1 = max(first.A1, first.A2-n)
		first.B1 = max(first.B1, first.B2-n)
	}
	if last := &codes[len(codes)-1]; last.Tag == align.Equal {
		last.A2 = min(last.A2, last.A1+n)
		last.B2 = min(last.B2, last.B1+n)
	}
	var groups [][]align.Span
	var group []align.Span
	for _, c := range codes {
		if c.Tag == align.Equal && c.ALen() > 2*n {
			group = append(group, align.Span{
				Tag: align.Equal,
				A1:  c.A1, A2: min(c.A2, c.A1+n),
				B1: c.B1, B2: min(c.B2, c.B1+n),
			})
			groups = append(groups, group)
			group = nil
			c.A1 = max(c.A1, c.A2-n)
			c.B1 = max(c.B1, c.B2-n)
		}
		group = append(group, c)
	}
	if len(group) > 0 && !(len(group) == 1 && group[0].Tag == align.Equal) {
		groups = append(groups, group)
	}
	return groups
}

// formatRange renders a half-open interval as the 1-based
// start[,length] form used by hunk headers.
func formatRange(start, stop int) string {
	beginning, length := start+1, stop-start
	if length == 1 {
		return strconv.Itoa(beginning)
	}
	if length == 0 {
		beginning--
	}
	return fmt.Sprintf("%d,%d", beginning, length)
}
