package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/signadot/docdiff/align"

	"github.com/fatih/color"
)

// Colors maps change tags to terminal color functions.
type Colors struct {
	Default func(string, ...any) string
	Map     map[align.Tag]func(string, ...any) string
	Header  func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[align.Tag]func(string, ...any) string{
			align.Insert:  color.GreenString,
			align.Delete:  color.RedString,
			align.Replace: color.YellowString,
		},
		Header: color.CyanString,
	}
}

// NoColors renders both forms without escape codes, for non-terminal
// output.
func NoColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map:     map[align.Tag]func(string, ...any) string{},
		Header:  colorDefault,
	}
}

func colorDefault(f string, args ...any) string {
	return fmt.Sprintf(f, args...)
}

func (c *Colors) sprintf(tag align.Tag, f string, args ...any) string {
	fn, ok := c.Map[tag]
	if !ok {
		fn = c.Default
	}
	return fn(f, args...)
}

// WriteUnified writes a unified diff with per-line coloring by prefix.
func (c *Colors) WriteUnified(w io.Writer, diff string) error {
	if diff == "" {
		return nil
	}
	for _, line := range strings.Split(diff, "\n") {
		var out string
		switch {
		case strings.HasPrefix(line, "@@"),
			strings.HasPrefix(line, "---"),
			strings.HasPrefix(line, "+++"):
			out = c.Header("%s", line)
		case strings.HasPrefix(line, "+"):
			out = c.sprintf(align.Insert, "%s", line)
		case strings.HasPrefix(line, "-"):
			out = c.sprintf(align.Delete, "%s", line)
		default:
			out = c.Default("%s", line)
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}
	return nil
}

// WriteRows writes side-by-side rows as a three-column table with the
// tag and left columns padded to their widest entries.
func (c *Colors) WriteRows(w io.Writer, rows []Row) error {
	tagW, leftW := 0, 0
	for _, row := range rows {
		tagW = max(tagW, utf8.RuneCountInString(row.Tag.String()))
		leftW = max(leftW, utf8.RuneCountInString(row.Left))
	}
	for _, row := range rows {
		line := fmt.Sprintf("%s  %s | %s",
			pad(row.Tag.String(), tagW), pad(row.Left, leftW), row.Right)
		if _, err := fmt.Fprintln(w, c.sprintf(row.Tag, "%s", line)); err != nil {
			return err
		}
	}
	return nil
}

func pad(s string, w int) string {
	if n := w - utf8.RuneCountInString(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
