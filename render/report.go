package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/signadot/docdiff/align"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Report builds a markdown comparison report: the summary counts, the
// derived percent-different, and a side-by-side table of rows.
func Report(aName, bName string, sum align.Summary, rows []Row) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s vs %s\n\n", aName, bName)
	fmt.Fprintf(&sb, "changed lines %d / %d (~%.1f%% different)\n\n",
		sum.Changed(), sum.Total(), sum.PercentDifferent())
	fmt.Fprintf(&sb, "| | equal | replace | delete | insert |\n")
	fmt.Fprintf(&sb, "|---|---|---|---|---|\n")
	fmt.Fprintf(&sb, "| lines | %d | %d | %d | %d |\n\n",
		sum.Equal, sum.Replace, sum.Delete, sum.Insert)
	if len(rows) == 0 {
		return sb.String()
	}
	fmt.Fprintf(&sb, "| tag | %s | %s |\n", mdEscape(aName), mdEscape(bName))
	fmt.Fprintf(&sb, "|---|---|---|\n")
	for _, row := range rows {
		fmt.Fprintf(&sb, "| %s | %s | %s |\n",
			row.Tag, mdEscape(row.Left), mdEscape(row.Right))
	}
	return sb.String()
}

// HTMLReport converts the markdown report to HTML.
func HTMLReport(aName, bName string, sum align.Summary, rows []Row) ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := md.Convert([]byte(Report(aName, bName, sum, rows)), &buf); err != nil {
		return nil, fmt.Errorf("error converting report: %w", err)
	}
	return buf.Bytes(), nil
}

func mdEscape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
