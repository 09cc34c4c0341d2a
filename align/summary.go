package align

// Summary counts lines by change classification for one aligned pair.
// A replace span contributes the larger of its two block lengths, since
// a replace may shrink or grow the line count.
type Summary struct {
	Equal   int `json:"equal"`
	Replace int `json:"replace"`
	Delete  int `json:"delete"`
	Insert  int `json:"insert"`
}

func Summarize(spans []Span) Summary {
	var sum Summary
	for _, s := range spans {
		switch s.Tag {
		case Equal:
			sum.Equal += s.ALen()
		case Replace:
			sum.Replace += max(s.ALen(), s.BLen())
		case Delete:
			sum.Delete += s.ALen()
		case Insert:
			sum.Insert += s.BLen()
		}
	}
	return sum
}

func (s Summary) Total() int {
	return s.Equal + s.Replace + s.Delete + s.Insert
}

func (s Summary) Changed() int {
	return s.Replace + s.Delete + s.Insert
}

// PercentDifferent is 100 * changed / total, with total clamped to 1 so
// comparing two empty sequences yields 0 rather than dividing by zero.
func (s Summary) PercentDifferent() float64 {
	total := s.Total()
	if total < 1 {
		total = 1
	}
	return 100 * float64(s.Changed()) / float64(total)
}
