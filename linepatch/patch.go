// Package linepatch renders alignments as RFC 6902 JSON patches over
// the JSON array of left-hand lines, and applies such patches to
// reconstruct the right-hand sequence.
package linepatch

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/signadot/docdiff/align"

	jsonpatch "github.com/evanphx/json-patch"
)

type op struct {
	Op    string  `json:"op"`
	Path  string  `json:"path"`
	Value *string `json:"value,omitempty"`
}

// FromSpans builds a JSON patch that transforms the array a into the
// array b.  Operation paths are indexes into the array as it stands
// after the preceding operations have been applied.
func FromSpans(a, b []string, spans []align.Span) ([]byte, error) {
	ops := []op{}
	delta := 0
	curLen := len(a)
	remove := func(at int) {
		ops = append(ops, op{Op: "remove", Path: "/" + strconv.Itoa(at)})
		curLen--
	}
	add := func(at int, v string) {
		path := "/-"
		if at < curLen {
			path = "/" + strconv.Itoa(at)
		}
		ops = append(ops, op{Op: "add", Path: path, Value: &v})
		curLen++
	}
	replace := func(at int, v string) {
		ops = append(ops, op{Op: "replace", Path: "/" + strconv.Itoa(at), Value: &v})
	}
	for _, s := range spans {
		cur := s.A1 + delta
		switch s.Tag {
		case align.Equal:
		case align.Delete:
			for k := 0; k < s.ALen(); k++ {
				remove(cur)
			}
			delta -= s.ALen()
		case align.Insert:
			for k := 0; k < s.BLen(); k++ {
				add(cur+k, b[s.B1+k])
			}
			delta += s.BLen()
		case align.Replace:
			common := min(s.ALen(), s.BLen())
			for k := 0; k < common; k++ {
				replace(cur+k, b[s.B1+k])
			}
			for k := common; k < s.ALen(); k++ {
				remove(cur + common)
			}
			for k := common; k < s.BLen(); k++ {
				add(cur+k, b[s.B1+k])
			}
			delta += s.BLen() - s.ALen()
		}
	}
	d, err := json.MarshalIndent(ops, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding patch: %w", err)
	}
	return d, nil
}

// Apply applies a JSON patch produced by FromSpans (or any RFC 6902
// patch over a string array) to the line sequence a.
func Apply(patch []byte, a []string) ([]string, error) {
	p, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch: %w", err)
	}
	if a == nil {
		a = []string{}
	}
	doc, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("error encoding lines: %w", err)
	}
	out, err := p.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("error applying patch: %w", err)
	}
	var res []string
	if err := json.Unmarshal(out, &res); err != nil {
		return nil, fmt.Errorf("error decoding patched lines: %w", err)
	}
	return res, nil
}
