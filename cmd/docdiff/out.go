package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/signadot/docdiff/format"

	"github.com/goccy/go-yaml"
)

// encodeOut writes v in the selected structured output format.  Text
// forms are each command's own business.
func encodeOut(cfg *MainConfig, w io.Writer, v any) error {
	switch cfg.outFormat() {
	case format.JSONFormat:
		d, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", d)
		return err
	case format.YAMLFormat:
		d, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		_, err = w.Write(d)
		return err
	default:
		return fmt.Errorf("%w: no text encoding for %T", format.ErrBadFormat, v)
	}
}
