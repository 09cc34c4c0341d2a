package source

import (
	"crypto/sha256"
	"encoding/hex"
)

// Document is a named piece of raw text, immutable once loaded.
type Document struct {
	Name string
	Text string
}

func (d *Document) Fingerprint() string {
	return Fingerprint(d.Text)
}

// Fingerprint returns the first 12 hex digits of the sha256 of text,
// for display and deduplication.
func Fingerprint(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])[:12]
}
