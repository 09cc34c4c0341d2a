package source

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestFingerprint(t *testing.T) {
	fp := Fingerprint("hello")
	if len(fp) != 12 {
		t.Fatalf("fingerprint length %d: %q", len(fp), fp)
	}
	if !regexp.MustCompile(`^[0-9a-f]{12}$`).MatchString(fp) {
		t.Fatalf("fingerprint not lowercase hex: %q", fp)
	}
	if fp != Fingerprint("hello") {
		t.Error("fingerprint not stable")
	}
	if fp == Fingerprint("hello ") {
		t.Error("fingerprint ignores content")
	}
	doc := &Document{Name: "d", Text: "hello"}
	if doc.Fingerprint() != fp {
		t.Error("document fingerprint differs from text fingerprint")
	}
}

func TestTextLoader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("Some Text\nmore"), 0644); err != nil {
		t.Fatal(err)
	}
	doc, err := TextLoader{}.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Name != "doc.txt" || doc.Text != "Some Text\nmore" {
		t.Errorf("loaded %+v", doc)
	}
	if _, err := (TextLoader{}).Load(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("no error for missing file")
	}
}

func TestTextLoaderInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte{'o', 'k', 0xff, 0xfe, '!'}, 0644); err != nil {
		t.Fatal(err)
	}
	doc, err := TextLoader{}.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(doc.Text, "ok") || !strings.Contains(doc.Text, "�") {
		t.Errorf("bytes not replaced: %q", doc.Text)
	}
}

func TestForPath(t *testing.T) {
	if _, ok := ForPath("a/b/scan.PDF").(PDFLoader); !ok {
		t.Error("PDF path did not pick PDFLoader")
	}
	if _, ok := ForPath("notes.txt").(TextLoader); !ok {
		t.Error("text path did not pick TextLoader")
	}
}

func TestCache(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("v1"), 0644); err != nil {
		t.Fatal(err)
	}
	c := NewCache(nil)
	doc1, err := c.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	doc2, err := c.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if doc1 != doc2 {
		t.Error("unchanged file reloaded")
	}

	// size change invalidates
	if err := os.WriteFile(path, []byte("version 2"), 0644); err != nil {
		t.Fatal(err)
	}
	doc3, err := c.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if doc3.Text != "version 2" {
		t.Errorf("stale text %q", doc3.Text)
	}

	c.Invalidate(path)
	doc4, err := c.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if doc4 == doc3 {
		t.Error("invalidated entry reused")
	}
	if _, err := c.Load(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("no error for missing file")
	}
}
