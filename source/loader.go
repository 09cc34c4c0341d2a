package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Loader turns a filesystem path into a Document.
type Loader interface {
	Load(path string) (*Document, error)
}

// ForPath picks a loader by file extension.
func ForPath(path string) Loader {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return PDFLoader{}
	}
	return TextLoader{}
}

// TextLoader reads a file as UTF-8 text, replacing unresolvable bytes.
type TextLoader struct{}

func (TextLoader) Load(path string) (*Document, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return &Document{
		Name: filepath.Base(path),
		Text: strings.ToValidUTF8(string(d), "�"),
	}, nil
}

// PDFLoader extracts the text of each page and joins pages with form
// feed separators so page boundaries can be recovered later.  A page
// that fails to extract becomes a literal error-marker line instead of
// failing the whole document.
type PDFLoader struct{}

func (PDFLoader) Load(path string) (*Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer f.Close()
	pages := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, fmt.Sprintf("<ERROR page %d: missing>", i))
			continue
		}
		txt, err := pageText(p)
		if err != nil {
			pages = append(pages, fmt.Sprintf("<ERROR page %d: %v>", i, err))
			continue
		}
		pages = append(pages, txt)
	}
	return &Document{
		Name: filepath.Base(path),
		Text: strings.ToValidUTF8(strings.Join(pages, "\f"), "�"),
	}, nil
}

// pageText converts extraction panics into errors; malformed content
// streams otherwise take down the whole comparison.
func pageText(p pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return p.GetPlainText(nil)
}
