// Package source loads the documents that comparisons run over.
//
// A Document is an identifier plus its raw, already-decoded text; it is
// immutable once loaded.  Loaders turn filesystem paths into Documents:
// TextLoader reads plain text and PDFLoader extracts text from PDFs,
// joining pages with form feeds and embedding per-page extraction
// failures as literal error-marker lines, which downstream comparison
// treats like any other text.
//
// Cache memoizes loads keyed by path and invalidates an entry when the
// file's size or modification time changes, or explicitly via
// Invalidate.
package source
