package pdf

import "io"

// IExtractor pulls plain text out of PDF documents.
// Implementations are safe for concurrent use.
type IExtractor interface {
	// ExtractFile reads the document at path and returns its text,
	// pages joined by newlines and surrounding whitespace trimmed.
	ExtractFile(path string) (string, error)
	// ExtractReader is ExtractFile for an in-memory or already opened document.
	ExtractReader(r io.ReaderAt, size int64) (string, error)
}

// NewExtractor creates a new PDF text extractor.
func NewExtractor() IExtractor {
	return &extractorImpl{}
}
