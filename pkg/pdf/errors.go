package pdf

import "errors"

var (
	// ErrOpen is returned when the file cannot be opened or is not a PDF.
	ErrOpen = errors.New("pdf: cannot open document")
	// ErrMalformed is returned when the document structure cannot be read.
	ErrMalformed = errors.New("pdf: malformed document")
)
