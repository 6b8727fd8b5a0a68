package pdf

import (
	"fmt"
	"io"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

func (e *extractorImpl) ExtractFile(path string) (text string, err error) {
	defer recoverMalformed(&err)

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrOpen, path, err)
	}
	defer f.Close()

	return pagesText(reader), nil
}

func (e *extractorImpl) ExtractReader(r io.ReaderAt, size int64) (text string, err error) {
	defer recoverMalformed(&err)

	reader, err := pdflib.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpen, err)
	}
	return pagesText(reader), nil
}

// pagesText concatenates the plain text of every readable page, one newline after each.
func pagesText(reader *pdflib.Reader) string {
	var buf strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		buf.WriteString(text)
		buf.WriteString("\n")
	}
	return strings.TrimSpace(buf.String())
}

// recoverMalformed turns a panic inside the PDF library into ErrMalformed.
func recoverMalformed(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %v", ErrMalformed, r)
	}
}
