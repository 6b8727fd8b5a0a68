package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// buildPDF writes a minimal single-page document that draws each line with Tj.
func buildPDF(lines ...string) []byte {
	var content strings.Builder
	content.WriteString("BT /F1 12 Tf 72 720 Td ")
	for i, l := range lines {
		if i > 0 {
			content.WriteString("0 -16 Td ")
		}
		fmt.Fprintf(&content, "(%s) Tj ", l)
	}
	content.WriteString("ET")

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", content.Len(), content.String()),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func TestExtractReader(t *testing.T) {
	doc := buildPDF("Pair Merlot with lamb")

	text, err := NewExtractor().ExtractReader(bytes.NewReader(doc), int64(len(doc)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "Merlot") {
		t.Errorf("expected extracted text to contain %q, got %q", "Merlot", text)
	}
	if text != strings.TrimSpace(text) {
		t.Errorf("expected trimmed text, got %q", text)
	}
}

func TestExtractFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairings.pdf")
	if err := os.WriteFile(path, buildPDF("Riesling loves spice"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text, err := NewExtractor().ExtractFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "Riesling") {
		t.Errorf("expected extracted text to contain %q, got %q", "Riesling", text)
	}
}

func TestExtractFile_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.pdf")
	if err := os.WriteFile(path, []byte("just some notes"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := NewExtractor().ExtractFile(path)
	if err == nil {
		t.Fatal("expected error for non-PDF input")
	}
	if !errors.Is(err, ErrOpen) && !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrOpen or ErrMalformed, got %v", err)
	}
}

func TestExtractFile_Missing(t *testing.T) {
	_, err := NewExtractor().ExtractFile(filepath.Join(t.TempDir(), "missing.pdf"))
	if !errors.Is(err, ErrOpen) {
		t.Fatalf("expected ErrOpen, got %v", err)
	}
}
