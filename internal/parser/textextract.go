package parser

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// PDFToTextExtractor extracts text from a PDF by shelling out to the
// poppler-utils pdftotext binary.
type PDFToTextExtractor struct{}

// NewPDFToTextExtractor creates the default PDF text extractor.
func NewPDFToTextExtractor() *PDFToTextExtractor {
	return &PDFToTextExtractor{}
}

// Extract writes the document to a temporary file and runs pdftotext over it.
func (e *PDFToTextExtractor) Extract(ctx context.Context, r io.Reader) (string, error) {
	tmp, err := os.CreateTemp("", "vesta-statement-*.pdf")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	if _, err := io.Copy(tmp, r); err != nil {
		return "", fmt.Errorf("writing temp file: %w", err)
	}

	cmd := exec.CommandContext(ctx, "pdftotext", "-layout", tmp.Name(), "-")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext failed: %w", err)
	}
	return string(output), nil
}
