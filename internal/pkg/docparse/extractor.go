package docparse

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/oguzk/stajtakip/internal/pkg/logger"
)

// PdfToTextExtractor extracts text by invoking the poppler pdftotext binary
// reading from stdin and writing plain text to stdout.
type PdfToTextExtractor struct {
	// Binary overrides the executable name, default "pdftotext".
	Binary string
}

// NewPdfToTextExtractor creates an extractor using the default binary name
func NewPdfToTextExtractor() *PdfToTextExtractor {
	return &PdfToTextExtractor{Binary: "pdftotext"}
}

// ExtractText runs pdftotext over the document stream
func (e *PdfToTextExtractor) ExtractText(ctx context.Context, r io.Reader) (string, error) {
	binary := e.Binary
	if binary == "" {
		binary = "pdftotext"
	}

	var out bytes.Buffer
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, "-layout", "-", "-")
	cmd.Stdin = r
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		logger.Error().Err(err).Str("stderr", stderr.String()).Msg("pdftotext failed")
		return "", fmt.Errorf("text extraction failed: %w", err)
	}
	return out.String(), nil
}
