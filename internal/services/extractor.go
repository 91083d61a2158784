package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractionUnavailableText stands in for extracted text when PDF processing
// is disabled for the process.
const ExtractionUnavailableText = "[PDF processing not available - text extraction disabled]"

type PDFExtractorService interface {
	ExtractText(data []byte) (string, error)
}

type pdfExtractorService struct{}

func NewPDFExtractorService() PDFExtractorService {
	return &pdfExtractorService{}
}

// ExtractText concatenates per-page text in page order, pages separated by
// newlines, trimmed of surrounding whitespace. An empty result is valid
// (scanned or image-only PDFs).
func (p *pdfExtractorService) ExtractText(data []byte) (text string, err error) {
	// The parser panics on some corrupt cross-reference tables; surface that
	// as an ExtractionError like any other malformed input.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ExtractionError{Reason: fmt.Sprint(r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Reason: err.Error()}
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest.
			continue
		}

		textBuilder.WriteString(content)
		textBuilder.WriteString("\n")
	}

	return strings.TrimSpace(textBuilder.String()), nil
}
