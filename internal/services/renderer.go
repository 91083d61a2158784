package services

import (
	"bytes"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

const (
	pageMargin       = 72 // 1 inch, in points
	bottomMargin     = 18 // 0.25 inch
	paragraphSpacing = 12

	// Non-blank lines that are all upper-case or shorter than this many
	// characters are laid out as section headings.
	headingMaxLen = 50

	headingFontSize   = 14
	headingLineHeight = 16
	bodyFontSize      = 11
	bodyLineHeight    = 14
)

type PDFRendererService interface {
	RenderDocument(text string) ([]byte, error)
}

type pdfRendererService struct {
	validate func([]byte) error
}

func NewPDFRendererService() PDFRendererService {
	return &pdfRendererService{validate: validatePDF}
}

func validatePDF(data []byte) error {
	_, err := api.ReadValidateAndOptimize(bytes.NewReader(data), model.NewDefaultConfiguration())
	return err
}

// RenderDocument lays the text out on letter-sized pages, one paragraph per
// input line. Blank lines are dropped. Page overflow is handled by the
// library's auto page break.
func (p *pdfRendererService) RenderDocument(text string) ([]byte, error) {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, bottomMargin)
	doc.AddPage()

	// Core fonts are cp1252; translate what we can and let the rest degrade.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if isHeading(line) {
			doc.SetFont("Helvetica", "B", headingFontSize)
			doc.MultiCell(0, headingLineHeight, tr(line), "", "L", false)
		} else {
			doc.SetFont("Helvetica", "", bodyFontSize)
			doc.MultiCell(0, bodyLineHeight, tr(line), "", "L", false)
		}
		doc.Ln(paragraphSpacing)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, &RenderError{Err: err}
	}

	rendered := buf.Bytes()
	if err := p.validate(rendered); err != nil {
		return nil, &RenderError{Err: err}
	}

	return rendered, nil
}

// isHeading classifies short lines and upper-case lines as headings. Length
// is measured in runes, and the upper-case branch requires at least one cased
// rune so that uncased scripts (CJK, Arabic) stay body text — translated CVs
// are mostly such text.
func isHeading(line string) bool {
	return utf8.RuneCountInString(line) < headingMaxLen || isUpperCase(line)
}

func isUpperCase(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}
