package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFTextSource implements usecase.TextSource using embedded PDF text. Pages
// without extractable text yield empty strings; the caller decides whether
// that warrants the recognition fallback.
type PDFTextSource struct{}

// NewPDFTextSource creates the source.
func NewPDFTextSource() *PDFTextSource {
	return &PDFTextSource{}
}

// PageTexts extracts each page's text in reading order.
func (s *PDFTextSource) PageTexts(ctx context.Context, path string) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf %s: %w", path, err)
	}
	defer f.Close()

	pages := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			// A single unreadable page is not fatal to the document; the
			// anchor scan works on whatever text the other pages yield.
			pages = append(pages, "")
			continue
		}
		var b strings.Builder
		for _, row := range rows {
			for _, word := range row.Content {
				b.WriteString(word.S)
				b.WriteString(" ")
			}
			b.WriteString("\n")
		}
		pages = append(pages, b.String())
	}
	return pages, nil
}
