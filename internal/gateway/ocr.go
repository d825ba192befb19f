package gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"

	"github.com/gen2brain/go-fitz"
	"github.com/otiai10/gosseract/v2"
)

// ErrRecognizerUnavailable marks recognition-engine failures so callers can
// report "install tesseract" style guidance instead of a raw error chain.
var ErrRecognizerUnavailable = errors.New("text recognition engine unavailable")

// TesseractRecognizer implements usecase.Recognizer: each PDF page is
// rasterized with go-fitz and recognized with tesseract. Failures are scoped
// to the one document being processed.
type TesseractRecognizer struct {
	Language string
}

// NewTesseractRecognizer creates a recognizer for the given language.
func NewTesseractRecognizer(language string) *TesseractRecognizer {
	return &TesseractRecognizer{Language: language}
}

// RecognizePages renders and recognizes every page, concatenating nothing:
// one text per page, in order.
func (r *TesseractRecognizer) RecognizePages(ctx context.Context, path string) ([]string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to rasterize %s: %w", path, err)
	}
	defer doc.Close()

	client := gosseract.NewClient()
	defer client.Close()
	if r.Language != "" {
		if err := client.SetLanguage(r.Language); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRecognizerUnavailable, err)
		}
	}

	pages := make([]string, 0, doc.NumPage())
	for n := 0; n < doc.NumPage(); n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		img, err := doc.Image(n)
		if err != nil {
			return nil, fmt.Errorf("failed to render page %d of %s: %w", n+1, path, err)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("failed to encode page %d of %s: %w", n+1, path, err)
		}
		if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRecognizerUnavailable, err)
		}
		text, err := client.Text()
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", ErrRecognizerUnavailable, n+1, err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}
