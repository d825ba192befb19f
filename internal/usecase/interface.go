package usecase

import (
	"context"

	"hotel-reconciliation/internal/domain"
)

// The usecase layer depends on these capability interfaces, not on any
// concrete file-format implementation.
//
//go:generate mockgen -destination=mocks/mock_interface.go -source=interface.go -package=mock_usecase

// GridReader exposes a table-like document as rows × columns of cells,
// 1-indexed, row 1 = first row. Cells are scalar values, text, or nil when
// empty. The core never writes to input documents.
type GridReader interface {
	RowCount() int
	ColumnCount() int
	CellValue(row, col int) any
}

// GridSource opens a spreadsheet-like document for reading.
type GridSource interface {
	OpenGrid(ctx context.Context, path string) (GridReader, error)
}

// TextSource extracts the raw text of each page of a multi-page document.
// Pages may come back empty (scanned/image-only documents).
type TextSource interface {
	PageTexts(ctx context.Context, path string) ([]string, error)
}

// Recognizer is the optional image-recognition fallback: render each page to
// an image and recognize its text. Unavailability must surface as an error
// scoped to the one document, never as a crash.
type Recognizer interface {
	RecognizePages(ctx context.Context, path string) ([]string, error)
}

// ReportFile is the abstract output workbook. Sheet names are sanitized and
// length-capped by the implementation; the sanitized name is returned and
// must be used for subsequent calls. AppendRow returns the 1-indexed row the
// values landed on. How a highlight category or bold label looks is the
// implementation's concern, not the core's.
type ReportFile interface {
	AddSheet(name string) (string, error)
	AppendRow(sheet string, cells ...any) (int, error)
	HighlightRow(sheet string, row, firstCol, lastCol int, category domain.HighlightCategory) error
	BoldRow(sheet string, row, firstCol, lastCol int) error
	FormatDateColumn(sheet string, col int) error
	Save(path string) error
}
