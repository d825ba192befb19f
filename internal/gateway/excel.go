package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"hotel-reconciliation/internal/domain"
	"hotel-reconciliation/internal/usecase"
)

// ExcelSource implements usecase.GridSource over xlsx workbooks. Only the
// first worksheet is read; the exports this consumes are single-sheet.
type ExcelSource struct{}

// NewExcelSource creates the source.
func NewExcelSource() *ExcelSource {
	return &ExcelSource{}
}

// OpenGrid loads a workbook's first sheet into memory and closes the file.
func (s *ExcelSource) OpenGrid(ctx context.Context, path string) (usecase.GridReader, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q of %s: %w", sheet, path, err)
	}

	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return &excelGrid{rows: rows, cols: cols}, nil
}

type excelGrid struct {
	rows [][]string
	cols int
}

func (g *excelGrid) RowCount() int    { return len(g.rows) }
func (g *excelGrid) ColumnCount() int { return g.cols }

// CellValue is 1-indexed; empty and out-of-range cells read as nil.
func (g *excelGrid) CellValue(row, col int) any {
	if row < 1 || row > len(g.rows) || col < 1 {
		return nil
	}
	r := g.rows[row-1]
	if col > len(r) || r[col-1] == "" {
		return nil
	}
	return r[col-1]
}

// Fill colors per highlight category, matching the source report convention:
// red for rows the hoteliers side is missing, green for rows the OTA side is
// missing.
var categoryFills = map[domain.HighlightCategory]string{
	domain.HighlightMissingOnLeft:  "FFC7CE",
	domain.HighlightMissingOnRight: "C6EFCE",
}

const (
	maxSheetNameLen = 31
	dateDisplayFmt  = "dd-mmm-yyyy"
)

var invalidSheetChars = strings.NewReplacer(
	":", "-", "\\", "-", "/", "-", "?", "-", "*", "-", "[", "(", "]", ")",
)

// ExcelReportWriter implements usecase.ReportFile over a new xlsx workbook.
type ExcelReportWriter struct {
	f       *excelize.File
	nextRow map[string]int
	styles  map[domain.HighlightCategory]int
	bold    int
}

// NewExcelReportWriter creates an empty workbook. The default sheet is
// dropped once the first real sheet exists.
func NewExcelReportWriter() *ExcelReportWriter {
	return &ExcelReportWriter{
		f:       excelize.NewFile(),
		nextRow: make(map[string]int),
		styles:  make(map[domain.HighlightCategory]int),
	}
}

// AddSheet creates a sheet under a sanitized, length-capped name and returns
// the name actually used. Duplicate names get a numeric suffix.
func (w *ExcelReportWriter) AddSheet(name string) (string, error) {
	base := sanitizeSheetName(name)
	actual := base
	for n := 2; w.nextRow[actual] != 0; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		actual = truncate(base, maxSheetNameLen-len(suffix)) + suffix
	}
	if _, err := w.f.NewSheet(actual); err != nil {
		return "", fmt.Errorf("failed to create sheet %q: %w", actual, err)
	}
	w.nextRow[actual] = 1
	return actual, nil
}

// AppendRow writes the cells on the sheet's next free row and returns that
// row's 1-indexed number.
func (w *ExcelReportWriter) AppendRow(sheet string, cells ...any) (int, error) {
	row, ok := w.nextRow[sheet]
	if !ok {
		return 0, fmt.Errorf("unknown sheet %q", sheet)
	}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return 0, err
	}
	if err := w.f.SetSheetRow(sheet, cell, &cells); err != nil {
		return 0, fmt.Errorf("failed to write row %d of %q: %w", row, sheet, err)
	}
	w.nextRow[sheet] = row + 1
	return row, nil
}

// HighlightRow fills a cell range with the category's color.
func (w *ExcelReportWriter) HighlightRow(sheet string, row, firstCol, lastCol int, category domain.HighlightCategory) error {
	style, err := w.categoryStyle(category)
	if err != nil {
		return err
	}
	return w.setRangeStyle(sheet, row, firstCol, lastCol, style)
}

// BoldRow applies the label styling used for discrepancy-sheet headers.
func (w *ExcelReportWriter) BoldRow(sheet string, row, firstCol, lastCol int) error {
	if w.bold == 0 {
		style, err := w.f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return fmt.Errorf("failed to create bold style: %w", err)
		}
		w.bold = style
	}
	return w.setRangeStyle(sheet, row, firstCol, lastCol, w.bold)
}

// FormatDateColumn sets the date display format on a whole column.
func (w *ExcelReportWriter) FormatDateColumn(sheet string, col int) error {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return err
	}
	numFmt := dateDisplayFmt
	style, err := w.f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return fmt.Errorf("failed to create date style: %w", err)
	}
	return w.f.SetColStyle(sheet, name, style)
}

// Save writes the workbook, dropping the default empty sheet first.
func (w *ExcelReportWriter) Save(path string) error {
	if len(w.nextRow) > 0 {
		w.f.DeleteSheet("Sheet1")
	}
	if err := w.f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report to %s: %w", path, err)
	}
	return nil
}

func (w *ExcelReportWriter) categoryStyle(category domain.HighlightCategory) (int, error) {
	if style, ok := w.styles[category]; ok {
		return style, nil
	}
	fill, ok := categoryFills[category]
	if !ok {
		return 0, fmt.Errorf("unknown highlight category %q", category)
	}
	style, err := w.f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{fill}, Pattern: 1},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create highlight style: %w", err)
	}
	w.styles[category] = style
	return style, nil
}

func (w *ExcelReportWriter) setRangeStyle(sheet string, row, firstCol, lastCol, style int) error {
	from, err := excelize.CoordinatesToCellName(firstCol, row)
	if err != nil {
		return err
	}
	to, err := excelize.CoordinatesToCellName(lastCol, row)
	if err != nil {
		return err
	}
	return w.f.SetCellStyle(sheet, from, to, style)
}

func sanitizeSheetName(name string) string {
	cleaned := strings.TrimSpace(invalidSheetChars.Replace(name))
	if cleaned == "" {
		cleaned = "Sheet"
	}
	return truncate(cleaned, maxSheetNameLen)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
