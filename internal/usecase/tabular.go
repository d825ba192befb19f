package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"

	"hotel-reconciliation/internal/domain"
)

// TableProfile describes where a known sheet layout keeps its header and
// where to fall back when no reservation-id header is found.
type TableProfile struct {
	Name string
	// HeaderRow is the 1-indexed row carrying column headers. Data rows
	// start immediately after it.
	HeaderRow int
	// DefaultKeyColumn is used when no reservation-id header matches.
	DefaultKeyColumn int
}

// The two layouts the sources ship today: hoteliers exports keep a title row
// above the headers, OTA exports start with the headers.
var (
	HoteliersProfile = TableProfile{Name: "hoteliers", HeaderRow: 2, DefaultKeyColumn: 2}
	OTAProfile       = TableProfile{Name: "ota", HeaderRow: 1, DefaultKeyColumn: 2}
)

// summaryRowBackoff compensates for the trailing summary/total row the
// source exports append after the data. Format-specific heuristic, not a
// general rule.
const summaryRowBackoff = 1

type tableField int

const (
	fieldKey tableField = iota
	fieldArrival
	fieldDeparture
	fieldChannel
	fieldFinalAmount
	fieldCommission
	fieldTax
	fieldTotal
)

// Recognized header synonyms per logical field. Matching is
// case-insensitive exact match, columns scanned left to right, first match
// wins per field.
var headerSynonyms = map[tableField][]string{
	fieldKey: {
		"reservation number", "reservation id", "reservation no",
		"confirmation number", "confirmation id", "booking reference",
		"book number", "reservation",
	},
	fieldArrival: {
		"arrival", "arrival date", "check-in", "check in", "checkin",
		"check-in date", "check in date",
	},
	fieldDeparture: {
		"departure", "departure date", "check-out", "check out", "checkout",
		"check-out date", "check out date",
	},
	fieldChannel: {
		"channel", "channel name", "source", "booking source", "ota",
		"travel agent", "company", "segment",
	},
	fieldFinalAmount: {"final amount", "final amount (thb)", "amount"},
	fieldCommission:  {"commission amount", "commission"},
	fieldTax:         {"tax", "tax amount"},
	fieldTotal:       {"total", "total amount", "total due"},
}

// TabularExtractor reads a structured grid into booking records.
type TabularExtractor struct {
	Profile TableProfile
}

// locateColumns maps logical fields to 1-indexed columns by scanning the
// header row. A field with no matching header is simply absent from the map.
func (e TabularExtractor) locateColumns(grid GridReader) map[tableField]int {
	cols := make(map[tableField]int)
	for col := 1; col <= grid.ColumnCount(); col++ {
		header := strings.ToLower(strings.TrimSpace(cellString(grid.CellValue(e.Profile.HeaderRow, col))))
		if header == "" {
			continue
		}
		for field, synonyms := range headerSynonyms {
			if _, done := cols[field]; done {
				continue
			}
			for _, syn := range synonyms {
				if header == syn {
					cols[field] = col
					break
				}
			}
		}
	}
	return cols
}

// lastDataRow scans upward from the sheet's nominal last row until a
// non-empty row is found, then backs off past the trailing summary row.
func (e TabularExtractor) lastDataRow(grid GridReader) int {
	for row := grid.RowCount(); row > e.Profile.HeaderRow; row-- {
		if !rowEmpty(grid, row) {
			return row - summaryRowBackoff
		}
	}
	return e.Profile.HeaderRow
}

// Extract reads every data row into a BookingRecord. Rows without a
// reservation id are skipped; rows whose date does not parse land in the
// Unknown period bucket. Neither condition aborts the extraction.
func (e TabularExtractor) Extract(grid GridReader, sourceFile string, origin domain.RecordOrigin) ([]domain.BookingRecord, error) {
	if grid.RowCount() <= e.Profile.HeaderRow {
		return nil, fmt.Errorf("no data rows below header row %d in %s", e.Profile.HeaderRow, sourceFile)
	}

	cols := e.locateColumns(grid)
	keyCol, ok := cols[fieldKey]
	if !ok {
		keyCol = e.Profile.DefaultKeyColumn
	}

	first := e.Profile.HeaderRow + 1
	last := e.lastDataRow(grid)

	var records []domain.BookingRecord
	for row := first; row <= last; row++ {
		key := domain.NormalizeKey(grid.CellValue(row, keyCol))
		if key == "" {
			continue
		}

		date, hasDate := e.rowDate(grid, row, cols)
		period := domain.PeriodUnknown
		if hasDate {
			period = domain.PeriodFromDate(date)
		}

		// Optional columns may be absent; absent reads as an empty cell.
		opt := func(f tableField) any {
			if col, ok := cols[f]; ok {
				return grid.CellValue(row, col)
			}
			return nil
		}

		records = append(records, domain.BookingRecord{
			Key:       key,
			Period:    period,
			Channel:   cellString(opt(fieldChannel)),
			CheckDate: date,
			HasDate:   hasDate,
			Amounts: domain.Amounts{
				Final:      cellDecimal(opt(fieldFinalAmount)),
				Commission: cellDecimal(opt(fieldCommission)),
				Tax:        cellDecimal(opt(fieldTax)),
				Total:      cellDecimal(opt(fieldTotal)),
			},
			Origin:     origin,
			SourceFile: sourceFile,
			Row:        domain.SourceRow{Number: row, Cells: rowCells(grid, row)},
		})
	}
	return records, nil
}

// rowDate prefers the arrival column, falls back to departure.
func (e TabularExtractor) rowDate(grid GridReader, row int, cols map[tableField]int) (time.Time, bool) {
	for _, field := range []tableField{fieldArrival, fieldDeparture} {
		col, ok := cols[field]
		if !ok {
			continue
		}
		if t, ok := cellDate(grid.CellValue(row, col)); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case time.Time:
		return x.Format("2006-01-02")
	default:
		return fmt.Sprint(x)
	}
}

// cellDate accepts native date values or lenient free-text dates. Failures
// mean "no date", never an error.
func cellDate(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, true
	case nil:
		return time.Time{}, false
	}
	s := strings.TrimSpace(cellString(v))
	if s == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func cellDecimal(v any) decimal.Decimal {
	s := strings.TrimSpace(strings.ReplaceAll(cellString(v), ",", ""))
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func rowEmpty(grid GridReader, row int) bool {
	for col := 1; col <= grid.ColumnCount(); col++ {
		if strings.TrimSpace(cellString(grid.CellValue(row, col))) != "" {
			return false
		}
	}
	return true
}

func rowCells(grid GridReader, row int) []any {
	cells := make([]any, grid.ColumnCount())
	for col := 1; col <= grid.ColumnCount(); col++ {
		cells[col-1] = grid.CellValue(row, col)
	}
	return cells
}
