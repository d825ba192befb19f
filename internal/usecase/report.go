package usecase

import (
	"fmt"

	"hotel-reconciliation/internal/domain"
)

// Synthesized header for right-side tables recovered from text, which have
// no source grid to copy.
var recoveredHeader = []any{"Booking Type", "Reservation ID", "Date", "Amount", "Total"}

// ReportAssembler turns one reconciliation result plus the two filtered
// record tables into output-workbook build instructions: a copy of each side
// with non-matching rows highlighted, and a discrepancy sheet.
type ReportAssembler struct {
	out ReportFile
}

// NewReportAssembler wraps an output workbook.
func NewReportAssembler(out ReportFile) *ReportAssembler {
	return &ReportAssembler{out: out}
}

// WriteRun emits the three sheets for one pairing. Discrepancy keys are
// written in lexicographic order so identical inputs produce identical
// workbooks.
func (a *ReportAssembler) WriteRun(res domain.ReconciliationResult, left, right []domain.BookingRecord, run domain.RunReport) error {
	base := fmt.Sprintf("%s-%s", run.Hotel, run.Brand)

	if err := a.writeDiscrepancySheet(base, res, run); err != nil {
		return err
	}
	if err := a.writeSideSheet(base+" Hoteliers", left, res.OnlyLeft, domain.HighlightMissingOnRight); err != nil {
		return err
	}
	return a.writeSideSheet(base+" OTA", right, res.OnlyRight, domain.HighlightMissingOnLeft)
}

func (a *ReportAssembler) writeDiscrepancySheet(base string, res domain.ReconciliationResult, run domain.RunReport) error {
	sheet, err := a.out.AddSheet(base)
	if err != nil {
		return err
	}

	meta := [][]any{
		{"File", run.OTAFile},
		{"Hotel", string(run.Hotel)},
		{"Channel", string(run.Brand)},
		{"Period", string(run.Period)},
		{"Source left", res.SourceLeftLabel},
		{"Source right", res.SourceRightLabel},
		{"Matched", run.MatchedCount},
	}
	for _, w := range res.Warnings {
		meta = append(meta, []any{"Warning", w})
	}
	meta = append(meta, []any{})
	for _, cells := range meta {
		if _, err := a.out.AppendRow(sheet, cells...); err != nil {
			return err
		}
	}

	headerRow, err := a.out.AppendRow(sheet, "Only in Hoteliers", "Only in OTA")
	if err != nil {
		return err
	}
	if err := a.out.BoldRow(sheet, headerRow, 1, 2); err != nil {
		return err
	}

	onlyLeft := res.OnlyLeft.Sorted()
	onlyRight := res.OnlyRight.Sorted()
	for i := 0; i < len(onlyLeft) || i < len(onlyRight); i++ {
		var l, r any
		if i < len(onlyLeft) {
			l = string(onlyLeft[i])
		}
		if i < len(onlyRight) {
			r = string(onlyRight[i])
		}
		row, err := a.out.AppendRow(sheet, l, r)
		if err != nil {
			return err
		}
		if l != nil {
			if err := a.out.HighlightRow(sheet, row, 1, 1, domain.HighlightMissingOnRight); err != nil {
				return err
			}
		}
		if r != nil {
			if err := a.out.HighlightRow(sheet, row, 2, 2, domain.HighlightMissingOnLeft); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeSideSheet copies one side's filtered rows, highlighting those whose
// key landed in the given discrepancy set. Text-recovered tables get a
// synthesized header and a date display format; tabular rows are copied
// verbatim from their source cells.
func (a *ReportAssembler) writeSideSheet(name string, records []domain.BookingRecord, mark domain.KeySet, category domain.HighlightCategory) error {
	sheet, err := a.out.AddSheet(name)
	if err != nil {
		return err
	}

	if len(records) > 0 && records[0].Origin == domain.OriginTextRecovered {
		headerRow, err := a.out.AppendRow(sheet, recoveredHeader...)
		if err != nil {
			return err
		}
		if err := a.out.BoldRow(sheet, headerRow, 1, len(recoveredHeader)); err != nil {
			return err
		}
		if err := a.out.FormatDateColumn(sheet, 3); err != nil {
			return err
		}
	}

	for _, rec := range records {
		row, err := a.out.AppendRow(sheet, rec.Row.Cells...)
		if err != nil {
			return err
		}
		if mark.Contains(rec.Key) {
			width := len(rec.Row.Cells)
			if width == 0 {
				width = 1
			}
			if err := a.out.HighlightRow(sheet, row, 1, width, category); err != nil {
				return err
			}
		}
	}
	return nil
}
