package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"hotel-reconciliation/internal/domain"
	"hotel-reconciliation/pkg/logger"
)

// ReconciliationUseCase orchestrates a batch: N hoteliers workbooks against
// M OTA documents, one reconciliation run per OTA document.
type ReconciliationUseCase struct {
	grids    GridSource
	recovery *TextRecoveryEngine
	log      logger.Logger
	workers  int
	forceOCR bool
}

// NewReconciliationUseCase wires the capabilities. workers caps the number
// of concurrent pairings; values below 1 mean sequential.
func NewReconciliationUseCase(grids GridSource, recovery *TextRecoveryEngine, log logger.Logger, workers int, forceOCR bool) *ReconciliationUseCase {
	if workers < 1 {
		workers = 1
	}
	return &ReconciliationUseCase{grids: grids, recovery: recovery, log: log, workers: workers, forceOCR: forceOCR}
}

// runOutput is one worker's immutable result, folded into the report by the
// driver afterwards. Workers never touch the output workbook.
type runOutput struct {
	run   domain.RunReport
	res   domain.ReconciliationResult
	left  []domain.BookingRecord
	right []domain.BookingRecord
	err   error
}

// Run executes the whole batch and writes every run's sheets to out. One
// document's failure is captured per-run and never aborts the rest.
func (uc *ReconciliationUseCase) Run(ctx context.Context, hoteliersPaths, otaPaths []string, out ReportFile) (*domain.BatchReport, error) {
	report := &domain.BatchReport{}

	leftByHotel := uc.loadHoteliers(ctx, hoteliersPaths, report)

	outputs := make([]runOutput, len(otaPaths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.workers)
	var mu sync.Mutex
	for i, path := range otaPaths {
		i, path := i, path
		g.Go(func() error {
			o := uc.runOne(gctx, path, leftByHotel)
			mu.Lock()
			outputs[i] = o
			mu.Unlock()
			return nil
		})
	}
	// Workers only record their own slot, so Wait cannot fail.
	_ = g.Wait()

	assembler := NewReportAssembler(out)
	for _, o := range outputs {
		if o.err != nil {
			uc.log.Error("ota document failed", "file", o.run.OTAFile, "error", o.err)
			report.Errors = append(report.Errors, domain.DocumentError{File: o.run.OTAFile, Err: o.err})
			continue
		}
		for _, w := range o.run.Warnings {
			uc.log.Warn("degraded-confidence run", "file", o.run.OTAFile, "warning", w)
		}
		if err := assembler.WriteRun(o.res, o.left, o.right, o.run); err != nil {
			return nil, fmt.Errorf("writing report for %s: %w", o.run.OTAFile, err)
		}
		uc.log.Info("run complete",
			"file", o.run.OTAFile,
			"hotel", o.run.Hotel,
			"channel", o.run.Brand,
			"period", o.run.Period,
			"matched", o.run.MatchedCount,
			"missingOnLeft", o.run.MissingOnLeft,
			"missingOnRight", o.run.MissingOnRight)
		report.Runs = append(report.Runs, o.run)
	}
	return report, nil
}

// loadHoteliers extracts every left-side workbook, grouped by the hotel code
// inferred from its filename. Per-document failures are recorded and the
// batch continues.
func (uc *ReconciliationUseCase) loadHoteliers(ctx context.Context, paths []string, report *domain.BatchReport) map[domain.HotelCode][]domain.BookingRecord {
	byHotel := make(map[domain.HotelCode][]domain.BookingRecord)
	extractor := TabularExtractor{Profile: HoteliersProfile}
	for _, path := range paths {
		grid, err := uc.grids.OpenGrid(ctx, path)
		if err != nil {
			uc.log.Error("hoteliers document failed", "file", path, "error", err)
			report.Errors = append(report.Errors, domain.DocumentError{File: path, Err: err})
			continue
		}
		records, err := extractor.Extract(grid, filepath.Base(path), domain.OriginTabular)
		if err != nil {
			uc.log.Error("hoteliers document failed", "file", path, "error", err)
			report.Errors = append(report.Errors, domain.DocumentError{File: path, Err: err})
			continue
		}
		hotel := domain.InferHotelCode(filepath.Base(path))
		byHotel[hotel] = append(byHotel[hotel], records...)
	}
	return byHotel
}

// runOne handles one OTA document end to end: extract, scope the left side,
// reconcile, summarize.
func (uc *ReconciliationUseCase) runOne(ctx context.Context, path string, leftByHotel map[domain.HotelCode][]domain.BookingRecord) runOutput {
	name := filepath.Base(path)
	hotel := domain.InferHotelCode(name)
	brand := domain.InferOTABrand(name)

	o := runOutput{run: domain.RunReport{OTAFile: name, Hotel: hotel, Brand: brand}}

	right, err := uc.extractOTA(ctx, path)
	if err != nil {
		o.err = err
		return o
	}

	leftAll := leftByHotel[hotel]
	if len(leftAll) == 0 {
		// No workbook matched this hotel; fall back to the unclassified group.
		leftAll = leftByHotel[domain.HotelUnknown]
	}

	period := domain.ChoosePeriod(name, recordDates(right, leftAll)...)
	o.run.Period = period

	left := scopeToPeriod(leftAll, period)
	leftKeys := domain.NewKeySet()
	for _, r := range left {
		if r.Key != "" {
			leftKeys[r.Key] = struct{}{}
		}
	}

	res := Reconcile(leftKeys, right, brand, BookingZeroAmountRule(brand))
	res.SourceLeftLabel = leftLabel(left)
	res.SourceRightLabel = name
	res.Period = period

	o.res = res
	o.left = left
	o.right = right
	o.run.MatchedCount = len(res.Matched)
	o.run.MissingOnLeft = len(res.OnlyRight)
	o.run.MissingOnRight = len(res.OnlyLeft)
	o.run.Warnings = res.Warnings
	return o
}

// extractOTA picks the extractor by document kind: PDFs go through the
// text-layout recovery engine, everything else is read as a grid.
func (uc *ReconciliationUseCase) extractOTA(ctx context.Context, path string) ([]domain.BookingRecord, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return uc.recovery.Extract(ctx, path, uc.forceOCR)
	}
	grid, err := uc.grids.OpenGrid(ctx, path)
	if err != nil {
		return nil, err
	}
	return TabularExtractor{Profile: OTAProfile}.Extract(grid, filepath.Base(path), domain.OriginTabular)
}

// scopeToPeriod restricts left rows to the run's period bucket. Rows in the
// Unknown bucket are kept, never dropped; an unresolved run period keeps
// every row, matching the widest comparison the original data allows.
func scopeToPeriod(records []domain.BookingRecord, period domain.Period) []domain.BookingRecord {
	if !period.Known() {
		return records
	}
	var out []domain.BookingRecord
	for _, r := range records {
		if r.Period == period || r.Period == domain.PeriodUnknown {
			out = append(out, r)
		}
	}
	return out
}

func recordDates(sets ...[]domain.BookingRecord) []time.Time {
	var dates []time.Time
	for _, set := range sets {
		for _, r := range set {
			if r.HasDate {
				dates = append(dates, r.CheckDate)
			}
		}
	}
	return dates
}

func leftLabel(records []domain.BookingRecord) string {
	seen := make(map[string]struct{})
	var names []string
	for _, r := range records {
		if _, ok := seen[r.SourceFile]; !ok {
			seen[r.SourceFile] = struct{}{}
			names = append(names, r.SourceFile)
		}
	}
	return strings.Join(names, ", ")
}
