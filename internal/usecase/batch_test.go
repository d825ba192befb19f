package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"hotel-reconciliation/internal/domain"
	"hotel-reconciliation/internal/usecase"
	mock_usecase "hotel-reconciliation/internal/usecase/mocks"
	"hotel-reconciliation/pkg/logger"
)

func hoteliersGrid(keys ...string) fakeGrid {
	rows := [][]any{
		{"Hoteliers Guru Export"},
		{"No", "Reservation ID", "Guest", "Check-in"},
	}
	for i, k := range keys {
		rows = append(rows, []any{i + 1, k, "guest", "2025-12-05"})
	}
	rows = append(rows, []any{"", "", "", "Summary"})
	return fakeGrid{rows: rows}
}

func otaGrid(keys ...string) fakeGrid {
	rows := [][]any{
		{"Reservation number", "Arrival", "Channel", "Final amount", "Commission amount"},
	}
	for _, k := range keys {
		rows = append(rows, []any{k, "2025-12-06", "Expedia.com (Hotel collect)", "100.00", "10.00"})
	}
	rows = append(rows, []any{"", "", "", "", "Total"})
	return fakeGrid{rows: rows}
}

func TestReconciliationUseCase_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	grids := mock_usecase.NewMockGridSource(ctrl)
	grids.EXPECT().OpenGrid(gomock.Any(), "Katathani_Hoteliers_Dec25.xlsx").
		Return(hoteliersGrid("A", "B", "C"), nil)
	grids.EXPECT().OpenGrid(gomock.Any(), "Katathani_Expedia_Dec25.xlsx").
		Return(otaGrid("B", "C", "D"), nil)

	texts := mock_usecase.NewMockTextSource(ctrl)
	recovery := usecase.NewTextRecoveryEngine(texts, nil, logger.NewNop())
	uc := usecase.NewReconciliationUseCase(grids, recovery, logger.NewNop(), 2, false)

	out := newFakeReport()
	report, err := uc.Run(context.Background(),
		[]string{"Katathani_Hoteliers_Dec25.xlsx"},
		[]string{"Katathani_Expedia_Dec25.xlsx"}, out)
	assert.NoError(t, err)
	assert.Empty(t, report.Errors)
	assert.Len(t, report.Runs, 1)

	run := report.Runs[0]
	assert.Equal(t, domain.HotelKT, run.Hotel)
	assert.Equal(t, domain.BrandExpedia, run.Brand)
	assert.Equal(t, domain.Period("Dec'25"), run.Period)
	assert.Equal(t, 2, run.MatchedCount)
	assert.Equal(t, 1, run.MissingOnLeft, "D is missing in the hoteliers table")
	assert.Equal(t, 1, run.MissingOnRight, "A is missing in the OTA report")

	// The report got one sheet triple for the run.
	assert.Contains(t, out.sheets, "KT-Expedia")
	assert.Contains(t, out.sheets, "KT-Expedia Hoteliers")
	assert.Contains(t, out.sheets, "KT-Expedia OTA")
}

func TestReconciliationUseCase_DocumentFailureDoesNotAbortBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	grids := mock_usecase.NewMockGridSource(ctrl)
	grids.EXPECT().OpenGrid(gomock.Any(), "Katathani_Hoteliers_Dec25.xlsx").
		Return(hoteliersGrid("A", "B"), nil)
	grids.EXPECT().OpenGrid(gomock.Any(), "Katathani_Booking_Dec25.xlsx").
		Return(nil, errors.New("corrupt workbook"))
	grids.EXPECT().OpenGrid(gomock.Any(), "Katathani_Expedia_Dec25.xlsx").
		Return(otaGrid("A"), nil)

	texts := mock_usecase.NewMockTextSource(ctrl)
	recovery := usecase.NewTextRecoveryEngine(texts, nil, logger.NewNop())
	uc := usecase.NewReconciliationUseCase(grids, recovery, logger.NewNop(), 1, false)

	out := newFakeReport()
	report, err := uc.Run(context.Background(),
		[]string{"Katathani_Hoteliers_Dec25.xlsx"},
		[]string{"Katathani_Booking_Dec25.xlsx", "Katathani_Expedia_Dec25.xlsx"}, out)
	assert.NoError(t, err)

	assert.Len(t, report.Errors, 1)
	assert.Equal(t, "Katathani_Booking_Dec25.xlsx", report.Errors[0].File)
	assert.ErrorContains(t, report.Errors[0].Err, "corrupt workbook")

	assert.Len(t, report.Runs, 1, "the healthy document still reconciles")
	assert.Equal(t, 1, report.Runs[0].MatchedCount)
}

func TestReconciliationUseCase_UnknownHotelFallsBackToUnclassifiedGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	grids := mock_usecase.NewMockGridSource(ctrl)
	// The left workbook's filename matches no hotel, so its records land in
	// the Unknown group, which serves OTA files of unmatched hotels too.
	grids.EXPECT().OpenGrid(gomock.Any(), "export.xlsx").
		Return(hoteliersGrid("A"), nil)
	grids.EXPECT().OpenGrid(gomock.Any(), "Katathani_Expedia_Dec25.xlsx").
		Return(otaGrid("A"), nil)

	texts := mock_usecase.NewMockTextSource(ctrl)
	recovery := usecase.NewTextRecoveryEngine(texts, nil, logger.NewNop())
	uc := usecase.NewReconciliationUseCase(grids, recovery, logger.NewNop(), 1, false)

	report, err := uc.Run(context.Background(),
		[]string{"export.xlsx"}, []string{"Katathani_Expedia_Dec25.xlsx"}, newFakeReport())
	assert.NoError(t, err)
	assert.Len(t, report.Runs, 1)
	assert.Equal(t, 1, report.Runs[0].MatchedCount)
}

func TestReconciliationUseCase_PDFGoesThroughTextRecovery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	grids := mock_usecase.NewMockGridSource(ctrl)
	grids.EXPECT().OpenGrid(gomock.Any(), "Katathani_Hoteliers_Dec25.xlsx").
		Return(hoteliersGrid("123456789012"), nil)

	texts := mock_usecase.NewMockTextSource(ctrl)
	texts.EXPECT().PageTexts(gomock.Any(), "Katathani_Expedia_Dec25.pdf").
		Return([]string{"Expedia Collect 123456789012 x 25-Dec-2025 x 1200.00 1100.00"}, nil)

	recovery := usecase.NewTextRecoveryEngine(texts, nil, logger.NewNop())
	uc := usecase.NewReconciliationUseCase(grids, recovery, logger.NewNop(), 1, false)

	report, err := uc.Run(context.Background(),
		[]string{"Katathani_Hoteliers_Dec25.xlsx"},
		[]string{"Katathani_Expedia_Dec25.pdf"}, newFakeReport())
	assert.NoError(t, err)
	assert.Len(t, report.Runs, 1)
	assert.Equal(t, 1, report.Runs[0].MatchedCount)
	assert.Equal(t, 0, report.Runs[0].MissingOnLeft)
	assert.Equal(t, 0, report.Runs[0].MissingOnRight)
}

func TestReconciliationUseCase_PeriodScopesLeftRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Left rows span two periods plus an unparseable date; only the Dec'25
	// bucket and the Unknown bucket take part in a Dec'25 run.
	leftGrid := fakeGrid{rows: [][]any{
		{"Hoteliers Guru Export"},
		{"No", "Reservation ID", "Guest", "Check-in"},
		{"1", "DEC-1", "guest", "2025-12-05"},
		{"2", "NOV-1", "guest", "2025-11-05"},
		{"3", "UNK-1", "guest", "not a date"},
		{"", "", "", "Summary"},
	}}

	grids := mock_usecase.NewMockGridSource(ctrl)
	grids.EXPECT().OpenGrid(gomock.Any(), "Katathani_Hoteliers.xlsx").Return(leftGrid, nil)
	grids.EXPECT().OpenGrid(gomock.Any(), "Katathani_Expedia_Dec25.xlsx").Return(otaGrid("ZZZ"), nil)

	texts := mock_usecase.NewMockTextSource(ctrl)
	recovery := usecase.NewTextRecoveryEngine(texts, nil, logger.NewNop())
	uc := usecase.NewReconciliationUseCase(grids, recovery, logger.NewNop(), 1, false)

	report, err := uc.Run(context.Background(),
		[]string{"Katathani_Hoteliers.xlsx"},
		[]string{"Katathani_Expedia_Dec25.xlsx"}, newFakeReport())
	assert.NoError(t, err)
	assert.Len(t, report.Runs, 1)
	// DEC-1 and UNK-1 are compared (and missing on the right); NOV-1 is out
	// of period and not counted.
	assert.Equal(t, 2, report.Runs[0].MissingOnRight)
	assert.Equal(t, 1, report.Runs[0].MissingOnLeft)
	assert.Equal(t, 0, report.Runs[0].MatchedCount)
}
