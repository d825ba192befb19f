package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"hotel-reconciliation/internal/domain"
	"hotel-reconciliation/pkg/logger"
)

// The upstream PDF reflows so that adjacent fields end up separated by
// arbitrary newlines ("25\n\n\n-DEC"), which defeats any column-based
// parsing. The whole document is flattened to one whitespace-normalized
// stream and scanned for anchor triples instead: booking-type label, then an
// 8-to-15-digit id, then a DD-Mon-YYYY date, in order, non-greedily.
var (
	anchorPattern  = regexp.MustCompile(`(?i)(Expedia Collect|Hotel Collect)\s.*?(\d{8,15})\s.*?(\d{1,2}-[A-Za-z]{3}-\d{4})`)
	decimalPattern = regexp.MustCompile(`\d+\.\d{2}`)
	spaceRuns      = regexp.MustCompile(`\s+`)
)

// amountWindowChars bounds the look-ahead after each date anchor when
// collecting amounts. Character-bounded, not token-bounded, to cap the
// worst-case scan cost.
const amountWindowChars = 100

// Amount assignment inside the window: with two or more decimals the
// second-to-last is the pre-tax amount and the last is the total due; a
// single decimal serves as both; none means zero. Best-effort policy pinned
// by tests; the ordering quirk is load-bearing for the source documents and
// must not be "corrected".

// TextRecoveryEngine recovers booking records from unstructured page text,
// with an optional recognition fallback for image-only documents.
type TextRecoveryEngine struct {
	texts TextSource
	ocr   Recognizer
	log   logger.Logger
}

// NewTextRecoveryEngine creates the engine. ocr may be nil when no
// recognition capability is configured.
func NewTextRecoveryEngine(texts TextSource, ocr Recognizer, log logger.Logger) *TextRecoveryEngine {
	return &TextRecoveryEngine{texts: texts, ocr: ocr, log: log}
}

// Extract runs the text pass and, when it comes back empty or when forceOCR
// is set, the recognition fallback. Recognizer failures fail this one
// document only.
func (e *TextRecoveryEngine) Extract(ctx context.Context, path string, forceOCR bool) ([]domain.BookingRecord, error) {
	var pages []string
	if !forceOCR {
		var err error
		pages, err = e.texts.PageTexts(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("text extraction of %s: %w", path, err)
		}
	}

	if forceOCR || allBlank(pages) {
		if e.ocr == nil {
			return nil, fmt.Errorf("recognition fallback for %s: recognizer not configured", path)
		}
		e.log.Warn("falling back to text recognition", "file", path, "forced", forceOCR)
		var err error
		pages, err = e.ocr.RecognizePages(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("recognition fallback for %s: %w", path, err)
		}
	}

	return RecoverRecords(strings.Join(pages, "\n"), path), nil
}

// RecoverRecords scans raw extracted text for anchor triples and returns one
// record per match. Exposed separately so the scan can be exercised without
// a document source.
func RecoverRecords(raw, sourceFile string) []domain.BookingRecord {
	stream := flatten(raw)

	var records []domain.BookingRecord
	for _, m := range anchorPattern.FindAllStringSubmatchIndex(stream, -1) {
		bookingType := stream[m[2]:m[3]]
		id := stream[m[4]:m[5]]
		dateToken := stream[m[6]:m[7]]

		date, hasDate := parseAnchorDate(dateToken)
		period := domain.PeriodUnknown
		if hasDate {
			period = domain.PeriodFromDate(date)
		}

		preTax, total := windowAmounts(stream, m[1])

		records = append(records, domain.BookingRecord{
			Key:       domain.NormalizeKey(id),
			Period:    period,
			Channel:   bookingType,
			CheckDate: date,
			HasDate:   hasDate,
			Amounts: domain.Amounts{
				Final: preTax,
				Total: total,
			},
			Origin:     domain.OriginTextRecovered,
			SourceFile: sourceFile,
			Row: domain.SourceRow{
				Cells: []any{bookingType, id, dateToken, preTax.StringFixed(2), total.StringFixed(2)},
			},
		})
	}
	return records
}

// flatten strips quote and thousands-separator noise, then collapses every
// whitespace run to a single space so broken tokens rejoin.
func flatten(raw string) string {
	s := strings.ReplaceAll(raw, `"`, " ")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "\n", " ")
	return spaceRuns.ReplaceAllString(s, " ")
}

// windowAmounts collects the decimal-formatted numbers in the bounded
// window after an anchor and applies the second-to-last/last policy.
func windowAmounts(stream string, anchorEnd int) (preTax, total decimal.Decimal) {
	end := anchorEnd + amountWindowChars
	if end > len(stream) {
		end = len(stream)
	}
	found := decimalPattern.FindAllString(stream[anchorEnd:end], -1)
	switch {
	case len(found) >= 2:
		preTax = mustDecimal(found[len(found)-2])
		total = mustDecimal(found[len(found)-1])
	case len(found) == 1:
		preTax = mustDecimal(found[0])
		total = preTax
	default:
		preTax, total = decimal.Zero, decimal.Zero
	}
	return preTax, total
}

// parseAnchorDate handles DD-Mon-YYYY tokens case-insensitively
// ("25-DEC-2025" and "25-Dec-2025" both parse).
func parseAnchorDate(token string) (time.Time, bool) {
	parts := strings.Split(token, "-")
	if len(parts) != 3 || parts[1] == "" {
		return time.Time{}, false
	}
	mon := strings.ToLower(parts[1])
	mon = strings.ToUpper(mon[:1]) + mon[1:]
	t, err := time.Parse("2-Jan-2006", parts[0]+"-"+mon+"-"+parts[2])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func allBlank(pages []string) bool {
	for _, p := range pages {
		if strings.TrimSpace(p) != "" {
			return false
		}
	}
	return true
}
