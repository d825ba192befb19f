package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ReservationKey is the normalized identifier used to join the two sides.
type ReservationKey string

var nonAlphanumeric = regexp.MustCompile(`[^A-Z0-9]`)

// NormalizeKey canonicalizes a raw reservation identifier: coerce to text,
// trim, uppercase, strip everything outside [A-Z0-9]. "HM-1234 567" and
// "hm1234567" normalize identically. An empty result means "no key" and must
// never enter a match set.
func NormalizeKey(raw any) ReservationKey {
	if raw == nil {
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		s = fmt.Sprint(raw)
	}
	s = strings.ToUpper(strings.TrimSpace(s))
	return ReservationKey(nonAlphanumeric.ReplaceAllString(s, ""))
}

// Period is a coarse Month'Year bucket, e.g. "Dec'25".
type Period string

const (
	// PeriodUnknown groups records whose date could not be determined. Such
	// records are bucketed, never dropped.
	PeriodUnknown Period = "Unknown"
	// PeriodPlaceholder is the last-resort run label when no period can be
	// derived from filenames or dates.
	PeriodPlaceholder Period = "Period"
)

// Known reports whether p is a concrete Month'Year bucket rather than a
// sentinel.
func (p Period) Known() bool {
	return p != "" && p != PeriodUnknown && p != PeriodPlaceholder
}

// PeriodFromDate buckets a date into its Mon'YY period.
func PeriodFromDate(t time.Time) Period {
	return Period(t.Format("Jan'06"))
}

// RecordOrigin distinguishes tabular extraction from text-layout recovery.
// The Booking.com zero-amount suppression applies to tabular records only.
type RecordOrigin string

const (
	OriginTabular       RecordOrigin = "tabular"
	OriginTextRecovered RecordOrigin = "text-recovered"
)

// Amounts carries the monetary cells of a record. They are never reconciled
// numerically; they exist for the zero-amount suppression rule and for
// report carry-through.
type Amounts struct {
	Final      decimal.Decimal
	Commission decimal.Decimal
	Tax        decimal.Decimal
	Total      decimal.Decimal
}

// SourceRow is an opaque back-reference to the extracted row, kept so the
// report assembler can copy and highlight the original cells.
type SourceRow struct {
	Number int // 1-indexed row in the source grid, 0 for synthesized rows
	Cells  []any
}

// BookingRecord is one extracted row from either side. Created once during
// extraction and immutable afterwards.
type BookingRecord struct {
	Key        ReservationKey
	Period     Period
	Channel    string
	CheckDate  time.Time // check-in or check-out, whichever the source carries
	HasDate    bool
	Amounts    Amounts
	Origin     RecordOrigin
	SourceFile string
	Row        SourceRow
}
