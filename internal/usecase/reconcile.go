package usecase

import (
	"fmt"

	"hotel-reconciliation/internal/domain"
)

// SuppressionRule decides whether a right-side record is excluded from set
// comparison entirely: neither matched nor flagged as missing.
type SuppressionRule func(domain.BookingRecord) bool

// BookingZeroAmountRule is the Booking.com placeholder/cancellation rule:
// that brand's reports carry rows with a zero final amount or zero
// commission which represent no receivable booking. The rule applies only to
// that brand and only to tabular records; text-recovered rows have no
// reliable amount columns to judge by.
func BookingZeroAmountRule(brand domain.OTABrand) SuppressionRule {
	if brand != domain.BrandBooking {
		return nil
	}
	return func(r domain.BookingRecord) bool {
		if r.Origin != domain.OriginTabular {
			return false
		}
		return r.Amounts.Final.IsZero() || r.Amounts.Commission.IsZero()
	}
}

// Reconcile partitions the two key sets into matched / only-left /
// only-right. Right records are first channel-filtered (canonical
// containment match against the filter brand, skipped for the generic
// sentinel); when the filter empties a non-empty right side the unfiltered
// rows are used and a degraded-confidence warning is attached. The
// suppression rule, when present, removes right rows before both
// intersection and difference. Membership depends only on the key sets and
// the rule, so identical inputs always produce identical sets.
func Reconcile(leftKeys domain.KeySet, rightRecords []domain.BookingRecord, channelFilter domain.OTABrand, suppress SuppressionRule) domain.ReconciliationResult {
	res := domain.ReconciliationResult{
		Matched:   domain.NewKeySet(),
		OnlyLeft:  domain.NewKeySet(),
		OnlyRight: domain.NewKeySet(),
		Channel:   channelFilter,
	}

	filtered := rightRecords
	if channelFilter != "" && channelFilter != domain.BrandGenericOTA {
		filtered = filterByChannel(rightRecords, channelFilter)
		if len(filtered) == 0 && len(rightRecords) > 0 {
			filtered = rightRecords
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"channel filter %q matched no rows; comparing against all %d unfiltered rows",
				channelFilter, len(rightRecords)))
		}
	}

	rightKeys := domain.NewKeySet()
	for _, r := range filtered {
		if r.Key == "" {
			continue
		}
		if suppress != nil && suppress(r) {
			continue
		}
		rightKeys[r.Key] = struct{}{}
	}

	for k := range leftKeys {
		if rightKeys.Contains(k) {
			res.Matched[k] = struct{}{}
		} else {
			res.OnlyLeft[k] = struct{}{}
		}
	}
	for k := range rightKeys {
		if !leftKeys.Contains(k) {
			res.OnlyRight[k] = struct{}{}
		}
	}
	return res
}

func filterByChannel(records []domain.BookingRecord, brand domain.OTABrand) []domain.BookingRecord {
	var out []domain.BookingRecord
	for _, r := range records {
		if domain.BrandMatchesChannel(string(brand), r.Channel) {
			out = append(out, r)
		}
	}
	return out
}
