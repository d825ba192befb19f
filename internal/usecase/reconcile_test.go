package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"hotel-reconciliation/internal/domain"
	"hotel-reconciliation/internal/usecase"
)

func rightRecord(key, channel string, origin domain.RecordOrigin, final, commission string) domain.BookingRecord {
	return domain.BookingRecord{
		Key:     domain.ReservationKey(key),
		Channel: channel,
		Origin:  origin,
		Amounts: domain.Amounts{
			Final:      decimal.RequireFromString(final),
			Commission: decimal.RequireFromString(commission),
		},
	}
}

func TestReconcile_Partition(t *testing.T) {
	left := domain.NewKeySet("A", "B", "C")
	right := []domain.BookingRecord{
		rightRecord("B", "Expedia", domain.OriginTabular, "100", "10"),
		rightRecord("C", "Expedia", domain.OriginTabular, "200", "20"),
		rightRecord("D", "Expedia", domain.OriginTabular, "300", "30"),
	}

	res := usecase.Reconcile(left, right, domain.BrandExpedia, nil)

	assert.Equal(t, domain.NewKeySet("B", "C"), res.Matched)
	assert.Equal(t, domain.NewKeySet("A"), res.OnlyLeft)
	assert.Equal(t, domain.NewKeySet("D"), res.OnlyRight)
	assert.Empty(t, res.Warnings)

	// Partition invariants: matched ∪ onlyLeft == left, matched ∪ onlyRight
	// == right keys, all three pairwise disjoint.
	for k := range left {
		assert.True(t, res.Matched.Contains(k) != res.OnlyLeft.Contains(k), "key %s must be in exactly one left partition", k)
	}
	for _, r := range right {
		assert.True(t, res.Matched.Contains(r.Key) != res.OnlyRight.Contains(r.Key), "key %s must be in exactly one right partition", r.Key)
	}
	for k := range res.Matched {
		assert.False(t, res.OnlyLeft.Contains(k))
		assert.False(t, res.OnlyRight.Contains(k))
	}
}

func TestReconcile_Deterministic(t *testing.T) {
	left := domain.NewKeySet("A", "B", "C")
	right := []domain.BookingRecord{
		rightRecord("C", "Expedia", domain.OriginTabular, "1", "1"),
		rightRecord("B", "Expedia", domain.OriginTabular, "1", "1"),
		rightRecord("Z", "Expedia", domain.OriginTabular, "1", "1"),
	}

	first := usecase.Reconcile(left, right, domain.BrandExpedia, nil)
	second := usecase.Reconcile(left, right, domain.BrandExpedia, nil)
	assert.Equal(t, first.Matched, second.Matched)
	assert.Equal(t, first.OnlyLeft, second.OnlyLeft)
	assert.Equal(t, first.OnlyRight, second.OnlyRight)
}

func TestReconcile_EmptyKeysNeverParticipate(t *testing.T) {
	left := domain.NewKeySet("A", "")
	right := []domain.BookingRecord{
		rightRecord("", "Expedia", domain.OriginTabular, "100", "10"),
		rightRecord("A", "Expedia", domain.OriginTabular, "100", "10"),
	}

	res := usecase.Reconcile(left, right, domain.BrandExpedia, nil)
	assert.Equal(t, domain.NewKeySet("A"), res.Matched)
	assert.Empty(t, res.OnlyLeft)
	assert.Empty(t, res.OnlyRight)
}

func TestBookingZeroAmountRule(t *testing.T) {
	assert.Nil(t, usecase.BookingZeroAmountRule(domain.BrandExpedia), "rule applies to one brand only")
	assert.Nil(t, usecase.BookingZeroAmountRule(domain.BrandGenericOTA))

	rule := usecase.BookingZeroAmountRule(domain.BrandBooking)
	assert.NotNil(t, rule)
	assert.True(t, rule(rightRecord("A", "Booking.com", domain.OriginTabular, "0", "0")))
	assert.True(t, rule(rightRecord("A", "Booking.com", domain.OriginTabular, "100", "0")))
	assert.True(t, rule(rightRecord("A", "Booking.com", domain.OriginTabular, "0", "10")))
	assert.False(t, rule(rightRecord("B", "Booking.com", domain.OriginTabular, "100", "10")))
	// Text-recovered rows are out of the rule's scope.
	assert.False(t, rule(rightRecord("A", "Booking.com", domain.OriginTextRecovered, "0", "0")))
}

func TestReconcile_SuppressionScoping(t *testing.T) {
	left := domain.NewKeySet("X")
	right := []domain.BookingRecord{
		rightRecord("A", "Booking.com", domain.OriginTabular, "0", "0"),
		rightRecord("B", "Booking.com", domain.OriginTabular, "100", "10"),
	}

	res := usecase.Reconcile(left, right, domain.BrandBooking, usecase.BookingZeroAmountRule(domain.BrandBooking))

	// A is excluded entirely: neither matched nor missing on the left side.
	assert.False(t, res.OnlyRight.Contains("A"))
	assert.False(t, res.Matched.Contains("A"))
	assert.Equal(t, domain.NewKeySet("B"), res.OnlyRight)
	assert.Equal(t, domain.NewKeySet("X"), res.OnlyLeft)
}

func TestReconcile_ChannelFilter(t *testing.T) {
	left := domain.NewKeySet("A")
	right := []domain.BookingRecord{
		rightRecord("A", "Expedia.com (Hotel collect)", domain.OriginTabular, "1", "1"),
		rightRecord("B", "Booking.com", domain.OriginTabular, "1", "1"),
	}

	res := usecase.Reconcile(left, right, domain.BrandExpedia, nil)
	assert.Equal(t, domain.NewKeySet("A"), res.Matched)
	assert.Empty(t, res.OnlyRight, "rows from other channels are filtered out")
	assert.Empty(t, res.Warnings)
}

func TestReconcile_ChannelFilterFallback(t *testing.T) {
	left := domain.NewKeySet("A")
	right := []domain.BookingRecord{
		rightRecord("A", "Booking.com", domain.OriginTabular, "1", "1"),
		rightRecord("B", "Booking.com", domain.OriginTabular, "1", "1"),
	}

	// The Expedia filter matches nothing; the engine compares against the
	// unfiltered rows and flags the run as low-confidence.
	res := usecase.Reconcile(left, right, domain.BrandExpedia, nil)
	assert.Equal(t, domain.NewKeySet("A"), res.Matched)
	assert.Equal(t, domain.NewKeySet("B"), res.OnlyRight)
	assert.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "channel filter")
}

func TestReconcile_GenericBrandSkipsFilter(t *testing.T) {
	left := domain.NewKeySet("A", "B")
	right := []domain.BookingRecord{
		rightRecord("A", "Expedia", domain.OriginTabular, "1", "1"),
		rightRecord("B", "Booking.com", domain.OriginTabular, "1", "1"),
	}

	res := usecase.Reconcile(left, right, domain.BrandGenericOTA, nil)
	assert.Len(t, res.Matched, 2)
	assert.Empty(t, res.Warnings)
}
