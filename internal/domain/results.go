package domain

import "sort"

// HighlightCategory is the label-level styling decision passed across the
// core/report-writer boundary. How a category looks is the writer's concern.
type HighlightCategory string

const (
	// HighlightMissingOnLeft marks right-side rows absent from the left.
	HighlightMissingOnLeft HighlightCategory = "missing-on-left"
	// HighlightMissingOnRight marks left-side rows absent from the right.
	HighlightMissingOnRight HighlightCategory = "missing-on-right"
)

// KeySet is a set of normalized reservation keys.
type KeySet map[ReservationKey]struct{}

// NewKeySet builds a set from keys, ignoring empty ones.
func NewKeySet(keys ...ReservationKey) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		if k != "" {
			s[k] = struct{}{}
		}
	}
	return s
}

// Contains reports membership.
func (s KeySet) Contains(k ReservationKey) bool {
	_, ok := s[k]
	return ok
}

// Sorted returns the keys in lexicographic order for stable output.
func (s KeySet) Sorted() []ReservationKey {
	out := make([]ReservationKey, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ReconciliationResult is the structured diff of one left/right pairing.
// Matched, OnlyLeft and OnlyRight are pairwise disjoint; before suppression
// Matched ∪ OnlyLeft covers the left keys and Matched ∪ OnlyRight the right.
type ReconciliationResult struct {
	Matched   KeySet
	OnlyLeft  KeySet
	OnlyRight KeySet

	SourceLeftLabel  string
	SourceRightLabel string
	Period           Period
	Channel          OTABrand

	// Warnings carries degraded-confidence signals, e.g. the channel filter
	// emptied a non-empty right side and the unfiltered rows were used.
	Warnings []string
}

// RunReport summarizes one reconciliation pairing for the batch output.
type RunReport struct {
	OTAFile        string
	Hotel          HotelCode
	Brand          OTABrand
	Period         Period
	MatchedCount   int
	MissingOnLeft  int
	MissingOnRight int
	Warnings       []string
}

// DocumentError records a per-document extraction failure. One document's
// failure never aborts the batch.
type DocumentError struct {
	File string
	Err  error
}

// BatchReport aggregates every run of a batch.
type BatchReport struct {
	Runs   []RunReport
	Errors []DocumentError
}
