package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// HotelCode identifies one property of the group.
type HotelCode string

const (
	HotelKT      HotelCode = "KT"
	HotelTS      HotelCode = "TS"
	HotelWAT     HotelCode = "WAT"
	HotelTLKL    HotelCode = "TLKL"
	HotelSAN     HotelCode = "SAN"
	HotelLFS     HotelCode = "LFS"
	HotelUnknown HotelCode = "Unknown"
)

// OTABrand identifies the distribution channel a document came from.
type OTABrand string

const (
	BrandBooking    OTABrand = "Booking.com"
	BrandExpedia    OTABrand = "Expedia"
	BrandAgoda      OTABrand = "Agoda"
	BrandTraveloka  OTABrand = "Traveloka"
	BrandTrip       OTABrand = "Trip.com"
	BrandGenericOTA OTABrand = "OTA"
)

var nonAlnumLower = regexp.MustCompile(`[^a-z0-9]+`)

// hotelRule matches either a name fragment anywhere in the text or a short
// code checked as a whole space-padded token, so " kt " matches but "markt"
// does not.
type hotelRule struct {
	fragment  string
	shortCode string
	code      HotelCode
}

// Ordered; first match wins.
var hotelRules = []hotelRule{
	{"katathani", "kt", HotelKT},
	{"the shore", "ts", HotelTS},
	{"waters", "wat", HotelWAT},
	{"little shore", "tlkl", HotelTLKL},
	{"sands", "san", HotelSAN},
	{"leaf", "", HotelLFS},
}

// InferHotelCode classifies free text (typically a filename) into a hotel
// code. Unmatched text maps to HotelUnknown.
func InferHotelCode(text string) HotelCode {
	norm := nonAlnumLower.ReplaceAllString(strings.ToLower(text), " ")
	padded := " " + norm + " "
	for _, r := range hotelRules {
		if r.fragment != "" && strings.Contains(norm, r.fragment) {
			return r.code
		}
		if r.shortCode != "" && strings.Contains(padded, " "+r.shortCode+" ") {
			return r.code
		}
	}
	return HotelUnknown
}

type brandRule struct {
	keywords []string
	brand    OTABrand
}

// Ordered; first match wins.
var brandRules = []brandRule{
	{[]string{"booking"}, BrandBooking},
	{[]string{"expedia", "hotels"}, BrandExpedia},
	{[]string{"agoda"}, BrandAgoda},
	{[]string{"traveloka"}, BrandTraveloka},
	{[]string{"trip.com", "ctrip"}, BrandTrip},
}

// InferOTABrand classifies free text into an OTA brand, defaulting to the
// generic BrandGenericOTA sentinel.
func InferOTABrand(text string) OTABrand {
	n := strings.ToLower(text)
	for _, r := range brandRules {
		for _, kw := range r.keywords {
			if strings.Contains(n, kw) {
				return r.brand
			}
		}
	}
	return BrandGenericOTA
}

// CanonicalBrand strips non-alphanumerics and lowercases, so a brand label
// can be compared against a free-text channel cell.
func CanonicalBrand(name string) string {
	return nonAlnumLower.ReplaceAllString(strings.ToLower(name), "")
}

// BrandMatchesChannel reports whether a channel cell value denotes the given
// brand. Containment is checked in both directions: "Expedia.com (Hotel
// collect)" still equals the brand "Expedia".
func BrandMatchesChannel(brand, channel string) bool {
	b, c := CanonicalBrand(brand), CanonicalBrand(channel)
	if b == "" || c == "" {
		return false
	}
	return strings.Contains(c, b) || strings.Contains(b, c)
}

var monthNumbers = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

var (
	periodMonTick  = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)'(\d{2})\b`)
	periodMonthYr  = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\W?(\d{2,4})\b`)
	periodISOYM    = regexp.MustCompile(`\b(\d{4})-(\d{1,2})\b`)
	periodMYNumber = regexp.MustCompile(`\b(\d{1,2})-(\d{4})\b`)
)

// ExtractPeriod derives a period from free text. Patterns are tried in
// order: Mon'YY, "Month YYYY", YYYY-MM, MM-YYYY; the first hit wins.
// ok is false when no pattern matches.
func ExtractPeriod(text string) (Period, bool) {
	if m := periodMonTick.FindStringSubmatch(text); m != nil {
		return formatPeriod(monthNumbers[strings.ToLower(m[1])], "20"+m[2]), true
	}
	if m := periodMonthYr.FindStringSubmatch(text); m != nil {
		y := m[2]
		if len(y) == 2 {
			y = "20" + y
		}
		return formatPeriod(monthNumbers[strings.ToLower(m[1])], y), true
	}
	if m := periodISOYM.FindStringSubmatch(text); m != nil {
		if p, ok := numericPeriod(m[2], m[1]); ok {
			return p, true
		}
	}
	if m := periodMYNumber.FindStringSubmatch(text); m != nil {
		if p, ok := numericPeriod(m[1], m[2]); ok {
			return p, true
		}
	}
	return "", false
}

func numericPeriod(month, year string) (Period, bool) {
	mo, err := strconv.Atoi(month)
	if err != nil || mo < 1 || mo > 12 {
		return "", false
	}
	return formatPeriod(time.Month(mo), year), true
}

func formatPeriod(m time.Month, year string) Period {
	return Period(fmt.Sprintf("%s'%s", m.String()[:3], year[len(year)-2:]))
}

// ChoosePeriod resolves a run's period label with a three-tier fallback:
// filename pattern, then the earliest date seen in either source, then the
// literal "Period" placeholder. It never fails.
func ChoosePeriod(filenameText string, dates ...time.Time) Period {
	if p, ok := ExtractPeriod(filenameText); ok {
		return p
	}
	seen := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		if !d.IsZero() {
			seen = append(seen, d)
		}
	}
	if len(seen) > 0 {
		sort.Slice(seen, func(i, j int) bool { return seen[i].Before(seen[j]) })
		return PeriodFromDate(seen[0])
	}
	return PeriodPlaceholder
}
