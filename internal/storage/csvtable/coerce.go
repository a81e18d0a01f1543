package csvtable

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lenient cell parsers. Reads never fail on a malformed cell: numeric cells
// coerce to zero, date cells to the zero time. Write failures are the only
// errors the store surfaces for value problems.

const dateLayout = "2006-01-02"

// ParseDecimal interprets a raw cell as a decimal amount, zero when blank or
// malformed.
func ParseDecimal(cell string) decimal.Decimal {
	d, err := decimal.NewFromString(cell)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseInt interprets a raw cell as an integer identifier. Cells written by
// other tools sometimes carry a float rendering ("3.0"), so it goes through
// decimal and truncates.
func ParseInt(cell string) int64 {
	d, err := decimal.NewFromString(cell)
	if err != nil {
		return 0
	}
	return d.IntPart()
}

// ParseBool interprets a 0/1 flag cell; any nonzero numeric value is true.
func ParseBool(cell string) bool {
	return ParseInt(cell) != 0
}

// ParseDate parses a calendar-date cell, accepting the canonical date-only
// layout and RFC 3339 as a fallback. Malformed cells yield the zero time.
func ParseDate(cell string) time.Time {
	if t, err := time.Parse(dateLayout, cell); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, cell); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	return time.Time{}
}

// ParseTimestamp parses a created_at cell written as RFC 3339, with a
// date-only fallback for hand-edited files.
func ParseTimestamp(cell string) time.Time {
	if t, err := time.Parse(time.RFC3339, cell); err == nil {
		return t
	}
	if t, err := time.Parse(dateLayout, cell); err == nil {
		return t
	}
	return time.Time{}
}

// FormatDate renders a date cell; the zero time renders as the empty string,
// the missing-date marker.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// FormatTimestamp renders a created_at cell.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// FormatBool renders a 0/1 flag cell.
func FormatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
