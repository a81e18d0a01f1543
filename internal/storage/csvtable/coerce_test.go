package csvtable

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseDecimal_MalformedCoercesToZero(t *testing.T) {
	assert.True(t, ParseDecimal("12.34").Equal(decimal.RequireFromString("12.34")))
	assert.True(t, ParseDecimal("").Equal(decimal.Zero))
	assert.True(t, ParseDecimal("abc").Equal(decimal.Zero))
}

func TestParseInt_FloatRendering(t *testing.T) {
	assert.Equal(t, int64(3), ParseInt("3"))
	assert.Equal(t, int64(3), ParseInt("3.0"))
	assert.Equal(t, int64(0), ParseInt("not-a-number"))
}

func TestParseBool(t *testing.T) {
	assert.True(t, ParseBool("1"))
	assert.True(t, ParseBool("2"))
	assert.False(t, ParseBool("0"))
	assert.False(t, ParseBool(""))
}

func TestParseDate(t *testing.T) {
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), ParseDate("2024-02-29"))

	// RFC 3339 cells truncate to the day.
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), ParseDate("2024-01-05T13:45:00Z"))

	assert.True(t, ParseDate("not a date").IsZero())
	assert.True(t, ParseDate("").IsZero())
}

func TestFormatDate_ZeroTimeIsEmpty(t *testing.T) {
	assert.Equal(t, "", FormatDate(time.Time{}))
	assert.Equal(t, "2024-02-29", FormatDate(time.Date(2024, 2, 29, 10, 0, 0, 0, time.UTC)))
}

func TestTimestampRoundTrip(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, ts, ParseTimestamp(FormatTimestamp(ts)))
	assert.Equal(t, "", FormatTimestamp(time.Time{}))
}
