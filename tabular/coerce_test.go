package tabular_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nwb/visit-engine/tabular"
)

// =============================================================================
// DATE COERCION
// =============================================================================

func TestParseDate_KnownLayouts(t *testing.T) {
	want := tabular.NewDate(2024, time.March, 15)

	cases := map[string]string{
		"iso":            "2024-03-15",
		"iso datetime":   "2024-03-15 00:00:00",
		"brazilian":      "15/03/2024",
		"dashed":         "15-03-2024",
		"excelize short": "3-15-24",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			got := tabular.ParseDate(raw)
			assert.True(t, got.Valid, "should parse %q", raw)
			assert.True(t, got.Time.Equal(want.Time), "got %s for %q", got, raw)
		})
	}
}

func TestParseDate_ExcelSerial(t *testing.T) {
	// Serial 45366 is 2024-03-15 in the 1900 date system.
	got := tabular.ParseDate("45366")
	assert.True(t, got.Valid)
	assert.Equal(t, "2024-03-15", got.String())
}

func TestParseDate_Junk_DegradesToNull(t *testing.T) {
	// Malformed dates are tolerated, never errors: the cell goes null.
	for _, raw := range []string{"", "   ", "not a date", "2024-13-45", "12"} {
		got := tabular.ParseDate(raw)
		assert.False(t, got.Valid, "expected null for %q", raw)
		assert.Equal(t, "", got.String())
	}
}

func TestParseDate_TruncatesTimeOfDay(t *testing.T) {
	got := tabular.ParseDate("2024-03-15 13:45:12")
	assert.True(t, got.Valid)
	assert.Equal(t, 0, got.Time.Hour())
}

// =============================================================================
// NUMERIC COERCION
// =============================================================================

func TestParseNumber_Valid(t *testing.T) {
	cases := map[string]string{
		"30":   "30",
		" 30 ": "30",
		"30.5": "30.5",
		"30,5": "30.5", // Brazilian decimal separator
		"-2":   "-2",
		"0":    "0",
		"1e2":  "100",
	}
	for raw, want := range cases {
		got := tabular.ParseNumber(raw)
		assert.True(t, got.Valid, "should parse %q", raw)
		assert.Equal(t, want, got.Decimal.String(), "raw %q", raw)
	}
}

func TestParseNumber_Junk_DegradesToNull(t *testing.T) {
	for _, raw := range []string{"", "  ", "abc", "30 dias", "1,2,3"} {
		got := tabular.ParseNumber(raw)
		assert.False(t, got.Valid, "expected null for %q", raw)
	}
}

// =============================================================================
// DATE ARITHMETIC
// =============================================================================

func TestDaysBetween_WholeDays(t *testing.T) {
	jan1 := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	feb15 := time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 45, tabular.DaysBetween(jan1, feb15))
	assert.Equal(t, -45, tabular.DaysBetween(feb15, jan1))
	assert.Equal(t, 0, tabular.DaysBetween(jan1, jan1))
}

func TestDaysBetween_IgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, time.January, 2, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, tabular.DaysBetween(morning, evening))
}
