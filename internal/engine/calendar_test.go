package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datewheel/internal/engine"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestIsLeapYear checks the Gregorian rule against February's length.
func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		leap bool
	}{
		{1900, false},
		{2000, true},
		{2023, false},
		{2024, true},
		{2100, false},
		{2400, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.leap, engine.IsLeapYear(tt.year), "year %d", tt.year)
	}

	for y := 1890; y <= 2410; y++ {
		want := 28
		if y%4 == 0 && (y%100 != 0 || y%400 == 0) {
			want = 29
		}
		require.Equal(t, want, engine.DaysInMonth(y, time.February), "February %d", y)
	}
}

// TestDaysInMonth_MatchesTimePackage compares the table to time.Date normalization.
func TestDaysInMonth_MatchesTimePackage(t *testing.T) {
	for _, y := range []int{2023, 2024} {
		for m := time.January; m <= time.December; m++ {
			expected := time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
			assert.Equal(t, expected, engine.DaysInMonth(y, m), "%d-%02d", y, m)
		}
	}
}

func TestBuildDateEntries_Counts(t *testing.T) {
	tests := []struct {
		name  string
		lower time.Time
		upper time.Time
		mode  engine.RangeMode
		want  int
	}{
		{"Non-leap year", day(2023, 1, 1), day(2023, 12, 31), engine.RangeFullYears, 365},
		{"Leap year", day(2024, 1, 1), day(2024, 12, 31), engine.RangeFullYears, 366},
		{"Two years", day(2023, 1, 1), day(2024, 12, 31), engine.RangeFullYears, 731},
		{"Mid-year bounds emit full year", day(2023, 3, 10), day(2023, 3, 20), engine.RangeFullYears, 365},
		{"Strict mid-year bounds", day(2023, 3, 10), day(2023, 3, 20), engine.RangeStrict, 11},
		{"Strict single day", day(2024, 2, 29), day(2024, 2, 29), engine.RangeStrict, 1},
		{"Strict across new year", day(2023, 12, 30), day(2024, 1, 2), engine.RangeStrict, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := engine.BuildDateEntries(tt.lower, tt.upper, tt.mode)
			assert.Len(t, entries, tt.want)
		})
	}
}

func TestBuildDateEntries_InvertedBoundsEmpty(t *testing.T) {
	for _, mode := range []engine.RangeMode{engine.RangeFullYears, engine.RangeStrict} {
		entries := engine.BuildDateEntries(day(2024, 1, 2), day(2024, 1, 1), mode)
		assert.Empty(t, entries, "mode %s", mode)
	}

	err := engine.ValidateBounds(day(2024, 1, 2), day(2024, 1, 1))
	assert.ErrorIs(t, err, engine.ErrEmptyRange)
	assert.NoError(t, engine.ValidateBounds(day(2024, 1, 1), day(2024, 1, 1)))
}

func TestBuildDateEntries_SubDayPrecisionIgnored(t *testing.T) {
	lower := time.Date(2023, 6, 1, 18, 30, 0, 0, time.UTC)
	upper := time.Date(2023, 6, 1, 6, 0, 0, 0, time.UTC)

	entries := engine.BuildDateEntries(lower, upper, engine.RangeStrict)
	require.Len(t, entries, 1, "same calendar day is not an inverted range")
	assert.Equal(t, day(2023, 6, 1), entries[0].Date)
}

// TestBuildDateEntries_OrderedWithoutGaps walks the column day by day.
func TestBuildDateEntries_OrderedWithoutGaps(t *testing.T) {
	entries := engine.BuildDateEntries(day(2023, 1, 1), day(2024, 12, 31), engine.RangeFullYears)
	require.NotEmpty(t, entries)

	assert.Equal(t, day(2023, 1, 1), entries[0].Date)
	assert.Equal(t, day(2024, 12, 31), entries[len(entries)-1].Date)
	for i := 1; i < len(entries); i++ {
		require.Equal(t, entries[i-1].Date.AddDate(0, 0, 1), entries[i].Date, "gap after %s", entries[i-1].Date)
	}
}

func TestBuildDateEntries_WeekdayLabels(t *testing.T) {
	entries := engine.BuildDateEntries(day(2023, 1, 1), day(2023, 12, 31), engine.RangeFullYears)

	thursday, ok := engine.FindDay(entries, day(2023, 7, 13))
	require.True(t, ok)
	assert.Equal(t, "星期四", entries[thursday].Weekday)
	assert.Equal(t, "07月13日星期四", entries[thursday].Title())

	sunday, ok := engine.FindDay(entries, day(2023, 7, 16))
	require.True(t, ok)
	assert.Equal(t, "星期日", entries[sunday].Weekday)

	// Seven consecutive days cover every label exactly once.
	seen := make(map[string]int)
	for _, e := range entries[thursday : thursday+7] {
		seen[e.Weekday]++
	}
	assert.Len(t, seen, 7)
}

func TestBuildDateEntries_Idempotent(t *testing.T) {
	first := engine.BuildDateEntries(day(2023, 5, 1), day(2024, 2, 1), engine.RangeFullYears)
	second := engine.BuildDateEntries(day(2023, 5, 1), day(2024, 2, 1), engine.RangeFullYears)
	assert.Equal(t, first, second)
}

func TestBuildDateEntries_UsesLowerBoundLocation(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	lower := time.Date(2023, 1, 1, 0, 0, 0, 0, loc)
	upper := time.Date(2023, 1, 31, 0, 0, 0, 0, loc)

	entries := engine.BuildDateEntries(lower, upper, engine.RangeStrict)
	require.Len(t, entries, 31)
	assert.Equal(t, loc, entries[0].Date.Location())
	assert.Equal(t, 0, entries[0].Date.Hour())
}

func TestParseBound(t *testing.T) {
	got, err := engine.ParseBound("2024-02-29", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, day(2024, 2, 29), got)

	_, err = engine.ParseBound("2023-02-29", time.UTC)
	assert.Error(t, err, "non-existent day must not parse")

	_, err = engine.ParseBound("29/02/2024", time.UTC)
	assert.Error(t, err)
}

func TestYearHelpers(t *testing.T) {
	now := time.Date(2023, 7, 13, 10, 5, 0, 0, time.UTC)
	assert.Equal(t, day(2023, 1, 1), engine.StartOfYear(now))
	assert.Equal(t, time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC), engine.EndOfYear(now))
	assert.Equal(t, day(2023, 7, 13), engine.StartOfDay(now))
}

func TestTimeUnits(t *testing.T) {
	hours := engine.Hours()
	minutes := engine.Minutes()

	require.Len(t, hours, 24)
	require.Len(t, minutes, 60)
	for i, h := range hours {
		assert.Equal(t, i, h.Value)
	}
	assert.Equal(t, "0", hours[0].Label)
	assert.Equal(t, "23", hours[23].Label)
	assert.Equal(t, "59", minutes[59].Label)
}
