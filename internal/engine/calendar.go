package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/tartampluch/go-datewheel/internal/config"
)

// RangeMode controls which days of the spanned years end up in the date column.
type RangeMode string

const (
	// RangeFullYears lists every day of every year from lower.Year() to
	// upper.Year(), even when the bounds fall mid-year.
	RangeFullYears RangeMode = config.RangeModeFullYears

	// RangeStrict lists only the days inside [lower, upper].
	RangeStrict RangeMode = config.RangeModeStrict
)

// IsLeapYear applies the Gregorian rule: divisible by 4, except centurial
// years not divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days of month m in year.
func DaysInMonth(year int, m time.Month) int {
	switch m {
	case time.January, time.March, time.May, time.July, time.August, time.October, time.December:
		return 31
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// StartOfDay strips the sub-day part of t, keeping its location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfYear returns January 1st, 00:00 of t's year.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// EndOfYear returns the last second of t's year.
func EndOfYear(t time.Time) time.Time {
	return StartOfYear(t).AddDate(1, 0, 0).Add(-time.Second)
}

// ParseBound parses a YYYY-MM-DD bound in loc.
func ParseBound(value string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(config.DateFormatBound, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", config.ErrBoundParse, err)
	}
	return t, nil
}

// ValidateBounds returns ErrEmptyRange when lower falls on a later day than upper.
func ValidateBounds(lower, upper time.Time) error {
	if StartOfDay(lower).After(StartOfDay(upper.In(lower.Location()))) {
		return fmt.Errorf("%w: %s > %s", ErrEmptyRange,
			lower.Format(config.DateFormatBound), upper.Format(config.DateFormatBound))
	}
	return nil
}

// BuildDateEntries enumerates the date column for [lower, upper].
// Days are created at midnight in lower's location. Inverted bounds yield an
// empty slice; a day that does not survive construction is skipped.
func BuildDateEntries(lower, upper time.Time, mode RangeMode) []DateEntry {
	start := time.Now()
	loc := lower.Location()
	lowerDay := StartOfDay(lower)
	upperDay := StartOfDay(upper.In(loc))

	if lowerDay.After(upperDay) {
		return nil
	}

	var entries []DateEntry
	for y := lowerDay.Year(); y <= upperDay.Year(); y++ {
		for m := time.January; m <= time.December; m++ {
			days := DaysInMonth(y, m)
			for d := 1; d <= days; d++ {
				day := time.Date(y, m, d, 0, 0, 0, 0, loc)
				if day.Year() != y || day.Month() != m || day.Day() != d {
					slog.Debug(config.MsgSkippedDay,
						config.LogKeyComponent, config.CompEngine,
						config.LogKeyValue, fmt.Sprintf("%04d-%02d-%02d", y, m, d))
					continue
				}
				if mode == RangeStrict && (day.Before(lowerDay) || day.After(upperDay)) {
					continue
				}
				entries = append(entries, NewDateEntry(day))
			}
		}
	}

	slog.Debug(config.MsgRangeBuilt,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyMode, string(mode),
		config.LogKeyCount, len(entries),
		config.LogKeyDuration, time.Since(start).Microseconds())
	return entries
}

// FindDay returns the index of the first entry falling on t's calendar day.
func FindDay(entries []DateEntry, t time.Time) (int, bool) {
	for i, e := range entries {
		if e.SameDay(t) {
			return i, true
		}
	}
	return 0, false
}
