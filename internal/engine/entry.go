package engine

import (
	"strconv"
	"time"

	"github.com/tartampluch/go-datewheel/internal/config"
)

// DateEntry is one row of the date column.
type DateEntry struct {
	// Date is the calendar day at local midnight.
	Date time.Time

	// Weekday is one of config.WeekdayLabels.
	Weekday string
}

// NewDateEntry builds the entry for the day containing t.
func NewDateEntry(t time.Time) DateEntry {
	day := StartOfDay(t)
	return DateEntry{
		Date:    day,
		Weekday: WeekdayLabel(day.Weekday()),
	}
}

// Title renders the row text, e.g. "07月13日星期四".
func (e DateEntry) Title() string {
	return e.Date.Format(config.DateFormatRow) + e.Weekday
}

// SameDay reports whether t falls on the entry's calendar day,
// evaluated in the entry's location.
func (e DateEntry) SameDay(t time.Time) bool {
	y1, m1, d1 := e.Date.Date()
	y2, m2, d2 := t.In(e.Date.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// At returns the entry's day at hour:minute.
func (e DateEntry) At(hour, minute int) time.Time {
	y, m, d := e.Date.Date()
	return time.Date(y, m, d, hour, minute, 0, 0, e.Date.Location())
}

// NumberEntry is one row of the hour or minute column.
type NumberEntry struct {
	Value int
	Label string
}

func newNumberEntry(v int) NumberEntry {
	return NumberEntry{Value: v, Label: strconv.Itoa(v)}
}

// WeekdayLabel maps a weekday to its fixed label (Sunday first).
func WeekdayLabel(wd time.Weekday) string {
	return config.WeekdayLabels[wd]
}
