package engine

import (
	"fmt"
	"time"

	"github.com/tartampluch/go-datewheel/internal/config"
)

// Outcome tells whether a selection was kept or replaced by "now".
type Outcome int

const (
	Accepted Outcome = iota
	Clamped
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case Clamped:
		return "clamped"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Indices are the zero-based rows selected in the three columns.
type Indices struct {
	Date   int
	Hour   int
	Minute int
}

// ResolvedSelection is the result surfaced to the presentation layer after
// every selection change.
type ResolvedSelection struct {
	Outcome   Outcome
	Timestamp time.Time
	// Indices are the effective rows. They differ from the user's rows when
	// the outcome is Clamped.
	Indices Indices
}

// Resolve reconciles the selected rows against now.
//
// The candidate is the selected day at hour:minute plus 59 seconds, so the
// current minute still counts as not past. A candidate before now is
// clamped to today's row and now's hour and minute, with now as timestamp.
// Otherwise the raw selection (without the extra seconds) is accepted.
func Resolve(entries []DateEntry, sel Indices, now time.Time) (ResolvedSelection, error) {
	if err := validateIndices(entries, sel); err != nil {
		return ResolvedSelection{}, err
	}

	entry := entries[sel.Date]
	selected := entry.At(sel.Hour, sel.Minute)
	candidate := selected.Add(config.SelectionGraceSeconds * time.Second)

	if !candidate.Before(now) {
		return ResolvedSelection{
			Outcome:   Accepted,
			Timestamp: selected,
			Indices:   sel,
		}, nil
	}

	todayIdx, ok := FindDay(entries, now)
	if !ok {
		return ResolvedSelection{}, fmt.Errorf("%w: %s", ErrTodayNotFound, now.Format(config.DateFormatBound))
	}

	local := now.In(entry.Date.Location())
	return ResolvedSelection{
		Outcome:   Clamped,
		Timestamp: now,
		Indices: Indices{
			Date:   todayIdx,
			Hour:   local.Hour(),
			Minute: local.Minute(),
		},
	}, nil
}

func validateIndices(entries []DateEntry, sel Indices) error {
	if sel.Date < 0 || sel.Date >= len(entries) {
		return fmt.Errorf("%w: date index %d, %d entries", ErrOutOfRange, sel.Date, len(entries))
	}
	if sel.Hour < 0 || sel.Hour >= config.HoursPerDay {
		return fmt.Errorf("%w: hour index %d", ErrOutOfRange, sel.Hour)
	}
	if sel.Minute < 0 || sel.Minute >= config.MinutesPerHour {
		return fmt.Errorf("%w: minute index %d", ErrOutOfRange, sel.Minute)
	}
	return nil
}
