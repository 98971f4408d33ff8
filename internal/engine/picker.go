package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tartampluch/go-datewheel/internal/config"
)

// FallbackPolicy decides what clamping does when today is not listed.
type FallbackPolicy string

const (
	// FallbackError returns ErrTodayNotFound and leaves the state untouched.
	FallbackError FallbackPolicy = config.FallbackPolicyError

	// FallbackNearestBound selects the row nearest to today at 23:59.
	FallbackNearestBound FallbackPolicy = config.FallbackPolicyNearestBound
)

// Option configures a Picker.
type Option func(*Picker)

// WithBounds sets the initial lower and upper bound.
func WithBounds(lower, upper time.Time) Option {
	return func(p *Picker) {
		p.lower, p.upper = lower, upper
	}
}

// WithRangeMode selects full-year or strict enumeration.
func WithRangeMode(mode RangeMode) Option {
	return func(p *Picker) { p.mode = mode }
}

// WithFallback sets the policy used when today is outside the date column.
func WithFallback(policy FallbackPolicy) Option {
	return func(p *Picker) { p.fallback = policy }
}

// WithOnResolved registers the selection callback.
func WithOnResolved(fn func(ResolvedSelection)) Option {
	return func(p *Picker) { p.onResolved = fn }
}

// Picker holds the state of the three-column wheel.
// It is not safe for concurrent use: all calls belong on the UI thread.
type Picker struct {
	clock      Clock
	lower      time.Time
	upper      time.Time
	mode       RangeMode
	fallback   FallbackPolicy
	onResolved func(ResolvedSelection)

	dates   []DateEntry
	hours   []NumberEntry
	minutes []NumberEntry

	sel  Indices
	last *ResolvedSelection
}

// NewPicker builds the columns and selects the current moment.
// Bounds default to the first and last second of the clock's current year.
func NewPicker(clock Clock, opts ...Option) *Picker {
	if clock == nil {
		clock = RealClock{}
	}
	now := clock.Now()
	p := &Picker{
		clock:    clock,
		lower:    StartOfYear(now),
		upper:    EndOfYear(now),
		mode:     RangeFullYears,
		fallback: FallbackError,
		hours:    Hours(),
		minutes:  Minutes(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.rebuild()
	return p
}

// SetBounds replaces the bounds, rebuilds the date column and reselects
// the current moment.
func (p *Picker) SetBounds(lower, upper time.Time) {
	p.lower, p.upper = lower, upper
	p.rebuild()
}

// SetRangeMode switches enumeration mode and rebuilds the date column.
func (p *Picker) SetRangeMode(mode RangeMode) {
	if p.mode == mode {
		return
	}
	p.mode = mode
	p.rebuild()
}

// SetFallback changes the clamping fallback policy.
func (p *Picker) SetFallback(policy FallbackPolicy) {
	p.fallback = policy
}

// OnResolved replaces the selection callback.
func (p *Picker) OnResolved(fn func(ResolvedSelection)) {
	p.onResolved = fn
}

// Select handles a row change in one column. On success the effective
// indices are stored and the callback fires. On error nothing changes.
func (p *Picker) Select(column, index int) (ResolvedSelection, error) {
	sel := p.sel
	switch column {
	case config.ColumnDate:
		sel.Date = index
	case config.ColumnHour:
		sel.Hour = index
	case config.ColumnMinute:
		sel.Minute = index
	default:
		return ResolvedSelection{}, fmt.Errorf("%w: %d", ErrUnknownColumn, column)
	}
	return p.apply(sel)
}

// Refresh resolves the current rows against a fresh "now".
func (p *Picker) Refresh() (ResolvedSelection, error) {
	return p.apply(p.sel)
}

// DateEntries returns the date column. The slice must not be modified.
func (p *Picker) DateEntries() []DateEntry { return p.dates }

// HourEntries returns the hour column.
func (p *Picker) HourEntries() []NumberEntry { return p.hours }

// MinuteEntries returns the minute column.
func (p *Picker) MinuteEntries() []NumberEntry { return p.minutes }

// Indices returns the currently selected rows.
func (p *Picker) Indices() Indices { return p.sel }

// Bounds returns the configured lower and upper bound.
func (p *Picker) Bounds() (time.Time, time.Time) { return p.lower, p.upper }

// RangeMode returns the enumeration mode.
func (p *Picker) RangeMode() RangeMode { return p.mode }

// Last returns the most recent resolved selection, if any.
func (p *Picker) Last() (ResolvedSelection, bool) {
	if p.last == nil {
		return ResolvedSelection{}, false
	}
	return *p.last, true
}

// Len returns the number of rows of a column, or 0 for an unknown column.
func (p *Picker) Len(column int) int {
	switch column {
	case config.ColumnDate:
		return len(p.dates)
	case config.ColumnHour:
		return len(p.hours)
	case config.ColumnMinute:
		return len(p.minutes)
	}
	return 0
}

// RowTitle returns the text of a row, or "" when out of range.
func (p *Picker) RowTitle(column, row int) string {
	if row < 0 || row >= p.Len(column) {
		return ""
	}
	switch column {
	case config.ColumnDate:
		return p.dates[row].Title()
	case config.ColumnHour:
		return p.hours[row].Label
	default:
		return p.minutes[row].Label
	}
}

func (p *Picker) apply(sel Indices) (ResolvedSelection, error) {
	now := p.now()

	res, err := Resolve(p.dates, sel, now)
	if errors.Is(err, ErrTodayNotFound) && p.fallback == FallbackNearestBound {
		res, err = p.nearestBound(now)
	}
	if err != nil {
		return ResolvedSelection{}, err
	}
	p.commit(res)
	return res, nil
}

// SelectNow moves every column to the current moment, as on construction,
// and resolves it. When today is not listed the fallback policy applies.
func (p *Picker) SelectNow() (ResolvedSelection, error) {
	now := p.now()
	idx, ok := FindDay(p.dates, now)
	if ok {
		return p.apply(Indices{Date: idx, Hour: now.Hour(), Minute: now.Minute()})
	}
	if p.fallback != FallbackNearestBound {
		return ResolvedSelection{}, fmt.Errorf("%w: %s", ErrTodayNotFound, now.Format(config.DateFormatBound))
	}
	res, err := p.nearestBound(now)
	if err != nil {
		return ResolvedSelection{}, err
	}
	p.commit(res)
	return res, nil
}

// commit stores the effective indices and notifies the callback.
func (p *Picker) commit(res ResolvedSelection) {
	p.sel = res.Indices
	p.last = &res

	msg := config.MsgSelectionOK
	if res.Outcome == Clamped {
		msg = config.MsgSelectionClamp
	}
	slog.Debug(msg,
		config.LogKeyComponent, config.CompPicker,
		config.LogKeyOutcome, res.Outcome.String(),
		config.LogKeyTimestamp, res.Timestamp,
		config.LogKeyIndices, res.Indices)

	if p.onResolved != nil {
		p.onResolved(res)
	}
}

// nearestBound picks the first row when today precedes the column and the
// last row otherwise, at the last minute of that day.
func (p *Picker) nearestBound(now time.Time) (ResolvedSelection, error) {
	if len(p.dates) == 0 {
		return ResolvedSelection{}, fmt.Errorf("%w: no date entries", ErrOutOfRange)
	}
	idx := len(p.dates) - 1
	if now.Before(p.dates[0].Date) {
		idx = 0
	}
	slog.Info(config.MsgFallbackUsed,
		config.LogKeyComponent, config.CompPicker,
		config.LogKeyIndex, idx)
	return ResolvedSelection{
		Outcome:   Clamped,
		Timestamp: p.dates[idx].At(config.FallbackHour, config.FallbackMinute),
		Indices:   Indices{Date: idx, Hour: config.FallbackHour, Minute: config.FallbackMinute},
	}, nil
}

// rebuild regenerates the date column and reselects the current moment.
// When today is not listed every column falls back to row 0.
func (p *Picker) rebuild() {
	log := slog.With(config.LogKeyComponent, config.CompPicker)

	if err := ValidateBounds(p.lower, p.upper); err != nil {
		log.Warn(config.MsgRangeEmpty, config.LogKeyError, err)
	}
	p.dates = BuildDateEntries(p.lower, p.upper, p.mode)
	p.last = nil

	now := p.now()
	idx, ok := FindDay(p.dates, now)
	if !ok {
		log.Info(config.MsgTodayMissing,
			config.LogKeyLower, p.lower.Format(config.DateFormatBound),
			config.LogKeyUpper, p.upper.Format(config.DateFormatBound))
		p.sel = Indices{}
		return
	}
	p.sel = Indices{Date: idx, Hour: now.Hour(), Minute: now.Minute()}
}

// now reads the clock in the location the date column is built in.
func (p *Picker) now() time.Time {
	return p.clock.Now().In(p.lower.Location())
}
