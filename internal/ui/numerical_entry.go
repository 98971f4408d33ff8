package ui

import (
	"unicode/utf8"

	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// FilteredEntry is an Entry that only accepts runes matching Allow,
// up to MaxLen runes (0 means unlimited).
type FilteredEntry struct {
	widget.Entry

	Allow  func(r rune) bool
	MaxLen int
}

// NewNumericalEntry accepts digits only.
func NewNumericalEntry(maxLen int) *FilteredEntry {
	return newFilteredEntry(isDigit, maxLen)
}

// NewDateField accepts YYYY-MM-DD input: digits and dashes, ten runes at most.
func NewDateField() *FilteredEntry {
	e := newFilteredEntry(func(r rune) bool { return isDigit(r) || r == '-' }, len("2006-01-02"))
	e.PlaceHolder = "YYYY-MM-DD"
	return e
}

func newFilteredEntry(allow func(rune) bool, maxLen int) *FilteredEntry {
	entry := &FilteredEntry{Allow: allow, MaxLen: maxLen}
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedRune drops rejected runes and input beyond MaxLen.
// Pasted text bypasses this filter; Validator covers that case.
func (e *FilteredEntry) TypedRune(r rune) {
	if e.Allow != nil && !e.Allow(r) {
		return
	}
	if e.MaxLen > 0 && utf8.RuneCountInString(e.Text) >= e.MaxLen {
		return
	}
	e.Entry.TypedRune(r)
}

// Keyboard shows the numeric keypad on mobile devices.
func (e *FilteredEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
