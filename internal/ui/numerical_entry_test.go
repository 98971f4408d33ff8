package ui_test

import (
	"testing"

	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-datewheel/internal/ui"
)

func TestNumericalEntry_TypedRune(t *testing.T) {
	entry := ui.NewNumericalEntry(0)
	window := test.NewWindow(entry)
	defer window.Close()

	tests := []struct {
		name     string
		input    rune
		accepted bool
	}{
		{"Digit_Zero", '0', true},
		{"Digit_Nine", '9', true},
		{"Letter_a", 'a', false},
		{"Symbol_Dash", '-', false},
		{"Symbol_Space", ' ', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry.SetText("")
			test.Type(entry, string(tt.input))

			if tt.accepted {
				assert.Equal(t, string(tt.input), entry.Text)
			} else {
				assert.Empty(t, entry.Text)
			}
		})
	}
}

func TestNumericalEntry_MaxLen(t *testing.T) {
	entry := ui.NewNumericalEntry(5)
	window := test.NewWindow(entry)
	defer window.Close()

	test.Type(entry, "1234567")
	assert.Equal(t, "12345", entry.Text)
}

func TestDateField_TypedRune(t *testing.T) {
	entry := ui.NewDateField()
	window := test.NewWindow(entry)
	defer window.Close()

	test.Type(entry, "2023/07-13xx99")
	assert.Equal(t, "202307-139", entry.Text, "slash and letters are dropped, length capped at 10")

	entry.SetText("")
	test.Type(entry, "2023-07-13")
	assert.Equal(t, "2023-07-13", entry.Text)
}

func TestNumericalEntry_Keyboard(t *testing.T) {
	assert.Equal(t, mobile.NumberKeyboard, ui.NewNumericalEntry(0).Keyboard())
	assert.Equal(t, mobile.NumberKeyboard, ui.NewDateField().Keyboard())
}

// TestNumericalEntry_DirectSetText documents that SetText bypasses the filter.
func TestNumericalEntry_DirectSetText(t *testing.T) {
	entry := ui.NewNumericalEntry(2)
	entry.SetText("abc")
	assert.Equal(t, "abc", entry.Text)
}
