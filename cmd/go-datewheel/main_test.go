package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datewheel/internal/engine"
)

func TestParseOverrides(t *testing.T) {
	o, err := parseOverrides("2023-07-01", "2023-07-31", true)
	require.NoError(t, err)
	assert.Equal(t, "2023-07-01", o.Lower)
	assert.Equal(t, "2023-07-31", o.Upper)
	assert.True(t, o.Strict)

	o, err = parseOverrides("", "", false)
	require.NoError(t, err)
	assert.Empty(t, o.Lower)
	assert.False(t, o.Strict)
}

func TestParseOverrides_Errors(t *testing.T) {
	_, err := parseOverrides("07/01/2023", "", false)
	assert.Error(t, err)

	_, err = parseOverrides("2023-08-01", "2023-07-01", false)
	assert.ErrorIs(t, err, engine.ErrEmptyRange)
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	path, err := getLogFilePath()
	require.NoError(t, err)
	assert.Contains(t, path, "app.log")
}
