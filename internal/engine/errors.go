package engine

import (
	"errors"

	"github.com/tartampluch/go-datewheel/internal/config"
)

// Sentinel errors. Callers match them with errors.Is; the returned errors
// carry the offending index or bounds as context.
var (
	// ErrEmptyRange reports inverted bounds. The date column is simply empty.
	ErrEmptyRange = errors.New(config.ErrEmptyRange)

	// ErrOutOfRange reports an index outside its column.
	ErrOutOfRange = errors.New(config.ErrOutOfRange)

	// ErrTodayNotFound reports that clamping needed today's row but the
	// date column does not contain it.
	ErrTodayNotFound = errors.New(config.ErrTodayNotFound)

	// ErrUnknownColumn reports a column other than date, hour or minute.
	ErrUnknownColumn = errors.New(config.ErrUnknownColumn)
)
