package merge

import "errors"

// The engine fails in exactly three recoverable ways. Callers match with
// errors.Is and translate to a one-line user notice; the engine never
// formats display text itself.
var (
	// ErrIncompleteRange means exactly one of the two range dates was
	// supplied. The user must provide both or neither.
	ErrIncompleteRange = errors.New("incomplete date range: supply both a start and an end date")

	// ErrInvertedRange means the start date resolves after the end date.
	ErrInvertedRange = errors.New("inverted date range: start date is after end date")

	// ErrNoEntries means a well-formed request produced zero entries,
	// either because nothing was selected or the filter excluded
	// everything. A no-op outcome, not a crash.
	ErrNoEntries = errors.New("no entries matched")
)
