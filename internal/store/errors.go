package store

import (
	"errors"
	"fmt"
)

// ErrNotLoaded is returned by Dataset() while the store is Unloaded or still
// Loading. Queries are undefined until a load resolves.
var ErrNotLoaded = errors.New("dataset not loaded yet")

// LoadError reports a failed dataset load: transport failure, malformed
// payload or schema violation. It is surfaced to the caller, never swallowed
// or downgraded to an empty dataset.
type LoadError struct {
	Source  string // "snapshot", "network" or "file"
	Reason  string
	Timeout bool
	Err     error
}

func (e *LoadError) Error() string {
	msg := fmt.Sprintf("loading dataset from %s: %s", e.Source, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
