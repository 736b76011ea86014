package leadstore

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation references a lead, contact entry
// or reminder id that is not in the collection. Delete of a missing id
// returns this too rather than being a silent no-op.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a rejected input before any mutation is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PersistenceError wraps a failed snapshot write. The in-memory collection
// keeps the mutation and stays the source of truth for the session; the
// caller surfaces the error so the user can retry the action.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("could not persist leads: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
