package ssaform

import "github.com/pkg/errors"

// InvariantError reports a structural defect in the input procedure that
// the pass detected while running: a use with no reaching definition on
// some control-flow path. It always indicates a malformed caller input,
// never a transient condition, so the pass panics with it rather than
// returning it.
type InvariantError struct {
	cause error
}

func (e *InvariantError) Error() string { return e.cause.Error() }
func (e *InvariantError) Unwrap() error { return e.cause }

func newInvariantError(format string, args ...interface{}) *InvariantError {
	return &InvariantError{cause: errors.Errorf(format, args...)}
}
