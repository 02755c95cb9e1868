package internal

import (
	"errors"
	"fmt"
)

// ErrQuit is returned by Run when the window is closed.
var ErrQuit = errors.New("window closed")

// InfrastructureError reports a failure of the host itself (SDL window,
// renderer, font) rather than of the scene logic.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "create window", "open font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("battleground: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("battleground: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}
