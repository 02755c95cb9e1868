package transition

import (
	"errors"
	"fmt"
)

// ErrTransitionConflict is matched by every *TransitionConflictError.
var ErrTransitionConflict = errors.New("transition conflict")

// TransitionConflictError reports a slot holding instances in a combination
// the state machine never produces.
type TransitionConflictError struct {
	Slot   string
	Reason string
}

func (e *TransitionConflictError) Error() string {
	return fmt.Sprintf("transition: %s slot: %s", e.Slot, e.Reason)
}

func (e *TransitionConflictError) Is(target error) bool {
	return target == ErrTransitionConflict
}

// SlotError ties an acquisition failure to the slot and identity it broke.
type SlotError struct {
	Slot     string
	Identity string
	Err      error
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("transition: %s slot %q: %v", e.Slot, e.Identity, e.Err)
}

func (e *SlotError) Unwrap() error {
	return e.Err
}
