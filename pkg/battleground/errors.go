package battleground

import (
	"errors"

	"github.com/BrandonKowalski/battleground/pkg/battleground/internal"
	"github.com/BrandonKowalski/battleground/pkg/battleground/media"
	"github.com/BrandonKowalski/battleground/pkg/battleground/theme"
	"github.com/BrandonKowalski/battleground/pkg/battleground/transition"
)

// InfrastructureError represents a failure of the SDL host itself (window,
// renderer, text rasterization). These errors are typically fatal.
type InfrastructureError = internal.InfrastructureError

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return internal.NewInfrastructureError(op, err)
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsUnknownTheme checks if a selection was rejected because the key is not
// registered.
func IsUnknownTheme(err error) bool {
	return errors.Is(err, theme.ErrUnknownTheme)
}

// IsResourceLoadError checks if a video or font could not be loaded.
func IsResourceLoadError(err error) bool {
	return errors.Is(err, media.ErrResourceLoad)
}

// IsTransitionConflict checks if a transition slot broke its invariants.
func IsTransitionConflict(err error) bool {
	return errors.Is(err, transition.ErrTransitionConflict)
}
