package theme

import (
	"errors"
	"fmt"
)

// ErrUnknownTheme is matched by every *UnknownThemeError via errors.Is.
var ErrUnknownTheme = errors.New("unknown theme")

// UnknownThemeError is returned when a key is not present in the registry.
type UnknownThemeError struct {
	Key string
}

func (e *UnknownThemeError) Error() string {
	return fmt.Sprintf("theme: unknown theme %q", e.Key)
}

func (e *UnknownThemeError) Is(target error) bool {
	return target == ErrUnknownTheme
}

// InvalidDefinitionError is returned while building a registry from a
// definition that cannot be used.
type InvalidDefinitionError struct {
	Key    string
	Field  string
	Reason string
}

func (e *InvalidDefinitionError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("theme: invalid definition %q: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("theme: invalid definition %q: %s: %s", e.Key, e.Field, e.Reason)
}
