// Package media resolves asset references (background videos, title fonts)
// into ready-to-use handles through a pluggable Loader.
//
// Decoding is never done here. Concrete loaders live next to the libraries
// they wrap: see media/video for reisen-backed clips and the SDL host for
// TrueType fonts.
package media

import (
	"context"
	"errors"
	"fmt"
)

// Ref identifies an asset, usually a path relative to the asset root.
type Ref string

// Kind tells a Loader how a Ref should be interpreted.
type Kind int

const (
	KindVideo Kind = iota
	KindFont
)

func (k Kind) String() string {
	switch k {
	case KindVideo:
		return "video"
	case KindFont:
		return "font"
	default:
		return "unknown"
	}
}

// Handle is a loaded asset. Close releases whatever the loader acquired.
type Handle interface {
	Ref() Ref
	Kind() Kind
	Close() error
}

// Loader turns a Ref into a Handle. Implementations must return a
// *ResourceLoadError (or wrap one) on failure.
type Loader interface {
	Load(ctx context.Context, ref Ref, kind Kind) (Handle, error)
}

// LoaderFunc adapts a plain function to the Loader interface.
type LoaderFunc func(ctx context.Context, ref Ref, kind Kind) (Handle, error)

func (f LoaderFunc) Load(ctx context.Context, ref Ref, kind Kind) (Handle, error) {
	return f(ctx, ref, kind)
}

// ErrResourceLoad is matched by every *ResourceLoadError via errors.Is.
var ErrResourceLoad = errors.New("resource load failed")

// ResourceLoadError reports that an asset could not be turned into a handle.
type ResourceLoadError struct {
	Ref  Ref
	Kind Kind
	Err  error
}

func (e *ResourceLoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("media: load %s %q: %v", e.Kind, e.Ref, e.Err)
	}
	return fmt.Sprintf("media: load %s %q", e.Kind, e.Ref)
}

func (e *ResourceLoadError) Unwrap() error {
	return e.Err
}

func (e *ResourceLoadError) Is(target error) bool {
	return target == ErrResourceLoad
}

// NewResourceLoadError creates a load error for ref.
func NewResourceLoadError(ref Ref, kind Kind, err error) *ResourceLoadError {
	return &ResourceLoadError{Ref: ref, Kind: kind, Err: err}
}

// MultiLoader dispatches to a Loader per Kind.
type MultiLoader map[Kind]Loader

func (m MultiLoader) Load(ctx context.Context, ref Ref, kind Kind) (Handle, error) {
	l, ok := m[kind]
	if !ok || l == nil {
		return nil, NewResourceLoadError(ref, kind, errors.New("no loader registered"))
	}
	h, err := l.Load(ctx, ref, kind)
	if err != nil {
		var rle *ResourceLoadError
		if errors.As(err, &rle) {
			return nil, err
		}
		return nil, NewResourceLoadError(ref, kind, err)
	}
	return h, nil
}
