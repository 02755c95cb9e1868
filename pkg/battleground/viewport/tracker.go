// Package viewport tracks the settled window size and derives the scale
// factors the scene is laid out with.
package viewport

import (
	"fmt"
	"time"

	"github.com/BrandonKowalski/battleground/pkg/battleground/constants"
)

// Size is a viewport size in device-independent pixels.
type Size struct {
	Width  int
	Height int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// ChangeFunc is notified with the newly settled size.
type ChangeFunc func(Size)

// Tracker debounces raw resize signals. Call Signal from resize events and
// Update once per frame; times are the caller's accumulated frame time.
type Tracker struct {
	current   Size
	pending   Size
	hasSignal bool
	lastAt    time.Duration
	quiet     time.Duration
	listeners []ChangeFunc
	closed    bool
}

// NewTracker creates a tracker settled at initial with the default quiet
// period.
func NewTracker(initial Size) *Tracker {
	return NewTrackerWithQuietPeriod(initial, constants.ResizeQuietPeriod)
}

// NewTrackerWithQuietPeriod creates a tracker with a custom quiet period.
func NewTrackerWithQuietPeriod(initial Size, quiet time.Duration) *Tracker {
	return &Tracker{
		current: initial,
		quiet:   quiet,
	}
}

// Current returns the settled size.
func (t *Tracker) Current() Size {
	return t.current
}

// Pending reports whether a resize is waiting for its quiet period.
func (t *Tracker) Pending() bool {
	return t.hasSignal
}

// OnChange subscribes fn to settled size changes.
func (t *Tracker) OnChange(fn ChangeFunc) {
	t.listeners = append(t.listeners, fn)
}

// Signal records a raw resize at time now and restarts the quiet period.
func (t *Tracker) Signal(size Size, now time.Duration) {
	if t.closed {
		return
	}
	t.pending = size
	t.hasSignal = true
	t.lastAt = now
}

// Update settles the pending size once the quiet period has elapsed since
// the last signal. It returns true when Current changed.
func (t *Tracker) Update(now time.Duration) bool {
	if t.closed || !t.hasSignal {
		return false
	}

	if now-t.lastAt < t.quiet {
		return false
	}

	t.hasSignal = false
	if t.pending == t.current {
		return false
	}

	t.current = t.pending
	for _, fn := range t.listeners {
		fn(t.current)
	}
	return true
}

// Close drops any pending update. No listener fires afterwards.
func (t *Tracker) Close() {
	t.closed = true
	t.hasSignal = false
	t.listeners = nil
}
