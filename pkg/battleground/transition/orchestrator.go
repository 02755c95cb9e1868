package transition

import (
	"errors"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/battleground/pkg/battleground/scene"
)

// Slot names.
const (
	VideoSlot = "video"
	TextSlot  = "text"
)

// Orchestrator owns the video and text slots. The slots transition
// independently; a failure in one never blocks the other.
type Orchestrator struct {
	video *Slot
	text  *Slot
}

// Options configures an Orchestrator.
type Options struct {
	Video  Factory
	Text   Factory
	Logger *slog.Logger
}

// NewOrchestrator creates idle video and text slots.
func NewOrchestrator(opts Options) *Orchestrator {
	return &Orchestrator{
		video: NewSlot(SlotConfig{
			Name:     VideoSlot,
			Motion:   VideoMotion,
			Identity: func(d scene.Descriptor) string { return d.VideoIdentity },
			Acquire:  opts.Video,
			Logger:   opts.Logger,
		}),
		text: NewSlot(SlotConfig{
			Name:     TextSlot,
			Motion:   TextMotion,
			Identity: func(d scene.Descriptor) string { return d.TextIdentity },
			Acquire:  opts.Text,
			Logger:   opts.Logger,
		}),
	}
}

func (o *Orchestrator) Video() *Slot { return o.video }

func (o *Orchestrator) Text() *Slot { return o.text }

func (o *Orchestrator) slots() []*Slot {
	return []*Slot{o.video, o.text}
}

// Sync hands d to every slot. Slot errors are joined.
func (o *Orchestrator) Sync(d scene.Descriptor, now time.Duration) error {
	var errs []error
	for _, s := range o.slots() {
		if err := s.Sync(d, now); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Advance moves every slot to now.
func (o *Orchestrator) Advance(now time.Duration) {
	for _, s := range o.slots() {
		s.Advance(now)
	}
}

// OnSettled subscribes fn to settle events of every slot.
func (o *Orchestrator) OnSettled(fn SettleFunc) {
	for _, s := range o.slots() {
		s.OnSettled(fn)
	}
}

// Settled reports whether no slot is animating.
func (o *Orchestrator) Settled() bool {
	for _, s := range o.slots() {
		if !s.Settled() {
			return false
		}
	}
	return true
}

// Check verifies the invariants of every slot.
func (o *Orchestrator) Check() error {
	var errs []error
	for _, s := range o.slots() {
		if err := s.Check(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close disposes every slot synchronously.
func (o *Orchestrator) Close() error {
	var errs []error
	for _, s := range o.slots() {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
