// Package transition drives the enter and exit animations of the scene's
// swappable visuals. Each visual lives in a Slot; a Slot replaces its
// instance whenever the identity derived from the scene descriptor changes.
package transition

import (
	"errors"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/battleground/pkg/battleground/scene"
)

// Phase is the lifecycle stage of an Instance.
type Phase int

const (
	PhaseEntering Phase = iota
	PhaseActive
	PhaseExiting
	PhaseDisposed
)

func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseActive:
		return "active"
	case PhaseExiting:
		return "exiting"
	case PhaseDisposed:
		return "disposed"
	default:
		return "unknown"
	}
}

// State is the aggregate state of a Slot.
type State int

const (
	StateIdle State = iota
	StateEntering
	StateActive
	StateExiting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEntering:
		return "entering"
	case StateActive:
		return "active"
	case StateExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// Resource is whatever an instance draws with. It is closed exactly once,
// after the instance reaches PhaseDisposed.
type Resource interface {
	Close() error
}

// Factory acquires the resource for a new instance.
type Factory func(d scene.Descriptor) (Resource, error)

// IdentityFunc selects the identity a slot follows from a descriptor.
type IdentityFunc func(d scene.Descriptor) string

// Instance is one mounted visual.
type Instance struct {
	identity string
	scene    scene.Descriptor
	resource Resource
	err      error

	phase      Phase
	phaseStart time.Duration
	from       Pose
	pose       Pose
}

// Identity returns the identity the instance was created for.
func (i *Instance) Identity() string { return i.identity }

// Scene returns the latest descriptor the instance was synced with.
func (i *Instance) Scene() scene.Descriptor { return i.scene }

// Resource returns the acquired resource or nil for an empty visual.
func (i *Instance) Resource() Resource { return i.resource }

// Err returns the acquisition error of an empty visual.
func (i *Instance) Err() error { return i.err }

// Empty reports whether the instance has nothing to draw.
func (i *Instance) Empty() bool { return i.resource == nil }

func (i *Instance) Phase() Phase { return i.phase }

func (i *Instance) Pose() Pose { return i.pose }

// Event is delivered to settle listeners.
type Event struct {
	Slot     string
	Identity string
	Phase    Phase
}

// SettleFunc is called when an instance becomes active or is disposed.
type SettleFunc func(Event)

// SlotConfig describes one slot.
type SlotConfig struct {
	Name     string
	Motion   Motion
	Identity IdentityFunc
	Acquire  Factory
	Logger   *slog.Logger
}

// Slot holds at most one entering or active instance and at most one
// exiting instance.
type Slot struct {
	name     string
	motion   Motion
	identity IdentityFunc
	acquire  Factory
	logger   *slog.Logger

	current   *Instance
	exiting   *Instance
	listeners []SettleFunc
	closed    bool
}

// NewSlot creates an idle slot.
func NewSlot(cfg SlotConfig) *Slot {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Slot{
		name:     cfg.Name,
		motion:   cfg.Motion,
		identity: cfg.Identity,
		acquire:  cfg.Acquire,
		logger:   logger,
	}
}

// Name returns the slot name.
func (s *Slot) Name() string { return s.name }

// OnSettled subscribes fn to settle events.
func (s *Slot) OnSettled(fn SettleFunc) {
	s.listeners = append(s.listeners, fn)
}

// Sync advances the slot to now and starts a transition when the identity
// derived from d differs from the current instance's. Otherwise the current
// instance takes d as its layout; an exiting instance keeps its own. A resource that fails
// to load still produces an instance, with an empty visual; the failure is
// returned as a *SlotError.
func (s *Slot) Sync(d scene.Descriptor, now time.Duration) error {
	if s.closed {
		return nil
	}

	s.Advance(now)

	id := s.identity(d)
	if s.current != nil && s.current.identity == id {
		s.current.scene = d
		return nil
	}

	if s.exiting != nil {
		s.logger.Debug("Disposing in-flight exit", "slot", s.name, "identity", s.exiting.identity)
		s.dispose(s.exiting)
		s.exiting = nil
	}

	if s.current != nil {
		s.begin(s.current, PhaseExiting, now)
		s.exiting = s.current
		s.current = nil
	}

	inst := &Instance{
		identity: id,
		scene:    d,
		pose:     s.motion.Initial,
	}
	s.begin(inst, PhaseEntering, now)
	s.current = inst

	var err error
	if s.acquire != nil {
		res, acqErr := s.acquire(d)
		if acqErr != nil {
			inst.err = acqErr
			err = &SlotError{Slot: s.name, Identity: id, Err: acqErr}
			s.logger.Warn("Instance resource unavailable", "slot", s.name, "identity", id, "error", acqErr)
		} else {
			inst.resource = res
		}
	}

	s.logger.Debug("Transition started", "slot", s.name, "identity", id)
	return err
}

// Advance recomputes poses at time now and completes finished phases.
func (s *Slot) Advance(now time.Duration) {
	if s.closed {
		return
	}

	if inst := s.current; inst != nil && inst.phase == PhaseEntering {
		t := progress(now-inst.phaseStart, s.motion.Duration)
		inst.pose = Lerp(inst.from, s.motion.Rest, EaseInOutCubic(t))
		if t >= 1 {
			inst.pose = s.motion.Rest
			s.begin(inst, PhaseActive, now)
			s.notify(inst)
		}
	}

	if inst := s.exiting; inst != nil {
		t := progress(now-inst.phaseStart, s.motion.Duration)
		inst.pose = Lerp(inst.from, s.motion.Exit, EaseInOutCubic(t))
		if t >= 1 {
			s.exiting = nil
			s.dispose(inst)
		}
	}
}

func (s *Slot) begin(inst *Instance, phase Phase, now time.Duration) {
	inst.phase = phase
	inst.phaseStart = now
	inst.from = inst.pose
}

func (s *Slot) dispose(inst *Instance) error {
	inst.phase = PhaseDisposed
	var err error
	if inst.resource != nil {
		err = inst.resource.Close()
		inst.resource = nil
	}
	if err != nil {
		s.logger.Warn("Instance resource close failed", "slot", s.name, "identity", inst.identity, "error", err)
	}
	s.notify(inst)
	return err
}

func (s *Slot) notify(inst *Instance) {
	if s.closed {
		return
	}
	e := Event{Slot: s.name, Identity: inst.identity, Phase: inst.phase}
	for _, fn := range s.listeners {
		fn(e)
	}
}

// State returns the aggregate slot state. Exiting wins over entering so
// a running crossfade reads as exiting.
func (s *Slot) State() State {
	switch {
	case s.exiting != nil:
		return StateExiting
	case s.current == nil:
		return StateIdle
	case s.current.phase == PhaseEntering:
		return StateEntering
	default:
		return StateActive
	}
}

// Current returns the entering or active instance, or nil.
func (s *Slot) Current() *Instance { return s.current }

// Exiting returns the exiting instance, or nil.
func (s *Slot) Exiting() *Instance { return s.exiting }

// Instances returns live instances in draw order, exiting first.
func (s *Slot) Instances() []*Instance {
	out := make([]*Instance, 0, 2)
	if s.exiting != nil {
		out = append(out, s.exiting)
	}
	if s.current != nil {
		out = append(out, s.current)
	}
	return out
}

// Settled reports whether nothing is animating.
func (s *Slot) Settled() bool {
	return s.exiting == nil && (s.current == nil || s.current.phase == PhaseActive)
}

// Check verifies the slot invariants.
func (s *Slot) Check() error {
	if s.current != nil && s.current == s.exiting {
		return &TransitionConflictError{Slot: s.name, Reason: "instance is both current and exiting"}
	}
	if s.current != nil && s.current.phase != PhaseEntering && s.current.phase != PhaseActive {
		return &TransitionConflictError{Slot: s.name, Reason: "current instance is " + s.current.phase.String()}
	}
	if s.exiting != nil && s.exiting.phase != PhaseExiting {
		return &TransitionConflictError{Slot: s.name, Reason: "exiting instance is " + s.exiting.phase.String()}
	}
	return nil
}

// Close disposes every instance synchronously. No settle listener runs
// during or after Close.
func (s *Slot) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.listeners = nil

	var errs []error
	for _, inst := range []*Instance{s.exiting, s.current} {
		if inst == nil {
			continue
		}
		if err := s.dispose(inst); err != nil {
			errs = append(errs, err)
		}
	}
	s.current = nil
	s.exiting = nil
	return errors.Join(errs...)
}
