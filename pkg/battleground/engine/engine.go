// Package engine ties the theme store, viewport tracker, composer,
// transitions and post processing together behind a per-frame API. It has
// no window or GPU dependency; hosts feed it events and frame deltas and
// draw the Frame it returns.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/core/math32"
	"github.com/BrandonKowalski/battleground/pkg/battleground/postfx"
	"github.com/BrandonKowalski/battleground/pkg/battleground/scene"
	"github.com/BrandonKowalski/battleground/pkg/battleground/theme"
	"github.com/BrandonKowalski/battleground/pkg/battleground/transition"
	"github.com/BrandonKowalski/battleground/pkg/battleground/tunables"
	"github.com/BrandonKowalski/battleground/pkg/battleground/viewport"
)

// ErrClosed is returned by Frame after Close.
var ErrClosed = errors.New("engine: closed")

// Options configures an Engine. Registry and Size are required.
type Options struct {
	Registry     *theme.Registry
	InitialTheme string
	Size         viewport.Size

	// Tunables defaults to the stock values.
	Tunables tunables.Source
	// Captioner defaults to the registry text.
	Captioner scene.Captioner
	// Video and Text acquire instance resources. Nil factories produce
	// instances without resources.
	Video transition.Factory
	Text  transition.Factory
	// SunLocator defaults to the sun of the current descriptor.
	SunLocator postfx.SunLocator

	Logger *slog.Logger
}

// Frame is everything a host needs to draw one frame.
type Frame struct {
	Elapsed   time.Duration
	Scene     scene.Descriptor
	SpotLight scene.SpotLight
	Float     scene.FloatPose
	Video     []*transition.Instance
	Text      []*transition.Instance
	Stages    []postfx.Stage
}

// Engine is the frame driven coordinator. All methods must be called from
// the render loop.
type Engine struct {
	logger       *slog.Logger
	store        *theme.Store
	tracker      *viewport.Tracker
	composer     *scene.Composer
	orchestrator *transition.Orchestrator
	tunables     tunables.Source
	locator      postfx.SunLocator
	pipeline     *postfx.Pipeline

	elapsed         time.Duration
	storeVersion    uint64
	tunablesVersion uint64
	resized         bool
	closed          bool
}

// New creates an engine and composes the first frame's scene. When only
// instance resources fail to load, the engine is returned together with the
// error and stays usable.
func New(opts Options) (*Engine, error) {
	if opts.Registry == nil {
		return nil, errors.New("engine: registry is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	store, err := theme.NewStore(opts.Registry, opts.InitialTheme, theme.WithStoreLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	source := opts.Tunables
	if source == nil {
		source = tunables.Static(tunables.Defaults())
	}

	composerOpts := []scene.ComposerOption{scene.WithComposerLogger(logger)}
	if opts.Captioner != nil {
		composerOpts = append(composerOpts, scene.WithCaptioner(opts.Captioner))
	}

	e := &Engine{
		logger:   logger,
		store:    store,
		tracker:  viewport.NewTracker(opts.Size),
		composer: scene.NewComposer(opts.Registry, composerOpts...),
		orchestrator: transition.NewOrchestrator(transition.Options{
			Video:  opts.Video,
			Text:   opts.Text,
			Logger: logger,
		}),
		tunables: source,
		locator:  opts.SunLocator,
	}

	if e.locator == nil {
		e.locator = postfx.SunLocatorFunc(e.sun)
	}

	e.tracker.OnChange(func(size viewport.Size) {
		e.resized = true
		e.logger.Debug("Viewport settled", "size", size.String())
	})

	e.storeVersion = store.Version()
	e.tunablesVersion = source.Version()
	if err := e.recompose(); err != nil {
		return e, err
	}
	return e, nil
}

func (e *Engine) sun() (math32.Vector3, bool) {
	d, ok := e.composer.Current()
	return d.Sun.Position, ok && d.Effects.LightShafts
}

// Store returns the theme store. Hosts call Select on it or on the engine.
func (e *Engine) Store() *theme.Store { return e.store }

func (e *Engine) Tracker() *viewport.Tracker { return e.tracker }

func (e *Engine) Orchestrator() *transition.Orchestrator { return e.orchestrator }

func (e *Engine) Pipeline() *postfx.Pipeline { return e.pipeline }

// Elapsed returns the accumulated frame time.
func (e *Engine) Elapsed() time.Duration { return e.elapsed }

// Scene returns the current descriptor.
func (e *Engine) Scene() scene.Descriptor {
	d, _ := e.composer.Current()
	return d
}

// Select makes key the active theme. The change is picked up on the next
// frame.
func (e *Engine) Select(key string) error {
	return e.store.Select(key)
}

// Resize records a raw window resize. It settles after the quiet period.
func (e *Engine) Resize(size viewport.Size) {
	e.tracker.Signal(size, e.elapsed)
}

// Frame advances time by delta, applies pending changes and returns what to
// draw. A non-nil error alongside a valid Frame reports a resource that
// failed to load; the affected slot shows an empty visual.
func (e *Engine) Frame(delta time.Duration) (Frame, error) {
	if e.closed {
		return Frame{}, ErrClosed
	}

	e.elapsed += delta
	e.tracker.Update(e.elapsed)

	var err error
	storeVersion := e.store.Version()
	tunablesVersion := e.tunables.Version()
	if e.resized || storeVersion != e.storeVersion || tunablesVersion != e.tunablesVersion {
		e.resized = false
		e.storeVersion = storeVersion
		e.tunablesVersion = tunablesVersion
		err = e.recompose()
	}

	e.orchestrator.Advance(e.elapsed)

	d := e.Scene()
	return Frame{
		Elapsed:   e.elapsed,
		Scene:     d,
		SpotLight: scene.SpotlightAt(d.SpotLight, e.elapsed),
		Float:     scene.FloatAt(d.Text, e.elapsed),
		Video:     e.orchestrator.Video().Instances(),
		Text:      e.orchestrator.Text().Instances(),
		Stages:    e.pipeline.Active(),
	}, err
}

func (e *Engine) recompose() error {
	scale := viewport.Compute(e.tracker.Current())
	d, err := e.composer.Compose(e.store.Active(), scale, e.tunables.Values().Scene())
	if err != nil {
		return err
	}

	e.pipeline = postfx.Configure(d, e.locator)

	if err := e.orchestrator.Sync(d, e.elapsed); err != nil {
		e.logger.Warn("Transition resources unavailable", "theme", d.ThemeKey, "error", err)
		return err
	}
	return nil
}

// Close tears everything down synchronously. No transition callback fires
// afterwards.
func (e *Engine) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	e.tracker.Close()
	return e.orchestrator.Close()
}
