package internal

import (
	"context"
	"errors"
	"log/slog"

	"github.com/BrandonKowalski/battleground/pkg/battleground/engine"
	"github.com/BrandonKowalski/battleground/pkg/battleground/input"
	"github.com/BrandonKowalski/battleground/pkg/battleground/locale"
	"github.com/BrandonKowalski/battleground/pkg/battleground/media"
	"github.com/BrandonKowalski/battleground/pkg/battleground/media/video"
	"github.com/BrandonKowalski/battleground/pkg/battleground/theme"
	"github.com/BrandonKowalski/battleground/pkg/battleground/tunables"
	"github.com/veandco/go-sdl2/sdl"
)

// HostOptions configures a Host.
type HostOptions struct {
	Title        string
	Window       WindowOptions
	Registry     *theme.Registry
	InitialTheme string
	AssetsDir    string
	TunablesPath string
	Language     string
	EvdevPath    string
	HideSelector bool
	Logger       *slog.Logger
}

// Host owns the SDL window and drives an engine.Engine from the event loop.
type Host struct {
	logger   *slog.Logger
	window   *Window
	renderer *Renderer
	selector *Selector
	uiFont   media.Handle
	catalog  *media.Catalog
	engine   *engine.Engine
	live     *tunables.Live
	device   *input.Device
	commands <-chan input.Command
	showUI   bool
}

// Requests lists every asset the registry refers to.
func Requests(reg *theme.Registry) []media.Request {
	var reqs []media.Request
	for _, key := range reg.Keys() {
		def, _ := reg.Get(key)
		reqs = append(reqs,
			media.Request{Ref: def.BackgroundVideoRef, Kind: media.KindVideo},
			media.Request{Ref: def.TitleFontRef, Kind: media.KindFont},
		)
	}
	return reqs
}

// NewHost opens the window, preloads assets and builds the engine. Assets
// that fail to load are logged and leave their slot empty.
func NewHost(ctx context.Context, opts HostOptions) (*Host, error) {
	if opts.Registry == nil {
		return nil, errors.New("host: registry is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = GetLogger()
	}

	loc, err := locale.New(opts.Language)
	if err != nil {
		return nil, err
	}

	window, err := newWindow(opts.Title, opts.Window)
	if err != nil {
		return nil, err
	}

	h := &Host{
		logger:   logger,
		window:   window,
		renderer: NewRenderer(window.Renderer),
		showUI:   !opts.HideSelector,
	}

	loader := media.MultiLoader{
		media.KindVideo: video.Loader{Root: opts.AssetsDir, Logger: logger},
		media.KindFont:  &FontLoader{Root: opts.AssetsDir, Size: TitleFontSize},
	}
	h.catalog, err = media.Preload(ctx, loader, Requests(opts.Registry), logger)
	if h.catalog == nil {
		h.Close()
		return nil, err
	}
	if err != nil {
		logger.Warn("Some assets are unavailable", "loaded", h.catalog.Len(), "error", err)
	}

	var source tunables.Source
	if opts.TunablesPath != "" {
		h.live, err = tunables.NewLive(opts.TunablesPath, logger)
		if err != nil {
			h.Close()
			return nil, err
		}
		if err := h.live.Watch(); err != nil {
			logger.Warn("Tunables will not hot reload", "path", opts.TunablesPath, "error", err)
		}
		source = h.live
	}

	f := &factories{renderer: window.Renderer, catalog: h.catalog}
	h.engine, err = engine.New(engine.Options{
		Registry:     opts.Registry,
		InitialTheme: opts.InitialTheme,
		Size:         window.Size(),
		Tunables:     source,
		Captioner:    loc,
		Video:        f.video,
		Text:         f.text,
		Logger:       logger,
	})
	if h.engine == nil {
		h.Close()
		return nil, err
	}
	if err != nil {
		logger.Warn("Initial scene resources unavailable", "error", err)
	}

	h.selector = h.newSelector(ctx, opts, loc.Prompt())

	if opts.EvdevPath != "" {
		h.device, err = input.OpenDevice(opts.EvdevPath, logger)
		if err != nil {
			logger.Warn("Input device unavailable", "path", opts.EvdevPath, "error", err)
		} else {
			h.commands = h.device.Commands()
		}
	}

	return h, nil
}

func (h *Host) newSelector(ctx context.Context, opts HostOptions, prompt string) *Selector {
	reg := opts.Registry
	labels := make([]string, 0, reg.Len())
	for _, key := range reg.Keys() {
		def, _ := reg.Get(key)
		labels = append(labels, def.Title)
	}

	first, _ := reg.Get(reg.Keys()[0])
	fonts := &FontLoader{Root: opts.AssetsDir, Size: SelectorFontSize}
	handle, err := fonts.Load(ctx, first.TitleFontRef, media.KindFont)
	if err != nil {
		h.logger.Warn("Selector font unavailable; buttons are unlabeled", "error", err)
		return NewSelector(nil, prompt, labels)
	}

	h.uiFont = handle
	return NewSelector(handle.(*Font).Font, prompt, labels)
}

// Engine returns the engine driven by the host.
func (h *Host) Engine() *engine.Engine {
	return h.engine
}

// Run processes events and draws frames until the window is closed, Escape
// is pressed or ctx is done.
func (h *Host) Run(ctx context.Context) error {
	h.window.Tick()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if quit := h.handleEvents(); quit {
			return nil
		}
		h.drainDevice()

		frame, err := h.engine.Frame(h.window.Tick())
		if errors.Is(err, engine.ErrClosed) {
			return err
		}
		if err != nil {
			h.logger.Warn("Scene resources unavailable", "theme", frame.Scene.ThemeKey, "error", err)
		}

		size := h.window.Size()
		h.renderer.Draw(frame, size)
		if h.showUI {
			reg := h.engine.Store().Registry()
			h.selector.Draw(h.window.Renderer, size, reg.Index(h.engine.Store().Active()))
		}
		h.window.Present()
	}
}

func (h *Host) handleEvents() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				h.engine.Resize(h.window.Size())
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
				return true
			}
			h.apply(keyCommand(e))

		case *sdl.MouseButtonEvent:
			if !h.showUI || e.Type != sdl.MOUSEBUTTONDOWN || e.Button != sdl.BUTTON_LEFT {
				continue
			}
			if i := h.selector.ButtonAt(e.X, e.Y); i >= 0 {
				h.apply(input.Command{Kind: input.CommandSelectIndex, Index: i})
			}
		}
	}
	return false
}

func (h *Host) drainDevice() {
	for {
		select {
		case cmd, ok := <-h.commands:
			if !ok {
				h.commands = nil
				return
			}
			h.apply(cmd)
		default:
			return
		}
	}
}

func (h *Host) apply(cmd input.Command) {
	if cmd.Kind == input.CommandNone {
		return
	}
	if err := input.Apply(h.engine.Store(), cmd); err != nil {
		h.logger.Debug("Selection rejected", "error", err)
	}
}

// Close stops input, transitions and decoders and releases every SDL
// resource. It is safe to call on a partially built host.
func (h *Host) Close() error {
	var errs []error
	if h.device != nil {
		errs = append(errs, h.device.Close())
	}
	if h.live != nil {
		errs = append(errs, h.live.Close())
	}
	if h.engine != nil {
		errs = append(errs, h.engine.Close())
	}
	if h.selector != nil {
		h.selector.Destroy()
	}
	if h.uiFont != nil {
		errs = append(errs, h.uiFont.Close())
	}
	if h.catalog != nil {
		errs = append(errs, h.catalog.Close())
	}
	h.renderer.Destroy()
	h.window.close()
	return errors.Join(errs...)
}
