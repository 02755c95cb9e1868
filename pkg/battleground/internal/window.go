package internal

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BrandonKowalski/battleground/pkg/battleground/constants"
	"github.com/BrandonKowalski/battleground/pkg/battleground/viewport"
	"github.com/veandco/go-sdl2/sdl"
)

// Window wraps the SDL window and renderer with frame pacing state.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Title           string
	hasVSync        bool
	lastPresentTime uint64
	lastTick        uint64
}

func newWindow(title string, winOpts WindowOptions) (*Window, error) {
	winOpts = winOpts.withDefaults()
	width, height := winOpts.Width, winOpts.Height
	if width <= 0 {
		width = constants.DefaultWindowWidth
	}
	if height <= 0 {
		height = constants.DefaultWindowHeight
	}

	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)

	if constants.IsDevMode() {
		winOpts.Borderless = false
		winOpts.FullscreenDesktop = false

		x, y = int32(50), int32(50)
		width = envDimension(constants.WindowWidthEnvVar, width)
		height = envDimension(constants.WindowHeightEnvVar, height)
	}

	GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, NewInfrastructureError("create window", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		window.Destroy()
		return nil, NewInfrastructureError("create renderer", err)
	}

	if err := renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		GetInternalLogger().Warn("Blend mode unavailable", "error", err)
	}

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	now := sdl.GetTicks64()
	return &Window{
		Window:          window,
		Renderer:        renderer,
		Title:           title,
		hasVSync:        vsync,
		lastPresentTime: now,
		lastTick:        now,
	}, nil
}

func envDimension(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		GetInternalLogger().Warn(fmt.Sprintf("Invalid %s; using default", name), "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func (w *Window) close() {
	w.Renderer.Destroy()
	w.Window.Destroy()
}

// Size returns the drawable size in pixels.
func (w *Window) Size() viewport.Size {
	width, height, err := w.Renderer.GetOutputSize()
	if err != nil {
		width, height = w.Window.GetSize()
	}
	return viewport.Size{Width: int(width), Height: int(height)}
}

// Tick returns the time since the previous call.
func (w *Window) Tick() time.Duration {
	now := sdl.GetTicks64()
	delta := now - w.lastTick
	w.lastTick = now
	return time.Duration(delta) * time.Millisecond
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available.
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		budget := uint64(constants.DefaultFrameBudget / time.Millisecond)
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < budget {
			sdl.Delay(uint32(budget - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}
