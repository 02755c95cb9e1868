package internal

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// InitSDL starts the video subsystem and SDL_ttf. It must run on the main
// thread before any Host is created.
func InitSDL() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return NewInfrastructureError("init sdl", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return NewInfrastructureError("init ttf", err)
	}

	// Linear filtering for scaled text and video.
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "1")

	return nil
}

func SDLCleanup() {
	ttf.Quit()
	sdl.Quit()
	CloseLogger()
}
