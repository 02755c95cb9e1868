package internal

import (
	"github.com/BrandonKowalski/battleground/pkg/battleground/constants"
	"github.com/veandco/go-sdl2/sdl"
)

type WindowOptions struct {
	Width             int32 // Initial width in windowed mode
	Height            int32 // Initial height in windowed mode
	Borderless        bool  // Remove window decorations (SDL_WINDOW_BORDERLESS)
	Resizable         bool  // Allow window resizing (SDL_WINDOW_RESIZABLE)
	FullscreenDesktop bool  // Fullscreen at desktop resolution (SDL_WINDOW_FULLSCREEN_DESKTOP)
	Hidden            bool  // Start hidden (omits SDL_WINDOW_SHOWN)
}

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

// withDefaults returns a resizable window at the default size when no
// options were given.
func (wo WindowOptions) withDefaults() WindowOptions {
	if wo.IsZero() {
		wo.Width = constants.DefaultWindowWidth
		wo.Height = constants.DefaultWindowHeight
		wo.Resizable = true
	}
	return wo
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	var flags uint32

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}

	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}

	if wo.FullscreenDesktop {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	return flags
}
