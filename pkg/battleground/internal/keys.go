package internal

import (
	"github.com/BrandonKowalski/battleground/pkg/battleground/input"
	"github.com/veandco/go-sdl2/sdl"
)

var sdlKeys = map[sdl.Keycode]input.Key{
	sdl.K_LEFT:  input.KeyLeft,
	sdl.K_RIGHT: input.KeyRight,
	sdl.K_1:     input.KeyDigit1,
	sdl.K_2:     input.KeyDigit2,
	sdl.K_3:     input.KeyDigit3,
	sdl.K_4:     input.KeyDigit4,
	sdl.K_5:     input.KeyDigit5,
	sdl.K_6:     input.KeyDigit6,
	sdl.K_7:     input.KeyDigit7,
	sdl.K_8:     input.KeyDigit8,
	sdl.K_9:     input.KeyDigit9,
	sdl.K_KP_1:  input.KeyDigit1,
	sdl.K_KP_2:  input.KeyDigit2,
	sdl.K_KP_3:  input.KeyDigit3,
	sdl.K_KP_4:  input.KeyDigit4,
	sdl.K_KP_5:  input.KeyDigit5,
	sdl.K_KP_6:  input.KeyDigit6,
	sdl.K_KP_7:  input.KeyDigit7,
	sdl.K_KP_8:  input.KeyDigit8,
	sdl.K_KP_9:  input.KeyDigit9,
}

// keyCommand translates a key press. Repeats are ignored.
func keyCommand(e *sdl.KeyboardEvent) input.Command {
	if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
		return input.Command{}
	}
	return input.CommandFor(sdlKeys[e.Keysym.Sym])
}
