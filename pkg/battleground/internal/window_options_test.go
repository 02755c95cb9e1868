package internal

import (
	"testing"

	"github.com/BrandonKowalski/battleground/pkg/battleground/constants"
	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestWindowOptionsDefaults(t *testing.T) {
	wo := WindowOptions{}.withDefaults()
	assert.Equal(t, int32(constants.DefaultWindowWidth), wo.Width)
	assert.Equal(t, int32(constants.DefaultWindowHeight), wo.Height)
	assert.Equal(t, uint32(sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE), wo.ToSDLFlags())

	set := WindowOptions{Width: 800, Height: 600, Borderless: true}
	assert.Equal(t, set, set.withDefaults())
	assert.Equal(t, uint32(sdl.WINDOW_SHOWN|sdl.WINDOW_BORDERLESS), set.ToSDLFlags())
}
