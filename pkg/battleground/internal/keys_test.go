package internal

import (
	"testing"

	"github.com/BrandonKowalski/battleground/pkg/battleground/input"
	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestKeyCommand(t *testing.T) {
	press := func(sym sdl.Keycode) *sdl.KeyboardEvent {
		return &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sym}}
	}

	assert.Equal(t, input.Command{Kind: input.CommandNext}, keyCommand(press(sdl.K_RIGHT)))
	assert.Equal(t, input.Command{Kind: input.CommandSelectIndex, Index: 1}, keyCommand(press(sdl.K_2)))
	assert.Equal(t, input.Command{Kind: input.CommandSelectIndex, Index: 0}, keyCommand(press(sdl.K_KP_1)))
	assert.Equal(t, input.Command{}, keyCommand(press(sdl.K_a)))
	assert.Equal(t, input.Command{}, keyCommand(press(sdl.K_RETURN)))

	repeat := press(sdl.K_LEFT)
	repeat.Repeat = 1
	assert.Equal(t, input.Command{}, keyCommand(repeat))

	release := press(sdl.K_LEFT)
	release.Type = sdl.KEYUP
	assert.Equal(t, input.Command{}, keyCommand(release))
}
