package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func TestLayoutSelectorRow(t *testing.T) {
	m := SelectorMetrics{
		PromptWidth:  200,
		PromptHeight: 20,
		LabelWidths:  []int32{100, 40},
		LabelHeight:  24,
	}

	l := LayoutSelector(1920, 1080, m)
	require.Len(t, l.Buttons, 2)
	assert.False(t, l.Stacked)

	// 100+32 = 132 is below the minimum width.
	assert.Equal(t, sdl.Rect{X: 792, Y: 984, W: 160, H: 56}, l.Buttons[0])
	assert.Equal(t, sdl.Rect{X: 968, Y: 984, W: 160, H: 56}, l.Buttons[1])
	assert.Equal(t, sdl.Rect{X: 860, Y: 940, W: 200, H: 20}, l.Prompt)
}

func TestLayoutSelectorStacksWhenNarrow(t *testing.T) {
	m := SelectorMetrics{LabelWidths: []int32{200, 200}, LabelHeight: 24}

	l := LayoutSelector(400, 800, m)
	require.Len(t, l.Buttons, 2)
	assert.True(t, l.Stacked)
	assert.Equal(t, l.Buttons[0].X, l.Buttons[1].X)
	assert.Equal(t, l.Buttons[0].Y+56+buttonGap, l.Buttons[1].Y)
	assert.Equal(t, int32(800-40), l.Buttons[1].Y+l.Buttons[1].H)
}

func TestHitTest(t *testing.T) {
	l := LayoutSelector(1920, 1080, SelectorMetrics{LabelWidths: []int32{100, 40}, LabelHeight: 24})

	tests := []struct {
		name string
		x, y int32
		want int
	}{
		{"first", 800, 1000, 0},
		{"second", 1000, 1000, 1},
		{"gap", 960, 1000, -1},
		{"above", 800, 900, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.HitTest(tt.x, tt.y))
		})
	}
}

func TestLabelCentersInButton(t *testing.T) {
	got := Label(sdl.Rect{X: 10, Y: 20, W: 160, H: 56}, 60, 24)
	assert.Equal(t, sdl.Rect{X: 60, Y: 36, W: 60, H: 24}, got)
}
