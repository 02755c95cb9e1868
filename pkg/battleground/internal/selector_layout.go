package internal

import "github.com/veandco/go-sdl2/sdl"

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// Selector spacing, in pixels.
var (
	selectorPadding = UniformPadding(40)
	buttonPadding   = UniformPadding(16)
)

const (
	buttonGap      int32 = 16
	buttonMinWidth int32 = 160
	promptGap      int32 = 24
)

// SelectorMetrics are the measured text sizes the layout is built from.
type SelectorMetrics struct {
	PromptWidth  int32
	PromptHeight int32
	LabelWidths  []int32
	LabelHeight  int32
}

// SelectorLayout positions the prompt and the theme buttons. Buttons are in
// registry order.
type SelectorLayout struct {
	Prompt  sdl.Rect
	Buttons []sdl.Rect
	Stacked bool
}

// LayoutSelector anchors the selector to the bottom edge of a window of the
// given size. Buttons sit in one centered row, or in a centered column when
// the row does not fit.
func LayoutSelector(width, height int32, m SelectorMetrics) SelectorLayout {
	buttonHeight := m.LabelHeight + buttonPadding.Top + buttonPadding.Bottom

	widths := make([]int32, len(m.LabelWidths))
	rowWidth := int32(0)
	for i, lw := range m.LabelWidths {
		w := lw + buttonPadding.Left + buttonPadding.Right
		if w < buttonMinWidth {
			w = buttonMinWidth
		}
		widths[i] = w
		rowWidth += w
		if i > 0 {
			rowWidth += buttonGap
		}
	}

	layout := SelectorLayout{Buttons: make([]sdl.Rect, len(widths))}
	available := width - selectorPadding.Left - selectorPadding.Right
	bottom := height - selectorPadding.Bottom

	var top int32
	if rowWidth <= available || len(widths) < 2 {
		top = bottom - buttonHeight
		x := (width - rowWidth) / 2
		for i, w := range widths {
			layout.Buttons[i] = sdl.Rect{X: x, Y: top, W: w, H: buttonHeight}
			x += w + buttonGap
		}
	} else {
		layout.Stacked = true
		columnWidth := MaxRowWidth(widths...)
		if columnWidth > available {
			columnWidth = available
		}
		n := int32(len(widths))
		top = bottom - n*buttonHeight - (n-1)*buttonGap
		x := (width - columnWidth) / 2
		y := top
		for i := range widths {
			layout.Buttons[i] = sdl.Rect{X: x, Y: y, W: columnWidth, H: buttonHeight}
			y += buttonHeight + buttonGap
		}
	}

	layout.Prompt = sdl.Rect{
		X: (width - m.PromptWidth) / 2,
		Y: top - promptGap - m.PromptHeight,
		W: m.PromptWidth,
		H: m.PromptHeight,
	}
	return layout
}

// HitTest returns the index of the button containing (x, y), or -1.
func (l SelectorLayout) HitTest(x, y int32) int {
	p := sdl.Point{X: x, Y: y}
	for i := range l.Buttons {
		if p.InRect(&l.Buttons[i]) {
			return i
		}
	}
	return -1
}

// MaxRowWidth finds the maximum width among a slice of row widths.
func MaxRowWidth(widths ...int32) int32 {
	max := widths[0]
	for _, w := range widths[1:] {
		if w > max {
			max = w
		}
	}
	return max
}

// Label places a label of the given size in the middle of button.
func Label(button sdl.Rect, width, height int32) sdl.Rect {
	return sdl.Rect{
		X: button.X + (button.W-width)/2,
		Y: button.Y + (button.H-height)/2,
		W: width,
		H: height,
	}
}
