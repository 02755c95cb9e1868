package internal

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/battleground/pkg/battleground/viewport"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var (
	promptColor       = sdl.Color{R: 255, G: 255, B: 255, A: 255}
	selectedTextColor = sdl.Color{R: 255, G: 255, B: 255, A: 255}
	idleTextColor     = sdl.Color{R: 209, G: 213, B: 219, A: 255}
	idleFillColor     = sdl.Color{R: 31, G: 41, B: 55, A: 255}
	idleBorderColor   = sdl.Color{R: 75, G: 85, B: 99, A: 255}
	gradientFrom      = sdl.Color{R: 147, G: 51, B: 234, A: 255}
	gradientTo        = sdl.Color{R: 59, G: 130, B: 246, A: 255}
)

const borderWidth = 2

// Selector is the overlay with the prompt and one button per theme. Without
// a font the buttons are drawn unlabeled.
type Selector struct {
	font    *ttf.Font
	prompt  string
	labels  []string
	cache   *TextureCache
	layout  SelectorLayout
	laidOut viewport.Size
}

// NewSelector creates a selector with one button per label, in order.
func NewSelector(font *ttf.Font, prompt string, labels []string) *Selector {
	upper := make([]string, len(labels))
	for i, l := range labels {
		upper[i] = strings.ToUpper(l)
	}
	return &Selector{
		font:   font,
		prompt: prompt,
		labels: upper,
		cache:  NewCacheWithSize[*sdl.Texture](2*len(labels) + 1),
	}
}

func (s *Selector) measure(text string) (int32, int32) {
	if s.font == nil || text == "" {
		return 0, 0
	}
	w, h, err := s.font.SizeUTF8(text)
	if err != nil {
		return 0, 0
	}
	return int32(w), int32(h)
}

// Layout recomputes button placement when size changed.
func (s *Selector) Layout(size viewport.Size) SelectorLayout {
	if size == s.laidOut && s.layout.Buttons != nil {
		return s.layout
	}

	m := SelectorMetrics{LabelWidths: make([]int32, len(s.labels))}
	m.PromptWidth, m.PromptHeight = s.measure(s.prompt)
	for i, l := range s.labels {
		m.LabelWidths[i], m.LabelHeight = s.measure(l)
	}
	if m.LabelHeight == 0 {
		m.LabelHeight = SelectorFontSize
	}

	s.layout = LayoutSelector(int32(size.Width), int32(size.Height), m)
	s.laidOut = size
	return s.layout
}

// ButtonAt returns the index of the button under (x, y), or -1.
func (s *Selector) ButtonAt(x, y int32) int {
	return s.layout.HitTest(x, y)
}

func (s *Selector) Draw(renderer *sdl.Renderer, size viewport.Size, active int) {
	layout := s.Layout(size)

	if t, w, h := s.text(renderer, "prompt", s.prompt, promptColor); t != nil {
		r := layout.Prompt
		renderer.Copy(t, nil, &sdl.Rect{X: r.X, Y: r.Y, W: w, H: h})
	}

	for i, rect := range layout.Buttons {
		selected := i == active
		if selected {
			drawGradient(renderer, rect, gradientFrom, gradientTo)
		} else {
			fill(renderer, rect, idleBorderColor)
			inner := sdl.Rect{X: rect.X + borderWidth, Y: rect.Y + borderWidth, W: rect.W - 2*borderWidth, H: rect.H - 2*borderWidth}
			fill(renderer, inner, idleFillColor)
		}

		c := idleTextColor
		key := "label/" + strconv.Itoa(i)
		if selected {
			c = selectedTextColor
			key += "/active"
		}
		if t, w, h := s.text(renderer, key, s.labels[i], c); t != nil {
			dst := Label(rect, w, h)
			renderer.Copy(t, nil, &dst)
		}
	}
}

func (s *Selector) text(renderer *sdl.Renderer, key, text string, c sdl.Color) (*sdl.Texture, int32, int32) {
	if s.font == nil || text == "" {
		return nil, 0, 0
	}
	if t, ok := s.cache.Get(key); ok {
		_, _, w, h, err := t.Query()
		if err == nil {
			return t, w, h
		}
	}

	surface, err := s.font.RenderUTF8Blended(text, c)
	if err != nil {
		GetInternalLogger().Warn("Selector text render failed", "text", text, "error", err)
		return nil, 0, 0
	}
	defer surface.Free()

	t, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, 0, 0
	}
	s.cache.Set(key, t)
	return t, surface.W, surface.H
}

func (s *Selector) Destroy() {
	s.cache.Destroy()
}

func fill(renderer *sdl.Renderer, r sdl.Rect, c sdl.Color) {
	renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	renderer.FillRect(&r)
}

// drawGradient fills r with a left to right gradient, one column at a time.
func drawGradient(renderer *sdl.Renderer, r sdl.Rect, from, to sdl.Color) {
	for x := int32(0); x < r.W; x++ {
		t := float32(x) / float32(r.W)
		c := lerpColor(rgba(from), rgba(to), t)
		renderer.SetDrawColor(c.R, c.G, c.B, c.A)
		renderer.DrawLine(r.X+x, r.Y, r.X+x, r.Y+r.H-1)
	}
}

func rgba(c sdl.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
