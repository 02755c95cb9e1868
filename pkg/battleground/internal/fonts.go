package internal

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/BrandonKowalski/battleground/pkg/battleground/media"
	"github.com/veandco/go-sdl2/ttf"
)

// Point sizes fonts are opened at. Text is rasterized at these sizes and
// scaled to its projected height when drawn.
const (
	TitleFontSize    = 96
	SelectorFontSize = 22
)

// Font is a media.Handle for an opened TTF font.
type Font struct {
	ref  media.Ref
	Font *ttf.Font
}

func (f *Font) Ref() media.Ref { return f.ref }

func (f *Font) Kind() media.Kind { return media.KindFont }

func (f *Font) Close() error {
	f.Font.Close()
	return nil
}

// FontLoader opens fonts relative to Root. ttf must be initialized first.
type FontLoader struct {
	Root string
	Size int

	// FreeType faces share one library handle.
	mu sync.Mutex
}

func (l *FontLoader) Load(ctx context.Context, ref media.Ref, kind media.Kind) (media.Handle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	size := l.Size
	if size <= 0 {
		size = TitleFontSize
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	font, err := ttf.OpenFont(filepath.Join(l.Root, string(ref)), size)
	if err != nil {
		return nil, media.NewResourceLoadError(ref, kind, err)
	}
	return &Font{ref: ref, Font: font}, nil
}
