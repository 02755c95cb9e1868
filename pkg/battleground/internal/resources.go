package internal

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/BrandonKowalski/battleground/pkg/battleground/media"
	"github.com/BrandonKowalski/battleground/pkg/battleground/media/video"
	"github.com/BrandonKowalski/battleground/pkg/battleground/scene"
	"github.com/BrandonKowalski/battleground/pkg/battleground/transition"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// videoResource is a playing clip and the streaming texture it is copied
// into.
type videoResource struct {
	player  *video.Player
	texture *sdl.Texture
	seq     uint64
}

// Texture uploads the newest decoded frame and returns the texture. It
// returns nil until the first frame is decoded.
func (v *videoResource) Texture() *sdl.Texture {
	img, seq := v.player.Frame()
	if img == nil {
		return nil
	}
	if seq != v.seq && len(img.Pix) > 0 {
		if err := v.texture.Update(nil, unsafe.Pointer(&img.Pix[0]), img.Stride); err != nil {
			GetInternalLogger().Warn("Video texture upload failed", "error", err)
		}
		v.seq = seq
	}
	return v.texture
}

func (v *videoResource) Close() error {
	err := v.player.Close()
	v.texture.Destroy()
	return err
}

// textResource holds the rasterized title and subtitle lines. Both are
// rendered white and tinted when drawn.
type textResource struct {
	title    *sdl.Texture
	subtitle *sdl.Texture
	titleW   int32
	titleH   int32
	subW     int32
	subH     int32
}

func (t *textResource) Close() error {
	if t.title != nil {
		t.title.Destroy()
	}
	if t.subtitle != nil {
		t.subtitle.Destroy()
	}
	return nil
}

// factories acquires instance resources from the preloaded catalog.
type factories struct {
	renderer *sdl.Renderer
	catalog  *media.Catalog
}

func (f *factories) video(d scene.Descriptor) (transition.Resource, error) {
	h, err := f.catalog.Handle(d.Video.Ref, media.KindVideo)
	if err != nil {
		return nil, err
	}
	clip, ok := h.(*video.Clip)
	if !ok {
		return nil, media.NewResourceLoadError(d.Video.Ref, media.KindVideo, fmt.Errorf("unexpected handle %T", h))
	}

	player, err := clip.Play()
	if err != nil {
		return nil, err
	}

	w, hgt := clip.Size()
	texture, err := f.renderer.CreateTexture(sdl.PIXELFORMAT_RGBA32, sdl.TEXTUREACCESS_STREAMING, int32(w), int32(hgt))
	if err != nil {
		return nil, errors.Join(NewInfrastructureError("create video texture", err), player.Close())
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	return &videoResource{player: player, texture: texture}, nil
}

func (f *factories) text(d scene.Descriptor) (transition.Resource, error) {
	h, err := f.catalog.Handle(d.Text.Title.FontRef, media.KindFont)
	if err != nil {
		return nil, err
	}
	font, ok := h.(*Font)
	if !ok {
		return nil, media.NewResourceLoadError(d.Text.Title.FontRef, media.KindFont, fmt.Errorf("unexpected handle %T", h))
	}

	res := &textResource{}
	if res.title, res.titleW, res.titleH, err = f.line(font.Font, d.Text.Title.Content); err != nil {
		return nil, err
	}
	if res.subtitle, res.subW, res.subH, err = f.line(font.Font, d.Text.Subtitle.Content); err != nil {
		res.Close()
		return nil, err
	}
	return res, nil
}

func (f *factories) line(font *ttf.Font, text string) (*sdl.Texture, int32, int32, error) {
	if text == "" {
		return nil, 0, 0, nil
	}

	surface, err := font.RenderUTF8Blended(text, sdl.Color{R: 255, G: 255, B: 255, A: 255})
	if err != nil {
		return nil, 0, 0, NewInfrastructureError("render text", err)
	}
	defer surface.Free()

	texture, err := f.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, 0, 0, NewInfrastructureError("create text texture", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, surface.W, surface.H, nil
}
