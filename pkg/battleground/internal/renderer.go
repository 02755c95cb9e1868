package internal

import (
	"fmt"
	"image"
	"image/color"
	"unsafe"

	"cogentcore.org/core/math32"
	"github.com/BrandonKowalski/battleground/pkg/battleground/engine"
	"github.com/BrandonKowalski/battleground/pkg/battleground/postfx"
	"github.com/BrandonKowalski/battleground/pkg/battleground/scene"
	"github.com/BrandonKowalski/battleground/pkg/battleground/sprite"
	"github.com/BrandonKowalski/battleground/pkg/battleground/transition"
	"github.com/BrandonKowalski/battleground/pkg/battleground/viewport"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	spriteResolution = 256
	groundBands      = 16
	shaftLayers      = 4
	spotAlpha        = 24
)

var boundaryColor = color.RGBA{0xff, 0xa5, 0x00, 0x80}

// Renderer draws engine frames with the SDL 2D renderer. Depth is faked
// with the scene camera projection and painter's order.
type Renderer struct {
	renderer *sdl.Renderer
	sprites  *TextureCache
}

func NewRenderer(renderer *sdl.Renderer) *Renderer {
	return &Renderer{
		renderer: renderer,
		sprites:  NewTextureCache(),
	}
}

func (r *Renderer) Draw(f engine.Frame, size viewport.Size) {
	d := f.Scene
	bg := d.Background
	r.renderer.SetDrawColor(bg.R, bg.G, bg.B, 255)
	r.renderer.Clear()

	proj := d.Camera.Project(size)

	r.drawGround(proj, d, size)
	r.drawSun(proj, d, f.Stages)

	var dof *scene.DepthOfField
	for _, st := range f.Stages {
		if st.Kind == postfx.KindDepthOfField {
			dof = st.DepthOfField
		}
	}
	for _, inst := range f.Video {
		r.drawVideo(proj, inst, dof)
	}

	if d.Boundary.Visible {
		r.drawBoundary(proj, d.Boundary.Size)
	}

	r.drawSpot(proj, f.SpotLight)

	for _, inst := range f.Text {
		r.drawText(proj, inst, f.Float)
	}
}

// drawGround paints the ground plane as horizontal bands that fade into the
// fog color with distance.
func (r *Renderer) drawGround(proj scene.Projection, d scene.Descriptor, size viewport.Size) {
	eye := d.Camera.Position
	groundY := d.Ground.Position.Y
	far := d.Fog.Far
	if far <= 0 {
		far = d.Ground.Depth / 2
	}

	step := far / groundBands
	prevY := float32(-1)
	for i := 0; i <= groundBands; i++ {
		dist := far - float32(i)*step
		if dist < step {
			dist = step
		}
		_, y, _, ok := proj.Point(math32.Vec3(0, groundY, eye.Z-dist))
		if !ok {
			continue
		}
		if prevY < 0 {
			prevY = y
			continue
		}

		bottom := y
		if i == groundBands {
			bottom = float32(size.Height)
		}
		c := lerpColor(d.Ground.Color, d.Fog.Color, fogFactor(d.Fog, dist+step/2))
		r.renderer.SetDrawColor(c.R, c.G, c.B, 255)
		r.renderer.FillRectF(&sdl.FRect{X: 0, Y: prevY, W: float32(size.Width), H: bottom - prevY})
		prevY = y
	}
}

func (r *Renderer) drawSun(proj scene.Projection, d scene.Descriptor, stages []postfx.Stage) {
	sun := d.Sun
	x, y, ppu, ok := proj.Point(sun.Position)
	if !ok {
		return
	}

	texture, err := r.disc(sun.Color, sun.Segments)
	if err != nil {
		GetInternalLogger().Warn("Sun sprite unavailable", "error", err)
		return
	}

	w := 2 * sun.Radius * ppu
	h := w * math32.Abs(math32.Cos(sun.Rotation.X))
	dist := sun.Position.Sub(d.Camera.Position).Length()
	alpha := 1 - fogFactor(d.Fog, dist)

	for _, st := range stages {
		if st.Kind != postfx.KindLightShafts || st.LightShafts == nil {
			continue
		}
		weight := st.LightShafts.Exposure * alpha
		for i := 1; i <= shaftLayers; i++ {
			weight *= st.LightShafts.Decay
			grow := 1 + 0.15*float32(i)
			texture.SetBlendMode(sdl.BLENDMODE_ADD)
			texture.SetAlphaMod(opacityAlpha(weight))
			r.renderer.CopyF(texture, nil, centered(x, y, w*grow, h*grow))
		}
	}

	// Bloom is configured with a luminance threshold above 1, which nothing
	// in an 8-bit target reaches, so it adds no pass here.

	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	texture.SetAlphaMod(opacityAlpha(alpha))
	r.renderer.CopyF(texture, nil, centered(x, y, w, h))
}

func (r *Renderer) drawVideo(proj scene.Projection, inst *transition.Instance, dof *scene.DepthOfField) {
	res, ok := inst.Resource().(*videoResource)
	if !ok || res == nil {
		return
	}
	texture := res.Texture()
	if texture == nil {
		return
	}

	plane := inst.Scene().Video
	corners := planeCorners(plane.Transform, plane.Width, plane.Height)

	var pts [4]sdl.FPoint
	var ppu float32
	for i, c := range corners {
		x, y, p, ok := proj.Point(c)
		if !ok {
			return
		}
		pts[i] = sdl.FPoint{X: x, Y: y}
		ppu = p
	}

	alpha := opacityAlpha(inst.Pose().Opacity)
	r.quad(texture, pts, alpha, 0, 0)

	var focus float32
	if dof != nil {
		focus = dof.Target.Z
	}
	radius := blurRadius(dof, plane.Position.Z-focus, ppu)
	if radius < 1 {
		return
	}
	spread := alpha / 4
	r.quad(texture, pts, spread, -radius, 0)
	r.quad(texture, pts, spread, radius, 0)
	r.quad(texture, pts, spread, 0, -radius)
	r.quad(texture, pts, spread, 0, radius)
}

func (r *Renderer) quad(texture *sdl.Texture, pts [4]sdl.FPoint, alpha uint8, dx, dy float32) {
	uv := [4]sdl.FPoint{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	vertices := make([]sdl.Vertex, 4)
	for i := range vertices {
		vertices[i] = sdl.Vertex{
			Position: sdl.FPoint{X: pts[i].X + dx, Y: pts[i].Y + dy},
			Color:    sdl.Color{R: 255, G: 255, B: 255, A: alpha},
			TexCoord: uv[i],
		}
	}
	if err := r.renderer.RenderGeometry(texture, vertices, []int32{0, 1, 2, 0, 2, 3}); err != nil {
		GetInternalLogger().Debug("Quad render failed", "error", err)
	}
}

func (r *Renderer) drawBoundary(proj scene.Projection, size math32.Vector3) {
	c := boundaryColor
	r.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	for _, edge := range boxEdges(size) {
		x1, y1, _, ok1 := proj.Point(edge[0])
		x2, y2, _, ok2 := proj.Point(edge[1])
		if ok1 && ok2 {
			r.renderer.DrawLineF(x1, y1, x2, y2)
		}
	}
}

// drawSpot lays an additive pool of light where the spot light points.
func (r *Renderer) drawSpot(proj scene.Projection, spot scene.SpotLight) {
	x, y, ppu, ok := proj.Point(spot.Target)
	if !ok {
		return
	}
	texture, err := r.disc(spot.Color, 64)
	if err != nil {
		return
	}

	radius := spot.Distance * math32.Tan(spot.Angle) / spot.Attenuation * spot.Intensity
	w := 2 * radius * ppu
	texture.SetBlendMode(sdl.BLENDMODE_ADD)
	texture.SetAlphaMod(spotAlpha)
	r.renderer.CopyF(texture, nil, centered(x, y, w, w/3))
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
}

func (r *Renderer) drawText(proj scene.Projection, inst *transition.Instance, bob scene.FloatPose) {
	res, ok := inst.Resource().(*textResource)
	if !ok || res == nil {
		return
	}

	d := inst.Scene()
	pose := inst.Pose()
	alpha := opacityAlpha(pose.Opacity)
	shift := pose.OffsetY * d.Scale.ScaleY
	angle := float64(math32.RadToDeg(bob.Rotation.Z))

	line := func(texture *sdl.Texture, tw, th int32, t scene.Text) {
		if texture == nil || th == 0 {
			return
		}
		pos := t.Position.Add(math32.Vec3(0, bob.OffsetY, 0))
		x, y, ppu, ok := proj.Point(pos)
		if !ok {
			return
		}
		h := t.Size * t.Scale.Y * ppu
		w := h * float32(tw) / float32(th)
		c := t.Color
		texture.SetColorMod(c.R, c.G, c.B)
		texture.SetAlphaMod(alpha)
		r.renderer.CopyExF(texture, nil, centered(x, y+shift, w, h), angle, nil, sdl.FLIP_NONE)
	}

	line(res.title, res.titleW, res.titleH, d.Text.Title)
	line(res.subtitle, res.subW, res.subH, d.Text.Subtitle)
}

// disc returns a cached disc sprite texture in the given color.
func (r *Renderer) disc(c color.RGBA, segments int) (*sdl.Texture, error) {
	key := fmt.Sprintf("disc/%02x%02x%02x%02x/%d", c.R, c.G, c.B, c.A, segments)
	if texture, ok := r.sprites.Get(key); ok {
		return texture, nil
	}

	img, err := sprite.Disc(c, segments, spriteResolution)
	if err != nil {
		return nil, err
	}
	texture, err := textureFromImage(r.renderer, img)
	if err != nil {
		return nil, err
	}
	r.sprites.Set(key, texture)
	return texture, nil
}

func (r *Renderer) Destroy() {
	r.sprites.Destroy()
}

func textureFromImage(renderer *sdl.Renderer, img *image.RGBA) (*sdl.Texture, error) {
	b := img.Bounds()
	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_RGBA32, sdl.TEXTUREACCESS_STATIC, int32(b.Dx()), int32(b.Dy()))
	if err != nil {
		return nil, NewInfrastructureError("create sprite texture", err)
	}
	if err := texture.Update(nil, unsafe.Pointer(&img.Pix[0]), img.Stride); err != nil {
		texture.Destroy()
		return nil, NewInfrastructureError("upload sprite", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}

func centered(x, y, w, h float32) *sdl.FRect {
	return &sdl.FRect{X: x - w/2, Y: y - h/2, W: w, H: h}
}
