package scene

import (
	"cogentcore.org/core/math32"
	"github.com/BrandonKowalski/battleground/pkg/battleground/viewport"
)

// Projection maps world positions onto a viewport through a Camera.
type Projection struct {
	eye     math32.Vector3
	forward math32.Vector3
	right   math32.Vector3
	up      math32.Vector3
	focal   float32
	size    viewport.Size
}

// Project prepares a projection of cam onto a viewport of size.
func (c Camera) Project(size viewport.Size) Projection {
	forward := c.Target.Sub(c.Position).Normal()
	right := forward.Cross(math32.Vec3(0, 1, 0)).Normal()
	up := right.Cross(forward)

	halfHeight := float32(size.Height) / 2
	return Projection{
		eye:     c.Position,
		forward: forward,
		right:   right,
		up:      up,
		focal:   halfHeight / math32.Tan(math32.DegToRad(c.FOV)/2),
		size:    size,
	}
}

// Point returns the pixel position of p and the perspective scale at its
// depth, in pixels per world unit. ok is false for points behind the eye.
func (p Projection) Point(world math32.Vector3) (x, y, pixelsPerUnit float32, ok bool) {
	d := world.Sub(p.eye)
	depth := d.Dot(p.forward)
	if depth <= 0 {
		return 0, 0, 0, false
	}

	pixelsPerUnit = p.focal / depth
	x = float32(p.size.Width)/2 + d.Dot(p.right)*pixelsPerUnit
	y = float32(p.size.Height)/2 - d.Dot(p.up)*pixelsPerUnit
	return x, y, pixelsPerUnit, true
}
