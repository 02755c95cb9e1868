package internal

import (
	"image/color"

	"cogentcore.org/core/math32"
	"github.com/BrandonKowalski/battleground/pkg/battleground/scene"
)

// planeCorners returns the world corners of a w x h plane placed by t, in
// top-left, top-right, bottom-right, bottom-left order. Every plane in the
// scene is tilted about X only, so Y and Z rotation are ignored.
func planeCorners(t scene.Transform, w, h float32) [4]math32.Vector3 {
	hw, hh := w*t.Scale.X/2, h*t.Scale.Y/2
	local := [4]math32.Vector3{
		math32.Vec3(-hw, hh, 0),
		math32.Vec3(hw, hh, 0),
		math32.Vec3(hw, -hh, 0),
		math32.Vec3(-hw, -hh, 0),
	}

	sin, cos := math32.Sincos(t.Rotation.X)
	var out [4]math32.Vector3
	for i, p := range local {
		rotated := math32.Vec3(p.X, p.Y*cos-p.Z*sin, p.Y*sin+p.Z*cos)
		out[i] = rotated.Add(t.Position)
	}
	return out
}

// boxEdges returns the 12 edges of an axis aligned box of the given size
// centered on the origin.
func boxEdges(size math32.Vector3) [12][2]math32.Vector3 {
	h := size.MulScalar(0.5)
	c := func(sx, sy, sz float32) math32.Vector3 {
		return math32.Vec3(sx*h.X, sy*h.Y, sz*h.Z)
	}
	return [12][2]math32.Vector3{
		{c(-1, -1, -1), c(1, -1, -1)},
		{c(1, -1, -1), c(1, 1, -1)},
		{c(1, 1, -1), c(-1, 1, -1)},
		{c(-1, 1, -1), c(-1, -1, -1)},
		{c(-1, -1, 1), c(1, -1, 1)},
		{c(1, -1, 1), c(1, 1, 1)},
		{c(1, 1, 1), c(-1, 1, 1)},
		{c(-1, 1, 1), c(-1, -1, 1)},
		{c(-1, -1, -1), c(-1, -1, 1)},
		{c(1, -1, -1), c(1, -1, 1)},
		{c(1, 1, -1), c(1, 1, 1)},
		{c(-1, 1, -1), c(-1, 1, 1)},
	}
}

// fogFactor is the linear fog amount at distance from the eye: 0 before
// Near, 1 past Far.
func fogFactor(fog scene.Fog, distance float32) float32 {
	if fog.Far <= fog.Near {
		return 0
	}
	return math32.Clamp((distance-fog.Near)/(fog.Far-fog.Near), 0, 1)
}

func lerpColor(a, b color.RGBA, t float32) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t + 0.5)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}

// blurRadius is the depth of field spread, in pixels, of something dz
// world units away from the focus target.
func blurRadius(dof *scene.DepthOfField, dz, pixelsPerUnit float32) float32 {
	if dof == nil || dof.FocusRange <= 0 {
		return 0
	}
	return math32.Abs(dz) * dof.BokehScale * dof.FocalLength * dof.FocusDistance / dof.FocusRange * pixelsPerUnit
}

func opacityAlpha(opacity float32) uint8 {
	return uint8(math32.Clamp(opacity, 0, 1)*255 + 0.5)
}
