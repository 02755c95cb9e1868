// Package scene derives the full set of scene parameters for one frame from
// the active theme, the viewport scale factors and the tunables.
package scene

import (
	"image/color"

	"cogentcore.org/core/math32"
	"github.com/BrandonKowalski/battleground/pkg/battleground/media"
	"github.com/BrandonKowalski/battleground/pkg/battleground/viewport"
)

// Transform places an object in world space. Rotation is Euler XYZ in
// radians.
type Transform struct {
	Position math32.Vector3
	Rotation math32.Vector3
	Scale    math32.Vector3
}

// BoundaryBox is the debug volume the scene is laid out in.
type BoundaryBox struct {
	Size    math32.Vector3
	Visible bool
}

type Ground struct {
	Transform
	Width float32
	Depth float32
	Color color.RGBA
}

type Fog struct {
	Color color.RGBA
	Near  float32
	Far   float32
}

type HemisphereLight struct {
	Intensity   float32
	SkyColor    color.RGBA
	GroundColor color.RGBA
}

// KeyLight is the shadow casting directional light.
type KeyLight struct {
	Position      math32.Vector3
	Intensity     float32
	ShadowMapSize int
	ShadowNear    float32
	ShadowFar     float32
	ShadowExtent  float32
}

// SpotLight is the sweeping light over the title group. Position and Target
// hold the base placement; SpotlightAt animates them.
type SpotLight struct {
	Color       color.RGBA
	Intensity   float32
	Distance    float32
	Angle       float32
	Attenuation float32
	AnglePower  float32
	Position    math32.Vector3
	Target      math32.Vector3
}

// SunDisc is the circle behind the scene that light shafts radiate from.
type SunDisc struct {
	Transform
	Radius   float32
	Segments int
	Color    color.RGBA
}

// VideoPlane carries the background video.
type VideoPlane struct {
	Transform
	Width  float32
	Height float32
	Ref    media.Ref
}

// Text is one line of extruded text.
type Text struct {
	Transform
	Content       string
	FontRef       media.Ref
	Size          float32
	Depth         float32
	CurveSegments int
	Bevel         float32
	Color         color.RGBA
}

// TextGroup is the floating title and subtitle.
type TextGroup struct {
	Title             Text
	Subtitle          Text
	FloatOffsetY      float32
	FloatIntensity    float32
	RotationIntensity float32
}

// Camera is an orbit camera restricted to rotation.
type Camera struct {
	Position   math32.Vector3
	Target     math32.Vector3
	FOV        float32
	MinPolar   float32
	MaxPolar   float32
	EnablePan  bool
	EnableZoom bool
}

// DepthOfField holds the parameters of the DoF pass.
type DepthOfField struct {
	Target        math32.Vector3
	FocusRange    float32
	FocusDistance float32
	FocalLength   float32
	BokehScale    float32
}

// Effects lists what the post processing pipeline is asked for.
type Effects struct {
	// DepthOfField is nil when the theme disables it.
	DepthOfField *DepthOfField
	// LightShafts requests shafts from the sun disc.
	LightShafts bool
}

// Descriptor is an immutable snapshot of everything a frame draws.
type Descriptor struct {
	ThemeKey   string
	Scale      viewport.ScaleFactors
	Background color.RGBA
	Boundary   BoundaryBox
	Ground     Ground
	Fog        Fog
	Hemisphere HemisphereLight
	KeyLight   KeyLight
	SpotLight  SpotLight
	Sun        SunDisc
	Video      VideoPlane
	Text       TextGroup
	Camera     Camera
	Effects    Effects

	// VideoIdentity changes whenever the background video must be replaced.
	VideoIdentity string
	// TextIdentity changes whenever the title group must be replaced.
	TextIdentity string
}
