package scene

import (
	"image/color"
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"github.com/BrandonKowalski/battleground/pkg/battleground/theme"
	"github.com/BrandonKowalski/battleground/pkg/battleground/viewport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultRegistry(t *testing.T) *theme.Registry {
	t.Helper()
	reg, err := theme.Default()
	require.NoError(t, err)
	return reg
}

func assertVec(t *testing.T, want, got math32.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-5)
	assert.InDelta(t, want.Y, got.Y, 1e-5)
	assert.InDelta(t, want.Z, got.Z, 1e-5)
}

func TestComposeNoPaletteBleed(t *testing.T) {
	reg := defaultRegistry(t)
	scale := viewport.Compute(viewport.Size{Width: 1920, Height: 1080})

	for _, key := range reg.Keys() {
		t.Run(key, func(t *testing.T) {
			def, err := reg.Get(key)
			require.NoError(t, err)

			d, err := Compose(reg, nil, key, scale, DefaultConfig())
			require.NoError(t, err)

			assert.Equal(t, def.SkyColor, d.Background)
			assert.Equal(t, def.SkyColor, d.Fog.Color)
			assert.Equal(t, def.SkyColor, d.Hemisphere.SkyColor)
			assert.Equal(t, def.GroundColor, d.Hemisphere.GroundColor)
			assert.Equal(t, def.GroundColor, d.Ground.Color)
			assert.Equal(t, def.SunColor, d.Sun.Color)
			assert.Equal(t, def.SunColor, d.Text.Subtitle.Color)
			assert.Equal(t, def.TextColor, d.Text.Title.Color)
			assert.Equal(t, def.Title, d.Text.Title.Content)
			assert.Equal(t, def.Subtitle, d.Text.Subtitle.Content)
			assert.Equal(t, def.BackgroundVideoRef, d.Video.Ref)
			assert.Equal(t, def.DepthOfFieldEnabled, d.Effects.DepthOfField != nil)
			assert.Equal(t, key, d.VideoIdentity)
		})
	}
}

func TestComposeReferenceLayout(t *testing.T) {
	reg := defaultRegistry(t)
	scale := viewport.Compute(viewport.Size{Width: 1920, Height: 1080})

	d, err := Compose(reg, nil, theme.Underwater, scale, DefaultConfig())
	require.NoError(t, err)

	assertVec(t, math32.Vec3(12, 8, 20), d.Boundary.Size)
	assert.False(t, d.Boundary.Visible)
	assert.InDelta(t, -4, d.Ground.Position.Y, 1e-6)
	assertVec(t, math32.Vec3(0, 2, -10), d.Sun.Position)
	assert.InDelta(t, math32.DegToRad(70), d.Sun.Rotation.X, 1e-6)
	assert.Equal(t, float32(12), d.Sun.Radius)
	assert.Equal(t, 64, d.Sun.Segments)
	assertVec(t, math32.Vec3(5, 5, 5), d.Video.Scale)
	assertVec(t, math32.Vec3(0, 0, -1), d.Video.Position)
	assert.InDelta(t, 0.008, d.Text.Title.Scale.X, 1e-6)
	assert.InDelta(t, 0.004, d.Text.Subtitle.Scale.X, 1e-6)
	assert.InDelta(t, 0.5, d.Text.Title.Position.Y, 1e-6)
	assert.InDelta(t, -0.5, d.Text.Subtitle.Position.Y, 1e-6)
	assert.Equal(t, float32(1.35), d.Hemisphere.Intensity)
	assert.Equal(t, 2048, d.KeyLight.ShadowMapSize)
	assert.Equal(t, float32(50), d.Camera.FOV)
	assert.False(t, d.Camera.EnablePan)
	assert.False(t, d.Camera.EnableZoom)
	assert.True(t, d.Effects.LightShafts)

	require.NotNil(t, d.Effects.DepthOfField)
	assert.Equal(t, float32(3.5), d.Effects.DepthOfField.FocusRange)
	assert.Equal(t, float32(5.5), d.Effects.DepthOfField.BokehScale)

	assert.Equal(t, "underwater1", d.TextIdentity)
}

func TestComposeCompactLayout(t *testing.T) {
	reg := defaultRegistry(t)
	scale := viewport.Compute(viewport.Size{Width: 480, Height: 1080})

	cfg := DefaultConfig()
	cfg.Debug = true

	d, err := Compose(reg, nil, theme.Space, scale, cfg)
	require.NoError(t, err)

	assert.True(t, d.Boundary.Visible)
	assertVec(t, math32.Vec3(6, 8, 20), d.Boundary.Size)
	assertVec(t, math32.Vec3(10, 10, 5), d.Video.Scale)
	assert.InDelta(t, 0.002, d.Text.Title.Scale.X, 1e-6)
	assert.InDelta(t, 0.001, d.Text.Subtitle.Scale.X, 1e-6)
	assert.Nil(t, d.Effects.DepthOfField)
	assert.Equal(t, "space0.5", d.TextIdentity)
	assert.Equal(t, "space", d.VideoIdentity)
}

func TestComposerUnknownThemeKeepsLastDescriptor(t *testing.T) {
	reg := defaultRegistry(t)
	c := NewComposer(reg)
	scale := viewport.Compute(viewport.Size{Width: 1920, Height: 1080})

	_, ok := c.Current()
	assert.False(t, ok)

	first, err := c.Compose(theme.Underwater, scale, DefaultConfig())
	require.NoError(t, err)

	_, err = c.Compose("nonexistent", scale, DefaultConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, theme.ErrUnknownTheme)

	current, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, first, current)
}

func TestComposerCaptioner(t *testing.T) {
	reg := defaultRegistry(t)
	c := NewComposer(reg, WithCaptioner(CaptionerFunc(func(def theme.Definition) (string, string) {
		return def.Title, "localized " + def.Key
	})))

	d, err := c.Compose(theme.Space, viewport.Compute(viewport.Size{Width: 1920, Height: 1080}), DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "BGMI", d.Text.Title.Content)
	assert.Equal(t, "localized space", d.Text.Subtitle.Content)
}

func TestSpotlightAt(t *testing.T) {
	base := SpotLight{Position: math32.Vec3(0, 5, 5), Color: color.RGBA{0xff, 0xff, 0xff, 0xff}}

	tests := []struct {
		name    string
		elapsed time.Duration
		x       float32
	}{
		{"start", 0, 0},
		{"quarter", 2500 * time.Millisecond, 5},
		{"half", 5 * time.Second, 0},
		{"three quarters", 7500 * time.Millisecond, -5},
		{"wraps", 12500 * time.Millisecond, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SpotlightAt(base, tt.elapsed)
			assert.InDelta(t, tt.x, s.Position.X, 1e-4)
			assert.Equal(t, float32(5), s.Position.Y)
			assert.Equal(t, float32(5), s.Position.Z)
			assert.InDelta(t, tt.x/2, s.Target.X, 1e-4)
		})
	}
}

func TestFloatAt(t *testing.T) {
	group := TextGroup{FloatOffsetY: 0.1, FloatIntensity: 2, RotationIntensity: 2}

	p := FloatAt(group, 0)
	assert.InDelta(t, 0.1, p.OffsetY, 1e-6)
	assert.InDelta(t, 0.25, p.Rotation.X, 1e-6)
	assert.InDelta(t, 0, p.Rotation.Y, 1e-6)

	p = FloatAt(group, time.Duration(float64(time.Second)*4*float64(math32.Pi)/2))
	assert.InDelta(t, 0.3, p.OffsetY, 1e-4)
	assert.InDelta(t, 0.25, p.Rotation.Y, 1e-4)
	assert.InDelta(t, 0.1, p.Rotation.Z, 1e-4)
}

func TestCameraProjectsTargetToCentre(t *testing.T) {
	cam := Camera{Position: math32.Vec3(0, 1, 5), Target: math32.Vec3(0, 0, 0), FOV: 50}
	size := viewport.Size{Width: 1920, Height: 1080}
	proj := cam.Project(size)

	x, y, ppu, ok := proj.Point(math32.Vec3(0, 0, 0))
	require.True(t, ok)
	assert.InDelta(t, 960, x, 1e-3)
	assert.InDelta(t, 540, y, 1e-3)
	assert.Greater(t, ppu, float32(0))

	x, _, _, ok = proj.Point(math32.Vec3(1, 0, 0))
	require.True(t, ok)
	assert.Greater(t, x, float32(960))

	_, _, _, ok = proj.Point(math32.Vec3(0, 1, 10))
	assert.False(t, ok)
}
