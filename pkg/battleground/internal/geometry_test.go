package internal

import (
	"image/color"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/BrandonKowalski/battleground/pkg/battleground/scene"
	"github.com/stretchr/testify/assert"
)

func assertVec(t *testing.T, want, got math32.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-4)
	assert.InDelta(t, want.Y, got.Y, 1e-4)
	assert.InDelta(t, want.Z, got.Z, 1e-4)
}

func TestPlaneCorners(t *testing.T) {
	tr := scene.Transform{
		Position: math32.Vec3(0, 0, -1),
		Scale:    math32.Vec3(5, 5, 5),
	}

	c := planeCorners(tr, 2, 1)
	assertVec(t, math32.Vec3(-5, 2.5, -1), c[0])
	assertVec(t, math32.Vec3(5, 2.5, -1), c[1])
	assertVec(t, math32.Vec3(5, -2.5, -1), c[2])
	assertVec(t, math32.Vec3(-5, -2.5, -1), c[3])

	tr.Rotation.X = math32.Pi / 2
	c = planeCorners(tr, 2, 1)
	assertVec(t, math32.Vec3(-5, 0, 1.5), c[0])
	assertVec(t, math32.Vec3(5, 0, -3.5), c[2])
}

func TestBoxEdges(t *testing.T) {
	size := math32.Vec3(2, 4, 6)
	counts := map[float32]int{}
	for _, e := range boxEdges(size) {
		counts[e[1].Sub(e[0]).Length()]++
		assert.LessOrEqual(t, math32.Abs(e[0].X), float32(1))
		assert.LessOrEqual(t, math32.Abs(e[0].Y), float32(2))
		assert.LessOrEqual(t, math32.Abs(e[0].Z), float32(3))
	}
	assert.Equal(t, map[float32]int{2: 4, 4: 4, 6: 4}, counts)
}

func TestFogFactor(t *testing.T) {
	fog := scene.Fog{Near: 12, Far: 20}

	tests := []struct {
		name string
		dist float32
		want float32
	}{
		{"before near", 10, 0},
		{"halfway", 16, 0.5},
		{"past far", 30, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, fogFactor(fog, tt.dist), 1e-6)
		})
	}

	assert.Zero(t, fogFactor(scene.Fog{Near: 5, Far: 5}, 10))
}

func TestLerpColor(t *testing.T) {
	black := color.RGBA{0, 0, 0, 255}
	white := color.RGBA{255, 255, 255, 255}

	assert.Equal(t, black, lerpColor(black, white, 0))
	assert.Equal(t, white, lerpColor(black, white, 1))
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, lerpColor(black, white, 0.5))
}

func TestBlurRadius(t *testing.T) {
	assert.Zero(t, blurRadius(nil, 1, 100))

	dof := &scene.DepthOfField{FocusRange: 3.5, FocusDistance: 0.25, FocalLength: 0.22, BokehScale: 5.5}
	assert.InDelta(t, 8.642857, blurRadius(dof, -1, 100), 1e-3)
	assert.Zero(t, blurRadius(dof, 0, 100))
}

func TestOpacityAlpha(t *testing.T) {
	assert.Equal(t, uint8(0), opacityAlpha(-1))
	assert.Equal(t, uint8(128), opacityAlpha(0.5))
	assert.Equal(t, uint8(255), opacityAlpha(2))
}
