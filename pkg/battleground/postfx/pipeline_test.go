package postfx

import (
	"fmt"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/BrandonKowalski/battleground/pkg/battleground/scene"
	"github.com/BrandonKowalski/battleground/pkg/battleground/theme"
	"github.com/BrandonKowalski/battleground/pkg/battleground/viewport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compose(t *testing.T, key string) scene.Descriptor {
	t.Helper()
	reg, err := theme.Default()
	require.NoError(t, err)
	d, err := scene.Compose(reg, nil, key, viewport.Compute(viewport.Size{Width: 1920, Height: 1080}), scene.DefaultConfig())
	require.NoError(t, err)
	return d
}

func sunAt(ok bool) SunLocator {
	return SunLocatorFunc(func() (math32.Vector3, bool) {
		return math32.Vec3(0, 2, -10), ok
	})
}

func TestConfigureOrder(t *testing.T) {
	tests := []struct {
		key  string
		want []Kind
	}{
		{theme.Underwater, []Kind{KindDepthOfField, KindLightShafts, KindBloom}},
		{theme.Space, []Kind{KindLightShafts, KindBloom}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			p := Configure(compose(t, tt.key), sunAt(true))
			assert.Equal(t, tt.want, Kinds(p.Stages()))
			assert.Equal(t, tt.want, Kinds(p.Active()))
		})
	}
}

func TestStageParameters(t *testing.T) {
	p := Configure(compose(t, theme.Underwater), sunAt(true))
	stages := p.Stages()
	require.Len(t, stages, 3)

	dof := stages[0].DepthOfField
	require.NotNil(t, dof)
	assert.Equal(t, float32(3.5), dof.FocusRange)
	assert.Equal(t, float32(0.25), dof.FocusDistance)
	assert.Equal(t, float32(0.22), dof.FocalLength)
	assert.Equal(t, float32(5.5), dof.BokehScale)

	shafts := stages[1].LightShafts
	require.NotNil(t, shafts)
	assert.Equal(t, LightShafts{Exposure: 0.34, Decay: 0.89, Blur: true}, *shafts)

	bloom := stages[2].Bloom
	require.NotNil(t, bloom)
	assert.Equal(t, Bloom{LuminanceThreshold: 1.5, Intensity: 0.4, MipmapBlur: true}, *bloom)
}

func TestLightShaftsSkippedWithoutSun(t *testing.T) {
	present := false
	locator := SunLocatorFunc(func() (math32.Vector3, bool) {
		return math32.Vector3{}, present
	})

	p := Configure(compose(t, theme.Space), locator)
	assert.True(t, Has(p.Stages(), KindLightShafts))
	assert.Equal(t, []Kind{KindBloom}, Kinds(p.Active()))

	present = true
	assert.Equal(t, []Kind{KindLightShafts, KindBloom}, Kinds(p.Active()))

	p = Configure(compose(t, theme.Space), nil)
	assert.False(t, Has(p.Active(), KindLightShafts))
}

func ExampleConfigure() {
	reg, _ := theme.Default()
	d, _ := scene.Compose(reg, nil, theme.Underwater, viewport.Compute(viewport.Size{Width: 1920, Height: 1080}), scene.DefaultConfig())
	p := Configure(d, SunLocatorFunc(func() (math32.Vector3, bool) { return d.Sun.Position, true }))
	for _, s := range p.Active() {
		fmt.Println(s.Kind)
	}
	// Output:
	// depth_of_field
	// light_shafts
	// bloom
}
