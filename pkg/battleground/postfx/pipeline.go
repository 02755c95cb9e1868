// Package postfx assembles the post processing stages applied after the
// scene is drawn.
package postfx

import (
	"cogentcore.org/core/math32"
	"github.com/BrandonKowalski/battleground/pkg/battleground/scene"
)

// Kind names a stage.
type Kind int

const (
	KindDepthOfField Kind = iota
	KindLightShafts
	KindBloom
)

func (k Kind) String() string {
	switch k {
	case KindDepthOfField:
		return "depth_of_field"
	case KindLightShafts:
		return "light_shafts"
	case KindBloom:
		return "bloom"
	default:
		return "unknown"
	}
}

type LightShafts struct {
	Exposure float32
	Decay    float32
	Blur     bool
}

type Bloom struct {
	LuminanceThreshold float32
	Intensity          float32
	MipmapBlur         bool
}

// Stage is one configured pass. Exactly one of the parameter pointers that
// matches Kind is set.
type Stage struct {
	Kind         Kind
	DepthOfField *scene.DepthOfField
	LightShafts  *LightShafts
	Bloom        *Bloom
}

// SunLocator reports where the sun disc currently is. ok is false while no
// sun has been constructed for this frame.
type SunLocator interface {
	Sun() (position math32.Vector3, ok bool)
}

// SunLocatorFunc adapts a function to SunLocator.
type SunLocatorFunc func() (math32.Vector3, bool)

func (f SunLocatorFunc) Sun() (math32.Vector3, bool) {
	return f()
}

// Pipeline is the ordered list of stages for the current descriptor.
type Pipeline struct {
	stages  []Stage
	locator SunLocator
}

// Configure builds the stages for d in fixed order: depth of field, light
// shafts, bloom.
func Configure(d scene.Descriptor, locator SunLocator) *Pipeline {
	p := &Pipeline{locator: locator}

	if dof := d.Effects.DepthOfField; dof != nil {
		params := *dof
		p.stages = append(p.stages, Stage{Kind: KindDepthOfField, DepthOfField: &params})
	}

	if d.Effects.LightShafts {
		p.stages = append(p.stages, Stage{
			Kind: KindLightShafts,
			LightShafts: &LightShafts{
				Exposure: 0.34,
				Decay:    0.89,
				Blur:     true,
			},
		})
	}

	p.stages = append(p.stages, Stage{
		Kind: KindBloom,
		Bloom: &Bloom{
			LuminanceThreshold: 1.5,
			Intensity:          0.4,
			MipmapBlur:         true,
		},
	})

	return p
}

// Stages returns every configured stage in order.
func (p *Pipeline) Stages() []Stage {
	out := make([]Stage, len(p.stages))
	copy(out, p.stages)
	return out
}

// Active returns the stages that run this frame. The light shaft stage is
// skipped while the locator has no sun.
func (p *Pipeline) Active() []Stage {
	out := make([]Stage, 0, len(p.stages))
	for _, s := range p.stages {
		if s.Kind == KindLightShafts {
			if p.locator == nil {
				continue
			}
			if _, ok := p.locator.Sun(); !ok {
				continue
			}
		}
		out = append(out, s)
	}
	return out
}

// Kinds returns the kinds of stages, in order.
func Kinds(stages []Stage) []Kind {
	out := make([]Kind, len(stages))
	for i, s := range stages {
		out[i] = s.Kind
	}
	return out
}

// Has reports whether stages contains kind.
func Has(stages []Stage, kind Kind) bool {
	for _, s := range stages {
		if s.Kind == kind {
			return true
		}
	}
	return false
}
