// Package tunables loads the debug parameters that shape the scene from a
// TOML file and keeps them current while the file is edited.
//
// A tunables file looks like:
//
//	[boundaries]
//	debug = false
//	x = 12.0
//	y = 8.0
//	z = 20.0
//
//	[depth_of_field]
//	focus_range = 3.5
//	focus_distance = 0.25
//	focal_length = 0.22
//	bokeh_scale = 5.5
//
// Missing keys keep their defaults and out of range values are clamped.
package tunables

import (
	"fmt"
	"os"
	"strings"

	"cogentcore.org/core/math32"
	"github.com/BrandonKowalski/battleground/pkg/battleground/scene"
	"github.com/BurntSushi/toml"
)

type Boundaries struct {
	Debug bool    `toml:"debug"`
	X     float32 `toml:"x"`
	Y     float32 `toml:"y"`
	Z     float32 `toml:"z"`
}

type DepthOfField struct {
	FocusRange    float32 `toml:"focus_range"`
	FocusDistance float32 `toml:"focus_distance"`
	FocalLength   float32 `toml:"focal_length"`
	BokehScale    float32 `toml:"bokeh_scale"`
}

// Values is one complete set of tunables.
type Values struct {
	Boundaries   Boundaries   `toml:"boundaries"`
	DepthOfField DepthOfField `toml:"depth_of_field"`
}

// Defaults returns the stock values.
func Defaults() Values {
	return Values{
		Boundaries: Boundaries{X: 12, Y: 8, Z: 20},
		DepthOfField: DepthOfField{
			FocusRange:    3.5,
			FocusDistance: 0.25,
			FocalLength:   0.22,
			BokehScale:    5.5,
		},
	}
}

// Clamped returns v with every value forced into its allowed range.
func (v Values) Clamped() Values {
	v.Boundaries.X = math32.Clamp(v.Boundaries.X, 0, 40)
	v.Boundaries.Y = math32.Clamp(v.Boundaries.Y, 0, 40)
	v.Boundaries.Z = math32.Clamp(v.Boundaries.Z, 0, 40)
	v.DepthOfField.FocusRange = math32.Clamp(v.DepthOfField.FocusRange, 0, 20)
	v.DepthOfField.FocusDistance = math32.Clamp(v.DepthOfField.FocusDistance, 0, 1)
	v.DepthOfField.FocalLength = math32.Clamp(v.DepthOfField.FocalLength, 0, 1)
	v.DepthOfField.BokehScale = math32.Clamp(v.DepthOfField.BokehScale, 0, 10)
	return v
}

// Scene converts the values into a composition config.
func (v Values) Scene() scene.Config {
	return scene.Config{
		Debug:    v.Boundaries.Debug,
		Boundary: math32.Vec3(v.Boundaries.X, v.Boundaries.Y, v.Boundaries.Z),
		DepthOfField: scene.DepthOfFieldTunables{
			FocusRange:    v.DepthOfField.FocusRange,
			FocusDistance: v.DepthOfField.FocusDistance,
			FocalLength:   v.DepthOfField.FocalLength,
			BokehScale:    v.DepthOfField.BokehScale,
		},
	}
}

// Parse decodes a tunables document over the defaults. Unknown keys are
// rejected.
func Parse(data []byte) (Values, error) {
	v := Defaults()
	md, err := toml.Decode(string(data), &v)
	if err != nil {
		return Values{}, fmt.Errorf("tunables: decode: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Values{}, fmt.Errorf("tunables: unknown keys: %s", strings.Join(keys, ", "))
	}

	return v.Clamped(), nil
}

// Load reads and parses the file at path.
func Load(path string) (Values, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Values{}, fmt.Errorf("tunables: read %s: %w", path, err)
	}
	return Parse(data)
}

// Source supplies the current values and a version that changes whenever
// they do.
type Source interface {
	Values() Values
	Version() uint64
}

// Static is a Source that never changes.
type Static Values

func (s Static) Values() Values { return Values(s) }

func (s Static) Version() uint64 { return 0 }
