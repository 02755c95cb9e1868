package scene

import (
	"time"

	"cogentcore.org/core/math32"
	"github.com/BrandonKowalski/battleground/pkg/battleground/constants"
)

// SpotlightAt returns base swept along X for the given elapsed time. One
// full sweep takes constants.SpotlightPeriod and reaches 5 units either side.
func SpotlightAt(base SpotLight, elapsed time.Duration) SpotLight {
	t := float32((elapsed % constants.SpotlightPeriod).Seconds())
	x := math32.Sin(t/5*math32.Pi) * 5

	out := base
	out.Position.X = x
	out.Target = math32.Vec3(x/2, 0, 0)
	return out
}

// FloatPose is the bobbing offset applied on top of the text group.
type FloatPose struct {
	OffsetY  float32
	Rotation math32.Vector3
}

// FloatAt returns the float bob of group at elapsed time.
func FloatAt(group TextGroup, elapsed time.Duration) FloatPose {
	t := float32(elapsed.Seconds()) / 4
	sin, cos := math32.Sincos(t)

	ri := group.RotationIntensity
	return FloatPose{
		OffsetY:  group.FloatOffsetY + sin/10*group.FloatIntensity,
		Rotation: math32.Vec3(cos/8*ri, sin/8*ri, sin/20*ri),
	}
}
