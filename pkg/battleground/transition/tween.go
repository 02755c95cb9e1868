package transition

import (
	"time"

	"github.com/BrandonKowalski/battleground/pkg/battleground/constants"
)

// Pose is the animated state of an instance. OffsetY is in screen pixels.
type Pose struct {
	Opacity float32
	OffsetY float32
}

// Motion describes how an instance enters, rests and exits.
type Motion struct {
	Initial  Pose
	Rest     Pose
	Exit     Pose
	Duration time.Duration
}

// VideoMotion fades the background video in and out.
var VideoMotion = Motion{
	Initial:  Pose{Opacity: 0},
	Rest:     Pose{Opacity: 1},
	Exit:     Pose{Opacity: 0},
	Duration: constants.VideoFadeDuration,
}

// TextMotion drops the title group in from above and out below.
var TextMotion = Motion{
	Initial:  Pose{Opacity: 0, OffsetY: -50},
	Rest:     Pose{Opacity: 1, OffsetY: 0},
	Exit:     Pose{Opacity: 0, OffsetY: 50},
	Duration: constants.TextSlideDuration,
}

// EaseInOutCubic maps linear progress t in [0,1] onto a cubic ease curve.
func EaseInOutCubic(t float32) float32 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 0.5:
		return 4 * t * t * t
	default:
		f := -2*t + 2
		return 1 - f*f*f/2
	}
}

// Lerp interpolates between two poses.
func Lerp(from, to Pose, t float32) Pose {
	return Pose{
		Opacity: from.Opacity + (to.Opacity-from.Opacity)*t,
		OffsetY: from.OffsetY + (to.OffsetY-from.OffsetY)*t,
	}
}

// progress returns linear progress in [0,1] of elapsed over d.
func progress(elapsed, d time.Duration) float32 {
	if d <= 0 || elapsed >= d {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float32(elapsed) / float32(d)
}
