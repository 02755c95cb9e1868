package viewport

import (
	"github.com/BrandonKowalski/battleground/pkg/battleground/constants"
)

// ScaleFactors are derived from a Size and never stored independently.
type ScaleFactors struct {
	ScaleX  float32
	ScaleY  float32
	Compact bool
}

// Compute returns the scale factors for size relative to the reference
// resolution. Both factors are floored at constants.MinScale.
func Compute(size Size) ScaleFactors {
	return ScaleFactors{
		ScaleX:  max(constants.MinScale, float32(size.Width)/constants.ReferenceWidth),
		ScaleY:  max(constants.MinScale, float32(size.Height)/constants.ReferenceHeight),
		Compact: size.Width <= constants.CompactMaxWidth,
	}
}
