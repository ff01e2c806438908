package resize

import (
	"math"

	"github.com/vatsal3003/image-resize/pkg/models"
)

// DefaultProportionTolerance is the largest width/height ratio drift
// accepted silently.
const DefaultProportionTolerance = 0.1

func ratio(d models.Dimensions) float64 {
	return float64(d.Width) / float64(d.Height)
}

// IsProportional reports whether dst keeps the aspect ratio of src within
// tolerance.
func IsProportional(src, dst models.Dimensions, tolerance float64) bool {
	return math.Abs(ratio(src)-ratio(dst)) < tolerance
}
