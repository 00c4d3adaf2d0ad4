package controls

import (
	"math"

	"github.com/Team-Fuho/BlueMapWeb/common"
)

// Tilt ceiling shape: at ceilingBaseDistance the full top-down-to-horizon
// range is allowed; freedom falls off with the square root of the normalized
// distance and reaches zero at ceilingBaseDistance + ceilingFalloffRange.
// Far away, looking near horizon level would show past the edge of the loaded
// world, so tilt freedom is progressively removed as the camera zooms out.
const (
	ceilingBaseDistance = 5.0
	ceilingFalloffRange = 500.0
)

// MaxPerspectiveAngleForDistance returns the tilt ceiling for the given
// camera distance: π/2 at distances up to ~5, smoothly and monotonically
// decreasing to 0 at distances of 505 and beyond.
//
// Parameters:
//   - distance: camera distance from the focus point
//
// Returns:
//   - float64: maximum tilt angle in radians, in [0, π/2]
func MaxPerspectiveAngleForDistance(distance float64) float64 {
	normalized := math.Max(distance-ceilingBaseDistance, 0.001) / ceilingFalloffRange
	return common.Clamp((1-math.Sqrt(normalized))*(math.Pi/2), 0, math.Pi/2)
}
