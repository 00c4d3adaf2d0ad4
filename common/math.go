// Package common contains common math helpers and shared constants used
// throughout the viewer. They are not interface-wrapped components, just plain
// functions over float64 values.
package common

import "math"

// Clamp limits v to the inclusive range [min, max].
//
// Parameters:
//   - v: the value to limit
//   - min: lower bound
//   - max: upper bound
//
// Returns:
//   - float64: v limited to [min, max]
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// SoftClamp pulls v toward the nearest bound of [min, max] instead of clipping
// it. Values inside the range pass through unchanged; values outside move
// stiffness of the way toward the violated bound per application, so repeated
// applications converge geometrically. A value exactly on a bound is a fixed
// point.
//
// Parameters:
//   - v: the value to constrain
//   - min: lower bound
//   - max: upper bound
//   - stiffness: fraction of the overshoot removed per application, in [0, 1]
//
// Returns:
//   - float64: the softly constrained value
func SoftClamp(v, min, max, stiffness float64) float64 {
	return Clamp(v, min, max)*stiffness + v*(1-stiffness)
}

// Lerp linearly interpolates between a and b.
//
// Parameters:
//   - a: start value (t = 0)
//   - b: end value (t = 1)
//   - t: interpolation factor, typically in [0, 1]
//
// Returns:
//   - float64: the interpolated value
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// AngleDelta returns the shortest signed angular difference b - a in radians,
// normalized into (-π, π]. Used when comparing touch rotation samples that may
// wrap around ±π between frames.
//
// Parameters:
//   - a: previous angle in radians
//   - b: current angle in radians
//
// Returns:
//   - float64: shortest signed delta from a to b
func AngleDelta(a, b float64) float64 {
	d := math.Mod(b-a, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	}
	if d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}
