package anim

// Linear is the identity easing curve.
//
// Parameters:
//   - t: raw progress in [0, 1]
//
// Returns:
//   - float64: t unchanged
func Linear(t float64) float64 {
	return t
}

// EaseInOutQuad is the quadratic ease-in-out curve: slow start, slow end,
// symmetric around t = 0.5.
//
// Parameters:
//   - t: raw progress in [0, 1]
//
// Returns:
//   - float64: eased progress in [0, 1]
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	d := -2*t + 2
	return 1 - d*d/2
}
