package camera

import "github.com/go-gl/mathgl/mgl64"

// ManagerOption is a functional option for configuring a Manager's initial state.
type ManagerOption func(*Manager)

// WithDistance sets the initial camera distance from the focus point.
//
// Parameters:
//   - distance: distance in world units
//
// Returns:
//   - ManagerOption: option function to apply
func WithDistance(distance float64) ManagerOption {
	return func(m *Manager) {
		m.State.Distance = distance
	}
}

// WithAngle sets the initial tilt angle from top-down.
//
// Parameters:
//   - angle: tilt in radians, in [0, π/2]
//
// Returns:
//   - ManagerOption: option function to apply
func WithAngle(angle float64) ManagerOption {
	return func(m *Manager) {
		m.State.Angle = angle
	}
}

// WithRotation sets the initial yaw around the vertical axis.
//
// Parameters:
//   - rotation: yaw in radians
//
// Returns:
//   - ManagerOption: option function to apply
func WithRotation(rotation float64) ManagerOption {
	return func(m *Manager) {
		m.State.Rotation = rotation
	}
}

// WithOrtho sets the initial orthographic/perspective blend.
//
// Parameters:
//   - ortho: blend factor in [0, 1]
//
// Returns:
//   - ManagerOption: option function to apply
func WithOrtho(ortho float64) ManagerOption {
	return func(m *Manager) {
		m.State.Ortho = ortho
	}
}

// WithPosition sets the initial focus point.
//
// Parameters:
//   - position: world-space focus point
//
// Returns:
//   - ManagerOption: option function to apply
func WithPosition(position mgl64.Vec3) ManagerOption {
	return func(m *Manager) {
		m.State.Position = position
	}
}
