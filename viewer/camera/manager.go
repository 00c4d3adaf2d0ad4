package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Manager owns the shared camera State for one viewer instance. It is the
// context object passed by reference into every driver call; exactly one
// writer sequence (the controls orchestrator's fixed per-frame order) touches
// the state per frame.
type Manager struct {
	// State is the shared mutable camera record. Drivers mutate it directly.
	State State
}

// NewManager creates a Manager with the default entry framing: a distant,
// slightly tilted perspective view over the world origin.
//
// Parameters:
//   - options: functional options to override the initial state
//
// Returns:
//   - *Manager: the state owner, ready to be bound to a Controls instance
func NewManager(options ...ManagerOption) *Manager {
	m := &Manager{
		State: State{
			Ortho:    0,
			Distance: 300,
			Angle:    0,
			Rotation: 0,
			Position: mgl64.Vec3{0, 0, 0},
		},
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// EyePosition returns the world-space position of the camera eye derived from
// the current state: the focus point offset by Distance along the direction
// given by Angle (tilt from top-down) and Rotation (yaw).
//
// Returns:
//   - mgl64.Vec3: world-space eye position
func (m *Manager) EyePosition() mgl64.Vec3 {
	s := &m.State
	sinA, cosA := math.Sincos(s.Angle)
	sinR, cosR := math.Sincos(s.Rotation)
	offset := mgl64.Vec3{
		sinR * sinA,
		cosA,
		cosR * sinA,
	}.Mul(s.Distance)
	return s.Position.Add(offset)
}

// UpVector returns the camera's up direction. It is perpendicular to the view
// direction for every Angle, including the degenerate top-down case where the
// naive world-up would be parallel to the view axis.
//
// Returns:
//   - mgl64.Vec3: unit up vector
func (m *Manager) UpVector() mgl64.Vec3 {
	s := &m.State
	sinA, cosA := math.Sincos(s.Angle)
	sinR, cosR := math.Sincos(s.Rotation)
	return mgl64.Vec3{
		-sinR * cosA,
		sinA,
		-cosR * cosA,
	}
}

// ViewMatrix returns the view matrix looking from the derived eye position at
// the focus point.
//
// Returns:
//   - mgl64.Mat4: the view matrix
func (m *Manager) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(m.EyePosition(), m.State.Position, m.UpVector())
}
