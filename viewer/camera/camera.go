package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera computes blended projection matrices from the shared State. The
// orthographic frustum is sized so that at the focus plane it matches the
// perspective footprint, which keeps the element-wise blend between the two
// projections visually continuous as State.Ortho sweeps [0, 1].
type Camera struct {
	fov    float64
	aspect float64
	near   float64
	far    float64
}

// NewCamera creates a Camera with the given options applied over defaults
// (60° vertical FOV, 16:9 aspect, near 0.1, far 100000).
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - *Camera: the configured camera
func NewCamera(options ...CameraOption) *Camera {
	c := &Camera{
		fov:    math.Pi / 3,
		aspect: 16.0 / 9.0,
		near:   0.1,
		far:    100000,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Fov returns the vertical field of view in radians.
func (c *Camera) Fov() float64 { return c.fov }

// Aspect returns the viewport aspect ratio (width / height).
func (c *Camera) Aspect() float64 { return c.aspect }

// SetAspect updates the aspect ratio, typically from a window resize callback.
//
// Parameters:
//   - aspect: new width / height ratio
func (c *Camera) SetAspect(aspect float64) {
	if aspect > 0 {
		c.aspect = aspect
	}
}

// ProjectionMatrix returns the projection for the given state: the
// element-wise interpolation between the perspective and orthographic
// projections by State.Ortho. At 0 it is pure perspective, at 1 pure
// orthographic.
//
// Parameters:
//   - s: the camera state supplying Ortho and Distance
//
// Returns:
//   - mgl64.Mat4: the blended projection matrix
func (c *Camera) ProjectionMatrix(s *State) mgl64.Mat4 {
	persp := mgl64.Perspective(c.fov, c.aspect, c.near, c.far)
	if s.Ortho <= 0 {
		return persp
	}

	// Size the ortho volume to the perspective footprint at the focus plane.
	halfH := s.Distance * math.Tan(c.fov/2)
	halfW := halfH * c.aspect
	ortho := mgl64.Ortho(-halfW, halfW, -halfH, halfH, c.near, c.far)
	if s.Ortho >= 1 {
		return ortho
	}

	var blended mgl64.Mat4
	for i := range persp {
		blended[i] = persp[i]*(1-s.Ortho) + ortho[i]*s.Ortho
	}
	return blended
}

// ViewProjectionMatrix returns projection * view for the given manager's
// current state.
//
// Parameters:
//   - m: the state owner supplying the view matrix
//
// Returns:
//   - mgl64.Mat4: the combined view-projection matrix
func (c *Camera) ViewProjectionMatrix(m *Manager) mgl64.Mat4 {
	return c.ProjectionMatrix(&m.State).Mul4(m.ViewMatrix())
}
