package camera

// CameraOption is a functional option for configuring a Camera.
type CameraOption func(*Camera)

// WithFov sets the vertical field of view.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraOption: option function to apply
func WithFov(fov float64) CameraOption {
	return func(c *Camera) {
		c.fov = fov
	}
}

// WithAspect sets the viewport aspect ratio.
//
// Parameters:
//   - aspect: width / height ratio
//
// Returns:
//   - CameraOption: option function to apply
func WithAspect(aspect float64) CameraOption {
	return func(c *Camera) {
		c.aspect = aspect
	}
}

// WithNearFar sets the near and far clipping plane distances.
//
// Parameters:
//   - near: near plane distance
//   - far: far plane distance
//
// Returns:
//   - CameraOption: option function to apply
func WithNearFar(near, far float64) CameraOption {
	return func(c *Camera) {
		c.near = near
		c.far = far
	}
}
