package viewer

import (
	"github.com/Team-Fuho/BlueMapWeb/config"
	"github.com/Team-Fuho/BlueMapWeb/viewer/camera"
	"github.com/Team-Fuho/BlueMapWeb/viewer/input"
	"github.com/Team-Fuho/BlueMapWeb/viewer/window"
)

// ViewerBuilderOption is a functional option for configuring a mapViewer.
// Use the With* functions to create options.
type ViewerBuilderOption func(v *mapViewer)

// WithWindow attaches the viewer to a window. The window becomes the input
// root of the camera controls and its message loop drives the frame updates.
//
// Parameters:
//   - w: the window to attach
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithWindow(w window.Window) ViewerBuilderOption {
	return func(v *mapViewer) {
		v.window = w
	}
}

// WithSettings replaces the default control tuning settings.
//
// Parameters:
//   - settings: the tuning values to use
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithSettings(settings config.Settings) ViewerBuilderOption {
	return func(v *mapViewer) {
		v.settings = settings
	}
}

// WithWorld sets the map the controls query for terrain heights.
//
// Parameters:
//   - world: the map collaborator for spatial queries
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithWorld(world input.Map) ViewerBuilderOption {
	return func(v *mapViewer) {
		v.world = world
	}
}

// WithCameraManager supplies an external camera-state owner, letting the host
// share it with its render backend.
//
// Parameters:
//   - m: the camera-state owner to use
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithCameraManager(m *camera.Manager) ViewerBuilderOption {
	return func(v *mapViewer) {
		v.manager = m
	}
}

// WithCamera supplies an external projection camera.
//
// Parameters:
//   - c: the projection camera to use
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithCamera(c *camera.Camera) ViewerBuilderOption {
	return func(v *mapViewer) {
		v.cam = c
	}
}

// WithProfiling enables performance profiling from the start.
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithProfiling() ViewerBuilderOption {
	return func(v *mapViewer) {
		v.profilingEnabled = true
	}
}
