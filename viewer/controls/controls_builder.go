package controls

import (
	"github.com/Team-Fuho/BlueMapWeb/config"
	"github.com/Team-Fuho/BlueMapWeb/viewer/input"
	"github.com/Team-Fuho/BlueMapWeb/viewer/input/gesture"
)

// ControlsOption is a functional option for configuring the orchestrator.
// Options run before the driver set is constructed, so settings and input
// wiring provided here reach every driver.
type ControlsOption func(*mapControls)

// WithSettings replaces the default tuning settings.
//
// Parameters:
//   - settings: the tuning values to use
//
// Returns:
//   - ControlsOption: option function to apply
func WithSettings(settings config.Settings) ControlsOption {
	return func(c *mapControls) {
		c.settings = settings
	}
}

// WithInputRoot attaches the orchestrator to an input root. Mouse and
// keyboard drivers register their listeners on it, and the context menu is
// suppressed on it while the controls run. Without a root the controls are
// headless: drivers still accept directly injected events.
//
// Parameters:
//   - root: the input root to attach to
//
// Returns:
//   - ControlsOption: option function to apply
func WithInputRoot(root input.Root) ControlsOption {
	return func(c *mapControls) {
		c.root = root
	}
}

// WithGestures supplies an external gesture manager, letting the host share
// one recognizer between the controls and its own tap handling. By default
// the orchestrator creates its own.
//
// Parameters:
//   - gestures: the gesture manager the touch drivers subscribe to
//
// Returns:
//   - ControlsOption: option function to apply
func WithGestures(gestures *gesture.Manager) ControlsOption {
	return func(c *mapControls) {
		c.gestures = gestures
	}
}
