// Package camera owns the shared camera state of the map viewer and derives
// view and projection matrices from it. The state is a single mutable record:
// the controls orchestrator and its input drivers mutate it in a fixed
// per-frame order, and nothing else writes to it. There is deliberately no
// locking; the viewer runs a single cooperative frame loop.
package camera

import "github.com/go-gl/mathgl/mgl64"

// State is the mutable camera record shared between the controls orchestrator
// and every input driver.
type State struct {
	// Ortho is the orthographic/perspective projection blend in [0, 1].
	// 0 is full perspective, 1 is full orthographic. During mode transitions
	// it moves linearly with raw animation progress.
	Ortho float64

	// Distance is the camera's distance from the focus point, always positive.
	// Softly bounded to [5, 10000]; fast input may push it outside transiently
	// and the per-frame clamp pulls it back.
	Distance float64

	// Angle is the tilt from the top-down view in radians, in [0, π/2].
	// Bounded above by a distance-dependent ceiling recomputed every frame.
	Angle float64

	// Rotation is the yaw around the vertical axis in radians, unbounded.
	Rotation float64

	// Position is the focus point in world space. Position.Y() is the focus
	// height above the terrain datum and is driven by the height-follow pass.
	Position mgl64.Vec3
}
