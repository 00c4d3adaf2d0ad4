// Package input defines the driver contract shared by every input modality of
// the map viewer and the concrete mouse, keyboard and touch drivers. Each
// driver independently accumulates raw device input into a pending delta and
// applies it to the shared camera state when the controls orchestrator calls
// Update; the orchestrator's fixed call order is the only synchronization, so
// drivers assume cooperative, sequential access to the state.
package input

import "github.com/Team-Fuho/BlueMapWeb/viewer/camera"

// Map is the scene/map collaborator drivers use for spatial queries.
type Map interface {
	// HeightAt returns the terrain height at the given horizontal position.
	// The second return is false where the map has no terrain data.
	HeightAt(x, z float64) (float64, bool)
}

// Driver is the capability implemented by every input driver. Start binds the
// camera-state owner and attaches device listeners; Stop detaches them and
// must be idempotent. Update applies the accumulated delta to the shared
// state. Reset discards in-flight momentum and is a no-op for drivers that
// have none.
type Driver interface {
	Start(m *camera.Manager)
	Stop()
	Update(delta float64, world Map)
	Reset()
}

// Button identifies a pointer button.
type Button int

const (
	// ButtonLeft is the primary pointer button, reserved for panning.
	ButtonLeft Button = iota
	// ButtonRight is the secondary pointer button, reserved for rotate/tilt
	// drags; the input root's native context menu is suppressed while the
	// controls are running.
	ButtonRight
	// ButtonMiddle is the middle pointer button.
	ButtonMiddle
)

// PointerListener receives pointer events from the input root.
type PointerListener interface {
	PointerDown(x, y float64, button Button)
	PointerMove(x, y float64)
	PointerUp(x, y float64, button Button)
}

// ScrollListener receives scroll wheel events from the input root.
type ScrollListener interface {
	// Scroll receives the wheel delta; positive values scroll up.
	Scroll(delta float64)
}

// KeyListener receives key transitions from the input root.
type KeyListener interface {
	KeyDown(code uint32)
	KeyUp(code uint32)
}

// Root is the input root drivers attach their listeners to. A windowing
// backend implements it by fanning its native callbacks out to the registered
// listeners. Listener registration is not synchronized; drivers attach and
// detach only from the frame loop.
type Root interface {
	AddPointerListener(l PointerListener)
	RemovePointerListener(l PointerListener)
	AddScrollListener(l ScrollListener)
	RemoveScrollListener(l ScrollListener)
	AddKeyListener(l KeyListener)
	RemoveKeyListener(l KeyListener)

	// SetContextMenuSuppressed enables or disables the platform's native
	// context menu on the input root. The controls suppress it while running
	// because right-drag is reserved for rotate input.
	SetContextMenuSuppressed(suppressed bool)
}
