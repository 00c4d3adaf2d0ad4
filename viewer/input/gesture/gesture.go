// Package gesture recognizes multi-touch gestures from raw touch-point
// updates and fans the resulting deltas out to registered listeners. It is
// platform-agnostic: whatever owns the real touch device feeds TouchDown,
// TouchMove and TouchUp, and the touch input drivers subscribe to the gesture
// streams they care about.
//
// Recognition is deliberately permissive: a two-finger gesture reports pan,
// tilt, rotate and pinch simultaneously each frame, so a single gesture can
// rotate, tilt and zoom the camera at once.
package gesture

import (
	"math"

	"github.com/Team-Fuho/BlueMapWeb/common"
)

// tapSlop is the maximum total cursor travel in pixels for a touch to still
// count as a tap on release.
const tapSlop = 8.0

// TouchPoint is one active finger on the touch surface.
type TouchPoint struct {
	// ID identifies the finger across down/move/up events.
	ID int
	// X, Y are the surface coordinates in pixels.
	X, Y float64
}

// PanListener receives translation deltas of the touch centroid.
type PanListener interface {
	// Pan is called with the centroid movement in pixels and the number of
	// active fingers producing it.
	Pan(dx, dy float64, fingers int)
}

// TiltListener receives the vertical component of two-finger pans.
type TiltListener interface {
	// Tilt is called with the two-finger centroid's vertical movement in pixels.
	Tilt(dy float64)
}

// RotateListener receives two-finger twist deltas.
type RotateListener interface {
	// Rotate is called with the signed change of the angle between the two
	// fingers, in radians.
	Rotate(delta float64)
}

// PinchListener receives two-finger pinch deltas.
type PinchListener interface {
	// Pinch is called with the ratio of the current finger span to the
	// previous one; values above 1 mean the fingers moved apart.
	Pinch(ratio float64)
}

// TapListener receives tap events.
type TapListener interface {
	// Tap is called with the surface position of a completed tap.
	Tap(x, y float64)
}

// Manager tracks active touch points and dispatches recognized gestures.
type Manager struct {
	points []TouchPoint

	pan    []PanListener
	tilt   []TiltListener
	rotate []RotateListener
	pinch  []PinchListener
	tap    []TapListener

	tapCandidate bool
	tapTravel    float64
}

// NewManager creates an empty gesture Manager.
//
// Returns:
//   - *Manager: the manager, ready for listeners and touch events
func NewManager() *Manager {
	return &Manager{}
}

// AddPanListener registers l for pan deltas.
func (g *Manager) AddPanListener(l PanListener) { g.pan = append(g.pan, l) }

// RemovePanListener unregisters l.
func (g *Manager) RemovePanListener(l PanListener) { g.pan = removeListener(g.pan, l) }

// AddTiltListener registers l for two-finger vertical pan deltas.
func (g *Manager) AddTiltListener(l TiltListener) { g.tilt = append(g.tilt, l) }

// RemoveTiltListener unregisters l.
func (g *Manager) RemoveTiltListener(l TiltListener) { g.tilt = removeListener(g.tilt, l) }

// AddRotateListener registers l for two-finger twist deltas.
func (g *Manager) AddRotateListener(l RotateListener) { g.rotate = append(g.rotate, l) }

// RemoveRotateListener unregisters l.
func (g *Manager) RemoveRotateListener(l RotateListener) { g.rotate = removeListener(g.rotate, l) }

// AddPinchListener registers l for pinch ratios.
func (g *Manager) AddPinchListener(l PinchListener) { g.pinch = append(g.pinch, l) }

// RemovePinchListener unregisters l.
func (g *Manager) RemovePinchListener(l PinchListener) { g.pinch = removeListener(g.pinch, l) }

// AddTapListener registers l for taps.
func (g *Manager) AddTapListener(l TapListener) { g.tap = append(g.tap, l) }

// RemoveTapListener unregisters l.
func (g *Manager) RemoveTapListener(l TapListener) { g.tap = removeListener(g.tap, l) }

// TouchDown records a new finger. A second finger retires any pending tap.
//
// Parameters:
//   - p: the new touch point
func (g *Manager) TouchDown(p TouchPoint) {
	if i := g.indexOf(p.ID); i >= 0 {
		g.points[i] = p
		return
	}
	g.points = append(g.points, p)
	if len(g.points) == 1 {
		g.tapCandidate = true
		g.tapTravel = 0
	} else {
		g.tapCandidate = false
	}
}

// TouchMove updates a finger's position and dispatches the gestures the
// resulting configuration produces. Unknown IDs are ignored.
//
// Parameters:
//   - p: the moved touch point
func (g *Manager) TouchMove(p TouchPoint) {
	i := g.indexOf(p.ID)
	if i < 0 {
		return
	}

	switch len(g.points) {
	case 1:
		dx := p.X - g.points[i].X
		dy := p.Y - g.points[i].Y
		g.points[i] = p
		g.tapTravel += math.Abs(dx) + math.Abs(dy)
		for _, l := range g.pan {
			l.Pan(dx, dy, 1)
		}
	case 2:
		prevCX, prevCY := g.centroid()
		prevAngle, prevSpan := g.spread()
		g.points[i] = p
		curCX, curCY := g.centroid()
		curAngle, curSpan := g.spread()

		dx, dy := curCX-prevCX, curCY-prevCY
		for _, l := range g.pan {
			l.Pan(dx, dy, 2)
		}
		for _, l := range g.tilt {
			l.Tilt(dy)
		}
		if delta := common.AngleDelta(prevAngle, curAngle); delta != 0 {
			for _, l := range g.rotate {
				l.Rotate(delta)
			}
		}
		if prevSpan > 0 && curSpan > 0 {
			ratio := curSpan / prevSpan
			if ratio != 1 {
				for _, l := range g.pinch {
					l.Pinch(ratio)
				}
			}
		}
	default:
		g.points[i] = p
	}
}

// TouchUp removes a finger. Releasing the only finger without exceeding the
// tap slop dispatches a tap at its final position.
//
// Parameters:
//   - id: the ID of the released finger
func (g *Manager) TouchUp(id int) {
	i := g.indexOf(id)
	if i < 0 {
		return
	}
	p := g.points[i]
	g.points = append(g.points[:i], g.points[i+1:]...)

	if len(g.points) == 0 && g.tapCandidate && g.tapTravel <= tapSlop {
		for _, l := range g.tap {
			l.Tap(p.X, p.Y)
		}
	}
	if len(g.points) == 0 {
		g.tapCandidate = false
	}
}

// ActiveTouches returns the number of fingers currently down.
//
// Returns:
//   - int: active touch count
func (g *Manager) ActiveTouches() int {
	return len(g.points)
}

func (g *Manager) indexOf(id int) int {
	for i, p := range g.points {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// centroid returns the mean position of all active points.
func (g *Manager) centroid() (x, y float64) {
	if len(g.points) == 0 {
		return 0, 0
	}
	for _, p := range g.points {
		x += p.X
		y += p.Y
	}
	n := float64(len(g.points))
	return x / n, y / n
}

// spread returns the angle and length of the segment between the first two
// points. Only meaningful with exactly two active fingers.
func (g *Manager) spread() (angle, span float64) {
	if len(g.points) < 2 {
		return 0, 0
	}
	dx := g.points[1].X - g.points[0].X
	dy := g.points[1].Y - g.points[0].Y
	return math.Atan2(dy, dx), math.Hypot(dx, dy)
}

func removeListener[T comparable](list []T, v T) []T {
	for i, l := range list {
		if l == v {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
