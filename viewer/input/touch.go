package input

import (
	"math"

	"github.com/Team-Fuho/BlueMapWeb/viewer/camera"
	"github.com/Team-Fuho/BlueMapWeb/viewer/input/gesture"
)

// TouchMove pans the focus point with one-finger pans. Two-finger pans are
// left to the tilt driver so a vertical two-finger drag does not also slide
// the map.
type TouchMove struct {
	gestures  *gesture.Manager
	manager   *camera.Manager
	speed     float64
	smoothing float64

	pendingX, pendingY float64
}

// NewTouchMove creates the one-finger pan driver.
//
// Parameters:
//   - gestures: gesture manager to subscribe to (may be nil for headless use)
//   - speed: world units per pixel per unit of camera distance
//   - smoothing: fraction of pending input consumed per millisecond
//
// Returns:
//   - *TouchMove: the driver, not yet started
func NewTouchMove(gestures *gesture.Manager, speed, smoothing float64) *TouchMove {
	return &TouchMove{gestures: gestures, speed: speed, smoothing: smoothing}
}

func (d *TouchMove) Start(m *camera.Manager) {
	d.manager = m
	if d.gestures != nil {
		d.gestures.AddPanListener(d)
	}
}

func (d *TouchMove) Stop() {
	if d.gestures != nil {
		d.gestures.RemovePanListener(d)
	}
	d.manager = nil
}

// Pan accumulates one-finger pan deltas.
func (d *TouchMove) Pan(dx, dy float64, fingers int) {
	if fingers == 1 {
		d.pendingX += dx
		d.pendingY += dy
	}
}

func (d *TouchMove) Update(delta float64, _ Map) {
	if d.manager == nil {
		return
	}
	consume := consumeFraction(delta, d.smoothing)
	dx := d.pendingX * consume
	dy := d.pendingY * consume
	d.pendingX -= dx
	d.pendingY -= dy
	if dx == 0 && dy == 0 {
		return
	}

	s := &d.manager.State
	scale := d.speed * s.Distance
	sinR, cosR := math.Sincos(s.Rotation)
	s.Position[0] -= (dx*cosR + dy*sinR) * scale
	s.Position[2] -= (-dx*sinR + dy*cosR) * scale
}

func (d *TouchMove) Reset() {
	d.pendingX, d.pendingY = 0, 0
}

// TouchRotate yaws the camera with two-finger twists.
type TouchRotate struct {
	gestures  *gesture.Manager
	manager   *camera.Manager
	speed     float64
	smoothing float64

	pending float64
}

// NewTouchRotate creates the two-finger twist rotate driver.
//
// Parameters:
//   - gestures: gesture manager to subscribe to (may be nil)
//   - speed: camera radians per gesture radian (1 tracks the fingers exactly)
//   - smoothing: fraction of pending input consumed per millisecond
//
// Returns:
//   - *TouchRotate: the driver, not yet started
func NewTouchRotate(gestures *gesture.Manager, speed, smoothing float64) *TouchRotate {
	return &TouchRotate{gestures: gestures, speed: speed, smoothing: smoothing}
}

func (d *TouchRotate) Start(m *camera.Manager) {
	d.manager = m
	if d.gestures != nil {
		d.gestures.AddRotateListener(d)
	}
}

func (d *TouchRotate) Stop() {
	if d.gestures != nil {
		d.gestures.RemoveRotateListener(d)
	}
	d.manager = nil
}

// Rotate accumulates twist deltas.
func (d *TouchRotate) Rotate(delta float64) {
	d.pending += delta
}

func (d *TouchRotate) Update(delta float64, _ Map) {
	if d.manager == nil {
		return
	}
	step := d.pending * consumeFraction(delta, d.smoothing)
	d.pending -= step
	d.manager.State.Rotation += step * d.speed
}

func (d *TouchRotate) Reset() {
	d.pending = 0
}

// TouchTilt drives the tilt angle with two-finger vertical pans.
type TouchTilt struct {
	gestures  *gesture.Manager
	manager   *camera.Manager
	speed     float64
	smoothing float64

	pending float64
}

// NewTouchTilt creates the two-finger vertical pan tilt driver.
//
// Parameters:
//   - gestures: gesture manager to subscribe to (may be nil)
//   - speed: radians per pixel
//   - smoothing: fraction of pending input consumed per millisecond
//
// Returns:
//   - *TouchTilt: the driver, not yet started
func NewTouchTilt(gestures *gesture.Manager, speed, smoothing float64) *TouchTilt {
	return &TouchTilt{gestures: gestures, speed: speed, smoothing: smoothing}
}

func (d *TouchTilt) Start(m *camera.Manager) {
	d.manager = m
	if d.gestures != nil {
		d.gestures.AddTiltListener(d)
	}
}

func (d *TouchTilt) Stop() {
	if d.gestures != nil {
		d.gestures.RemoveTiltListener(d)
	}
	d.manager = nil
}

// Tilt accumulates two-finger vertical pan deltas.
func (d *TouchTilt) Tilt(dy float64) {
	d.pending += dy
}

func (d *TouchTilt) Update(delta float64, _ Map) {
	if d.manager == nil {
		return
	}
	step := d.pending * consumeFraction(delta, d.smoothing)
	d.pending -= step
	d.manager.State.Angle -= step * d.speed
}

func (d *TouchTilt) Reset() {
	d.pending = 0
}

// TouchZoom drives the camera distance with two-finger pinches. Pinch ratios
// accumulate logarithmically so interleaved in/out gestures cancel exactly.
type TouchZoom struct {
	gestures  *gesture.Manager
	manager   *camera.Manager
	smoothing float64

	pendingLog float64
}

// NewTouchZoom creates the pinch zoom driver.
//
// Parameters:
//   - gestures: gesture manager to subscribe to (may be nil)
//   - smoothing: fraction of pending input consumed per millisecond
//
// Returns:
//   - *TouchZoom: the driver, not yet started
func NewTouchZoom(gestures *gesture.Manager, smoothing float64) *TouchZoom {
	return &TouchZoom{gestures: gestures, smoothing: smoothing}
}

func (d *TouchZoom) Start(m *camera.Manager) {
	d.manager = m
	if d.gestures != nil {
		d.gestures.AddPinchListener(d)
	}
}

func (d *TouchZoom) Stop() {
	if d.gestures != nil {
		d.gestures.RemovePinchListener(d)
	}
	d.manager = nil
}

// Pinch accumulates span ratios; spreading the fingers zooms in.
func (d *TouchZoom) Pinch(ratio float64) {
	if ratio > 0 {
		d.pendingLog += math.Log(ratio)
	}
}

func (d *TouchZoom) Update(delta float64, _ Map) {
	if d.manager == nil {
		return
	}
	step := d.pendingLog * consumeFraction(delta, d.smoothing)
	d.pendingLog -= step
	if step != 0 {
		d.manager.State.Distance /= math.Exp(step)
	}
}

func (d *TouchZoom) Reset() {
	d.pendingLog = 0
}
