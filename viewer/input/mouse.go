package input

import (
	"math"

	"github.com/Team-Fuho/BlueMapWeb/common"
	"github.com/Team-Fuho/BlueMapWeb/viewer/camera"
)

// consumeFraction converts a smoothing rate and frame delta into the fraction
// of the pending input applied this frame, capped at 1 so a long frame never
// overshoots the accumulated input.
func consumeFraction(delta, smoothing float64) float64 {
	return common.Clamp(delta*smoothing, 0, 1)
}

// MouseMove pans the focus point with left-button drags. Drag input
// accumulates into a pending screen-space delta that is consumed over a few
// frames, giving the pan a short momentum tail.
type MouseMove struct {
	root      Root
	manager   *camera.Manager
	speed     float64
	smoothing float64

	dragging           bool
	lastX, lastY       float64
	pendingX, pendingY float64
}

// NewMouseMove creates the left-drag pan driver.
//
// Parameters:
//   - root: input root to attach pointer listeners to (may be nil for headless use)
//   - speed: world units per pixel per unit of camera distance
//   - smoothing: fraction of pending input consumed per millisecond
//
// Returns:
//   - *MouseMove: the driver, not yet started
func NewMouseMove(root Root, speed, smoothing float64) *MouseMove {
	return &MouseMove{root: root, speed: speed, smoothing: smoothing}
}

func (d *MouseMove) Start(m *camera.Manager) {
	d.manager = m
	if d.root != nil {
		d.root.AddPointerListener(d)
	}
}

func (d *MouseMove) Stop() {
	if d.root != nil {
		d.root.RemovePointerListener(d)
	}
	d.manager = nil
	d.dragging = false
}

func (d *MouseMove) PointerDown(x, y float64, button Button) {
	if button == ButtonLeft {
		d.dragging = true
		d.lastX, d.lastY = x, y
	}
}

func (d *MouseMove) PointerMove(x, y float64) {
	if d.dragging {
		d.pendingX += x - d.lastX
		d.pendingY += y - d.lastY
		d.lastX, d.lastY = x, y
	}
}

func (d *MouseMove) PointerUp(x, y float64, button Button) {
	if button == ButtonLeft {
		d.dragging = false
	}
}

func (d *MouseMove) Update(delta float64, _ Map) {
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

	// The ground point under the cursor follows the drag, so the focus moves
	// opposite the screen delta, mapped through the camera yaw.
	s.Position[0] -= (dx*cosR + dy*sinR) * scale
	s.Position[2] -= (-dx*sinR + dy*cosR) * scale
}

func (d *MouseMove) Reset() {
	d.pendingX, d.pendingY = 0, 0
}

// MouseRotate yaws the camera with the horizontal component of right-button
// drags.
type MouseRotate struct {
	root      Root
	manager   *camera.Manager
	speed     float64
	smoothing float64

	dragging bool
	lastX    float64
	pending  float64
}

// NewMouseRotate creates the right-drag rotate driver.
//
// Parameters:
//   - root: input root to attach pointer listeners to (may be nil)
//   - speed: radians per pixel
//   - smoothing: fraction of pending input consumed per millisecond
//
// Returns:
//   - *MouseRotate: the driver, not yet started
func NewMouseRotate(root Root, speed, smoothing float64) *MouseRotate {
	return &MouseRotate{root: root, speed: speed, smoothing: smoothing}
}

func (d *MouseRotate) Start(m *camera.Manager) {
	d.manager = m
	if d.root != nil {
		d.root.AddPointerListener(d)
	}
}

func (d *MouseRotate) Stop() {
	if d.root != nil {
		d.root.RemovePointerListener(d)
	}
	d.manager = nil
	d.dragging = false
}

func (d *MouseRotate) PointerDown(x, y float64, button Button) {
	if button == ButtonRight {
		d.dragging = true
		d.lastX = x
	}
}

func (d *MouseRotate) PointerMove(x, y float64) {
	if d.dragging {
		d.pending += x - d.lastX
		d.lastX = x
	}
}

func (d *MouseRotate) PointerUp(x, y float64, button Button) {
	if button == ButtonRight {
		d.dragging = false
	}
}

func (d *MouseRotate) Update(delta float64, _ Map) {
	if d.manager == nil {
		return
	}
	step := d.pending * consumeFraction(delta, d.smoothing)
	d.pending -= step
	d.manager.State.Rotation -= step * d.speed
}

func (d *MouseRotate) Reset() {
	d.pending = 0
}

// MouseTilt drives the tilt angle with the vertical component of right-button
// drags. Dragging up tilts the camera toward the horizon; the orchestrator
// clamps the result against the distance-dependent ceiling afterwards.
type MouseTilt struct {
	root      Root
	manager   *camera.Manager
	speed     float64
	smoothing float64

	dragging bool
	lastY    float64
	pending  float64
}

// NewMouseTilt creates the right-drag tilt driver.
//
// Parameters:
//   - root: input root to attach pointer listeners to (may be nil)
//   - speed: radians per pixel
//   - smoothing: fraction of pending input consumed per millisecond
//
// Returns:
//   - *MouseTilt: the driver, not yet started
func NewMouseTilt(root Root, speed, smoothing float64) *MouseTilt {
	return &MouseTilt{root: root, speed: speed, smoothing: smoothing}
}

func (d *MouseTilt) Start(m *camera.Manager) {
	d.manager = m
	if d.root != nil {
		d.root.AddPointerListener(d)
	}
}

func (d *MouseTilt) Stop() {
	if d.root != nil {
		d.root.RemovePointerListener(d)
	}
	d.manager = nil
	d.dragging = false
}

func (d *MouseTilt) PointerDown(x, y float64, button Button) {
	if button == ButtonRight {
		d.dragging = true
		d.lastY = y
	}
}

func (d *MouseTilt) PointerMove(x, y float64) {
	if d.dragging {
		d.pending += y - d.lastY
		d.lastY = y
	}
}

func (d *MouseTilt) PointerUp(x, y float64, button Button) {
	if button == ButtonRight {
		d.dragging = false
	}
}

func (d *MouseTilt) Update(delta float64, _ Map) {
	if d.manager == nil {
		return
	}
	step := d.pending * consumeFraction(delta, d.smoothing)
	d.pending -= step
	d.manager.State.Angle -= step * d.speed
}

func (d *MouseTilt) Reset() {
	d.pending = 0
}

// MouseZoom drives the camera distance from the scroll wheel. Wheel notches
// accumulate and are consumed exponentially, so zooming feels proportional at
// any distance.
type MouseZoom struct {
	root      Root
	manager   *camera.Manager
	step      float64
	smoothing float64

	pending float64
}

// NewMouseZoom creates the scroll-wheel zoom driver.
//
// Parameters:
//   - root: input root to attach the scroll listener to (may be nil)
//   - step: distance octaves per wheel notch (0.15 means one notch scales distance by 2^0.15)
//   - smoothing: fraction of pending input consumed per millisecond
//
// Returns:
//   - *MouseZoom: the driver, not yet started
func NewMouseZoom(root Root, step, smoothing float64) *MouseZoom {
	return &MouseZoom{root: root, step: step, smoothing: smoothing}
}

func (d *MouseZoom) Start(m *camera.Manager) {
	d.manager = m
	if d.root != nil {
		d.root.AddScrollListener(d)
	}
}

func (d *MouseZoom) Stop() {
	if d.root != nil {
		d.root.RemoveScrollListener(d)
	}
	d.manager = nil
}

// Scroll accumulates wheel input; scrolling up zooms in.
func (d *MouseZoom) Scroll(delta float64) {
	d.pending -= delta
}

func (d *MouseZoom) Update(delta float64, _ Map) {
	if d.manager == nil {
		return
	}
	step := d.pending * consumeFraction(delta, d.smoothing)
	d.pending -= step
	if step != 0 {
		d.manager.State.Distance *= math.Pow(2, step*d.step)
	}
}

func (d *MouseZoom) Reset() {
	d.pending = 0
}
