// Package controls is the camera-control orchestrator of the map viewer. It
// owns the full set of input drivers, sequences their per-frame updates in a
// fixed order, applies the geometric constraints that keep the camera out of
// invalid configurations (soft-bounded distance, zoom-dependent tilt ceiling,
// height-follow coupling), and runs the animated transitions between camera
// modes.
//
// Everything here executes inside the host's single frame callback: there is
// no parallelism, and the fixed driver order is the only guard on the shared
// camera state.
package controls

import (
	"math"

	"github.com/Team-Fuho/BlueMapWeb/common"
	"github.com/Team-Fuho/BlueMapWeb/config"
	"github.com/Team-Fuho/BlueMapWeb/viewer/anim"
	"github.com/Team-Fuho/BlueMapWeb/viewer/camera"
	"github.com/Team-Fuho/BlueMapWeb/viewer/input"
	"github.com/Team-Fuho/BlueMapWeb/viewer/input/gesture"
	"github.com/Team-Fuho/BlueMapWeb/viewer/terrain"
)

// Controls is the host-facing surface of the camera-control orchestrator.
type Controls interface {
	// Start binds the camera-state owner, suppresses the input root's context
	// menu (right-drag is reserved for rotate input), starts every input
	// driver, and launches the entry transition. Until that transition
	// completes, per-frame updates only refresh the terrain height
	// suggestion. Callers must not call Start twice without an intervening
	// Stop.
	//
	// Parameters:
	//   - m: the camera-state owner to bind
	Start(m *camera.Manager)

	// Stop releases the context-menu suppression, stops every input driver,
	// unbinds the camera-state owner, clears the started flag, and cancels any
	// in-flight transition. After Stop, Update and the mode-change calls are
	// no-ops until the next Start. Safe to call even if never started.
	Stop()

	// Update runs one frame of the orchestration sequence. Before Start it is
	// a no-op with respect to camera state: only the height suggestion is
	// refreshed.
	//
	// Parameters:
	//   - delta: elapsed time since the previous frame in milliseconds
	//   - world: the scene/map collaborator for spatial queries (may be nil)
	Update(delta float64, world input.Map)

	// Reset asks every continuous driver (mouse and touch) to discard
	// in-flight momentum. Keyboard drivers have no momentum and the height
	// driver is deliberately untouched.
	Reset()

	// SetPerspectiveView transitions to the perspective camera mode, capping
	// the tilt angle at the ceiling for the current distance. Rotation and
	// distance are left untouched.
	SetPerspectiveView()

	// SetOrthographicView transitions to the top-down orthographic mode.
	//
	// Parameters:
	//   - targetRotation: yaw to settle at, usually 0
	//   - targetAngle: tilt to settle at, usually 0
	SetOrthographicView(targetRotation, targetAngle float64)

	// MaxPerspectiveAngleForDistance returns the tilt ceiling for the given
	// distance.
	//
	// Parameters:
	//   - distance: camera distance from the focus point
	//
	// Returns:
	//   - float64: maximum tilt angle in radians
	MaxPerspectiveAngleForDistance(distance float64) float64

	// Started reports whether the entry transition has completed.
	//
	// Returns:
	//   - bool: true once the controls are fully interactive
	Started() bool

	// Gestures returns the touch gesture manager the touch drivers subscribe
	// to. The host feeds raw touch events into it.
	//
	// Returns:
	//   - *gesture.Manager: the gesture manager
	Gestures() *gesture.Manager
}

// mapControls is the single implementation of Controls.
type mapControls struct {
	settings config.Settings
	root     input.Root
	gestures *gesture.Manager

	manager *camera.Manager
	started bool

	// animationTargetHeight caches the latest terrain suggestion gathered by
	// pre-start updates; the entry transition reads it live so the camera
	// settles on real terrain instead of an arbitrary default.
	animationTargetHeight float64

	mouseMove   *input.MouseMove
	mouseRotate *input.MouseRotate
	mouseTilt   *input.MouseTilt
	mouseZoom   *input.MouseZoom
	keyMove     *input.KeyMove
	keyRotate   *input.KeyRotate
	keyTilt     *input.KeyTilt
	keyZoom     *input.KeyZoom
	touchMove   *input.TouchMove
	touchRotate *input.TouchRotate
	touchTilt   *input.TouchTilt
	touchZoom   *input.TouchZoom

	height *terrain.HeightControls

	// Update order groups. Each group is applied for every modality before
	// the constraint that depends on it runs.
	moveDrivers   []input.Driver
	zoomDrivers   []input.Driver
	rotateDrivers []input.Driver
	tiltDrivers   []input.Driver

	// continuousDrivers carry momentum between frames and are the only ones
	// Reset touches.
	continuousDrivers []input.Driver

	// generation retires stale transitions: every new transition (and Stop)
	// bumps it, and progress callbacks from older generations are discarded.
	generation uint64
	transition *anim.Animation
}

var _ Controls = &mapControls{}

// New creates the camera-control orchestrator with its full driver set wired
// to the configured input root and gesture manager.
//
// Parameters:
//   - options: functional options to configure the orchestrator
//
// Returns:
//   - Controls: the orchestrator, not yet started
func New(options ...ControlsOption) Controls {
	c := &mapControls{
		settings: config.Default(),
	}
	for _, option := range options {
		option(c)
	}
	if c.gestures == nil {
		c.gestures = gesture.NewManager()
	}

	s := c.settings
	c.mouseMove = input.NewMouseMove(c.root, s.MouseMoveSpeed, s.InputSmoothing)
	c.mouseRotate = input.NewMouseRotate(c.root, s.MouseRotateSpeed, s.InputSmoothing)
	c.mouseTilt = input.NewMouseTilt(c.root, s.MouseTiltSpeed, s.InputSmoothing)
	c.mouseZoom = input.NewMouseZoom(c.root, s.MouseZoomStep, s.InputSmoothing)
	c.keyMove = input.NewKeyMove(c.root, s.KeyMoveSpeed)
	c.keyRotate = input.NewKeyRotate(c.root, s.KeyRotateSpeed)
	c.keyTilt = input.NewKeyTilt(c.root, s.KeyTiltSpeed)
	c.keyZoom = input.NewKeyZoom(c.root, s.KeyZoomSpeed)
	c.touchMove = input.NewTouchMove(c.gestures, s.TouchMoveSpeed, s.InputSmoothing)
	c.touchRotate = input.NewTouchRotate(c.gestures, s.TouchRotateSpeed, s.InputSmoothing)
	c.touchTilt = input.NewTouchTilt(c.gestures, s.TouchTiltSpeed, s.InputSmoothing)
	c.touchZoom = input.NewTouchZoom(c.gestures, s.InputSmoothing)

	c.height = terrain.NewHeightControls(s.HeightFollowRate)

	c.moveDrivers = []input.Driver{c.mouseMove, c.keyMove, c.touchMove}
	c.zoomDrivers = []input.Driver{c.mouseZoom, c.keyZoom, c.touchZoom}
	c.rotateDrivers = []input.Driver{c.mouseRotate, c.keyRotate, c.touchRotate}
	c.tiltDrivers = []input.Driver{c.mouseTilt, c.keyTilt, c.touchTilt}
	c.continuousDrivers = []input.Driver{
		c.mouseMove, c.mouseRotate, c.mouseTilt, c.mouseZoom,
		c.touchMove, c.touchRotate, c.touchTilt, c.touchZoom,
	}

	return c
}

func (c *mapControls) Start(m *camera.Manager) {
	c.manager = m
	if c.root != nil {
		c.root.SetContextMenuSuppressed(true)
	}
	c.eachDriver(func(d input.Driver) { d.Start(m) })
	c.height.Start(m)
	c.startEntryTransition()
}

func (c *mapControls) Stop() {
	if c.root != nil {
		c.root.SetContextMenuSuppressed(false)
	}
	c.eachDriver(func(d input.Driver) { d.Stop() })
	c.height.Stop()
	c.started = false
	c.manager = nil

	// Retire any in-flight transition so it cannot mutate state after
	// teardown.
	c.generation++
	if c.transition != nil {
		c.transition.Cancel()
		c.transition = nil
	}
}

func (c *mapControls) Update(delta float64, world input.Map) {
	if c.manager == nil {
		return
	}

	if c.transition != nil && !c.transition.Update(delta) {
		c.transition = nil
	}

	if !c.started {
		// Pre-start: only refresh the height suggestion so the entry
		// transition has a real terrain height to aim at.
		c.height.MaxAngle = MaxPerspectiveAngleForDistance(c.manager.State.Distance)
		c.height.UpdateHeights(delta, world)
		c.animationTargetHeight = c.height.SuggestedHeight()
		return
	}

	s := &c.manager.State

	for _, d := range c.moveDrivers {
		d.Update(delta, world)
	}
	for _, d := range c.zoomDrivers {
		d.Update(delta, world)
	}
	s.Distance = common.SoftClamp(s.Distance, c.settings.MinDistance, c.settings.MaxDistance, c.settings.ClampStiffness)

	// Recomputed every frame: the ceiling depends on the distance the zoom
	// drivers just changed.
	maxAngle := MaxPerspectiveAngleForDistance(s.Distance)

	if s.Ortho == 0 {
		for _, d := range c.rotateDrivers {
			d.Update(delta, world)
		}
		for _, d := range c.tiltDrivers {
			d.Update(delta, world)
		}
		s.Angle = common.SoftClamp(s.Angle, 0, maxAngle, c.settings.ClampStiffness)
	}

	if s.Ortho == 0 || s.Angle == 0 {
		// Height-follow runs after the angle is finalized: the safe focus
		// height depends on how steeply the camera can look down.
		s.Position[1] = 0
		c.height.MaxAngle = maxAngle
		c.height.Update(delta, world)
	}
}

func (c *mapControls) Reset() {
	for _, d := range c.continuousDrivers {
		d.Reset()
	}
}

func (c *mapControls) MaxPerspectiveAngleForDistance(distance float64) float64 {
	return MaxPerspectiveAngleForDistance(distance)
}

func (c *mapControls) Started() bool {
	return c.started
}

func (c *mapControls) Gestures() *gesture.Manager {
	return c.gestures
}

// eachDriver visits the twelve input drivers in update order.
func (c *mapControls) eachDriver(visit func(input.Driver)) {
	for _, group := range [][]input.Driver{c.moveDrivers, c.zoomDrivers, c.rotateDrivers, c.tiltDrivers} {
		for _, d := range group {
			visit(d)
		}
	}
}

// clampEntryDistance limits the entry transition's target distance so the
// initial framing is neither inside the terrain nor absurdly far out.
func (c *mapControls) clampEntryDistance(distance float64) float64 {
	return common.Clamp(distance, c.settings.EntryMinDistance, c.settings.MaxDistance)
}

// minAngle returns the lesser of the current angle and the ceiling at the
// given distance, the target every perspective-bound transition uses.
func minAngle(current, distance float64) float64 {
	return math.Min(current, MaxPerspectiveAngleForDistance(distance))
}
