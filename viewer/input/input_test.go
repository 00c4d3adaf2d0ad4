package input

import (
	"math"
	"testing"

	"github.com/Team-Fuho/BlueMapWeb/common"
	"github.com/Team-Fuho/BlueMapWeb/viewer/camera"
	"github.com/Team-Fuho/BlueMapWeb/viewer/input/gesture"
)

// drain runs enough large updates to consume all pending smoothed input.
func drain(d Driver) {
	for i := 0; i < 50; i++ {
		d.Update(1000, nil)
	}
}

func TestMouseMoveDragPansFocus(t *testing.T) {
	m := camera.NewManager(camera.WithDistance(100), camera.WithRotation(0))
	d := NewMouseMove(nil, 0.002, 0.02)
	d.Start(m)

	d.PointerDown(100, 100, ButtonLeft)
	d.PointerMove(110, 100)
	d.PointerUp(110, 100, ButtonLeft)
	drain(d)

	// Dragging right moves the focus toward -X at yaw 0.
	wantX := -10 * 0.002 * 100
	if math.Abs(m.State.Position.X()-wantX) > 1e-6 {
		t.Errorf("Position.X = %v; expected %v", m.State.Position.X(), wantX)
	}
	if m.State.Position.Z() != 0 {
		t.Errorf("horizontal drag moved Z: %v", m.State.Position.Z())
	}
}

func TestMouseMoveIgnoresRightButton(t *testing.T) {
	m := camera.NewManager()
	d := NewMouseMove(nil, 0.002, 0.02)
	d.Start(m)

	d.PointerDown(0, 0, ButtonRight)
	d.PointerMove(50, 50)
	drain(d)

	if m.State.Position != camera.NewManager().State.Position {
		t.Errorf("right-drag moved the focus: %v", m.State.Position)
	}
}

func TestMouseMoveResetDiscardsMomentum(t *testing.T) {
	m := camera.NewManager()
	d := NewMouseMove(nil, 0.002, 0.02)
	d.Start(m)

	d.PointerDown(0, 0, ButtonLeft)
	d.PointerMove(100, 0)
	d.Reset()
	drain(d)

	if m.State.Position.X() != 0 {
		t.Errorf("Reset did not discard pending drag: %v", m.State.Position.X())
	}
}

func TestMouseRotateRightDrag(t *testing.T) {
	m := camera.NewManager()
	d := NewMouseRotate(nil, 0.004, 0.02)
	d.Start(m)

	d.PointerDown(0, 0, ButtonRight)
	d.PointerMove(100, 0)
	drain(d)

	want := -100 * 0.004
	if math.Abs(m.State.Rotation-want) > 1e-6 {
		t.Errorf("Rotation = %v; expected %v", m.State.Rotation, want)
	}
}

func TestMouseZoomScrollIsExponential(t *testing.T) {
	m := camera.NewManager(camera.WithDistance(1000))
	d := NewMouseZoom(nil, 0.15, 0.02)
	d.Start(m)

	d.Scroll(1) // one notch up = zoom in
	drain(d)

	want := 1000 * math.Pow(2, -0.15)
	if math.Abs(m.State.Distance-want) > 1e-6 {
		t.Errorf("Distance = %v; expected %v", m.State.Distance, want)
	}

	d.Scroll(-1) // one notch down restores the original distance
	drain(d)
	if math.Abs(m.State.Distance-1000) > 1e-6 {
		t.Errorf("Distance after opposite scroll = %v; expected 1000", m.State.Distance)
	}
}

func TestKeyMoveForward(t *testing.T) {
	m := camera.NewManager(camera.WithDistance(100), camera.WithRotation(0))
	d := NewKeyMove(nil, 0.001)
	d.Start(m)

	d.KeyDown(common.KeyW)
	d.Update(100, nil)
	d.KeyUp(common.KeyW)
	d.Update(100, nil)

	// Forward at yaw 0 moves the focus toward -Z; releasing stops movement.
	want := -0.001 * 100 * 100
	if math.Abs(m.State.Position.Z()-want) > 1e-9 {
		t.Errorf("Position.Z = %v; expected %v", m.State.Position.Z(), want)
	}
	if m.State.Position.X() != 0 {
		t.Errorf("forward moved X: %v", m.State.Position.X())
	}
}

func TestKeyMoveOpposingKeysCancel(t *testing.T) {
	m := camera.NewManager()
	d := NewKeyMove(nil, 0.001)
	d.Start(m)

	d.KeyDown(common.KeyA)
	d.KeyDown(common.KeyD)
	d.Update(100, nil)

	if m.State.Position.X() != 0 || m.State.Position.Z() != 0 {
		t.Errorf("opposing keys moved the focus: %v", m.State.Position)
	}
}

func TestKeyZoomHold(t *testing.T) {
	m := camera.NewManager(camera.WithDistance(500))
	d := NewKeyZoom(nil, 0.001)
	d.Start(m)

	d.KeyDown(common.KeyMinus)
	d.Update(100, nil)

	want := 500 * math.Pow(2, 0.1)
	if math.Abs(m.State.Distance-want) > 1e-9 {
		t.Errorf("Distance = %v; expected %v", m.State.Distance, want)
	}
}

func TestKeyboardStopClearsHeldKeys(t *testing.T) {
	m := camera.NewManager()
	d := NewKeyRotate(nil, 0.001)
	d.Start(m)
	d.KeyDown(common.KeyQ)
	d.Stop()
	d.Start(m)
	d.Update(100, nil)
	if m.State.Rotation != 0 {
		t.Errorf("restarted driver kept stale held key: rotation %v", m.State.Rotation)
	}
}

func TestTouchZoomPinchCancelsExactly(t *testing.T) {
	m := camera.NewManager(camera.WithDistance(800))
	d := NewTouchZoom(nil, 0.02)
	d.Start(m)

	d.Pinch(1.5)
	d.Pinch(1 / 1.5)
	drain(d)

	if math.Abs(m.State.Distance-800) > 1e-9 {
		t.Errorf("cancelling pinches changed distance: %v", m.State.Distance)
	}
}

func TestTouchMoveIgnoresTwoFingerPan(t *testing.T) {
	m := camera.NewManager()
	d := NewTouchMove(nil, 0.002, 0.02)
	d.Start(m)

	d.Pan(30, 0, 2)
	drain(d)

	if m.State.Position.X() != 0 {
		t.Errorf("two-finger pan moved the focus: %v", m.State.Position.X())
	}
}

func TestTouchDriversSubscribeToGestures(t *testing.T) {
	g := gesture.NewManager()
	m := camera.NewManager(camera.WithDistance(100))
	rot := NewTouchRotate(g, 1, 0.02)
	rot.Start(m)

	g.TouchDown(gesture.TouchPoint{ID: 1, X: 0, Y: 0})
	g.TouchDown(gesture.TouchPoint{ID: 2, X: 100, Y: 0})
	g.TouchMove(gesture.TouchPoint{ID: 2, X: 100, Y: 50})
	drain(rot)

	if rot.manager.State.Rotation == 0 {
		t.Errorf("twist gesture did not rotate the camera")
	}

	before := m.State.Rotation
	rot.Stop()
	rot.manager = m // reattach state without resubscribing
	g.TouchMove(gesture.TouchPoint{ID: 2, X: 50, Y: 80})
	drain(rot)
	if m.State.Rotation != before {
		t.Errorf("stopped driver still received gestures")
	}
}

func TestDriverUpdateBeforeStartIsNoop(t *testing.T) {
	drivers := []Driver{
		NewMouseMove(nil, 1, 1),
		NewMouseRotate(nil, 1, 1),
		NewMouseTilt(nil, 1, 1),
		NewMouseZoom(nil, 1, 1),
		NewKeyMove(nil, 1),
		NewKeyRotate(nil, 1),
		NewKeyTilt(nil, 1),
		NewKeyZoom(nil, 1),
		NewTouchMove(nil, 1, 1),
		NewTouchRotate(nil, 1, 1),
		NewTouchTilt(nil, 1, 1),
		NewTouchZoom(nil, 1),
	}
	for _, d := range drivers {
		d.Update(16, nil) // must not panic without a bound manager
		d.Reset()
		d.Stop()
	}
}
