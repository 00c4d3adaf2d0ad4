package controls

import (
	"math"
	"testing"

	"github.com/Team-Fuho/BlueMapWeb/viewer/camera"
)

func TestSetOrthographicViewSettlesOnTargets(t *testing.T) {
	c := New().(*mapControls)
	m := camera.NewManager(camera.WithDistance(300))
	startControls(c, m, nil)

	m.State.Ortho = 0
	m.State.Angle = 0.3
	m.State.Rotation = 1.0

	c.SetOrthographicView(0.5, 0)
	for i := 0; i < 5; i++ {
		c.Update(100, nil)
	}

	if m.State.Ortho != 1 {
		t.Errorf("Ortho = %v; expected 1 after the transition", m.State.Ortho)
	}
	if math.Abs(m.State.Angle) > 1e-9 {
		t.Errorf("Angle = %v; expected 0 after the transition", m.State.Angle)
	}
	if math.Abs(m.State.Rotation-0.5) > 1e-9 {
		t.Errorf("Rotation = %v; expected 0.5 after the transition", m.State.Rotation)
	}
	if m.State.Distance != 300 {
		t.Errorf("Distance = %v; the transition must not touch it", m.State.Distance)
	}
}

func TestSetPerspectiveViewCapsAngleAtCeiling(t *testing.T) {
	c := New().(*mapControls)
	m := camera.NewManager(camera.WithDistance(300))
	startControls(c, m, nil)

	m.State.Ortho = 1
	m.State.Angle = 1.2
	m.State.Rotation = 0.9

	c.SetPerspectiveView()
	for i := 0; i < 5; i++ {
		c.Update(100, nil)
	}

	if m.State.Ortho != 0 {
		t.Errorf("Ortho = %v; expected 0 after the transition", m.State.Ortho)
	}
	want := MaxPerspectiveAngleForDistance(300)
	if math.Abs(m.State.Angle-want) > 1e-9 {
		t.Errorf("Angle = %v; expected cap at ceiling %v", m.State.Angle, want)
	}
	if m.State.Rotation != 0.9 {
		t.Errorf("Rotation = %v; the transition must not touch it", m.State.Rotation)
	}
}

func TestSetPerspectiveViewIsIdempotentInPlace(t *testing.T) {
	c := New().(*mapControls)
	m := camera.NewManager(camera.WithDistance(300), camera.WithAngle(0.2))
	startControls(c, m, nil)

	m.State.Angle = 0.2
	c.SetPerspectiveView()
	for i := 0; i < 5; i++ {
		c.Update(100, nil)
	}

	if m.State.Ortho != 0 || math.Abs(m.State.Angle-0.2) > 1e-9 {
		t.Errorf("already-perspective state drifted: ortho=%v angle=%v",
			m.State.Ortho, m.State.Angle)
	}
}

func TestStopCancelsInFlightTransition(t *testing.T) {
	c := New().(*mapControls)
	m := camera.NewManager(camera.WithDistance(300))
	startControls(c, m, nil)

	c.SetOrthographicView(0, 0)
	c.Update(100, nil)
	c.Update(100, nil)
	mid := m.State.Ortho
	if mid <= 0 || mid >= 1 {
		t.Fatalf("expected a mid-transition blend, got %v", mid)
	}

	c.Stop()
	for i := 0; i < 10; i++ {
		c.Update(100, nil)
	}
	if m.State.Ortho != mid {
		t.Errorf("Ortho moved from %v to %v after Stop", mid, m.State.Ortho)
	}
	if c.Started() {
		t.Errorf("controls still started after Stop")
	}
}

func TestNewerTransitionRetiresOlderOne(t *testing.T) {
	c := New().(*mapControls)
	m := camera.NewManager(camera.WithDistance(300))
	startControls(c, m, nil)

	c.SetOrthographicView(0, 0)
	old := c.transition
	c.SetPerspectiveView()

	// The retired animation may still be held by a caller; its callbacks must
	// discard themselves instead of dragging the blend toward the old target.
	old.Update(250)
	if m.State.Ortho != 0 {
		t.Errorf("retired transition mutated Ortho to %v", m.State.Ortho)
	}
	old.Update(250)
	if m.State.Ortho != 0 {
		t.Errorf("retired transition's completion mutated Ortho to %v", m.State.Ortho)
	}
}

func TestModeChangePreemptingEntryStillStartsControls(t *testing.T) {
	c := New().(*mapControls)
	m := camera.NewManager(camera.WithDistance(300))

	// Request the orthographic view while the entry animation is mid-flight;
	// the preempting transition must carry the started handover.
	c.Start(m)
	c.Update(100, nil)
	c.SetOrthographicView(0, 0)
	for i := 0; i < 5; i++ {
		c.Update(100, nil)
	}

	if !c.Started() {
		t.Fatalf("controls never became started after preempting the entry animation")
	}
	if m.State.Ortho != 1 {
		t.Errorf("Ortho = %v; expected 1 after the preempting transition", m.State.Ortho)
	}

	// Input must flow through the driver pipeline again.
	c.mouseZoom.Scroll(-1)
	before := m.State.Distance
	for i := 0; i < 30; i++ {
		c.Update(16, nil)
	}
	if m.State.Distance <= before {
		t.Errorf("zoom input ignored after handover: distance %v -> %v", before, m.State.Distance)
	}
}

func TestModeChangeAfterStopIsNoop(t *testing.T) {
	c := New().(*mapControls)
	m := camera.NewManager(camera.WithDistance(300))
	startControls(c, m, nil)
	c.Stop()

	c.SetOrthographicView(0.5, 0)
	for i := 0; i < 10; i++ {
		c.Update(100, nil)
	}

	if c.Started() {
		t.Errorf("mode change after Stop restarted the controls")
	}
	if m.State.Ortho != 0 {
		t.Errorf("mode change after Stop mutated Ortho to %v", m.State.Ortho)
	}
}

func TestTransitionsBeforeStartAreNoops(t *testing.T) {
	c := New()
	c.SetPerspectiveView()
	c.SetOrthographicView(0, 0)
}
