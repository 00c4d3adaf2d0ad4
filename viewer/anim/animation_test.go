package anim

import (
	"math"
	"testing"
)

func TestAnimationRunsToCompletion(t *testing.T) {
	var progresses []float64
	completed := false

	a := New(100, func(p float64) { progresses = append(progresses, p) }, func() { completed = true })

	for i := 0; i < 4; i++ {
		a.Update(25)
	}

	if !completed {
		t.Fatalf("animation did not complete after full duration")
	}
	if len(progresses) != 4 {
		t.Fatalf("expected 4 progress callbacks, got %d", len(progresses))
	}
	if progresses[len(progresses)-1] != 1 {
		t.Errorf("final progress = %v; expected exactly 1", progresses[len(progresses)-1])
	}
	for i := 1; i < len(progresses); i++ {
		if progresses[i] < progresses[i-1] {
			t.Errorf("progress not monotonic: %v", progresses)
			break
		}
	}
}

func TestAnimationOvershootClampsToOne(t *testing.T) {
	var last float64
	a := New(100, func(p float64) { last = p }, nil)
	a.Update(250)
	if last != 1 {
		t.Errorf("overshooting update reported progress %v; expected 1", last)
	}
	if !a.Done() {
		t.Errorf("animation not done after overshooting update")
	}
}

func TestAnimationUpdateAfterDoneIsNoop(t *testing.T) {
	calls := 0
	completions := 0
	a := New(50, func(p float64) { calls++ }, func() { completions++ })
	a.Update(50)
	a.Update(50)
	a.Update(50)
	if calls != 1 {
		t.Errorf("progress callback ran %d times; expected 1", calls)
	}
	if completions != 1 {
		t.Errorf("completion callback ran %d times; expected 1", completions)
	}
}

func TestAnimationCancelSuppressesCompletion(t *testing.T) {
	completed := false
	a := New(100, nil, func() { completed = true })
	a.Update(30)
	a.Cancel()
	if running := a.Update(100); running {
		t.Errorf("cancelled animation still reported running")
	}
	if completed {
		t.Errorf("completion callback fired after Cancel")
	}
}

func TestAnimationZeroDurationCompletesImmediately(t *testing.T) {
	var last float64 = -1
	completed := false
	a := New(0, func(p float64) { last = p }, func() { completed = true })
	a.Update(16)
	if last != 1 || !completed {
		t.Errorf("zero-duration animation: progress=%v completed=%v", last, completed)
	}
}

func TestEaseInOutQuad(t *testing.T) {
	tests := []struct{ in, out float64 }{
		{0, 0},
		{0.25, 0.125},
		{0.5, 0.5},
		{0.75, 0.875},
		{1, 1},
	}
	for _, test := range tests {
		if got := EaseInOutQuad(test.in); math.Abs(got-test.out) > 1e-9 {
			t.Errorf("EaseInOutQuad(%v)=%v; expected %v", test.in, got, test.out)
		}
	}
}

func TestEaseInOutQuadMonotonic(t *testing.T) {
	prev := -1.0
	for i := 0; i <= 100; i++ {
		v := EaseInOutQuad(float64(i) / 100)
		if v < prev {
			t.Fatalf("easing not monotonic at t=%v", float64(i)/100)
		}
		prev = v
	}
}
