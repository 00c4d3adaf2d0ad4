package controls

import (
	"math"
	"testing"
)

func TestMaxAngleAtCloseDistance(t *testing.T) {
	for _, d := range []float64{0, 1, 5} {
		got := MaxPerspectiveAngleForDistance(d)
		if math.Abs(got-math.Pi/2) > 0.01 {
			t.Errorf("ceiling(%v) = %v; expected ~π/2", d, got)
		}
	}
}

func TestMaxAngleZeroWhenFar(t *testing.T) {
	for _, d := range []float64{505, 506, 1000, 10000} {
		if got := MaxPerspectiveAngleForDistance(d); got != 0 {
			t.Errorf("ceiling(%v) = %v; expected 0", d, got)
		}
	}
}

func TestMaxAngleKnownValue(t *testing.T) {
	// ceiling(300) = (1 - sqrt(295/500)) * π/2
	want := (1 - math.Sqrt(295.0/500.0)) * math.Pi / 2
	if got := MaxPerspectiveAngleForDistance(300); math.Abs(got-want) > 1e-12 {
		t.Errorf("ceiling(300) = %v; expected %v", got, want)
	}
}

func TestMaxAngleNonIncreasing(t *testing.T) {
	prev := math.Inf(1)
	for d := 5.0; d <= 505; d += 0.5 {
		v := MaxPerspectiveAngleForDistance(d)
		if v > prev+1e-12 {
			t.Fatalf("ceiling increased at distance %v: %v > %v", d, v, prev)
		}
		if v < 0 || v > math.Pi/2 {
			t.Fatalf("ceiling(%v) = %v outside [0, π/2]", d, v)
		}
		prev = v
	}
}

func TestMaxAngleContinuity(t *testing.T) {
	// No jumps larger than the local slope allows across the falloff range.
	step := 0.01
	prev := MaxPerspectiveAngleForDistance(5)
	for d := 5 + step; d <= 510; d += step {
		v := MaxPerspectiveAngleForDistance(d)
		if math.Abs(v-prev) > 0.05 {
			t.Fatalf("ceiling discontinuity near %v: %v -> %v", d, prev, v)
		}
		prev = v
	}
}
