package controls

import (
	"github.com/Team-Fuho/BlueMapWeb/common"
	"github.com/Team-Fuho/BlueMapWeb/viewer/anim"
)

// beginTransition starts a mode transition of the configured duration.
//
// The projection blend always animates with raw progress while the camera's
// look parameters animate with the eased progress, so apply receives both:
// the blend sweeps at a constant rate while distance, angle, rotation and
// height ease in and out.
//
// Each transition captures the current generation; bumping the generation
// (by starting another transition, or by Stop) makes the old transition's
// callbacks discard themselves, so the last started transition deterministically
// wins and teardown cannot leak state mutations.
//
// Every non-stale completion also performs the started handover. A mode change
// that preempts the entry animation retires the entry's callbacks along with
// its completion, so the handover must ride on whichever transition actually
// finishes or the controls would stay pre-start forever.
func (c *mapControls) beginTransition(apply func(raw, eased float64), onComplete func()) {
	c.generation++
	gen := c.generation

	c.transition = anim.New(c.settings.TransitionDuration,
		func(progress float64) {
			if gen != c.generation {
				return
			}
			apply(progress, anim.EaseInOutQuad(progress))
		},
		func() {
			if gen != c.generation {
				return
			}
			c.started = true
			if onComplete != nil {
				onComplete()
			}
		})
}

// startEntryTransition runs the one-time framing animation launched by Start:
// it settles the camera into a normalized perspective view (blend 0, distance
// pulled into the entry range, angle under the ceiling for the target
// distance) and lands the focus height on the terrain suggestion gathered by
// the pre-start updates. The target height is read live each frame, so
// suggestions arriving while the animation runs still steer it. The controls
// become started when the entry animation, or any transition preempting it,
// completes.
func (c *mapControls) startEntryTransition() {
	s := &c.manager.State
	startOrtho := s.Ortho
	startDistance := s.Distance
	startAngle := s.Angle
	startHeight := s.Position.Y()

	targetDistance := c.clampEntryDistance(startDistance)
	targetAngle := minAngle(startAngle, targetDistance)

	c.beginTransition(func(raw, eased float64) {
		s.Ortho = common.Lerp(startOrtho, 0, raw)
		s.Distance = common.Lerp(startDistance, targetDistance, eased)
		s.Angle = common.Lerp(startAngle, targetAngle, eased)
		s.Position[1] = common.Lerp(startHeight, c.animationTargetHeight, eased)
	}, nil)
}

func (c *mapControls) SetPerspectiveView() {
	if c.manager == nil {
		return
	}
	// Stale drag momentum would fight the animation.
	c.Reset()

	s := &c.manager.State
	startOrtho := s.Ortho
	startAngle := s.Angle
	targetAngle := minAngle(startAngle, s.Distance)

	c.beginTransition(func(raw, eased float64) {
		s.Ortho = common.Lerp(startOrtho, 0, raw)
		s.Angle = common.Lerp(startAngle, targetAngle, eased)
	}, nil)
}

func (c *mapControls) SetOrthographicView(targetRotation, targetAngle float64) {
	if c.manager == nil {
		return
	}
	c.Reset()

	s := &c.manager.State
	startOrtho := s.Ortho
	startAngle := s.Angle
	startRotation := s.Rotation

	c.beginTransition(func(raw, eased float64) {
		s.Ortho = common.Lerp(startOrtho, 1, raw)
		s.Angle = common.Lerp(startAngle, targetAngle, eased)
		s.Rotation = common.Lerp(startRotation, targetRotation, eased)
	}, nil)
}
