// Package anim provides the time-based animation primitive driving camera
// mode transitions. An Animation is a polled state machine: the host advances
// it once per frame and callbacks run synchronously on the caller's stack.
// There are no goroutines and no timers; progress is derived purely from the
// accumulated frame deltas.
package anim

// Animation runs a progress callback once per frame until its duration has
// elapsed, then invokes an optional completion callback exactly once.
type Animation struct {
	duration   float64
	elapsed    float64
	onProgress func(progress float64)
	onComplete func()
	done       bool
}

// New creates an Animation of the given duration in milliseconds.
// The animation does not advance until Update is called.
//
// Parameters:
//   - duration: total run time in milliseconds; values <= 0 complete on the first Update
//   - onProgress: called each Update with raw progress in [0, 1] (may be nil)
//   - onComplete: called once when progress reaches 1 (may be nil)
//
// Returns:
//   - *Animation: the animation, ready to be polled
func New(duration float64, onProgress func(progress float64), onComplete func()) *Animation {
	return &Animation{
		duration:   duration,
		onProgress: onProgress,
		onComplete: onComplete,
	}
}

// Update advances the animation by delta milliseconds, invoking the progress
// callback with the new raw progress. When the duration is reached the
// progress callback observes exactly 1, the completion callback fires, and
// the animation is done. Calling Update on a finished or nil animation does
// nothing.
//
// Parameters:
//   - delta: elapsed time since the previous frame in milliseconds
//
// Returns:
//   - bool: true if the animation is still running after this update
func (a *Animation) Update(delta float64) bool {
	if a == nil || a.done {
		return false
	}

	a.elapsed += delta
	progress := 1.0
	if a.duration > 0 && a.elapsed < a.duration {
		progress = a.elapsed / a.duration
	}

	if a.onProgress != nil {
		a.onProgress(progress)
	}

	if progress >= 1 {
		a.done = true
		if a.onComplete != nil {
			a.onComplete()
		}
		return false
	}
	return true
}

// Cancel marks the animation as done without firing the completion callback.
// Subsequent Update calls are no-ops.
func (a *Animation) Cancel() {
	if a != nil {
		a.done = true
	}
}

// Done reports whether the animation has finished or been cancelled.
//
// Returns:
//   - bool: true if the animation will no longer advance
func (a *Animation) Done() bool {
	return a == nil || a.done
}
