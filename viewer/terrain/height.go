// Package terrain keeps the camera's focus point resting near the terrain
// height sampled under it. The controls orchestrator advances it after the
// tilt angle is finalized each frame, because the safe focus height depends on
// how steeply the camera may look down without clipping through terrain.
package terrain

import (
	"math"

	"github.com/Team-Fuho/BlueMapWeb/common"
	"github.com/Team-Fuho/BlueMapWeb/viewer/camera"
	"github.com/Team-Fuho/BlueMapWeb/viewer/input"
)

// HeightControls samples the map under the camera's focus point and eases the
// focus height toward the sampled terrain.
type HeightControls struct {
	// MaxAngle is the tilt ceiling for the current distance, set by the
	// orchestrator before each Update. Larger values widen the terrain
	// footprint the camera can sweep, so sampling extends toward the eye's
	// ground projection to keep the camera above ground at full tilt.
	MaxAngle float64

	manager   *camera.Manager
	rate      float64
	suggested float64
	sampled   bool
}

var _ input.Driver = &HeightControls{}

// NewHeightControls creates the height-follow driver.
//
// Parameters:
//   - rate: per-millisecond easing rate of the focus height toward the suggestion
//
// Returns:
//   - *HeightControls: the driver, not yet started
func NewHeightControls(rate float64) *HeightControls {
	return &HeightControls{rate: rate}
}

// Start binds the camera-state owner.
func (h *HeightControls) Start(m *camera.Manager) {
	h.manager = m
}

// Stop unbinds the camera-state owner. Idempotent.
func (h *HeightControls) Stop() {
	h.manager = nil
}

// Reset is a no-op: the height follower carries no input momentum.
func (h *HeightControls) Reset() {}

// UpdateHeights refreshes the suggested height without moving the camera.
// This is the pre-start variant: during the entry transition the orchestrator
// needs a live terrain suggestion to aim the animation at, but must not mutate
// the camera state itself.
//
// Parameters:
//   - delta: elapsed frame time in milliseconds (unused by sampling, kept for the driver contract)
//   - world: the map to sample, may be nil
func (h *HeightControls) UpdateHeights(delta float64, world input.Map) {
	h.sample(world)
}

// Update refreshes the suggestion and eases the focus height toward it.
//
// Parameters:
//   - delta: elapsed frame time in milliseconds
//   - world: the map to sample, may be nil
func (h *HeightControls) Update(delta float64, world input.Map) {
	if h.manager == nil {
		return
	}
	h.sample(world)
	if !h.sampled {
		return
	}

	s := &h.manager.State
	t := common.Clamp(delta*h.rate, 0, 1)
	s.Position[1] = common.Lerp(s.Position.Y(), h.suggested, t)
}

// SuggestedHeight returns the last sampled terrain suggestion. Zero until the
// first successful sample.
//
// Returns:
//   - float64: suggested focus height above the terrain datum
func (h *HeightControls) SuggestedHeight() float64 {
	return h.suggested
}

// sample updates the suggestion from the terrain under the focus point and,
// when tilt freedom allows the camera to swing low, under the eye's ground
// projection. The higher of the two wins so the camera cannot end up below a
// ridge between the focus and the eye.
func (h *HeightControls) sample(world input.Map) {
	if h.manager == nil || world == nil {
		return
	}
	s := &h.manager.State

	height, ok := world.HeightAt(s.Position.X(), s.Position.Z())

	if h.MaxAngle > 0 {
		offset := s.Distance * math.Sin(h.MaxAngle)
		sinR, cosR := math.Sincos(s.Rotation)
		bx := s.Position.X() + sinR*offset
		bz := s.Position.Z() + cosR*offset
		if back, backOK := world.HeightAt(bx, bz); backOK && (!ok || back > height) {
			height, ok = back, true
		}
	}

	if ok {
		h.suggested = height
		h.sampled = true
	}
}
