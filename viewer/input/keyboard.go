package input

import (
	"math"

	"github.com/Team-Fuho/BlueMapWeb/common"
	"github.com/Team-Fuho/BlueMapWeb/viewer/camera"
)

// keySet tracks currently held keys for the keyboard drivers. Keyboard input
// applies while a key is held and carries no momentum.
type keySet struct {
	held map[uint32]bool
}

func (k *keySet) KeyDown(code uint32) {
	if k.held == nil {
		k.held = make(map[uint32]bool)
	}
	k.held[code] = true
}

func (k *keySet) KeyUp(code uint32) {
	delete(k.held, code)
}

func (k *keySet) any(codes ...uint32) bool {
	for _, c := range codes {
		if k.held[c] {
			return true
		}
	}
	return false
}

func (k *keySet) clear() {
	k.held = nil
}

// axis returns -1, 0 or +1 from a pair of opposing key groups.
func (k *keySet) axis(negative, positive []uint32) float64 {
	v := 0.0
	if k.any(negative...) {
		v--
	}
	if k.any(positive...) {
		v++
	}
	return v
}

// KeyMove pans the focus point with WASD and the arrow keys, relative to the
// current camera yaw and scaled by the camera distance.
type KeyMove struct {
	keySet
	root    Root
	manager *camera.Manager
	speed   float64
}

// NewKeyMove creates the keyboard pan driver.
//
// Parameters:
//   - root: input root to attach the key listener to (may be nil)
//   - speed: world units per millisecond per unit of camera distance
//
// Returns:
//   - *KeyMove: the driver, not yet started
func NewKeyMove(root Root, speed float64) *KeyMove {
	return &KeyMove{root: root, speed: speed}
}

func (d *KeyMove) Start(m *camera.Manager) {
	d.manager = m
	if d.root != nil {
		d.root.AddKeyListener(d)
	}
}

func (d *KeyMove) Stop() {
	if d.root != nil {
		d.root.RemoveKeyListener(d)
	}
	d.manager = nil
	d.clear()
}

func (d *KeyMove) Update(delta float64, _ Map) {
	if d.manager == nil {
		return
	}
	right := d.axis([]uint32{common.KeyA, common.KeyLeft}, []uint32{common.KeyD, common.KeyRight})
	forward := d.axis([]uint32{common.KeyS, common.KeyDown}, []uint32{common.KeyW, common.KeyUp})
	if right == 0 && forward == 0 {
		return
	}

	s := &d.manager.State
	step := d.speed * delta * s.Distance
	sinR, cosR := math.Sincos(s.Rotation)

	// Screen-space right and forward mapped into the ground plane by yaw.
	s.Position[0] += (right*cosR - forward*sinR) * step
	s.Position[2] += (-right*sinR - forward*cosR) * step
}

// Reset is a no-op: held-key movement has no momentum to discard.
func (d *KeyMove) Reset() {}

// KeyRotate yaws the camera with Q and E.
type KeyRotate struct {
	keySet
	root    Root
	manager *camera.Manager
	speed   float64
}

// NewKeyRotate creates the keyboard rotate driver.
//
// Parameters:
//   - root: input root to attach the key listener to (may be nil)
//   - speed: radians per millisecond
//
// Returns:
//   - *KeyRotate: the driver, not yet started
func NewKeyRotate(root Root, speed float64) *KeyRotate {
	return &KeyRotate{root: root, speed: speed}
}

func (d *KeyRotate) Start(m *camera.Manager) {
	d.manager = m
	if d.root != nil {
		d.root.AddKeyListener(d)
	}
}

func (d *KeyRotate) Stop() {
	if d.root != nil {
		d.root.RemoveKeyListener(d)
	}
	d.manager = nil
	d.clear()
}

func (d *KeyRotate) Update(delta float64, _ Map) {
	if d.manager == nil {
		return
	}
	dir := d.axis([]uint32{common.KeyE}, []uint32{common.KeyQ})
	d.manager.State.Rotation += dir * d.speed * delta
}

// Reset is a no-op: held-key rotation has no momentum to discard.
func (d *KeyRotate) Reset() {}

// KeyTilt drives the tilt angle with Page Up (toward the horizon) and
// Page Down (toward top-down).
type KeyTilt struct {
	keySet
	root    Root
	manager *camera.Manager
	speed   float64
}

// NewKeyTilt creates the keyboard tilt driver.
//
// Parameters:
//   - root: input root to attach the key listener to (may be nil)
//   - speed: radians per millisecond
//
// Returns:
//   - *KeyTilt: the driver, not yet started
func NewKeyTilt(root Root, speed float64) *KeyTilt {
	return &KeyTilt{root: root, speed: speed}
}

func (d *KeyTilt) Start(m *camera.Manager) {
	d.manager = m
	if d.root != nil {
		d.root.AddKeyListener(d)
	}
}

func (d *KeyTilt) Stop() {
	if d.root != nil {
		d.root.RemoveKeyListener(d)
	}
	d.manager = nil
	d.clear()
}

func (d *KeyTilt) Update(delta float64, _ Map) {
	if d.manager == nil {
		return
	}
	dir := d.axis([]uint32{common.KeyPageDown}, []uint32{common.KeyPageUp})
	d.manager.State.Angle += dir * d.speed * delta
}

// Reset is a no-op: held-key tilt has no momentum to discard.
func (d *KeyTilt) Reset() {}

// KeyZoom drives the camera distance with the plus and minus keys, scaling
// exponentially so the zoom rate feels constant at any distance.
type KeyZoom struct {
	keySet
	root    Root
	manager *camera.Manager
	speed   float64
}

// NewKeyZoom creates the keyboard zoom driver.
//
// Parameters:
//   - root: input root to attach the key listener to (may be nil)
//   - speed: distance octaves per millisecond
//
// Returns:
//   - *KeyZoom: the driver, not yet started
func NewKeyZoom(root Root, speed float64) *KeyZoom {
	return &KeyZoom{root: root, speed: speed}
}

func (d *KeyZoom) Start(m *camera.Manager) {
	d.manager = m
	if d.root != nil {
		d.root.AddKeyListener(d)
	}
}

func (d *KeyZoom) Stop() {
	if d.root != nil {
		d.root.RemoveKeyListener(d)
	}
	d.manager = nil
	d.clear()
}

func (d *KeyZoom) Update(delta float64, _ Map) {
	if d.manager == nil {
		return
	}
	dir := d.axis(
		[]uint32{common.KeyEqual, common.KeyKPAdd},
		[]uint32{common.KeyMinus, common.KeyKPSubtract},
	)
	if dir != 0 {
		d.manager.State.Distance *= math.Pow(2, dir*d.speed*delta)
	}
}

// Reset is a no-op: held-key zoom has no momentum to discard.
func (d *KeyZoom) Reset() {}
