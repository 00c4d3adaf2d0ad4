// Package viewer ties the map viewer together: it owns the window, the camera
// state and projection, the control orchestrator and the frame loop that
// advances them. Everything runs inside the window's message loop on one
// goroutine; per-frame work is sequenced, never concurrent.
package viewer

import (
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Team-Fuho/BlueMapWeb/config"
	"github.com/Team-Fuho/BlueMapWeb/viewer/camera"
	"github.com/Team-Fuho/BlueMapWeb/viewer/controls"
	"github.com/Team-Fuho/BlueMapWeb/viewer/input"
	"github.com/Team-Fuho/BlueMapWeb/viewer/profiler"
	"github.com/Team-Fuho/BlueMapWeb/viewer/window"
)

// Viewer is the main entry point of the map viewer. It orchestrates the frame
// loop, the camera controls and the window.
type Viewer interface {
	// Window returns the underlying window, or nil for a headless viewer.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Controls returns the camera-control orchestrator.
	//
	// Returns:
	//   - controls.Controls: the orchestrator
	Controls() controls.Controls

	// CameraManager returns the camera-state owner shared by the controls and
	// the projection.
	//
	// Returns:
	//   - *camera.Manager: the camera-state owner
	CameraManager() *camera.Manager

	// Camera returns the projection camera.
	//
	// Returns:
	//   - *camera.Camera: the projection camera
	Camera() *camera.Camera

	// ViewProjection returns the combined view-projection matrix for the
	// current camera state, ready for a render backend.
	//
	// Returns:
	//   - mgl64.Mat4: the view-projection matrix
	ViewProjection() mgl64.Mat4

	// SetWorld sets the map the controls query for terrain heights. May be nil.
	//
	// Parameters:
	//   - world: the map collaborator for spatial queries
	SetWorld(world input.Map)

	// SetFrameCallback registers a function called at the end of every frame,
	// after the controls have updated the camera state.
	//
	// Parameters:
	//   - callback: function receiving the frame delta in milliseconds
	SetFrameCallback(callback func(delta float64))

	// Update advances one frame by the given delta. Hosts that own their own
	// loop (tests, embedding applications) call this instead of Run.
	//
	// Parameters:
	//   - delta: elapsed time since the previous frame in milliseconds
	Update(delta float64)

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// Run starts the controls and blocks in the window's message loop until
	// the window closes, then stops the controls.
	Run()

	// Quit closes the window, unblocking Run. Safe without a window.
	Quit()
}

// mapViewer is the implementation of the Viewer interface.
type mapViewer struct {
	settings config.Settings

	window   window.Window
	world    input.Map
	manager  *camera.Manager
	cam      *camera.Camera
	controls controls.Controls

	profiler         *profiler.Profiler
	profilingEnabled bool

	frameCallback func(delta float64)
	lastFrame     time.Time
}

var _ Viewer = &mapViewer{}

// NewViewer creates a new Viewer with the provided options. The controls are
// wired to the window's input root when a window is configured; without one
// the viewer is headless and driven through Update.
//
// Parameters:
//   - options: functional options for viewer configuration
//
// Returns:
//   - Viewer: the newly created viewer, not yet running
func NewViewer(options ...ViewerBuilderOption) Viewer {
	v := &mapViewer{
		settings: config.Default(),
		profiler: profiler.NewProfiler(),
	}
	for _, opt := range options {
		opt(v)
	}

	if v.manager == nil {
		v.manager = camera.NewManager()
	}
	if v.cam == nil {
		v.cam = camera.NewCamera()
	}

	controlOptions := []controls.ControlsOption{controls.WithSettings(v.settings)}
	if v.window != nil {
		controlOptions = append(controlOptions, controls.WithInputRoot(v.window))
	}
	v.controls = controls.New(controlOptions...)

	if v.window != nil {
		v.cam.SetAspect(float64(v.window.Width()) / float64(v.window.Height()))
		v.window.SetResizeCallback(func(width, height int) {
			if height > 0 {
				v.cam.SetAspect(float64(width) / float64(height))
			}
		})
		v.window.SetUpdateCallback(v.frame)
	}

	return v
}

func (v *mapViewer) Window() window.Window {
	return v.window
}

func (v *mapViewer) Controls() controls.Controls {
	return v.controls
}

func (v *mapViewer) CameraManager() *camera.Manager {
	return v.manager
}

func (v *mapViewer) Camera() *camera.Camera {
	return v.cam
}

func (v *mapViewer) ViewProjection() mgl64.Mat4 {
	return v.cam.ViewProjectionMatrix(v.manager)
}

func (v *mapViewer) SetWorld(world input.Map) {
	v.world = world
}

func (v *mapViewer) SetFrameCallback(callback func(delta float64)) {
	v.frameCallback = callback
}

func (v *mapViewer) Update(delta float64) {
	v.controls.Update(delta, v.world)
	if v.frameCallback != nil {
		v.frameCallback(delta)
	}
}

func (v *mapViewer) EnableProfiler() {
	v.profilingEnabled = true
}

func (v *mapViewer) DisableProfiler() {
	v.profilingEnabled = false
}

func (v *mapViewer) Run() {
	if v.window == nil {
		log.Println("viewer: Run called without a window; drive a headless viewer through Update")
		return
	}

	v.controls.Start(v.manager)
	v.lastFrame = time.Now()
	v.window.ProcessMessages()
	v.controls.Stop()
}

func (v *mapViewer) Quit() {
	if v.window == nil {
		return
	}
	if err := v.window.Close(); err != nil {
		log.Printf("viewer: closing window: %v", err)
	}
}

// frame is the window's per-iteration callback: it measures the real frame
// delta and advances the viewer by it.
func (v *mapViewer) frame() {
	now := time.Now()
	elapsed := now.Sub(v.lastFrame)
	v.lastFrame = now

	v.Update(float64(elapsed.Seconds()) * 1000)

	if v.profilingEnabled && v.profiler != nil {
		v.profiler.Tick(elapsed)
	}
}
