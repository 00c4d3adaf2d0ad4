// Package window provides platform windowing for the map viewer and acts as
// the input root the camera-control drivers attach to: native pointer, scroll
// and key callbacks fan out to the registered listeners.
package window

import (
	"fmt"
	"runtime"

	"github.com/Team-Fuho/BlueMapWeb/viewer/input"
)

// Window provides platform windowing and input event handling.
// Wraps platform-specific window implementations with a common interface.
type Window interface {
	input.Root

	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the window is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls OnUpdate callback each iteration.
	ProcessMessages()

	// Width returns the current window client area width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current window client area height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// viewerWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and the registered input listeners.
type viewerWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// width is the current window client area width in pixels.
	width int

	// height is the current window client area height in pixels.
	height int

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// onUpdate is called each iteration of the message loop (if set).
	onUpdate func()

	// onResize is called when the window is resized.
	onResize func(width, height int)

	// Registered input listeners. Mutated only from the frame loop, matching
	// the input.Root contract, so no synchronization is needed.
	pointerListeners []input.PointerListener
	scrollListeners  []input.ScrollListener
	keyListeners     []input.KeyListener

	// contextMenuSuppressed records the controls' request to disable the
	// platform context menu. Desktop GLFW has no native context menu, so the
	// flag only gates whether right-button events reach the listeners.
	contextMenuSuppressed bool
}

var _ Window = &viewerWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window (not yet spawned)
func NewWindow(options ...WindowBuilderOption) Window {
	w := &viewerWindow{
		title:  "Map Viewer",
		width:  1280,
		height: 720,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *viewerWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *viewerWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *viewerWindow) AddPointerListener(l input.PointerListener) {
	w.pointerListeners = append(w.pointerListeners, l)
}

func (w *viewerWindow) RemovePointerListener(l input.PointerListener) {
	for i, x := range w.pointerListeners {
		if x == l {
			w.pointerListeners = append(w.pointerListeners[:i], w.pointerListeners[i+1:]...)
			return
		}
	}
}

func (w *viewerWindow) AddScrollListener(l input.ScrollListener) {
	w.scrollListeners = append(w.scrollListeners, l)
}

func (w *viewerWindow) RemoveScrollListener(l input.ScrollListener) {
	for i, x := range w.scrollListeners {
		if x == l {
			w.scrollListeners = append(w.scrollListeners[:i], w.scrollListeners[i+1:]...)
			return
		}
	}
}

func (w *viewerWindow) AddKeyListener(l input.KeyListener) {
	w.keyListeners = append(w.keyListeners, l)
}

func (w *viewerWindow) RemoveKeyListener(l input.KeyListener) {
	for i, x := range w.keyListeners {
		if x == l {
			w.keyListeners = append(w.keyListeners[:i], w.keyListeners[i+1:]...)
			return
		}
	}
}

func (w *viewerWindow) SetContextMenuSuppressed(suppressed bool) {
	w.contextMenuSuppressed = suppressed
}

func (w *viewerWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *viewerWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *viewerWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *viewerWindow) Width() int {
	return w.width
}

func (w *viewerWindow) Height() int {
	return w.height
}

// firePointerDown fans a pointer press out to the registered listeners.
func (w *viewerWindow) firePointerDown(x, y float64, button input.Button) {
	for _, l := range w.pointerListeners {
		l.PointerDown(x, y, button)
	}
}

func (w *viewerWindow) firePointerMove(x, y float64) {
	for _, l := range w.pointerListeners {
		l.PointerMove(x, y)
	}
}

func (w *viewerWindow) firePointerUp(x, y float64, button input.Button) {
	for _, l := range w.pointerListeners {
		l.PointerUp(x, y, button)
	}
}

func (w *viewerWindow) fireScroll(delta float64) {
	for _, l := range w.scrollListeners {
		l.Scroll(delta)
	}
}

func (w *viewerWindow) fireKeyDown(code uint32) {
	for _, l := range w.keyListeners {
		l.KeyDown(code)
	}
}

func (w *viewerWindow) fireKeyUp(code uint32) {
	for _, l := range w.keyListeners {
		l.KeyUp(code)
	}
}
