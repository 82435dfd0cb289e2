// Package wsi provides the thin window-system integration the
// gl45 backend needs to obtain a current OpenGL 4.5 context: it is
// not part of the frame graph or GHI proper, and exists only to let
// a caller open a window, make its context current, and
// swap buffers after a frame. Scene traversal, asset loading, input
// handling beyond raw key/pointer events and any other higher-level
// concern stays out of this package.
package wsi

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is the interface that defines a drawable window backed by
// an OpenGL 4.5 context.
type Window interface {
	// Map makes the window visible.
	Map() error

	// Unmap hides the window.
	Unmap() error

	// Resize resizes the window.
	Resize(width, height int) error

	// SetTitle sets the window's title.
	SetTitle(title string) error

	// Close destroys the window and its context.
	Close()

	// Width returns the window's current width, in pixels.
	Width() int

	// Height returns the window's current height, in pixels.
	Height() int

	// Title returns the window's current title.
	Title() string

	// ShouldClose reports whether the platform requested the window
	// be closed (e.g. the user clicked the close button).
	ShouldClose() bool

	// MakeContextCurrent makes the window's GL context current on
	// the calling OS thread. Must be called from a locked OS thread
	// before any gl45 GPU method runs.
	MakeContextCurrent()

	// SwapBuffers presents the window's back buffer.
	SwapBuffers()

	// GetProcAddress returns the function usable as glfw's GL
	// loader, for gl45.Driver.Open's gl.Init to resolve entry
	// points against.
	GetProcAddress() func(name string) uintptr
}

// window implements Window on top of a glfw window.
type window struct {
	win   *glfw.Window
	title string
}

var initialized bool

// NewWindow creates a new window with an OpenGL 4.5 core context.
// The window starts hidden (Map shows it) and its context is not
// made current (MakeContextCurrent does that): a frame
// graph caller needs exactly one current context to drive the gl45
// backend through, nothing more.
func NewWindow(width, height int, title string) (Window, error) {
	if !initialized {
		if err := glfw.Init(); err != nil {
			return nil, fmt.Errorf("wsi: glfw.Init: %w", err)
		}
		initialized = true
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 5)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	w, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("wsi: glfw.CreateWindow: %w", err)
	}

	win := &window{win: w, title: title}
	w.SetFramebufferSizeCallback(func(_ *glfw.Window, newWidth, newHeight int) {
		if windowHandler != nil {
			windowHandler.WindowResize(win, newWidth, newHeight)
		}
	})
	w.SetCloseCallback(func(_ *glfw.Window) {
		if windowHandler != nil {
			windowHandler.WindowClose(win)
		}
	})
	w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if keyboardHandler == nil || action == glfw.Repeat {
			return
		}
		keyboardHandler.KeyboardKey(keyOf(key), action == glfw.Press, modifierOf(mods))
	})
	w.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if pointerHandler == nil {
			return
		}
		x, y := w.GetCursorPos()
		pointerHandler.PointerButton(buttonOf(button), action == glfw.Press, int(x), int(y))
	})
	w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if pointerHandler != nil {
			pointerHandler.PointerMotion(int(x), int(y))
		}
	})

	return win, nil
}

func (w *window) Map() error {
	w.win.Show()
	return nil
}

func (w *window) Unmap() error {
	w.win.Hide()
	return nil
}

func (w *window) Resize(width, height int) error {
	w.win.SetSize(width, height)
	return nil
}

func (w *window) SetTitle(title string) error {
	w.win.SetTitle(title)
	w.title = title
	return nil
}

func (w *window) Close() { w.win.Destroy() }

func (w *window) Width() int {
	width, _ := w.win.GetSize()
	return width
}

func (w *window) Height() int {
	_, height := w.win.GetSize()
	return height
}

func (w *window) Title() string { return w.title }

func (w *window) ShouldClose() bool { return w.win.ShouldClose() }

func (w *window) MakeContextCurrent() { w.win.MakeContextCurrent() }

func (w *window) SwapBuffers() { w.win.SwapBuffers() }

func (w *window) GetProcAddress() func(name string) uintptr {
	return func(name string) uintptr {
		return uintptr(glfw.GetProcAddress(name))
	}
}

// Dispatch polls and dispatches queued platform events to the
// registered handlers.
func Dispatch() { glfw.PollEvents() }

// Terminate releases all platform resources. No Window may be used
// afterwards.
func Terminate() {
	if initialized {
		glfw.Terminate()
		initialized = false
	}
}

// WindowHandler is the interface that defines the methods for
// handling window lifecycle events.
type WindowHandler interface {
	WindowClose(win Window)
	WindowResize(win Window, newWidth, newHeight int)
}

// SetWindowHandler sets the global WindowHandler.
func SetWindowHandler(wh WindowHandler) { windowHandler = wh }

var windowHandler WindowHandler

// KeyboardHandler is the interface that defines the methods for
// handling keyboard events.
type KeyboardHandler interface {
	KeyboardKey(key Key, pressed bool, modMask Modifier)
}

// SetKeyboardHandler sets the global KeyboardHandler.
func SetKeyboardHandler(kh KeyboardHandler) { keyboardHandler = kh }

var keyboardHandler KeyboardHandler

// PointerHandler is the interface that defines the methods for
// handling pointer events.
type PointerHandler interface {
	PointerMotion(newX, newY int)
	PointerButton(btn Button, pressed bool, x, y int)
}

// SetPointerHandler sets the global PointerHandler.
func SetPointerHandler(ph PointerHandler) { pointerHandler = ph }

var pointerHandler PointerHandler
