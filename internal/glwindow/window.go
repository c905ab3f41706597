// Package glwindow opens the GLFW window the visualizer renders into and
// provides the GL framebuffer target. Every function must be called from the
// main OS thread.
package glwindow

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Options describe the window to create
type Options struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	Fullscreen bool
}

// Window is a GLFW window with a current GL context
type Window struct {
	win *glfw.Window
}

// Open initializes GLFW, creates the window, makes its context current and
// loads the GL function pointers.
func Open(opts Options) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("init glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)

	var monitor *glfw.Monitor
	if opts.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("init gl: %w", err)
	}

	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	return &Window{win: win}, nil
}

// DrawableSize returns the framebuffer size in pixels, which differs from the
// window size on HiDPI displays.
func (w *Window) DrawableSize() (int, int) {
	return w.win.GetFramebufferSize()
}

// ShouldClose reports whether the user asked to close the window
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// SetShouldClose requests the loop to stop
func (w *Window) SetShouldClose(v bool) {
	w.win.SetShouldClose(v)
}

// SwapBuffers presents the rendered frame
func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

// PollEvents processes pending window events and keeps the viewport in
// sync with the framebuffer size.
func (w *Window) PollEvents() {
	glfw.PollEvents()
	width, height := w.win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(width), int32(height))
}

// OnKey registers a key press handler
func (w *Window) OnKey(fn func(key glfw.Key, mods glfw.ModifierKey)) {
	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Press {
			fn(key, mods)
		}
	})
}

// Close destroys the window and terminates GLFW
func (w *Window) Close() {
	if w.win == nil {
		return
	}
	w.win.Destroy()
	w.win = nil
	glfw.Terminate()
}
