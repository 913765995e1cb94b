package core

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string

	onResize func(width, height int)
}

type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
	VSync     bool   `yaml:"vsync"`
	Samples   int    `yaml:"samples"`
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:     1280,
		Height:    720,
		Title:     "Bank Branch",
		Resizable: true,
		VSync:     true,
		Samples:   4,
	}
}

// NewWindow opens a window with a current OpenGL 4.1 core context.
func NewWindow(config WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))
	glfw.WindowHint(glfw.Samples, config.Samples)

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	handle.MakeContextCurrent()
	if config.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	window := &Window{
		Handle: handle,
		Width:  config.Width,
		Height: config.Height,
		Title:  config.Title,
	}

	handle.SetSizeCallback(func(w *glfw.Window, width, height int) {
		window.Width = width
		window.Height = height
		if window.onResize != nil {
			window.onResize(width, height)
		}
	})

	return window, nil
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.Handle.SetShouldClose(v)
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

func (w *Window) GetSize() (int, int) {
	return w.Handle.GetSize()
}

// PixelRatio is framebuffer pixels per window coordinate.
func (w *Window) PixelRatio() float32 {
	fw, _ := w.Handle.GetFramebufferSize()
	ww, _ := w.Handle.GetSize()
	if ww <= 0 {
		return 1
	}
	return float32(fw) / float32(ww)
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

func (w *Window) IsMouseButtonPressed(button int) bool {
	return w.Handle.GetMouseButton(glfw.MouseButton(button)) == glfw.Press
}

func (w *Window) GetCursorPos() (float64, float64) {
	return w.Handle.GetCursorPos()
}

// SetResizeCallback receives window sizes in screen coordinates; multiply
// by PixelRatio for framebuffer pixels.
func (w *Window) SetResizeCallback(cb func(width, height int)) {
	w.onResize = cb
}

// ScrollCallback is the type for scroll event handlers
type ScrollCallback func(xoff, yoff float64)

func (w *Window) SetScrollCallback(cb ScrollCallback) {
	w.Handle.SetScrollCallback(func(win *glfw.Window, xoff, yoff float64) {
		cb(xoff, yoff)
	})
}

// KeyCallback fires once per key press.
type KeyCallback func(key int)

func (w *Window) SetKeyCallback(cb KeyCallback) {
	w.Handle.SetKeyCallback(func(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Press {
			cb(int(key))
		}
	})
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

const (
	MouseLeft  = int(glfw.MouseButtonLeft)
	MouseRight = int(glfw.MouseButtonRight)
)

const (
	Key1      = int(glfw.Key1)
	Key2      = int(glfw.Key2)
	Key3      = int(glfw.Key3)
	KeyR      = int(glfw.KeyR)
	KeyEscape = int(glfw.KeyEscape)
)
