package viewer

import (
	"github.com/chewxy/math32"

	"bank-interior/core"
)

// Device is the polled side of a window.
type Device interface {
	GetCursorPos() (float64, float64)
	IsMouseButtonPressed(button int) bool
	GetSize() (int, int)
}

// Input turns polled mouse state into orbit control motion: left drag
// orbits, right drag pans and the wheel zooms.
type Input struct {
	MouseDeltaX, MouseDeltaY float64
	ScrollDelta              float64

	device       Device
	lastX, lastY float64
	buttons      [2]bool
	firstFrame   bool
}

func NewInput(device Device) *Input {
	return &Input{device: device, firstFrame: true}
}

// AddScroll accumulates wheel motion until the next Update.
func (in *Input) AddScroll(yoff float64) {
	in.ScrollDelta += yoff
}

// Update polls the device and computes this frame's cursor delta.
func (in *Input) Update() {
	x, y := in.device.GetCursorPos()
	if in.firstFrame {
		in.lastX, in.lastY = x, y
		in.firstFrame = false
	}
	in.MouseDeltaX = x - in.lastX
	in.MouseDeltaY = y - in.lastY
	in.lastX, in.lastY = x, y

	in.buttons[0] = in.device.IsMouseButtonPressed(core.MouseLeft)
	in.buttons[1] = in.device.IsMouseButtonPressed(core.MouseRight)
}

// Apply feeds this frame's input to c and clears the scroll accumulator.
func (in *Input) Apply(c *OrbitControls) {
	_, h := in.device.GetSize()
	height := float32(h)
	if height <= 0 {
		height = 1
	}
	dx := float32(in.MouseDeltaX) / height
	dy := float32(in.MouseDeltaY) / height

	switch {
	case in.buttons[0]:
		c.Rotate(2*math32.Pi*dx, 2*math32.Pi*dy)
	case in.buttons[1]:
		c.Pan(dx, dy)
	}
	if in.ScrollDelta != 0 {
		c.Dolly(float32(in.ScrollDelta))
	}
	in.ScrollDelta = 0
}
