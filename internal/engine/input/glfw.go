package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// GLFWPoller samples a GLFW window once per frame.
type GLFWPoller struct {
	window     *glfw.Window
	screenshot Edge
	fbW, fbH   int
}

// NewGLFWPoller creates a poller for the given window.
func NewGLFWPoller(window *glfw.Window) *GLFWPoller {
	w, h := window.GetFramebufferSize()
	return &GLFWPoller{window: window, fbW: w, fbH: h}
}

// Poll processes pending events and returns this frame's input.
func (p *GLFWPoller) Poll() Frame {
	glfw.PollEvents()

	f := Frame{CloseRequested: p.window.ShouldClose()}
	f.Held = Collect(GLFWBindings, func(k glfw.Key) bool {
		return p.window.GetKey(k) == glfw.Press
	})
	f.Screenshot = p.screenshot.Pressed(p.window.GetKey(glfw.KeyF12) == glfw.Press)

	if w, h := p.window.GetFramebufferSize(); w != p.fbW || h != p.fbH {
		p.fbW, p.fbH = w, h
		f.Resized = true
		f.Width, f.Height = w, h
	}
	return f
}
