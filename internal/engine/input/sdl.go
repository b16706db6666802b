package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// SDLPoller drains SDL events and samples the keyboard once per frame.
type SDLPoller struct {
	screenshot Edge
}

// NewSDLPoller creates a poller. SDL must already be initialized.
func NewSDLPoller() *SDLPoller {
	return &SDLPoller{}
}

// Poll processes pending events and returns this frame's input.
func (p *SDLPoller) Poll() Frame {
	var f Frame

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			f.CloseRequested = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				f.Resized = true
				f.Width = int(e.Data1)
				f.Height = int(e.Data2)
			}
		}
	}

	keys := sdl.GetKeyboardState()
	f.Held = Collect(SDLBindings, func(sc sdl.Scancode) bool {
		return int(sc) < len(keys) && keys[sc] != 0
	})
	f.Screenshot = p.screenshot.Pressed(int(sdl.SCANCODE_F12) < len(keys) && keys[sdl.SCANCODE_F12] != 0)

	return f
}
