// Package input turns window-system keyboard state into per-frame camera input.
package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/nightcity/internal/engine/camera"
)

// Frame is everything the render loop needs from the window system for one frame.
type Frame struct {
	Held camera.Action

	CloseRequested bool
	Screenshot     bool // edge-triggered, true only on the frame the key went down

	Resized       bool
	Width, Height int
}

// Binding maps one physical key to an action.
type Binding[K comparable] struct {
	Key    K
	Action camera.Action
}

// Collect returns the union of actions whose key is currently down.
func Collect[K comparable](bindings []Binding[K], down func(K) bool) camera.Action {
	var held camera.Action
	for _, b := range bindings {
		if down(b.Key) {
			held |= b.Action
		}
	}
	return held
}

// SDLBindings is the keyboard layout for the SDL backend.
var SDLBindings = []Binding[sdl.Scancode]{
	{sdl.SCANCODE_W, camera.Forward},
	{sdl.SCANCODE_S, camera.Backward},
	{sdl.SCANCODE_A, camera.StrafeLeft},
	{sdl.SCANCODE_D, camera.StrafeRight},
	{sdl.SCANCODE_SPACE, camera.Ascend},
	{sdl.SCANCODE_LCTRL, camera.Descend},
	{sdl.SCANCODE_ESCAPE, camera.Quit},
}

// GLFWBindings is the keyboard layout for the GLFW backend.
var GLFWBindings = []Binding[glfw.Key]{
	{glfw.KeyW, camera.Forward},
	{glfw.KeyS, camera.Backward},
	{glfw.KeyA, camera.StrafeLeft},
	{glfw.KeyD, camera.StrafeRight},
	{glfw.KeySpace, camera.Ascend},
	{glfw.KeyLeftControl, camera.Descend},
	{glfw.KeyEscape, camera.Quit},
}

// Edge tracks a key and reports only the transition from up to down.
type Edge struct {
	prev bool
}

// Pressed updates the tracker and reports whether the key just went down.
func (e *Edge) Pressed(down bool) bool {
	jp := down && !e.prev
	e.prev = down
	return jp
}
