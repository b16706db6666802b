// Package camera provides the free-fly camera used to move through the city.
package camera

import (
	"github.com/Faultbox/nightcity/pkg/math"
)

// Action is a set of movement and control inputs held during one frame.
type Action uint8

// Recognized actions.
const (
	Forward Action = 1 << iota
	Backward
	StrafeLeft
	StrafeRight
	Ascend
	Descend
	Quit
)

// Has reports whether every action in a is held.
func (s Action) Has(a Action) bool {
	return s&a == a
}

// Input is one frame's snapshot of held actions.
type Input struct {
	Held Action

	// DeltaTime is the elapsed frame time in seconds. It only affects movement
	// when the controller has ScaleByFrameTime set.
	DeltaTime float32
}

// State is the camera pose. It is owned by the render loop and passed by value.
type State struct {
	Position math.Vec3
	Front    math.Vec3
	Up       math.Vec3
}

// DefaultState returns the starting pose: above and behind the city, looking down -Z.
func DefaultState() State {
	return State{
		Position: math.Vec3{X: 0, Y: 50, Z: 150},
		Front:    math.Vec3{X: 0, Y: 0, Z: -1},
		Up:       math.WorldUp,
	}
}

// Right returns the unit strafe direction, orthogonal to Front and world up.
func (s State) Right() math.Vec3 {
	return s.Front.Cross(math.WorldUp).Normalize()
}

// View returns the view matrix for this pose.
func (s State) View() math.Mat4 {
	return math.LookAt(s.Position, s.Position.Add(s.Front), s.Up)
}

// Controller applies per-frame input to a camera state.
type Controller struct {
	// Step is the distance moved per frame for each held direction.
	Step float32

	// ScaleByFrameTime multiplies Step by DeltaTime*ReferenceFPS so speed no longer
	// depends on frame rate. Off by default: movement is a fixed step per frame.
	ScaleByFrameTime bool
	ReferenceFPS     float32
}

// DefaultController returns a controller moving one world unit per frame.
func DefaultController() Controller {
	return Controller{
		Step:         1.0,
		ReferenceFPS: 60,
	}
}

// Update returns the new state for one frame of input and whether quit was requested.
// Only Position changes; Front and Up are never modified.
func (c Controller) Update(s State, in Input) (State, bool) {
	step := c.Step
	if c.ScaleByFrameTime {
		step *= in.DeltaTime * c.ReferenceFPS
	}

	var delta math.Vec3
	if in.Held.Has(Forward) {
		delta = delta.Add(s.Front.Scale(step))
	}
	if in.Held.Has(Backward) {
		delta = delta.Sub(s.Front.Scale(step))
	}
	if in.Held.Has(StrafeLeft) {
		delta = delta.Sub(s.Right().Scale(step))
	}
	if in.Held.Has(StrafeRight) {
		delta = delta.Add(s.Right().Scale(step))
	}
	if in.Held.Has(Ascend) {
		delta = delta.Add(math.WorldUp.Scale(step))
	}
	if in.Held.Has(Descend) {
		delta = delta.Sub(math.WorldUp.Scale(step))
	}

	s.Position = s.Position.Add(delta)
	return s, in.Held.Has(Quit)
}
