package engine

import (
	"FlyCam/internal/camera"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type KeyBinding struct {
	Key       glfw.Key
	Direction camera.Direction
}

var DefaultBindings = []KeyBinding{
	{glfw.KeyW, camera.Forward},
	{glfw.KeyUp, camera.Forward},
	{glfw.KeyS, camera.Backward},
	{glfw.KeyDown, camera.Backward},
	{glfw.KeyA, camera.Left},
	{glfw.KeyLeft, camera.Left},
	{glfw.KeyD, camera.Right},
	{glfw.KeyRight, camera.Right},
	{glfw.KeySpace, camera.Up},
	{glfw.KeyLeftControl, camera.Down},
}

// heldDirections lists each bound direction whose key is down, once, in
// binding order, so two keys for the same direction never double the step.
func heldDirections(pressed func(glfw.Key) bool, bindings []KeyBinding) []camera.Direction {
	var seen [camera.Down + 1]bool
	var out []camera.Direction
	for _, b := range bindings {
		if b.Direction < 0 || b.Direction > camera.Down || seen[b.Direction] {
			continue
		}
		if pressed(b.Key) {
			seen[b.Direction] = true
			out = append(out, b.Direction)
		}
	}
	return out
}
