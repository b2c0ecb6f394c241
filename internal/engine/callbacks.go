package engine

import (
	"FlyCam/internal/input"
	"FlyCam/internal/logger"
	"FlyCam/internal/renderer"
	"FlyCam/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// Mouse callback function. Look samples are only queued while the right
// button holds the pointer.
func (f *FlyCam) cursorCallback(w *glfw.Window, xpos, ypos float64) {
	if !f.looking || w.GetAttrib(glfw.Focused) != glfw.True {
		return
	}
	f.events.Push(input.Cursor(xpos, ypos))
}

func (f *FlyCam) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	switch {
	case button == glfw.MouseButtonRight && action == glfw.Press:
		f.looking = true
		w.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	case button == glfw.MouseButtonRight && action == glfw.Release:
		f.looking = false
		w.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		f.events.Push(input.Reset())
	case button == glfw.MouseButtonLeft && action == glfw.Press && !f.looking:
		x, y := w.GetCursorPos()
		width, height := w.GetSize()
		origin, dir := f.Camera.Ray(float32(x), float32(y), width, height)
		ray := scene.Ray{Origin: origin, Direction: dir}
		f.InsertCube(f.Scene.Placement(ray, f.Camera.Far, f.cfg.Scene.SpawnDist*4))
	}
}

func (f *FlyCam) keyCallback(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyEscape:
		w.SetShouldClose(true)
	case glfw.KeyE:
		cam := f.Camera
		f.InsertCube(cam.GetPosition().Add(cam.Front().Mul(f.cfg.Scene.SpawnDist)))
	case glfw.KeyC:
		renderer.FrustumCullingEnabled = !renderer.FrustumCullingEnabled
		logger.Log.Info("Frustum culling toggled", zap.Bool("enabled", renderer.FrustumCullingEnabled))
	case glfw.KeyR:
		c := f.cfg.Camera
		f.Camera.Position = c.Position
		f.Camera.SetOrientation(c.Yaw, c.Pitch)
		logger.Log.Info("Camera reset")
	}
}

func (f *FlyCam) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	f.Width, f.Height = int32(width), int32(height)
	f.rendererAPI.UpdateViewport(f.Width, f.Height)
	f.Camera.SetAspectRatio(float32(width) / float32(height))
}
