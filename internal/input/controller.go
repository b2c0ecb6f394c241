package input

import (
	"FlyCam/internal/camera"
	"FlyCam/internal/logger"

	"go.uber.org/zap"
)

// PointerTracker turns absolute cursor samples into deltas. Screen y grows
// downwards, so dy is flipped to make pointer-up positive.
type PointerTracker struct {
	lastX, lastY float64
	primed       bool
}

// Sample returns the delta since the previous sample. The first sample after
// construction or Reset only records the baseline and returns zero.
func (p *PointerTracker) Sample(x, y float64) (dx, dy float32) {
	if !p.primed {
		p.lastX, p.lastY = x, y
		p.primed = true
		return 0, 0
	}
	dx = float32(x - p.lastX)
	dy = float32(p.lastY - y)
	p.lastX, p.lastY = x, y
	return dx, dy
}

func (p *PointerTracker) Reset() {
	p.primed = false
}

// Controller applies drained input events to the camera it owns.
type Controller struct {
	cam     *camera.Camera
	pointer PointerTracker
}

func NewController(cam *camera.Camera) *Controller {
	return &Controller{cam: cam}
}

func (c *Controller) Camera() *camera.Camera {
	return c.cam
}

// Apply feeds events to the camera in order. Movement uses dt scaled by the
// event's Scale.
func (c *Controller) Apply(events []Event, dt float32) {
	for _, e := range events {
		switch e.Kind {
		case CursorMoved:
			dx, dy := c.pointer.Sample(e.X, e.Y)
			c.cam.ProcessLook(dx, dy)
		case Move:
			scale := e.Scale
			if scale == 0 {
				scale = 1
			}
			c.cam.ProcessMovement(e.Direction, dt*scale)
		case LookReset:
			c.pointer.Reset()
			c.cam.ResetLook()
		default:
			logger.Log.Warn("Ignoring unknown input event", zap.Int("kind", int(e.Kind)))
		}
	}
}
