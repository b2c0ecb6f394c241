package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// MaxPitch keeps front away from world up so the cross products never
// degenerate. Pitch stays strictly inside (-MaxPitch, MaxPitch).
const MaxPitch float32 = 89.0

// PitchLimit is the largest pitch magnitude a camera ever holds.
var PitchLimit = math32.Nextafter(MaxPitch, 0)

// ProcessLook turns the camera by a pointer delta. Positive dx is pointer
// right, positive dy is pointer up. The first call after New or ResetLook
// only primes the baseline and leaves the orientation unchanged.
func (c *Camera) ProcessLook(dx, dy float32) {
	if !c.primed {
		c.primed = true
		return
	}

	var yawDelta, pitchDelta float32
	if c.SteppedLook {
		yawDelta = c.LookStep * sign(dx)
		pitchDelta = c.LookStep * sign(dy)
	} else {
		yawDelta = dx * c.Sensitivity
		pitchDelta = dy * c.Sensitivity
	}
	if c.InvertY {
		pitchDelta = -pitchDelta
	}
	if yawDelta == 0 && pitchDelta == 0 {
		return
	}

	c.SetOrientation(c.yaw+yawDelta, c.pitch+pitchDelta)
}

// ResetLook drops the look baseline; the next ProcessLook call primes again.
func (c *Camera) ResetLook() {
	c.primed = false
}

// SetOrientation sets yaw and pitch in degrees and rebuilds the basis.
// Pitch is clamped to ±PitchLimit, and forced to zero in yaw-only mode.
func (c *Camera) SetOrientation(yaw, pitch float32) {
	if c.YawOnly {
		pitch = 0
	}
	c.yaw = yaw
	c.pitch = mgl32.Clamp(pitch, -PitchLimit, PitchLimit)
	c.updateCameraVectors()
	c.dirty = true
}

// LookAt turns the camera to face target. Nothing happens when target is
// the camera position.
func (c *Camera) LookAt(target mgl32.Vec3) {
	direction := target.Sub(c.Position)
	if direction.Len() < 1e-6 {
		return
	}
	direction = direction.Normalize()
	yaw := mgl32.RadToDeg(math32.Atan2(direction.Z(), direction.X()))
	pitch := mgl32.RadToDeg(math32.Asin(mgl32.Clamp(direction.Y(), -1, 1)))
	c.SetOrientation(yaw, pitch)
}

// Heading is yaw wrapped into [0, 360) for display. Yaw itself is left
// unbounded because the basis only ever sees it through sin and cos.
func (c *Camera) Heading() float32 {
	h := math32.Mod(c.yaw, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// updateCameraVectors re-derives the whole basis from the angles so rounding
// error never accumulates across updates.
func (c *Camera) updateCameraVectors() {
	yawRad := mgl32.DegToRad(c.yaw)
	pitchRad := mgl32.DegToRad(c.pitch)

	front := mgl32.Vec3{
		math32.Cos(yawRad) * math32.Cos(pitchRad),
		math32.Sin(pitchRad),
		math32.Sin(yawRad) * math32.Cos(pitchRad),
	}

	c.front = front.Normalize()
	c.right = c.front.Cross(c.WorldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

func sign(v float32) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
