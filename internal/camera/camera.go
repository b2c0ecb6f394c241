// camera.go
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a first-person free-fly camera. The front/right/up basis is
// always derived from yaw and pitch and is only exposed through accessors.
type Camera struct {
	// HOT DATA - Accessed every frame for view/projection calculations
	Position   mgl32.Vec3 // Camera position in world space
	Projection mgl32.Mat4 // Projection matrix
	front      mgl32.Vec3
	right      mgl32.Vec3
	up         mgl32.Vec3
	yaw        float32 // degrees, unbounded
	pitch      float32 // degrees, clamped to [-MaxPitch, MaxPitch]

	// COLD DATA - Configuration, accessed less frequently
	WorldUp     mgl32.Vec3
	Speed       float32 // Units per second, or per call when TimeScaled is false
	TimeScaled  bool
	Sensitivity float32 // Degrees per pointer unit
	LookStep    float32 // Degrees per sample when SteppedLook is set
	SteppedLook bool
	YawOnly     bool
	InvertY     bool
	Movement    MovementMode
	View        ViewMode
	Fov         float32 // Field of view in degrees
	Near        float32
	Far         float32
	AspectRatio float32

	primed bool // a look baseline exists
	dirty  bool // moved or turned since ConsumeDirty
}

// Config holds everything needed to build a Camera.
type Config struct {
	Position    mgl32.Vec3
	Yaw         float32
	Pitch       float32
	WorldUp     mgl32.Vec3
	Speed       float32
	TimeScaled  bool
	Sensitivity float32
	LookStep    float32
	SteppedLook bool
	YawOnly     bool
	InvertY     bool
	Movement    MovementMode
	View        ViewMode
	Fov         float32
	Near        float32
	Far         float32
	AspectRatio float32
}

// Tuning is the subset of the configuration that may change while the
// camera is live.
type Tuning struct {
	Speed       float32
	TimeScaled  bool
	Sensitivity float32
	LookStep    float32
	SteppedLook bool
	YawOnly     bool
	InvertY     bool
}

// DefaultConfig looks down -Z from (0,0,3).
func DefaultConfig() Config {
	return Config{
		Position:    mgl32.Vec3{0, 0, 3},
		Yaw:         -90.0,
		Pitch:       0.0,
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Speed:       2.5,
		TimeScaled:  true,
		Sensitivity: 0.1,
		LookStep:    3.0,
		Movement:    FreeFlyRelative,
		View:        LookAtView,
		Fov:         45.0,
		Near:        0.1,
		Far:         100.0,
		AspectRatio: 4.0 / 3.0,
	}
}

// New creates a camera from cfg. A zero WorldUp defaults to +Y.
func New(cfg Config) *Camera {
	if cfg.WorldUp == (mgl32.Vec3{}) {
		cfg.WorldUp = mgl32.Vec3{0, 1, 0}
	}
	c := &Camera{
		Position:    cfg.Position,
		WorldUp:     cfg.WorldUp.Normalize(),
		Speed:       cfg.Speed,
		TimeScaled:  cfg.TimeScaled,
		Sensitivity: cfg.Sensitivity,
		LookStep:    cfg.LookStep,
		SteppedLook: cfg.SteppedLook,
		YawOnly:     cfg.YawOnly,
		InvertY:     cfg.InvertY,
		Movement:    cfg.Movement,
		View:        cfg.View,
		Fov:         cfg.Fov,
		Near:        cfg.Near,
		Far:         cfg.Far,
		AspectRatio: cfg.AspectRatio,
	}
	c.SetOrientation(cfg.Yaw, cfg.Pitch)
	c.UpdateProjection()
	c.dirty = true
	return c
}

// NewDefaultCamera creates a camera with DefaultConfig sized for a window.
func NewDefaultCamera(width, height int32) *Camera {
	cfg := DefaultConfig()
	if width > 0 && height > 0 {
		cfg.AspectRatio = float32(width) / float32(height)
	}
	return New(cfg)
}

// Apply updates the live tuning without touching position or yaw. Turning
// YawOnly on levels the pitch.
func (c *Camera) Apply(t Tuning) {
	c.Speed = t.Speed
	c.TimeScaled = t.TimeScaled
	c.Sensitivity = t.Sensitivity
	c.LookStep = t.LookStep
	c.SteppedLook = t.SteppedLook
	c.InvertY = t.InvertY
	if t.YawOnly != c.YawOnly {
		c.YawOnly = t.YawOnly
		c.SetOrientation(c.yaw, c.pitch)
	}
}

func (c *Camera) GetPosition() mgl32.Vec3 {
	return c.Position
}

func (c *Camera) Front() mgl32.Vec3 { return c.front }
func (c *Camera) Right() mgl32.Vec3 { return c.right }
func (c *Camera) Up() mgl32.Vec3    { return c.up }
func (c *Camera) Yaw() float32      { return c.yaw }
func (c *Camera) Pitch() float32    { return c.pitch }

// ConsumeDirty reports whether the camera moved or turned since the last
// call and clears the flag.
func (c *Camera) ConsumeDirty() bool {
	d := c.dirty
	c.dirty = false
	return d
}

func (c *Camera) UpdateProjection() {
	c.Projection = mgl32.Perspective(mgl32.DegToRad(c.Fov), c.AspectRatio, c.Near, c.Far)
	c.dirty = true
}

// Setter methods that automatically update projection
func (c *Camera) SetFov(fov float32) {
	c.Fov = fov
	c.UpdateProjection()
}

func (c *Camera) SetAspectRatio(aspectRatio float32) {
	c.AspectRatio = aspectRatio
	c.UpdateProjection()
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return c.Projection
}

func (c *Camera) GetViewProjection() mgl32.Mat4 {
	return c.Projection.Mul4(c.GetViewMatrix())
}
