package camera

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Direction is a movement intent. Forward, Backward, Left and Right are the
// canonical set; Up and Down move along the world up axis.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// MovementMode selects what a Direction means physically.
type MovementMode int

const (
	// FreeFlyRelative moves along the camera's current basis.
	FreeFlyRelative MovementMode = iota
	// AxisAlignedStep moves along fixed world axes regardless of facing.
	AxisAlignedStep
)

func (m MovementMode) String() string {
	switch m {
	case FreeFlyRelative:
		return "free_fly"
	case AxisAlignedStep:
		return "axis_aligned"
	}
	return fmt.Sprintf("MovementMode(%d)", int(m))
}

func ParseMovementMode(s string) (MovementMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "free_fly", "freefly", "relative":
		return FreeFlyRelative, nil
	case "axis_aligned", "axis", "world":
		return AxisAlignedStep, nil
	}
	return FreeFlyRelative, fmt.Errorf("unknown movement mode %q", s)
}

// ProcessMovement translates the camera one step in direction. The step is
// Speed*dt when TimeScaled, otherwise Speed. Orientation is never changed.
func (c *Camera) ProcessMovement(direction Direction, dt float32) {
	step := c.Speed
	if c.TimeScaled {
		step *= dt
	}
	if step == 0 {
		return
	}

	var axis mgl32.Vec3
	var sign float32 = 1
	switch c.Movement {
	case AxisAlignedStep:
		axis, sign = worldAxis(direction)
	default:
		switch direction {
		case Forward:
			axis = c.front
		case Backward:
			axis, sign = c.front, -1
		case Left:
			axis, sign = c.right, -1
		case Right:
			axis = c.right
		case Up:
			axis = c.WorldUp
		case Down:
			axis, sign = c.WorldUp, -1
		default:
			return
		}
	}

	c.Position = c.Position.Add(axis.Mul(sign * step))
	c.dirty = true
}

func worldAxis(direction Direction) (mgl32.Vec3, float32) {
	switch direction {
	case Forward:
		return mgl32.Vec3{0, 0, 1}, -1
	case Backward:
		return mgl32.Vec3{0, 0, 1}, 1
	case Left:
		return mgl32.Vec3{1, 0, 0}, -1
	case Right:
		return mgl32.Vec3{1, 0, 0}, 1
	case Up:
		return mgl32.Vec3{0, 1, 0}, 1
	case Down:
		return mgl32.Vec3{0, 1, 0}, -1
	}
	return mgl32.Vec3{}, 0
}
