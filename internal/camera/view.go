package camera

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// ViewMode selects how GetViewMatrix builds the view transform. Both produce
// the same matrix up to rounding.
type ViewMode int

const (
	// LookAtView aims at Position+front with the derived up vector.
	LookAtView ViewMode = iota
	// TranslateRotateView composes translate(-Position) with the yaw and
	// pitch rotations.
	TranslateRotateView
)

func (v ViewMode) String() string {
	switch v {
	case LookAtView:
		return "look_at"
	case TranslateRotateView:
		return "translate_rotate"
	}
	return fmt.Sprintf("ViewMode(%d)", int(v))
}

func ParseViewMode(s string) (ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "look_at", "lookat":
		return LookAtView, nil
	case "translate_rotate", "translate":
		return TranslateRotateView, nil
	}
	return LookAtView, fmt.Errorf("unknown view mode %q", s)
}

// GetViewMatrix maps world space into view space, with the camera looking
// down -Z.
func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	if c.View == TranslateRotateView {
		return c.translateRotate()
	}
	return mgl32.LookAtV(c.Position, c.Position.Add(c.front), c.up)
}

// translateRotate turns front onto -Z: yaw+90 about Y brings the horizontal
// part of front onto -Z, then -pitch about X levels it.
func (c *Camera) translateRotate() mgl32.Mat4 {
	rotation := mgl32.HomogRotate3DX(mgl32.DegToRad(-c.pitch)).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(c.yaw + 90)))
	translation := mgl32.Translate3D(-c.Position.X(), -c.Position.Y(), -c.Position.Z())
	return rotation.Mul4(translation)
}

// Ray un-projects a cursor position (top-left origin) into a world-space
// ray starting at the camera position.
func (c *Camera) Ray(screenX, screenY float32, windowWidth, windowHeight int) (origin, direction mgl32.Vec3) {
	if windowWidth <= 0 || windowHeight <= 0 {
		return c.Position, c.front
	}
	ndcX := 2.0*screenX/float32(windowWidth) - 1.0
	ndcY := 1.0 - 2.0*screenY/float32(windowHeight)

	inv := c.GetViewProjection().Inv()
	near := inv.Mul4x1(mgl32.Vec4{ndcX, ndcY, -1, 1})
	far := inv.Mul4x1(mgl32.Vec4{ndcX, ndcY, 1, 1})
	if near.W() == 0 || far.W() == 0 {
		return c.Position, c.front
	}
	nearPoint := near.Vec3().Mul(1 / near.W())
	farPoint := far.Vec3().Mul(1 / far.W())

	return c.Position, farPoint.Sub(nearPoint).Normalize()
}
