package camera

import "github.com/go-gl/mathgl/mgl32"

type Plane struct {
	Normal   mgl32.Vec3
	Distance float32
}

type Frustum struct {
	Planes [6]Plane
}

// clipPlanes pairs each plane with the clip-space row it is tested against
// and the sign applied to it: w+x >= 0 is the left plane, w-x >= 0 the
// right, and so on for y and z.
var clipPlanes = [6]struct {
	row  int
	sign float32
}{
	{0, 1}, {0, -1}, // left, right
	{1, 1}, {1, -1}, // bottom, top
	{2, 1}, {2, -1}, // near, far
}

// CalculateFrustum extracts the six clip planes from the view-projection
// matrix. Normals point inwards and are normalized.
func (c *Camera) CalculateFrustum() Frustum {
	vp := c.GetViewProjection()
	w := vp.Row(3)

	var frustum Frustum
	for i, cp := range clipPlanes {
		eq := w.Add(vp.Row(cp.row).Mul(cp.sign))
		normal := eq.Vec3()
		if length := normal.Len(); length > 0 {
			frustum.Planes[i] = Plane{Normal: normal.Mul(1 / length), Distance: eq.W() / length}
			continue
		}
		frustum.Planes[i] = Plane{Normal: normal, Distance: eq.W()}
	}
	return frustum
}

func (p *Plane) DistanceToPoint(point mgl32.Vec3) float32 {
	return p.Normal.Dot(point) + p.Distance
}

// IntersectsSphere reports whether any part of the sphere is inside, i.e.
// no plane has the whole sphere on its outer side.
func (f *Frustum) IntersectsSphere(center mgl32.Vec3, radius float32) bool {
	for _, plane := range f.Planes {
		if plane.DistanceToPoint(center) < -radius {
			return false
		}
	}
	return true
}
