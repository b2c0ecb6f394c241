package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// cubeHalf is half the edge of a unit cube; cubeBound is its bounding radius.
const (
	cubeHalf  float32 = 0.5
	cubeBound float32 = 0.8660254
)

// Ray represents a ray in 3D space. Direction must be normalized.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// Hit describes the nearest cube a ray touches.
type Hit struct {
	Index    int
	Distance float32
	Point    mgl32.Vec3
	Normal   mgl32.Vec3 // outward normal of the face that was hit
}

// RayIntersectSphere tests if a ray intersects a sphere and returns the
// nearest non-negative distance.
func RayIntersectSphere(ray Ray, center mgl32.Vec3, radius float32) (bool, float32) {
	oc := ray.Origin.Sub(center)

	b := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius
	discriminant := b*b - c
	if discriminant < 0 {
		return false, 0
	}

	sqrtDisc := math32.Sqrt(discriminant)
	t1, t2 := -b-sqrtDisc, -b+sqrtDisc
	switch {
	case t1 >= 0:
		return true, t1
	case t2 >= 0:
		return true, 0 // origin is inside the sphere
	}
	return false, 0
}

// RayIntersectCube runs the slab test against the unit cube at center and
// returns the entry distance and the face normal.
func RayIntersectCube(ray Ray, center mgl32.Vec3) (bool, float32, mgl32.Vec3) {
	tNear, tFar := float32(-math32.MaxFloat32), float32(math32.MaxFloat32)
	var normal mgl32.Vec3

	for axis := 0; axis < 3; axis++ {
		origin, dir := ray.Origin[axis], ray.Direction[axis]
		lo, hi := center[axis]-cubeHalf, center[axis]+cubeHalf
		if math32.Abs(dir) < 1e-8 {
			if origin < lo || origin > hi {
				return false, 0, mgl32.Vec3{}
			}
			continue
		}
		t1, t2 := (lo-origin)/dir, (hi-origin)/dir
		var n mgl32.Vec3
		n[axis] = -1
		if t1 > t2 {
			t1, t2 = t2, t1
			n[axis] = 1
		}
		if t1 > tNear {
			tNear = t1
			normal = n
		}
		if t2 < tFar {
			tFar = t2
		}
		if tNear > tFar || tFar < 0 {
			return false, 0, mgl32.Vec3{}
		}
	}
	if tNear < 0 {
		return true, 0, normal
	}
	return true, tNear, normal
}

// Pick returns the nearest cube along ray within maxDistance.
func (s *Scene) Pick(ray Ray, maxDistance float32) (Hit, bool) {
	best := Hit{Index: -1, Distance: maxDistance}
	for i := range s.cubes {
		center := s.cubes[i].Position
		if ok, d := RayIntersectSphere(ray, center, cubeBound); !ok || d > best.Distance {
			continue
		}
		ok, d, n := RayIntersectCube(ray, center)
		if !ok || d > best.Distance {
			continue
		}
		best = Hit{Index: i, Distance: d, Point: ray.Origin.Add(ray.Direction.Mul(d)), Normal: n}
	}
	return best, best.Index >= 0
}

// Placement returns where a cube placed along ray goes: against the face of
// the first cube hit, or fallback units along the ray when nothing is within
// reach.
func (s *Scene) Placement(ray Ray, reach, fallback float32) mgl32.Vec3 {
	if hit, ok := s.Pick(ray, reach); ok {
		return s.cubes[hit.Index].Position.Add(hit.Normal)
	}
	return ray.Origin.Add(ray.Direction.Mul(fallback))
}
