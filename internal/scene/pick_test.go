package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayIntersectSphere(t *testing.T) {
	ray := Ray{Origin: mgl32.Vec3{0, 0, 5}, Direction: mgl32.Vec3{0, 0, -1}}

	ok, d := RayIntersectSphere(ray, mgl32.Vec3{}, 1)
	require.True(t, ok)
	assert.InDelta(t, 4, d, 1e-5)

	ok, _ = RayIntersectSphere(ray, mgl32.Vec3{0, 0, 10}, 1)
	assert.False(t, ok, "sphere behind the ray")

	ok, _ = RayIntersectSphere(ray, mgl32.Vec3{3, 0, 0}, 1)
	assert.False(t, ok)
}

func TestRayIntersectCube(t *testing.T) {
	ray := Ray{Origin: mgl32.Vec3{0, 0, 5}, Direction: mgl32.Vec3{0, 0, -1}}

	ok, d, n := RayIntersectCube(ray, mgl32.Vec3{})
	require.True(t, ok)
	assert.InDelta(t, 4.5, d, 1e-5)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, n)

	down := Ray{Origin: mgl32.Vec3{0.2, 10, -0.3}, Direction: mgl32.Vec3{0, -1, 0}}
	ok, d, n = RayIntersectCube(down, mgl32.Vec3{})
	require.True(t, ok)
	assert.InDelta(t, 9.5, d, 1e-5)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, n)

	miss := Ray{Origin: mgl32.Vec3{2, 0, 5}, Direction: mgl32.Vec3{0, 0, -1}}
	ok, _, _ = RayIntersectCube(miss, mgl32.Vec3{})
	assert.False(t, ok)
}

func TestPickNearest(t *testing.T) {
	s := New([]Cube{
		{Position: mgl32.Vec3{0, 0, -6}},
		{Position: mgl32.Vec3{0, 0, -3}},
		{Position: mgl32.Vec3{5, 0, -3}},
	})
	ray := Ray{Origin: mgl32.Vec3{}, Direction: mgl32.Vec3{0, 0, -1}}

	hit, ok := s.Pick(ray, 100)
	require.True(t, ok)
	assert.Equal(t, 1, hit.Index)
	assert.InDelta(t, 2.5, hit.Distance, 1e-5)

	_, ok = s.Pick(ray, 2)
	assert.False(t, ok, "nearest cube is out of reach")
}

func TestPlacement(t *testing.T) {
	s := New([]Cube{{Position: mgl32.Vec3{0, 0, -3}}})
	ray := Ray{Origin: mgl32.Vec3{}, Direction: mgl32.Vec3{0, 0, -1}}

	assert.Equal(t, mgl32.Vec3{0, 0, -2}, s.Placement(ray, 20, 4))

	up := Ray{Origin: mgl32.Vec3{}, Direction: mgl32.Vec3{0, 1, 0}}
	assert.Equal(t, mgl32.Vec3{0, 4, 0}, s.Placement(up, 20, 4))

	assert.Equal(t, mgl32.Vec3{0, 0, -4}, s.Placement(ray, 2, 4), "hit beyond reach falls back")
	assert.Equal(t, 1, s.Len())
}
