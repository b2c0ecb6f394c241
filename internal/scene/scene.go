package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// SpawnColor marks cubes inserted while the demo runs.
var SpawnColor = mgl32.Vec3{0.9, 0.5, 0.1}

// Scene is the set of cubes drawn each frame. It is owned by the render
// thread.
type Scene struct {
	cubes   []Cube
	spawned int
}

func New(cubes []Cube) *Scene {
	return &Scene{cubes: cubes}
}

// Add inserts a cube at position and returns it.
func (s *Scene) Add(position mgl32.Vec3) Cube {
	cube := Cube{Position: position, Color: SpawnColor}
	s.cubes = append(s.cubes, cube)
	s.spawned++
	return cube
}

func (s *Scene) Cubes() []Cube {
	return s.cubes
}

func (s *Scene) Len() int {
	return len(s.cubes)
}

func (s *Scene) Spawned() int {
	return s.spawned
}
