package renderer

import "github.com/go-gl/mathgl/mgl32"

const (
	// CubeVertexCount is two triangles per face.
	CubeVertexCount = 36
	// cubeStride is position (3) + normal (3) floats.
	cubeStride = 6
	// CubeRadius bounds a unit cube for frustum tests.
	CubeRadius float32 = 0.8660254
)

var cubeFaces = [6][3]mgl32.Vec3{
	// normal, u, v with u x v = normal
	{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}},
	{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
	{{0, 0, -1}, {0, 1, 0}, {1, 0, 0}},
}

// CubeVertices returns an interleaved unit cube centred on the origin with
// counter-clockwise outward faces.
func CubeVertices() []float32 {
	corners := [6][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, -1}, {1, 1}, {-1, 1}}

	data := make([]float32, 0, CubeVertexCount*cubeStride)
	for _, face := range cubeFaces {
		n, u, v := face[0], face[1], face[2]
		for _, c := range corners {
			p := n.Add(u.Mul(c[0])).Add(v.Mul(c[1])).Mul(0.5)
			data = append(data, p[0], p[1], p[2], n[0], n[1], n[2])
		}
	}
	return data
}
