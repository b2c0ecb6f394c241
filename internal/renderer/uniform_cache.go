package renderer

import (
	"FlyCam/internal/camera"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// UniformCache caches uniform locations to avoid repeated gl.GetUniformLocation calls
type UniformCache struct {
	locations map[string]int32
	program   uint32
	layout    camera.MatrixLayout
}

// NewUniformCache creates a new uniform cache for a shader program. Matrices
// are uploaded in layout.
func NewUniformCache(program uint32, layout camera.MatrixLayout) *UniformCache {
	return &UniformCache{
		locations: make(map[string]int32),
		program:   program,
		layout:    layout,
	}
}

// GetLocation returns the cached uniform location or fetches and caches it
func (uc *UniformCache) GetLocation(name string) int32 {
	if loc, exists := uc.locations[name]; exists {
		return loc
	}

	loc := gl.GetUniformLocation(uc.program, gl.Str(name+"\x00"))
	uc.locations[name] = loc
	return loc
}

func (uc *UniformCache) SetFloat(name string, value float32) {
	loc := uc.GetLocation(name)
	if loc != -1 {
		gl.Uniform1f(loc, value)
	}
}

func (uc *UniformCache) SetVec3(name string, v mgl32.Vec3) {
	loc := uc.GetLocation(name)
	if loc != -1 {
		gl.Uniform3f(loc, v.X(), v.Y(), v.Z())
	}
}

// SetMat4 uploads m in the cache's layout; GL transposes row-major data
// back, so the shader always sees m.
func (uc *UniformCache) SetMat4(name string, m mgl32.Mat4) {
	loc := uc.GetLocation(name)
	if loc == -1 {
		return
	}
	data := camera.ToLinmath(m, uc.layout)
	gl.UniformMatrix4fv(loc, 1, uc.layout.Transpose(), &data[0][0])
}

func (uc *UniformCache) Layout() camera.MatrixLayout {
	return uc.layout
}

// Clear clears the cache (call when shader program changes)
func (uc *UniformCache) Clear() {
	uc.locations = make(map[string]int32)
}
