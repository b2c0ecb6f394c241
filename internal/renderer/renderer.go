package renderer

import (
	"FlyCam/internal/camera"
	"FlyCam/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

var FrustumCullingEnabled bool = true
var FaceCullingEnabled bool = true
var Debug bool = false
var DepthTestEnabled bool = true
var ClearColorR float32 = 0.1 // Background clear color red
var ClearColorG float32 = 0.1 // Background clear color green
var ClearColorB float32 = 0.12

type Light struct {
	Position        mgl32.Vec3
	Color           mgl32.Vec3
	Intensity       float32
	AmbientStrength float32
}

// FrameStats counts what the last Render call did.
type FrameStats struct {
	Drawn  int
	Culled int
}

type Render interface {
	Init(width, height int32, window *glfw.Window) error
	Render(cam *camera.Camera, light *Light, cubes []scene.Cube)
	UpdateViewport(width, height int32)
	Stats() FrameStats
	Cleanup()
}

func CreateLight() *Light {
	return &Light{
		Position:        mgl32.Vec3{10, 30, 10},
		Color:           mgl32.Vec3{1.0, 1.0, 1.0},
		Intensity:       1.0,
		AmbientStrength: 0.2,
	}
}
