package renderer

import (
	"fmt"

	"FlyCam/internal/camera"
	"FlyCam/internal/logger"
	"FlyCam/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

type OpenGLRenderer struct {
	Layout   camera.MatrixLayout
	shader   Shader
	uniforms *UniformCache
	vao      uint32
	vbo      uint32
	frustum  camera.Frustum
	stats    FrameStats
}

func NewOpenGLRenderer(layout camera.MatrixLayout) *OpenGLRenderer {
	return &OpenGLRenderer{Layout: layout}
}

// Init expects the window's context to be current.
func (rend *OpenGLRenderer) Init(width, height int32, _ *glfw.Window) error {
	if err := gl.Init(); err != nil {
		logger.Log.Error("OpenGL initialization failed", zap.Error(err))
		return fmt.Errorf("init opengl: %w", err)
	}

	if Debug {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}
	gl.Viewport(0, 0, width, height)

	rend.shader = InitShader()
	if err := rend.shader.Compile(); err != nil {
		return err
	}
	rend.uniforms = NewUniformCache(rend.shader.Program(), rend.Layout)
	rend.uploadCube()

	logger.Log.Info("OpenGL render initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.Stringer("layout", rend.Layout))
	return nil
}

func (rend *OpenGLRenderer) uploadCube() {
	vertices := CubeVertices()

	gl.GenVertexArrays(1, &rend.vao)
	gl.BindVertexArray(rend.vao)

	gl.GenBuffers(1, &rend.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, rend.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	stride := int32(cubeStride * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
}

func (rend *OpenGLRenderer) UpdateViewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

// Render draws every cube that survives frustum culling. The frustum is only
// rebuilt when the camera reports a change.
func (rend *OpenGLRenderer) Render(cam *camera.Camera, light *Light, cubes []scene.Cube) {
	gl.ClearColor(ClearColorR, ClearColorG, ClearColorB, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if DepthTestEnabled {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthMask(true)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}

	// Culling : https://learnopengl.com/Advanced-OpenGL/Face-culling
	if FaceCullingEnabled {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
		gl.FrontFace(gl.CCW)
	} else {
		gl.Disable(gl.CULL_FACE)
	}

	if cam.ConsumeDirty() {
		rend.frustum = cam.CalculateFrustum()
	}

	rend.shader.Use()
	rend.uniforms.SetMat4("viewProjection", cam.GetViewProjection())
	rend.uniforms.SetVec3("viewPos", cam.GetPosition())
	if light != nil {
		rend.uniforms.SetVec3("light.position", light.Position)
		rend.uniforms.SetVec3("light.color", light.Color)
		rend.uniforms.SetFloat("light.intensity", light.Intensity)
		rend.uniforms.SetFloat("light.ambient", light.AmbientStrength)
	}

	gl.BindVertexArray(rend.vao)
	rend.stats = FrameStats{}
	for i := range cubes {
		cube := &cubes[i]
		if FrustumCullingEnabled && !rend.frustum.IntersectsSphere(cube.Position, CubeRadius) {
			rend.stats.Culled++
			continue
		}
		model := mgl32.Translate3D(cube.Position.X(), cube.Position.Y(), cube.Position.Z())
		rend.uniforms.SetMat4("model", model)
		rend.uniforms.SetVec3("objectColor", cube.Color)
		gl.DrawArrays(gl.TRIANGLES, 0, CubeVertexCount)
		rend.stats.Drawn++
	}
	gl.BindVertexArray(0)
}

func (rend *OpenGLRenderer) Stats() FrameStats {
	return rend.stats
}

func (rend *OpenGLRenderer) Cleanup() {
	if rend.vbo != 0 {
		gl.DeleteBuffers(1, &rend.vbo)
		rend.vbo = 0
	}
	if rend.vao != 0 {
		gl.DeleteVertexArrays(1, &rend.vao)
		rend.vao = 0
	}
	rend.shader.Delete()
	if rend.uniforms != nil {
		rend.uniforms.Clear()
	}
	logger.Log.Info("OpenGL render cleaned up")
}
