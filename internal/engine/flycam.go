package engine

import (
	"fmt"
	"runtime"
	"time"

	"FlyCam/internal/camera"
	"FlyCam/internal/config"
	"FlyCam/internal/input"
	"FlyCam/internal/logger"
	"FlyCam/internal/renderer"
	"FlyCam/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const statsInterval = 5 * time.Second

// FlyCam owns the window, the camera and everything feeding it. Input
// callbacks only queue events; the render loop applies them at the top of
// each frame, so the camera has a single writer.
type FlyCam struct {
	Width    int32
	Height   int32
	Camera   *camera.Camera
	Light    *renderer.Light
	Scene    *scene.Scene
	CubeChan chan mgl32.Vec3 // cubes to insert, safe from any goroutine
	Bindings []KeyBinding

	cfg         config.Config
	rendererAPI renderer.Render
	window      *glfw.Window
	events      *input.Queue
	controller  *input.Controller
	watcher     *config.Watcher
	looking     bool
}

func NewFlyCam(cfg config.Config) (*FlyCam, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	camCfg, err := cfg.Camera.ToCamera(float32(cfg.Window.Width) / float32(cfg.Window.Height))
	if err != nil {
		return nil, err
	}
	cam := camera.New(camCfg)

	field := scene.GenerateField(scene.FieldConfig{
		Seed:      cfg.Scene.Seed,
		Size:      cfg.Scene.Size,
		Spacing:   cfg.Scene.Spacing,
		Amplitude: cfg.Scene.Amplitude,
	})

	logger.Log.Info("FlyCam initializing...",
		zap.Int("cubes", len(field)),
		zap.Stringer("movement", cam.Movement),
		zap.Stringer("view", cam.View),
		zap.Bool("timeScaled", cam.TimeScaled))

	return &FlyCam{
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		Camera:      cam,
		Light:       renderer.CreateLight(),
		Scene:       scene.New(field),
		CubeChan:    make(chan mgl32.Vec3, 64),
		Bindings:    DefaultBindings,
		cfg:         cfg,
		rendererAPI: renderer.NewOpenGLRenderer(cfg.Camera.Layout()),
		events:      input.NewQueue(),
		controller:  input.NewController(cam),
	}, nil
}

// Watch hot-reloads camera tuning from path while the demo runs.
func (f *FlyCam) Watch(path string) error {
	w, err := config.NewWatcher(path)
	if err != nil {
		return err
	}
	f.watcher = w
	logger.Log.Info("Watching config", zap.String("path", path))
	return nil
}

// Run opens the window and blocks until it is closed. It must be called from
// the main goroutine.
func (f *FlyCam) Run() error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		logger.Log.Error("Could not initialize glfw", zap.Error(err))
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(f.Width), int(f.Height), f.cfg.Window.Title, nil, nil)
	if err != nil {
		logger.Log.Error("Could not create glfw window", zap.Error(err))
		return fmt.Errorf("create window: %w", err)
	}
	f.window = window
	defer window.Destroy()

	window.MakeContextCurrent()
	if f.cfg.Window.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	window.SetPos(f.cfg.Window.X, f.cfg.Window.Y)
	styleWindow(window, renderer.ClearColorR, renderer.ClearColorG, renderer.ClearColorB)

	fbWidth, fbHeight := window.GetFramebufferSize()
	if err := f.rendererAPI.Init(int32(fbWidth), int32(fbHeight), window); err != nil {
		return err
	}
	defer f.rendererAPI.Cleanup()

	window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	window.SetCursorPosCallback(f.cursorCallback)
	window.SetMouseButtonCallback(f.mouseButtonCallback)
	window.SetKeyCallback(f.keyCallback)
	window.SetFramebufferSizeCallback(f.framebufferSizeCallback)

	if f.watcher != nil {
		defer f.watcher.Close()
	}

	f.RenderLoop()
	return nil
}

func (f *FlyCam) RenderLoop() {
	lastTime := glfw.GetTime()
	lastStats := time.Now()
	frames := 0

	for !f.window.ShouldClose() {
		currentTime := glfw.GetTime()
		deltaTime := currentTime - lastTime
		lastTime = currentTime

		glfw.PollEvents()
		f.update(float32(deltaTime))

		f.rendererAPI.Render(f.Camera, f.Light, f.Scene.Cubes())
		f.window.SwapBuffers()

		frames++
		if elapsed := time.Since(lastStats); elapsed >= statsInterval {
			f.logStats(float64(frames) / elapsed.Seconds())
			frames = 0
			lastStats = time.Now()
		}
	}
}

// update applies everything queued since the last frame, in the order:
// held keys, input events, inserted cubes, config reloads.
func (f *FlyCam) update(dt float32) {
	sprint := float32(1)
	if f.window.GetKey(glfw.KeyLeftShift) == glfw.Press || f.window.GetKey(glfw.KeyRightShift) == glfw.Press {
		sprint = f.cfg.Camera.SprintFactor
	}
	pressed := func(k glfw.Key) bool { return f.window.GetKey(k) == glfw.Press }
	for _, dir := range heldDirections(pressed, f.Bindings) {
		f.events.Push(input.Movement(dir, sprint))
	}

	f.controller.Apply(f.events.Drain(), dt)
	f.drainCubes()
	f.drainReloads()
}

func (f *FlyCam) drainCubes() {
	for {
		select {
		case pos := <-f.CubeChan:
			f.Scene.Add(pos)
			logger.Log.Debug("Cube inserted", zap.Float32("x", pos.X()), zap.Float32("y", pos.Y()), zap.Float32("z", pos.Z()))
		default:
			return
		}
	}
}

func (f *FlyCam) drainReloads() {
	if f.watcher == nil {
		return
	}
	select {
	case cfg := <-f.watcher.Configs:
		f.applyConfig(cfg)
	case err := <-f.watcher.Errors:
		logger.Log.Warn("Config watcher error", zap.Error(err))
	default:
	}
}

// applyConfig takes the live-tunable parts of a reloaded config. Pose and
// window size are left alone.
func (f *FlyCam) applyConfig(cfg config.Config) {
	cc := cfg.Camera
	if cc.Layout() != f.cfg.Camera.Layout() {
		logger.Log.Warn("matrix_layout change needs a restart",
			zap.Stringer("current", f.cfg.Camera.Layout()),
			zap.Stringer("requested", cc.Layout()))
		cc.MatrixLayout = f.cfg.Camera.MatrixLayout
	}
	f.Camera.Apply(cc.Tuning())
	if movement, err := camera.ParseMovementMode(cc.Movement); err == nil {
		f.Camera.Movement = movement
	}
	if view, err := camera.ParseViewMode(cc.View); err == nil {
		f.Camera.View = view
	}
	f.Camera.Fov, f.Camera.Near, f.Camera.Far = cc.Fov, cc.Near, cc.Far
	f.Camera.UpdateProjection()

	if err := logger.SetLevel(cfg.Log.Level); err != nil {
		logger.Log.Warn("Ignoring log level", zap.String("level", cfg.Log.Level), zap.Error(err))
	}
	f.cfg.Camera = cc
	f.cfg.Log = cfg.Log
	logger.Log.Info("Camera tuning applied",
		zap.Float32("speed", cc.Speed),
		zap.Float32("sensitivity", cc.Sensitivity),
		zap.Bool("timeScaled", cc.TimeScaled))
}

// InsertCube queues a cube; it is added at the top of the next frame.
func (f *FlyCam) InsertCube(pos mgl32.Vec3) bool {
	select {
	case f.CubeChan <- pos:
		return true
	default:
		logger.Log.Warn("Cube queue full, dropping insert")
		return false
	}
}

func (f *FlyCam) logStats(fps float64) {
	stats := f.rendererAPI.Stats()
	pos := f.Camera.GetPosition()
	logger.Log.Debug("Frame stats",
		zap.Float64("fps", fps),
		zap.Int("drawn", stats.Drawn),
		zap.Int("culled", stats.Culled),
		zap.Int("spawned", f.Scene.Spawned()),
		zap.Float32s("position", pos[:]),
		zap.Float32("heading", f.Camera.Heading()),
		zap.Float32("pitch", f.Camera.Pitch()))
	f.window.SetTitle(fmt.Sprintf("%s | %.0f fps | pos (%.1f, %.1f, %.1f) heading %.0f°",
		f.cfg.Window.Title, fps, pos.X(), pos.Y(), pos.Z(), f.Camera.Heading()))
}
