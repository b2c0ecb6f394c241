package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"FlyCam/internal/camera"
	"FlyCam/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "free_fly", cfg.Camera.Movement)
	assert.True(t, cfg.Camera.TimeScaled)
}

func TestDecodeYAMLKeepsDefaults(t *testing.T) {
	data := []byte(`
camera:
  speed: 7.5
  movement: axis_aligned
  position: [1, 2, 3]
scene:
  seed: 9
`)
	cfg, err := Decode(data, ".yaml")
	require.NoError(t, err)

	assert.Equal(t, float32(7.5), cfg.Camera.Speed)
	assert.Equal(t, "axis_aligned", cfg.Camera.Movement)
	assert.Equal(t, [3]float32{1, 2, 3}, cfg.Camera.Position)
	assert.Equal(t, int64(9), cfg.Scene.Seed)
	assert.Equal(t, Default().Camera.Sensitivity, cfg.Camera.Sensitivity)
	assert.Equal(t, Default().Window, cfg.Window)
}

func TestDecodeEmptyYAML(t *testing.T) {
	cfg, err := Decode(nil, "yml")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDecodeFormatsAgree(t *testing.T) {
	yamlData := []byte("camera:\n  speed: 4.0\n  invert_y: true\n  view: translate_rotate\nwindow:\n  width: 640\n  height: 480\n")
	tomlData := []byte("[camera]\nspeed = 4.0\ninvert_y = true\nview = \"translate_rotate\"\n\n[window]\nwidth = 640\nheight = 480\n")
	jsonData := []byte(`{"camera": {"speed": 4.0, "invert_y": true, "view": "translate_rotate"}, "window": {"width": 640, "height": 480}}`)

	fromYAML, err := Decode(yamlData, ".yaml")
	require.NoError(t, err)
	fromTOML, err := Decode(tomlData, ".toml")
	require.NoError(t, err)
	fromJSON, err := Decode(jsonData, ".json")
	require.NoError(t, err)

	assert.Equal(t, fromYAML, fromTOML)
	assert.Equal(t, fromYAML, fromJSON)
	assert.Equal(t, int32(640), fromYAML.Window.Width)
	assert.Equal(t, "FlyCam", fromYAML.Window.Title)
}

func TestDecodeRejects(t *testing.T) {
	cases := map[string]struct {
		data []byte
		ext  string
	}{
		"unknown field":    {[]byte("camera:\n  sped: 3\n"), ".yaml"},
		"negative speed":   {[]byte("camera:\n  speed: -1\n"), ".yaml"},
		"pitch at pole":    {[]byte("camera:\n  pitch: 90\n"), ".yaml"},
		"pitch at limit":   {[]byte("camera:\n  pitch: -89\n"), ".yaml"},
		"zero sprint":      {[]byte("camera:\n  sprint_factor: 0\n"), ".yaml"},
		"negative sprint":  {[]byte("[camera]\nsprint_factor = -2.0\n"), ".toml"},
		"far before near":  {[]byte(`{"camera": {"near": 10, "far": 1}}`), ".json"},
		"bad movement":     {[]byte("[camera]\nmovement = \"teleport\"\n"), ".toml"},
		"bad layout":       {[]byte("camera:\n  matrix_layout: diagonal\n"), ".yaml"},
		"zero window":      {[]byte("window:\n  width: 0\n"), ".yaml"},
		"malformed json":   {[]byte(`{"camera": `), ".json"},
		"negative scene":   {[]byte("scene:\n  size: -3\n"), ".yaml"},
		"stepped no steps": {[]byte("camera:\n  stepped_look: true\n  look_step: 0\n"), ".yaml"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(tc.data, tc.ext)
			assert.Error(t, err)
		})
	}
}

func TestDecodeUnsupportedFormat(t *testing.T) {
	_, err := Decode([]byte("x"), ".ini")
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestToCamera(t *testing.T) {
	cc := Default().Camera
	cc.Position = [3]float32{0, 0, 0}
	cc.Speed = 1
	cc.Movement = "axis_aligned"
	cc.View = "translate_rotate"

	camCfg, err := cc.ToCamera(2)
	require.NoError(t, err)
	assert.Equal(t, camera.AxisAlignedStep, camCfg.Movement)
	assert.Equal(t, camera.TranslateRotateView, camCfg.View)
	assert.Equal(t, float32(2), camCfg.AspectRatio)

	cam := camera.New(camCfg)
	cam.ProcessMovement(camera.Forward, 1)
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, cam.GetPosition())
}

func TestTuningAndLayout(t *testing.T) {
	cc := Default().Camera
	cc.Speed = 11
	cc.InvertY = true
	cc.YawOnly = true
	cc.MatrixLayout = "row_major"

	tuning := cc.Tuning()
	assert.Equal(t, float32(11), tuning.Speed)
	assert.True(t, tuning.InvertY)
	assert.True(t, tuning.YawOnly)
	assert.Equal(t, camera.RowMajor, cc.Layout())
}

func TestWatcherPublishesReload(t *testing.T) {
	logger.Log = zaptest.NewLogger(t)

	path := filepath.Join(t.TempDir(), "flycam.yaml")
	require.NoError(t, os.WriteFile(path, []byte("camera:\n  speed: 3.0\n"), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("camera:\n  speed: 12.0\n"), 0o644))

	select {
	case cfg := <-w.Configs:
		assert.Equal(t, float32(12), cfg.Camera.Speed)
	case err := <-w.Errors:
		t.Fatalf("unexpected watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherReportsInvalidFile(t *testing.T) {
	logger.Log = zaptest.NewLogger(t)

	path := filepath.Join(t.TempDir(), "flycam.yaml")
	require.NoError(t, os.WriteFile(path, []byte("camera:\n  speed: 3.0\n"), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("camera:\n  speed: -3.0\n"), 0o644))

	select {
	case err := <-w.Errors:
		assert.Error(t, err)
	case cfg := <-w.Configs:
		t.Fatalf("invalid config should not be published: %+v", cfg)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload error")
	}
}

func TestShippedConfigsLoad(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "configs", "flycam.yaml"))
	require.NoError(t, err)
	assert.Equal(t, int32(1280), cfg.Window.Width)
	assert.Equal(t, [3]float32{0, 2, 14}, cfg.Camera.Position)

	tutorial, err := Load(filepath.Join("..", "..", "configs", "tutorial.toml"))
	require.NoError(t, err)
	assert.True(t, tutorial.Camera.YawOnly)
	assert.True(t, tutorial.Camera.SteppedLook)
	assert.False(t, tutorial.Camera.TimeScaled)
	assert.Equal(t, "translate_rotate", tutorial.Camera.View)
}
