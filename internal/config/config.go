package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"FlyCam/internal/camera"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported config format")

type Config struct {
	Window WindowConfig `yaml:"window" toml:"window" json:"window"`
	Camera CameraConfig `yaml:"camera" toml:"camera" json:"camera"`
	Scene  SceneConfig  `yaml:"scene" toml:"scene" json:"scene"`
	Log    LogConfig    `yaml:"log" toml:"log" json:"log"`
}

type WindowConfig struct {
	Title  string `yaml:"title" toml:"title" json:"title"`
	Width  int32  `yaml:"width" toml:"width" json:"width"`
	Height int32  `yaml:"height" toml:"height" json:"height"`
	X      int    `yaml:"x" toml:"x" json:"x"`
	Y      int    `yaml:"y" toml:"y" json:"y"`
	VSync  bool   `yaml:"vsync" toml:"vsync" json:"vsync"`
}

type CameraConfig struct {
	Position     [3]float32 `yaml:"position" toml:"position" json:"position"`
	Yaw          float32    `yaml:"yaw" toml:"yaw" json:"yaw"`
	Pitch        float32    `yaml:"pitch" toml:"pitch" json:"pitch"`
	Speed        float32    `yaml:"speed" toml:"speed" json:"speed"`
	TimeScaled   bool       `yaml:"time_scaled" toml:"time_scaled" json:"time_scaled"`
	Sensitivity  float32    `yaml:"sensitivity" toml:"sensitivity" json:"sensitivity"`
	LookStep     float32    `yaml:"look_step" toml:"look_step" json:"look_step"`
	SteppedLook  bool       `yaml:"stepped_look" toml:"stepped_look" json:"stepped_look"`
	YawOnly      bool       `yaml:"yaw_only" toml:"yaw_only" json:"yaw_only"`
	InvertY      bool       `yaml:"invert_y" toml:"invert_y" json:"invert_y"`
	Movement     string     `yaml:"movement" toml:"movement" json:"movement"`
	View         string     `yaml:"view" toml:"view" json:"view"`
	MatrixLayout string     `yaml:"matrix_layout" toml:"matrix_layout" json:"matrix_layout"`
	Fov          float32    `yaml:"fov" toml:"fov" json:"fov"`
	Near         float32    `yaml:"near" toml:"near" json:"near"`
	Far          float32    `yaml:"far" toml:"far" json:"far"`
	SprintFactor float32    `yaml:"sprint_factor" toml:"sprint_factor" json:"sprint_factor"`
}

type SceneConfig struct {
	Seed      int64   `yaml:"seed" toml:"seed" json:"seed"`
	Size      int     `yaml:"size" toml:"size" json:"size"`
	Spacing   float32 `yaml:"spacing" toml:"spacing" json:"spacing"`
	Amplitude float32 `yaml:"amplitude" toml:"amplitude" json:"amplitude"`
	SpawnDist float32 `yaml:"spawn_distance" toml:"spawn_distance" json:"spawn_distance"`
}

type LogConfig struct {
	Level       string `yaml:"level" toml:"level" json:"level"`
	Development bool   `yaml:"development" toml:"development" json:"development"`
}

func Default() Config {
	cam := camera.DefaultConfig()
	return Config{
		Window: WindowConfig{
			Title:  "FlyCam",
			Width:  1024,
			Height: 768,
			X:      100,
			Y:      100,
			VSync:  true,
		},
		Camera: CameraConfig{
			Position:     [3]float32(cam.Position),
			Yaw:          cam.Yaw,
			Pitch:        cam.Pitch,
			Speed:        cam.Speed,
			TimeScaled:   cam.TimeScaled,
			Sensitivity:  cam.Sensitivity,
			LookStep:     cam.LookStep,
			Movement:     cam.Movement.String(),
			View:         cam.View.String(),
			MatrixLayout: camera.ColumnMajor.String(),
			Fov:          cam.Fov,
			Near:         cam.Near,
			Far:          cam.Far,
			SprintFactor: 2.5,
		},
		Scene: SceneConfig{
			Seed:      42,
			Size:      24,
			Spacing:   1.5,
			Amplitude: 4,
			SpawnDist: 2,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads path and decodes it on top of Default, picking the decoder from
// the file extension. The result is validated.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses data in the format named by ext (".yaml", ".toml", ...).
func Decode(data []byte, ext string) (Config, error) {
	cfg := Default()
	var err error
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(&cfg); errors.Is(err, io.EOF) {
			err = nil
		}
	case "toml":
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&cfg)
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&cfg)
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window: size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if err := c.Camera.Validate(); err != nil {
		return fmt.Errorf("camera: %w", err)
	}
	if c.Scene.Size < 0 {
		return fmt.Errorf("scene: size must not be negative, got %d", c.Scene.Size)
	}
	if c.Scene.Spacing <= 0 {
		return fmt.Errorf("scene: spacing must be positive, got %v", c.Scene.Spacing)
	}
	return nil
}

func (c CameraConfig) Validate() error {
	switch {
	case c.Speed <= 0:
		return fmt.Errorf("speed must be positive, got %v", c.Speed)
	case c.Sensitivity <= 0:
		return fmt.Errorf("sensitivity must be positive, got %v", c.Sensitivity)
	case c.SteppedLook && c.LookStep <= 0:
		return fmt.Errorf("look_step must be positive, got %v", c.LookStep)
	case c.Pitch <= -camera.MaxPitch || c.Pitch >= camera.MaxPitch:
		return fmt.Errorf("pitch must be strictly within ±%v, got %v", camera.MaxPitch, c.Pitch)
	case c.Fov <= 0 || c.Fov >= 180:
		return fmt.Errorf("fov must be within (0, 180), got %v", c.Fov)
	case c.Near <= 0:
		return fmt.Errorf("near must be positive, got %v", c.Near)
	case c.Far <= c.Near:
		return fmt.Errorf("far (%v) must be greater than near (%v)", c.Far, c.Near)
	case c.SprintFactor <= 0:
		return fmt.Errorf("sprint_factor must be positive, got %v", c.SprintFactor)
	}
	if _, err := camera.ParseMovementMode(c.Movement); err != nil {
		return err
	}
	if _, err := camera.ParseViewMode(c.View); err != nil {
		return err
	}
	if _, err := camera.ParseMatrixLayout(c.MatrixLayout); err != nil {
		return err
	}
	return nil
}

// ToCamera converts to a camera.Config. The aspect ratio comes from the
// window, not the file.
func (c CameraConfig) ToCamera(aspectRatio float32) (camera.Config, error) {
	movement, err := camera.ParseMovementMode(c.Movement)
	if err != nil {
		return camera.Config{}, err
	}
	view, err := camera.ParseViewMode(c.View)
	if err != nil {
		return camera.Config{}, err
	}
	return camera.Config{
		Position:    mgl32.Vec3(c.Position),
		Yaw:         c.Yaw,
		Pitch:       c.Pitch,
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Speed:       c.Speed,
		TimeScaled:  c.TimeScaled,
		Sensitivity: c.Sensitivity,
		LookStep:    c.LookStep,
		SteppedLook: c.SteppedLook,
		YawOnly:     c.YawOnly,
		InvertY:     c.InvertY,
		Movement:    movement,
		View:        view,
		Fov:         c.Fov,
		Near:        c.Near,
		Far:         c.Far,
		AspectRatio: aspectRatio,
	}, nil
}

func (c CameraConfig) Tuning() camera.Tuning {
	return camera.Tuning{
		Speed:       c.Speed,
		TimeScaled:  c.TimeScaled,
		Sensitivity: c.Sensitivity,
		LookStep:    c.LookStep,
		SteppedLook: c.SteppedLook,
		YawOnly:     c.YawOnly,
		InvertY:     c.InvertY,
	}
}

func (c CameraConfig) Layout() camera.MatrixLayout {
	layout, _ := camera.ParseMatrixLayout(c.MatrixLayout)
	return layout
}
