package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/spincube/engine/core"
)

// Backend names accepted in [output].backend.
const (
	BackendWindow   = "window"
	BackendSoftware = "software"
)

type ApplicationConfig struct {
	// The application name used in windowing and logs.
	Name string `toml:"name"`
}

type WindowConfig struct {
	// Window starting position, if applicable.
	PosX uint32 `toml:"pos_x"`
	PosY uint32 `toml:"pos_y"`
	// Window (or image) size in pixels.
	Width  uint32 `toml:"width"`
	Height uint32 `toml:"height"`
}

type AnimationConfig struct {
	// Radians added to the rotation every frame.
	RotationStep float32 `toml:"rotation_step"`
	// Amount the +/- keys change the step by.
	StepIncrement float32 `toml:"step_increment"`
	// Upper bound for the step; the lower bound is always 0.
	MaxStep float32 `toml:"max_step"`
}

type CameraConfig struct {
	FovDegrees  float32    `toml:"fov_degrees"`
	Near        float32    `toml:"near"`
	Far         float32    `toml:"far"`
	ClearColour [4]float32 `toml:"clear_colour"`
}

type OutputConfig struct {
	// "window" opens a GLFW window, "software" renders PNG frames headless.
	Backend string `toml:"backend"`
	// Number of frames to render before exiting, 0 runs until closed.
	Frames uint64 `toml:"frames"`
	// Where the software backend writes frames. Empty keeps them in memory.
	Directory string `toml:"directory"`
	// Draws the rotation step and frame counter over the image.
	HUD bool `toml:"hud"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type Config struct {
	Application ApplicationConfig `toml:"application"`
	Window      WindowConfig      `toml:"window"`
	Animation   AnimationConfig   `toml:"animation"`
	Camera      CameraConfig      `toml:"camera"`
	Output      OutputConfig      `toml:"output"`
	Log         LogConfig         `toml:"log"`
}

// Default returns the settings of the classic three cube demo: a 360x360
// window, a 60° camera looking down -Z and a slow spin.
func Default() *Config {
	return &Config{
		Application: ApplicationConfig{
			Name: "Spinning Cubes",
		},
		Window: WindowConfig{
			PosX:   20,
			PosY:   60,
			Width:  360,
			Height: 360,
		},
		Animation: AnimationConfig{
			RotationStep:  0.0001,
			StepIncrement: 0.0001,
			MaxStep:       0.001,
		},
		Camera: CameraConfig{
			FovDegrees:  60,
			Near:        0.1,
			Far:         80,
			ClearColour: [4]float32{0.5, 0.7, 0.9, 1},
		},
		Output: OutputConfig{
			Backend: BackendWindow,
			HUD:     true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a TOML file on top of the defaults. Keys missing from the file
// keep their default value; unknown keys are an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the ranges the renderer and scene rely on.
func (c *Config) Validate() error {
	invalid := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s", core.ErrInvalidConfig, fmt.Sprintf(format, args...))
	}
	if c.Window.Width == 0 || c.Window.Height == 0 {
		return invalid("window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Animation.MaxStep < 0 {
		return invalid("max_step %g is negative", c.Animation.MaxStep)
	}
	if c.Animation.RotationStep < 0 || c.Animation.RotationStep > c.Animation.MaxStep {
		return invalid("rotation_step %g outside [0, %g]", c.Animation.RotationStep, c.Animation.MaxStep)
	}
	if c.Animation.StepIncrement < 0 {
		return invalid("step_increment %g is negative", c.Animation.StepIncrement)
	}
	if c.Camera.FovDegrees <= 0 || c.Camera.FovDegrees >= 180 {
		return invalid("fov_degrees %g outside (0, 180)", c.Camera.FovDegrees)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return invalid("clip planes near=%g far=%g", c.Camera.Near, c.Camera.Far)
	}
	switch c.Output.Backend {
	case BackendWindow, BackendSoftware:
	default:
		return fmt.Errorf("%w: %q", core.ErrUnknownBackend, c.Output.Backend)
	}
	if _, err := core.ParseLogLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// LogLevel returns the parsed [log].level. Validate has already rejected
// unknown names.
func (c *Config) LogLevel() core.LogLevel {
	lvl, _ := core.ParseLogLevel(c.Log.Level)
	return lvl
}

// Aspect returns width / height.
func (c *Config) Aspect() float32 {
	return float32(c.Window.Width) / float32(c.Window.Height)
}
