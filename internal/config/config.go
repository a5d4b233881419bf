// Package config handles viewer configuration loading and management.
package config

// Window backends accepted by window.Open.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds all viewer settings.
type Config struct {
	Window       WindowConfig       `yaml:"window"`
	Controls     ControlsConfig     `yaml:"controls"`
	Tessellation TessellationConfig `yaml:"tessellation"`
	Logging      LoggingConfig      `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	VSync   bool   `yaml:"vsync"`
	Backend string `yaml:"backend"` // sdl or glfw
}

// ControlsConfig holds rotation speeds, in degrees.
type ControlsConfig struct {
	ArrowStep   float32 `yaml:"arrow_step"`
	DragDegrees float32 `yaml:"drag_degrees"`
}

// TessellationConfig holds tessellation limits and the start-up shape.
type TessellationConfig struct {
	MaxSphereDepth int    `yaml:"max_sphere_depth"`
	InitialShape   string `yaml:"initial_shape"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:   "Tessellation Viewer",
			Width:   800,
			Height:  700,
			VSync:   true,
			Backend: BackendSDL,
		},
		Controls: ControlsConfig{
			ArrowStep:   1.5,
			DragDegrees: 180,
		},
		Tessellation: TessellationConfig{
			MaxSphereDepth: 6,
			InitialShape:   "cube",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
