package config

import (
	"fmt"
	"strings"

	"github.com/Faultbox/tessview/internal/tessellate"
)

// Validate replaces out-of-range values with their defaults and returns a
// description of every correction made.
func (c *Config) Validate() []string {
	def := Default()
	var fixed []string

	if c.Window.Width <= 0 {
		fixed = append(fixed, fmt.Sprintf("window.width %d, using %d", c.Window.Width, def.Window.Width))
		c.Window.Width = def.Window.Width
	}
	if c.Window.Height <= 0 {
		fixed = append(fixed, fmt.Sprintf("window.height %d, using %d", c.Window.Height, def.Window.Height))
		c.Window.Height = def.Window.Height
	}

	switch b := strings.ToLower(c.Window.Backend); b {
	case BackendSDL, BackendGLFW:
		c.Window.Backend = b
	default:
		fixed = append(fixed, fmt.Sprintf("window.backend %q, using %q", c.Window.Backend, def.Window.Backend))
		c.Window.Backend = def.Window.Backend
	}

	if c.Controls.ArrowStep <= 0 {
		fixed = append(fixed, fmt.Sprintf("controls.arrow_step %g, using %g", c.Controls.ArrowStep, def.Controls.ArrowStep))
		c.Controls.ArrowStep = def.Controls.ArrowStep
	}
	if c.Controls.DragDegrees <= 0 {
		fixed = append(fixed, fmt.Sprintf("controls.drag_degrees %g, using %g", c.Controls.DragDegrees, def.Controls.DragDegrees))
		c.Controls.DragDegrees = def.Controls.DragDegrees
	}

	if d := c.Tessellation.MaxSphereDepth; d < 1 || d > tessellate.MaxSphereDepth {
		fixed = append(fixed, fmt.Sprintf("tessellation.max_sphere_depth %d, using %d", d, def.Tessellation.MaxSphereDepth))
		c.Tessellation.MaxSphereDepth = def.Tessellation.MaxSphereDepth
	}
	if k, err := tessellate.ParseKind(c.Tessellation.InitialShape); err == nil {
		c.Tessellation.InitialShape = k.String()
	} else {
		fixed = append(fixed, fmt.Sprintf("%v, using %q", err, def.Tessellation.InitialShape))
		c.Tessellation.InitialShape = def.Tessellation.InitialShape
	}

	switch l := strings.ToLower(c.Logging.Level); l {
	case "debug", "info", "warn", "error":
		c.Logging.Level = l
	default:
		fixed = append(fixed, fmt.Sprintf("logging.level %q, using %q", c.Logging.Level, def.Logging.Level))
		c.Logging.Level = def.Logging.Level
	}

	return fixed
}

// InitialShape returns the configured start-up shape.
func (c *Config) InitialShape() tessellate.Kind {
	k, _ := tessellate.ParseKind(c.Tessellation.InitialShape)
	return k
}
