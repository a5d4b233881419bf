// Package window creates the application window and OpenGL context and
// delivers its input events. SDL2 and GLFW backends are available.
package window

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/tessview/internal/config"
	"github.com/Faultbox/tessview/internal/viewer"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title     string
	Width     int
	Height    int
	MinWidth  int
	MinHeight int
	VSync     bool
}

// Handler receives input events. Coordinates are window points with the
// origin at the top-left.
type Handler interface {
	Key(ch rune)
	Special(k viewer.SpecialKey)
	MouseButton(b viewer.MouseButton, pressed bool, x, y int)
	MouseMotion(x, y int)
	Resize(w, h int)
}

// Backend is a window with a current OpenGL 4.1 core context.
type Backend interface {
	// Poll delivers pending events to h. It returns false once the user
	// has asked to close the window.
	Poll(h Handler) bool
	SwapBuffers()
	// Size returns the window size in points, the unit of event
	// coordinates.
	Size() (int, int)
	// DrawableSize returns the framebuffer size in pixels.
	DrawableSize() (int, int)
	Close()
}

// Open creates a window with the named backend.
func Open(backend string, cfg Config, log *zap.Logger) (Backend, error) {
	switch backend {
	case config.BackendSDL, "":
		return NewSDL(cfg, log)
	case config.BackendGLFW:
		return NewGLFW(cfg, log)
	}
	return nil, fmt.Errorf("unknown window backend %q", backend)
}
