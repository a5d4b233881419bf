package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/tessview/internal/config"
	"github.com/Faultbox/tessview/internal/viewer"
)

// GLFW is a window backed by GLFW 3.3.
type GLFW struct {
	log    *zap.Logger
	window *glfw.Window

	// handler is set for the duration of Poll; GLFW invokes the
	// callbacks from inside PollEvents.
	handler Handler
}

// NewGLFW creates a GLFW window with an OpenGL 4.1 core context.
func NewGLFW(cfg Config, log *zap.Logger) (*GLFW, error) {
	if log == nil {
		log = zap.NewNop()
	}
	w := &GLFW{log: log}

	log.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw.Init failed: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}
	w.window = win
	win.MakeContextCurrent()

	if cfg.MinWidth > 0 && cfg.MinHeight > 0 {
		win.SetSizeLimits(cfg.MinWidth, cfg.MinHeight, glfw.DontCare, glfw.DontCare)
	}
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	win.SetCharCallback(func(_ *glfw.Window, ch rune) {
		if w.handler != nil {
			w.handler.Key(ch)
		}
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if w.handler == nil || action == glfw.Release {
			return
		}
		if ch, ok := glfwControlKey(key); ok {
			w.handler.Key(ch)
		} else if k := glfwSpecialKey(key); k != viewer.SpecialNone {
			w.handler.Special(k)
		}
	})
	win.SetMouseButtonCallback(func(gw *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		b, ok := glfwButton(button)
		if w.handler == nil || !ok {
			return
		}
		x, y := gw.GetCursorPos()
		w.handler.MouseButton(b, action == glfw.Press, int(x), int(y))
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if w.handler != nil {
			w.handler.MouseMotion(int(x), int(y))
		}
	})
	win.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		if w.handler != nil {
			w.handler.Resize(width, height)
		}
	})

	log.Info("window created",
		zap.String("backend", config.BackendGLFW),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("vsync", cfg.VSync),
	)
	return w, nil
}

// Poll processes pending GLFW events, delivering them to h.
func (w *GLFW) Poll(h Handler) bool {
	w.handler = h
	glfw.PollEvents()
	w.handler = nil
	return !w.window.ShouldClose()
}

// SwapBuffers swaps the OpenGL buffers.
func (w *GLFW) SwapBuffers() {
	w.window.SwapBuffers()
}

// Size returns the window size in points.
func (w *GLFW) Size() (int, int) {
	return w.window.GetSize()
}

// DrawableSize returns the framebuffer size in pixels.
func (w *GLFW) DrawableSize() (int, int) {
	return w.window.GetFramebufferSize()
}

// Close destroys the window and terminates GLFW.
func (w *GLFW) Close() {
	w.log.Info("closing window")
	if w.window != nil {
		w.window.Destroy()
	}
	glfw.Terminate()
}

func glfwControlKey(k glfw.Key) (rune, bool) {
	switch k {
	case glfw.KeyBackspace:
		return viewer.KeyBackspace, true
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return viewer.KeyEnter, true
	case glfw.KeyEscape:
		return viewer.KeyEscape, true
	}
	return 0, false
}

func glfwSpecialKey(k glfw.Key) viewer.SpecialKey {
	switch k {
	case glfw.KeyUp:
		return viewer.SpecialUp
	case glfw.KeyDown:
		return viewer.SpecialDown
	case glfw.KeyLeft:
		return viewer.SpecialLeft
	case glfw.KeyRight:
		return viewer.SpecialRight
	}
	return viewer.SpecialNone
}

func glfwButton(b glfw.MouseButton) (viewer.MouseButton, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return viewer.ButtonLeft, true
	case glfw.MouseButtonMiddle:
		return viewer.ButtonMiddle, true
	case glfw.MouseButtonRight:
		return viewer.ButtonRight, true
	}
	return 0, false
}
