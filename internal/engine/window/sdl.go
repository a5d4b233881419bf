package window

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/tessview/internal/config"
	"github.com/Faultbox/tessview/internal/viewer"
)

// SDL is a window backed by SDL2.
type SDL struct {
	log       *zap.Logger
	sdlWindow *sdl.Window
	glContext sdl.GLContext
}

// NewSDL creates an SDL2 window with an OpenGL 4.1 core context.
func NewSDL(cfg Config, log *zap.Logger) (*SDL, error) {
	if log == nil {
		log = zap.NewNop()
	}
	w := &SDL{log: log}

	log.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// 4.1 core is the newest profile macOS offers
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE|sdl.WINDOW_ALLOW_HIGHDPI,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}
	if cfg.MinWidth > 0 && cfg.MinHeight > 0 {
		w.sdlWindow.SetMinimumSize(int32(cfg.MinWidth), int32(cfg.MinHeight))
	}

	w.glContext, err = w.sdlWindow.GLCreateContext()
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		log.Warn("failed to set swap interval", zap.Int("interval", interval), zap.Error(err))
	}

	// printable characters arrive as text input so shifted keys like
	// '+' and '{' come through as typed
	sdl.StartTextInput()

	log.Info("window created",
		zap.String("backend", config.BackendSDL),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("vsync", cfg.VSync),
	)
	return w, nil
}

// Poll drains the SDL event queue into h.
func (w *SDL) Poll(h Handler) bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return false

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				h.Resize(int(e.Data1), int(e.Data2))
			}

		case *sdl.TextInputEvent:
			for _, ch := range e.GetText() {
				h.Key(ch)
			}

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN {
				continue
			}
			if ch, ok := sdlControlKey(e.Keysym.Sym); ok {
				h.Key(ch)
			} else if k := sdlSpecialKey(e.Keysym.Sym); k != viewer.SpecialNone {
				h.Special(k)
			}

		case *sdl.MouseMotionEvent:
			h.MouseMotion(int(e.X), int(e.Y))

		case *sdl.MouseButtonEvent:
			if b, ok := sdlButton(e.Button); ok {
				h.MouseButton(b, e.State == sdl.PRESSED, int(e.X), int(e.Y))
			}
		}
	}
	return true
}

// SwapBuffers swaps the OpenGL buffers.
func (w *SDL) SwapBuffers() {
	w.sdlWindow.GLSwap()
}

// Size returns the window size in points.
func (w *SDL) Size() (int, int) {
	width, height := w.sdlWindow.GetSize()
	return int(width), int(height)
}

// DrawableSize returns the framebuffer size in pixels.
func (w *SDL) DrawableSize() (int, int) {
	width, height := w.sdlWindow.GLGetDrawableSize()
	return int(width), int(height)
}

// Close destroys the window and shuts SDL2 down.
func (w *SDL) Close() {
	w.log.Info("closing window")

	sdl.StopTextInput()
	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}
	sdl.Quit()
}

// sdlControlKey maps the keys that do not produce text input to the
// control characters the viewer understands.
func sdlControlKey(k sdl.Keycode) (rune, bool) {
	switch k {
	case sdl.K_BACKSPACE:
		return viewer.KeyBackspace, true
	case sdl.K_RETURN, sdl.K_KP_ENTER:
		return viewer.KeyEnter, true
	case sdl.K_ESCAPE:
		return viewer.KeyEscape, true
	}
	return 0, false
}

func sdlSpecialKey(k sdl.Keycode) viewer.SpecialKey {
	switch k {
	case sdl.K_UP:
		return viewer.SpecialUp
	case sdl.K_DOWN:
		return viewer.SpecialDown
	case sdl.K_LEFT:
		return viewer.SpecialLeft
	case sdl.K_RIGHT:
		return viewer.SpecialRight
	}
	return viewer.SpecialNone
}

func sdlButton(b uint8) (viewer.MouseButton, bool) {
	switch b {
	case sdl.BUTTON_LEFT:
		return viewer.ButtonLeft, true
	case sdl.BUTTON_MIDDLE:
		return viewer.ButtonMiddle, true
	case sdl.BUTTON_RIGHT:
		return viewer.ButtonRight, true
	}
	return 0, false
}
