// Package app wires the window, the viewer state machine and the
// renderers into the main loop.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/tessview/internal/config"
	"github.com/Faultbox/tessview/internal/engine/renderer"
	"github.com/Faultbox/tessview/internal/engine/ui2d"
	"github.com/Faultbox/tessview/internal/engine/window"
	"github.com/Faultbox/tessview/internal/viewer"
)

// idleDelay is how long the loop sleeps when nothing needs redrawing.
const idleDelay = 5 * time.Millisecond

type meshDrawer interface {
	Draw(frame viewer.MeshFrame, vp renderer.Viewport)
	Close()
}

// canvas is the 2D drawing surface of the status panel.
type canvas interface {
	Resize(width, height int)
	SetFramebufferSize(width, height int)
	Begin()
	End()
	DrawRect(x, y, width, height float32, color ui2d.Color)
	DrawGradientRect(x, y, width, height float32, top, bottom ui2d.Color)
	DrawText(x, y float32, text string, scale float32, color ui2d.Color)
	Close()
}

// App is the running viewer.
type App struct {
	log *zap.Logger

	win    window.Backend
	mesh   meshDrawer
	panel  canvas
	clear  func(width, height int)
	viewer *viewer.Viewer
	input  *viewer.Dispatcher

	running bool
	redraw  viewer.Surface
	frames  int
}

// New opens the window and creates the renderers.
func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	win, err := window.Open(cfg.Window.Backend, window.Config{
		Title:     cfg.Window.Title,
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		MinWidth:  viewer.MinWindowWidth,
		MinHeight: viewer.MinWindowHeight,
		VSync:     cfg.Window.VSync,
	}, log.Named("window"))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	if err := renderer.Init(log.Named("renderer")); err != nil {
		win.Close()
		return nil, err
	}

	mesh, err := renderer.NewMeshRenderer(log.Named("renderer"))
	if err != nil {
		win.Close()
		return nil, fmt.Errorf("failed to create mesh renderer: %w", err)
	}

	w, h := win.Size()
	panel, err := ui2d.New(w, h)
	if err != nil {
		mesh.Close()
		win.Close()
		return nil, fmt.Errorf("failed to create 2D renderer: %w", err)
	}

	opts := viewer.Options{
		Width:          w,
		Height:         h,
		ArrowStep:      cfg.Controls.ArrowStep,
		DragDegrees:    cfg.Controls.DragDegrees,
		MaxSphereDepth: cfg.Tessellation.MaxSphereDepth,
		InitialShape:   cfg.InitialShape(),
	}
	a := newApp(win, mesh, panel, opts, log)
	a.clear = func(width, height int) { renderer.Clear(width, height, 1, 1, 1) }

	log.Info("viewer initialized", zap.Stringer("shape", opts.InitialShape), zap.Int("width", w), zap.Int("height", h))
	return a, nil
}

func newApp(win window.Backend, mesh meshDrawer, panel canvas, opts viewer.Options, log *zap.Logger) *App {
	a := &App{
		log:   log,
		win:   win,
		mesh:  mesh,
		panel: panel,
		clear: func(int, int) {},
	}
	a.viewer = viewer.New(opts, log.Named("viewer"))
	a.input = viewer.NewDispatcher(a.viewer, a, log.Named("input"))
	return a
}

// RequestRedraw schedules surfaces to be drawn on the next frame.
func (a *App) RequestRedraw(s viewer.Surface) {
	a.redraw |= s
}

// Quit stops the main loop after the current event.
func (a *App) Quit() {
	a.running = false
}

// Viewer returns the application state.
func (a *App) Viewer() *viewer.Viewer {
	return a.viewer
}

// Run processes events and draws until the user quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.running = true
	a.redraw = viewer.SurfaceAll

	fpsTimer := time.Now()
	a.log.Info("starting main loop")

	for a.running {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !a.win.Poll(a.input) {
			a.log.Info("window closed")
			break
		}
		if !a.running {
			break
		}

		if a.redraw == 0 {
			time.Sleep(idleDelay)
			continue
		}
		a.render()
		a.win.SwapBuffers()
		a.redraw = 0

		a.frames++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("frames drawn", zap.Int("count", a.frames))
			a.frames = 0
			fpsTimer = time.Now()
		}
	}
	return nil
}

// render draws the mesh into the top of the window and the status panel
// or help overlay below it.
func (a *App) render() {
	ww, wh := a.viewer.Size()
	dw, dh := a.win.DrawableSize()
	sx := float64(dw) / float64(ww)
	sy := float64(dh) / float64(wh)

	a.clear(dw, dh)

	x, y, w, h := viewer.MeshViewport(ww, wh)
	a.mesh.Draw(a.viewer.MeshFrame(), renderer.Viewport{
		X: int32(float64(x) * sx),
		Y: int32(float64(y) * sy),
		W: int32(float64(w) * sx),
		H: int32(float64(h) * sy),
	})

	a.panel.Resize(ww, wh)
	a.panel.SetFramebufferSize(dw, dh)
	a.panel.Begin()
	drawPanel(a.panel, a.viewer)
	a.panel.End()
}

// Close releases renderers and the window.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.panel != nil {
		a.panel.Close()
	}
	if a.mesh != nil {
		a.mesh.Close()
	}
	if a.win != nil {
		a.win.Close()
	}
}
