package app

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Faultbox/tessview/internal/engine/renderer"
	"github.com/Faultbox/tessview/internal/engine/ui2d"
	"github.com/Faultbox/tessview/internal/engine/window"
	"github.com/Faultbox/tessview/internal/viewer"
)

// scriptedWindow replays one batch of events per Poll call.
type scriptedWindow struct {
	steps  []func(h window.Handler)
	polls  int
	swaps  int
	closed bool
	scale  int
}

func (w *scriptedWindow) Poll(h window.Handler) bool {
	if w.polls >= len(w.steps) {
		return false
	}
	step := w.steps[w.polls]
	w.polls++
	if step != nil {
		step(h)
	}
	return true
}

func (w *scriptedWindow) SwapBuffers() { w.swaps++ }

func (w *scriptedWindow) Size() (int, int) { return 800, 700 }

func (w *scriptedWindow) Close() { w.closed = true }

func (w *scriptedWindow) DrawableSize() (int, int) {
	s := w.scale
	if s == 0 {
		s = 1
	}
	return 800 * s, 700 * s
}

type recordingMesh struct {
	frames    []viewer.MeshFrame
	viewports []renderer.Viewport
	closed    bool
}

func (m *recordingMesh) Draw(frame viewer.MeshFrame, vp renderer.Viewport) {
	m.frames = append(m.frames, frame)
	m.viewports = append(m.viewports, vp)
}

func (m *recordingMesh) Close() { m.closed = true }

type rectCall struct {
	x, y, w, h float32
	color      ui2d.Color
}

type recordingCanvas struct {
	rects     []rectCall
	gradients int
	texts     []string
	fbW, fbH  int
	closed    bool
}

func (c *recordingCanvas) Resize(int, int) {}
func (c *recordingCanvas) SetFramebufferSize(w, h int) {
	c.fbW, c.fbH = w, h
}
func (c *recordingCanvas) Begin() {
	c.rects = c.rects[:0]
	c.gradients = 0
	c.texts = c.texts[:0]
}
func (c *recordingCanvas) End() {}
func (c *recordingCanvas) DrawRect(x, y, w, h float32, color ui2d.Color) {
	c.rects = append(c.rects, rectCall{x, y, w, h, color})
}
func (c *recordingCanvas) DrawGradientRect(x, y, w, h float32, top, bottom ui2d.Color) {
	c.gradients++
}
func (c *recordingCanvas) DrawText(x, y float32, text string, scale float32, color ui2d.Color) {
	c.texts = append(c.texts, text)
}
func (c *recordingCanvas) Close() { c.closed = true }

func keys(s string) func(h window.Handler) {
	return func(h window.Handler) {
		for _, ch := range s {
			h.Key(ch)
		}
	}
}

func newTestApp(win *scriptedWindow) (*App, *recordingMesh, *recordingCanvas) {
	mesh := &recordingMesh{}
	panel := &recordingCanvas{}
	opts := viewer.DefaultOptions()
	opts.Width, opts.Height = win.Size()
	return newApp(win, mesh, panel, opts, zap.NewNop()), mesh, panel
}

func TestRunRebuildsAndQuits(t *testing.T) {
	win := &scriptedWindow{steps: []func(window.Handler){
		nil,
		keys("+++"),
		keys("q"),
	}}
	a, mesh, _ := newTestApp(win)

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if win.polls != 3 {
		t.Errorf("polls = %d, want 3", win.polls)
	}
	if len(mesh.frames) != 2 {
		t.Fatalf("frames drawn = %d, want 2", len(mesh.frames))
	}
	last := mesh.frames[len(mesh.frames)-1]
	if got := len(last.Points) / 3; got != 192 {
		t.Errorf("triangles = %d, want 192", got)
	}
	if win.swaps != 2 {
		t.Errorf("swaps = %d, want 2", win.swaps)
	}
}

func TestRunIdleSkipsDrawing(t *testing.T) {
	win := &scriptedWindow{steps: []func(window.Handler){nil, nil, nil}}
	a, mesh, _ := newTestApp(win)

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(mesh.frames) != 1 {
		t.Errorf("frames drawn = %d, want only the first", len(mesh.frames))
	}
}

func TestRunCanceled(t *testing.T) {
	win := &scriptedWindow{steps: []func(window.Handler){nil}}
	a, _, _ := newTestApp(win)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := a.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestRenderScalesViewport(t *testing.T) {
	win := &scriptedWindow{scale: 2}
	a, mesh, panel := newTestApp(win)
	a.render()

	want := renderer.Viewport{X: 200, Y: 350, W: 1200, H: 1050}
	if got := mesh.viewports[0]; got != want {
		t.Errorf("viewport = %+v, want %+v", got, want)
	}
	if panel.fbW != 1600 || panel.fbH != 1400 {
		t.Errorf("framebuffer = %dx%d, want 1600x1400", panel.fbW, panel.fbH)
	}
}

func TestPanelStatusAndHelp(t *testing.T) {
	win := &scriptedWindow{}
	a, _, panel := newTestApp(win)

	a.render()
	// four shape buttons plus inc/dec for both fields
	if panel.gradients != 8 {
		t.Errorf("gradients = %d, want 8", panel.gradients)
	}
	if len(panel.texts) != len(a.viewer.StatusLabels()) {
		t.Errorf("texts = %d, want %d", len(panel.texts), len(a.viewer.StatusLabels()))
	}
	plain := len(panel.rects)

	// clicking the primary field adds the black edit border
	a.input.MouseButton(viewer.ButtonLeft, true, 230, viewer.StatusTop(700)+70)
	a.render()
	if len(panel.rects) != plain+1 {
		t.Errorf("rects while editing = %d, want %d", len(panel.rects), plain+1)
	}

	a.input.Key('z')
	a.render()
	if panel.gradients != 0 {
		t.Errorf("help overlay drew %d buttons", panel.gradients)
	}
	if len(panel.texts) != len(a.viewer.HelpLabels()) {
		t.Errorf("texts = %d, want %d", len(panel.texts), len(a.viewer.HelpLabels()))
	}
}

func TestClose(t *testing.T) {
	win := &scriptedWindow{}
	a, mesh, panel := newTestApp(win)
	a.Close()

	if !win.closed || !mesh.closed || !panel.closed {
		t.Error("Close() should release the window and both renderers")
	}
}
