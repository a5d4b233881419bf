package viewer

import "github.com/Faultbox/tessview/internal/tessellate"

// Status panel geometry.
const (
	meshFraction    = 0.75
	eighthWindow    = 0.125
	sixteenthWindow = 0.0625

	fieldX = 225

	shapeRowTop    = 10
	shapeRowBottom = 50
	buttonMargin   = 10
)

// Rect is an axis-aligned region in status panel coordinates, origin at
// the panel's top-left, Y growing downward. Edges are inclusive.
type Rect struct {
	X, Y int
	W, H int
}

// Contains reports whether (x, y) lies inside r or on its edge.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Control names a clickable element of the status panel.
type Control int

const (
	ControlNone Control = iota
	ControlShapeCube
	ControlShapeCylinder
	ControlShapeCone
	ControlShapeSphere
	ControlPrimaryField
	ControlSecondaryField
	ControlHelp
	ControlPrimaryInc
	ControlPrimaryDec
	ControlSecondaryInc
	ControlSecondaryDec
)

// Shape returns the shape a shape-row control selects.
func (c Control) Shape() (tessellate.Kind, bool) {
	if c >= ControlShapeCube && c <= ControlShapeSphere {
		return tessellate.Kind(c - ControlShapeCube), true
	}
	return 0, false
}

// Layout holds the hit regions of the status panel for one window size.
type Layout struct {
	Width, Height int

	Shapes  [tessellate.NumKinds]Rect
	Fields  [NumFields]Rect
	Borders [NumFields]Rect // highlight around a field being edited
	Inc     [NumFields]Rect
	Dec     [NumFields]Rect
	Help    Rect
}

// MeshViewport returns the region of the window, in bottom-left origin
// window coordinates, the mesh is drawn into.
func MeshViewport(w, h int) (x, y, vw, vh int) {
	return int(float64(w) * eighthWindow), int(float64(h) * (1 - meshFraction)),
		int(float64(w) * meshFraction), int(float64(h) * meshFraction)
}

// StatusTop returns the window Y, top-down, where the status panel starts.
func StatusTop(h int) int {
	return int(float64(h) * meshFraction)
}

// NewLayout computes the status panel regions for a w×h window with the
// given field positions.
func NewLayout(w, h int, fields [NumFields]TextField) Layout {
	ph := h - StatusTop(h)
	l := Layout{Width: w, Height: ph}

	quarter := func(i int) int { return int(float64(w) * 0.25 * float64(i)) }
	for i := range l.Shapes {
		left := quarter(i) + buttonMargin
		right := quarter(i+1) - buttonMargin
		if i == tessellate.NumKinds-1 {
			right = w - buttonMargin
		}
		l.Shapes[i] = Rect{X: left, Y: shapeRowTop, W: right - left, H: shapeRowBottom - shapeRowTop}
	}

	for i, f := range fields {
		top := ph - (f.Y + 25)
		l.Fields[i] = Rect{X: f.X - 5, Y: top, W: 47, H: 30}
		l.Borders[i] = Rect{X: f.X - 10, Y: ph - (f.Y + 30), W: 57, H: 40}
		l.Inc[i] = Rect{X: f.X + 52, Y: top, W: 35, H: 30}
		l.Dec[i] = Rect{X: f.X + 97, Y: top, W: 35, H: 30}
	}

	l.Help = Rect{X: w - 80, Y: ph - 70, W: 40, H: 50}
	return l
}

// Hit returns the control under (x, y), in panel coordinates.
func (l Layout) Hit(x, y int) Control {
	for i, r := range l.Shapes {
		if i == 0 {
			// the first button's hit area reaches the panel's left edge
			r.W += r.X
			r.X = 0
		}
		if r.Contains(x, y) {
			return ControlShapeCube + Control(i)
		}
	}
	switch {
	case l.Fields[FieldPrimary].Contains(x, y):
		return ControlPrimaryField
	case l.Fields[FieldSecondary].Contains(x, y):
		return ControlSecondaryField
	case l.Help.Contains(x, y):
		return ControlHelp
	case l.Inc[FieldPrimary].Contains(x, y):
		return ControlPrimaryInc
	case l.Dec[FieldPrimary].Contains(x, y):
		return ControlPrimaryDec
	case l.Inc[FieldSecondary].Contains(x, y):
		return ControlSecondaryInc
	case l.Dec[FieldSecondary].Contains(x, y):
		return ControlSecondaryDec
	}
	return ControlNone
}

// Layout returns the status panel regions for the current window size.
func (v *Viewer) Layout() Layout {
	return NewLayout(v.width, v.height, v.fields)
}
