package viewer

import (
	"go.uber.org/zap"

	"github.com/Faultbox/tessview/internal/tessellate"
)

// Control characters delivered through Dispatcher.Key.
const (
	KeyBackspace rune = 8
	KeyEnter     rune = 13
	KeyEscape    rune = 27
)

// SpecialKey is a non-character key.
type SpecialKey int

const (
	SpecialNone SpecialKey = iota
	SpecialUp
	SpecialDown
	SpecialLeft
	SpecialRight
)

// MouseButton identifies a mouse button.
type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonMiddle
	ButtonRight
)

// Surface is a set of drawing surfaces to refresh.
type Surface uint8

const (
	SurfaceMain Surface = 1 << iota
	SurfaceMesh
	SurfaceStatus

	SurfaceAll = SurfaceMain | SurfaceMesh | SurfaceStatus
)

// Host is the window side of the dispatcher.
type Host interface {
	RequestRedraw(Surface)
	Quit()
}

// Dispatcher turns input events into Viewer state changes and redraw
// requests. It is not safe for concurrent use; events arrive one at a
// time on the event loop thread.
type Dispatcher struct {
	v    *Viewer
	host Host
	log  *zap.Logger
}

// NewDispatcher returns a dispatcher driving v and reporting to host.
func NewDispatcher(v *Viewer, host Host, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{v: v, host: host, log: log}
}

// Key handles a typed character.
func (d *Dispatcher) Key(ch rune) {
	v := d.v

	switch ch {
	case 'q', 'Q', KeyEscape:
		d.log.Info("quit requested")
		d.host.Quit()
		return
	case 'z', 'Z':
		v.toggleHelp()
		d.host.RequestRedraw(SurfaceAll)
		return
	}

	if f, ok := v.editing(); ok {
		v.typeInto(f, ch)
		d.host.RequestRedraw(SurfaceAll)
		return
	}

	switch ch {
	case '+', '=':
		v.adjust(FieldPrimary, 1)
	case '-', '_':
		v.adjust(FieldPrimary, -1)
	case ']', '}':
		v.adjust(FieldSecondary, 1)
	case '[', '{':
		v.adjust(FieldSecondary, -1)
	case '1', '2', '3', '4':
		v.selectShape(tessellate.Kind(ch-'1'), true)
	}
	d.host.RequestRedraw(SurfaceAll)
}

// Special handles an arrow key by rotating the active shape.
func (d *Dispatcher) Special(k SpecialKey) {
	step := d.v.opts.ArrowStep
	switch k {
	case SpecialDown:
		d.v.rotate(step, 0)
	case SpecialUp:
		d.v.rotate(-step, 0)
	case SpecialLeft:
		d.v.rotate(0, -step)
	case SpecialRight:
		d.v.rotate(0, step)
	default:
		return
	}
	d.host.RequestRedraw(SurfaceMesh)
}

// MouseButton handles a press or release at window coordinates (x, y),
// origin top-left.
func (d *Dispatcher) MouseButton(b MouseButton, pressed bool, x, y int) {
	v := d.v
	if !pressed {
		v.mouseDown = false
		return
	}

	top := StatusTop(v.height)
	if y < top {
		v.mouseDown = true
		v.lastX, v.lastY = x, y
		return
	}
	if v.help {
		return
	}
	d.click(x, y-top)
}

func (d *Dispatcher) click(x, y int) {
	v := d.v
	v.deactivateFields()

	c := v.Layout().Hit(x, y)
	if k, ok := c.Shape(); ok {
		v.selectShape(k, false)
	}
	switch c {
	case ControlPrimaryField:
		v.activateField(FieldPrimary)
	case ControlSecondaryField:
		v.activateField(FieldSecondary)
	case ControlHelp:
		v.toggleHelp()
	case ControlPrimaryInc:
		v.adjust(FieldPrimary, 1)
	case ControlPrimaryDec:
		v.adjust(FieldPrimary, -1)
	case ControlSecondaryInc:
		v.adjust(FieldSecondary, 1)
	case ControlSecondaryDec:
		v.adjust(FieldSecondary, -1)
	}
	d.host.RequestRedraw(SurfaceAll)
}

// MouseMotion rotates the active shape while a drag is in progress.
func (d *Dispatcher) MouseMotion(x, y int) {
	v := d.v
	if !v.mouseDown {
		return
	}
	deg := v.opts.DragDegrees
	dx := deg * float32(y-v.lastY) / float32(v.height)
	dy := deg * float32(x-v.lastX) / float32(v.width)
	v.rotate(dx, dy)
	v.lastX, v.lastY = x, y
	d.host.RequestRedraw(SurfaceMesh)
}

// Resize records a new window size, clamped to the minimum.
func (d *Dispatcher) Resize(w, h int) {
	d.v.resize(w, h)
	d.log.Debug("window resized", zap.Int("width", d.v.width), zap.Int("height", d.v.height))
	d.host.RequestRedraw(SurfaceAll)
}
