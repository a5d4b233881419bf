// Package viewer implements the interaction state of the tessellation
// viewer: per-shape tessellation and rotation, the two numeric entry
// fields, the help overlay and the lazily rebuilt triangle list.
//
// All state lives in a Viewer value. Input reaches it through a
// Dispatcher on the single event-loop thread, and the renderer pulls the
// current mesh with MeshFrame.
package viewer

import (
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/tessview/internal/mesh"
	"github.com/Faultbox/tessview/internal/tessellate"
	"github.com/Faultbox/tessview/pkg/math"
)

// Tessellation bounds shared by every shape parameter.
const (
	TessellationMin = tessellate.MinTessellation
	TessellationMax = tessellate.MaxTessellation
)

// TextFieldMaxLength is the maximum number of digits a field accepts.
const TextFieldMaxLength = 3

// Window geometry.
const (
	InitWindowWidth  = 800
	InitWindowHeight = 700
	MinWindowWidth   = 560
	MinWindowHeight  = 675
)

// Options tunes a Viewer.
type Options struct {
	Width, Height int

	// ArrowStep is the rotation in degrees applied per arrow key press.
	ArrowStep float32
	// DragDegrees is the rotation applied by dragging across the full
	// window width or height.
	DragDegrees float32
	// MaxSphereDepth caps the sphere's primary tessellation, which is a
	// recursion depth rather than a segment count.
	MaxSphereDepth int

	InitialShape tessellate.Kind
}

// DefaultOptions returns the stock viewer settings.
func DefaultOptions() Options {
	return Options{
		Width:          InitWindowWidth,
		Height:         InitWindowHeight,
		ArrowStep:      1.5,
		DragDegrees:    180,
		MaxSphereDepth: 6,
		InitialShape:   tessellate.KindCube,
	}
}

// ShapeState is the per-shape tessellation and accumulated rotation.
// Rotations are in degrees.
type ShapeState struct {
	Primary   int
	Secondary int
	XRotation float32
	YRotation float32
	ZRotation float32
}

// Field identifies one of the tessellation entry fields.
type Field int

const (
	FieldPrimary Field = iota
	FieldSecondary
)

// NumFields is the number of tessellation entry fields.
const NumFields = 2

// TextField is a numeric entry box. X and Y place its text baseline in
// status panel coordinates, measured from the panel's bottom-left.
type TextField struct {
	Text   string
	Active bool
	X, Y   int
}

// Mode is the editing state of the status panel. The help overlay is
// tracked separately and can be shown in any mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeEditingPrimary
	ModeEditingSecondary
)

func (m Mode) String() string {
	switch m {
	case ModeEditingPrimary:
		return "editing-primary"
	case ModeEditingSecondary:
		return "editing-secondary"
	default:
		return "normal"
	}
}

// Rotation is a shape's orientation in degrees about X, Y and Z.
type Rotation struct {
	X, Y, Z float32
}

// MeshFrame is what the mesh surface needs to draw one frame.
type MeshFrame struct {
	Shape    tessellate.Kind
	Points   []math.Point3
	Rotation Rotation

	// Generation changes whenever Points is rebuilt.
	Generation int
}

// Viewer is the application state.
type Viewer struct {
	opts Options
	log  *zap.Logger

	shapes [tessellate.NumKinds]ShapeState
	fields [NumFields]TextField
	active tessellate.Kind

	dirty bool
	help  bool

	mouseDown    bool
	lastX, lastY int

	width, height int

	mesh     mesh.List
	rebuilds int
}

// New returns a viewer in its start-up state: cube selected, every shape
// at its minimum tessellation, and a rebuild pending.
func New(opts Options, log *zap.Logger) *Viewer {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.MaxSphereDepth < TessellationMin {
		opts.MaxSphereDepth = TessellationMin
	}
	if opts.MaxSphereDepth > tessellate.MaxSphereDepth {
		opts.MaxSphereDepth = tessellate.MaxSphereDepth
	}
	if !opts.InitialShape.Valid() {
		opts.InitialShape = tessellate.KindCube
	}

	v := &Viewer{
		opts:   opts,
		log:    log,
		active: opts.InitialShape,
		dirty:  true,
	}
	for k := range v.shapes {
		lo, _ := v.primaryRange(tessellate.Kind(k))
		v.shapes[k] = ShapeState{Primary: lo, Secondary: TessellationMin}
	}
	v.resize(opts.Width, opts.Height)
	return v
}

// Active returns the selected shape.
func (v *Viewer) Active() tessellate.Kind {
	return v.current()
}

// Shape returns the state of shape k.
func (v *Viewer) Shape(k tessellate.Kind) ShapeState {
	if !k.Valid() {
		return ShapeState{}
	}
	return v.shapes[k]
}

// Field returns entry field f.
func (v *Viewer) Field(f Field) TextField {
	return v.fields[f]
}

// FieldText returns what field f displays: the typed digits while it is
// being edited, the active shape's value otherwise.
func (v *Viewer) FieldText(f Field) string {
	if v.fields[f].Active {
		return v.fields[f].Text
	}
	s := v.shapes[v.current()]
	if f == FieldPrimary {
		return strconv.Itoa(s.Primary)
	}
	return strconv.Itoa(s.Secondary)
}

// Mode returns the current editing mode.
func (v *Viewer) Mode() Mode {
	switch {
	case v.fields[FieldPrimary].Active:
		return ModeEditingPrimary
	case v.fields[FieldSecondary].Active:
		return ModeEditingSecondary
	default:
		return ModeNormal
	}
}

// Dirty reports whether the triangle list must be rebuilt before drawing.
func (v *Viewer) Dirty() bool { return v.dirty }

// HelpVisible reports whether the help overlay replaces the status panel.
func (v *Viewer) HelpVisible() bool { return v.help }

// MouseDown reports whether a drag is in progress over the mesh surface.
func (v *Viewer) MouseDown() bool { return v.mouseDown }

// Size returns the window dimensions.
func (v *Viewer) Size() (int, int) { return v.width, v.height }

// Rebuilds returns how many times the triangle list has been rebuilt.
func (v *Viewer) Rebuilds() int { return v.rebuilds }

// MeshFrame returns the triangles and rotation of the active shape,
// rebuilding the triangle list first if the tessellation changed.
func (v *Viewer) MeshFrame() MeshFrame {
	k := v.current()
	if v.dirty {
		v.rebuild(k)
		v.dirty = false
	}
	s := v.shapes[k]
	return MeshFrame{
		Shape:      k,
		Points:     v.mesh.Points(),
		Rotation:   Rotation{X: s.XRotation, Y: s.YRotation, Z: s.ZRotation},
		Generation: v.rebuilds,
	}
}

func (v *Viewer) rebuild(k tessellate.Kind) {
	s := v.shapes[k]
	shape := tessellate.For(k, s.Primary, s.Secondary)

	start := time.Now()
	v.mesh.Rebuild(shape.Tessellate)
	v.rebuilds++

	v.log.Debug("tessellation rebuilt",
		zap.Stringer("shape", k),
		zap.Int("primary", s.Primary),
		zap.Int("secondary", s.Secondary),
		zap.Int("triangles", v.mesh.Triangles()),
		zap.Duration("took", time.Since(start)),
	)
}

// current returns the active shape, resetting an out-of-range id to the
// cube.
func (v *Viewer) current() tessellate.Kind {
	if !v.active.Valid() {
		v.log.Warn("invalid active shape, resetting to cube", zap.Int("id", int(v.active)))
		v.active = tessellate.KindCube
		v.dirty = true
	}
	return v.active
}

func (v *Viewer) primaryRange(k tessellate.Kind) (lo, hi int) {
	return tessellate.PrimaryRange(k, v.opts.MaxSphereDepth)
}

func (v *Viewer) fieldRange(f Field) (lo, hi int) {
	if f == FieldPrimary {
		return v.primaryRange(v.current())
	}
	return tessellate.SecondaryRange()
}

// param returns a pointer to the active shape's value behind field f.
func (v *Viewer) param(f Field) *int {
	s := &v.shapes[v.current()]
	if f == FieldPrimary {
		return &s.Primary
	}
	return &s.Secondary
}

// adjust steps the active shape's parameter behind f by delta, within its
// bounds. It marks the mesh dirty only if the value changed.
func (v *Viewer) adjust(f Field, delta int) bool {
	p := v.param(f)
	lo, hi := v.fieldRange(f)
	next := clamp(*p+delta, lo, hi)
	if next == *p {
		return false
	}
	*p = next
	v.dirty = true
	return true
}

// selectShape makes k the active shape. Selecting from the keyboard always
// schedules a rebuild; clicking the already active button does not.
func (v *Viewer) selectShape(k tessellate.Kind, force bool) {
	if !k.Valid() {
		return
	}
	if k == v.current() && !force {
		return
	}
	v.active = k
	v.dirty = true
}

func (v *Viewer) toggleHelp() {
	v.help = !v.help
}

func (v *Viewer) deactivateFields() {
	for i := range v.fields {
		v.fields[i].Active = false
	}
}

// activateField starts editing f with an empty buffer.
func (v *Viewer) activateField(f Field) {
	v.deactivateFields()
	v.fields[f].Active = true
	v.fields[f].Text = ""
}

// editing returns the field being edited, if any.
func (v *Viewer) editing() (Field, bool) {
	for i := range v.fields {
		if v.fields[i].Active {
			return Field(i), true
		}
	}
	return 0, false
}

// typeInto feeds one character to the field being edited. Digits are
// appended up to TextFieldMaxLength, BACKSPACE removes the last digit and
// ENTER commits. Anything else is ignored.
func (v *Viewer) typeInto(f Field, ch rune) {
	tf := &v.fields[f]
	switch {
	case ch == KeyEnter || ch == '\n':
		v.commit(f)
	case ch == KeyBackspace:
		if len(tf.Text) > 0 {
			tf.Text = tf.Text[:len(tf.Text)-1]
		}
	case ch >= '0' && ch <= '9':
		if len(tf.Text) < TextFieldMaxLength {
			tf.Text += string(ch)
		}
	}
}

// commit parses field f into the active shape, clamped to its bounds, and
// ends editing. An empty field parses as 0.
func (v *Viewer) commit(f Field) {
	tf := &v.fields[f]
	n, err := strconv.Atoi(tf.Text)
	if err != nil {
		n = 0
	}
	lo, hi := v.fieldRange(f)
	*v.param(f) = clamp(n, lo, hi)

	tf.Active = false
	v.dirty = true
}

// rotate adds degrees to the active shape's X and Y rotation.
func (v *Viewer) rotate(dx, dy float32) {
	s := &v.shapes[v.current()]
	s.XRotation += dx
	s.YRotation += dy
}

func (v *Viewer) resize(w, h int) {
	v.width = max(w, MinWindowWidth)
	v.height = max(h, MinWindowHeight)

	v.fields[FieldPrimary].X = fieldX
	v.fields[FieldPrimary].Y = int(float64(v.height) * eighthWindow)
	v.fields[FieldSecondary].X = fieldX
	v.fields[FieldSecondary].Y = int(float64(v.height) * sixteenthWindow)
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
