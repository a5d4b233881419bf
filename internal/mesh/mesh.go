// Package mesh holds the triangle list the viewer draws and the builder
// tessellators write into.
package mesh

import "github.com/Faultbox/tessview/pkg/math"

// Emitter receives triangles from a tessellator. Winding is preserved
// exactly as given: the renderer culls back faces, so a counter-clockwise
// triangle seen from outside is the visible one.
type Emitter interface {
	Emit(a, b, c math.Point3)
}

// List is an ordered triangle list. Consecutive point triples form one
// triangle, so the length is always a multiple of three.
type List struct {
	points []math.Point3
}

// Rebuild clears the list and repopulates it through fill. The builder
// handed to fill is only valid for the duration of the call.
func (l *List) Rebuild(fill func(Emitter)) {
	l.points = l.points[:0]

	b := &Builder{list: l}
	fill(b)
	b.list = nil
}

// Points returns the points of the list. The slice is reused by the next
// Rebuild and must not be retained past it.
func (l *List) Points() []math.Point3 {
	return l.points
}

// Len returns the number of points.
func (l *List) Len() int {
	return len(l.points)
}

// Triangles returns the number of triangles.
func (l *List) Triangles() int {
	return len(l.points) / 3
}

// Triangle returns the i-th triangle's corners.
func (l *List) Triangle(i int) (a, b, c math.Point3) {
	return l.points[3*i], l.points[3*i+1], l.points[3*i+2]
}

// Builder appends triangles to a List during a rebuild pass.
type Builder struct {
	list *List
}

// Emit appends triangle (a, b, c). It is a no-op once the rebuild pass
// that created the builder has returned.
func (m *Builder) Emit(a, b, c math.Point3) {
	if m.list == nil {
		return
	}
	m.list.points = append(m.list.points, a, b, c)
}
