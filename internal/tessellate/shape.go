// Package tessellate turns the four primitive shapes into triangle meshes.
//
// Every shape has unit extent: it fits a diameter-1 bounding volume centered
// at the origin, so raising the resolution refines the mesh without
// changing its size. Triangles are wound counter-clockwise when seen from
// outside the shape.
package tessellate

import (
	"fmt"
	"strings"

	"github.com/Faultbox/tessview/internal/mesh"
	"github.com/Faultbox/tessview/pkg/math"
)

// Kind identifies one of the primitive shapes.
type Kind int

const (
	KindCube Kind = iota
	KindCylinder
	KindCone
	KindSphere
)

// NumKinds is the number of primitive shapes.
const NumKinds = 4

var kindNames = [NumKinds]string{"cube", "cylinder", "cone", "sphere"}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k names a known shape.
func (k Kind) Valid() bool {
	return k >= 0 && k < NumKinds
}

// ParseKind parses a shape name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(i), nil
		}
	}
	return KindCube, fmt.Errorf("unknown shape %q", s)
}

// Shape is a primitive with its resolution parameters.
type Shape interface {
	Kind() Kind
	Tessellate(e mesh.Emitter)
}

// For builds the shape of the given kind from the viewer's primary and
// secondary tessellation values. Shapes with a single parameter ignore
// secondary. An unknown kind falls back to a cube.
func For(kind Kind, primary, secondary int) Shape {
	switch kind {
	case KindCylinder:
		return Cylinder{N: primary, M: secondary}
	case KindCone:
		return Cone{N: primary, M: secondary}
	case KindSphere:
		return Sphere{N: primary}
	default:
		return Cube{N: primary}
	}
}

// Triangles tessellates s into a new point slice.
func Triangles(s Shape) []math.Point3 {
	var l mesh.List
	l.Rebuild(s.Tessellate)
	return l.Points()
}
