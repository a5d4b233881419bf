package tessellate

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/tessview/internal/mesh"
	"github.com/Faultbox/tessview/pkg/math"
)

// MaxSphereDepth caps the subdivision depth. The triangle count grows as
// 20·4^N, so the shared tessellation range would be far out of reach.
const MaxSphereDepth = 8

// Sphere is a geodesic sphere of radius 0.5 made by splitting each face of
// an icosahedron into four, N times over. It emits 20·4^N triangles.
// N is clamped to [0, MaxSphereDepth].
type Sphere struct {
	N int
}

// Kind implements Shape.
func (Sphere) Kind() Kind { return KindSphere }

// icosahedron vertices on the unit sphere: the cyclic permutations of
// (0, ±1, ±φ), normalized.
var icosaVerts = func() [12]math.Vec3 {
	phi := (1 + math32.Sqrt(5)) / 2
	raw := [12]math.Vec3{
		{X: -1, Y: phi}, {X: 1, Y: phi}, {X: -1, Y: -phi}, {X: 1, Y: -phi},
		{Y: -1, Z: phi}, {Y: 1, Z: phi}, {Y: -1, Z: -phi}, {Y: 1, Z: -phi},
		{X: phi, Z: -1}, {X: phi, Z: 1}, {X: -phi, Z: -1}, {X: -phi, Z: 1},
	}
	for i := range raw {
		raw[i] = raw[i].Normalize()
	}
	return raw
}()

// icosaFaces index icosaVerts, counter-clockwise seen from outside.
var icosaFaces = [20][3]int{
	{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
	{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
	{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
	{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
}

// Tessellate implements Shape.
func (s Sphere) Tessellate(e mesh.Emitter) {
	depth := min(max(s.N, 0), MaxSphereDepth)
	for _, f := range icosaFaces {
		subdivide(e, onSphere(icosaVerts[f[0]]), onSphere(icosaVerts[f[1]]), onSphere(icosaVerts[f[2]]), depth)
	}
}

// subdivide emits triangle (a, b, c) of the sphere split depth times.
// Edge midpoints are pushed back onto the sphere at every level so the
// final triangles stay close to equal in size.
func subdivide(e mesh.Emitter, a, b, c math.Point3, depth int) {
	if depth == 0 {
		e.Emit(a, b, c)
		return
	}

	ab := onSphere(a.Midpoint(b).Vec())
	bc := onSphere(b.Midpoint(c).Vec())
	ca := onSphere(c.Midpoint(a).Vec())

	subdivide(e, a, ab, ca, depth-1)
	subdivide(e, ab, b, bc, depth-1)
	subdivide(e, ca, bc, c, depth-1)
	subdivide(e, ab, bc, ca, depth-1)
}

// onSphere projects the direction v onto the sphere.
func onSphere(v math.Vec3) math.Point3 {
	return math.Origin.AddScaled(v.Normalize(), radius)
}
