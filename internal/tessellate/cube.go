package tessellate

import (
	"github.com/Faultbox/tessview/internal/mesh"
	"github.com/Faultbox/tessview/pkg/math"
)

// Cube is the unit cube with each face split into an N×N grid of cells.
// It emits 12·N² triangles.
type Cube struct {
	N int
}

// Kind implements Shape.
func (Cube) Kind() Kind { return KindCube }

// cubeFace spans a face from corner origin along u and v, with u×v
// pointing out of the cube. Faces are listed +X, -X, +Y, -Y, +Z, -Z.
type cubeFace struct {
	origin math.Point3
	u, v   math.Vec3
}

var cubeFaces = [6]cubeFace{
	{origin: math.Point3{X: 0.5, Y: -0.5, Z: 0.5}, u: math.Vec3{Z: -1}, v: math.Vec3{Y: 1}},
	{origin: math.Point3{X: -0.5, Y: -0.5, Z: -0.5}, u: math.Vec3{Z: 1}, v: math.Vec3{Y: 1}},
	{origin: math.Point3{X: -0.5, Y: 0.5, Z: 0.5}, u: math.Vec3{X: 1}, v: math.Vec3{Z: -1}},
	{origin: math.Point3{X: -0.5, Y: -0.5, Z: -0.5}, u: math.Vec3{X: 1}, v: math.Vec3{Z: 1}},
	{origin: math.Point3{X: -0.5, Y: -0.5, Z: 0.5}, u: math.Vec3{X: 1}, v: math.Vec3{Y: 1}},
	{origin: math.Point3{X: 0.5, Y: -0.5, Z: -0.5}, u: math.Vec3{X: -1}, v: math.Vec3{Y: 1}},
}

// Tessellate implements Shape.
func (c Cube) Tessellate(e mesh.Emitter) {
	n := c.N
	if n < 1 {
		return
	}

	// Grid coordinates are computed from integer steps rather than by
	// accumulating a float increment, so shared grid points match exactly.
	step := func(i int) float32 { return float32(i) / float32(n) }

	for _, f := range cubeFaces {
		at := func(i, j int) math.Point3 {
			return f.origin.AddScaled(f.u, step(i)).AddScaled(f.v, step(j))
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				p00 := at(i, j)
				p10 := at(i+1, j)
				p11 := at(i+1, j+1)
				p01 := at(i, j+1)
				e.Emit(p00, p10, p11)
				e.Emit(p00, p11, p01)
			}
		}
	}
}
