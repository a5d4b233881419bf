package tessellate

import (
	"github.com/Faultbox/tessview/internal/mesh"
	"github.com/Faultbox/tessview/pkg/math"
)

// Cylinder is a unit cylinder around the Y axis with N wedges and M height
// bands. It emits N·(2M+2) triangles, or nothing when N < 3 or M < 1.
type Cylinder struct {
	N, M int
}

// Kind implements Shape.
func (Cylinder) Kind() Kind { return KindCylinder }

// Tessellate implements Shape.
func (c Cylinder) Tessellate(e mesh.Emitter) {
	n, m := c.N, c.M
	if n < MinRoundSides || m < 1 {
		return
	}

	top := math.Point3{Y: halfHeight}
	bottom := math.Point3{Y: -halfHeight}
	rim := ring(n, -halfHeight)
	up := math.Vec3{Y: 2 * halfHeight}

	band := func(p math.Point3, j int) math.Point3 {
		return p.AddScaled(up, float32(j)/float32(m))
	}

	for k := 0; k < n; k++ {
		a, b := rim[k], rim[(k+1)%n]

		for j := 0; j < m; j++ {
			a0, a1 := band(a, j), band(a, j+1)
			b0, b1 := band(b, j), band(b, j+1)
			e.Emit(a0, a1, b1)
			e.Emit(a0, b1, b0)
		}

		e.Emit(top, band(b, m), band(a, m))
		e.Emit(bottom, a, b)
	}
}
