package tessellate

import (
	"github.com/Faultbox/tessview/internal/mesh"
	"github.com/Faultbox/tessview/pkg/math"
)

// Cone is a unit cone with its apex at (0, 0.5, 0) and base circle at
// y = -0.5. Each of the N wedges is split into M layers from apex to base.
// The apex layer is a single triangle, every other layer two, plus one base
// cap triangle per wedge: N·2M triangles, or nothing when N < 3 or M < 1.
type Cone struct {
	N, M int
}

// Kind implements Shape.
func (Cone) Kind() Kind { return KindCone }

// Tessellate implements Shape.
func (c Cone) Tessellate(e mesh.Emitter) {
	n, m := c.N, c.M
	if n < MinRoundSides || m < 1 {
		return
	}

	apex := math.Point3{Y: halfHeight}
	center := math.Point3{Y: -halfHeight}
	rim := ring(n, -halfHeight)

	// layer returns the point a fraction j/m of the way down the slant from
	// the apex to rim point p.
	layer := func(p math.Point3, j int) math.Point3 {
		if j == m {
			return p
		}
		return apex.Lerp(p, float32(j)/float32(m))
	}

	for k := 0; k < n; k++ {
		a, b := rim[k], rim[(k+1)%n]

		e.Emit(layer(a, 1), apex, layer(b, 1))
		for j := 1; j < m; j++ {
			aHi, aLo := layer(a, j), layer(a, j+1)
			bHi, bLo := layer(b, j), layer(b, j+1)
			e.Emit(aLo, aHi, bHi)
			e.Emit(aLo, bHi, bLo)
		}

		e.Emit(center, a, b)
	}
}
