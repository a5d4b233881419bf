package tessellate

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/tessview/pkg/math"
)

const (
	radius     = 0.5
	halfHeight = 0.5
)

// ring returns n points evenly spaced on the circle of radius 0.5 in the
// plane y, starting on +X and advancing toward +Z. Callers index it modulo
// n so the seam reuses the first point exactly.
func ring(n int, y float32) []math.Point3 {
	pts := make([]math.Point3, n)
	for k := range pts {
		s, c := math32.Sincos(2 * math32.Pi * float32(k) / float32(n))
		pts[k] = math.Point3{X: radius * c, Y: y, Z: radius * s}
	}
	return pts
}
