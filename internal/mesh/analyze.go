package mesh

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/tessview/pkg/math"
)

// DefaultWeldEpsilon is the distance under which two points are treated as
// the same vertex. Tessellators compute shared points independently per
// face, so exact float equality is too strict.
const DefaultWeldEpsilon = 1e-5

// Stats describes the topology of a triangle list.
type Stats struct {
	Triangles int
	Vertices  int // distinct vertices after welding

	// BoundaryEdges counts directed edges whose opposite edge is missing.
	BoundaryEdges int
	// NonManifoldEdges counts directed edges used by more than one triangle.
	// A consistently wound closed surface has none.
	NonManifoldEdges int
	// Degenerate counts triangles with two corners welded together.
	Degenerate int
	// Inverted counts triangles whose normal points toward the bounds
	// center. Only meaningful for convex shapes.
	Inverted int

	Min, Max             math.Point3
	MinRadius, MaxRadius float32 // distance of vertices from the origin
}

// Watertight reports whether every edge is shared by exactly two
// consistently wound triangles.
func (s Stats) Watertight() bool {
	return s.Triangles > 0 && s.BoundaryEdges == 0 && s.NonManifoldEdges == 0 && s.Degenerate == 0
}

// Analyze welds the points of a triangle list and reports its stats.
func Analyze(points []math.Point3, eps float32) Stats {
	var st Stats
	st.Triangles = len(points) / 3
	if st.Triangles == 0 {
		return st
	}
	if eps <= 0 {
		eps = DefaultWeldEpsilon
	}

	w := newWelder(eps)
	ids := make([]int, st.Triangles*3)
	st.Min, st.Max = points[0], points[0]
	st.MinRadius = math32.MaxFloat32

	for i := 0; i < st.Triangles*3; i++ {
		p := points[i]
		ids[i] = w.index(p)

		st.Min = math.Point3{X: math32.Min(st.Min.X, p.X), Y: math32.Min(st.Min.Y, p.Y), Z: math32.Min(st.Min.Z, p.Z)}
		st.Max = math.Point3{X: math32.Max(st.Max.X, p.X), Y: math32.Max(st.Max.Y, p.Y), Z: math32.Max(st.Max.Z, p.Z)}
		r := p.Vec().Length()
		st.MinRadius = math32.Min(st.MinRadius, r)
		st.MaxRadius = math32.Max(st.MaxRadius, r)
	}
	st.Vertices = len(w.verts)

	center := st.Min.Lerp(st.Max, 0.5)
	edges := make(map[[2]int]int, len(ids))
	for t := 0; t < st.Triangles; t++ {
		a, b, c := ids[3*t], ids[3*t+1], ids[3*t+2]
		if a == b || b == c || c == a {
			st.Degenerate++
			continue
		}
		edges[[2]int{a, b}]++
		edges[[2]int{b, c}]++
		edges[[2]int{c, a}]++

		pa, pb, pc := points[3*t], points[3*t+1], points[3*t+2]
		n := pb.Sub(pa).Cross(pc.Sub(pa))
		centroid := pa.Add(pb.Sub(pa).Add(pc.Sub(pa)).Scale(1.0 / 3))
		if n.Dot(centroid.Sub(center)) < 0 {
			st.Inverted++
		}
	}

	for e, n := range edges {
		if n > 1 {
			st.NonManifoldEdges++
		}
		if edges[[2]int{e[1], e[0]}] == 0 {
			st.BoundaryEdges++
		}
	}
	return st
}

// welder assigns indices to points, merging points closer than eps.
// Points are bucketed on an eps-sized grid and matched against the 27
// surrounding cells, so points straddling a cell border still merge.
type welder struct {
	eps   float32
	cells map[[3]int32][]int
	verts []math.Point3
}

func newWelder(eps float32) *welder {
	return &welder{eps: eps, cells: make(map[[3]int32][]int)}
}

func (w *welder) cell(p math.Point3) [3]int32 {
	return [3]int32{
		int32(math32.Floor(p.X / w.eps)),
		int32(math32.Floor(p.Y / w.eps)),
		int32(math32.Floor(p.Z / w.eps)),
	}
}

func (w *welder) index(p math.Point3) int {
	c := w.cell(p)
	for dx := int32(-1); dx <= 1; dx++ {
		for dy := int32(-1); dy <= 1; dy++ {
			for dz := int32(-1); dz <= 1; dz++ {
				for _, i := range w.cells[[3]int32{c[0] + dx, c[1] + dy, c[2] + dz}] {
					if w.verts[i].Distance(p) <= w.eps {
						return i
					}
				}
			}
		}
	}
	i := len(w.verts)
	w.verts = append(w.verts, p)
	w.cells[c] = append(w.cells[c], i)
	return i
}
