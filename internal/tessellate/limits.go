package tessellate

import "fmt"

// Tessellation bounds shared by every shape parameter.
const (
	MinTessellation = 1
	MaxTessellation = 150
)

// MinRoundSides is the smallest primary tessellation of the cylinder and
// cone: the fewest wedges that still enclose an area.
const MinRoundSides = 3

// PrimaryRange returns the allowed primary tessellation of kind. The
// sphere's primary is a subdivision depth, capped at sphereCap, which is
// itself limited to [MinTessellation, MaxSphereDepth].
func PrimaryRange(kind Kind, sphereCap int) (lo, hi int) {
	switch kind {
	case KindCylinder, KindCone:
		return MinRoundSides, MaxTessellation
	case KindSphere:
		return MinTessellation, min(max(sphereCap, MinTessellation), MaxSphereDepth)
	default:
		return MinTessellation, MaxTessellation
	}
}

// SecondaryRange returns the allowed secondary tessellation.
func SecondaryRange() (lo, hi int) {
	return MinTessellation, MaxTessellation
}

// CheckParams reports an error if primary or secondary lies outside the
// bounds of kind.
func CheckParams(kind Kind, primary, secondary, sphereCap int) error {
	if lo, hi := PrimaryRange(kind, sphereCap); primary < lo || primary > hi {
		return fmt.Errorf("n %d out of range [%d,%d] for %s", primary, lo, hi, kind)
	}
	if lo, hi := SecondaryRange(); secondary < lo || secondary > hi {
		return fmt.Errorf("m %d out of range [%d,%d]", secondary, lo, hi)
	}
	return nil
}
