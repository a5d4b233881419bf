package math

// Point3 is a position in 3-space. Points and vectors are kept apart so
// that mesh code reads as affine arithmetic: point + vector, point - point.
type Point3 struct {
	X, Y, Z float32
}

// Origin is the point (0, 0, 0).
var Origin = Point3{}

// Add returns p translated by v.
func (p Point3) Add(v Vec3) Point3 {
	return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// AddScaled returns p + v*s.
func (p Point3) AddScaled(v Vec3, s float32) Point3 {
	return Point3{p.X + v.X*s, p.Y + v.Y*s, p.Z + v.Z*s}
}

// Sub returns the vector from other to p.
func (p Point3) Sub(other Point3) Vec3 {
	return Vec3{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// Lerp returns the point a fraction t of the way from p to other.
func (p Point3) Lerp(other Point3, t float32) Point3 {
	return p.AddScaled(other.Sub(p), t)
}

// Midpoint returns the point halfway between p and other.
// The result does not depend on argument order.
func (p Point3) Midpoint(other Point3) Point3 {
	return Point3{(p.X + other.X) * 0.5, (p.Y + other.Y) * 0.5, (p.Z + other.Z) * 0.5}
}

// Vec returns the position vector of p.
func (p Point3) Vec() Vec3 {
	return Vec3{p.X, p.Y, p.Z}
}

// Distance returns the distance to another point.
func (p Point3) Distance(other Point3) float32 {
	return p.Sub(other).Length()
}
