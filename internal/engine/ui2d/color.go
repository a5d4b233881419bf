package ui2d

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// ColorBlack is opaque black.
var ColorBlack = Color{0, 0, 0, 1}

// Opaque creates a color from float RGB components with full alpha.
func Opaque(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}
