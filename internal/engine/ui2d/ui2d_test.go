package ui2d

import "testing"

func TestAtlasLayout(t *testing.T) {
	a := NewAtlas()

	if a.GlyphW != 7 || a.GlyphH != 13 {
		t.Fatalf("glyph size = %dx%d, want 7x13", a.GlyphW, a.GlyphH)
	}
	b := a.Image.Bounds()
	if b.Dx() != 16*7 || b.Dy() != 6*13 {
		t.Errorf("atlas size = %dx%d", b.Dx(), b.Dy())
	}
}

func TestAtlasGlyphsRendered(t *testing.T) {
	a := NewAtlas()

	// alpha coverage inside a glyph cell
	coverage := func(ch rune) int {
		i := int(ch - firstGlyph)
		x0, y0 := (i%a.Columns)*a.GlyphW, (i/a.Columns)*a.GlyphH
		n := 0
		for y := y0; y < y0+a.GlyphH; y++ {
			for x := x0; x < x0+a.GlyphW; x++ {
				if a.Image.RGBAAt(x, y).A > 0 {
					n++
				}
			}
		}
		return n
	}

	if n := coverage(' '); n != 0 {
		t.Errorf("space has %d lit pixels", n)
	}
	for _, ch := range "+-?0123456789Cube" {
		if coverage(ch) == 0 {
			t.Errorf("glyph %q is blank", ch)
		}
	}
}

func TestGlyphUV(t *testing.T) {
	a := NewAtlas()

	u0, v0, u1, v1 := a.GlyphUV(' ')
	if u0 != 0 || v0 != 0 {
		t.Errorf("space UV origin = (%f, %f), want (0, 0)", u0, v0)
	}
	if want := float32(7) / float32(16*7); u1 != want {
		t.Errorf("space u1 = %f, want %f", u1, want)
	}
	if want := float32(13) / float32(6*13); v1 != want {
		t.Errorf("space v1 = %f, want %f", v1, want)
	}

	// 'A' is glyph 33: column 1, row 2
	u0, v0, _, _ = a.GlyphUV('A')
	if u0 != float32(7)/112 || v0 != float32(26)/78 {
		t.Errorf("'A' UV origin = (%f, %f)", u0, v0)
	}

	qu, qv, _, _ := a.GlyphUV('?')
	eu, ev, _, _ := a.GlyphUV('é')
	if qu != eu || qv != ev {
		t.Error("characters outside the atlas should fall back to '?'")
	}
}

func TestLayoutText(t *testing.T) {
	a := NewAtlas()
	v := layoutText(nil, a, 10, 20, "ab\nc", 1, ColorBlack)

	if got := len(v) / (6 * textStride); got != 3 {
		t.Fatalf("quads = %d, want 3", got)
	}
	// third glyph starts a new line back at x=10
	q := v[2*6*textStride:]
	if q[0] != 10 || q[1] != 33 {
		t.Errorf("third glyph at (%f, %f), want (10, 33)", q[0], q[1])
	}
}

func TestAppendQuadGradient(t *testing.T) {
	top := Opaque(1, 0, 0)
	bottom := Opaque(0, 0, 1)
	v := appendQuad(nil, 0, 0, 10, 5, top, bottom)

	if len(v) != 6*solidStride {
		t.Fatalf("len = %d", len(v))
	}
	for i := 0; i < 6; i++ {
		vert := v[i*solidStride:]
		y, r, b := vert[1], vert[3], vert[5]
		if y == 0 && (r != 1 || b != 0) {
			t.Errorf("vertex %d on top edge has color r=%f b=%f", i, r, b)
		}
		if y == 5 && (r != 0 || b != 1) {
			t.Errorf("vertex %d on bottom edge has color r=%f b=%f", i, r, b)
		}
	}
}
