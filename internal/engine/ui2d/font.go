package ui2d

import (
	"image"
	"image/draw"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Printable ASCII range baked into the atlas.
const (
	firstGlyph   = 32
	lastGlyph    = 126
	atlasColumns = 16
)

// Atlas is a grid of fixed-size glyph cells rendered from a bitmap face.
type Atlas struct {
	Image         *image.RGBA
	GlyphW        int
	GlyphH        int
	Columns, Rows int
}

// NewAtlas renders the printable ASCII glyphs of basicfont.Face7x13 into
// a white-on-transparent RGBA image.
func NewAtlas() *Atlas {
	face := basicfont.Face7x13
	gw, gh := face.Advance, face.Height
	count := lastGlyph - firstGlyph + 1
	rows := (count + atlasColumns - 1) / atlasColumns

	img := image.NewRGBA(image.Rect(0, 0, atlasColumns*gw, rows*gh))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)

	d := font.Drawer{Dst: img, Src: image.White, Face: face}
	for ch := firstGlyph; ch <= lastGlyph; ch++ {
		i := ch - firstGlyph
		x, y := (i%atlasColumns)*gw, (i/atlasColumns)*gh
		d.Dot = fixed.P(x, y+face.Ascent)
		d.DrawString(string(rune(ch)))
	}

	return &Atlas{Image: img, GlyphW: gw, GlyphH: gh, Columns: atlasColumns, Rows: rows}
}

// GlyphUV returns the texture coordinates of ch. Characters outside the
// atlas map to '?'.
func (a *Atlas) GlyphUV(ch rune) (u0, v0, u1, v1 float32) {
	if ch < firstGlyph || ch > lastGlyph {
		ch = '?'
	}
	i := int(ch - firstGlyph)
	w := float32(a.Image.Bounds().Dx())
	h := float32(a.Image.Bounds().Dy())

	x := float32((i % a.Columns) * a.GlyphW)
	y := float32((i / a.Columns) * a.GlyphH)
	return x / w, y / h, (x + float32(a.GlyphW)) / w, (y + float32(a.GlyphH)) / h
}

// Font is an Atlas uploaded as an OpenGL texture.
type Font struct {
	*Atlas
	texture uint32
}

// NewFont builds the glyph atlas and uploads it. Requires a current
// OpenGL context.
func NewFont() *Font {
	f := &Font{Atlas: NewAtlas()}
	b := f.Image.Bounds()

	gl.GenTextures(1, &f.texture)
	gl.BindTexture(gl.TEXTURE_2D, f.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(f.Image.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return f
}

// TextureID returns the atlas texture.
func (f *Font) TextureID() uint32 {
	return f.texture
}

// Close deletes the atlas texture.
func (f *Font) Close() {
	if f.texture != 0 {
		gl.DeleteTextures(1, &f.texture)
		f.texture = 0
	}
}
