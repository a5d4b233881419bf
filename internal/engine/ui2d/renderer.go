// Package ui2d provides a simple 2D rendering layer for the status panel:
// solid and gradient quads plus bitmap text, batched per frame.
package ui2d

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/tessview/internal/engine/shader"
	"github.com/Faultbox/tessview/pkg/math"
)

// Floats per vertex in each batch.
const (
	solidStride = 7 // pos3 + color4
	textStride  = 9 // pos3 + uv2 + color4
)

// Renderer handles 2D rendering with OpenGL. Coordinates are screen
// points with the origin at the top-left.
type Renderer struct {
	screenWidth  int
	screenHeight int

	// framebuffer size in pixels, 0 to leave the viewport alone
	fbWidth, fbHeight int

	solidShader *shader.Program
	textShader  *shader.Program

	solidVAO, solidVBO uint32
	textVAO, textVBO   uint32

	// Current draw lists
	solidVertices []float32
	textVertices  []float32

	font *Font
}

// New creates a new 2D renderer for a screen of the given size.
func New(width, height int) (*Renderer, error) {
	r := &Renderer{
		screenWidth:   width,
		screenHeight:  height,
		solidVertices: make([]float32, 0, 4096),
		textVertices:  make([]float32, 0, 4096),
	}

	var err error
	r.solidShader, err = shader.New(solidVertexShader, solidFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("create solid shader: %w", err)
	}
	r.textShader, err = shader.New(textVertexShader, textFragmentShader)
	if err != nil {
		r.solidShader.Delete()
		return nil, fmt.Errorf("create text shader: %w", err)
	}

	// pos(3) + color(4)
	r.solidVAO, r.solidVBO = newBatchBuffers(solidStride, []int32{3, 4})
	// pos(3) + texcoord(2) + color(4)
	r.textVAO, r.textVBO = newBatchBuffers(textStride, []int32{3, 2, 4})

	r.font = NewFont()
	return r, nil
}

// newBatchBuffers creates a VAO/VBO pair with consecutive float
// attributes of the given sizes.
func newBatchBuffers(stride int, sizes []int32) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	var offset uintptr
	for i, n := range sizes {
		gl.VertexAttribPointerWithOffset(uint32(i), n, gl.FLOAT, false, int32(stride*4), offset)
		gl.EnableVertexAttribArray(uint32(i))
		offset += uintptr(n) * 4
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vao, vbo
}

// Resize updates the screen dimensions.
func (r *Renderer) Resize(width, height int) {
	r.screenWidth = width
	r.screenHeight = height
}

// SetFramebufferSize sets the pixel size End draws into. It differs from
// the screen size on high-DPI displays.
func (r *Renderer) SetFramebufferSize(width, height int) {
	r.fbWidth = width
	r.fbHeight = height
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	r.solidVertices = r.solidVertices[:0]
	r.textVertices = r.textVertices[:0]
}

// End draws everything queued since Begin, quads first and text on top.
func (r *Renderer) End() {
	if r.fbWidth > 0 && r.fbHeight > 0 {
		gl.Viewport(0, 0, int32(r.fbWidth), int32(r.fbHeight))
	}
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	proj := math.Ortho(0, float32(r.screenWidth), float32(r.screenHeight), 0, -1, 1)

	if len(r.solidVertices) > 0 {
		r.solidShader.Use()
		r.solidShader.SetMat4("uProjection", proj)
		flush(r.solidVAO, r.solidVBO, r.solidVertices, solidStride)
	}

	if len(r.textVertices) > 0 && r.font != nil {
		r.textShader.Use()
		r.textShader.SetMat4("uProjection", proj)
		r.textShader.SetInt("uTexture", 0)

		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, r.font.TextureID())
		flush(r.textVAO, r.textVBO, r.textVertices, textStride)
		gl.BindTexture(gl.TEXTURE_2D, 0)
	}

	gl.UseProgram(0)
	gl.Disable(gl.BLEND)
}

func flush(vao, vbo uint32, vertices []float32, stride int) {
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(vertices)/stride))
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Close releases renderer resources.
func (r *Renderer) Close() {
	if r.font != nil {
		r.font.Close()
	}
	for _, vao := range []*uint32{&r.solidVAO, &r.textVAO} {
		if *vao != 0 {
			gl.DeleteVertexArrays(1, vao)
		}
	}
	for _, vbo := range []*uint32{&r.solidVBO, &r.textVBO} {
		if *vbo != 0 {
			gl.DeleteBuffers(1, vbo)
		}
	}
	if r.solidShader != nil {
		r.solidShader.Delete()
	}
	if r.textShader != nil {
		r.textShader.Delete()
	}
}

// DrawRect draws a filled rectangle.
func (r *Renderer) DrawRect(x, y, width, height float32, color Color) {
	r.solidVertices = appendQuad(r.solidVertices, x, y, width, height, color, color)
}

// DrawGradientRect draws a rectangle shaded from top to bottom.
func (r *Renderer) DrawGradientRect(x, y, width, height float32, top, bottom Color) {
	r.solidVertices = appendQuad(r.solidVertices, x, y, width, height, top, bottom)
}

// appendQuad appends two triangles covering the rectangle, colored top
// to bottom.
func appendQuad(v []float32, x, y, w, h float32, top, bottom Color) []float32 {
	t, b := top, bottom
	return append(v,
		x, y, 0, t.R, t.G, t.B, t.A,
		x+w, y, 0, t.R, t.G, t.B, t.A,
		x+w, y+h, 0, b.R, b.G, b.B, b.A,

		x, y, 0, t.R, t.G, t.B, t.A,
		x+w, y+h, 0, b.R, b.G, b.B, b.A,
		x, y+h, 0, b.R, b.G, b.B, b.A,
	)
}

// appendTexturedQuad appends a textured quad to a text batch.
func appendTexturedQuad(v []float32, x, y, w, h, u0, v0, u1, v1 float32, c Color) []float32 {
	return append(v,
		x, y, 0, u0, v0, c.R, c.G, c.B, c.A,
		x+w, y, 0, u1, v0, c.R, c.G, c.B, c.A,
		x+w, y+h, 0, u1, v1, c.R, c.G, c.B, c.A,

		x, y, 0, u0, v0, c.R, c.G, c.B, c.A,
		x+w, y+h, 0, u1, v1, c.R, c.G, c.B, c.A,
		x, y+h, 0, u0, v1, c.R, c.G, c.B, c.A,
	)
}

// DrawText draws text with its top-left corner at (x, y).
func (r *Renderer) DrawText(x, y float32, text string, scale float32, color Color) {
	if r.font == nil {
		return
	}
	r.textVertices = layoutText(r.textVertices, r.font.Atlas, x, y, text, scale, color)
}

// layoutText appends one textured quad per glyph of text.
func layoutText(v []float32, a *Atlas, x, y float32, text string, scale float32, color Color) []float32 {
	charW := float32(a.GlyphW) * scale
	charH := float32(a.GlyphH) * scale

	curX := x
	for _, ch := range text {
		if ch == '\n' {
			curX = x
			y += charH
			continue
		}
		u0, v0, u1, v1 := a.GlyphUV(ch)
		v = appendTexturedQuad(v, curX, y, charW, charH, u0, v0, u1, v1, color)
		curX += charW
	}
	return v
}

const solidVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec4 aColor;

uniform mat4 uProjection;

out vec4 vColor;

void main() {
	gl_Position = uProjection * vec4(aPos, 1.0);
	vColor = aColor;
}
`

const solidFragmentShader = `
#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
	FragColor = vColor;
}
`

const textVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

uniform mat4 uProjection;

out vec2 vTexCoord;
out vec4 vColor;

void main() {
	gl_Position = uProjection * vec4(aPos, 1.0);
	vTexCoord = aTexCoord;
	vColor = aColor;
}
`

const textFragmentShader = `
#version 410 core

uniform sampler2D uTexture;

in vec2 vTexCoord;
in vec4 vColor;
out vec4 FragColor;

void main() {
	float alpha = texture(uTexture, vTexCoord).a;
	FragColor = vec4(vColor.rgb, vColor.a * alpha);
}
`
