// Package renderer draws the tessellated mesh with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/tessview/internal/engine/shader"
	"github.com/Faultbox/tessview/internal/viewer"
	"github.com/Faultbox/tessview/pkg/math"
)

// Camera placement for the mesh view.
const (
	fovYDegrees = 45
	nearPlane   = 0.1
	farPlane    = 100
)

var (
	cameraEye    = math.Point3{X: 0, Y: 0, Z: 2.75}
	cameraTarget = math.Point3{X: 0, Y: 0, Z: -1}
	cameraUp     = math.Vec3{X: 0, Y: 1, Z: 0}
)

// Viewport is a pixel rectangle with its origin at the bottom-left of the
// framebuffer.
type Viewport struct {
	X, Y, W, H int32
}

// Init loads the OpenGL function pointers for the current context and
// logs the driver version.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func Init(log *zap.Logger) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)
	return nil
}

// Clear clears the whole framebuffer to color.
func Clear(width, height int, r, g, b float32) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(r, g, b, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// MVP returns the model-view-projection matrix for a shape rotated by rot
// and drawn into a viewport of the given aspect ratio.
func MVP(rot viewer.Rotation, aspect float32) math.Mat4 {
	proj := math.Perspective(math.Radians(fovYDegrees), aspect, nearPlane, farPlane)
	view := math.LookAt(cameraEye, cameraTarget, cameraUp)
	model := math.EulerDegrees(rot.X, rot.Y, rot.Z)
	return proj.Mul(view).Mul(model)
}

// MeshRenderer draws a triangle list as a back-face culled wireframe.
type MeshRenderer struct {
	log     *zap.Logger
	program *shader.Program

	vao, vbo uint32
	count    int32

	// generation of the uploaded triangles, -1 before the first upload
	generation int
}

// NewMeshRenderer creates the mesh shader and vertex buffers.
func NewMeshRenderer(log *zap.Logger) (*MeshRenderer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	r := &MeshRenderer{log: log, generation: -1}

	var err error
	r.program, err = shader.New(meshVertexShader, meshFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("mesh shader: %w", err)
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// position only: 3 floats, 12 bytes
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(unsafe.Sizeof(math.Point3{})), 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	log.Debug("mesh renderer created", zap.Uint32("vao", r.vao), zap.Uint32("vbo", r.vbo))
	return r, nil
}

// Draw renders frame into vp. Triangles are uploaded again only when the
// frame's generation changes.
func (r *MeshRenderer) Draw(frame viewer.MeshFrame, vp Viewport) {
	if frame.Generation != r.generation {
		r.upload(frame.Points)
		r.generation = frame.Generation
	}
	if r.count == 0 || vp.W <= 0 || vp.H <= 0 {
		return
	}

	gl.Viewport(vp.X, vp.Y, vp.W, vp.H)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)

	r.program.Use()
	r.program.SetMat4("uMVP", MVP(frame.Rotation, float32(vp.W)/float32(vp.H)))
	r.program.SetVec4("uColor", 0, 0, 0, 1)

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, r.count)
	gl.BindVertexArray(0)
	gl.UseProgram(0)

	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.Disable(gl.CULL_FACE)
}

func (r *MeshRenderer) upload(points []math.Point3) {
	r.count = int32(len(points))

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	if len(points) > 0 {
		size := len(points) * int(unsafe.Sizeof(points[0]))
		gl.BufferData(gl.ARRAY_BUFFER, size, unsafe.Pointer(&points[0]), gl.STATIC_DRAW)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.log.Debug("mesh uploaded", zap.Int("triangles", len(points)/3))
}

// Close releases GPU resources.
func (r *MeshRenderer) Close() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

const meshVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uMVP;

void main() {
	gl_Position = uMVP * vec4(aPos, 1.0);
}
`

const meshFragmentShader = `
#version 410 core

uniform vec4 uColor;

out vec4 FragColor;

void main() {
	FragColor = uColor;
}
`
