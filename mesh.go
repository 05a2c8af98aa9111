package main

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// mesh bundles one VAO with its buffers. Draw binds the VAO immediately
// before issuing the call and unbinds right after, so no draw can pick up
// a stale binding from an earlier one.
type mesh struct {
	vao, vbo, ebo uint32
	count         int32
	mode          uint32
}

// newMesh uploads interleaved vertex data. floatsPerVertex is 3 for
// position-only meshes and 6 for position+normal; normals land on
// attribute location 1, matching the lit shader.
func newMesh(vertices []float32, indices []uint32, floatsPerVertex int32, mode uint32) mesh {
	m := mesh{mode: mode}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	if indices != nil {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
		m.count = int32(len(indices))
	} else {
		m.count = int32(len(vertices)) / floatsPerVertex
	}

	stride := floatsPerVertex * 4

	// Position attribute (layout location 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.Ptr(nil))
	gl.EnableVertexAttribArray(0)

	// Normal attribute (layout location 1)
	if floatsPerVertex >= 6 {
		gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
		gl.EnableVertexAttribArray(1)
	}

	gl.BindVertexArray(0) // Unbind VAO

	return m
}

// draw renders the whole mesh.
func (m *mesh) draw() {
	gl.BindVertexArray(m.vao)
	if m.ebo != 0 {
		gl.DrawElements(m.mode, m.count, gl.UNSIGNED_INT, unsafe.Pointer(uintptr(0)))
	} else {
		gl.DrawArrays(m.mode, 0, m.count)
	}
	gl.BindVertexArray(0)
}

// drawRange renders a sub-range of a non-indexed mesh; used for the axes,
// where each segment gets its own color uniform.
func (m *mesh) drawRange(first, count int32) {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(m.mode, first, count)
	gl.BindVertexArray(0)
}

func (m *mesh) delete() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
}

// gridVertices builds the line list for a flat reference grid on the XZ
// plane: lines parallel to X and to Z, one world unit apart, spanning
// [-halfExtent, +halfExtent].
func gridVertices(halfExtent float32, divisions int) []float32 {
	step := 2 * halfExtent / float32(divisions)
	var verts []float32
	for i := 0; i <= divisions; i++ {
		p := -halfExtent + float32(i)*step
		// Line parallel to Z (vary X)
		verts = append(verts, p, 0, -halfExtent, p, 0, halfExtent)
		// Line parallel to X (vary Z)
		verts = append(verts, -halfExtent, 0, p, halfExtent, 0, p)
	}
	return verts
}

// axesVertices holds three short segments from the origin; the frame loop
// draws them in sub-ranges of two vertices, one color each (X, Y, Z).
var axesVertices = []float32{
	0, 0, 0, 2, 0, 0, // X
	0, 0, 0, 0, 2, 0, // Y
	0, 0, 0, 0, 0, 2, // Z
}

// quadVertices is a unit quad in the XY plane; the clip-plane transform
// scales and orients it onto the plane.
var quadVertices = []float32{
	-1, 1, 0,
	1, 1, 0,
	1, -1, 0,
	-1, -1, 0,
}

var quadIndices = []uint32{
	0, 1, 2,
	0, 2, 3,
}

// cubeVertices is a unit cube with per-face normals, 24 vertices so each
// face is flat shaded.
var cubeVertices = []float32{
	// Front face (+Z)
	-0.5, -0.5, 0.5, 0, 0, 1,
	0.5, -0.5, 0.5, 0, 0, 1,
	0.5, 0.5, 0.5, 0, 0, 1,
	-0.5, 0.5, 0.5, 0, 0, 1,

	// Back face (-Z)
	-0.5, -0.5, -0.5, 0, 0, -1,
	0.5, -0.5, -0.5, 0, 0, -1,
	0.5, 0.5, -0.5, 0, 0, -1,
	-0.5, 0.5, -0.5, 0, 0, -1,

	// Right face (+X)
	0.5, -0.5, 0.5, 1, 0, 0,
	0.5, -0.5, -0.5, 1, 0, 0,
	0.5, 0.5, -0.5, 1, 0, 0,
	0.5, 0.5, 0.5, 1, 0, 0,

	// Left face (-X)
	-0.5, -0.5, 0.5, -1, 0, 0,
	-0.5, -0.5, -0.5, -1, 0, 0,
	-0.5, 0.5, -0.5, -1, 0, 0,
	-0.5, 0.5, 0.5, -1, 0, 0,

	// Top face (+Y)
	-0.5, 0.5, 0.5, 0, 1, 0,
	0.5, 0.5, 0.5, 0, 1, 0,
	0.5, 0.5, -0.5, 0, 1, 0,
	-0.5, 0.5, -0.5, 0, 1, 0,

	// Bottom face (-Y)
	-0.5, -0.5, 0.5, 0, -1, 0,
	0.5, -0.5, 0.5, 0, -1, 0,
	0.5, -0.5, -0.5, 0, -1, 0,
	-0.5, -0.5, -0.5, 0, -1, 0,
}

var cubeIndices = []uint32{
	// Front
	0, 1, 2,
	2, 3, 0,

	// Back
	4, 5, 6,
	6, 7, 4,

	// Right
	8, 9, 10,
	10, 11, 8,

	// Left
	12, 13, 14,
	14, 15, 12,

	// Top
	16, 17, 18,
	18, 19, 16,

	// Bottom
	20, 21, 22,
	22, 23, 20,
}
