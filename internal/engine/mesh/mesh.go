// Package mesh uploads procedural geometry to the GPU and draws it.
package mesh

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/glcourse/pkg/procgen"
)

// DrawMode selects how a mesh's indices are rasterised.
type DrawMode int

const (
	DrawTriangles DrawMode = iota
	DrawPoints
)

func (m DrawMode) String() string {
	switch m {
	case DrawTriangles:
		return "triangles"
	case DrawPoints:
		return "points"
	default:
		return fmt.Sprintf("DrawMode(%d)", int(m))
	}
}

func (m DrawMode) glMode() uint32 {
	if m == DrawPoints {
		return gl.POINTS
	}
	return gl.TRIANGLES
}

var vertexSize = int32(unsafe.Sizeof(procgen.Vertex{}))

// Mesh is a VAO with interleaved position/normal/uv attributes and an index buffer.
type Mesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
	vertexCount   int32
}

// New uploads data to a new mesh.
func New(data procgen.MeshData) (*Mesh, error) {
	m := &Mesh{}
	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexSize, unsafe.Offsetof(procgen.Vertex{}.Pos))
	gl.EnableVertexAttribArray(0)
	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexSize, unsafe.Offsetof(procgen.Vertex{}.Normal))
	gl.EnableVertexAttribArray(1)
	// UV (location 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, vertexSize, unsafe.Offsetof(procgen.Vertex{}.UV))
	gl.EnableVertexAttribArray(2)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BindVertexArray(0)

	if err := m.Replace(data); err != nil {
		m.Destroy()
		return nil, err
	}
	return m, nil
}

// Replace re-uploads the vertex and index data, keeping the same GL objects.
func (m *Mesh) Replace(data procgen.MeshData) error {
	if err := data.Validate(); err != nil {
		return fmt.Errorf("uploading mesh: %w", err)
	}

	gl.BindVertexArray(m.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	if len(data.Vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data.Vertices)*int(vertexSize), unsafe.Pointer(&data.Vertices[0]), gl.STATIC_DRAW)
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
	}

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	if len(data.Indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Indices)*4, unsafe.Pointer(&data.Indices[0]), gl.STATIC_DRAW)
	} else {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)

	m.vertexCount = int32(len(data.Vertices))
	m.indexCount = int32(len(data.Indices))
	return nil
}

// Draw renders the mesh with the currently bound program.
func (m *Mesh) Draw(mode DrawMode) {
	if m.indexCount == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElements(mode.glMode(), m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// IndexCount returns the number of uploaded indices.
func (m *Mesh) IndexCount() int32 { return m.indexCount }

// VertexCount returns the number of uploaded vertices.
func (m *Mesh) VertexCount() int32 { return m.vertexCount }

// Destroy releases the GL objects.
func (m *Mesh) Destroy() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
}
