// Package mesh turns analyzed grid cells into a single triangle list.
package mesh

// Vertex is one corner of a world triangle.
type Vertex struct {
	Position [3]float32
	TexCoord [2]float32
	Normal   [3]float32
	Color    [4]float32
}

// Mesh holds the shared vertex and index streams of the whole floor.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// IndexCount returns the number of indices.
func (m *Mesh) IndexCount() int {
	return len(m.Indices)
}

// quad appends two triangles a-b-c, c-d-a.
func quad(dst []Vertex, a, b, c, d Vertex) []Vertex {
	return append(dst, a, b, c, c, d, a)
}
