package mesh

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// VertexStride is the byte size of one encoded Vertex: position, texcoord, normal, color.
const VertexStride = (3 + 2 + 3 + 4) * 4

var (
	// IndexFormat is the element format of IndexBytes.
	IndexFormat = gputypes.IndexFormatUint32
	// Topology is how the index stream is assembled.
	Topology = gputypes.PrimitiveTopologyTriangleList
)

// VertexLayout returns the buffer layout matching VertexBytes.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 12, ShaderLocation: 1}, // texcoord
				{Format: gputypes.VertexFormatFloat32x3, Offset: 20, ShaderLocation: 2}, // normal
				{Format: gputypes.VertexFormatFloat32x4, Offset: 32, ShaderLocation: 3}, // color
			},
		},
	}
}

// VertexBytes encodes the vertices little-endian, VertexStride bytes each.
func (m *Mesh) VertexBytes() []byte {
	buf := make([]byte, 0, len(m.Vertices)*VertexStride)
	for i := range m.Vertices {
		v := &m.Vertices[i]
		buf = appendFloats(buf, v.Position[:]...)
		buf = appendFloats(buf, v.TexCoord[:]...)
		buf = appendFloats(buf, v.Normal[:]...)
		buf = appendFloats(buf, v.Color[:]...)
	}
	return buf
}

// IndexBytes encodes the indices as little-endian uint32.
func (m *Mesh) IndexBytes() []byte {
	buf := make([]byte, 0, len(m.Indices)*4)
	for _, idx := range m.Indices {
		buf = binary.LittleEndian.AppendUint32(buf, idx)
	}
	return buf
}

func appendFloats(buf []byte, fs ...float32) []byte {
	for _, f := range fs {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}
	return buf
}
