// Package planar is the boundary between the topology engine and whatever
// renders its output. A finished polyhedron becomes a list of planar polygons
// and each polygon fan triangulates into flat vertex and index buffers.
//
// The slicing here is only for consumption; the Conway operators never go
// through this package. Faces of more than three vertices are planar in
// principle though floating point drift makes that approximate in practice.
package planar

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/kvsari/polyorb/polyhedron"
)

// Vertex is one flat renderable vertex: position, face normal and colour,
// ready for whatever buffer layout the consumer wants.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	Colour   [3]float32
}

// Polygon is one planar face: an ordered vertex cycle plus the face normal.
type Polygon struct {
	vertices []mgl64.Vec3
	normal   mgl64.Vec3
}

// NewPolygon wraps a face's resolved points and normal. Planarity and the
// three vertex minimum are not checked; build these through FromPolyhedron
// unless the input is known good.
func NewPolygon(vertices []mgl64.Vec3, normal mgl64.Vec3) Polygon {
	vs := make([]mgl64.Vec3, len(vertices))
	copy(vs, vertices)
	return Polygon{vertices: vs, normal: normal}
}

// Vertices returns a copy of the polygon's vertex cycle.
func (p Polygon) Vertices() []mgl64.Vec3 {
	vs := make([]mgl64.Vec3, len(p.vertices))
	copy(vs, p.vertices)
	return vs
}

// Normal returns the polygon's face normal.
func (p Polygon) Normal() mgl64.Vec3 {
	return p.normal
}

// FromPolyhedron explodes a finished polyhedron into one polygon per face,
// resolving vertex indices into positions and annotating each face with its
// normal.
func FromPolyhedron(p *polyhedron.Polyhedron) []Polygon {
	normals := p.FaceNormals()

	polygons := make([]Polygon, p.FaceCount())
	for i := range polygons {
		polygons[i] = Polygon{
			vertices: p.FacePoints(i),
			normal:   normals[i],
		}
	}
	return polygons
}

// Buffers fan triangulates the polygon into a flat vertex list and a triangle
// index list. Every emitted vertex carries the face normal and the supplied
// colour. The offset shifts the indices so buffers from several polygons can
// be concatenated into one.
func (p Polygon) Buffers(colour [3]float32, offset int) ([]Vertex, []uint16) {
	indices := make([]uint16, 0, (len(p.vertices)-2)*3)
	for i := 1; i < len(p.vertices)-1; i++ {
		indices = append(indices,
			uint16(offset),
			uint16(i+offset),
			uint16(i+1+offset),
		)
	}

	normal := [3]float32{
		float32(p.normal.X()),
		float32(p.normal.Y()),
		float32(p.normal.Z()),
	}

	vertices := make([]Vertex, len(p.vertices))
	for i, v := range p.vertices {
		vertices[i] = Vertex{
			Position: [3]float32{
				float32(v.X()),
				float32(v.Y()),
				float32(v.Z()),
			},
			Normal: normal,
			Colour: colour,
		}
	}

	return vertices, indices
}
