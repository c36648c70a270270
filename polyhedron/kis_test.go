package polyhedron_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kvsari/polyorb/platonic"
	"github.com/kvsari/polyorb/polyhedron"
)

func TestKisOfTetrahedron(t *testing.T) {
	k := polyhedron.Kis(tetrahedron(t))

	// One apex per face, three triangles per original triangle.
	assert.Equal(t, 4+4, k.VertexCount())
	assert.Equal(t, 4*3, k.FaceCount())
	for i := 0; i < k.FaceCount(); i++ {
		assert.Len(t, k.Face(i), 3)
	}
}

func TestKisCounts(t *testing.T) {
	for _, solid := range []platonic.Solid{
		platonic.Cube,
		platonic.Octahedron,
		platonic.Dodecahedron,
		platonic.Icosahedron,
	} {
		t.Run(solid.String(), func(t *testing.T) {
			p := platonic.NewSeed(solid, 2.0).Polyhedron()
			k := polyhedron.Kis(p)

			assert.Equal(t, p.VertexCount()+p.FaceCount(), k.VertexCount())

			sides := 0
			for _, face := range p.Faces() {
				sides += len(face)
			}
			assert.Equal(t, sides, k.FaceCount())

			assert.Equal(t, 2, k.VertexCount()-k.EdgeCount()+k.FaceCount())
		})
	}
}

func TestKisApexesOnSphere(t *testing.T) {
	p := cube(t)
	k := polyhedron.Kis(p)

	// Apexes for face f sit at original vertex count + f.
	for i := p.VertexCount(); i < k.VertexCount(); i++ {
		assert.InDelta(t, k.Radius(), k.Vertex(i).Sub(k.Center()).Len(), 1e-9)
	}
}

func TestKisFacesWindOutward(t *testing.T) {
	for _, solid := range []platonic.Solid{
		platonic.Tetrahedron,
		platonic.Cube,
		platonic.Octahedron,
		platonic.Dodecahedron,
		platonic.Icosahedron,
	} {
		t.Run(solid.String(), func(t *testing.T) {
			p := platonic.NewSeed(solid, 2.0).Polyhedron()
			k := polyhedron.Kis(p)

			normals := k.FaceNormals()
			centers := k.FaceCenters()
			for fi := range normals {
				assert.Positive(t, normals[fi].Dot(centers[fi].Sub(k.Center())),
					"face %d normal points inward", fi)
			}
		})
	}
}

func TestKisApexIndexing(t *testing.T) {
	p := cube(t)
	k := polyhedron.Kis(p)

	// The first four triangles split face zero and share its apex.
	apex := p.VertexCount()
	face := p.Face(0)
	for i := 0; i < len(face); i++ {
		tri := k.Face(i)
		assert.Equal(t, face[i], tri[0])
		assert.Equal(t, face[(i+1)%len(face)], tri[1])
		assert.Equal(t, apex, tri[2])
	}
}
