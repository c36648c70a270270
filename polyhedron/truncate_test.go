package polyhedron_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kvsari/polyorb/platonic"
	"github.com/kvsari/polyorb/polyhedron"
)

func TestTruncateCounts(t *testing.T) {
	// Two new points per edge, original vertices retired in place, face
	// count untouched. No vertex figure faces are emitted.
	for _, solid := range []platonic.Solid{
		platonic.Tetrahedron,
		platonic.Cube,
		platonic.Octahedron,
		platonic.Dodecahedron,
		platonic.Icosahedron,
	} {
		t.Run(solid.String(), func(t *testing.T) {
			p := platonic.NewSeed(solid, 2.0).Polyhedron()
			tr := polyhedron.Truncate(p)

			assert.Equal(t, p.VertexCount()+2*p.EdgeCount(), tr.VertexCount())
			assert.Equal(t, p.FaceCount(), tr.FaceCount())
		})
	}
}

func TestTruncateCubeFaces(t *testing.T) {
	p := cube(t)
	tr := polyhedron.Truncate(p)

	// Each square face loses four corners and gains two replacement
	// points per corner.
	for i := 0; i < tr.FaceCount(); i++ {
		face := tr.Face(i)
		assert.Len(t, face, 8)

		// Only new points remain; every original corner was cut.
		for _, vi := range face {
			assert.GreaterOrEqual(t, vi, p.VertexCount())
		}
	}
}

func TestTruncatePointsSitOnEdges(t *testing.T) {
	p := cube(t)
	tr := polyhedron.Truncate(p)

	// Every new point lies a quarter edge in from some original vertex:
	// chop 0.75 measured from the far endpoint.
	const quarter = 0.5 // edge length 2.0
	for i := p.VertexCount(); i < tr.VertexCount(); i++ {
		point := tr.Vertex(i)

		nearest := -1
		best := 0.0
		for j := 0; j < p.VertexCount(); j++ {
			d := p.Vertex(j).Sub(point).Len()
			if nearest == -1 || d < best {
				nearest = j
				best = d
			}
		}
		assert.InDelta(t, quarter, best, 1e-9, "new point %d", i)
	}
}

func TestTruncateLeavesInputAlone(t *testing.T) {
	p := cube(t)

	_ = polyhedron.Truncate(p)

	assert.Equal(t, 8, p.VertexCount())
	assert.Equal(t, 6, p.FaceCount())
	for i := 0; i < p.FaceCount(); i++ {
		assert.Len(t, p.Face(i), 4)
	}
}
