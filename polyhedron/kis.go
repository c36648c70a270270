package polyhedron

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/kvsari/polyorb/geop"
)

// Kis erects a pyramid on every face, splitting each n-gon into n triangles
// that meet at a new apex vertex. Apexes are the face centers re-projected
// onto the circumscribing sphere and live at index vertexCount + faceIndex in
// the new vertex list.
//
// Output counts: vertices = input vertices + input faces, faces = the summed
// size of every input face.
func Kis(p *Polyhedron) *Polyhedron {
	centers := p.FaceCenters()

	vertices := make([]mgl64.Vec3, len(p.vertices), len(p.vertices)+len(centers))
	copy(vertices, p.vertices)
	for _, c := range centers {
		vertices = append(vertices, geop.Lengthen(c, p.radius))
	}

	var faces [][]int
	for fi, face := range p.faces {
		apex := len(p.vertices) + fi
		for i, start := range face {
			end := face[(i+1)%len(face)]
			faces = append(faces, []int{start, end, apex})
		}
	}

	return &Polyhedron{
		center:   p.center,
		radius:   p.radius,
		vertices: vertices,
		faces:    faces,
	}
}
