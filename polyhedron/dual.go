package polyhedron

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/kvsari/polyorb/geop"
)

// Dual replaces each face with a vertex and each vertex with a face, keeping
// the solid inscribed in the same circumscribing sphere. The new vertices are
// the face centroids re-projected onto the sphere; the new face for an
// original vertex is its incident face list wound around the point where the
// center→vertex ray crosses the plane those centroids sit near.
//
// A vertex whose incident centroids are coplanar with the center makes that
// ray/plane intersection impossible and returns ErrDegenerateGeometry.
func Dual(p *Polyhedron) (*Polyhedron, error) {
	centroids := p.FaceCentroids()
	incident := p.vertexFaces()

	faces := make([][]int, len(p.vertices))
	for vi, facesAt := range incident {
		ray := p.vertices[vi].Sub(p.center)
		normal := ray.Normalize()

		// Any incident centroid serves as the plane's point; the plane
		// only needs to approximate where the new face will sit.
		plane := geop.NewPlane(normal, centroids[facesAt[0]])

		sortCenter, ok := plane.LineIntersection(ray, p.center)
		if !ok {
			return nil, fmt.Errorf(
				"dual: vertex %d incident centroids coplanar with center: %w",
				vi, ErrDegenerateGeometry,
			)
		}

		// Greater walks counterclockwise around the outward normal, which
		// keeps the emitted winding outward like the seeds.
		face := append([]int(nil), facesAt...)
		sort.Slice(face, func(i, j int) bool {
			return geop.Clockwise(
				centroids[face[i]], centroids[face[j]], sortCenter, normal,
			) == geop.Greater
		})
		faces[vi] = face
	}

	vertices := make([]mgl64.Vec3, len(centroids))
	for i, c := range centroids {
		vertices[i] = geop.Lengthen(c, p.radius)
	}

	return &Polyhedron{
		center:   p.center,
		radius:   p.radius,
		vertices: vertices,
		faces:    faces,
	}, nil
}
