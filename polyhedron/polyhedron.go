// Package polyhedron holds the indexed polyhedron mesh value and the Conway
// operators (Dual, Kis, Truncate) that rewrite its vertex and face lists. A
// Polyhedron is immutable once built; every operator returns a new value.
package polyhedron

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/kvsari/polyorb/geop"
)

// Polyhedron is a vertex and face list centered on center with every vertex
// of a regular solid lying at radius from it. Faces reference vertices by
// index and list them in winding order. Dual and Kis rely on the radius to
// re-project new points onto the circumscribing sphere.
type Polyhedron struct {
	center   mgl64.Vec3
	radius   float64
	vertices []mgl64.Vec3
	faces    [][]int
}

// New copies the supplied vertex and face lists into a fresh Polyhedron. The
// caller keeps ownership of its slices. Faces must each hold at least three
// valid vertex indices; seed generators are trusted to get this right.
func New(center mgl64.Vec3, radius float64, vertices []mgl64.Vec3, faces [][]int) *Polyhedron {
	vs := make([]mgl64.Vec3, len(vertices))
	copy(vs, vertices)

	fs := make([][]int, len(faces))
	for i, f := range faces {
		fs[i] = append([]int(nil), f...)
	}

	return &Polyhedron{
		center:   center,
		radius:   radius,
		vertices: vs,
		faces:    fs,
	}
}

// Center of the polyhedron. The origin for all seed solids.
func (p *Polyhedron) Center() mgl64.Vec3 {
	return p.center
}

// Radius of the circumscribing sphere.
func (p *Polyhedron) Radius() float64 {
	return p.radius
}

func (p *Polyhedron) VertexCount() int {
	return len(p.vertices)
}

func (p *Polyhedron) FaceCount() int {
	return len(p.faces)
}

// EdgeCount infers the edge total as half the summed face index list lengths
// since every edge is shared by exactly two faces. Only meaningful on a
// closed mesh.
func (p *Polyhedron) EdgeCount() int {
	total := 0
	for _, f := range p.faces {
		total += len(f)
	}
	return total / 2
}

// Vertex returns the position of vertex i.
func (p *Polyhedron) Vertex(i int) mgl64.Vec3 {
	return p.vertices[i]
}

// Vertices returns a copy of the vertex list.
func (p *Polyhedron) Vertices() []mgl64.Vec3 {
	vs := make([]mgl64.Vec3, len(p.vertices))
	copy(vs, p.vertices)
	return vs
}

// Face returns a copy of face i's vertex index cycle.
func (p *Polyhedron) Face(i int) []int {
	return append([]int(nil), p.faces[i]...)
}

// Faces returns a copy of the face list.
func (p *Polyhedron) Faces() [][]int {
	fs := make([][]int, len(p.faces))
	for i, f := range p.faces {
		fs[i] = append([]int(nil), f...)
	}
	return fs
}

// FacePoints resolves face i's indices into positions.
func (p *Polyhedron) FacePoints(i int) []mgl64.Vec3 {
	pts := make([]mgl64.Vec3, len(p.faces[i]))
	for j, idx := range p.faces[i] {
		pts[j] = p.vertices[idx]
	}
	return pts
}

// FaceCentroids derives the area weighted centroid of every face, indexed in
// lock step with the face list. A fresh slice is computed per call; the base
// polyhedron is never touched.
func (p *Polyhedron) FaceCentroids() []mgl64.Vec3 {
	centroids := make([]mgl64.Vec3, len(p.faces))
	for i := range p.faces {
		centroids[i] = geop.ConvexCentroid(p.FacePoints(i))
	}
	return centroids
}

// FaceCenters derives the unweighted mean point of every face, indexed in
// lock step with the face list. See geop.FaceCenter for why this is not the
// centroid.
func (p *Polyhedron) FaceCenters() []mgl64.Vec3 {
	centers := make([]mgl64.Vec3, len(p.faces))
	for i := range p.faces {
		centers[i] = geop.FaceCenter(p.FacePoints(i))
	}
	return centers
}

// FaceNormals derives one unit normal per face from the first three vertices
// of each face cycle, indexed in lock step with the face list.
func (p *Polyhedron) FaceNormals() []mgl64.Vec3 {
	normals := make([]mgl64.Vec3, len(p.faces))
	for i, f := range p.faces {
		normals[i] = geop.TriangleNormal(
			p.vertices[f[0]],
			p.vertices[f[1]],
			p.vertices[f[2]],
		)
	}
	return normals
}

// vertexFaces collects, for every vertex index, the list of face indices
// whose cycle contains that vertex, in face list order.
func (p *Polyhedron) vertexFaces() [][]int {
	incident := make([][]int, len(p.vertices))
	for fi, face := range p.faces {
		for _, vi := range face {
			incident[vi] = append(incident[vi], fi)
		}
	}
	return incident
}
