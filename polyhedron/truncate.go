package polyhedron

import "github.com/go-gl/mathgl/mgl64"

// chop is the uniform truncation fraction: a replacement corner sits this far
// along the edge measured from the far endpoint toward the vertex being cut.
const chop = 0.75

// edge records an edge discovered from one of its endpoints through the pair
// of incident faces that share it.
type edge struct {
	other int // the far endpoint
	faceA int
	faceB int
}

// Truncate chamfers every vertex, replacing its corner in each adjacent face
// with new points part way along the vertex's edges. Edges are reconstructed
// from face adjacency: two faces incident to a vertex that also share a
// second vertex bound an edge between the two.
//
// Replacement corners are appended to each mutated face in discovery order
// rather than spliced into the cycle, no face is emitted for the exposed
// vertex figure, and the pair of points cut from either end of an edge are
// never linked or deduplicated. Canonical Conway truncation does all three;
// this reproduces the historical behavior, so downstream consumers should not
// assume consistent winding on the result.
func Truncate(p *Polyhedron) *Polyhedron {
	incident := p.vertexFaces()

	vertices := make([]mgl64.Vec3, len(p.vertices))
	copy(vertices, p.vertices)

	removed := make([]map[int]bool, len(p.faces))
	appended := make([][]int, len(p.faces))
	for i := range removed {
		removed[i] = make(map[int]bool)
	}

	for vi := range p.vertices {
		for _, e := range vertexEdges(p.faces, incident[vi], vi) {
			near := p.vertices[vi]
			far := p.vertices[e.other]

			// chop of the way from the far endpoint toward the
			// vertex being cut.
			point := far.Add(near.Sub(far).Mul(chop))

			idx := len(vertices)
			vertices = append(vertices, point)

			for _, fi := range []int{e.faceA, e.faceB} {
				removed[fi][vi] = true
				appended[fi] = append(appended[fi], idx)
			}
		}
	}

	faces := make([][]int, len(p.faces))
	for fi, face := range p.faces {
		kept := make([]int, 0, len(face)+len(appended[fi]))
		for _, vi := range face {
			if !removed[fi][vi] {
				kept = append(kept, vi)
			}
		}
		faces[fi] = append(kept, appended[fi]...)
	}

	return &Polyhedron{
		center:   p.center,
		radius:   p.radius,
		vertices: vertices,
		faces:    faces,
	}
}

// vertexEdges derives the edges leaving vertex vi from its incident face
// list. Each pair of incident faces sharing a second common vertex bounds one
// edge; pairs that only meet at vi are not edge adjacent and contribute
// nothing.
func vertexEdges(faces [][]int, incident []int, vi int) []edge {
	var edges []edge
	for i := 0; i < len(incident); i++ {
		for j := i + 1; j < len(incident); j++ {
			other, ok := secondCommonVertex(faces[incident[i]], faces[incident[j]], vi)
			if !ok {
				continue
			}
			edges = append(edges, edge{
				other: other,
				faceA: incident[i],
				faceB: incident[j],
			})
		}
	}
	return edges
}

// secondCommonVertex finds the vertex other than vi shared by both face
// cycles, reporting false when the faces touch only at vi.
func secondCommonVertex(faceA, faceB []int, vi int) (int, bool) {
	for _, a := range faceA {
		if a == vi {
			continue
		}
		for _, b := range faceB {
			if a == b {
				return a, true
			}
		}
	}
	return 0, false
}
