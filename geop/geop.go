// Package geop holds the geometry primitives used during polyhedron
// generation: triangle normals, polygon centers, sphere re-projection and the
// angular ordering comparator the Conway operators sort new faces with.
package geop

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// GoldenRatio returns (1 + √5) / 2. Used by the dodecahedron and icosahedron
// seed coordinates.
func GoldenRatio() float64 {
	return (1.0 + math.Sqrt(5)) / 2.0
}

// TriangleNormal computes the unit normal of the plane described by the three
// points of a triangle on said plane.
func TriangleNormal(p1, p2, p3 mgl64.Vec3) mgl64.Vec3 {
	v := p2.Sub(p1)
	w := p3.Sub(p1)
	return v.Cross(w).Normalize()
}

// Lengthen rescales the vector from the origin to point so its magnitude
// becomes distance. Used to re-project derived points back onto the
// circumscribing sphere.
func Lengthen(point mgl64.Vec3, distance float64) mgl64.Vec3 {
	return point.Normalize().Mul(distance)
}

// FaceCenter is the unweighted arithmetic mean of the vertices. It is
// deliberately not the area weighted centroid; the bias away from the
// polygon's plane center keeps a chain of operators from progressively
// shrinking the solid when the result is projected back onto the sphere.
func FaceCenter(vertices []mgl64.Vec3) mgl64.Vec3 {
	var sum mgl64.Vec3
	for _, v := range vertices {
		sum = sum.Add(v)
	}
	return sum.Mul(1.0 / float64(len(vertices)))
}

// ConvexCentroid computes the area weighted centroid of a convex planar
// polygon by fan triangulating from the first vertex. The half factor in each
// triangle area is omitted since it cancels in the final ratio. At least
// three non collinear coplanar points are required; degenerate input with
// zero total area divides by zero.
func ConvexCentroid(vertices []mgl64.Vec3) mgl64.Vec3 {
	var weighted mgl64.Vec3
	var total float64

	for i := 1; i < len(vertices)-1; i++ {
		e1 := vertices[i].Sub(vertices[0])
		e2 := vertices[i+1].Sub(vertices[0])
		area := e1.Cross(e2).Len()

		centroid := vertices[0].
			Add(vertices[i]).
			Add(vertices[i+1]).
			Mul(1.0 / 3.0)

		weighted = weighted.Add(centroid.Mul(area))
		total += area
	}

	return weighted.Mul(1.0 / total)
}
