package platonic

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/kvsari/polyorb/polyhedron"
)

// tetrahedron plots three base vertices on the unit sphere scaled to the
// circumscribed radius with the apex straight up on the z axis.
func tetrahedron(length float64) *polyhedron.Polyhedron {
	radius := math.Sqrt(6) / 4 * length

	v1 := math.Sqrt(8.0/9.0) * radius
	v2 := -1.0 / 3.0 * radius
	v3 := math.Sqrt(2.0/3.0) * radius
	v4 := math.Sqrt(2.0/9.0) * radius

	vertices := []mgl64.Vec3{
		{v1, 0, v2},
		{-v4, v3, v2},
		{-v4, -v3, v2},
		{0, 0, radius},
	}

	faces := [][]int{
		{0, 2, 1},
		{0, 3, 2},
		{2, 3, 1},
		{0, 1, 3},
	}

	return polyhedron.New(mgl64.Vec3{}, radius, vertices, faces)
}
