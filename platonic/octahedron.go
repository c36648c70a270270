package platonic

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/kvsari/polyorb/polyhedron"
)

// octahedron anchors a square of side length on the x y plane with the two
// remaining vertices out on the z axis at the sphere radius.
func octahedron(length float64) *polyhedron.Polyhedron {
	h := length / 2
	radius := h * math.Sqrt(2)

	vertices := []mgl64.Vec3{
		{-h, h, 0},      // 0 top left
		{h, h, 0},       // 1 top right
		{-h, -h, 0},     // 2 bottom left
		{h, -h, 0},      // 3 bottom right
		{0, 0, -radius}, // 4 far
		{0, 0, radius},  // 5 near
	}

	faces := [][]int{
		{0, 1, 4},
		{2, 0, 4},
		{3, 2, 4},
		{1, 3, 4},
		{1, 0, 5},
		{0, 2, 5},
		{2, 3, 5},
		{3, 1, 5},
	}

	return polyhedron.New(mgl64.Vec3{}, radius, vertices, faces)
}
