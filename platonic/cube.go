package platonic

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/kvsari/polyorb/polyhedron"
)

// cube places the eight corners at ±half the edge length on every axis.
// Vertex order is the p/n naming walked over x, y and z: ppp, npp, nnp, pnp
// on top then the same pattern mirrored below.
func cube(length float64) *polyhedron.Polyhedron {
	h := length / 2
	radius := h * math.Sqrt(3)

	vertices := []mgl64.Vec3{
		{h, h, h},    // 0 ppp
		{-h, h, h},   // 1 npp
		{-h, -h, h},  // 2 nnp
		{h, -h, h},   // 3 pnp
		{h, h, -h},   // 4 ppn
		{-h, h, -h},  // 5 npn
		{-h, -h, -h}, // 6 nnn
		{h, -h, -h},  // 7 pnn
	}

	faces := [][]int{
		{0, 1, 2, 3}, // top
		{5, 4, 7, 6}, // bottom
		{0, 3, 7, 4}, // right
		{2, 1, 5, 6}, // left
		{1, 0, 4, 5}, // front
		{3, 2, 6, 7}, // back
	}

	return polyhedron.New(mgl64.Vec3{}, radius, vertices, faces)
}
