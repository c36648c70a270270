package platonic

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/kvsari/polyorb/polyhedron"
)

// icosahedron builds from three orthogonal golden rectangles centered on the
// origin, one per axis plane, with a triangle spanning each rectangle corner
// cluster.
func icosahedron(length float64) *polyhedron.Polyhedron {
	g := (1 + math.Sqrt(5)) / 2

	long := length * g / 2 // half the rectangle long side
	short := length / 2    // half the rectangle short side
	radius := math.Sqrt(long*long + short*short)

	vertices := []mgl64.Vec3{
		{-long, short, 0},  // 0 xy tl
		{long, short, 0},   // 1 xy tr
		{long, -short, 0},  // 2 xy br
		{-long, -short, 0}, // 3 xy bl
		{short, 0, -long},  // 4 xz tl
		{short, 0, long},   // 5 xz tr
		{-short, 0, long},  // 6 xz br
		{-short, 0, -long}, // 7 xz bl
		{0, -long, short},  // 8 yz tl
		{0, long, short},   // 9 yz tr
		{0, long, -short},  // 10 yz br
		{0, -long, -short}, // 11 yz bl
	}

	faces := [][]int{
		{10, 0, 9},
		{0, 7, 3},
		{0, 10, 7},
		{6, 0, 3},
		{9, 0, 6},
		{3, 7, 11},
		{3, 11, 8},
		{3, 8, 6},
		{9, 6, 5},
		{1, 9, 5},
		{9, 1, 10},
		{5, 8, 2},
		{2, 8, 11},
		{2, 11, 4},
		{1, 5, 2},
		{4, 1, 2},
		{4, 11, 7},
		{7, 10, 4},
		{10, 1, 4},
		{6, 8, 5},
	}

	return polyhedron.New(mgl64.Vec3{}, radius, vertices, faces)
}
