package platonic

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/kvsari/polyorb/polyhedron"
)

// dodecahedron builds from a golden ratio cube plus three orthogonal
// rectangles. The cube coordinate is half the pentagon diagonal (edge × φ)
// and the rectangles stretch that again by φ on their long axis.
func dodecahedron(length float64) *polyhedron.Polyhedron {
	half := length / 2
	g := (1 + math.Sqrt(5)) / 2

	c := half * g // cube corner coordinate
	l := c * g    // rectangle long coordinate
	s := half     // rectangle short coordinate
	radius := c * math.Sqrt(3)

	vertices := []mgl64.Vec3{
		{c, c, c},    // 0 cube ppp
		{-c, c, c},   // 1 cube npp
		{-c, -c, c},  // 2 cube nnp
		{c, -c, c},   // 3 cube pnp
		{c, c, -c},   // 4 cube ppn
		{-c, c, -c},  // 5 cube npn
		{-c, -c, -c}, // 6 cube nnn
		{c, -c, -c},  // 7 cube pnn
		{l, s, 0},    // 8 xy pp
		{l, -s, 0},   // 9 xy pn
		{-l, -s, 0},  // 10 xy nn
		{-l, s, 0},   // 11 xy np
		{s, 0, l},    // 12 xz pp
		{s, 0, -l},   // 13 xz pn
		{-s, 0, -l},  // 14 xz nn
		{-s, 0, l},   // 15 xz np
		{0, l, s},    // 16 yz pp
		{0, l, -s},   // 17 yz pn
		{0, -l, -s},  // 18 yz nn
		{0, -l, s},   // 19 yz np
	}

	faces := [][]int{
		{15, 2, 19, 3, 12},
		{19, 2, 10, 6, 18},
		{18, 7, 9, 3, 19},
		{13, 7, 18, 6, 14},
		{10, 2, 15, 1, 11},
		{8, 0, 12, 3, 9},
		{11, 5, 14, 6, 10},
		{9, 7, 13, 4, 8},
		{12, 0, 16, 1, 15},
		{14, 5, 17, 4, 13},
		{16, 0, 8, 4, 17},
		{17, 5, 11, 1, 16},
	}

	return polyhedron.New(mgl64.Vec3{}, radius, vertices, faces)
}
