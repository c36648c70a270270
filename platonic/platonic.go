// Package platonic generates the five platonic solids as base polyhedra
// centered on the origin, with closed form coordinates derived from the edge
// length and the circumscribing sphere radius computed analytically.
package platonic

import "github.com/kvsari/polyorb/polyhedron"

// Solid identifies one of the five platonic solids.
type Solid int

const (
	Tetrahedron Solid = iota
	Cube
	Octahedron
	Dodecahedron
	Icosahedron
)

var solidNames = map[Solid]string{
	Tetrahedron:  "tetrahedron",
	Cube:         "cube",
	Octahedron:   "octahedron",
	Dodecahedron: "dodecahedron",
	Icosahedron:  "icosahedron",
}

var solidLetters = map[Solid]rune{
	Tetrahedron:  'T',
	Cube:         'C',
	Octahedron:   'O',
	Dodecahedron: 'D',
	Icosahedron:  'I',
}

func (s Solid) String() string {
	if name, ok := solidNames[s]; ok {
		return name
	}
	return "unknown"
}

// Letter returns the solid's seed letter in Conway notation.
func (s Solid) Letter() rune {
	return solidLetters[s]
}

// SolidByName looks a solid up by its lowercase name.
func SolidByName(name string) (Solid, bool) {
	for solid, n := range solidNames {
		if n == name {
			return solid, true
		}
	}
	return 0, false
}

// SolidByLetter looks a solid up by its Conway seed letter.
func SolidByLetter(letter rune) (Solid, bool) {
	for solid, l := range solidLetters {
		if l == letter {
			return solid, true
		}
	}
	return 0, false
}

// Seed pairs a solid with an edge length. It satisfies polyhedron.Seed so it
// can start a Conway description.
type Seed struct {
	solid Solid
	edge  float64
}

// NewSeed builds a seed for the given solid with a positive edge length.
func NewSeed(solid Solid, edgeLen float64) Seed {
	return Seed{solid: solid, edge: edgeLen}
}

// Solid returns which platonic solid this seed generates.
func (s Seed) Solid() Solid {
	return s.solid
}

// Letter returns the seed letter for Conway notation.
func (s Seed) Letter() rune {
	return s.solid.Letter()
}

// Polyhedron generates the base polyhedron. Pure construction; no error
// conditions for a positive edge length.
func (s Seed) Polyhedron() *polyhedron.Polyhedron {
	switch s.solid {
	case Tetrahedron:
		return tetrahedron(s.edge)
	case Cube:
		return cube(s.edge)
	case Octahedron:
		return octahedron(s.edge)
	case Dodecahedron:
		return dodecahedron(s.edge)
	case Icosahedron:
		return icosahedron(s.edge)
	default:
		return nil
	}
}
