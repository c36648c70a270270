package platonic

import (
	"fmt"

	"github.com/kvsari/polyorb/polyhedron"
)

// Parse builds a Specification from a Conway notation string such as "dC" or
// "ktT". The last letter names the seed; the letters before it are operators
// applied right to left, seed closest operator first. Unknown letters or a
// missing seed fail with ErrBadNotation.
func Parse(notation string, edgeLen float64) (*polyhedron.Specification, error) {
	runes := []rune(notation)
	if len(runes) == 0 {
		return nil, fmt.Errorf("parse: empty string: %w", polyhedron.ErrBadNotation)
	}

	solid, ok := SolidByLetter(runes[len(runes)-1])
	if !ok {
		return nil, fmt.Errorf(
			"parse %q: no seed solid for %q: %w",
			notation, runes[len(runes)-1], polyhedron.ErrBadNotation,
		)
	}

	description := polyhedron.NewConwayDescription(NewSeed(solid, edgeLen))
	for i := len(runes) - 2; i >= 0; i-- {
		var err error
		switch runes[i] {
		case 'd':
			err = description.Dual()
		case 'k':
			err = description.Kis()
		case 't':
			err = description.Truncate()
		default:
			return nil, fmt.Errorf(
				"parse %q: unknown operator %q: %w",
				notation, runes[i], polyhedron.ErrBadNotation,
			)
		}
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", notation, err)
		}
	}

	return description.Emit()
}
