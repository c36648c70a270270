package polyhedron

import "errors"

// Builder misuse errors are recoverable; callers check them before calling
// Produce. ErrDegenerateGeometry marks an internal consistency violation and
// is surfaced from Produce rather than aborting the process. Branch with
// errors.Is; context is attached with %w wrapping.
var (
	// ErrAlreadyHasSeed is returned by Seed when the description already
	// starts with one.
	ErrAlreadyHasSeed = errors.New("polyhedron: seed already present")

	// ErrNoSeedSet is returned by the operator appends while the
	// description is still empty.
	ErrNoSeedSet = errors.New("polyhedron: no seed set")

	// ErrNoOperations is returned by Emit on an empty description.
	ErrNoOperations = errors.New("polyhedron: no operations")

	// ErrDegenerateGeometry is returned when an operator hits geometry it
	// cannot resolve, such as a dual vertex whose incident face centroids
	// are coplanar with the center.
	ErrDegenerateGeometry = errors.New("polyhedron: degenerate geometry")

	// ErrBadNotation is returned when a Conway notation string holds a
	// letter with no known seed or operator.
	ErrBadNotation = errors.New("polyhedron: bad notation")
)
