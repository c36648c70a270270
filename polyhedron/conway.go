package polyhedron

import "fmt"

// Seed starts a Conway chain: something that can hand over a base polyhedron
// and the single letter naming it in Conway notation.
type Seed interface {
	Letter() rune
	Polyhedron() *Polyhedron
}

// Conway operator letters.
const (
	letterDual     = 'd'
	letterKis      = 'k'
	letterTruncate = 't'
)

type opKind int

const (
	opSeed opKind = iota
	opDual
	opKis
	opTruncate
)

// operation is one entry in a Conway description: either a seed carrying its
// base polyhedron or an operator tag.
type operation struct {
	kind   opKind
	letter rune
	base   *Polyhedron // seed only
}

// ConwayDescription accumulates an ordered operation list: a seed followed by
// any number of operators. The zero value is usable; Seed must come first.
// NewConwayDescription skips that dance by taking the seed up front, which
// makes a seedless description unrepresentable for callers that do not need
// to assemble one dynamically.
type ConwayDescription struct {
	ops []operation
}

// NewConwayDescription starts a description from its seed.
func NewConwayDescription(seed Seed) *ConwayDescription {
	d := &ConwayDescription{}
	d.ops = append(d.ops, operation{
		kind:   opSeed,
		letter: seed.Letter(),
		base:   seed.Polyhedron(),
	})
	return d
}

// Seed sets the starting solid. Fails with ErrAlreadyHasSeed when the
// description already has one.
func (d *ConwayDescription) Seed(seed Seed) error {
	if len(d.ops) > 0 {
		return ErrAlreadyHasSeed
	}
	d.ops = append(d.ops, operation{
		kind:   opSeed,
		letter: seed.Letter(),
		base:   seed.Polyhedron(),
	})
	return nil
}

// Dual appends the dual operator. Fails with ErrNoSeedSet on an unseeded
// description.
func (d *ConwayDescription) Dual() error {
	return d.push(opDual, letterDual)
}

// Kis appends the kis operator. Fails with ErrNoSeedSet on an unseeded
// description.
func (d *ConwayDescription) Kis() error {
	return d.push(opKis, letterKis)
}

// Truncate appends the truncate operator. Fails with ErrNoSeedSet on an
// unseeded description.
func (d *ConwayDescription) Truncate() error {
	return d.push(opTruncate, letterTruncate)
}

func (d *ConwayDescription) push(kind opKind, letter rune) error {
	if len(d.ops) == 0 {
		return ErrNoSeedSet
	}
	d.ops = append(d.ops, operation{kind: kind, letter: letter})
	return nil
}

// Emit snapshots the description into an immutable Specification. Fails with
// ErrNoOperations when nothing has been added yet.
func (d *ConwayDescription) Emit() (*Specification, error) {
	if len(d.ops) == 0 {
		return nil, ErrNoOperations
	}

	ops := make([]operation, len(d.ops))
	copy(ops, d.ops)

	// Fold right to left so the seed letter lands last and the most
	// recently applied operator's letter lands first.
	notation := ""
	for _, op := range ops {
		notation = string(op.letter) + notation
	}

	return &Specification{ops: ops, notation: notation}, nil
}

// Specification is a frozen operation list plus its notation string.
type Specification struct {
	ops      []operation
	notation string
}

// Notation returns the Conway notation encoding, e.g. "dC" for the dual of a
// cube.
func (s *Specification) Notation() string {
	return s.notation
}

// Produce folds the operation list, starting from the seed's base polyhedron
// and applying each operator in order. Construction guarantees the first
// entry is a seed; a specification violating that surfaces ErrNoSeedSet
// rather than aborting.
func (s *Specification) Produce() (*Polyhedron, error) {
	if len(s.ops) == 0 || s.ops[0].kind != opSeed {
		return nil, ErrNoSeedSet
	}

	p := s.ops[0].base
	for _, op := range s.ops[1:] {
		switch op.kind {
		case opDual:
			dual, err := Dual(p)
			if err != nil {
				return nil, fmt.Errorf("produce %q: %w", s.notation, err)
			}
			p = dual
		case opKis:
			p = Kis(p)
		case opTruncate:
			p = Truncate(p)
		}
	}

	return p, nil
}
