package polyhedron_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvsari/polyorb/platonic"
	"github.com/kvsari/polyorb/polyhedron"
)

func TestNotationDualOfCube(t *testing.T) {
	d := polyhedron.NewConwayDescription(platonic.NewSeed(platonic.Cube, 2.0))
	require.NoError(t, d.Dual())

	spec, err := d.Emit()
	require.NoError(t, err)

	assert.Equal(t, "dC", spec.Notation())
}

func TestNotationOrder(t *testing.T) {
	// Kis then truncate on a tetrahedron reads truncate first, seed last.
	d := polyhedron.NewConwayDescription(platonic.NewSeed(platonic.Tetrahedron, 2.0))
	require.NoError(t, d.Kis())
	require.NoError(t, d.Truncate())

	spec, err := d.Emit()
	require.NoError(t, err)

	assert.Equal(t, "tkT", spec.Notation())
}

func TestProduceAppliesInOrder(t *testing.T) {
	d := polyhedron.NewConwayDescription(platonic.NewSeed(platonic.Cube, 2.0))
	require.NoError(t, d.Dual())

	spec, err := d.Emit()
	require.NoError(t, err)

	p, err := spec.Produce()
	require.NoError(t, err)

	// Matches applying Dual by hand.
	assert.Equal(t, 6, p.VertexCount())
	assert.Equal(t, 8, p.FaceCount())
}

func TestProduceSeedOnly(t *testing.T) {
	d := polyhedron.NewConwayDescription(platonic.NewSeed(platonic.Icosahedron, 2.0))

	spec, err := d.Emit()
	require.NoError(t, err)
	assert.Equal(t, "I", spec.Notation())

	p, err := spec.Produce()
	require.NoError(t, err)
	assert.Equal(t, 12, p.VertexCount())
	assert.Equal(t, 20, p.FaceCount())
}

func TestBuilderMisuse(t *testing.T) {
	t.Run("operator before seed", func(t *testing.T) {
		var d polyhedron.ConwayDescription
		assert.ErrorIs(t, d.Dual(), polyhedron.ErrNoSeedSet)
		assert.ErrorIs(t, d.Kis(), polyhedron.ErrNoSeedSet)
		assert.ErrorIs(t, d.Truncate(), polyhedron.ErrNoSeedSet)
	})

	t.Run("double seed", func(t *testing.T) {
		var d polyhedron.ConwayDescription
		require.NoError(t, d.Seed(platonic.NewSeed(platonic.Cube, 2.0)))

		err := d.Seed(platonic.NewSeed(platonic.Octahedron, 2.0))
		assert.ErrorIs(t, err, polyhedron.ErrAlreadyHasSeed)
	})

	t.Run("seed on constructed description", func(t *testing.T) {
		d := polyhedron.NewConwayDescription(platonic.NewSeed(platonic.Cube, 2.0))
		err := d.Seed(platonic.NewSeed(platonic.Cube, 2.0))
		assert.ErrorIs(t, err, polyhedron.ErrAlreadyHasSeed)
	})

	t.Run("emit empty", func(t *testing.T) {
		var d polyhedron.ConwayDescription
		_, err := d.Emit()
		assert.ErrorIs(t, err, polyhedron.ErrNoOperations)
	})
}

func TestEmitSnapshots(t *testing.T) {
	d := polyhedron.NewConwayDescription(platonic.NewSeed(platonic.Cube, 2.0))

	spec, err := d.Emit()
	require.NoError(t, err)

	// Appending after emit must not change the snapshot.
	require.NoError(t, d.Dual())
	assert.Equal(t, "C", spec.Notation())
}

func TestProduceChain(t *testing.T) {
	d := polyhedron.NewConwayDescription(platonic.NewSeed(platonic.Tetrahedron, 2.0))
	require.NoError(t, d.Kis())
	require.NoError(t, d.Dual())

	spec, err := d.Emit()
	require.NoError(t, err)
	assert.Equal(t, "dkT", spec.Notation())

	p, err := spec.Produce()
	require.NoError(t, err)

	// Kis of the tetrahedron has 8 vertices and 12 faces; its dual swaps
	// those counts.
	assert.Equal(t, 12, p.VertexCount())
	assert.Equal(t, 8, p.FaceCount())
}
