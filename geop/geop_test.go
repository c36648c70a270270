package geop

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-9

func vecInDelta(t *testing.T, expected, actual mgl64.Vec3) {
	t.Helper()
	assert.InDelta(t, expected.X(), actual.X(), tolerance)
	assert.InDelta(t, expected.Y(), actual.Y(), tolerance)
	assert.InDelta(t, expected.Z(), actual.Z(), tolerance)
}

func TestGoldenRatio(t *testing.T) {
	assert.InDelta(t, 1.6180339887, GoldenRatio(), 1e-10)
}

func TestTriangleNormal(t *testing.T) {
	n := TriangleNormal(
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{2, 0, 0},
		mgl64.Vec3{0, 2, 0},
	)

	vecInDelta(t, mgl64.Vec3{0, 0, 1}, n)
}

func TestLengthen(t *testing.T) {
	p := Lengthen(mgl64.Vec3{3, 4, 0}, 10)

	vecInDelta(t, mgl64.Vec3{6, 8, 0}, p)
}

func TestConvexCentroidSingleTriangle(t *testing.T) {
	// One triangle fan; the area weighted centroid must equal the plain
	// triangle centroid.
	c := ConvexCentroid([]mgl64.Vec3{
		{0, 0, 0},
		{2, 0, 0},
		{0, 2, 0},
	})

	vecInDelta(t, mgl64.Vec3{2.0 / 3.0, 2.0 / 3.0, 0}, c)
}

func TestConvexCentroidSquare(t *testing.T) {
	c := ConvexCentroid([]mgl64.Vec3{
		{0, 0, 0},
		{1, 0, 0},
		{1, 1, 0},
		{0, 1, 0},
	})

	vecInDelta(t, mgl64.Vec3{0.5, 0.5, 0}, c)
}

func TestFaceCenter(t *testing.T) {
	c := FaceCenter([]mgl64.Vec3{
		{0, 0, 0},
		{2, 0, 0},
		{0, 2, 0},
		{2, 2, 4},
	})

	vecInDelta(t, mgl64.Vec3{1, 1, 1}, c)
}
