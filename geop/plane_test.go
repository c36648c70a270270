package geop

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func TestNewPlaneNormalizes(t *testing.T) {
	p := NewPlane(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{1, 2, 3})

	vecInDelta(t, mgl64.Vec3{0, 0, 1}, p.Normal())
	vecInDelta(t, mgl64.Vec3{1, 2, 3}, p.Point())
}

func TestLineIntersection(t *testing.T) {
	// The z = 5 plane.
	plane := NewPlane(mgl64.Vec3{0, 0, 2}, mgl64.Vec3{0, 0, 5})

	testCases := []struct {
		name      string
		direction mgl64.Vec3
		origin    mgl64.Vec3
		hit       mgl64.Vec3
		ok        bool
	}{
		{
			name:      "straight up",
			direction: mgl64.Vec3{0, 0, 1},
			origin:    mgl64.Vec3{0, 0, 0},
			hit:       mgl64.Vec3{0, 0, 5},
			ok:        true,
		},
		{
			name:      "oblique",
			direction: mgl64.Vec3{1, 0, 1},
			origin:    mgl64.Vec3{2, 3, 0},
			hit:       mgl64.Vec3{7, 3, 5},
			ok:        true,
		},
		{
			name:      "from beyond the plane",
			direction: mgl64.Vec3{0, 0, 1},
			origin:    mgl64.Vec3{1, 1, 8},
			hit:       mgl64.Vec3{1, 1, 5},
			ok:        true,
		},
		{
			name:      "parallel",
			direction: mgl64.Vec3{1, 0, 0},
			origin:    mgl64.Vec3{0, 0, 0},
			ok:        false,
		},
		{
			name:      "within the plane",
			direction: mgl64.Vec3{1, 1, 0},
			origin:    mgl64.Vec3{0, 0, 5},
			ok:        false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			hit, ok := plane.LineIntersection(tc.direction, tc.origin)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				vecInDelta(t, tc.hit, hit)
			}
		})
	}
}
