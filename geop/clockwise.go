package geop

import "github.com/go-gl/mathgl/mgl64"

// Ordering is the result of comparing two points by angular position.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// Clockwise compares the angular position of check against relative when both
// points are swept around center within the plane whose normal is normal. It
// is the comparator used to put a derived face's vertices into a consistent
// rotational order.
//
// The sign of dot(cross(relative−center, check−center), normal) decides:
// positive is Greater, negative is Less and zero means the two points are
// collinear through the center.
func Clockwise(relative, check, center, normal mgl64.Vec3) Ordering {
	if relative == check {
		return Equal
	}

	d := relative.Sub(center).Cross(check.Sub(center)).Dot(normal)
	switch {
	case d > 0:
		return Greater
	case d < 0:
		return Less
	default:
		return Equal
	}
}
