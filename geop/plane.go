package geop

import "github.com/go-gl/mathgl/mgl64"

// Plane in 3D space described by a point on the plane and a unit normal.
type Plane struct {
	normal mgl64.Vec3
	point  mgl64.Vec3
}

// NewPlane builds a plane from a possibly non unit normal and a point lying
// on the plane. The normal is normalized on construction.
func NewPlane(normal, point mgl64.Vec3) Plane {
	return Plane{
		normal: normal.Normalize(),
		point:  point,
	}
}

// Normal returns the unit normal of the plane.
func (p Plane) Normal() mgl64.Vec3 {
	return p.normal
}

// Point returns the construction point of the plane.
func (p Plane) Point() mgl64.Vec3 {
	return p.point
}

// LineIntersection solves for the point where the line origin + t·direction
// crosses the plane. Reports false when the line is parallel to the plane or
// lies within it; a line in the plane has no single intersection point so it
// is treated as a failure rather than infinite solutions.
func (p Plane) LineIntersection(direction, origin mgl64.Vec3) (mgl64.Vec3, bool) {
	denom := direction.Dot(p.normal)
	if denom == 0 {
		return mgl64.Vec3{}, false
	}

	t := p.point.Sub(origin).Dot(p.normal) / denom

	return origin.Add(direction.Mul(t)), true
}
