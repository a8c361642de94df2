package geometry

import (
	"math"

	"github.com/rquinn/go-whitted-raytracer/pkg/core"
)

// Cylinder is the unit-radius cylinder around the y axis, infinite by
// default, optionally truncated to (Minimum, Maximum) and capped
type Cylinder struct {
	base
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCylinder creates an infinite open cylinder with an identity
// transform and the default material
func NewCylinder() *Cylinder {
	return &Cylinder{
		base:    newBase(),
		Minimum: math.Inf(-1),
		Maximum: math.Inf(1),
	}
}

// checkCap reports whether the ray at t lies within the given cap radius
func checkCap(ray core.Ray, t, radius float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= radius*radius
}

// intersectCaps adds intersections with the two end-cap disks
func (cyl *Cylinder) intersectCaps(ray core.Ray, xs []Intersection) []Intersection {
	if !cyl.Closed || math.Abs(ray.Direction.Y) < core.Epsilon {
		return xs
	}

	t := (cyl.Minimum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t, 1) {
		xs = append(xs, NewIntersection(t, cyl))
	}

	t = (cyl.Maximum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t, 1) {
		xs = append(xs, NewIntersection(t, cyl))
	}

	return xs
}

// LocalIntersect solves the 2-D quadratic in x,z for the lateral
// surface, keeps roots within the truncation bounds, and tests the caps
func (cyl *Cylinder) LocalIntersect(ray core.Ray) []Intersection {
	var xs []Intersection

	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z

	// A ray parallel to the y axis can still hit the caps
	if math.Abs(a) >= core.Epsilon {
		b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
		c := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

		disc := b*b - 4*a*c
		if disc < 0 {
			return nil
		}

		sqrtD := math.Sqrt(disc)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		y0 := ray.Origin.Y + t0*ray.Direction.Y
		if cyl.Minimum < y0 && y0 < cyl.Maximum {
			xs = append(xs, NewIntersection(t0, cyl))
		}

		y1 := ray.Origin.Y + t1*ray.Direction.Y
		if cyl.Minimum < y1 && y1 < cyl.Maximum {
			xs = append(xs, NewIntersection(t1, cyl))
		}
	}

	return cyl.intersectCaps(ray, xs)
}

// LocalNormalAt distinguishes cap hits (±y) from lateral-surface hits
func (cyl *Cylinder) LocalNormalAt(point core.Tuple, _ Intersection) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	if dist < 1 && point.Y >= cyl.Maximum-core.Epsilon {
		return core.NewVector(0, 1, 0)
	}
	if dist < 1 && point.Y <= cyl.Minimum+core.Epsilon {
		return core.NewVector(0, -1, 0)
	}
	return core.NewVector(point.X, 0, point.Z)
}
