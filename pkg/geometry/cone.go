package geometry

import (
	"math"

	"github.com/rquinn/go-whitted-raytracer/pkg/core"
)

// Cone is the double-napped cone around the y axis with apex at the
// origin, infinite by default, optionally truncated and capped. The cap
// radius at a truncation plane equals the plane's |y|.
type Cone struct {
	base
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCone creates an infinite open cone with an identity transform and
// the default material
func NewCone() *Cone {
	return &Cone{
		base:    newBase(),
		Minimum: math.Inf(-1),
		Maximum: math.Inf(1),
	}
}

// intersectCaps adds intersections with the two end-cap disks
func (cone *Cone) intersectCaps(ray core.Ray, xs []Intersection) []Intersection {
	if !cone.Closed || math.Abs(ray.Direction.Y) < core.Epsilon {
		return xs
	}

	t := (cone.Minimum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t, math.Abs(cone.Minimum)) {
		xs = append(xs, NewIntersection(t, cone))
	}

	t = (cone.Maximum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t, math.Abs(cone.Maximum)) {
		xs = append(xs, NewIntersection(t, cone))
	}

	return xs
}

// LocalIntersect solves the cone quadratic. When the quadratic term
// vanishes the ray is parallel to one nappe and crosses the other at a
// single point.
func (cone *Cone) LocalIntersect(ray core.Ray) []Intersection {
	var xs []Intersection

	d, o := ray.Direction, ray.Origin
	a := d.X*d.X - d.Y*d.Y + d.Z*d.Z
	b := 2*o.X*d.X - 2*o.Y*d.Y + 2*o.Z*d.Z
	c := o.X*o.X - o.Y*o.Y + o.Z*o.Z

	switch {
	case math.Abs(a) < core.Epsilon && math.Abs(b) < core.Epsilon:
		// Ray misses both nappes entirely
	case math.Abs(a) < core.Epsilon:
		t := -c / (2 * b)
		y := o.Y + t*d.Y
		if cone.Minimum < y && y < cone.Maximum {
			xs = append(xs, NewIntersection(t, cone))
		}
	default:
		disc := b*b - 4*a*c
		if disc < 0 {
			return cone.intersectCaps(ray, xs)
		}

		sqrtD := math.Sqrt(disc)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		y0 := o.Y + t0*d.Y
		if cone.Minimum < y0 && y0 < cone.Maximum {
			xs = append(xs, NewIntersection(t0, cone))
		}

		y1 := o.Y + t1*d.Y
		if cone.Minimum < y1 && y1 < cone.Maximum {
			xs = append(xs, NewIntersection(t1, cone))
		}
	}

	return cone.intersectCaps(ray, xs)
}

// LocalNormalAt distinguishes cap hits (±y) from lateral-surface hits
func (cone *Cone) LocalNormalAt(point core.Tuple, _ Intersection) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	if cone.Closed && dist < cone.Maximum*cone.Maximum && point.Y >= cone.Maximum-core.Epsilon {
		return core.NewVector(0, 1, 0)
	}
	if cone.Closed && dist < cone.Minimum*cone.Minimum && point.Y <= cone.Minimum+core.Epsilon {
		return core.NewVector(0, -1, 0)
	}

	y := math.Sqrt(dist)
	if point.Y > 0 {
		y = -y
	}
	return core.NewVector(point.X, y, point.Z)
}
