package geometry

import (
	"math"

	"github.com/rquinn/go-whitted-raytracer/pkg/core"
	"github.com/rquinn/go-whitted-raytracer/pkg/material"
)

// Sphere is the unit sphere centered at the object-space origin
type Sphere struct {
	base
}

// NewSphere creates a unit sphere with an identity transform and the
// default material
func NewSphere() *Sphere {
	return &Sphere{base: newBase()}
}

// NewGlassSphere creates a unit sphere with a glass material
func NewGlassSphere() *Sphere {
	s := NewSphere()
	s.SetMaterial(material.GlassMaterial())
	return s
}

// LocalIntersect solves the quadratic |O + tD|² = 1 for the unit sphere
func (s *Sphere) LocalIntersect(ray core.Ray) []Intersection {
	sphereToRay := ray.Origin.Subtract(core.NewPoint(0, 0, 0))

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	return []Intersection{
		NewIntersection(t1, s),
		NewIntersection(t2, s),
	}
}

// LocalNormalAt returns the vector from the origin to the point
func (s *Sphere) LocalNormalAt(point core.Tuple, _ Intersection) core.Tuple {
	return point.Subtract(core.NewPoint(0, 0, 0))
}
