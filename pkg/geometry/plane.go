package geometry

import (
	"math"

	"github.com/rquinn/go-whitted-raytracer/pkg/core"
)

// Plane is the infinite x-z plane (y = 0) in object space
type Plane struct {
	base
}

// NewPlane creates a plane with an identity transform and the default
// material
func NewPlane() *Plane {
	return &Plane{base: newBase()}
}

// LocalIntersect returns the single crossing of the y=0 plane, or
// nothing when the ray is parallel to it
func (p *Plane) LocalIntersect(ray core.Ray) []Intersection {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}

	t := -ray.Origin.Y / ray.Direction.Y
	return []Intersection{NewIntersection(t, p)}
}

// LocalNormalAt returns the constant plane normal (0,1,0)
func (p *Plane) LocalNormalAt(core.Tuple, Intersection) core.Tuple {
	return core.NewVector(0, 1, 0)
}
