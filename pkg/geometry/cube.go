package geometry

import (
	"math"

	"github.com/rquinn/go-whitted-raytracer/pkg/core"
)

// Cube is the axis-aligned unit cube spanning [-1,1] on each axis
type Cube struct {
	base
}

// NewCube creates a unit cube with an identity transform and the
// default material
func NewCube() *Cube {
	return &Cube{base: newBase()}
}

// checkAxis computes the t interval where the ray is between the two
// parallel slab planes of one axis. A direction component near zero
// pushes the interval bounds to ±infinity.
func checkAxis(origin, direction float64) (tmin, tmax float64) {
	tminNumerator := -1 - origin
	tmaxNumerator := 1 - origin

	if math.Abs(direction) >= core.Epsilon {
		tmin = tminNumerator / direction
		tmax = tmaxNumerator / direction
	} else {
		tmin = tminNumerator * math.Inf(1)
		tmax = tmaxNumerator * math.Inf(1)
	}

	if tmin > tmax {
		tmin, tmax = tmax, tmin
	}
	return tmin, tmax
}

// LocalIntersect runs the per-axis slab test: the final interval is the
// intersection of the three per-axis intervals
func (c *Cube) LocalIntersect(ray core.Ray) []Intersection {
	xtmin, xtmax := checkAxis(ray.Origin.X, ray.Direction.X)
	ytmin, ytmax := checkAxis(ray.Origin.Y, ray.Direction.Y)
	ztmin, ztmax := checkAxis(ray.Origin.Z, ray.Direction.Z)

	tmin := math.Max(xtmin, math.Max(ytmin, ztmin))
	tmax := math.Min(xtmax, math.Min(ytmax, ztmax))

	if tmin > tmax {
		return nil
	}

	return []Intersection{
		NewIntersection(tmin, c),
		NewIntersection(tmax, c),
	}
}

// LocalNormalAt picks the axis with the dominant coordinate magnitude,
// keeping its sign
func (c *Cube) LocalNormalAt(point core.Tuple, _ Intersection) core.Tuple {
	absX, absY, absZ := math.Abs(point.X), math.Abs(point.Y), math.Abs(point.Z)
	maxC := math.Max(absX, math.Max(absY, absZ))

	switch maxC {
	case absX:
		return core.NewVector(point.X, 0, 0)
	case absY:
		return core.NewVector(0, point.Y, 0)
	default:
		return core.NewVector(0, 0, point.Z)
	}
}
