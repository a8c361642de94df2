package geometry

import (
	"math"
	"sort"

	"github.com/rquinn/go-whitted-raytracer/pkg/core"
)

// Intersection records a ray hitting a shape at parametric distance T.
// U and V are barycentric coordinates, populated only by triangles.
type Intersection struct {
	T      float64
	Object Shape
	U, V   float64
}

// NewIntersection creates an intersection record
func NewIntersection(t float64, object Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// NewIntersectionUV creates an intersection record carrying barycentric
// coordinates
func NewIntersectionUV(t float64, object Shape, u, v float64) Intersection {
	return Intersection{T: t, Object: object, U: u, V: v}
}

// Intersections is an ordered list of intersection records
type Intersections []Intersection

// Sort orders the intersections ascending by T. The sort is stable:
// records sharing the same T keep their original order.
func (xs Intersections) Sort() {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}

// Hit returns the intersection with the smallest non-negative T, or
// false if every intersection is behind the ray origin
func (xs Intersections) Hit() (Intersection, bool) {
	found := false
	var hit Intersection
	for _, x := range xs {
		if x.T < 0 {
			continue
		}
		if !found || x.T < hit.T {
			hit = x
			found = true
		}
	}
	return hit, found
}

// Computations bundles everything shading needs at a hit point
type Computations struct {
	T          float64
	Object     Shape
	Point      core.Tuple
	EyeV       core.Tuple
	NormalV    core.Tuple
	ReflectV   core.Tuple
	Inside     bool
	OverPoint  core.Tuple // point nudged along the normal, shadow ray origin
	UnderPoint core.Tuple // point nudged against the normal, refraction ray origin
	N1, N2     float64    // refractive indices of the media being left/entered
}

// PrepareComputations derives the shading record for a hit. The full
// ordered intersection list is needed to determine the refractive
// indices on either side of the hit; pass nil when refraction is not of
// interest.
func PrepareComputations(hit Intersection, ray core.Ray, xs Intersections) Computations {
	comps := Computations{
		T:      hit.T,
		Object: hit.Object,
		Point:  ray.Position(hit.T),
		EyeV:   ray.Direction.Negate(),
		N1:     1.0,
		N2:     1.0,
	}

	comps.NormalV = NormalAt(hit.Object, comps.Point, hit)
	if comps.NormalV.Dot(comps.EyeV) < 0 {
		comps.Inside = true
		comps.NormalV = comps.NormalV.Negate()
	}

	comps.ReflectV = ray.Direction.Reflect(comps.NormalV)
	offset := comps.NormalV.Multiply(core.Epsilon)
	comps.OverPoint = comps.Point.Add(offset)
	comps.UnderPoint = comps.Point.Subtract(offset)

	comps.N1, comps.N2 = refractiveIndices(hit, xs)

	return comps
}

// refractiveIndices walks the ordered intersection list maintaining a
// stack of the shapes the ray is currently inside, yielding the indices
// of the media being exited (n1) and entered (n2) at the hit
func refractiveIndices(hit Intersection, xs Intersections) (n1, n2 float64) {
	n1, n2 = 1.0, 1.0
	var containers []Shape

	for _, x := range xs {
		atHit := x.Object == hit.Object && x.T == hit.T

		if atHit {
			if len(containers) == 0 {
				n1 = 1.0
			} else {
				n1 = containers[len(containers)-1].Material().RefractiveIndex
			}
		}

		// Leaving the shape if it is already on the stack, entering otherwise
		removed := false
		for i, s := range containers {
			if s == x.Object {
				containers = append(containers[:i], containers[i+1:]...)
				removed = true
				break
			}
		}
		if !removed {
			containers = append(containers, x.Object)
		}

		if atHit {
			if len(containers) == 0 {
				n2 = 1.0
			} else {
				n2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			break
		}
	}

	return n1, n2
}

// Schlick approximates the Fresnel reflectance at the hit: the fraction
// of light that reflects rather than refracts
func (c Computations) Schlick() float64 {
	cos := c.EyeV.Dot(c.NormalV)

	if c.N1 > c.N2 {
		n := c.N1 / c.N2
		sin2T := n * n * (1.0 - cos*cos)
		if sin2T > 1.0 {
			// Total internal reflection
			return 1.0
		}
		cos = math.Sqrt(1.0 - sin2T)
	}

	r0 := (c.N1 - c.N2) / (c.N1 + c.N2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
