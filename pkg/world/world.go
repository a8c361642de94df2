// Package world implements the scene graph and the recursive shading
// entry point: shadow tests, Phong shading per light, and bounded
// mirror reflection and refraction.
package world

import (
	"math"

	"github.com/rquinn/go-whitted-raytracer/pkg/core"
	"github.com/rquinn/go-whitted-raytracer/pkg/geometry"
	"github.com/rquinn/go-whitted-raytracer/pkg/material"
)

// MaxBounces is the recursion budget for reflected and refracted rays.
// Exhausting it is the designed termination condition, not an error:
// the unresolved contribution is black.
const MaxBounces = 5

// World owns the shape set and light set for one render
type World struct {
	Objects []geometry.Shape
	Lights  []material.PointLight
}

// New creates an empty world
func New() *World {
	return &World{}
}

// Default returns the two-sphere, one-light world used as a fixture
// throughout the tests
func Default() *World {
	w := New()
	w.AddLight(material.NewPointLight(core.NewPoint(-10, 10, -10), core.White()))

	s1 := geometry.NewSphere()
	m := material.DefaultMaterial()
	m.Color = core.NewColor(0.8, 1.0, 0.6)
	m.Diffuse = 0.7
	m.Specular = 0.2
	s1.SetMaterial(m)
	w.AddObject(s1)

	s2 := geometry.NewSphere()
	s2.SetTransform(core.Scaling(0.5, 0.5, 0.5))
	w.AddObject(s2)

	return w
}

// AddObject adds a shape to the world. The world owns its shapes for
// the duration of the render.
func (w *World) AddObject(s geometry.Shape) {
	w.Objects = append(w.Objects, s)
}

// AddLight adds a point light to the world
func (w *World) AddLight(l material.PointLight) {
	w.Lights = append(w.Lights, l)
}

// Intersect returns every intersection of the ray with the world's
// shapes, sorted ascending by t. The ordering is required for correct
// n1/n2 refraction bookkeeping.
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, shape := range w.Objects {
		xs = append(xs, geometry.Intersect(shape, ray)...)
	}
	xs.Sort()
	return xs
}

// IsShadowed reports whether any shape blocks the segment from the
// point to the light. Callers pass an epsilon-offset over-point to
// avoid self-shadowing acne.
func (w *World) IsShadowed(point core.Tuple, light material.PointLight) bool {
	toLight := light.Position.Subtract(point)
	distance := toLight.Magnitude()

	ray := core.NewRay(point, toLight.Normalize())
	if hit, ok := w.Intersect(ray).Hit(); ok && hit.T < distance {
		return true
	}
	return false
}

// ColorAt returns the color seen along the ray, recursing into
// reflection and refraction until the bounce budget is spent. A miss is
// the background, black.
func (w *World) ColorAt(ray core.Ray, remaining int) core.Color {
	xs := w.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return core.Black()
	}

	comps := geometry.PrepareComputations(hit, ray, xs)
	return w.ShadeHit(comps, remaining)
}

// ShadeHit sums the Phong contribution of every light plus the
// reflected and refracted contributions. A material that is both
// reflective and transparent has the two blended by Schlick reflectance
// so the combined energy stays physically plausible.
func (w *World) ShadeHit(comps geometry.Computations, remaining int) core.Color {
	m := comps.Object.Material()

	color := core.Black()
	for _, light := range w.Lights {
		// A fully transparent surface does not shadow its own fragment
		shadowed := false
		if m.Transparency < 1 {
			shadowed = w.IsShadowed(comps.OverPoint, light)
		}

		c := m.Lighting(comps.Object, light, comps.OverPoint, comps.EyeV, comps.NormalV, shadowed)
		color = color.Add(c)
	}

	reflected := w.ReflectedColor(comps, remaining)
	refracted := w.RefractedColor(comps, remaining)

	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := comps.Schlick()
		return color.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return color.Add(reflected).Add(refracted)
}

// ReflectedColor traces the mirror reflection ray, scaled by the
// material's reflectivity. Black when the budget is spent or the
// material is not reflective.
func (w *World) ReflectedColor(comps geometry.Computations, remaining int) core.Color {
	m := comps.Object.Material()
	if remaining <= 0 || m.Reflective == 0 {
		return core.Black()
	}

	reflectRay := core.NewRay(comps.OverPoint, comps.ReflectV)
	return w.ColorAt(reflectRay, remaining-1).Multiply(m.Reflective)
}

// RefractedColor traces the transmitted ray through Snell's law, scaled
// by the material's transparency. Black when the budget is spent, the
// material is opaque, or the ray is totally internally reflected.
func (w *World) RefractedColor(comps geometry.Computations, remaining int) core.Color {
	m := comps.Object.Material()
	if remaining <= 0 || m.Transparency == 0 {
		return core.Black()
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		// Total internal reflection
		return core.Black()
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.NormalV.Multiply(nRatio*cosI - cosT).
		Subtract(comps.EyeV.Multiply(nRatio))

	refractRay := core.NewRay(comps.UnderPoint, direction)
	return w.ColorAt(refractRay, remaining-1).Multiply(m.Transparency)
}
