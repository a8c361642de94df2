// Package material implements the Phong illumination model: material
// parameters, point lights, and the per-fragment lighting equation.
package material

import (
	"math"

	"github.com/rquinn/go-whitted-raytracer/pkg/core"
	"github.com/rquinn/go-whitted-raytracer/pkg/pattern"
)

// Material holds the Phong shading parameters for a surface
type Material struct {
	Color           core.Color
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64 // [0,1], 0 disables mirror reflection
	Transparency    float64 // [0,1], 0 disables refraction
	RefractiveIndex float64
	Pattern         pattern.Pattern // optional, overrides Color when set
}

// DefaultMaterial returns a matte white material
func DefaultMaterial() Material {
	return Material{
		Color:           core.White(),
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: 1,
	}
}

// GlassMaterial returns a transparent, reflective material with the
// refractive index of glass
func GlassMaterial() Material {
	m := DefaultMaterial()
	m.Transparency = 1.0
	m.RefractiveIndex = 1.5
	m.Reflective = 0.8
	m.Specular = 1.0
	m.Shininess = 300
	return m
}

// PointLight is a light source with no size, existing at a single point
type PointLight struct {
	Position  core.Tuple
	Intensity core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Tuple, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// Lighting computes the Phong contribution of a single light at a point.
// The object is needed so patterned materials can map the point into
// pattern space. A shadowed fragment receives the ambient term only.
func (m Material) Lighting(object pattern.Object, light PointLight, point, eyeV, normalV core.Tuple, inShadow bool) core.Color {
	color := m.Color
	if m.Pattern != nil {
		color = pattern.AtObject(m.Pattern, object, point)
	}

	effectiveColor := color.Hadamard(light.Intensity)
	ambient := effectiveColor.Multiply(m.Ambient)

	if inShadow {
		return ambient
	}

	lightV := light.Position.Subtract(point).Normalize()
	lightDotNormal := lightV.Dot(normalV)
	if lightDotNormal < 0 {
		// Light is on the other side of the surface
		return ambient
	}

	diffuse := effectiveColor.Multiply(m.Diffuse * lightDotNormal)

	specular := core.Black()
	reflectV := lightV.Negate().Reflect(normalV)
	reflectDotEye := reflectV.Dot(eyeV)
	if reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
