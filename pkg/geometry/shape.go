// Package geometry implements the shape catalogue: primitives defined in
// their own object space, composed with a transform, a material and an
// optional parent group, plus the intersection records produced when rays
// hit them.
package geometry

import (
	"fmt"

	"github.com/rquinn/go-whitted-raytracer/pkg/core"
	"github.com/rquinn/go-whitted-raytracer/pkg/material"
)

// Shape is a geometric primitive. Intersection and normal computation
// happen in object space; the shared base handles world/object
// conversion including any chain of parent group transforms.
type Shape interface {
	// LocalIntersect returns intersections for a ray already in object space
	LocalIntersect(ray core.Ray) []Intersection
	// LocalNormalAt returns the object-space normal at an object-space point.
	// The hit is needed by shapes with per-hit normals (smooth triangles).
	LocalNormalAt(point core.Tuple, hit Intersection) core.Tuple

	Transform() core.Matrix
	InverseTransform() core.Matrix
	SetTransform(m core.Matrix)
	Material() material.Material
	SetMaterial(m material.Material)
	Parent() Shape
	SetParent(parent Shape)

	// WorldToObject converts a world-space point to object space through
	// the full ancestor chain
	WorldToObject(point core.Tuple) core.Tuple
	// NormalToWorld converts an object-space normal to world space through
	// the full ancestor chain of inverse-transpose transforms
	NormalToWorld(normal core.Tuple) core.Tuple
}

// base carries the transform, material and parent reference shared by
// every shape. The parent reference is non-owning: it exists only for
// coordinate-space chaining.
type base struct {
	transform        core.Matrix
	inverse          core.Matrix
	inverseTranspose core.Matrix
	material         material.Material
	parent           Shape
}

func newBase() base {
	identity := core.Identity()
	return base{
		transform:        identity,
		inverse:          identity,
		inverseTranspose: identity,
		material:         material.DefaultMaterial(),
	}
}

// Transform returns the shape's transform matrix
func (b *base) Transform() core.Matrix {
	return b.transform
}

// InverseTransform returns the cached inverse of the shape's transform
func (b *base) InverseTransform() core.Matrix {
	return b.inverse
}

// SetTransform replaces the shape's transform and caches its inverse.
// A non-invertible transform is a scene construction error.
func (b *base) SetTransform(m core.Matrix) {
	inverse, err := m.Inverse()
	if err != nil {
		panic(fmt.Sprintf("geometry: shape transform: %v", err))
	}
	b.transform = m
	b.inverse = inverse
	b.inverseTranspose = inverse.Transpose()
}

// Material returns the shape's material
func (b *base) Material() material.Material {
	return b.material
}

// SetMaterial replaces the shape's material
func (b *base) SetMaterial(m material.Material) {
	b.material = m
}

// Parent returns the group this shape belongs to, or nil
func (b *base) Parent() Shape {
	return b.parent
}

// SetParent records the group this shape belongs to
func (b *base) SetParent(parent Shape) {
	b.parent = parent
}

// WorldToObject converts a world-space point to this shape's object
// space, applying ancestor inverses outermost first
func (b *base) WorldToObject(point core.Tuple) core.Tuple {
	if b.parent != nil {
		point = b.parent.WorldToObject(point)
	}
	return b.inverse.MultiplyTuple(point)
}

// NormalToWorld converts an object-space normal to world space,
// applying ancestor inverse-transposes innermost first
func (b *base) NormalToWorld(normal core.Tuple) core.Tuple {
	normal = b.inverseTranspose.MultiplyTuple(normal)
	// The transpose of the inverse can smear the translation component
	// into W; it must stay a vector
	normal.W = 0
	normal = normal.Normalize()

	if b.parent != nil {
		normal = b.parent.NormalToWorld(normal)
	}
	return normal
}

// Intersect transforms a world-space ray into the shape's object space
// and delegates to the shape's local intersection routine
func Intersect(s Shape, ray core.Ray) []Intersection {
	localRay := ray.Transform(s.InverseTransform())
	return s.LocalIntersect(localRay)
}

// NormalAt computes the world-space surface normal at a world-space
// point, accounting for the shape's full parent chain
func NormalAt(s Shape, worldPoint core.Tuple, hit Intersection) core.Tuple {
	localPoint := s.WorldToObject(worldPoint)
	localNormal := s.LocalNormalAt(localPoint, hit)
	return s.NormalToWorld(localNormal)
}
