// Package pattern implements procedural surface patterns evaluated in
// pattern space. A pattern owns its own transform independent of the
// shape it decorates, so texture scale and rotation are decoupled from
// geometry scale and rotation.
package pattern

import (
	"fmt"
	"math"

	"github.com/rquinn/go-whitted-raytracer/pkg/core"
)

// Object is the surface a pattern is attached to. It converts world
// coordinates into the object's local space, accounting for any parent
// group transforms.
type Object interface {
	WorldToObject(point core.Tuple) core.Tuple
}

// Pattern is a stateless function of a point in pattern space
type Pattern interface {
	At(point core.Tuple) core.Color
	InverseTransform() core.Matrix
}

// AtObject evaluates a pattern at a world-space point on the given
// object: world space -> object space -> pattern space.
func AtObject(p Pattern, object Object, worldPoint core.Tuple) core.Color {
	objectPoint := object.WorldToObject(worldPoint)
	patternPoint := p.InverseTransform().MultiplyTuple(objectPoint)
	return p.At(patternPoint)
}

// base carries the transform shared by all pattern variants
type base struct {
	transform core.Matrix
	inverse   core.Matrix
}

func newBase(transform core.Matrix) base {
	inverse, err := transform.Inverse()
	if err != nil {
		// Construction-time contract violation, not a render-time condition
		panic(fmt.Sprintf("pattern: non-invertible transform: %v", err))
	}
	return base{transform: transform, inverse: inverse}
}

// InverseTransform returns the cached inverse of the pattern transform
func (b base) InverseTransform() core.Matrix {
	return b.inverse
}

// Solid is a constant-color pattern
type Solid struct {
	base
	Color core.Color
}

// NewSolid creates a pattern that evaluates to a single color everywhere
func NewSolid(c core.Color) *Solid {
	return &Solid{base: newBase(core.Identity()), Color: c}
}

// At returns the solid color
func (s *Solid) At(core.Tuple) core.Color {
	return s.Color
}

// Stripe alternates two colors along the x axis
type Stripe struct {
	base
	A, B core.Color
}

// NewStripe creates a stripe pattern with the given transform
func NewStripe(a, b core.Color, transform core.Matrix) *Stripe {
	return &Stripe{base: newBase(transform), A: a, B: b}
}

// At returns color A when floor(x) is even, B otherwise
func (s *Stripe) At(point core.Tuple) core.Color {
	if math.Mod(math.Floor(point.X), 2) == 0 {
		return s.A
	}
	return s.B
}

// Gradient blends linearly from one color to another along the x axis
type Gradient struct {
	base
	A, B core.Color
}

// NewGradient creates a gradient pattern with the given transform
func NewGradient(a, b core.Color, transform core.Matrix) *Gradient {
	return &Gradient{base: newBase(transform), A: a, B: b}
}

// At interpolates between A and B by the fractional part of x
func (g *Gradient) At(point core.Tuple) core.Color {
	distance := g.B.Subtract(g.A)
	fraction := point.X - math.Floor(point.X)
	return g.A.Add(distance.Multiply(fraction))
}

// Ring alternates two colors in concentric rings around the y axis
type Ring struct {
	base
	A, B core.Color
}

// NewRing creates a ring pattern with the given transform
func NewRing(a, b core.Color, transform core.Matrix) *Ring {
	return &Ring{base: newBase(transform), A: a, B: b}
}

// At returns color A when floor(sqrt(x²+z²)) is even, B otherwise
func (r *Ring) At(point core.Tuple) core.Color {
	if math.Mod(math.Floor(math.Sqrt(point.X*point.X+point.Z*point.Z)), 2) == 0 {
		return r.A
	}
	return r.B
}

// Checker tiles space with alternating unit cubes of two colors
type Checker struct {
	base
	A, B core.Color
}

// NewChecker creates a checker pattern with the given transform
func NewChecker(a, b core.Color, transform core.Matrix) *Checker {
	return &Checker{base: newBase(transform), A: a, B: b}
}

// At returns color A when floor(x)+floor(y)+floor(z) is even, B otherwise
func (c *Checker) At(point core.Tuple) core.Color {
	sum := math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)
	if math.Mod(sum, 2) == 0 {
		return c.A
	}
	return c.B
}

// Blend averages two nested patterns, both evaluated in this pattern's
// space. Blends compose: either side may itself be a Blend.
type Blend struct {
	base
	First, Second Pattern
}

// NewBlend creates a blended pattern with the given transform
func NewBlend(first, second Pattern, transform core.Matrix) *Blend {
	return &Blend{base: newBase(transform), First: first, Second: second}
}

// At returns the average of the two nested patterns at the point
func (b *Blend) At(point core.Tuple) core.Color {
	return b.First.At(point).Add(b.Second.At(point)).Multiply(0.5)
}
