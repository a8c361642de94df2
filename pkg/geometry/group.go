package geometry

import (
	"github.com/rquinn/go-whitted-raytracer/pkg/core"
	"github.com/rquinn/go-whitted-raytracer/pkg/material"
)

// Group is a container of child shapes sharing one transform. An
// OBJ-derived triangle mesh is held as a single group so the whole
// model can be placed with one transform.
type Group struct {
	base
	children []Shape
}

// NewGroup creates an empty group with an identity transform
func NewGroup() *Group {
	return &Group{base: newBase()}
}

// AddChild adds a shape to the group and records the group as its
// parent for coordinate-space chaining
func (g *Group) AddChild(s Shape) {
	s.SetParent(g)
	g.children = append(g.children, s)
}

// Children returns the group's child shapes
func (g *Group) Children() []Shape {
	return g.children
}

// SetMaterial applies the material to every child
func (g *Group) SetMaterial(m material.Material) {
	g.base.SetMaterial(m)
	for _, child := range g.children {
		child.SetMaterial(m)
	}
}

// LocalIntersect delegates to every child and returns the concatenated
// results sorted ascending by t. The intersections reference the child
// primitives, not the group, so normals come from the shape actually hit.
func (g *Group) LocalIntersect(ray core.Ray) []Intersection {
	var xs Intersections
	for _, child := range g.children {
		xs = append(xs, Intersect(child, ray)...)
	}
	xs.Sort()
	return xs
}

// LocalNormalAt is never called on a group: intersections always refer
// to the child primitive that produced them
func (g *Group) LocalNormalAt(core.Tuple, Intersection) core.Tuple {
	panic("geometry: LocalNormalAt called on a group")
}
