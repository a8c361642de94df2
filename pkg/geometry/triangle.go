package geometry

import (
	"errors"
	"math"

	"github.com/rquinn/go-whitted-raytracer/pkg/core"
)

// ErrDegenerateTriangle is returned when a triangle's vertices are
// collinear. Degenerate triangles are rejected at construction time;
// the tracer never sees one.
var ErrDegenerateTriangle = errors.New("triangle has zero area")

// Triangle is a flat triangle with a constant face normal. The edge
// vectors and normal are precomputed at construction.
type Triangle struct {
	base
	P1, P2, P3 core.Tuple
	E1, E2     core.Tuple
	Normal     core.Tuple
}

// NewTriangle creates a triangle from three points, rejecting
// zero-area triangles
func NewTriangle(p1, p2, p3 core.Tuple) (*Triangle, error) {
	e1 := p2.Subtract(p1)
	e2 := p3.Subtract(p1)
	cross := e2.Cross(e1)
	if cross.Magnitude() < core.Epsilon {
		return nil, ErrDegenerateTriangle
	}

	return &Triangle{
		base:   newBase(),
		P1:     p1,
		P2:     p2,
		P3:     p3,
		E1:     e1,
		E2:     e2,
		Normal: cross.Normalize(),
	}, nil
}

// LocalIntersect runs the Möller–Trumbore test, recording the
// barycentric u,v of the hit
func (tri *Triangle) LocalIntersect(ray core.Ray) []Intersection {
	t, u, v, ok := mollerTrumbore(ray, tri.P1, tri.E1, tri.E2)
	if !ok {
		return nil
	}
	return []Intersection{NewIntersectionUV(t, tri, u, v)}
}

// LocalNormalAt returns the precomputed face normal
func (tri *Triangle) LocalNormalAt(core.Tuple, Intersection) core.Tuple {
	return tri.Normal
}

// SmoothTriangle carries per-vertex normals interpolated across the
// face by the hit's barycentric coordinates
type SmoothTriangle struct {
	base
	P1, P2, P3 core.Tuple
	N1, N2, N3 core.Tuple
	e1, e2     core.Tuple
}

// NewSmoothTriangle creates a triangle with vertex normals, rejecting
// zero-area triangles
func NewSmoothTriangle(p1, p2, p3, n1, n2, n3 core.Tuple) (*SmoothTriangle, error) {
	e1 := p2.Subtract(p1)
	e2 := p3.Subtract(p1)
	if e2.Cross(e1).Magnitude() < core.Epsilon {
		return nil, ErrDegenerateTriangle
	}

	return &SmoothTriangle{
		base: newBase(),
		P1:   p1, P2: p2, P3: p3,
		N1: n1, N2: n2, N3: n3,
		e1: e1, e2: e2,
	}, nil
}

// LocalIntersect runs the Möller–Trumbore test, recording the
// barycentric u,v needed for normal interpolation
func (tri *SmoothTriangle) LocalIntersect(ray core.Ray) []Intersection {
	t, u, v, ok := mollerTrumbore(ray, tri.P1, tri.e1, tri.e2)
	if !ok {
		return nil
	}
	return []Intersection{NewIntersectionUV(t, tri, u, v)}
}

// LocalNormalAt interpolates the vertex normals by the hit's
// barycentric coordinates
func (tri *SmoothTriangle) LocalNormalAt(_ core.Tuple, hit Intersection) core.Tuple {
	return tri.N2.Multiply(hit.U).
		Add(tri.N3.Multiply(hit.V)).
		Add(tri.N1.Multiply(1 - hit.U - hit.V))
}

// mollerTrumbore computes the ray/triangle intersection from the first
// vertex and the two precomputed edge vectors. ok is false when the ray
// is parallel to the triangle or the barycentric coordinates fall
// outside the face.
func mollerTrumbore(ray core.Ray, p1, e1, e2 core.Tuple) (t, u, v float64, ok bool) {
	dirCrossE2 := ray.Direction.Cross(e2)
	det := e1.Dot(dirCrossE2)
	if math.Abs(det) < core.Epsilon {
		return 0, 0, 0, false
	}

	f := 1 / det
	p1ToOrigin := ray.Origin.Subtract(p1)
	u = p1ToOrigin.Dot(dirCrossE2) * f
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	originCrossE1 := p1ToOrigin.Cross(e1)
	v = ray.Direction.Dot(originCrossE1) * f
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	t = e2.Dot(originCrossE1) * f
	return t, u, v, true
}
