package geometry

import (
	"math"
	"testing"

	"github.com/rquinn/go-whitted-raytracer/pkg/core"
)

func TestIntersections_Hit(t *testing.T) {
	s := NewSphere()

	tests := []struct {
		name   string
		ts     []float64
		wantT  float64
		wantOK bool
	}{
		{"all positive", []float64{1, 2}, 1, true},
		{"some negative", []float64{-1, 1}, 1, true},
		{"all negative", []float64{-2, -1}, 0, false},
		{"lowest nonnegative wins", []float64{5, 7, -3, 2}, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var xs Intersections
			for _, tv := range tt.ts {
				xs = append(xs, NewIntersection(tv, s))
			}

			hit, ok := xs.Hit()
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !core.FloatEquals(hit.T, tt.wantT) {
				t.Errorf("hit.T = %f, want %f", hit.T, tt.wantT)
			}
		})
	}
}

func TestIntersections_SortIsStable(t *testing.T) {
	s1 := NewSphere()
	s2 := NewSphere()
	xs := Intersections{
		NewIntersection(2, s1),
		NewIntersection(1, s1),
		NewIntersection(1, s2),
	}

	xs.Sort()

	if xs[0].T != 1 || xs[0].Object != Shape(s1) {
		t.Errorf("xs[0] = %v", xs[0])
	}
	if xs[1].T != 1 || xs[1].Object != Shape(s2) {
		t.Errorf("xs[1] = %v", xs[1])
	}
	if xs[2].T != 2 {
		t.Errorf("xs[2] = %v", xs[2])
	}
}

func TestPrepareComputations_OutsideHit(t *testing.T) {
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	s := NewSphere()
	hit := NewIntersection(4, s)

	comps := PrepareComputations(hit, ray, nil)

	if comps.T != 4 || comps.Object != Shape(s) {
		t.Errorf("T=%f Object mismatch", comps.T)
	}
	if !comps.Point.Equals(core.NewPoint(0, 0, -1)) {
		t.Errorf("Point = %v", comps.Point)
	}
	if !comps.EyeV.Equals(core.NewVector(0, 0, -1)) {
		t.Errorf("EyeV = %v", comps.EyeV)
	}
	if !comps.NormalV.Equals(core.NewVector(0, 0, -1)) {
		t.Errorf("NormalV = %v", comps.NormalV)
	}
	if comps.Inside {
		t.Error("hit should be outside")
	}
}

func TestPrepareComputations_InsideHitFlipsNormal(t *testing.T) {
	ray := core.NewRay(core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1))
	s := NewSphere()
	hit := NewIntersection(1, s)

	comps := PrepareComputations(hit, ray, nil)

	if !comps.Inside {
		t.Fatal("hit should be inside")
	}
	if !comps.Point.Equals(core.NewPoint(0, 0, 1)) {
		t.Errorf("Point = %v", comps.Point)
	}
	if !comps.NormalV.Equals(core.NewVector(0, 0, -1)) {
		t.Errorf("NormalV = %v, want flipped inward", comps.NormalV)
	}
}

func TestPrepareComputations_OverPointIsAboveSurface(t *testing.T) {
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	s := NewSphere()
	s.SetTransform(core.Translation(0, 0, 1))
	hit := NewIntersection(5, s)

	comps := PrepareComputations(hit, ray, nil)

	if comps.OverPoint.Z >= -core.Epsilon/2 {
		t.Errorf("OverPoint.Z = %g, want < %g", comps.OverPoint.Z, -core.Epsilon/2)
	}
	if comps.Point.Z <= comps.OverPoint.Z {
		t.Error("Point should be below OverPoint along the ray")
	}
}

func TestPrepareComputations_UnderPointIsBelowSurface(t *testing.T) {
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	s := NewGlassSphere()
	s.SetTransform(core.Translation(0, 0, 1))
	hit := NewIntersection(5, s)

	comps := PrepareComputations(hit, ray, Intersections{hit})

	if comps.UnderPoint.Z <= core.Epsilon/2 {
		t.Errorf("UnderPoint.Z = %g, want > %g", comps.UnderPoint.Z, core.Epsilon/2)
	}
	if comps.Point.Z >= comps.UnderPoint.Z {
		t.Error("Point should be above UnderPoint along the ray")
	}
}

func TestPrepareComputations_ReflectV(t *testing.T) {
	p := NewPlane()
	ray := core.NewRay(core.NewPoint(0, 1, -1), core.NewVector(0, -math.Sqrt2/2, math.Sqrt2/2))
	hit := NewIntersection(math.Sqrt2, p)

	comps := PrepareComputations(hit, ray, nil)

	if !comps.ReflectV.Equals(core.NewVector(0, math.Sqrt2/2, math.Sqrt2/2)) {
		t.Errorf("ReflectV = %v", comps.ReflectV)
	}
}

func TestPrepareComputations_RefractiveIndices(t *testing.T) {
	a := NewGlassSphere()
	a.SetTransform(core.Scaling(2, 2, 2))
	ma := a.Material()
	ma.RefractiveIndex = 1.5
	a.SetMaterial(ma)

	b := NewGlassSphere()
	b.SetTransform(core.Translation(0, 0, -0.25))
	mb := b.Material()
	mb.RefractiveIndex = 2.0
	b.SetMaterial(mb)

	c := NewGlassSphere()
	c.SetTransform(core.Translation(0, 0, 0.25))
	mc := c.Material()
	mc.RefractiveIndex = 2.5
	c.SetMaterial(mc)

	ray := core.NewRay(core.NewPoint(0, 0, -4), core.NewVector(0, 0, 1))
	xs := Intersections{
		NewIntersection(2, a),
		NewIntersection(2.75, b),
		NewIntersection(3.25, c),
		NewIntersection(4.75, b),
		NewIntersection(5.25, c),
		NewIntersection(6, a),
	}

	want := []struct{ n1, n2 float64 }{
		{1.0, 1.5},
		{1.5, 2.0},
		{2.0, 2.5},
		{2.5, 2.5},
		{2.5, 1.5},
		{1.5, 1.0},
	}

	for i, w := range want {
		comps := PrepareComputations(xs[i], ray, xs)
		if comps.N1 != w.n1 || comps.N2 != w.n2 {
			t.Errorf("index %d: n1,n2 = %f,%f, want %f,%f", i, comps.N1, comps.N2, w.n1, w.n2)
		}
	}
}

func TestSchlick_TotalInternalReflection(t *testing.T) {
	s := NewGlassSphere()
	ray := core.NewRay(core.NewPoint(0, 0, math.Sqrt2/2), core.NewVector(0, 1, 0))
	xs := Intersections{
		NewIntersection(-math.Sqrt2/2, s),
		NewIntersection(math.Sqrt2/2, s),
	}

	comps := PrepareComputations(xs[1], ray, xs)
	if got := comps.Schlick(); got != 1.0 {
		t.Errorf("Schlick = %f, want 1.0", got)
	}
}

func TestSchlick_PerpendicularViewingAngle(t *testing.T) {
	s := NewGlassSphere()
	ray := core.NewRay(core.NewPoint(0, 0, 0), core.NewVector(0, 1, 0))
	xs := Intersections{
		NewIntersection(-1, s),
		NewIntersection(1, s),
	}

	comps := PrepareComputations(xs[1], ray, xs)
	if got := comps.Schlick(); !core.FloatEquals(got, 0.04) {
		t.Errorf("Schlick = %f, want 0.04", got)
	}
}

func TestSchlick_SmallAngleWhenN2GreaterThanN1(t *testing.T) {
	s := NewGlassSphere()
	ray := core.NewRay(core.NewPoint(0, 0.99, -2), core.NewVector(0, 0, 1))
	xs := Intersections{NewIntersection(1.8589, s)}

	comps := PrepareComputations(xs[0], ray, xs)
	if got := comps.Schlick(); !core.FloatEquals(got, 0.48873) {
		t.Errorf("Schlick = %f, want 0.48873", got)
	}
}
