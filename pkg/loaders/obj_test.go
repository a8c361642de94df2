package loaders

import (
	"strings"
	"testing"

	"github.com/rquinn/go-whitted-raytracer/pkg/core"
	"github.com/rquinn/go-whitted-raytracer/pkg/geometry"
	"github.com/rquinn/go-whitted-raytracer/pkg/material"
	"github.com/rquinn/go-whitted-raytracer/pkg/pattern"
)

func parse(t *testing.T, src string) *OBJData {
	t.Helper()
	data, err := ParseOBJ(strings.NewReader(src), material.DefaultMaterial())
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	return data
}

func TestParseOBJ_IgnoresUnknownStatements(t *testing.T) {
	src := `There was a young lady named Bright
who traveled much faster than light.
She set out one day
in a relative way,
and came back the previous night.
`
	data := parse(t, src)

	if data.IgnoredLines != 5 {
		t.Errorf("IgnoredLines = %d, want 5", data.IgnoredLines)
	}
	if len(data.Group.Children()) != 0 {
		t.Errorf("group has %d children, want 0", len(data.Group.Children()))
	}
}

func TestParseOBJ_Vertices(t *testing.T) {
	src := `v -1 1 0
v -1.0000 0.5000 0.0000
v 1 0 0
v 1 1 0
`
	data := parse(t, src)

	want := []core.Tuple{
		core.NewPoint(-1, 1, 0),
		core.NewPoint(-1, 0.5, 0),
		core.NewPoint(1, 0, 0),
		core.NewPoint(1, 1, 0),
	}
	if len(data.Vertices) != len(want) {
		t.Fatalf("got %d vertices, want %d", len(data.Vertices), len(want))
	}
	for i, w := range want {
		if !data.Vertices[i].Equals(w) {
			t.Errorf("vertex %d = %v, want %v", i, data.Vertices[i], w)
		}
	}
}

func TestParseOBJ_TriangleFaces(t *testing.T) {
	src := `v -1 1 0
v -1 0 0
v 1 0 0
v 1 1 0

f 1 2 3
f 1 3 4
`
	data := parse(t, src)

	children := data.Group.Children()
	if len(children) != 2 {
		t.Fatalf("got %d triangles, want 2", len(children))
	}

	t1, ok := children[0].(*geometry.Triangle)
	if !ok {
		t.Fatalf("child 0 is %T, want *geometry.Triangle", children[0])
	}
	if !t1.P1.Equals(data.Vertices[0]) || !t1.P2.Equals(data.Vertices[1]) || !t1.P3.Equals(data.Vertices[2]) {
		t.Errorf("first triangle vertices wrong: %v %v %v", t1.P1, t1.P2, t1.P3)
	}

	t2 := children[1].(*geometry.Triangle)
	if !t2.P1.Equals(data.Vertices[0]) || !t2.P2.Equals(data.Vertices[2]) || !t2.P3.Equals(data.Vertices[3]) {
		t.Errorf("second triangle vertices wrong: %v %v %v", t2.P1, t2.P2, t2.P3)
	}
}

func TestParseOBJ_FanTriangulatesPolygons(t *testing.T) {
	src := `v -1 1 0
v -1 0 0
v 1 0 0
v 1 1 0
v 0 2 0

f 1 2 3 4 5
`
	data := parse(t, src)

	children := data.Group.Children()
	if len(children) != 3 {
		t.Fatalf("got %d triangles, want 3", len(children))
	}

	wantVertices := [][3]int{{0, 1, 2}, {0, 2, 3}, {0, 3, 4}}
	for i, w := range wantVertices {
		tri := children[i].(*geometry.Triangle)
		if !tri.P1.Equals(data.Vertices[w[0]]) ||
			!tri.P2.Equals(data.Vertices[w[1]]) ||
			!tri.P3.Equals(data.Vertices[w[2]]) {
			t.Errorf("triangle %d vertices wrong", i)
		}
	}
}

func TestParseOBJ_SmoothTriangles(t *testing.T) {
	src := `v 0 1 0
v -1 0 0
v 1 0 0

vn -1 0 0
vn 1 0 0
vn 0 1 0

f 1//3 2//1 3//2
f 1/0/3 2/102/1 3/14/2
`
	data := parse(t, src)

	children := data.Group.Children()
	if len(children) != 2 {
		t.Fatalf("got %d triangles, want 2", len(children))
	}

	for i, child := range children {
		tri, ok := child.(*geometry.SmoothTriangle)
		if !ok {
			t.Fatalf("child %d is %T, want *geometry.SmoothTriangle", i, child)
		}
		if !tri.P1.Equals(data.Vertices[0]) || !tri.P2.Equals(data.Vertices[1]) || !tri.P3.Equals(data.Vertices[2]) {
			t.Errorf("triangle %d vertices wrong", i)
		}
		if !tri.N1.Equals(data.Normals[2]) || !tri.N2.Equals(data.Normals[0]) || !tri.N3.Equals(data.Normals[1]) {
			t.Errorf("triangle %d normals wrong", i)
		}
	}
}

func TestParseOBJ_NegativeIndices(t *testing.T) {
	src := `v -1 1 0
v -1 0 0
v 1 0 0

f -3 -2 -1
`
	data := parse(t, src)

	tri := data.Group.Children()[0].(*geometry.Triangle)
	if !tri.P1.Equals(data.Vertices[0]) || !tri.P2.Equals(data.Vertices[1]) || !tri.P3.Equals(data.Vertices[2]) {
		t.Errorf("negative-index triangle vertices wrong")
	}
}

func TestParseOBJ_AppliesMaterialWithoutPattern(t *testing.T) {
	m := material.DefaultMaterial()
	m.Color = core.NewColor(0.2, 0.4, 0.8)
	m.Pattern = pattern.NewSolid(core.White())

	src := `v -1 1 0
v -1 0 0
v 1 0 0

f 1 2 3
`
	data, err := ParseOBJ(strings.NewReader(src), m)
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}

	got := data.Group.Children()[0].Material()
	if !got.Color.Equals(m.Color) {
		t.Errorf("triangle color = %v", got.Color)
	}
	if got.Pattern != nil {
		t.Error("pattern should not be carried onto mesh triangles")
	}
}

func TestParseOBJ_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"bad vertex coordinate", "v 1 banana 0\n"},
		{"too few vertex coordinates", "v 1 2\n"},
		{"face index out of range", "v 0 0 0\nv 1 0 0\nf 1 2 3\n"},
		{"face with too few vertices", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
		{"degenerate face", "v 0 0 0\nv 1 1 1\nv 2 2 2\nf 1 2 3\n"},
		{"bad normal reference", "v 0 1 0\nv -1 0 0\nv 1 0 0\nf 1//9 2//9 3//9\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseOBJ(strings.NewReader(tt.src), material.DefaultMaterial()); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadOBJFile_MissingFile(t *testing.T) {
	if _, err := LoadOBJFile("no/such/file.obj", material.DefaultMaterial()); err == nil {
		t.Error("expected an error for a missing file")
	}
}
