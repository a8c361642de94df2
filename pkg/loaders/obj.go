// Package loaders converts external asset formats into typed geometry.
// The tracer core never parses text itself; it consumes the shapes
// produced here.
package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rquinn/go-whitted-raytracer/pkg/core"
	"github.com/rquinn/go-whitted-raytracer/pkg/geometry"
	"github.com/rquinn/go-whitted-raytracer/pkg/material"
)

// OBJData is the result of parsing a Wavefront OBJ stream: a single
// group holding the triangulated mesh, plus the raw vertex data for
// inspection
type OBJData struct {
	Group        *geometry.Group
	Vertices     []core.Tuple // 1-based in OBJ, stored 0-based
	Normals      []core.Tuple
	IgnoredLines int // statements the parser does not understand
}

// LoadOBJFile parses an OBJ file into a triangle group with the given
// material
func LoadOBJFile(path string, m material.Material) (*OBJData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening OBJ file: %w", err)
	}
	defer file.Close()

	data, err := ParseOBJ(file, m)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return data, nil
}

// ParseOBJ parses an OBJ stream. Faces with vertex normals become
// smooth triangles; faces without become flat triangles; polygons are
// fan-triangulated. Statements other than v, vn and f are counted and
// skipped. A degenerate (zero-area) face is a hard error: the scene is
// structurally invalid.
func ParseOBJ(r io.Reader, m material.Material) (*OBJData, error) {
	data := &OBJData{Group: geometry.NewGroup()}

	// Patterns are not carried onto mesh triangles
	triMaterial := m
	triMaterial.Pattern = nil

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		var err error
		switch fields[0] {
		case "v":
			err = data.parseVertex(fields[1:])
		case "vn":
			err = data.parseNormal(fields[1:])
		case "f":
			err = data.parseFace(fields[1:], triMaterial)
		default:
			data.IgnoredLines++
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading OBJ stream: %w", err)
	}

	return data, nil
}

func parseFloats(fields []string) ([]float64, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("expected 3 coordinates, got %d", len(fields))
	}
	values := make([]float64, 3)
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, fmt.Errorf("bad coordinate %q: %w", fields[i], err)
		}
		values[i] = v
	}
	return values, nil
}

func (d *OBJData) parseVertex(fields []string) error {
	v, err := parseFloats(fields)
	if err != nil {
		return fmt.Errorf("vertex: %w", err)
	}
	d.Vertices = append(d.Vertices, core.NewPoint(v[0], v[1], v[2]))
	return nil
}

func (d *OBJData) parseNormal(fields []string) error {
	v, err := parseFloats(fields)
	if err != nil {
		return fmt.Errorf("vertex normal: %w", err)
	}
	d.Normals = append(d.Normals, core.NewVector(v[0], v[1], v[2]))
	return nil
}

// faceVertex is one corner of a face: a vertex index and an optional
// normal index (-1 when absent)
type faceVertex struct {
	vertex int
	normal int
}

// resolveIndex converts an OBJ 1-based (or negative, counted from the
// end) index to a 0-based slice index
func resolveIndex(idx, length int) (int, error) {
	resolved := idx - 1
	if idx < 0 {
		resolved = length + idx
	}
	if resolved < 0 || resolved >= length {
		return 0, fmt.Errorf("index %d out of range (have %d)", idx, length)
	}
	return resolved, nil
}

func (d *OBJData) parseFaceVertex(token string) (faceVertex, error) {
	parts := strings.Split(token, "/")

	vi, err := strconv.Atoi(parts[0])
	if err != nil {
		return faceVertex{}, fmt.Errorf("bad vertex reference %q: %w", token, err)
	}
	vertex, err := resolveIndex(vi, len(d.Vertices))
	if err != nil {
		return faceVertex{}, fmt.Errorf("face vertex: %w", err)
	}

	normal := -1
	if len(parts) >= 3 && parts[2] != "" {
		ni, err := strconv.Atoi(parts[2])
		if err != nil {
			return faceVertex{}, fmt.Errorf("bad normal reference %q: %w", token, err)
		}
		normal, err = resolveIndex(ni, len(d.Normals))
		if err != nil {
			return faceVertex{}, fmt.Errorf("face normal: %w", err)
		}
	}

	return faceVertex{vertex: vertex, normal: normal}, nil
}

func (d *OBJData) parseFace(fields []string, m material.Material) error {
	if len(fields) < 3 {
		return fmt.Errorf("face needs at least 3 vertices, got %d", len(fields))
	}

	corners := make([]faceVertex, len(fields))
	for i, token := range fields {
		fv, err := d.parseFaceVertex(token)
		if err != nil {
			return err
		}
		corners[i] = fv
	}

	// Fan triangulation from the first corner
	for i := 1; i < len(corners)-1; i++ {
		if err := d.addTriangle(corners[0], corners[i], corners[i+1], m); err != nil {
			return err
		}
	}
	return nil
}

func (d *OBJData) addTriangle(a, b, c faceVertex, m material.Material) error {
	p1 := d.Vertices[a.vertex]
	p2 := d.Vertices[b.vertex]
	p3 := d.Vertices[c.vertex]

	var tri geometry.Shape
	var err error
	if a.normal >= 0 && b.normal >= 0 && c.normal >= 0 {
		tri, err = geometry.NewSmoothTriangle(p1, p2, p3,
			d.Normals[a.normal], d.Normals[b.normal], d.Normals[c.normal])
	} else {
		tri, err = geometry.NewTriangle(p1, p2, p3)
	}
	if err != nil {
		return fmt.Errorf("face: %w", err)
	}

	tri.SetMaterial(m)
	d.Group.AddChild(tri)
	return nil
}
