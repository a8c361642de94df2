// Package scene provides ready-made worlds and cameras for the
// command-line renderer.
package scene

import (
	"fmt"
	"math"

	"github.com/rquinn/go-whitted-raytracer/pkg/core"
	"github.com/rquinn/go-whitted-raytracer/pkg/geometry"
	"github.com/rquinn/go-whitted-raytracer/pkg/loaders"
	"github.com/rquinn/go-whitted-raytracer/pkg/material"
	"github.com/rquinn/go-whitted-raytracer/pkg/pattern"
	"github.com/rquinn/go-whitted-raytracer/pkg/renderer"
	"github.com/rquinn/go-whitted-raytracer/pkg/world"
)

// Scene bundles a fully constructed world with the camera that renders it
type Scene struct {
	World  *world.World
	Camera *renderer.Camera
}

// NewDefaultScene builds a checkered floor with three spheres, one of
// them mirror-reflective and one striped
func NewDefaultScene(width, height int) *Scene {
	w := world.New()
	w.AddLight(material.NewPointLight(core.NewPoint(-10, 10, -10), core.White()))

	floor := geometry.NewPlane()
	floorMat := material.DefaultMaterial()
	floorMat.Specular = 0
	floorMat.Reflective = 0.1
	floorMat.Pattern = pattern.NewChecker(
		core.NewColor(0.85, 0.85, 0.85),
		core.NewColor(0.25, 0.25, 0.35),
		core.Identity(),
	)
	floor.SetMaterial(floorMat)
	w.AddObject(floor)

	middle := geometry.NewSphere()
	middle.SetTransform(core.Translation(-0.5, 1, 0.5))
	middleMat := material.DefaultMaterial()
	middleMat.Color = core.NewColor(0.1, 0.3, 0.6)
	middleMat.Diffuse = 0.7
	middleMat.Specular = 0.3
	middleMat.Reflective = 0.4
	middle.SetMaterial(middleMat)
	w.AddObject(middle)

	right := geometry.NewSphere()
	right.SetTransform(core.Translation(1.5, 0.5, -0.5).Multiply(core.Scaling(0.5, 0.5, 0.5)))
	rightMat := material.DefaultMaterial()
	rightMat.Diffuse = 0.7
	rightMat.Specular = 0.3
	rightMat.Pattern = pattern.NewStripe(
		core.NewColor(0.9, 0.4, 0.2),
		core.NewColor(0.95, 0.7, 0.3),
		core.Scaling(0.25, 0.25, 0.25).Multiply(core.RotationZ(math.Pi/4)),
	)
	right.SetMaterial(rightMat)
	w.AddObject(right)

	left := geometry.NewSphere()
	left.SetTransform(core.Translation(-1.5, 0.33, -0.75).Multiply(core.Scaling(0.33, 0.33, 0.33)))
	leftMat := material.DefaultMaterial()
	leftMat.Color = core.NewColor(0.6, 0.9, 0.3)
	leftMat.Diffuse = 0.7
	leftMat.Specular = 0.3
	left.SetMaterial(leftMat)
	w.AddObject(left)

	camera := renderer.NewCamera(width, height, math.Pi/3)
	camera.SetView(
		core.NewPoint(0, 1.5, -5),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	)

	return &Scene{World: w, Camera: camera}
}

// NewGlassScene builds a glass sphere with an air bubble inside it,
// suspended over a checkered plane
func NewGlassScene(width, height int) *Scene {
	w := world.New()
	w.AddLight(material.NewPointLight(core.NewPoint(2, 10, -5), core.NewColor(0.9, 0.9, 0.9)))

	floor := geometry.NewPlane()
	floor.SetTransform(core.Translation(0, -10, 0))
	floorMat := material.DefaultMaterial()
	floorMat.Specular = 0
	floorMat.Pattern = pattern.NewChecker(core.White(), core.Black(), core.Identity())
	floor.SetMaterial(floorMat)
	w.AddObject(floor)

	outer := geometry.NewGlassSphere()
	outerMat := outer.Material()
	outerMat.Diffuse = 0.1
	outerMat.Ambient = 0.1
	outer.SetMaterial(outerMat)
	w.AddObject(outer)

	// Air bubble: refractive index 1 inside the glass shell
	inner := geometry.NewGlassSphere()
	inner.SetTransform(core.Scaling(0.5, 0.5, 0.5))
	innerMat := inner.Material()
	innerMat.RefractiveIndex = 1.0
	innerMat.Diffuse = 0.1
	innerMat.Ambient = 0.1
	inner.SetMaterial(innerMat)
	w.AddObject(inner)

	camera := renderer.NewCamera(width, height, 0.45)
	camera.SetView(
		core.NewPoint(0, 0, -5),
		core.NewPoint(0, 0, 0),
		core.NewVector(0, 1, 0),
	)

	return &Scene{World: w, Camera: camera}
}

// NewModelScene loads an OBJ mesh and places it above a checkered water
// plane beside a stretched cube
func NewModelScene(width, height int, objPath string) (*Scene, error) {
	w := world.New()
	w.AddLight(material.NewPointLight(core.NewPoint(0, 20, 3), core.White()))

	modelMat := material.DefaultMaterial()
	modelMat.Ambient = 0.8
	data, err := loaders.LoadOBJFile(objPath, modelMat)
	if err != nil {
		return nil, fmt.Errorf("building model scene: %w", err)
	}

	model := data.Group
	model.SetTransform(
		core.Translation(0, 1, 5).
			Multiply(core.RotationY(math.Pi / 2)).
			Multiply(core.RotationX(-math.Pi / 4)).
			Multiply(core.Scaling(10, 10, 10)),
	)
	w.AddObject(model)

	water := geometry.NewPlane()
	waterMat := material.DefaultMaterial()
	waterMat.Pattern = pattern.NewChecker(core.White(), core.Black(), core.Identity())
	water.SetMaterial(waterMat)
	w.AddObject(water)

	beach := geometry.NewCube()
	beach.SetTransform(core.Scaling(5, 1, 1).Multiply(core.Translation(0, 1, -8.5)))
	w.AddObject(beach)

	camera := renderer.NewCamera(width, height, math.Pi/3)
	camera.SetView(
		core.NewPoint(0, 3, -10),
		core.NewPoint(0, 5.5, 0),
		core.NewVector(0, 0, -1),
	)

	return &Scene{World: w, Camera: camera}, nil
}
