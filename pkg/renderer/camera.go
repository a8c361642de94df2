// Package renderer implements the camera, the pixel buffer, and the
// render loop that drives the world's recursive shading.
package renderer

import (
	"fmt"
	"math"

	"github.com/rquinn/go-whitted-raytracer/pkg/core"
)

// Camera maps pixel coordinates onto world-space rays through a fixed
// viewport and field of view. All derived values are computed once at
// construction and immutable afterwards.
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64
	PixelSize   float64
	HalfWidth   float64
	HalfHeight  float64

	transform core.Matrix
	inverse   core.Matrix
}

// NewCamera creates a camera with an identity view transform
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)

	var halfWidth, halfHeight float64
	if aspect >= 1 {
		halfWidth = halfView
		halfHeight = halfView / aspect
	} else {
		halfWidth = halfView * aspect
		halfHeight = halfView
	}

	return &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		PixelSize:   (halfWidth * 2) / float64(hsize),
		HalfWidth:   halfWidth,
		HalfHeight:  halfHeight,
		transform:   core.Identity(),
		inverse:     core.Identity(),
	}
}

// Transform returns the camera's world-to-view matrix
func (c *Camera) Transform() core.Matrix {
	return c.transform
}

// SetTransform replaces the camera's view matrix and caches its
// inverse. A non-invertible view matrix is a scene construction error.
func (c *Camera) SetTransform(m core.Matrix) {
	inverse, err := m.Inverse()
	if err != nil {
		panic(fmt.Sprintf("renderer: camera transform: %v", err))
	}
	c.transform = m
	c.inverse = inverse
}

// SetView positions the camera at from, looking at to, with the given
// up vector
func (c *Camera) SetView(from, to, up core.Tuple) {
	c.SetTransform(core.ViewTransform(from, to, up))
}

// RayForPixel returns the world-space ray through the center of the
// given pixel. The canvas sits one unit in front of the camera.
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.PixelSize
	yOffset := (float64(py) + 0.5) * c.PixelSize

	// The camera looks toward -z, so +x is to the left
	worldX := c.HalfWidth - xOffset
	worldY := c.HalfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(core.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}
