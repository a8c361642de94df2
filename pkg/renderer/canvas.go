package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/rquinn/go-whitted-raytracer/pkg/core"
)

// Canvas is the 2-D buffer of floating-point colors a render writes
// into. Channels stay unclamped until encoding.
type Canvas struct {
	Width  int
	Height int
	pixels []core.Color
}

// NewCanvas creates a canvas initialized to black
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

// SetPixel writes a color at (x, y). Out-of-bounds writes are ignored.
func (c *Canvas) SetPixel(x, y int, col core.Color) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	c.pixels[y*c.Width+x] = col
}

// PixelAt returns the color at (x, y)
func (c *Canvas) PixelAt(x, y int) core.Color {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return core.Black()
	}
	return c.pixels[y*c.Width+x]
}

// channelTo8Bit clamps a channel to [0,1] and scales it to 0-255
func channelTo8Bit(v float64) uint8 {
	return uint8(math.Min(math.Max(v, 0), 1) * 255.999)
}

// ToImage converts the canvas to an 8-bit RGBA image for PNG encoding
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.PixelAt(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: channelTo8Bit(p.R),
				G: channelTo8Bit(p.G),
				B: channelTo8Bit(p.B),
				A: 255,
			})
		}
	}
	return img
}

// WritePPM encodes the canvas as a plain-text PPM (P3) image
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.Width, c.Height)

	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.PixelAt(x, y)
			fmt.Fprintf(bw, "%d %d %d\n", channelTo8Bit(p.R), channelTo8Bit(p.G), channelTo8Bit(p.B))
		}
	}

	return bw.Flush()
}
