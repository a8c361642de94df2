package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rquinn/go-whitted-raytracer/pkg/renderer"
	"github.com/rquinn/go-whitted-raytracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default', 'glass' or 'model'")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 450, "Image height in pixels")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	objPath := flag.String("obj", "", "OBJ file for the 'model' scene")
	out := flag.String("out", "", "Output file (.png or .ppm); default output/<scene>/render_<timestamp>.png")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - checkered floor with reflective and patterned spheres")
		fmt.Println("  glass   - glass sphere with an air bubble over a checkered plane")
		fmt.Println("  model   - OBJ mesh scene (requires -obj)")
		return
	}

	selected, err := createScene(*sceneType, *width, *height, *objPath)
	if err != nil {
		fmt.Printf("Error loading scene: %v\n", err)
		os.Exit(1)
	}

	filename := *out
	if filename == "" {
		outputDir := filepath.Join("output", *sceneType)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			fmt.Printf("Error creating output directory: %v\n", err)
			os.Exit(1)
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	}

	fmt.Printf("Rendering %q at %dx%d...\n", *sceneType, *width, *height)
	startTime := time.Now()
	canvas := renderer.RenderParallel(selected.Camera, selected.World, *workers)
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	if err := writeCanvas(canvas, filename); err != nil {
		fmt.Printf("Error writing output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// createScene builds the named scene at the given resolution. The
// model scene additionally needs the path of an OBJ mesh.
func createScene(sceneType string, width, height int, objPath string) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(width, height), nil
	case "glass":
		return scene.NewGlassScene(width, height), nil
	case "model":
		if objPath == "" {
			return nil, fmt.Errorf("the 'model' scene requires -obj <file.obj>")
		}
		return scene.NewModelScene(width, height, objPath)
	default:
		return nil, fmt.Errorf("unknown scene type %q", sceneType)
	}
}

// writeCanvas encodes the canvas as PNG or PPM based on the file extension
func writeCanvas(canvas *renderer.Canvas, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(filename), ".ppm") {
		return canvas.WritePPM(file)
	}
	return png.Encode(file, canvas.ToImage())
}
