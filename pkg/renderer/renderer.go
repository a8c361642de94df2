package renderer

import (
	"runtime"
	"sync"

	"github.com/rquinn/go-whitted-raytracer/pkg/world"
)

// Render traces every pixel sequentially and returns the finished
// canvas. Each pixel's color is a pure function of the immutable world
// and camera, so the output is deterministic across runs.
func Render(camera *Camera, w *world.World) *Canvas {
	canvas := NewCanvas(camera.HSize, camera.VSize)
	for y := 0; y < camera.VSize; y++ {
		renderRow(camera, w, canvas, y)
	}
	return canvas
}

// RenderParallel distributes rows across worker goroutines. Workers
// share only read-only references to the world and camera and write to
// disjoint canvas rows, so no locking is needed, and the result is
// bit-identical to Render. numWorkers <= 0 uses the CPU count.
func RenderParallel(camera *Camera, w *world.World, numWorkers int) *Canvas {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	canvas := NewCanvas(camera.HSize, camera.VSize)

	rows := make(chan int, camera.VSize)
	for y := 0; y < camera.VSize; y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				renderRow(camera, w, canvas, y)
			}
		}()
	}
	wg.Wait()

	return canvas
}

// renderRow traces one row of pixels into the canvas
func renderRow(camera *Camera, w *world.World, canvas *Canvas, y int) {
	for x := 0; x < camera.HSize; x++ {
		ray := camera.RayForPixel(x, y)
		canvas.SetPixel(x, y, w.ColorAt(ray, world.MaxBounces))
	}
}
