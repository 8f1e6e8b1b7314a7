package sorb

import (
	"math"
	"runtime"
	"sync"
)

// Camera is a pinhole camera. FOV is in degrees and spans the vertical
// canvas extent; the horizontal extent scales with the aspect ratio, so for
// a canvas wider than tall the horizontal field is wider than FOV.
// Transform is the camera-to-world matrix; build it with LookAt or the
// fluent matrix builders.
type Camera struct {
	Width     int
	Height    int
	FOV       float64
	Transform Matrix
}

func NewCamera(width, height int, fov float64) *Camera {
	return &Camera{
		Width:     width,
		Height:    height,
		FOV:       fov,
		Transform: Identity(),
	}
}

// RayForPixel returns the primary ray through the center of pixel (x, y).
// Pixel (0,0) is the top-left corner; canvas y grows downward while camera
// space y grows upward, so the formula flips.
func (c *Camera) RayForPixel(x, y int) Ray {
	halfView := math.Tan(Radians(c.FOV) / 2)
	aspect := float64(c.Width) / float64(c.Height)

	u := (float64(x) + 0.5) / float64(c.Width)
	v := (float64(y) + 0.5) / float64(c.Height)
	cx := (2*u - 1) * aspect * halfView
	cy := (1 - 2*v) * halfView

	direction := Vector{cx, cy, -1}.Normalize()
	return c.Transform.MulRay(Ray{Origin, direction})
}

// Render traces every pixel of the canvas. Rows are distributed over the
// CPUs; per-pixel work is pure, so the output is identical to the serial
// loop.
func (c *Camera) Render(w *World) *Canvas {
	canvas := NewCanvas(c.Width, c.Height)
	wn := runtime.NumCPU()
	var wg sync.WaitGroup
	for i := 0; i < wn; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for y := i; y < c.Height; y += wn {
				for x := 0; x < c.Width; x++ {
					canvas.WritePixel(x, y, w.ColorAt(c.RayForPixel(x, y)))
				}
			}
		}(i)
	}
	wg.Wait()
	return canvas
}
