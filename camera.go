package raytracer

import (
	"log"
	"math"
	"math/rand"
	"runtime"
	"sync"

	"github.com/jpclark/raytracer/internal/prim"
)

// Camera turns a resolution, field of view and view transform into
// per-pixel primary rays, and drives parallel rendering into a Canvas.
type Camera struct {
	HSize, VSize int
	FOV          float64
	Transform    prim.Matrix

	// Samples is the number of jittered primary rays averaged per pixel
	// (spec.md §4.10 plus the antialiasing extension in SPEC_FULL.md
	// §7). Samples <= 1 reproduces spec.md's camera exactly.
	Samples int

	inverse               prim.Matrix
	halfWidth, halfHeight float64
	pixelSize             float64
}

// NewCamera builds a camera, deriving halfWidth/halfHeight/pixelSize
// once up front so RayForPixel stays a handful of multiplications.
func NewCamera(hsize, vsize int, fov float64, transform prim.Matrix) (*Camera, error) {
	if fov <= 0 {
		log.Printf("raytracer: camera fov not specified, using default of 90 degrees")
		fov = math.Pi / 2
	}
	inverse, err := transform.Inverse()
	if err != nil {
		return nil, err
	}

	c := &Camera{
		HSize:     hsize,
		VSize:     vsize,
		FOV:       fov,
		Transform: transform,
		Samples:   1,
		inverse:   inverse,
	}

	halfView := math.Tan(fov / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = (c.halfWidth * 2) / float64(hsize)

	return c, nil
}

// Resolution presets, supplementing spec.md per SPEC_FULL.md §5
// (mirroring the Rust original's Resolution enum).
const (
	ResolutionVGA    = 640
	ResolutionVGAY   = 480
	Resolution720pX  = 1280
	Resolution720pY  = 720
	Resolution1080pX = 1920
	Resolution1080pY = 1080
)

// NewCameraVGA is a convenience constructor for a 640x480 camera.
func NewCameraVGA(fov float64, transform prim.Matrix) (*Camera, error) {
	return NewCamera(ResolutionVGA, ResolutionVGAY, fov, transform)
}

// NewCamera720p is a convenience constructor for a 1280x720 camera.
func NewCamera720p(fov float64, transform prim.Matrix) (*Camera, error) {
	return NewCamera(Resolution720pX, Resolution720pY, fov, transform)
}

// NewCamera1080p is a convenience constructor for a 1920x1080 camera.
func NewCamera1080p(fov float64, transform prim.Matrix) (*Camera, error) {
	return NewCamera(Resolution1080pX, Resolution1080pY, fov, transform)
}

// RayForPixel returns the primary ray through the center of pixel
// (x, y). The camera looks down -z in its own space, and +x is to the
// left of the image, per spec.md §4.10.
func (c *Camera) RayForPixel(x, y int) Ray {
	return c.rayForPixelOffset(x, y, 0.5, 0.5)
}

func (c *Camera) rayForPixelOffset(x, y int, dx, dy float64) Ray {
	xOffset := (float64(x) + dx) * c.pixelSize
	yOffset := (float64(y) + dy) * c.pixelSize

	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MulPoint(prim.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MulPoint(prim.NewPoint(0, 0, 0))
	direction := pixel.Sub(origin).Normalize()

	return NewRay(origin, direction)
}

// Render drives a parallel, embarrassingly-parallel map over every
// pixel: the world and light are read-only for the duration of the
// render, and each pixel is written to exactly once, so no
// synchronization is needed beyond a worker pool draining a shared
// index channel.
func (c *Camera) Render(world *World) *Canvas {
	return c.RenderWithWorkers(world, runtime.GOMAXPROCS(0))
}

// RenderWithWorkers is Render with an explicit worker-pool size, for
// tests and tuning.
func (c *Camera) RenderWithWorkers(world *World, workers int) *Canvas {
	canvas := NewCanvas(c.HSize, c.VSize)
	if workers <= 0 {
		workers = 1
	}

	type job struct{ x, y int }
	jobs := make(chan job, c.HSize)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				color := c.colorForPixel(world, j.x, j.y)
				canvas.WritePixel(j.x, j.y, color)
			}
		}()
	}

	go func() {
		for x := 0; x < c.HSize; x++ {
			for y := 0; y < c.VSize; y++ {
				jobs <- job{x: x, y: y}
			}
		}
		close(jobs)
	}()

	wg.Wait()
	return canvas
}

// colorForPixel computes the color for pixel (x, y), averaging
// c.Samples jittered primary rays when antialiasing is enabled.
// Per-pixel jitter is seeded deterministically from (x, y) so Render's
// output never depends on goroutine scheduling order (spec.md §5).
func (c *Camera) colorForPixel(world *World, x, y int) prim.Color {
	if c.Samples <= 1 {
		ray := c.RayForPixel(x, y)
		return world.ColorAt(ray)
	}

	rng := rand.New(rand.NewSource(int64(y)*int64(c.HSize) + int64(x)))
	var sum prim.Color
	for i := 0; i < c.Samples; i++ {
		// Stratify samples into c.Samples horizontal cells and jitter
		// within each cell, so samples don't clump near the pixel
		// center the way c.Samples independent rng.Float64() draws can.
		cellLo := float64(i) / float64(c.Samples)
		cellHi := float64(i+1) / float64(c.Samples)
		dx := prim.Clamp(0, 1, prim.Lerp(cellLo, cellHi, rng.Float64()))
		dy := prim.Clamp(0, 1, rng.Float64())
		ray := c.rayForPixelOffset(x, y, dx, dy)
		sum = sum.Add(world.ColorAt(ray))
	}
	return sum.Scale(1.0 / float64(c.Samples))
}
