package starfighter

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-starfighter/internal/config"
	"github.com/vovakirdan/tui-starfighter/internal/core"
)

const (
	cameraNear = 0.1
	cameraFar  = 500.0

	// Terminal cells are roughly twice as tall as they are wide.
	cellAspect = 2.0
)

// Camera projects scene points onto a character grid.
type Camera struct {
	viewProj mgl64.Mat4
	focal    float64 // 1 / tan(fov/2)
	width    int
	height   int
}

// NewCamera looks from cfg.Position toward the origin.
func NewCamera(cfg config.CameraConfig, width, height int) Camera {
	c := Camera{width: width, height: height}
	if width <= 0 || height <= 0 {
		return c
	}

	fov := mgl64.DegToRad(cfg.FOV)
	aspect := float64(width) / (float64(height) * cellAspect)
	proj := mgl64.Perspective(fov, aspect, cameraNear, cameraFar)
	view := mgl64.LookAtV(mgl64.Vec3(cfg.Position), mgl64.Vec3{}, core.Up)

	c.viewProj = proj.Mul4(view)
	c.focal = 1 / math.Tan(fov/2)
	return c
}

// Size returns the grid size the camera projects onto.
func (c Camera) Size() (int, int) {
	return c.width, c.height
}

// Project maps p to grid coordinates. depth is the clip-space w (distance
// along the view axis). ok is false for points behind the camera or
// outside the grid.
func (c Camera) Project(p mgl64.Vec3) (x, y int, depth float64, ok bool) {
	if c.width <= 0 || c.height <= 0 {
		return 0, 0, 0, false
	}
	clip := c.viewProj.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= cameraNear {
		return 0, 0, 0, false
	}
	nx, ny := clip.X()/w, clip.Y()/w
	if nx < -1 || nx > 1 || ny < -1 || ny > 1 {
		return 0, 0, w, false
	}
	x = int((nx + 1) / 2 * float64(c.width))
	y = int((1 - ny) / 2 * float64(c.height))
	x = core.Clamp(x, 0, c.width-1)
	y = core.Clamp(y, 0, c.height-1)
	return x, y, w, true
}

// Radius returns the on-screen radius, in rows, of a sphere of radius r at
// view depth.
func (c Camera) Radius(r, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return r * c.focal / depth * float64(c.height) / 2
}
