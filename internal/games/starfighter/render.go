package starfighter

import (
	"math"
	"math/rand"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-starfighter/internal/config"
	"github.com/vovakirdan/tui-starfighter/internal/core"
)

// Backdrop stars sit on a shell well outside the obstacle field.
const (
	starShellMin = 150.0
	starShellMax = 250.0
)

// Obstacles farther than this are drawn dim.
const farDepth = 30.0

// Renderer draws snapshots onto a core.Screen. It never touches the scene.
type Renderer struct {
	cfg    config.Config
	camera Camera
	stars  []mgl64.Vec3
}

// NewRenderer creates a renderer for a width x height grid. The starfield
// is derived from seed.
func NewRenderer(cfg config.Config, seed int64, width, height int) *Renderer {
	rng := rand.New(rand.NewSource(seed))
	stars := make([]mgl64.Vec3, cfg.Backdrop.Stars)
	for i := range stars {
		dir := core.Normalize(core.RandomInBall(1, rng.Float64(), rng.Float64(), 1))
		stars[i] = dir.Mul(starShellMin + rng.Float64()*(starShellMax-starShellMin))
	}
	return &Renderer{
		cfg:    cfg,
		camera: NewCamera(cfg.Camera, width, height),
		stars:  stars,
	}
}

// Resize adapts the projection to a new grid size.
func (r *Renderer) Resize(width, height int) {
	if w, h := r.camera.Size(); w == width && h == height {
		return
	}
	r.camera = NewCamera(r.cfg.Camera, width, height)
}

// Camera returns the current camera.
func (r *Renderer) Camera() Camera {
	return r.camera
}

// Draw renders the snapshot into dst. dst is cleared first.
func (r *Renderer) Draw(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	r.Resize(dst.Width(), dst.Height())

	r.drawStars(dst)
	r.drawObstacles(dst, snap.Obstacles)
	r.drawProjectiles(dst, snap.Projectiles)
	r.drawCraft(dst, snap.Craft)
}

func (r *Renderer) drawStars(dst *core.Screen) {
	for i, s := range r.stars {
		x, y, _, ok := r.camera.Project(s)
		if !ok {
			continue
		}
		if i%4 == 0 {
			dst.SetColor(x, y, '+', core.ColorStar)
		} else {
			dst.SetColor(x, y, '.', core.ColorStarDim)
		}
	}
}

type projected struct {
	x, y   int
	depth  float64
	radius float64
	spin   float64
}

func (r *Renderer) drawObstacles(dst *core.Screen, obstacles []Obstacle) {
	visible := make([]projected, 0, len(obstacles))
	for _, o := range obstacles {
		if !o.Alive {
			continue
		}
		x, y, depth, ok := r.camera.Project(o.Position)
		if !ok {
			continue
		}
		visible = append(visible, projected{
			x: x, y: y, depth: depth,
			radius: r.camera.Radius(o.Scale, depth),
			spin:   o.Orientation.Yaw,
		})
	}

	// Far first so near rocks overdraw them
	sort.Slice(visible, func(i, j int) bool {
		return visible[i].depth > visible[j].depth
	})

	for _, p := range visible {
		color := core.ColorRock
		if p.depth > farDepth {
			color = core.ColorRockFar
		}
		switch {
		case p.radius < 0.5:
			dst.SetColor(p.x, p.y, '.', color)
		case p.radius < 1:
			dst.SetColor(p.x, p.y, rockGlyph(p.spin), color)
		default:
			fillEllipse(dst, p.x, p.y, p.radius, color)
		}
	}
}

// rockGlyph picks a glyph that changes as the rock tumbles.
func rockGlyph(angle float64) rune {
	glyphs := []rune{'o', 'O', '0', 'Q'}
	i := int(math.Mod(math.Abs(angle), math.Pi) / math.Pi * float64(len(glyphs)))
	return glyphs[core.Clamp(i, 0, len(glyphs)-1)]
}

func fillEllipse(dst *core.Screen, cx, cy int, rows float64, color core.Color) {
	cols := rows * cellAspect
	ry := int(math.Ceil(rows))
	rx := int(math.Ceil(cols))
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			fx, fy := float64(dx)/cols, float64(dy)/rows
			d := fx*fx + fy*fy
			switch {
			case d <= 0.5:
				dst.SetColor(cx+dx, cy+dy, '@', color)
			case d <= 1:
				dst.SetColor(cx+dx, cy+dy, '#', color)
			}
		}
	}
}

func (r *Renderer) drawProjectiles(dst *core.Screen, projectiles []Projectile) {
	for _, p := range projectiles {
		x, y, _, ok := r.camera.Project(p.Position)
		if !ok {
			continue
		}
		dst.SetColor(x, y, '*', core.ColorLaser)
	}
}

func (r *Renderer) drawCraft(dst *core.Screen, craft Craft) {
	x, y, _, ok := r.camera.Project(craft.Position)
	if !ok {
		return
	}

	left, right := '◢', '◣'
	switch roll := craft.Orientation.Roll; {
	case roll < -0.15:
		left = '▁'
	case roll > 0.15:
		right = '▁'
	}
	dst.SetColor(x-1, y, left, core.ColorCraft)
	dst.SetColor(x, y, '▲', core.ColorCraft)
	dst.SetColor(x+1, y, right, core.ColorCraft)
}
