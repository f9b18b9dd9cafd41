package render

import (
	"math"

	"github.com/SeamusWaldron/cubeascii/internal/cube"
	"github.com/SeamusWaldron/cubeascii/internal/math3d"
)

// Renderer owns the reusable canvas and depth buffer. It is not safe for
// concurrent use.
type Renderer struct {
	projector *Projector
	ramp      []rune
	canvas    canvas
	faces     []ProjectedFace
}

// NewRenderer creates a renderer drawing through projector.
func NewRenderer(projector *Projector, opts ...Option) *Renderer {
	r := &Renderer{
		projector: projector,
		ramp:      []rune(DefaultRamp),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render rasterizes the cube as seen by cam into a frame of vp's size.
// A viewport with no area yields an empty frame.
func (r *Renderer) Render(c *cube.Cube, cam *Camera, vp Viewport) Frame {
	if vp.Empty() {
		return EmptyFrame()
	}

	r.canvas.ensureSize(vp.Width, vp.Height)
	r.canvas.clear()

	r.faces = r.projector.appendFaces(r.faces[:0], c, cam.Basis(), vp)
	for i := range r.faces {
		r.drawFace(&r.faces[i])
	}
	return r.canvas.frame()
}

func (r *Renderer) drawFace(face *ProjectedFace) {
	cell := Cell{Glyph: r.glyph(face.Brightness), Ink: InkOf(face.Color)}
	p := face.Points
	r.canvas.fillTriangle(p[0], p[1], p[2], face.Depth, cell)
	r.canvas.fillTriangle(p[0], p[2], p[3], face.Depth, cell)
}

// glyph maps brightness in [0, 1] linearly onto the ramp.
func (r *Renderer) glyph(brightness float64) rune {
	b := math3d.Clamp(brightness, 0, 1)
	idx := int(math.Round(b * float64(len(r.ramp)-1)))
	return r.ramp[idx]
}

// canvas is the frame buffer paired with a depth buffer.
type canvas struct {
	width  int
	height int
	cells  []Cell
	depth  []float64
}

// ensureSize resizes the buffers only when the dimensions change, reusing
// their backing arrays when large enough.
func (c *canvas) ensureSize(width, height int) {
	if c.width == width && c.height == height {
		return
	}
	area := width * height
	if cap(c.cells) >= area {
		c.cells = c.cells[:area]
		c.depth = c.depth[:area]
	} else {
		c.cells = make([]Cell, area)
		c.depth = make([]float64, area)
	}
	c.width, c.height = width, height
}

func (c *canvas) clear() {
	for i := range c.cells {
		c.cells[i] = blankCell
		c.depth[i] = math.Inf(1)
	}
}

// plot writes cell if depth is nearer than what the pixel holds.
func (c *canvas) plot(x, y int, depth float64, cell Cell) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	i := y*c.width + x
	if depth < c.depth[i] {
		c.depth[i] = depth
		c.cells[i] = cell
	}
}

// fillTriangle scans the triangle's bounding box and plots every pixel whose
// center is inside, whatever the winding.
func (c *canvas) fillTriangle(a, b, d math3d.Vec2, depth float64, cell Cell) {
	minX := max(int(math.Floor(min(a.X, b.X, d.X))), 0)
	maxX := min(int(math.Ceil(max(a.X, b.X, d.X))), c.width-1)
	minY := max(int(math.Floor(min(a.Y, b.Y, d.Y))), 0)
	maxY := min(int(math.Ceil(max(a.Y, b.Y, d.Y))), c.height-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := math3d.V2(float64(x)+0.5, float64(y)+0.5)
			if insideTriangle(p, a, b, d) {
				c.plot(x, y, depth, cell)
			}
		}
	}
}

func (c *canvas) frame() Frame {
	cells := make([]Cell, len(c.cells))
	copy(cells, c.cells)
	return Frame{width: c.width, height: c.height, cells: cells}
}

func insideTriangle(p, a, b, c math3d.Vec2) bool {
	ab := edge(a, b, p)
	bc := edge(b, c, p)
	ca := edge(c, a, p)
	return (ab >= 0 && bc >= 0 && ca >= 0) || (ab <= 0 && bc <= 0 && ca <= 0)
}

// edge is the z component of (b-a) × (p-a).
func edge(a, b, p math3d.Vec2) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}
