package render

import (
	"math"

	"github.com/SeamusWaldron/cubeascii/internal/cube"
	"github.com/SeamusWaldron/cubeascii/internal/math3d"
)

const (
	nearPlane = 0.05
	minAspect = 0.5
)

// LightDir is the fixed directional light (not normalized).
var LightDir = math3d.V3(0.3, 0.9, 0.6)

// Viewport is the character grid size.
type Viewport struct {
	Width  int
	Height int
}

// Empty reports whether the viewport has no area.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// Aspect returns width/height, or 1 for a zero height.
func (v Viewport) Aspect() float64 {
	if v.Height == 0 {
		return 1
	}
	return float64(v.Width) / float64(v.Height)
}

// ProjectedFace is one visible sticker in screen space.
type ProjectedFace struct {
	Points     [4]math3d.Vec2
	Depth      float64 // mean camera-space depth of the corners
	Brightness float64
	Color      cube.Color
}

// Projector culls, projects and shades facelet meshes.
type Projector struct {
	meshes *MeshTable
	light  math3d.Vec3
}

// NewProjector creates a projector over a shared mesh table.
func NewProjector(meshes *MeshTable) *Projector {
	return &Projector{
		meshes: meshes,
		light:  LightDir.Normalize(),
	}
}

// ProjectCube returns the visible stickers in facelet-table order.
// Faces are not depth sorted; the rasterizer resolves depth per pixel.
func (p *Projector) ProjectCube(c *cube.Cube, cam *Camera, vp Viewport) []ProjectedFace {
	return p.appendFaces(make([]ProjectedFace, 0, 32), c, cam.Basis(), vp)
}

func (p *Projector) appendFaces(dst []ProjectedFace, c *cube.Cube, basis Basis, vp Viewport) []ProjectedFace {
	for i, mesh := range p.meshes.Meshes() {
		if !facesEye(mesh, basis) {
			continue
		}
		face, ok := p.projectMesh(mesh, basis, vp)
		if !ok {
			continue
		}
		face.Color = c.Sticker(i)
		dst = append(dst, face)
	}
	return dst
}

// facesEye is the back-face test.
func facesEye(mesh FaceletMesh, basis Basis) bool {
	toEye := basis.Eye.Sub(mesh.Center).Normalize()
	return mesh.Normal.Dot(toEye) > 0
}

func (p *Projector) projectMesh(mesh FaceletMesh, basis Basis, vp Viewport) (ProjectedFace, bool) {
	var out ProjectedFace
	total := 0.0
	for i, corner := range mesh.Corners {
		pt, depth, ok := projectPoint(corner, basis, vp)
		if !ok {
			return ProjectedFace{}, false
		}
		out.Points[i] = pt
		total += depth
	}
	out.Depth = total / 4
	out.Brightness = p.shade(mesh.Normal)
	return out, true
}

// projectPoint maps a world point to pixel coordinates with the origin top-left.
// ok is false when the point is at or behind the near plane.
func projectPoint(point math3d.Vec3, basis Basis, vp Viewport) (math3d.Vec2, float64, bool) {
	rel := point.Sub(basis.Eye)
	x := rel.Dot(basis.Right)
	y := rel.Dot(basis.Up)
	z := rel.Dot(basis.Forward)
	if z <= nearPlane {
		return math3d.Vec2{}, 0, false
	}

	f := 1 / math.Tan(0.5*basis.FovY)
	aspect := math.Max(vp.Aspect(), minAspect)
	ndcX := (x * f) / (aspect * z)
	ndcY := (y * f) / z

	maxX := float64(max(vp.Width-1, 0))
	maxY := float64(max(vp.Height-1, 0))
	sx := (ndcX + 1) * 0.5 * maxX
	sy := math3d.Clamp((1-(ndcY+1)*0.5)*maxY, 0, maxY)
	return math3d.V2(sx, sy), z, true
}

// shade is a Lambertian term with an ambient floor of 0.2.
func (p *Projector) shade(normal math3d.Vec3) float64 {
	return 0.2 + 0.8*math.Max(0, normal.Normalize().Dot(p.light))
}
