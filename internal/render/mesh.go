package render

import (
	"github.com/SeamusWaldron/cubeascii/internal/cube"
	"github.com/SeamusWaldron/cubeascii/internal/math3d"
)

// Mesh layout in object space.
const (
	CellSpacing = 0.7  // distance between neighbouring cubie centers
	TileSize    = 0.38 // sticker edge length
	NormalBias  = 0.03 // lift of the sticker off the cubie surface
)

// FaceletMesh is the object-space quad of one sticker.
// Corners run top-left, top-right, bottom-right, bottom-left as seen from outside.
type FaceletMesh struct {
	Corners [4]math3d.Vec3
	Center  math3d.Vec3
	Normal  math3d.Vec3
}

// MeshTable holds one mesh per facelet index. It depends only on the facelet
// table, never on sticker colors, and is read-only once built.
type MeshTable struct {
	meshes [cube.FaceletCount]FaceletMesh
}

// NewMeshTable builds the sticker quads for every entry of table.
func NewMeshTable(table *cube.Table) *MeshTable {
	m := &MeshTable{}
	for i, f := range table.Facelets() {
		m.meshes[i] = buildMesh(f)
	}
	return m
}

// Meshes returns the meshes in facelet index order.
func (m *MeshTable) Meshes() []FaceletMesh {
	return m.meshes[:]
}

func buildMesh(f cube.Facelet) FaceletMesh {
	spec := f.Face.Spec()
	center := math3d.V3(
		float64(f.Coord.X)*CellSpacing,
		float64(f.Coord.Y)*CellSpacing,
		float64(f.Coord.Z)*CellSpacing,
	)
	normal := axisVec(spec.Normal)
	right := axisVec(spec.Right)
	up := axisVec(spec.Up)

	half := TileSize * 0.5
	offset := normal.Scale(NormalBias)
	r := right.Scale(half)
	u := up.Scale(half)

	return FaceletMesh{
		Corners: [4]math3d.Vec3{
			center.Sub(r).Add(u).Add(offset),
			center.Add(r).Add(u).Add(offset),
			center.Add(r).Sub(u).Add(offset),
			center.Sub(r).Sub(u).Add(offset),
		},
		Center: center.Add(offset),
		Normal: normal,
	}
}

func axisVec(a cube.AxisDir) math3d.Vec3 {
	s := float64(a.Sign)
	switch a.Axis {
	case cube.AxisX:
		return math3d.V3(s, 0, 0)
	case cube.AxisY:
		return math3d.V3(0, s, 0)
	default:
		return math3d.V3(0, 0, s)
	}
}
