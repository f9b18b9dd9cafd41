package cube

import "fmt"

// Axis is one of the three cube rotation axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// AxisDir is a signed axis, e.g. -Z.
type AxisDir struct {
	Axis Axis
	Sign int8
}

// LatticePoint is a cubie position relative to the cube center.
// Each component is in {-1, 0, 1}.
type LatticePoint struct {
	X, Y, Z int8
}

// Component returns the coordinate along axis.
func (p LatticePoint) Component(axis Axis) int8 {
	switch axis {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	default:
		return p.Z
	}
}

func (p *LatticePoint) set(axis Axis, v int8) {
	switch axis {
	case AxisX:
		p.X = v
	case AxisY:
		p.Y = v
	default:
		p.Z = v
	}
}

func (p *LatticePoint) add(axis Axis, d int8) {
	p.set(axis, p.Component(axis)+d)
}

func (p LatticePoint) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// FaceSpec is the orthonormal frame of a face as seen from outside the cube.
type FaceSpec struct {
	Normal AxisDir
	Up     AxisDir
	Right  AxisDir
}

// Spec returns the fixed frame for the face.
func (f Face) Spec() FaceSpec {
	switch f {
	case U:
		return FaceSpec{Normal: AxisDir{AxisY, 1}, Up: AxisDir{AxisZ, -1}, Right: AxisDir{AxisX, 1}}
	case D:
		return FaceSpec{Normal: AxisDir{AxisY, -1}, Up: AxisDir{AxisZ, 1}, Right: AxisDir{AxisX, 1}}
	case F:
		return FaceSpec{Normal: AxisDir{AxisZ, 1}, Up: AxisDir{AxisY, 1}, Right: AxisDir{AxisX, 1}}
	case B:
		return FaceSpec{Normal: AxisDir{AxisZ, -1}, Up: AxisDir{AxisY, 1}, Right: AxisDir{AxisX, -1}}
	case R:
		return FaceSpec{Normal: AxisDir{AxisX, 1}, Up: AxisDir{AxisY, 1}, Right: AxisDir{AxisZ, -1}}
	case L:
		return FaceSpec{Normal: AxisDir{AxisX, -1}, Up: AxisDir{AxisY, 1}, Right: AxisDir{AxisZ, 1}}
	default:
		panic("cube: unknown face " + f.String())
	}
}

// FaceletCount is the number of stickers on a 3x3x3 cube.
const FaceletCount = 54

// Facelet describes one sticker slot.
type Facelet struct {
	Face  Face
	Coord LatticePoint
	Row   int
	Col   int
}

type faceletKey struct {
	coord LatticePoint
	face  Face
}

var (
	gridCols = [3]int8{-1, 0, 1}
	gridRows = [3]int8{1, 0, -1}
)

// Table is the bijection between (face, coordinate) and a flat sticker index.
// Build it once with NewTable and share the pointer; it is never mutated.
type Table struct {
	facelets [FaceletCount]Facelet
	index    map[faceletKey]int
}

// NewTable builds the facelet table: six faces, each a 3x3 grid walked row by row.
func NewTable() *Table {
	t := &Table{index: make(map[faceletKey]int, FaceletCount)}
	i := 0
	for _, face := range Faces {
		spec := face.Spec()
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				coord := coordFor(spec, row, col)
				t.facelets[i] = Facelet{Face: face, Coord: coord, Row: row, Col: col}
				t.index[faceletKey{coord, face}] = i
				i++
			}
		}
	}
	if len(t.index) != FaceletCount {
		panic(fmt.Sprintf("cube: facelet table has %d unique keys, want %d", len(t.index), FaceletCount))
	}
	return t
}

func coordFor(spec FaceSpec, row, col int) LatticePoint {
	var p LatticePoint
	p.set(spec.Normal.Axis, spec.Normal.Sign)
	p.add(spec.Right.Axis, spec.Right.Sign*gridCols[col])
	p.add(spec.Up.Axis, spec.Up.Sign*gridRows[row])
	return p
}

// Facelets returns the table entries in index order.
func (t *Table) Facelets() []Facelet {
	return t.facelets[:]
}

// Index returns the flat index of the sticker at coord on face.
// A miss means the pair is not a sticker slot and is a programming error.
func (t *Table) Index(coord LatticePoint, face Face) int {
	idx, ok := t.index[faceletKey{coord, face}]
	if !ok {
		panic(fmt.Sprintf("cube: invalid facelet lookup %s on %s", coord, face))
	}
	return idx
}

// FaceIndices returns the 9 indices of face in row-major order.
func (t *Table) FaceIndices(face Face) [9]int {
	var out [9]int
	for i, f := range t.facelets {
		if f.Face == face {
			out[f.Row*3+f.Col] = i
		}
	}
	return out
}
