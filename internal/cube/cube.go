// Package cube provides a 3x3x3 twisty-puzzle model: facelet addressing,
// the 18 face turns and scrambling.
package cube

import "strings"

// Cube holds the 54 sticker colors, indexed by facelet index.
type Cube struct {
	table    *Table
	stickers []Color
	scratch  []Color
}

// New creates a solved cube addressed through table.
func New(table *Table) *Cube {
	c := &Cube{
		table:    table,
		stickers: make([]Color, FaceletCount),
		scratch:  make([]Color, FaceletCount),
	}
	c.Reset()
	return c
}

// Table returns the facelet table the cube is addressed through.
func (c *Cube) Table() *Table {
	return c.table
}

// Reset restores the solved coloring.
func (c *Cube) Reset() {
	for i, f := range c.table.Facelets() {
		c.stickers[i] = f.Face.SolvedColor()
	}
}

// Clone creates a deep copy of the cube sharing the same table.
func (c *Cube) Clone() *Cube {
	clone := &Cube{
		table:    c.table,
		stickers: make([]Color, FaceletCount),
		scratch:  make([]Color, FaceletCount),
	}
	copy(clone.stickers, c.stickers)
	return clone
}

// Stickers returns a copy of the 54-color sequence.
func (c *Cube) Stickers() []Color {
	out := make([]Color, FaceletCount)
	copy(out, c.stickers)
	return out
}

// Sticker returns the color at a facelet index.
func (c *Cube) Sticker(i int) Color {
	return c.stickers[i]
}

// Equal reports whether both cubes show the same colors.
func (c *Cube) Equal(other *Cube) bool {
	for i := range c.stickers {
		if c.stickers[i] != other.stickers[i] {
			return false
		}
	}
	return true
}

// IsSolved returns true if every face shows only its solved color.
func (c *Cube) IsSolved() bool {
	for _, face := range Faces {
		expected := face.SolvedColor()
		for _, i := range c.table.FaceIndices(face) {
			if c.stickers[i] != expected {
				return false
			}
		}
	}
	return true
}

// ApplyMove applies a move as Count quarter-turns of one layer.
func (c *Cube) ApplyMove(m Move) {
	t := m.Turn()
	for i := 0; i < t.Count; i++ {
		c.rotateLayer(t.Axis, t.Layer, t.Direction)
	}
}

// ApplyMoves applies a sequence of moves.
func (c *Cube) ApplyMoves(moves []Move) {
	for _, m := range moves {
		c.ApplyMove(m)
	}
}

// rotateLayer permutes every sticker in the layer into a staging buffer and
// swaps it in. Writing in place would clobber unread sources.
func (c *Cube) rotateLayer(axis Axis, layer int8, dir Direction) {
	next := c.scratch
	copy(next, c.stickers)
	for i, f := range c.table.Facelets() {
		if f.Coord.Component(axis) != layer {
			continue
		}
		coord := rotateLattice(f.Coord, axis, dir)
		face := faceFromNormal(rotateLattice(f.Face.Normal(), axis, dir))
		next[c.table.Index(coord, face)] = c.stickers[i]
	}
	c.stickers, c.scratch = next, c.stickers
}

// rotateLattice turns the two components orthogonal to axis by 90 degrees.
func rotateLattice(p LatticePoint, axis Axis, dir Direction) LatticePoint {
	switch axis {
	case AxisX:
		p.Y, p.Z = rotatePair(p.Y, p.Z, dir)
	case AxisY:
		p.X, p.Z = rotatePair(p.X, p.Z, dir)
	default:
		p.X, p.Y = rotatePair(p.X, p.Y, dir)
	}
	return p
}

func rotatePair(a, b int8, dir Direction) (int8, int8) {
	if dir == Clockwise {
		return b, -a
	}
	return -b, a
}

// ColorCounts returns how many stickers carry each color.
func (c *Cube) ColorCounts() [NumColors]int {
	var counts [NumColors]int
	for _, s := range c.stickers {
		counts[s]++
	}
	return counts
}

// Face returns the 9 colors of a face in row-major order as seen from outside.
func (c *Cube) Face(face Face) [9]Color {
	var out [9]Color
	for pos, i := range c.table.FaceIndices(face) {
		out[pos] = c.stickers[i]
	}
	return out
}

// String returns the unfolded net:
//
//	      U
//	L F R B
//	      D
func (c *Cube) String() string {
	var b strings.Builder
	writeRow := func(face Face, row int) {
		colors := c.Face(face)
		for col := 0; col < 3; col++ {
			b.WriteString(colors[row*3+col].String())
			b.WriteByte(' ')
		}
	}

	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(U, row)
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		for _, face := range []Face{L, F, R, B} {
			writeRow(face, row)
		}
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(D, row)
		b.WriteString("\n")
	}
	return b.String()
}
