package render

import "strings"

// Cell is one character of the frame.
type Cell struct {
	Glyph rune
	Ink   Ink
}

var blankCell = Cell{Glyph: ' ', Ink: InkNone}

// Frame is a finished character grid.
type Frame struct {
	width  int
	height int
	cells  []Cell
}

// EmptyFrame returns a frame with no cells.
func EmptyFrame() Frame {
	return Frame{}
}

func (f Frame) Width() int  { return f.width }
func (f Frame) Height() int { return f.height }

// Len returns the number of cells.
func (f Frame) Len() int {
	return len(f.cells)
}

// At returns the cell at column x, row y.
func (f Frame) At(x, y int) Cell {
	return f.cells[y*f.width+x]
}

// Serialize writes the frame as rows of glyphs separated by '\n'.
// A color directive is emitted only when the ink changes from the previous
// cell (starting from no color), and the stream ends with one reset.
func (f Frame) Serialize(p Palette) string {
	var b strings.Builder
	b.Grow(len(f.cells)*2 + f.height + len(p.reset))

	current := InkNone
	for y := 0; y < f.height; y++ {
		row := f.cells[y*f.width : (y+1)*f.width]
		for _, cell := range row {
			if cell.Ink != current {
				if cell.Ink == InkNone {
					b.WriteString(p.reset)
				} else {
					b.WriteString(p.fg[cell.Ink])
				}
				current = cell.Ink
			}
			b.WriteRune(cell.Glyph)
		}
		if y+1 < f.height {
			b.WriteByte('\n')
		}
	}
	b.WriteString(p.reset)
	return b.String()
}

// String returns the glyphs only.
func (f Frame) String() string {
	return f.Serialize(Palette{})
}
