package cube

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

// NumColors is the number of distinct sticker colors.
const NumColors = 6

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Face represents a cube face.
type Face int

const (
	U Face = 0 // Up (White)
	D Face = 1 // Down (Yellow)
	F Face = 2 // Front (Green)
	B Face = 3 // Back (Blue)
	R Face = 4 // Right (Red)
	L Face = 5 // Left (Orange)
)

// Faces lists every face in table order.
var Faces = [6]Face{U, D, F, B, R, L}

func (f Face) String() string {
	switch f {
	case U:
		return "U"
	case D:
		return "D"
	case F:
		return "F"
	case B:
		return "B"
	case R:
		return "R"
	case L:
		return "L"
	default:
		return "?"
	}
}

// SolvedColor returns the color of a face when solved.
func (f Face) SolvedColor() Color {
	switch f {
	case U:
		return White
	case D:
		return Yellow
	case F:
		return Green
	case B:
		return Blue
	case R:
		return Red
	case L:
		return Orange
	default:
		panic("cube: unknown face " + f.String())
	}
}

// Normal returns the outward unit normal of the face as a lattice vector.
func (f Face) Normal() LatticePoint {
	switch f {
	case U:
		return LatticePoint{0, 1, 0}
	case D:
		return LatticePoint{0, -1, 0}
	case F:
		return LatticePoint{0, 0, 1}
	case B:
		return LatticePoint{0, 0, -1}
	case R:
		return LatticePoint{1, 0, 0}
	case L:
		return LatticePoint{-1, 0, 0}
	default:
		panic("cube: unknown face " + f.String())
	}
}

// faceFromNormal matches a rotated normal back to its face.
func faceFromNormal(n LatticePoint) Face {
	switch n {
	case LatticePoint{0, 1, 0}:
		return U
	case LatticePoint{0, -1, 0}:
		return D
	case LatticePoint{0, 0, 1}:
		return F
	case LatticePoint{0, 0, -1}:
		return B
	case LatticePoint{1, 0, 0}:
		return R
	case LatticePoint{-1, 0, 0}:
		return L
	}
	panic("cube: invalid face normal " + n.String())
}
