package cube

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidNotation is returned when move notation cannot be parsed.
var ErrInvalidNotation = errors.New("cube: invalid move notation")

// Direction is the sense of a quarter turn about an axis.
type Direction int

const (
	Clockwise        Direction = 1
	CounterClockwise Direction = -1
)

// Move is one of the 18 face turns.
type Move uint8

const (
	MoveU Move = iota
	MoveUPrime
	MoveU2
	MoveD
	MoveDPrime
	MoveD2
	MoveF
	MoveFPrime
	MoveF2
	MoveB
	MoveBPrime
	MoveB2
	MoveR
	MoveRPrime
	MoveR2
	MoveL
	MoveLPrime
	MoveL2

	NumMoves = 18
)

// Turn is the quarter-turn descriptor a move expands to.
type Turn struct {
	Axis      Axis
	Layer     int8
	Direction Direction
	Count     int
}

// Directions are in the rotatePair sense, chosen so that every move turns
// its face clockwise when looked at from outside the cube.
var moveTurns = [NumMoves]Turn{
	MoveU:      {AxisY, 1, CounterClockwise, 1},
	MoveUPrime: {AxisY, 1, Clockwise, 1},
	MoveU2:     {AxisY, 1, CounterClockwise, 2},
	MoveD:      {AxisY, -1, Clockwise, 1},
	MoveDPrime: {AxisY, -1, CounterClockwise, 1},
	MoveD2:     {AxisY, -1, Clockwise, 2},
	MoveF:      {AxisZ, 1, Clockwise, 1},
	MoveFPrime: {AxisZ, 1, CounterClockwise, 1},
	MoveF2:     {AxisZ, 1, Clockwise, 2},
	MoveB:      {AxisZ, -1, CounterClockwise, 1},
	MoveBPrime: {AxisZ, -1, Clockwise, 1},
	MoveB2:     {AxisZ, -1, CounterClockwise, 2},
	MoveR:      {AxisX, 1, Clockwise, 1},
	MoveRPrime: {AxisX, 1, CounterClockwise, 1},
	MoveR2:     {AxisX, 1, Clockwise, 2},
	MoveL:      {AxisX, -1, CounterClockwise, 1},
	MoveLPrime: {AxisX, -1, Clockwise, 1},
	MoveL2:     {AxisX, -1, CounterClockwise, 2},
}

// AllMoves returns every move in declaration order.
func AllMoves() []Move {
	out := make([]Move, NumMoves)
	for i := range out {
		out[i] = Move(i)
	}
	return out
}

// NewMove builds the move that turns face by quarter (1 = CW, -1 = CCW, 2 = half).
func NewMove(face Face, quarter int) (Move, error) {
	var base Move
	switch face {
	case U:
		base = MoveU
	case D:
		base = MoveD
	case F:
		base = MoveF
	case B:
		base = MoveB
	case R:
		base = MoveR
	case L:
		base = MoveL
	default:
		return 0, fmt.Errorf("%w: face %d", ErrInvalidNotation, face)
	}
	switch quarter {
	case 1:
		return base, nil
	case -1:
		return base + 1, nil
	case 2, -2:
		return base + 2, nil
	}
	return 0, fmt.Errorf("%w: turn %d", ErrInvalidNotation, quarter)
}

// Turn returns the quarter-turn descriptor.
func (m Move) Turn() Turn {
	return moveTurns[m]
}

// Axis returns the rotation axis of the move.
func (m Move) Axis() Axis {
	return moveTurns[m].Axis
}

// Face returns the face the move turns.
func (m Move) Face() Face {
	return Faces[m/3]
}

// IsHalf reports whether the move is a 180 degree turn.
func (m Move) IsHalf() bool {
	return m%3 == 2
}

// Inverse returns the move that undoes m.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	switch m % 3 {
	case 0:
		return m + 1
	case 1:
		return m - 1
	}
	return m
}

// String returns standard notation: U, U', U2.
func (m Move) String() string {
	if m >= NumMoves {
		return "?"
	}
	suffix := ""
	switch m % 3 {
	case 1:
		suffix = "'"
	case 2:
		suffix = "2"
	}
	return m.Face().String() + suffix
}

// ParseMove parses standard notation such as R, R', R2.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	var face Face
	switch s[0] {
	case 'U':
		face = U
	case 'D':
		face = D
	case 'F':
		face = F
	case 'B':
		face = B
	case 'R':
		face = R
	case 'L':
		face = L
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	quarter := 1
	if len(s) == 2 {
		switch s[1] {
		case '\'':
			quarter = -1
		case '2':
			quarter = 2
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
	}
	return NewMove(face, quarter)
}

// ParseSequence parses whitespace separated notation, e.g. "R U R' U'".
func ParseSequence(s string) ([]Move, error) {
	fields := strings.Fields(s)
	moves := make([]Move, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatSequence joins moves with single spaces.
func FormatSequence(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
