// Package game wires the cube, the camera and the renderer behind a small
// command surface driven by the terminal loop.
package game

import (
	"fmt"

	"github.com/SeamusWaldron/cubeascii/internal/cube"
)

// Kind identifies a command.
type Kind int

const (
	KindRotateCamera Kind = iota
	KindRollCamera
	KindZoomCamera
	KindTwist
	KindScramble
	KindReset
	KindQuit
)

func (k Kind) String() string {
	switch k {
	case KindRotateCamera:
		return "rotate"
	case KindRollCamera:
		return "roll"
	case KindZoomCamera:
		return "zoom"
	case KindTwist:
		return "twist"
	case KindScramble:
		return "scramble"
	case KindReset:
		return "reset"
	case KindQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Command is one discrete input. Only the fields of its Kind are set.
type Command struct {
	Kind   Kind
	DTheta float64
	DPhi   float64
	Delta  float64 // roll or zoom amount
	Move   cube.Move
}

func RotateCamera(dTheta, dPhi float64) Command {
	return Command{Kind: KindRotateCamera, DTheta: dTheta, DPhi: dPhi}
}

func RollCamera(delta float64) Command { return Command{Kind: KindRollCamera, Delta: delta} }
func ZoomCamera(delta float64) Command { return Command{Kind: KindZoomCamera, Delta: delta} }
func Twist(m cube.Move) Command        { return Command{Kind: KindTwist, Move: m} }
func Scramble() Command                { return Command{Kind: KindScramble} }
func Reset() Command                   { return Command{Kind: KindReset} }
func Quit() Command                    { return Command{Kind: KindQuit} }

func (c Command) String() string {
	switch c.Kind {
	case KindRotateCamera:
		return fmt.Sprintf("rotate(%.3f, %.3f)", c.DTheta, c.DPhi)
	case KindRollCamera, KindZoomCamera:
		return fmt.Sprintf("%s(%.3f)", c.Kind, c.Delta)
	case KindTwist:
		return "twist " + c.Move.String()
	default:
		return c.Kind.String()
	}
}
