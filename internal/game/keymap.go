package game

import (
	"unicode"

	"github.com/SeamusWaldron/cubeascii/internal/config"
	"github.com/SeamusWaldron/cubeascii/internal/cube"
)

// Keymap turns key names, as bubbletea reports them, into commands.
//
// Arrows orbit; a, w and s do too. d is the D face turn, so only the right
// arrow orbits right.
//
// ' and 2 arm a modifier for the next face letter; an uppercase letter
// forces prime. When both are armed the double turn wins.
type Keymap struct {
	rotate, elevation, roll, zoom float64

	pendingPrime  bool
	pendingDouble bool
}

// NewKeymap uses the camera steps of cfg.
func NewKeymap(cfg config.Config) *Keymap {
	return &Keymap{
		rotate:    cfg.RotateStep,
		elevation: cfg.ElevationStep,
		roll:      cfg.RollStep,
		zoom:      cfg.ZoomStep,
	}
}

// Map returns the command for key, if any.
func (k *Keymap) Map(key string) (Command, bool) {
	switch key {
	case "esc", "ctrl+c", "ctrl+d":
		return Quit(), true
	case " ", "space":
		return Scramble(), true
	case "x", "X":
		return Reset(), true
	case "+", "=":
		return ZoomCamera(-k.zoom), true
	case "-", "_":
		return ZoomCamera(k.zoom), true
	case "q":
		return RollCamera(-k.roll), true
	case "e":
		return RollCamera(k.roll), true
	case "left", "a", "A":
		return RotateCamera(-k.rotate, 0), true
	case "right":
		return RotateCamera(k.rotate, 0), true
	case "up", "w", "W":
		return RotateCamera(0, k.elevation), true
	case "down", "s", "S":
		return RotateCamera(0, -k.elevation), true
	case "'":
		k.pendingPrime = true
		return Command{}, false
	case "2":
		k.pendingDouble = true
		return Command{}, false
	}

	runes := []rune(key)
	if len(runes) != 1 {
		return Command{}, false
	}
	return k.mapLetter(runes[0])
}

// Pending reports the armed modifiers.
func (k *Keymap) Pending() (prime, double bool) {
	return k.pendingPrime, k.pendingDouble
}

// mapLetter consumes the armed modifiers whether or not ch is a face.
func (k *Keymap) mapLetter(ch rune) (Command, bool) {
	prime := k.pendingPrime || unicode.IsUpper(ch)
	double := k.pendingDouble
	k.pendingPrime, k.pendingDouble = false, false

	face, ok := faceLetters[unicode.ToLower(ch)]
	if !ok {
		return Command{}, false
	}

	quarter := 1
	switch {
	case double:
		quarter = 2
	case prime:
		quarter = -1
	}
	m, err := cube.NewMove(face, quarter)
	if err != nil {
		return Command{}, false
	}
	return Twist(m), true
}

var faceLetters = map[rune]cube.Face{
	'u': cube.U,
	'd': cube.D,
	'f': cube.F,
	'b': cube.B,
	'r': cube.R,
	'l': cube.L,
}
