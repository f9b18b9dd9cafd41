package render

import (
	"github.com/muesli/termenv"

	"github.com/SeamusWaldron/cubeascii/internal/cube"
)

// Ink is a cell's foreground: InkNone or one sticker color.
type Ink uint8

// InkNone leaves the terminal's default foreground.
const InkNone Ink = 0

// InkOf returns the ink for a sticker color.
func InkOf(c cube.Color) Ink {
	return Ink(c) + 1
}

// Color returns the sticker color carried by the ink.
func (i Ink) Color() (cube.Color, bool) {
	if i == InkNone {
		return 0, false
	}
	return cube.Color(i - 1), true
}

// StickerColor returns the terminal color used for a sticker.
func StickerColor(c cube.Color) termenv.Color {
	switch c {
	case cube.White:
		return termenv.ANSIWhite
	case cube.Yellow:
		return termenv.ANSIYellow
	case cube.Red:
		return termenv.ANSIRed
	case cube.Orange:
		return termenv.RGBColor("#ff8c00")
	case cube.Blue:
		return termenv.ANSIBlue
	case cube.Green:
		return termenv.ANSIGreen
	default:
		return termenv.NoColor{}
	}
}

// Palette turns inks into SGR sequences for one terminal color profile.
type Palette struct {
	profile termenv.Profile
	fg      [cube.NumColors + 1]string
	reset   string
}

// NewPalette precomputes the sequences for profile. The Ascii profile
// produces no escape sequences at all.
func NewPalette(profile termenv.Profile) Palette {
	p := Palette{profile: profile}
	if profile == termenv.Ascii {
		return p
	}
	p.reset = termenv.CSI + termenv.ResetSeq + "m"
	for c := cube.Color(0); c < cube.NumColors; c++ {
		seq := profile.Convert(StickerColor(c)).Sequence(false)
		if seq != "" {
			p.fg[InkOf(c)] = termenv.CSI + seq + "m"
		}
	}
	return p
}

// Profile returns the color profile the palette was built for.
func (p Palette) Profile() termenv.Profile {
	return p.profile
}

// ParseProfile maps a config name onto a termenv profile.
// "auto" asks the environment.
func ParseProfile(name string) (termenv.Profile, bool) {
	switch name {
	case "", "auto":
		return termenv.EnvColorProfile(), true
	case "truecolor":
		return termenv.TrueColor, true
	case "256":
		return termenv.ANSI256, true
	case "16", "ansi":
		return termenv.ANSI, true
	case "none", "ascii":
		return termenv.Ascii, true
	}
	return termenv.Ascii, false
}
