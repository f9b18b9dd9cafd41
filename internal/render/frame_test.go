package render

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/SeamusWaldron/cubeascii/internal/cube"
)

func testFrame() Frame {
	red := InkOf(cube.Red)
	green := InkOf(cube.Green)
	return Frame{
		width:  3,
		height: 2,
		cells: []Cell{
			{'@', red}, {'@', red}, {' ', InkNone},
			{' ', InkNone}, {'#', green}, {'#', green},
		},
	}
}

func TestSerializeRunLength(t *testing.T) {
	got := testFrame().Serialize(NewPalette(termenv.ANSI))
	want := "\x1b[31m@@\x1b[0m \n \x1b[32m##\x1b[0m"
	if got != want {
		t.Errorf("Serialize = %q, want %q", got, want)
	}
}

func TestSerializeColorCarriesAcrossRows(t *testing.T) {
	red := InkOf(cube.Red)
	f := Frame{width: 1, height: 3, cells: []Cell{{'a', red}, {'b', red}, {'c', red}}}
	got := f.Serialize(NewPalette(termenv.ANSI))
	if want := "\x1b[31ma\nb\nc\x1b[0m"; got != want {
		t.Errorf("Serialize = %q, want %q", got, want)
	}
}

func TestSerializeAscii(t *testing.T) {
	got := testFrame().Serialize(NewPalette(termenv.Ascii))
	if strings.Contains(got, "\x1b") {
		t.Errorf("Ascii profile emitted escapes: %q", got)
	}
	if got != "@@ \n ##" {
		t.Errorf("Serialize = %q", got)
	}
	if testFrame().String() != got {
		t.Error("String should match the plain serialization")
	}
}

func TestPaletteTrueColorOrange(t *testing.T) {
	p := NewPalette(termenv.TrueColor)
	if seq := p.fg[InkOf(cube.Orange)]; !strings.HasPrefix(seq, "\x1b[38;2;255;") {
		t.Errorf("orange sequence = %q, want a 24-bit foreground", seq)
	}
	if p.fg[InkNone] != "" {
		t.Error("InkNone must not have a sequence")
	}
}

func TestInkRoundTrip(t *testing.T) {
	for c := cube.Color(0); c < cube.NumColors; c++ {
		got, ok := InkOf(c).Color()
		if !ok || got != c {
			t.Errorf("InkOf(%v).Color() = %v, %v", c, got, ok)
		}
	}
	if _, ok := InkNone.Color(); ok {
		t.Error("InkNone should carry no color")
	}
}

func TestParseProfile(t *testing.T) {
	tests := map[string]termenv.Profile{
		"truecolor": termenv.TrueColor,
		"256":       termenv.ANSI256,
		"16":        termenv.ANSI,
		"none":      termenv.Ascii,
	}
	for name, want := range tests {
		got, ok := ParseProfile(name)
		if !ok || got != want {
			t.Errorf("ParseProfile(%q) = %v, %v", name, got, ok)
		}
	}
	if _, ok := ParseProfile("rainbow"); ok {
		t.Error("unknown profile should not parse")
	}
}
