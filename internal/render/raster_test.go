package render

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/SeamusWaldron/cubeascii/internal/cube"
	"github.com/SeamusWaldron/cubeascii/internal/math3d"
)

func square(x0, y0, x1, y1 float64) [4]math3d.Vec2 {
	return [4]math3d.Vec2{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func newTestRenderer() *Renderer {
	_, p := newTestScene()
	return NewRenderer(p)
}

func TestRenderEmptyViewport(t *testing.T) {
	c, p := newTestScene()
	r := NewRenderer(p)
	for _, vp := range []Viewport{{0, 10}, {10, 0}, {0, 0}} {
		f := r.Render(c, NewCamera(), vp)
		if f.Len() != 0 || f.Width() != 0 || f.Height() != 0 {
			t.Errorf("Render(%v) = %dx%d with %d cells, want empty", vp, f.Width(), f.Height(), f.Len())
		}
		if got := f.Serialize(NewPalette(termenv.ANSI)); got != "\x1b[0m" {
			t.Errorf("Serialize = %q, want reset only", got)
		}
	}
}

func TestDepthNearestWins(t *testing.T) {
	near := ProjectedFace{Points: square(2, 2, 8, 8), Depth: 1, Brightness: 1, Color: cube.Red}
	far := ProjectedFace{Points: square(0, 0, 10, 10), Depth: 2, Brightness: 0.3, Color: cube.Blue}

	orders := map[string][]ProjectedFace{
		"near first": {near, far},
		"far first":  {far, near},
	}
	for name, faces := range orders {
		t.Run(name, func(t *testing.T) {
			r := newTestRenderer()
			r.canvas.ensureSize(12, 12)
			r.canvas.clear()
			for i := range faces {
				r.drawFace(&faces[i])
			}
			f := r.canvas.frame()
			if got := f.At(5, 5); got.Ink != InkOf(cube.Red) || got.Glyph != '@' {
				t.Errorf("overlap cell = %+v, want red '@'", got)
			}
			if got := f.At(1, 1); got.Ink != InkOf(cube.Blue) {
				t.Errorf("far-only cell = %+v, want blue", got)
			}
			if got := f.At(11, 11); got != blankCell {
				t.Errorf("uncovered cell = %+v, want blank", got)
			}
		})
	}
}

func TestFillIsWindingAgnostic(t *testing.T) {
	cw := ProjectedFace{Points: square(1, 1, 6, 6), Depth: 1, Brightness: 1, Color: cube.Green}
	ccw := cw
	ccw.Points = [4]math3d.Vec2{cw.Points[0], cw.Points[3], cw.Points[2], cw.Points[1]}

	var frames []Frame
	for _, face := range []ProjectedFace{cw, ccw} {
		r := newTestRenderer()
		r.canvas.ensureSize(8, 8)
		r.canvas.clear()
		r.drawFace(&face)
		frames = append(frames, r.canvas.frame())
	}
	if frames[0].String() != frames[1].String() {
		t.Errorf("windings differ:\n%s\n--\n%s", frames[0], frames[1])
	}
	if !strings.Contains(frames[0].String(), "@") {
		t.Error("square was not filled")
	}
}

func TestGlyphRamp(t *testing.T) {
	r := newTestRenderer()
	tests := []struct {
		brightness float64
		want       rune
	}{
		{-1, ' '},
		{0, ' '},
		{0.5, '+'},
		{1, '@'},
		{3, '@'},
	}
	for _, tc := range tests {
		if got := r.glyph(tc.brightness); got != tc.want {
			t.Errorf("glyph(%v) = %q, want %q", tc.brightness, got, tc.want)
		}
	}

	custom := NewRenderer(nil, WithRamp("ab"))
	if custom.glyph(0.4) != 'a' || custom.glyph(0.6) != 'b' {
		t.Error("custom ramp not used")
	}
	ignored := NewRenderer(nil, WithRamp("x"))
	if string(ignored.ramp) != DefaultRamp {
		t.Error("single glyph ramp should be ignored")
	}
}

func TestRenderShowsOnlyVisibleFaces(t *testing.T) {
	c, p := newTestScene()
	r := NewRenderer(p)
	f := r.Render(c, NewCamera(), Viewport{Width: 100, Height: 50})
	if f.Width() != 100 || f.Height() != 50 || f.Len() != 5000 {
		t.Fatalf("frame %dx%d (%d cells)", f.Width(), f.Height(), f.Len())
	}

	seen := make(map[cube.Color]int)
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			if col, ok := f.At(x, y).Ink.Color(); ok {
				seen[col]++
			}
		}
	}
	for _, hidden := range []cube.Color{cube.Yellow, cube.Blue, cube.Orange} {
		if seen[hidden] != 0 {
			t.Errorf("%v painted %d cells from a culled face", hidden, seen[hidden])
		}
	}
	for _, visible := range []cube.Color{cube.White, cube.Green, cube.Red} {
		if seen[visible] == 0 {
			t.Errorf("%v face not painted", visible)
		}
	}
}

func TestRenderReusesCanvas(t *testing.T) {
	c, p := newTestScene()
	r := NewRenderer(p)
	cam := NewCamera()

	r.Render(c, cam, Viewport{Width: 40, Height: 20})
	backing := &r.canvas.cells[0]

	f := r.Render(c, cam, Viewport{Width: 20, Height: 10})
	if &r.canvas.cells[0] != backing {
		t.Error("shrinking the viewport should reuse the canvas")
	}
	if f.Width() != 20 || f.Height() != 10 || f.Len() != 200 {
		t.Errorf("frame %dx%d (%d cells), want 20x10", f.Width(), f.Height(), f.Len())
	}

	again := r.Render(c, cam, Viewport{Width: 20, Height: 10})
	if again.String() != f.String() {
		t.Error("same input should render the same frame")
	}
}

func TestRenderFrameIsSnapshot(t *testing.T) {
	c, p := newTestScene()
	r := NewRenderer(p)
	cam := NewCamera()
	vp := Viewport{Width: 40, Height: 20}

	first := r.Render(c, cam, vp)
	text := first.String()
	c.ApplyMove(cube.MoveR)
	r.Render(c, cam, vp)
	if first.String() != text {
		t.Error("a returned frame must not change on later renders")
	}
}
