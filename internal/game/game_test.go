package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/SeamusWaldron/cubeascii/internal/config"
	"github.com/SeamusWaldron/cubeascii/internal/cube"
	"github.com/SeamusWaldron/cubeascii/internal/render"
)

type fakeJournal struct {
	kinds     []string
	notations []string
	err       error
}

func (f *fakeJournal) Record(kind, notation string) error {
	if f.err != nil {
		return f.err
	}
	f.kinds = append(f.kinds, kind)
	f.notations = append(f.notations, notation)
	return nil
}

func newTestGame(opts ...Option) *Game {
	return New(cube.NewTable(), config.Default(), append([]Option{WithSeed(7)}, opts...)...)
}

func TestDispatchTwistAndReset(t *testing.T) {
	g := newTestGame()
	if !g.Cube().IsSolved() {
		t.Fatal("new game should start solved")
	}

	if !g.Dispatch(Twist(cube.MoveR)) {
		t.Error("twist should keep running")
	}
	if g.Cube().IsSolved() {
		t.Error("R should break the solved state")
	}
	g.Dispatch(Twist(cube.MoveRPrime))
	if !g.Cube().IsSolved() {
		t.Errorf("R R' should restore:\n%s", g.Cube())
	}
	if g.Twists() != 2 {
		t.Errorf("twists = %d, want 2", g.Twists())
	}

	g.Dispatch(Twist(cube.MoveF))
	g.Dispatch(Reset())
	if !g.Cube().IsSolved() {
		t.Error("reset should solve")
	}
}

func TestDispatchQuit(t *testing.T) {
	if newTestGame().Dispatch(Quit()) {
		t.Error("quit should stop the game")
	}
}

func TestScrambleIsSeeded(t *testing.T) {
	a := newTestGame()
	b := newTestGame()
	a.Dispatch(Scramble())
	b.Dispatch(Scramble())

	if len(a.LastScramble()) != config.Default().ScrambleLength {
		t.Errorf("scramble length = %d", len(a.LastScramble()))
	}
	if cube.FormatSequence(a.LastScramble()) != cube.FormatSequence(b.LastScramble()) {
		t.Error("same seed should scramble the same way")
	}
	if !a.Cube().Equal(b.Cube()) || a.Cube().IsSolved() {
		t.Error("scrambled cubes should match and be unsolved")
	}

	a.Dispatch(Reset())
	if a.LastScramble() != nil {
		t.Error("reset should forget the scramble")
	}
}

func TestCameraCommandsClamp(t *testing.T) {
	g := newTestGame()
	g.Dispatch(ZoomCamera(1000))
	if g.Camera().Radius() != render.CameraMaxRadius {
		t.Errorf("radius = %v", g.Camera().Radius())
	}
	g.Dispatch(RotateCamera(0, 10))
	if g.Camera().Phi() != render.MaxElevation {
		t.Errorf("phi = %v", g.Camera().Phi())
	}
	g.Dispatch(RollCamera(-10))
	if g.Camera().RollAngle() >= 0 {
		t.Errorf("roll = %v", g.Camera().RollAngle())
	}
}

func TestInertiaMovesOnTick(t *testing.T) {
	cfg := config.Default()
	cfg.Inertia = true
	g := New(cube.NewTable(), cfg, WithSeed(1))

	start := g.Camera().Theta()
	g.Dispatch(RotateCamera(cfg.RotateStep, 0))
	if g.Camera().Theta() != start {
		t.Error("with inertia the camera moves on Tick, not on Dispatch")
	}
	for i := 0; i < 5*cfg.FPS; i++ {
		g.Tick()
	}
	if g.Camera().Theta() <= start {
		t.Errorf("theta = %v, want past %v", g.Camera().Theta(), start)
	}
}

func TestJournalReceivesStateChanges(t *testing.T) {
	j := &fakeJournal{}
	g := newTestGame(WithJournal(j))

	g.Dispatch(RotateCamera(0.1, 0))
	g.Dispatch(Twist(cube.MoveU2))
	g.Dispatch(Scramble())
	g.Dispatch(Reset())

	want := []string{EventMove, EventScramble, EventReset}
	if strings.Join(j.kinds, ",") != strings.Join(want, ",") {
		t.Errorf("kinds = %v, want %v", j.kinds, want)
	}
	if j.notations[0] != "U2" {
		t.Errorf("move notation = %q", j.notations[0])
	}
	if seq, err := cube.ParseSequence(j.notations[1]); err != nil || len(seq) != config.Default().ScrambleLength {
		t.Errorf("scramble notation %q: %v", j.notations[1], err)
	}
}

func TestJournalFailureIsNotFatal(t *testing.T) {
	boom := errors.New("disk full")
	g := newTestGame(WithJournal(&fakeJournal{err: boom}))

	if !g.Dispatch(Twist(cube.MoveL)) {
		t.Error("journal failure must not stop the game")
	}
	if !errors.Is(g.JournalErr(), boom) {
		t.Errorf("JournalErr = %v", g.JournalErr())
	}
	if g.Cube().IsSolved() {
		t.Error("the move should still apply")
	}
}

func TestRenderFrameSize(t *testing.T) {
	g := newTestGame(WithRenderOptions(render.WithRamp(" #")))
	f := g.Render(render.Viewport{Width: 30, Height: 12})
	if f.Width() != 30 || f.Height() != 12 {
		t.Errorf("frame %dx%d", f.Width(), f.Height())
	}
	if !strings.Contains(f.String(), "#") {
		t.Errorf("custom ramp not used:\n%s", f)
	}
	if g.Render(render.Viewport{}).Len() != 0 {
		t.Error("empty viewport should render nothing")
	}
}

func TestCommandString(t *testing.T) {
	if got := Twist(cube.MoveBPrime).String(); got != "twist B'" {
		t.Errorf("String = %q", got)
	}
	if got := ZoomCamera(0.5).String(); got != "zoom(0.500)" {
		t.Errorf("String = %q", got)
	}
}
