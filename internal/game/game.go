package game

import (
	"math/rand/v2"

	"github.com/SeamusWaldron/cubeascii/internal/config"
	"github.com/SeamusWaldron/cubeascii/internal/cube"
	"github.com/SeamusWaldron/cubeascii/internal/logging"
	"github.com/SeamusWaldron/cubeascii/internal/render"
)

// Journal event kinds.
const (
	EventMove     = "move"
	EventScramble = "scramble"
	EventReset    = "reset"
)

// Journal receives the state-changing commands of a session.
type Journal interface {
	Record(kind, notation string) error
}

// Game holds all mutable state of one run. It is driven from a single
// goroutine: Dispatch and Tick mutate, Render reads.
type Game struct {
	cfg      config.Config
	cube     *cube.Cube
	camera   *render.Camera
	renderer *render.Renderer
	orbiter  *render.Orbiter

	seed       uint64
	seeded     bool
	src        cube.Source
	journal    Journal
	journalErr error
	renderOpts []render.Option

	viewport     render.Viewport
	lastScramble []cube.Move
	twists       int
}

// New creates a solved cube and the startup camera.
func New(table *cube.Table, cfg config.Config, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		cube:   cube.New(table),
		camera: render.NewCamera(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if !g.seeded {
		g.seed = rand.Uint64()
	}
	if g.src == nil {
		g.src = rand.New(rand.NewPCG(g.seed, g.seed))
	}
	if cfg.Inertia {
		g.orbiter = render.NewOrbiter(cfg.FPS)
	}

	projector := render.NewProjector(render.NewMeshTable(table))
	g.renderer = render.NewRenderer(projector, g.renderOpts...)
	return g
}

// Dispatch applies cmd and reports whether the game keeps running.
func (g *Game) Dispatch(cmd Command) bool {
	logging.Logger().Debug("command", "cmd", cmd.String())

	switch cmd.Kind {
	case KindRotateCamera:
		if g.orbiter != nil {
			g.orbiter.Impulse(cmd.DTheta, cmd.DPhi, 0, 0)
		} else {
			g.camera.Orbit(cmd.DTheta, cmd.DPhi)
		}
	case KindRollCamera:
		if g.orbiter != nil {
			g.orbiter.Impulse(0, 0, cmd.Delta, 0)
		} else {
			g.camera.Roll(cmd.Delta)
		}
	case KindZoomCamera:
		if g.orbiter != nil {
			g.orbiter.Impulse(0, 0, 0, cmd.Delta)
		} else {
			g.camera.Zoom(cmd.Delta)
		}
	case KindTwist:
		g.cube.ApplyMove(cmd.Move)
		g.twists++
		g.record(EventMove, cmd.Move.String())
	case KindScramble:
		g.lastScramble = g.cube.Scramble(g.cfg.ScrambleLength, g.src)
		notation := cube.FormatSequence(g.lastScramble)
		logging.Logger().Info("scramble", "moves", notation)
		g.record(EventScramble, notation)
	case KindReset:
		g.cube.Reset()
		g.lastScramble = nil
		g.record(EventReset, "")
	case KindQuit:
		return false
	}
	return true
}

func (g *Game) record(kind, notation string) {
	if g.journal == nil {
		return
	}
	if err := g.journal.Record(kind, notation); err != nil {
		g.journalErr = err
		logging.Logger().Warn("journal write failed", "kind", kind, "error", err)
	}
}

// Tick advances camera inertia by one frame.
func (g *Game) Tick() {
	if g.orbiter != nil {
		g.orbiter.Step(g.camera)
	}
}

// Render draws the current state into a frame of vp's size.
func (g *Game) Render(vp render.Viewport) render.Frame {
	if vp != g.viewport {
		logging.Logger().Debug("viewport", "width", vp.Width, "height", vp.Height)
		g.viewport = vp
	}
	return g.renderer.Render(g.cube, g.camera, vp)
}

// Cube returns the live cube.
func (g *Game) Cube() *cube.Cube { return g.cube }

// Camera returns the live camera.
func (g *Game) Camera() *render.Camera { return g.camera }

// Seed returns the seed of the default scramble source.
func (g *Game) Seed() uint64 { return g.seed }

// LastScramble returns the moves of the latest scramble since the last reset.
func (g *Game) LastScramble() []cube.Move { return g.lastScramble }

// Twists returns how many face turns the player made.
func (g *Game) Twists() int { return g.twists }

// JournalErr returns the most recent journal failure, if any.
func (g *Game) JournalErr() error { return g.journalErr }
