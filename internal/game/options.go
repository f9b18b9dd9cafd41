package game

import (
	"github.com/SeamusWaldron/cubeascii/internal/cube"
	"github.com/SeamusWaldron/cubeascii/internal/render"
)

// Option configures a Game.
type Option func(*Game)

// WithSeed seeds the default scramble source.
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.seed = seed
		g.seeded = true
	}
}

// WithSource replaces the scramble source entirely.
func WithSource(src cube.Source) Option {
	return func(g *Game) {
		g.src = src
	}
}

// WithJournal records twists, scrambles and resets to j.
func WithJournal(j Journal) Option {
	return func(g *Game) {
		g.journal = j
	}
}

// WithRenderOptions passes options to the renderer.
func WithRenderOptions(opts ...render.Option) Option {
	return func(g *Game) {
		g.renderOpts = append(g.renderOpts, opts...)
	}
}
