package cube

// Source supplies uniform picks in [0, n). *rand.Rand from math/rand/v2
// satisfies it.
type Source interface {
	IntN(n int) int
}

// Scramble applies length random moves drawn uniformly from AllMoves,
// redrawing any move that shares the previous move's axis.
// It returns the applied sequence.
func (c *Cube) Scramble(length int, src Source) []Move {
	return c.scrambleFrom(AllMoves(), length, src)
}

func (c *Cube) scrambleFrom(moves []Move, length int, src Source) []Move {
	if length <= 0 {
		return nil
	}
	axes := make(map[Axis]bool)
	for _, m := range moves {
		axes[m.Axis()] = true
	}
	if len(axes) < 2 {
		panic("cube: scramble needs moves on at least two axes")
	}

	applied := make([]Move, 0, length)
	var last Axis
	hasLast := false
	for len(applied) < length {
		m := moves[src.IntN(len(moves))]
		if hasLast && m.Axis() == last {
			continue
		}
		c.ApplyMove(m)
		applied = append(applied, m)
		last, hasLast = m.Axis(), true
	}
	return applied
}
