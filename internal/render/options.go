package render

// DefaultRamp orders glyphs from darkest to brightest.
const DefaultRamp = " .:-=+*#%@"

// Option configures a Renderer.
type Option func(*Renderer)

// WithRamp replaces the glyph ramp. Ramps shorter than two glyphs are ignored.
func WithRamp(ramp string) Option {
	return func(r *Renderer) {
		if runes := []rune(ramp); len(runes) >= 2 {
			r.ramp = runes
		}
	}
}
