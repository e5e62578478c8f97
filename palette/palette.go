// Package palette generates sequences of visually distinct RGB colors.
//
// A Palette is a lazy, infinite stream: every Next call advances the shared
// generator state, so there is no rewind and no exhaustion. Never try to
// collect "all" of it; draw the number of colors you need with Take.
package palette

// Palette wraps a Generator and yields ready-to-use RGB colors. Two holders
// of the same Palette observe a single, monotonically advancing stream.
type Palette struct {
	gen *Generator
}

// NewPalette creates a palette of the given type. See NewGenerator for the
// meaning of adjacent and src.
func NewPalette(t Type, adjacent bool, src Source) *Palette {
	return &Palette{gen: NewGenerator(t, adjacent, src)}
}

// Next produces the next color in the stream.
func (p *Palette) Next() Color {
	hsv := p.gen.Next()
	return HSVToRGB(hsv.Hue, hsv.Saturation, hsv.Value)
}

// Take draws the next n colors from the stream.
func (p *Palette) Take(n int) []Color {
	colors := make([]Color, 0, n)
	for i := 0; i < n; i++ {
		colors = append(colors, p.Next())
	}
	return colors
}

// Inner exposes the underlying HSV generator for callers that want the raw
// triples instead of converted colors. Draws through it advance the same
// stream as Next.
func (p *Palette) Inner() *Generator {
	return p.gen
}
