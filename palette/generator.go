package palette

import "fmt"

// Type selects the saturation/value ranges colors are sampled from. It does
// not affect how hues are stepped.
type Type string

const (
	// TypeRandom samples wide saturation/value ranges, bounded away from
	// pure white and pure black.
	TypeRandom Type = "random"
	// TypePastel biases toward high value and moderate saturation.
	TypePastel Type = "pastel"
	// TypeDark biases toward low value.
	TypeDark Type = "dark"
)

// ParseType parses a palette type name.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeRandom, TypePastel, TypeDark:
		return Type(s), nil
	}
	return "", fmt.Errorf("palette: unknown palette type %q", s)
}

// Source is the injected randomness capability consumed by generators. It
// must return uniformly distributed floats in [0, 1). *math/rand.Rand
// satisfies it; tests inject fixed sequences for deterministic output.
type Source interface {
	Float64() float64
}

// HSV is a hue/saturation/value triple with hue in [0, 360) degrees and
// saturation and value in [0, 1].
type HSV struct {
	Hue        float64
	Saturation float64
	Value      float64
}

type span struct {
	min, max float64
}

func (s span) sample(src Source) float64 {
	return s.min + src.Float64()*(s.max-s.min)
}

type ranges struct {
	saturation span
	value      span
}

// presetRanges maps each palette type to the saturation/value spans sampled
// on every draw. Looked up once at construction.
var presetRanges = map[Type]ranges{
	TypeRandom: {saturation: span{0.40, 1.00}, value: span{0.20, 0.85}},
	TypePastel: {saturation: span{0.10, 0.30}, value: span{0.70, 1.00}},
	TypeDark:   {saturation: span{0.30, 0.80}, value: span{0.10, 0.30}},
}

const (
	// spreadStep is the fixed angular advance per draw when colors should be
	// spread across the hue wheel. Not a divisor of 360, so the walk keeps
	// landing on fresh hues for a long time.
	spreadStep = 80.0
	// adjacentJitterMax bounds the random per-draw hue advance when colors
	// should cluster: each draw moves the hue by [0, 25) degrees.
	adjacentJitterMax = 25.0
)

// Generator produces an unbounded sequence of HSV triples. It holds the
// current hue and the preset ranges and advances in place on every Next call.
// A Generator is single-consumer state: it is not safe for concurrent use,
// callers that share one must serialize access themselves.
type Generator struct {
	hue      float64
	step     float64
	adjacent bool
	ranges   ranges
	src      Source
}

// NewGenerator creates a generator whose initial hue is picked from src.
// When adjacent is true consecutive hues stay within a small jitter of each
// other; when false they advance by a fixed large step so consecutive colors
// are maximally distinct. Unknown types fall back to TypeRandom.
func NewGenerator(t Type, adjacent bool, src Source) *Generator {
	r, ok := presetRanges[t]
	if !ok {
		r = presetRanges[TypeRandom]
	}
	g := &Generator{
		hue:      src.Float64() * 360.0,
		adjacent: adjacent,
		ranges:   r,
		src:      src,
	}
	if !adjacent {
		g.step = spreadStep
	}
	return g
}

// Next advances the hue, samples saturation and value within the preset
// ranges and returns the resulting triple. It never fails and never blocks;
// the sequence has no terminal state. Draws from the source happen in a fixed
// order (hue jitter when adjacent, then saturation, then value) so identical
// sources yield identical sequences.
func (g *Generator) Next() HSV {
	step := g.step
	if g.adjacent {
		step = g.src.Float64() * adjacentJitterMax
	}
	g.hue = wrapHue(g.hue + step)
	return HSV{
		Hue:        g.hue,
		Saturation: g.ranges.saturation.sample(g.src),
		Value:      g.ranges.value.sample(g.src),
	}
}
