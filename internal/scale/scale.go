// Package scale derives the sequential colour scale used to shade the map.
package scale

import (
	"errors"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"loanmap/internal/aggregate"
	dErrors "loanmap/pkg/domain-errors"
)

// ErrEmptyDomain is returned when the year chosen as the domain source has no
// entry with data.
var ErrEmptyDomain = dErrors.New(dErrors.CodeInvariantViolation, "colour scale domain has no valid values")

// ylGn is the nine-class ColorBrewer YlGn scheme, light to dark.
var ylGn = mustPalette(
	"#ffffe5", "#f7fcb9", "#d9f0a3", "#addd8e", "#78c679",
	"#41ab5d", "#238443", "#006837", "#004529",
)

func mustPalette(hexes ...string) []colorful.Color {
	out := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(err)
		}
		out[i] = c
	}
	return out
}

// ColorScale maps a value in [min, max] onto the YlGn ramp. Values outside the
// domain clamp to the nearest end.
type ColorScale struct {
	min, max float64
}

// NewColorScale builds a scale over [min, max]. Bounds are swapped if reversed.
func NewColorScale(min, max float64) (*ColorScale, error) {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil, dErrors.New(dErrors.CodeValidation, "colour scale bounds must be finite")
	}
	if min > max {
		min, max = max, min
	}
	return &ColorScale{min: min, max: max}, nil
}

// Build derives the scale from the first year in index iteration order,
// ignoring entries without data.
func Build(index *aggregate.Index) (*ColorScale, error) {
	if index == nil {
		return nil, ErrEmptyDomain
	}
	first, ok := index.First()
	if !ok {
		return nil, ErrEmptyDomain
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, code := range first.Regions() {
		e, _ := first.Entry(code)
		if !e.HasData() {
			continue
		}
		lo = math.Min(lo, e.NormalizedTotal)
		hi = math.Max(hi, e.NormalizedTotal)
	}
	if math.IsInf(lo, 1) {
		return nil, ErrEmptyDomain
	}
	return NewColorScale(lo, hi)
}

// Domain returns the scale bounds.
func (s *ColorScale) Domain() (min, max float64) {
	return s.min, s.max
}

// Position maps v onto [0, 1]. A degenerate domain maps everything to 0.5.
func (s *ColorScale) Position(v float64) float64 {
	if s.max == s.min {
		return 0.5
	}
	t := (v - s.min) / (s.max - s.min)
	return math.Max(0, math.Min(1, t))
}

// Color returns the #rrggbb colour for v. NaN maps to the empty string so
// callers cannot mistake missing data for the low end of the ramp.
func (s *ColorScale) Color(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return Interpolate(s.Position(v)).Hex()
}

// Interpolate samples the YlGn ramp at t in [0, 1] with a uniform cubic
// B-spline through the palette, per channel.
func Interpolate(t float64) colorful.Color {
	t = math.Max(0, math.Min(1, t))
	r := make([]float64, len(ylGn))
	g := make([]float64, len(ylGn))
	b := make([]float64, len(ylGn))
	for i, c := range ylGn {
		r[i], g[i], b[i] = c.R, c.G, c.B
	}
	return colorful.Color{R: basisSpline(r, t), G: basisSpline(g, t), B: basisSpline(b, t)}.Clamped()
}

func basisSpline(values []float64, t float64) float64 {
	n := len(values) - 1
	var i int
	switch {
	case t <= 0:
		i = 0
	case t >= 1:
		i = n - 1
	default:
		i = int(math.Floor(t * float64(n)))
	}
	v1, v2 := values[i], values[i+1]
	v0 := 2*v1 - v2
	if i > 0 {
		v0 = values[i-1]
	}
	v3 := 2*v2 - v1
	if i < n-1 {
		v3 = values[i+2]
	}
	return basis((t-float64(i)/float64(n))*float64(n), v0, v1, v2, v3)
}

func basis(t1, v0, v1, v2, v3 float64) float64 {
	t2 := t1 * t1
	t3 := t2 * t1
	return ((1-3*t1+3*t2-t3)*v0 +
		(4-6*t2+3*t3)*v1 +
		(1+3*t1+3*t2-3*t3)*v2 +
		t3*v3) / 6
}

// IsEmptyDomain reports whether err is ErrEmptyDomain.
func IsEmptyDomain(err error) bool {
	return errors.Is(err, ErrEmptyDomain)
}
