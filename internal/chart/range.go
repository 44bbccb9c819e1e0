// Package chart implements the radial charting engine: calendar-aligned
// series, display ranges, tick scales, and the polar compositor that turns
// normalized values into drawing calls against an injected Canvas.
package chart

// Unit is a scalar position relative to a Range, nominally within [0, 1].
// Values outside that interval are legal and extrapolate.
type Unit float64

// Value returns the scalar.
func (u Unit) Value() float64 {
	return float64(u)
}

// Range is a closed value interval used to map between a data domain and
// normalized units.
type Range struct {
	min, max float64
}

// NewRange returns the range {min, max}. Construction does not enforce
// min <= max; an inverted range marks a series with no present values and
// must be checked with IsValid before use.
func NewRange(min, max float64) Range {
	return Range{min: min, max: max}
}

// Min returns the lower bound.
func (r Range) Min() float64 {
	return r.min
}

// Max returns the upper bound.
func (r Range) Max() float64 {
	return r.max
}

// Width returns max - min.
func (r Range) Width() float64 {
	return r.max - r.min
}

// IsValid reports whether the range is ordered (min <= max).
func (r Range) IsValid() bool {
	return r.min <= r.max
}

// IsDegenerate reports whether the range has zero width.
func (r Range) IsDegenerate() bool {
	return r.min == r.max
}

// Normalize maps v to a Unit relative to the range. A degenerate range maps
// everything to 0 rather than dividing by zero.
func (r Range) Normalize(v float64) Unit {
	w := r.Width()
	if w == 0 {
		return 0
	}
	return Unit((v - r.min) / w)
}

// Project maps a Unit back into the value domain. It is the inverse of
// Normalize up to floating-point rounding.
func (r Range) Project(u Unit) float64 {
	return r.min + u.Value()*r.Width()
}

// Union returns the smallest range covering both a and b. It is how two
// related series (daily max and min temperature, say) come to share one
// value-to-radius mapping.
func Union(a, b Range) Range {
	return Range{
		min: min(a.min, b.min),
		max: max(a.max, b.max),
	}
}
