package chart

import (
	"fmt"
	"math"
)

// stepFactors are the candidate multipliers of the range's magnitude, tried
// in ascending order.
var stepFactors = []float64{1, 2, 3, 5, 10, 20, 30, 50}

// Scale is a strictly increasing sequence of round tick values for a range,
// together with the step size that generated them.
type Scale struct {
	step  float64
	steps []float64
}

// ScaleFromRange picks the smallest step from the candidate list that keeps
// the tick count under lim and generates the ticks. It returns an error when
// no candidate satisfies lim; that configuration is unsupported for
// auto-scaling and must not silently degrade.
func ScaleFromRange(r Range, lim float64) (*Scale, error) {
	w := r.Width()
	mag := math.Pow(10, math.Floor(math.Log10(w)-1))
	for _, fac := range stepFactors {
		step := fac * mag
		if w/step < lim {
			return ScaleFromRangeWithStep(r, step), nil
		}
	}
	return nil, fmt.Errorf("no tick step for range [%f, %f] within %f ticks", r.Min(), r.Max(), lim)
}

// ScaleFromRangeWithStep generates ticks at multiples of step, starting at
// the smallest multiple strictly greater than r.Min and stopping strictly
// before r.Max.
func ScaleFromRangeWithStep(r Range, step float64) *Scale {
	v := math.Floor(r.Min()/step)*step + step
	var steps []float64
	for ; v < r.Max(); v += step {
		steps = append(steps, v)
	}
	return &Scale{step: step, steps: steps}
}

// Step returns the generating step size.
func (s *Scale) Step() float64 {
	return s.step
}

// Steps returns the tick values in increasing order.
func (s *Scale) Steps() []float64 {
	return s.steps
}

// LabelFor formats the i-th tick: integers when the step is at least 1,
// otherwise with the decimal precision implied by the step's order of
// magnitude (step 0.1 gives one decimal place).
func (s *Scale) LabelFor(i int) string {
	v := s.steps[i]
	if s.step >= 1 {
		return fmt.Sprintf("%d", int(v))
	}
	p := int(math.Abs(math.Floor(math.Log10(s.step))))
	return fmt.Sprintf("%.*f", p, v)
}
