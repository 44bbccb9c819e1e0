package chart

import "math"

// Tau is one full turn.
const Tau = 2 * math.Pi

// bezierArc is the control-point distance factor for approximating a
// circular arc with a single cubic Bezier span.
const bezierArc = 0.55

// AngleOf maps a fraction of the year in [0, 1] to its angle: fraction 0
// sits at the top of the circle and angle increases clockwise.
func AngleOf(fraction float64) float64 {
	return fraction*Tau - Tau/4
}

// arcChordLength is the chord length subtended by angle t at radius r.
func arcChordLength(r, t float64) float64 {
	dx := r*math.Cos(t) - r
	dy := r * math.Sin(t)
	return math.Hypot(dx, dy)
}

// radialPoint converts a sample index to canvas coordinates.
func radialPoint(cx, cy float64, s *Series, rr Range, i, n int) (x, y, angle, r float64) {
	angle = AngleOf(float64(i) / float64(n))
	r = rr.Project(s.GetNormalized(i))
	return cx + r*math.Cos(angle), cy + r*math.Sin(angle), angle, r
}

// traceRadial appends the closed loop of s to the current path, one sample
// per angular step, wrapping from the last sample back to the first. With
// smooth set, consecutive samples are joined by cubic Beziers whose control
// points lie along the angular tangent at each endpoint; otherwise by
// chords. A negative dir traces the loop end to start with the tangents
// mirrored, which is how the inner edge of a band runs.
func traceRadial(c Canvas, s *Series, cx, cy float64, rr Range, smooth bool, dir int, move bool) {
	n := s.Len()
	dt := Tau / float64(n)

	i := 0
	if dir < 0 {
		i = n
	}

	x, y, a, r := radialPoint(cx, cy, s, rr, i, n)
	if move {
		c.MoveTo(x, y)
	} else {
		c.LineTo(x, y)
	}

	for k := 0; k < n; k++ {
		px, py, pa, pr := x, y, a, r
		i += dir
		x, y, a, r = radialPoint(cx, cy, s, rr, i, n)
		if !smooth {
			c.LineTo(x, y)
			continue
		}

		// Control points sit along the direction of travel at each
		// endpoint: the angular tangent, scaled by the arc-chord length
		// for one angular step at that endpoint's radius.
		d1 := bezierArc * arcChordLength(pr, dt) * float64(dir)
		d2 := bezierArc * arcChordLength(r, dt) * float64(dir)
		c.CurveTo(
			px-d1*math.Sin(pa), py+d1*math.Cos(pa),
			x+d2*math.Sin(a), y-d2*math.Cos(a),
			x, y)
	}
}

// StrokeRadial draws s as a closed loop around the full turn using the
// current color and line width.
func StrokeRadial(c Canvas, s *Series, cx, cy float64, rr Range, smooth bool) {
	traceRadial(c, s, cx, cy, rr, smooth, 1, true)
	c.ClosePath()
	c.Stroke()
}

// FillBand draws the region between hi and lo as one closed path: hi traced
// forward around the circle, lo traced backward with the smoothing rule
// mirrored. The region is filled with fill and outlined with outline. Both
// series must have the same length.
func FillBand(c Canvas, hi, lo *Series, cx, cy float64, rr Range, smooth bool, fill, outline Color) {
	traceRadial(c, hi, cx, cy, rr, smooth, 1, true)
	traceRadial(c, lo, cx, cy, rr, smooth, -1, false)
	c.ClosePath()

	c.SetColor(fill)
	c.FillPreserve()
	c.SetColor(outline)
	c.Stroke()
}
