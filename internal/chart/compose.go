package chart

import (
	"fmt"
	"math"

	"github.com/kellegous/weather-banner/internal/calendar"
)

// Style holds the fixed visual parameters of one chart slot.
type Style struct {
	CenterX, CenterY float64

	// Annulus is the radius interval normalized values project into.
	Annulus Range

	// OuterRadius is the outer edge of the month ring.
	OuterRadius float64

	// TickLimit bounds the number of scale ticks.
	TickLimit float64

	// WedgeColors alternate across the twelve month wedges.
	WedgeColors [2]Color

	MonthColor Color
	GridColor  Color
	TickColor  Color
	TextColor  Color

	CurveColor Color
	BandFill   Color
	BandStroke Color

	LineWidth float64

	LabelFont   Font
	SummaryFont Font
}

// Options mirrors the engine's render configuration.
type Options struct {
	// Downsample aggregates this many consecutive days per drawn sample.
	Downsample int
	Smooth     bool
	Debug      bool
}

// Stats are annual summary figures. They are computed from the dense,
// pre-downsample samples so the displayed numbers reflect the full year no
// matter how coarsely the curve is drawn.
type Stats struct {
	Min, Max, Mean, Total float64
}

// StatsOf computes summary figures over the series' samples.
func StatsOf(s *Series) Stats {
	vals := s.Values()
	return Stats{
		Min:   Min(vals),
		Max:   Max(vals),
		Mean:  Mean(vals),
		Total: Sum(vals),
	}
}

// displayRange makes a range safe for projection and scale generation: an
// inverted range (a series with no present values) falls back to {0, 1} and
// a flat range is padded by one unit either side.
func displayRange(r Range) Range {
	if !r.IsValid() {
		return NewRange(0, 1)
	}
	if r.IsDegenerate() {
		return NewRange(r.Min()-1, r.Max()+1)
	}
	return r
}

// ComposeBand renders one chart slot for a pair of related series: month
// wedges, tick gridlines and labels, the min/max envelope between lo and hi,
// and the centered summary. The two series are forced onto their combined
// range so they share a single value-to-radius mapping; downsampling happens
// after the range is fixed so the scale reflects full-resolution data.
func ComposeBand(c Canvas, year calendar.Year, hi, lo *Series, summary []string, st Style, opts Options) error {
	shared := displayRange(Union(hi.Range(), lo.Range()))
	hi = hi.WithRange(shared)
	lo = lo.WithRange(shared)

	if opts.Downsample > 1 {
		if opts.Downsample > hi.Len() {
			return fmt.Errorf("downsample factor %d exceeds %d samples", opts.Downsample, hi.Len())
		}
		hi = hi.DownsampleBy(opts.Downsample, Max)
		lo = lo.DownsampleBy(opts.Downsample, Min)
	}

	scale, err := ScaleFromRange(shared, st.TickLimit)
	if err != nil {
		return err
	}

	drawMonthRing(c, year, st)
	drawGrid(c, scale, shared, st)

	c.SetLineWidth(st.LineWidth)
	FillBand(c, hi, lo, st.CenterX, st.CenterY, st.Annulus, opts.Smooth, st.BandFill, st.BandStroke)

	drawTickLabels(c, scale, shared, st)
	drawSummary(c, summary, st)

	if opts.Debug {
		drawDebug(c, hi, st)
	}
	return nil
}

// ComposeSeries renders one chart slot for a single series.
func ComposeSeries(c Canvas, year calendar.Year, s *Series, agg Aggregate, summary []string, st Style, opts Options) error {
	rng := displayRange(s.Range())
	s = s.WithRange(rng)

	if opts.Downsample > 1 {
		if opts.Downsample > s.Len() {
			return fmt.Errorf("downsample factor %d exceeds %d samples", opts.Downsample, s.Len())
		}
		s = s.DownsampleBy(opts.Downsample, agg)
	}

	scale, err := ScaleFromRange(rng, st.TickLimit)
	if err != nil {
		return err
	}

	drawMonthRing(c, year, st)
	drawGrid(c, scale, rng, st)

	c.SetColor(st.CurveColor)
	c.SetLineWidth(st.LineWidth)
	StrokeRadial(c, s, st.CenterX, st.CenterY, st.Annulus, opts.Smooth)

	drawTickLabels(c, scale, rng, st)
	drawSummary(c, summary, st)

	if opts.Debug {
		drawDebug(c, s, st)
	}
	return nil
}

// monthSpan returns the year-fraction interval covered by m.
func monthSpan(year calendar.Year, m calendar.Month) (f0, f1 float64) {
	n := float64(year.Days())
	f0 = float64(calendar.DayOf(m.Start()).Ordinal()-1) / n
	if m.End().Year() != year.Ordinal() {
		return f0, 1
	}
	f1 = float64(calendar.DayOf(m.End()).Ordinal()-1) / n
	return f0, f1
}

// drawMonthRing paints the twelve angular wedges spanning the year and
// labels each with its abbreviated name at its mid-angle.
func drawMonthRing(c Canvas, year calendar.Year, st Style) {
	cx, cy := st.CenterX, st.CenterY
	inner := st.Annulus.Min()

	for i, m := range year.EachMonth() {
		f0, f1 := monthSpan(year, m)
		a0, a1 := AngleOf(f0), AngleOf(f1)

		c.SetColor(st.WedgeColors[i%2])
		c.MoveTo(cx+inner*math.Cos(a0), cy+inner*math.Sin(a0))
		c.Arc(cx, cy, st.OuterRadius, a0, a1)
		c.ArcNegative(cx, cy, inner, a1, a0)
		c.ClosePath()
		c.Fill()

		drawMonthLabel(c, m.Start().Format("Jan"), (a0+a1)/2, st)
	}
}

// drawMonthLabel draws the label tangentially at the wedge's mid-angle,
// flipped on the lower half of the circle so it never reads upside down.
func drawMonthLabel(c Canvas, label string, mid float64, st Style) {
	c.SetFont(st.LabelFont)
	c.SetColor(st.MonthColor)
	w, h := c.TextExtents(label)

	r := st.OuterRadius - h
	rot := mid + Tau/4
	if math.Sin(mid) > 0 {
		// Lower half: flip and tuck the baseline inside the ring.
		rot += Tau / 2
		r -= h
	}

	c.Save()
	c.Translate(st.CenterX+r*math.Cos(mid), st.CenterY+r*math.Sin(mid))
	c.Rotate(rot)
	c.DrawText(label, -w/2, 0)
	c.Restore()
}

// drawGrid strokes one circular gridline per tick.
func drawGrid(c Canvas, scale *Scale, rng Range, st Style) {
	c.SetColor(st.GridColor)
	c.SetLineWidth(1)
	for _, v := range scale.Steps() {
		r := st.Annulus.Project(rng.Normalize(v))
		c.MoveTo(st.CenterX+r, st.CenterY)
		c.Arc(st.CenterX, st.CenterY, r, 0, Tau)
		c.ClosePath()
		c.Stroke()
	}
}

// drawTickLabels writes the tick values along the upward vertical axis, one
// side of the annulus.
func drawTickLabels(c Canvas, scale *Scale, rng Range, st Style) {
	c.SetFont(st.LabelFont)
	c.SetColor(st.TickColor)
	for i, v := range scale.Steps() {
		r := st.Annulus.Project(rng.Normalize(v))
		label := scale.LabelFor(i)
		w, _ := c.TextExtents(label)
		c.DrawText(label, st.CenterX-w-3, st.CenterY-r-2)
	}
}

// drawSummary centers the summary lines on the chart.
func drawSummary(c Canvas, lines []string, st Style) {
	c.SetFont(st.SummaryFont)
	c.SetColor(st.TextColor)

	lh := st.SummaryFont.Size * 1.4
	y := st.CenterY - lh*float64(len(lines)-1)/2
	for _, line := range lines {
		w, h := c.TextExtents(line)
		c.DrawText(line, st.CenterX-w/2, y+h/2)
		y += lh
	}
}

// drawDebug overlays the annulus bounds and the extremum samples.
func drawDebug(c Canvas, s *Series, st Style) {
	cx, cy := st.CenterX, st.CenterY

	c.SetColor(RGB(0xff00ff))
	c.SetLineWidth(1)
	for _, r := range []float64{st.Annulus.Min(), st.Annulus.Max()} {
		c.MoveTo(cx+r, cy)
		c.Arc(cx, cy, r, 0, Tau)
		c.ClosePath()
		c.Stroke()
	}

	c.MoveTo(cx-4, cy)
	c.LineTo(cx+4, cy)
	c.Stroke()
	c.MoveTo(cx, cy-4)
	c.LineTo(cx, cy+4)
	c.Stroke()

	n := s.Len()
	for _, i := range []int{s.MaxIndex(), s.MinIndex()} {
		x, y, _, _ := radialPoint(cx, cy, s, st.Annulus, i, n)
		c.MoveTo(x+3, y)
		c.Arc(x, y, 3, 0, Tau)
		c.ClosePath()
		c.Fill()
	}
}
