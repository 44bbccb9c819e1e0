// Package render composes the three-chart weather banner and rasterizes it
// to PNG. Each chart slot is a radial plot of one station-year: the daily
// temperature envelope, the wind envelope, and precipitation.
package render

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"

	"github.com/kellegous/weather-banner/internal/calendar"
	"github.com/kellegous/weather-banner/internal/chart"
	"github.com/kellegous/weather-banner/internal/gsod"
)

// Options controls banner geometry and curve rendering.
type Options struct {
	Width, Height int

	// Downsample aggregates this many consecutive days per drawn sample.
	Downsample int
	Smooth     bool
	Debug      bool
}

var (
	background = chart.RGB(0xffffff)

	wedgeColors = [2]chart.Color{chart.RGB(0xf4f4f4), chart.RGB(0xe9e9e9)}
	monthColor  = chart.RGB(0x9a9a9a)
	gridColor   = chart.RGBA(0xffffff, 0.8)
	tickColor   = chart.RGB(0x777777)
	textColor   = chart.RGB(0x3a3a3a)

	tempFill   = chart.RGBA(0xe25822, 0.35)
	tempStroke = chart.RGB(0xc74a1b)
	windFill   = chart.RGBA(0x2a6f97, 0.30)
	windStroke = chart.RGB(0x245d7e)
	rainStroke = chart.RGB(0x2d6a4f)
)

// slotStyle builds the Style shared by every chart slot, positioned at
// (cx, cy) with the given outer radius.
func slotStyle(cx, cy, outer float64) chart.Style {
	return chart.Style{
		CenterX:     cx,
		CenterY:     cy,
		Annulus:     chart.NewRange(0.34*outer, 0.86*outer),
		OuterRadius: outer,
		TickLimit:   5,
		WedgeColors: wedgeColors,
		MonthColor:  monthColor,
		GridColor:   gridColor,
		TickColor:   tickColor,
		TextColor:   textColor,
		LineWidth:   1.5,
		LabelFont:   chart.Font{Weight: chart.FontWeightNormal, Size: 11},
		SummaryFont: chart.Font{Weight: chart.FontWeightBold, Size: 14},
	}
}

// Banner renders the station's year into a new image.
func Banner(station *gsod.Station, year calendar.Year, opts Options) (image.Image, error) {
	dc, err := compose(station, year, opts)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// WriteBanner renders the station's year and encodes it as PNG to w.
func WriteBanner(w io.Writer, station *gsod.Station, year calendar.Year, opts Options) error {
	dc, err := compose(station, year, opts)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

func compose(station *gsod.Station, year calendar.Year, opts Options) (*gg.Context, error) {
	if opts.Width <= 0 {
		opts.Width = 1600
	}
	if opts.Height <= 0 {
		opts.Height = 600
	}

	w, h := float64(opts.Width), float64(opts.Height)
	dc := gg.NewContext(opts.Width, opts.Height)
	c := newCanvas(dc)

	c.SetColor(background)
	c.FillRect(0, 0, w, h)

	outer := min(w/6, h/2) - 16
	cy := h / 2
	copts := chart.Options{
		Downsample: opts.Downsample,
		Smooth:     opts.Smooth,
		Debug:      opts.Debug,
	}

	if err := temperatureSlot(c, year, station.Reports, slotStyle(w/6, cy, outer), copts); err != nil {
		return nil, fmt.Errorf("temperature chart: %w", err)
	}
	if err := windSlot(c, year, station.Reports, slotStyle(w/2, cy, outer), copts); err != nil {
		return nil, fmt.Errorf("wind chart: %w", err)
	}
	if err := precipSlot(c, year, station.Reports, slotStyle(5*w/6, cy, outer), copts); err != nil {
		return nil, fmt.Errorf("precipitation chart: %w", err)
	}

	drawTitle(c, station, year, w)
	return dc, nil
}

// drawTitle writes the station name and year across the top of the banner.
func drawTitle(c chart.Canvas, station *gsod.Station, year calendar.Year, w float64) {
	title := fmt.Sprintf("%s  ·  %s", station.Name, year)
	c.SetFont(chart.Font{Weight: chart.FontWeightBold, Size: 16})
	c.SetColor(textColor)
	tw, th := c.TextExtents(title)
	c.DrawText(title, w/2-tw/2, th+6)
}

// temperatureSlot draws the daily max/min temperature envelope. The summary
// figures come from the full-resolution series, before any downsampling.
func temperatureSlot(c chart.Canvas, year calendar.Year, reports []*gsod.Report, st chart.Style, opts chart.Options) error {
	hi := chart.ForEachDay(year, reports, (*gsod.Report).MaxTemp)
	lo := chart.ForEachDay(year, reports, (*gsod.Report).MinTemp)
	mean := chart.ForEachDay(year, reports, (*gsod.Report).MeanTemp)

	st.BandFill = tempFill
	st.BandStroke = tempStroke
	return chart.ComposeBand(c, year, hi, lo, temperatureSummary(hi, lo, mean), st, opts)
}

// temperatureSummary builds the temperature summary lines. The mean series is
// guarded on its own: a file can carry MAX/MIN while TEMP is entirely
// missing, and the AVG line must not be computed from carried-forward zeros.
func temperatureSummary(hi, lo, mean *chart.Series) []string {
	if !chart.Union(hi.Range(), lo.Range()).IsValid() {
		return []string{"temperature", "n/a"}
	}
	lines := []string{fmt.Sprintf("MAX %.0f°", chart.StatsOf(hi).Max)}
	if mean.Range().IsValid() {
		lines = append(lines, fmt.Sprintf("AVG %.0f°", chart.StatsOf(mean).Mean))
	}
	return append(lines, fmt.Sprintf("MIN %.0f°", chart.StatsOf(lo).Min))
}

// windSlot draws the envelope between the daily peak sustained wind and the
// daily mean wind, both in knots.
func windSlot(c chart.Canvas, year calendar.Year, reports []*gsod.Report, st chart.Style, opts chart.Options) error {
	hi := chart.ForEachDay(year, reports, (*gsod.Report).MaxWind)
	lo := chart.ForEachDay(year, reports, (*gsod.Report).MeanWind)

	var summary []string
	if chart.Union(hi.Range(), lo.Range()).IsValid() {
		summary = []string{
			fmt.Sprintf("MAX %.0f kn", chart.StatsOf(hi).Max),
			fmt.Sprintf("AVG %.1f kn", chart.StatsOf(lo).Mean),
		}
	} else {
		summary = []string{"wind", "n/a"}
	}

	st.BandFill = windFill
	st.BandStroke = windStroke
	return chart.ComposeBand(c, year, hi, lo, summary, st, opts)
}

// precipSlot draws daily precipitation as a single curve. Downsampled blocks
// keep their wettest day so dry spells never hide storms.
func precipSlot(c chart.Canvas, year calendar.Year, reports []*gsod.Report, st chart.Style, opts chart.Options) error {
	s := chart.ForEachDay(year, reports, (*gsod.Report).Precip)

	var summary []string
	if s.Range().IsValid() {
		stats := chart.StatsOf(s)
		summary = []string{
			fmt.Sprintf("TOT %.1f in", stats.Total),
			fmt.Sprintf("MAX %.2f in", stats.Max),
		}
	} else {
		summary = []string{"precipitation", "n/a"}
	}

	st.CurveColor = rainStroke
	return chart.ComposeSeries(c, year, s, chart.Max, summary, st, opts)
}
