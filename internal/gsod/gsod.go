// Package gsod decodes NOAA Global Summary of the Day archives: one tar.gz
// per year containing one CSV per station. Metric fields use sentinel values
// for missing observations, so every accessor reports presence explicitly.
package gsod

import (
	"fmt"
	"strconv"
	"time"

	"github.com/kellegous/weather-banner/internal/calendar"
)

// Missing-value sentinels from the GSOD format description.
const (
	missingTemp   = 9999.9
	missingWind   = 999.9
	missingPrecip = 99.99
)

// Report is one station-day summary. Raw values keep GSOD's native units:
// degrees Fahrenheit, knots, inches.
type Report struct {
	day calendar.Day

	temp  float64
	tmax  float64
	tmin  float64
	wdsp  float64
	mxspd float64
	gust  float64
	prcp  float64
}

// Day returns the calendar day the report covers.
func (r *Report) Day() calendar.Day {
	return r.day
}

// MeanTemp returns the mean temperature in °F, if observed.
func (r *Report) MeanTemp() (float64, bool) {
	return r.temp, r.temp != missingTemp
}

// MaxTemp returns the day's maximum temperature in °F, if observed.
func (r *Report) MaxTemp() (float64, bool) {
	return r.tmax, r.tmax != missingTemp
}

// MinTemp returns the day's minimum temperature in °F, if observed.
func (r *Report) MinTemp() (float64, bool) {
	return r.tmin, r.tmin != missingTemp
}

// MeanWind returns the mean wind speed in knots, if observed.
func (r *Report) MeanWind() (float64, bool) {
	return r.wdsp, r.wdsp != missingWind
}

// MaxWind returns the maximum sustained wind speed in knots, if observed.
func (r *Report) MaxWind() (float64, bool) {
	return r.mxspd, r.mxspd != missingWind
}

// Gust returns the peak gust in knots, if observed.
func (r *Report) Gust() (float64, bool) {
	return r.gust, r.gust != missingWind
}

// Precip returns the day's precipitation in inches, if observed.
func (r *Report) Precip() (float64, bool) {
	return r.prcp, r.prcp != missingPrecip
}

// columns maps a CSV header row to field indexes.
type columns map[string]int

func (c columns) float(row []string, name string, missing float64) float64 {
	i, ok := c[name]
	if !ok || i >= len(row) || row[i] == "" {
		return missing
	}
	v, err := strconv.ParseFloat(row[i], 64)
	if err != nil {
		return missing
	}
	return v
}

func (c columns) str(row []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// reportFromRow decodes one CSV data row.
func reportFromRow(cols columns, row []string) (*Report, error) {
	date := cols.str(row, "DATE")
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid DATE %q: %w", date, err)
	}
	return &Report{
		day:   calendar.DayOf(t),
		temp:  cols.float(row, "TEMP", missingTemp),
		tmax:  cols.float(row, "MAX", missingTemp),
		tmin:  cols.float(row, "MIN", missingTemp),
		wdsp:  cols.float(row, "WDSP", missingWind),
		mxspd: cols.float(row, "MXSPD", missingWind),
		gust:  cols.float(row, "GUST", missingWind),
		prcp:  cols.float(row, "PRCP", missingPrecip),
	}, nil
}
