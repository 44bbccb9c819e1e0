// Package calendar provides cheap value types for the year, month, and day
// partitions that drive angular position in the radial charts. Everything is
// derived on demand from time.Time; nothing here holds state.
package calendar

import "time"

// Year represents one calendar year, [Jan 1, Jan 1 of the next year).
type Year struct {
	start time.Time
}

// YearOf returns the Year with the given ordinal (e.g. 2023).
func YearOf(ord int) Year {
	return Year{start: time.Date(ord, time.January, 1, 0, 0, 0, 0, time.UTC)}
}

// YearContaining returns the Year that contains t.
func YearContaining(t time.Time) Year {
	return YearOf(t.Year())
}

// Start returns Jan 1 of the year.
func (y Year) Start() time.Time {
	return y.start
}

// End returns Jan 1 of the following year (exclusive bound).
func (y Year) End() time.Time {
	return time.Date(y.start.Year()+1, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// Days returns the number of days in the year (365 or 366).
func (y Year) Days() int {
	return int(y.End().Sub(y.start).Hours() / 24)
}

// Ordinal returns the year number.
func (y Year) Ordinal() int {
	return y.start.Year()
}

// Next returns the following year.
func (y Year) Next() Year {
	return YearOf(y.start.Year() + 1)
}

// EachDay returns the days of the year in calendar order.
func (y Year) EachDay() []Day {
	days := make([]Day, 0, y.Days())
	for d := (Day{t: y.start}); d.t.Before(y.End()); d = d.Next() {
		days = append(days, d)
	}
	return days
}

// EachMonth returns the 12 months of the year in order.
func (y Year) EachMonth() []Month {
	months := make([]Month, 0, 12)
	end := MonthOf(y.End())
	for m := MonthOf(y.start); m.start.Before(end.start); m = m.Next() {
		months = append(months, m)
	}
	return months
}

func (y Year) String() string {
	return y.start.Format("2006")
}

// Month represents one calendar month, identified by its first day.
type Month struct {
	start time.Time
}

// MonthOf returns the Month containing t.
func MonthOf(t time.Time) Month {
	return Month{
		start: time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC),
	}
}

// Start returns the first day of the month.
func (m Month) Start() time.Time {
	return m.start
}

// End returns the first day of the next month, rolling December into
// January of the following year.
func (m Month) End() time.Time {
	yr, mo := m.start.Year(), m.start.Month()
	if mo == time.December {
		return time.Date(yr+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(yr, mo+1, 1, 0, 0, 0, 0, time.UTC)
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return int(m.End().Sub(m.start).Hours() / 24)
}

// Year returns the year containing the month.
func (m Month) Year() Year {
	return YearOf(m.start.Year())
}

// Next returns the following month.
func (m Month) Next() Month {
	return Month{start: m.End()}
}

// EachDay returns the days of the month in calendar order.
func (m Month) EachDay() []Day {
	days := make([]Day, 0, m.Days())
	for d := (Day{t: m.start}); d.t.Before(m.End()); d = d.Next() {
		days = append(days, d)
	}
	return days
}

func (m Month) String() string {
	return m.start.Format("2006-01")
}

// Day wraps a single calendar date.
type Day struct {
	t time.Time
}

// DayOf returns the Day containing t.
func DayOf(t time.Time) Day {
	return Day{
		t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC),
	}
}

// Date returns the underlying date at midnight UTC.
func (d Day) Date() time.Time {
	return d.t
}

// Ordinal returns the 1-based day-of-year, leap-year aware.
func (d Day) Ordinal() int {
	return d.t.YearDay()
}

// Month returns the month containing the day.
func (d Day) Month() Month {
	return MonthOf(d.t)
}

// Year returns the year containing the day.
func (d Day) Year() Year {
	return YearOf(d.t.Year())
}

// Next returns the following calendar day.
func (d Day) Next() Day {
	return Day{t: d.t.AddDate(0, 0, 1)}
}

// Prev returns the preceding calendar day.
func (d Day) Prev() Day {
	return Day{t: d.t.AddDate(0, 0, -1)}
}

func (d Day) String() string {
	return d.t.Format("2006-01-02")
}
