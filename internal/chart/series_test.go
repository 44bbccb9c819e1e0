package chart

import (
	"math"
	"testing"

	"github.com/kellegous/weather-banner/internal/calendar"
)

type fakeRecord struct {
	day calendar.Day
	val float64
	ok  bool
}

func (r fakeRecord) Day() calendar.Day {
	return r.day
}

func dayOfYear(year, ord int) calendar.Day {
	d := calendar.YearOf(year).Start().AddDate(0, 0, ord-1)
	return calendar.DayOf(d)
}

func TestForEachDaySparse(t *testing.T) {
	// A metric present only on day 1 (50) and day 3 (40) of 2023.
	year := calendar.YearOf(2023)
	records := []fakeRecord{
		{day: dayOfYear(2023, 1), val: 50, ok: true},
		{day: dayOfYear(2023, 3), val: 40, ok: true},
	}
	s := ForEachDay(year, records, func(r fakeRecord) (float64, bool) {
		return r.val, r.ok
	})

	if s.Len() != 365 {
		t.Fatalf("length = %d, want 365", s.Len())
	}
	vals := s.Values()
	if vals[0] != 50 || vals[1] != 50 {
		t.Errorf("days 1-2 = %v, %v; want 50 (value then carried)", vals[0], vals[1])
	}
	for i := 2; i < 365; i++ {
		if vals[i] != 40 {
			t.Fatalf("day %d = %v, want 40 (carried)", i+1, vals[i])
		}
	}
	if r := s.Range(); r.Min() != 40 || r.Max() != 50 {
		t.Errorf("range = [%v, %v], want [40, 50]", r.Min(), r.Max())
	}
	if s.MaxIndex() != 0 {
		t.Errorf("max index = %d, want 0", s.MaxIndex())
	}
	if s.MinIndex() != 2 {
		t.Errorf("min index = %d, want 2", s.MinIndex())
	}
}

func TestForEachDayAbsentMetric(t *testing.T) {
	year := calendar.YearOf(2023)
	records := []fakeRecord{
		{day: dayOfYear(2023, 10), ok: false},
	}
	s := ForEachDay(year, records, func(r fakeRecord) (float64, bool) {
		return r.val, r.ok
	})
	if s.Range().IsValid() {
		t.Error("series with zero present values should have an inverted range")
	}
	for _, v := range s.Values() {
		if v != 0 {
			t.Fatalf("all-missing series should carry the 0 seed, got %v", v)
		}
	}
}

func TestForEachDayDuplicateOrdinals(t *testing.T) {
	year := calendar.YearOf(2023)
	records := []fakeRecord{
		{day: dayOfYear(2023, 5), val: 1, ok: true},
		{day: dayOfYear(2023, 5), val: 2, ok: true},
	}
	s := ForEachDay(year, records, func(r fakeRecord) (float64, bool) {
		return r.val, r.ok
	})
	if got := s.Values()[4]; got != 2 {
		t.Errorf("duplicate ordinal should be last-write-wins, got %v", got)
	}
}

func TestRangeTracksPresentValuesOnly(t *testing.T) {
	// The carried-forward 9s must not widen or narrow the range.
	s := FromSamples([]Sample{
		{Value: 9, Present: true},
		{},
		{},
		{Value: 3, Present: true},
		{},
	})
	if r := s.Range(); r.Min() != 3 || r.Max() != 9 {
		t.Errorf("range = [%v, %v], want [3, 9]", r.Min(), r.Max())
	}
}

func TestExtremumTieKeepsEarliestIndex(t *testing.T) {
	s := FromSamples([]Sample{
		{Value: 5, Present: true},
		{Value: 5, Present: true},
		{Value: 5, Present: true},
	})
	if s.MaxIndex() != 0 || s.MinIndex() != 0 {
		t.Errorf("tie should keep earliest index, got max=%d min=%d", s.MaxIndex(), s.MinIndex())
	}
}

func TestGetCircular(t *testing.T) {
	s := FromSamples([]Sample{
		{Value: 1, Present: true},
		{Value: 2, Present: true},
		{Value: 3, Present: true},
	})
	tests := []struct {
		i    int
		want float64
	}{
		{0, 1}, {1, 2}, {2, 3},
		{3, 1}, {4, 2}, {7, 2},
		{-1, 3}, {-2, 2}, {-3, 1}, {-4, 3},
	}
	for _, tt := range tests {
		if got := s.Get(tt.i); got != tt.want {
			t.Errorf("Get(%d) = %v, want %v", tt.i, got, tt.want)
		}
	}
	// get(i) == get(i + k*n) for assorted k.
	for i := -5; i <= 5; i++ {
		for k := -3; k <= 3; k++ {
			if s.Get(i) != s.Get(i+k*3) {
				t.Fatalf("Get(%d) != Get(%d)", i, i+k*3)
			}
		}
	}
}

func TestGetNormalized(t *testing.T) {
	s := FromSamples([]Sample{
		{Value: 10, Present: true},
		{Value: 20, Present: true},
	})
	if got := s.GetNormalized(0).Value(); got != 0 {
		t.Errorf("normalized min = %v, want 0", got)
	}
	if got := s.GetNormalized(1).Value(); got != 1 {
		t.Errorf("normalized max = %v, want 1", got)
	}
}

func TestWithRange(t *testing.T) {
	s := FromSamples([]Sample{
		{Value: 10, Present: true},
		{Value: 20, Present: true},
	})
	shared := NewRange(0, 40)
	s2 := s.WithRange(shared)
	if s2.Range() != shared {
		t.Errorf("range = %v, want %v", s2.Range(), shared)
	}
	if got := s2.GetNormalized(1).Value(); got != 0.5 {
		t.Errorf("normalized under shared range = %v, want 0.5", got)
	}
	// The original is untouched.
	if s.Range().Min() != 10 {
		t.Error("WithRange must not mutate the receiver")
	}
	if s2.MaxIndex() != s.MaxIndex() || s2.MinIndex() != s.MinIndex() {
		t.Error("WithRange must keep extremum indices")
	}
}

func TestDownsampleWorkedExample(t *testing.T) {
	// Dense array from the sparse 2023 example: [50, 50, 40, 40, ...].
	year := calendar.YearOf(2023)
	records := []fakeRecord{
		{day: dayOfYear(2023, 1), val: 50, ok: true},
		{day: dayOfYear(2023, 3), val: 40, ok: true},
	}
	s := ForEachDay(year, records, func(r fakeRecord) (float64, bool) {
		return r.val, r.ok
	})

	d := s.DownsampleBy(2, Max)
	if d.Len() != 182 {
		t.Fatalf("length = %d, want 182 (odd remainder dropped)", d.Len())
	}
	if d.Values()[0] != 50 || d.Values()[1] != 40 {
		t.Errorf("first blocks = %v, %v; want 50, 40", d.Values()[0], d.Values()[1])
	}
	if d.MaxIndex() != 0 {
		t.Errorf("max index = %d, want 0", d.MaxIndex())
	}
	if d.MinIndex() != 1 {
		t.Errorf("min index = %d, want 1", d.MinIndex())
	}
}

func TestDownsampleLengthLaw(t *testing.T) {
	samples := make([]Sample, 100)
	for i := range samples {
		samples[i] = Sample{Value: float64(i), Present: true}
	}
	s := FromSamples(samples)
	for _, k := range []int{1, 2, 3, 7, 33, 100} {
		d := s.DownsampleBy(k, Mean)
		if want := 100 / k; d.Len() != want {
			t.Errorf("DownsampleBy(%d) length = %d, want %d", k, d.Len(), want)
		}
	}
}

func TestAggregates(t *testing.T) {
	vals := []float64{4, -1, 7, 2}
	if got := Max(vals); got != 7 {
		t.Errorf("Max = %v", got)
	}
	if got := Min(vals); got != -1 {
		t.Errorf("Min = %v", got)
	}
	if got := Sum(vals); got != 12 {
		t.Errorf("Sum = %v", got)
	}
	if got := Mean(vals); got != 3 {
		t.Errorf("Mean = %v", got)
	}
}

func TestStatsOf(t *testing.T) {
	s := FromSamples([]Sample{
		{Value: 2, Present: true},
		{Value: 4, Present: true},
		{Value: 6, Present: true},
	})
	st := StatsOf(s)
	if st.Min != 2 || st.Max != 6 || st.Total != 12 {
		t.Errorf("stats = %+v", st)
	}
	if math.Abs(st.Mean-4) > 1e-12 {
		t.Errorf("mean = %v, want 4", st.Mean)
	}
}
