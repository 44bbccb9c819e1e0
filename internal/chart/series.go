package chart

import (
	"math"

	"github.com/kellegous/weather-banner/internal/calendar"
)

// Series is a dense, fixed-length array of samples aligned to consecutive
// days of a year (or to downsampled blocks thereof), together with the range
// of the originally present values and the indices where the extremes were
// first observed. A Series is immutable once built; WithRange and
// DownsampleBy return new values.
type Series struct {
	vals     []float64
	rng      Range
	minIndex int
	maxIndex int
}

// Aggregate reduces a block of samples to one value during downsampling.
type Aggregate func(vals []float64) float64

// Max aggregates a block to its largest sample.
func Max(vals []float64) float64 {
	v := vals[0]
	for _, x := range vals[1:] {
		if x > v {
			v = x
		}
	}
	return v
}

// Min aggregates a block to its smallest sample.
func Min(vals []float64) float64 {
	v := vals[0]
	for _, x := range vals[1:] {
		if x < v {
			v = x
		}
	}
	return v
}

// Mean aggregates a block to its arithmetic mean.
func Mean(vals []float64) float64 {
	return Sum(vals) / float64(len(vals))
}

// Sum aggregates a block to its total.
func Sum(vals []float64) float64 {
	var t float64
	for _, v := range vals {
		t += v
	}
	return t
}

// Sample is one optional observation.
type Sample struct {
	Value   float64
	Present bool
}

// FromSamples builds a Series by folding the samples left to right. Missing
// samples are filled with the most recent present value (0 before any value
// has been seen) and never contribute to the range. Ties on exact equality
// keep the earliest extremum index: only strict inequalities update.
func FromSamples(samples []Sample) *Series {
	vals := make([]float64, 0, len(samples))
	prev := 0.0
	lo, hi := math.MaxFloat64, -math.MaxFloat64
	loIdx, hiIdx := 0, 0
	for i, s := range samples {
		if !s.Present {
			vals = append(vals, prev)
			continue
		}
		if s.Value > hi {
			hi, hiIdx = s.Value, i
		}
		if s.Value < lo {
			lo, loIdx = s.Value, i
		}
		vals = append(vals, s.Value)
		prev = s.Value
	}
	return &Series{
		vals:     vals,
		rng:      NewRange(lo, hi),
		minIndex: loIdx,
		maxIndex: hiIdx,
	}
}

// ForEachDay builds a Series covering every day of year, in calendar order,
// pulling values out of the day-keyed records via value. Records are indexed
// by ordinal (last write wins on duplicates); days without a record, or for
// which value reports absence, are treated as missing.
func ForEachDay[T interface{ Day() calendar.Day }](year calendar.Year, records []T, value func(T) (float64, bool)) *Series {
	idx := make(map[int]T, len(records))
	for _, rec := range records {
		idx[rec.Day().Ordinal()] = rec
	}

	days := year.EachDay()
	samples := make([]Sample, len(days))
	for i, day := range days {
		rec, ok := idx[day.Ordinal()]
		if !ok {
			continue
		}
		if v, ok := value(rec); ok {
			samples[i] = Sample{Value: v, Present: true}
		}
	}
	return FromSamples(samples)
}

// Len returns the number of samples.
func (s *Series) Len() int {
	return len(s.vals)
}

// Values returns the dense sample array. Callers must not modify it.
func (s *Series) Values() []float64 {
	return s.vals
}

// Range returns the display range.
func (s *Series) Range() Range {
	return s.rng
}

// MinIndex returns the index where the smallest present value was first seen.
func (s *Series) MinIndex() int {
	return s.minIndex
}

// MaxIndex returns the index where the largest present value was first seen.
func (s *Series) MaxIndex() int {
	return s.maxIndex
}

// WithRange returns a copy of the series with a replaced display range. The
// samples and extremum indices are unchanged.
func (s *Series) WithRange(r Range) *Series {
	return &Series{
		vals:     s.vals,
		rng:      r,
		minIndex: s.minIndex,
		maxIndex: s.maxIndex,
	}
}

// Get returns the sample at i with circular indexing: any integer is legal,
// negative indices count back from the end and indices beyond the length
// wrap around.
func (s *Series) Get(i int) float64 {
	n := len(s.vals)
	return s.vals[((i%n)+n)%n]
}

// GetNormalized returns the sample at i mapped through the display range.
func (s *Series) GetNormalized(i int) Unit {
	return s.rng.Normalize(s.Get(i))
}

// DownsampleBy partitions the samples into floor(n/k) contiguous blocks of
// exactly k and aggregates each with agg; any remainder at the tail is
// dropped. The extremum indices of the result are the original indices
// divided by k — an approximation of their new position, not a
// recomputation.
func (s *Series) DownsampleBy(k int, agg Aggregate) *Series {
	m := len(s.vals) / k
	vals := make([]float64, m)
	for i := 0; i < m; i++ {
		j := i * k
		vals[i] = agg(s.vals[j : j+k])
	}
	return &Series{
		vals:     vals,
		rng:      s.rng,
		minIndex: s.minIndex / k,
		maxIndex: s.maxIndex / k,
	}
}
