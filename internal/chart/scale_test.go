package chart

import (
	"math"
	"testing"
)

func TestScaleWorkedExample(t *testing.T) {
	// width=10, magnitude=1; step 1 gives 10 ticks, 2 gives 5, 3 passes.
	s, err := ScaleFromRange(NewRange(40, 50), 5)
	if err != nil {
		t.Fatal(err)
	}
	if s.Step() != 3 {
		t.Fatalf("step = %v, want 3", s.Step())
	}
	want := []float64{42, 45, 48}
	steps := s.Steps()
	if len(steps) != len(want) {
		t.Fatalf("steps = %v, want %v", steps, want)
	}
	for i := range want {
		if math.Abs(steps[i]-want[i]) > 1e-9 {
			t.Errorf("step[%d] = %v, want %v", i, steps[i], want[i])
		}
	}
}

func TestScaleMonotonicAndInterior(t *testing.T) {
	ranges := []Range{
		NewRange(0, 100),
		NewRange(-40, 110),
		NewRange(0.13, 0.77),
		NewRange(3, 9),
	}
	for _, r := range ranges {
		s, err := ScaleFromRange(r, 6)
		if err != nil {
			t.Fatalf("range %v: %v", r, err)
		}
		steps := s.Steps()
		for i, v := range steps {
			if v <= r.Min() || v >= r.Max() {
				t.Errorf("range %v: tick %v not strictly inside", r, v)
			}
			if i > 0 && steps[i] <= steps[i-1] {
				t.Errorf("range %v: steps not strictly increasing at %d", r, i)
			}
		}
		if float64(len(steps)) >= 6 {
			t.Errorf("range %v: %d ticks exceeds limit", r, len(steps))
		}
	}
}

func TestScaleExcludesExactMax(t *testing.T) {
	// 0..100 with step 20 stops before 100 itself.
	s := ScaleFromRangeWithStep(NewRange(0, 100), 20)
	steps := s.Steps()
	if steps[len(steps)-1] == 100 {
		t.Error("tick equal to range max should be excluded")
	}
}

func TestScaleNoSatisfyingStep(t *testing.T) {
	// Even the largest factor leaves more than 0.1 ticks.
	if _, err := ScaleFromRange(NewRange(0, 10), 0.1); err == nil {
		t.Fatal("expected error when the candidate list is exhausted")
	}
}

func TestScaleLabels(t *testing.T) {
	s := ScaleFromRangeWithStep(NewRange(40, 50), 3)
	if got := s.LabelFor(0); got != "42" {
		t.Errorf("integer label = %q, want \"42\"", got)
	}

	s = ScaleFromRangeWithStep(NewRange(0, 1), 0.1)
	if got := s.LabelFor(0); got != "0.1" {
		t.Errorf("decimal label = %q, want \"0.1\"", got)
	}

	s = ScaleFromRangeWithStep(NewRange(0, 0.1), 0.01)
	if got := s.LabelFor(0); got != "0.01" {
		t.Errorf("two-decimal label = %q, want \"0.01\"", got)
	}
}
