package chart

import (
	"math"
	"testing"
)

func constantSeries(n int, v float64) *Series {
	samples := make([]Sample, n)
	for i := range samples {
		samples[i] = Sample{Value: v, Present: true}
	}
	return FromSamples(samples)
}

func TestAngleOf(t *testing.T) {
	if got := AngleOf(0); got != -Tau/4 {
		t.Errorf("AngleOf(0) = %v, want %v (top of circle)", got, -Tau/4)
	}
	if got := AngleOf(0.25); math.Abs(got) > 1e-12 {
		t.Errorf("AngleOf(0.25) = %v, want 0 (right, clockwise)", got)
	}
	if got := AngleOf(0.5); math.Abs(got-Tau/4) > 1e-12 {
		t.Errorf("AngleOf(0.5) = %v, want %v (bottom)", got, Tau/4)
	}
}

func TestArcChordLength(t *testing.T) {
	// A quarter-turn chord at radius 1 is sqrt(2).
	if got := arcChordLength(1, Tau/4); math.Abs(got-math.Sqrt2) > 1e-12 {
		t.Errorf("quarter-turn chord = %v, want sqrt(2)", got)
	}
	// A half-turn chord is the diameter.
	if got := arcChordLength(3, Tau/2); math.Abs(got-6) > 1e-12 {
		t.Errorf("half-turn chord = %v, want 6", got)
	}
	if got := arcChordLength(5, 0); got != 0 {
		t.Errorf("zero-angle chord = %v, want 0", got)
	}
}

func TestStrokeRadialChords(t *testing.T) {
	// A flat series on a degenerate range projects onto the annulus floor.
	s := constantSeries(4, 10).WithRange(NewRange(0, 20))
	rec := &recorder{}
	StrokeRadial(rec, s, 100, 100, NewRange(40, 80), false)

	mv, ok := rec.first("move-to")
	if !ok {
		t.Fatal("no move-to recorded")
	}
	// Sample 0 sits at the top: (cx, cy - r) with r = midpoint radius 60.
	if math.Abs(mv.args[0]-100) > 1e-9 || math.Abs(mv.args[1]-40) > 1e-9 {
		t.Errorf("first point = (%v, %v), want (100, 40)", mv.args[0], mv.args[1])
	}
	if got := rec.count("line-to"); got != 4 {
		t.Errorf("line-to count = %d, want 4 (loop wraps to start)", got)
	}
	if rec.count("close-path") != 1 || rec.count("stroke") != 1 {
		t.Error("stroke path must be closed and stroked once")
	}

	// The wrap segment returns to the starting point.
	var last canvasCall
	for _, c := range rec.calls {
		if c.op == "line-to" {
			last = c
		}
	}
	if math.Abs(last.args[0]-100) > 1e-9 || math.Abs(last.args[1]-40) > 1e-9 {
		t.Errorf("loop ends at (%v, %v), want (100, 40)", last.args[0], last.args[1])
	}
}

func TestStrokeRadialSmooth(t *testing.T) {
	s := constantSeries(8, 1).WithRange(NewRange(0, 2))
	rec := &recorder{}
	StrokeRadial(rec, s, 0, 0, NewRange(0, 100), true)

	if got := rec.count("curve-to"); got != 8 {
		t.Fatalf("curve-to count = %d, want 8", got)
	}
	if rec.count("line-to") != 0 {
		t.Error("smoothed loop should have no chords")
	}

	// Control points sit at 0.55 x chord distance from their endpoints,
	// along the tangent: for a constant radius the first control point of
	// the first span is (d, -r) from center with r=50.
	cv, _ := rec.first("curve-to")
	dt := Tau / 8
	d := bezierArc * arcChordLength(50, dt)
	if math.Abs(cv.args[0]-d) > 1e-9 || math.Abs(cv.args[1]-(-50)) > 1e-9 {
		t.Errorf("control 1 = (%v, %v), want (%v, -50)", cv.args[0], cv.args[1], d)
	}
}

func TestFillBandPathOrder(t *testing.T) {
	hi := constantSeries(6, 8).WithRange(NewRange(0, 10))
	lo := constantSeries(6, 2).WithRange(NewRange(0, 10))
	rec := &recorder{}
	FillBand(rec, hi, lo, 0, 0, NewRange(10, 110), false, RGBA(0xff0000, 0.3), RGB(0xff0000))

	// One closed path: outer loop forward, inner loop backward, then
	// fill-preserve and stroke with separate colors.
	if got := rec.count("move-to"); got != 1 {
		t.Errorf("move-to count = %d, want 1 (single closed path)", got)
	}
	if got := rec.count("line-to"); got != 13 {
		// 6 outer segments + transition to the inner loop + 6 inner.
		t.Errorf("line-to count = %d, want 13", got)
	}
	if rec.count("fill-preserve") != 1 || rec.count("stroke") != 1 {
		t.Error("band must fill (preserving the path) then stroke")
	}
	if got := rec.count("set-color"); got != 2 {
		t.Errorf("set-color count = %d, want 2 (fill then outline)", got)
	}

	// The outer loop runs at radius 90, the inner at 30; the transition
	// happens at the top of the circle.
	mv, _ := rec.first("move-to")
	if math.Abs(mv.args[1]-(-90)) > 1e-9 {
		t.Errorf("outer loop start y = %v, want -90", mv.args[1])
	}
}

func TestRadiusIncreasesWithValue(t *testing.T) {
	s := FromSamples([]Sample{
		{Value: 0, Present: true},
		{Value: 10, Present: true},
	})
	rr := NewRange(20, 120)
	_, _, _, r0 := radialPoint(0, 0, s, rr, 0, 2)
	_, _, _, r1 := radialPoint(0, 0, s, rr, 1, 2)
	if r0 != 20 || r1 != 120 {
		t.Errorf("radii = %v, %v; want 20, 120", r0, r1)
	}
}
