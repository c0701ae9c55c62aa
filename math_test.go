package starnav

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestNormUnit(t *testing.T) {
	v := []float64{3, 4, 0}
	if Norm(v) != 5 {
		t.Fatalf("expected norm 5, got %f", Norm(v))
	}
	u := Unit(v)
	if !floats.EqualWithinAbs(Norm(u), 1, 1e-12) {
		t.Fatalf("unit vector should have norm 1, got %f", Norm(u))
	}
	if !vectorsEqual(Unit([]float64{0, 0, 0}), []float64{0, 0, 0}) {
		t.Fatal("unit of zero vector should be zero vector")
	}
}

func TestLinearDistance(t *testing.T) {
	if d := linearDistance([]float64{0, 0, 0}, []float64{3, 4, 0}); d != 5 {
		t.Fatalf("expected 5, got %f", d)
	}
}

func TestDistancePointToSegment(t *testing.T) {
	// Point directly above the midpoint of the segment.
	a := []float64{0, 0, 0}
	b := []float64{10, 0, 0}
	p := []float64{5, 3, 0}
	if d := distancePointToSegment(p, a, b); !floats.EqualWithinAbs(d, 3, 1e-9) {
		t.Fatalf("expected 3, got %f", d)
	}
	// Point beyond the endpoint clamps to the endpoint.
	p2 := []float64{15, 0, 0}
	if d := distancePointToSegment(p2, a, b); !floats.EqualWithinAbs(d, 5, 1e-9) {
		t.Fatalf("expected 5 (clamped), got %f", d)
	}
	// Degenerate segment (a == b) falls back to point-to-point distance.
	if d := distancePointToSegment(p, a, a); !floats.EqualWithinAbs(d, linearDistance(p, a), 1e-9) {
		t.Fatalf("degenerate segment mismatch: %f", d)
	}
}

func TestMoveTowards(t *testing.T) {
	current := []float64{0, 0, 0}
	target := []float64{10, 0, 0}
	moved := moveTowards(current, target, 3)
	if !vectorsEqual(moved, []float64{3, 0, 0}) {
		t.Fatalf("expected [3 0 0], got %+v", moved)
	}
	// Overshoot clamps to the target.
	moved = moveTowards(current, target, 20)
	if !vectorsEqual(moved, target) {
		t.Fatalf("expected clamp to target, got %+v", moved)
	}
}

func TestDeg2radRad2deg(t *testing.T) {
	for deg := 0.0; deg < 360; deg += 15 {
		rad := Deg2rad(deg)
		back := Rad2deg(rad)
		if !floats.EqualWithinAbs(back, deg, 1e-9) {
			t.Fatalf("round trip failed for %f: got %f", deg, back)
		}
	}
	if Deg2rad(-90) != Deg2rad(270) {
		t.Fatal("negative degrees should wrap into [0, 360)")
	}
}

func TestR3R1R3Identity(t *testing.T) {
	// Zero rotation must be the identity.
	v := []float64{1, 2, 3}
	rotated := MxV33(R3R1R3(0, 0, 0), v)
	if !vectorsEqual(rotated, v) {
		t.Fatalf("expected identity rotation, got %+v", rotated)
	}
}

func TestR3R1R3PreservesNorm(t *testing.T) {
	v := []float64{1, 0, 0}
	rotated := MxV33(R3R1R3(math.Pi/4, math.Pi/6, math.Pi/3), v)
	if !floats.EqualWithinAbs(Norm(rotated), Norm(v), 1e-9) {
		t.Fatalf("rotation changed the vector's norm: %f vs %f", Norm(rotated), Norm(v))
	}
}

func vectorsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !floats.EqualWithinAbs(a[i], b[i], 1e-9) {
			return false
		}
	}
	return true
}
