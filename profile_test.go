package starnav

import (
	"math"
	"testing"
)

func TestComputeTravelTimeBangBang(t *testing.T) {
	v := Vessel{DeltaVMS: 1e12, MassT: 1, ThrustN: 1} // effectively unlimited delta-v
	p := computeTravelTime(v, 1e10, 0.5, false, false, 0)
	if p == nil {
		t.Fatal("expected a profile")
	}
	if p.CoastTimeS != 0 {
		t.Fatalf("expected no coast with unlimited delta-v, got %f", p.CoastTimeS)
	}
	wantAccelTimeS := math.Sqrt(1e10 / (9.81 * 0.5))
	wantBurnTimeS := 2 * wantAccelTimeS
	if math.Abs(p.BurnTimeS-wantBurnTimeS) > 1 {
		t.Fatalf("expected burn time ~%f, got %f", wantBurnTimeS, p.BurnTimeS)
	}
	wantPeak := 9.81 * 0.5 * wantAccelTimeS
	if math.Abs(p.PeakVelocityMS-wantPeak) > 1 {
		t.Fatalf("expected peak velocity ~%f, got %f", wantPeak, p.PeakVelocityMS)
	}
}

func TestComputeTravelTimeNeedsCoast(t *testing.T) {
	v := Vessel{DeltaVMS: 1000, MassT: 100, ThrustN: 500000}
	p := computeTravelTime(v, 1e11, 0.8, false, false, 0)
	if p == nil {
		t.Fatal("expected a profile requiring a coast phase")
	}
	if p.CoastTimeS <= 0 {
		t.Fatalf("expected a positive coast time, got %f", p.CoastTimeS)
	}
}

func TestComputeTravelTimeForceNoCoastBacksOffAcceleration(t *testing.T) {
	v := Vessel{DeltaVMS: 1000, MassT: 100, ThrustN: 500000}
	p := computeTravelTime(v, 1e7, 0.8, true, false, 0)
	if p != nil && p.CoastTimeS != 0 {
		t.Fatalf("forceNoCoast should never return a coasting profile, got %+v", p)
	}
}

func TestComputeTravelTimeForceAccelGivesUpRatherThanBackOff(t *testing.T) {
	v := Vessel{DeltaVMS: 1000, MassT: 100, ThrustN: 500000}
	p := computeTravelTime(v, 1e11, 0.8, true, true, 0)
	if p != nil {
		t.Fatalf("expected no profile when forced acceleration still needs a coast, got %+v", p)
	}
}

func TestComputeTravelTimeUnreachableReturnsNil(t *testing.T) {
	// With no delta-v budget the accelerated distance is zero, so even a
	// coasting profile cannot be built.
	v := Vessel{DeltaVMS: 0, MassT: 1000, ThrustN: 1}
	p := computeTravelTime(v, 1e20, 0.8, false, false, 0)
	if p != nil {
		t.Fatalf("expected no profile for an unreachable distance, got %+v", p)
	}
}

func TestCandidateProfilesOrderAndNonEmpty(t *testing.T) {
	v := MultiPurpose
	profiles := candidateProfiles(v, 1e10, 0.8, v.DeltaVMS)
	if len(profiles) == 0 {
		t.Fatal("expected at least one candidate profile")
	}
	for _, p := range profiles {
		if p.DistanceTraveledM != 1e10 {
			t.Fatalf("every profile should report the requested distance, got %f", p.DistanceTraveledM)
		}
	}
}
