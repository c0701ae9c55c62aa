package starnav

import "testing"

func TestMaxAccelerationMS2(t *testing.T) {
	v := Vessel{MassT: 100, ThrustN: 981000}
	got := v.MaxAccelerationMS2()
	want := 981000.0 / 100000.0
	if got != want {
		t.Fatalf("expected %f, got %f", want, got)
	}
}

func TestMaxDistanceAtDefaultsToFullBudget(t *testing.T) {
	v := Vessel{DeltaVMS: 1000, MassT: 100, ThrustN: 500000}
	full := v.MaxDistanceAtM(1, 0)
	explicit := v.MaxDistanceAtM(1, v.DeltaVMS)
	if full != explicit {
		t.Fatalf("expected default dv to equal explicit full budget: %f vs %f", full, explicit)
	}
}

func TestCanSustainAndCanReach(t *testing.T) {
	v := MultiPurpose
	if !v.CanSustain(0.1) {
		t.Fatal("multi-purpose vessel should sustain 0.1g")
	}
	if v.CanSustain(1000) {
		t.Fatal("no vessel should sustain 1000g")
	}
	if !v.CanReach(1, 1, v.DeltaVMS) {
		t.Fatal("vessel should reach a trivially short distance")
	}
}

func TestVesselByNameDefaultsToMultiPurpose(t *testing.T) {
	v, err := VesselByName("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != MultiPurpose {
		t.Fatalf("expected MultiPurpose, got %+v", v)
	}
}

func TestVesselByNamePreset(t *testing.T) {
	v, err := VesselByName("H-B Fusion")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.ThrustN != 255000 {
		t.Fatalf("unexpected preset: %+v", v)
	}
}

func TestVesselByNameUnknown(t *testing.T) {
	if _, err := VesselByName("does-not-exist"); err == nil {
		t.Fatal("expected an error for an unknown preset")
	}
}
