package starnav

import (
	"math"
	"testing"
)

func TestPolicyZeroWeightsIsZeroCost(t *testing.T) {
	p := Policy{}
	profile := &Profile{BurnTimeS: 100, CoastTimeS: 50, DeltaVUsedMS: 1000, AccelG: 0.5}
	if got := p.Evaluate(profile); got != 0 {
		t.Fatalf("expected zero cost with zero weights, got %f", got)
	}
}

func TestPolicyDisableCoastForbidsCoasting(t *testing.T) {
	p := Policy{TimeWeight: 1, DisableCoast: true}
	profile := &Profile{BurnTimeS: 100, CoastTimeS: 1}
	if got := p.Evaluate(profile); !math.IsInf(got, 1) {
		t.Fatalf("expected +Inf for a coasting profile under disable_coast, got %f", got)
	}
}

func TestPolicyDisableCoastAllowsZeroCoast(t *testing.T) {
	p := Policy{TimeWeight: 1, DisableCoast: true}
	profile := &Profile{BurnTimeS: 100, CoastTimeS: 0}
	if got := p.Evaluate(profile); math.IsInf(got, 1) {
		t.Fatal("a zero-coast profile must not be forbidden by disable_coast")
	}
}

func TestPolicyComfortRewardsHigherAcceleration(t *testing.T) {
	p := Policy{ComfortWeight: 1}
	lowAccel := &Profile{AccelG: 0.1}
	highAccel := &Profile{AccelG: 0.7}
	if p.Evaluate(highAccel) >= p.Evaluate(lowAccel) {
		t.Fatal("higher acceleration (less headroom) should cost less under comfort weight")
	}
}
