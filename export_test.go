package starnav

import (
	"strings"
	"testing"
)

func planResultFixture(t *testing.T) (*Arena, *PathFinder) {
	t.Helper()
	a, _, innerID, outerID := twoPlanetArena(t)
	v, err := VesselByName("Plasma-Jet MIF OPT")
	if err != nil {
		t.Fatalf("VesselByName: %v", err)
	}
	policy := Policy{TimeWeight: 1, DeltaVWeight: 1, ComfortWeight: 1}
	pf := NewPathFinder(a, v, policy, a.All(), nil)
	if _, err := pf.FindPath(innerID, outerID, 0, nil); err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	return a, pf
}

func TestParsePlanResult(t *testing.T) {
	a, pf := planResultFixture(t)
	result, err := ParsePlanResult(a, pf)
	if err != nil {
		t.Fatalf("ParsePlanResult: %v", err)
	}
	if result.Summary.TotalLegs != len(result.Legs) {
		t.Fatalf("summary leg count mismatch: %d vs %d", result.Summary.TotalLegs, len(result.Legs))
	}
	if result.Origin == "" {
		t.Fatal("expected a non-empty origin name")
	}
}

func TestParsePlanResultNoPath(t *testing.T) {
	a, _, innerID, _ := twoPlanetArena(t)
	pf := NewPathFinder(a, MultiPurpose, Policy{}, a.All(), nil)
	if _, err := ParsePlanResult(a, pf); !IsNoPath(err) {
		t.Fatalf("expected no-path sentinel before any search has run, got %v", err)
	}
	_ = innerID
}

func TestPlanResultWriteJSON(t *testing.T) {
	a, pf := planResultFixture(t)
	result, err := ParsePlanResult(a, pf)
	if err != nil {
		t.Fatalf("ParsePlanResult: %v", err)
	}
	var sb strings.Builder
	if err := result.WriteJSON(&sb); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if !strings.Contains(sb.String(), "\"summary\"") {
		t.Fatal("expected the JSON output to contain a summary field")
	}
}

func TestPlanResultWriteCSV(t *testing.T) {
	a, pf := planResultFixture(t)
	result, err := ParsePlanResult(a, pf)
	if err != nil {
		t.Fatalf("ParsePlanResult: %v", err)
	}
	var sb strings.Builder
	if err := result.WriteCSV(&sb); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != len(result.Legs)+1 {
		t.Fatalf("expected header + %d leg rows, got %d lines", len(result.Legs), len(lines))
	}
}
