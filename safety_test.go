package starnav

import "testing"

func TestValidatePathSkipsOriginAndTarget(t *testing.T) {
	a, starID, planetID, _ := testArena(t)
	ok, err := a.validatePath(starID, planetID, 0, 1000)
	if err != nil {
		t.Fatalf("validatePath: %v", err)
	}
	if !ok {
		t.Fatal("a direct star-to-planet leg must not be blocked by the star or planet themselves")
	}
}

func TestValidatePathSkipsLagrangePoints(t *testing.T) {
	a, starID, planetID, moonID := testArena(t)
	planet := a.Body(planetID)
	l1 := Body{
		Name:          "Ferrum-L1",
		Kind:          KindLagrangePoint,
		Primary:       starID,
		Secondary:     planetID,
		LagrangePoint: L1,
		SizeKM:        1,
		Elements:      planet.Elements,
	}
	if _, err := a.addValidated(l1); err != nil {
		t.Fatalf("adding lagrange point: %v", err)
	}
	ok, err := a.validatePath(starID, moonID, 0, 1000)
	if err != nil {
		t.Fatalf("validatePath: %v", err)
	}
	if !ok {
		t.Fatal("lagrange points must never block a path")
	}
}

func TestValidatePathFlagsObstruction(t *testing.T) {
	star := Body{Name: "Cise-Sente", Kind: KindStar, RadiusKM: 649119, MassKG: 4.23e30}
	a, err := NewArena(star)
	if err != nil {
		t.Fatalf("NewArena: %v", err)
	}
	starID := a.StarID()

	nearID, err := a.addValidated(Body{
		Name: "Near", Kind: KindPlanet, RadiusKM: 6371, MassKG: 5.97e24,
		Primary: starID, Elements: circularElements(1e11, 0),
	})
	if err != nil {
		t.Fatalf("adding near: %v", err)
	}
	farID, err := a.addValidated(Body{
		Name: "Far", Kind: KindPlanet, RadiusKM: 6371, MassKG: 5.97e24,
		Primary: starID, Elements: circularElements(3e11, 0),
	})
	if err != nil {
		t.Fatalf("adding far: %v", err)
	}

	ok, err := a.validatePath(starID, farID, 0, 0)
	if err != nil {
		t.Fatalf("validatePath: %v", err)
	}
	if ok {
		t.Fatal("expected the near planet to obstruct a star-to-far-planet leg along the same ray at t=0")
	}
	_ = nearID
}
