package starnav

import (
	"fmt"
	"math"
)

// Kind tags the variant of a Body: a closed enum with dispatch,
// rather than an open class hierarchy per kind.
type Kind uint8

const (
	// KindStar is the fixed origin of the inertial frame.
	KindStar Kind = iota + 1
	// KindPlanet orbits the Star.
	KindPlanet
	// KindDwarfPlanet orbits the Star.
	KindDwarfPlanet
	// KindMoon orbits a Planet or DwarfPlanet.
	KindMoon
	// KindLagrangePoint is a pseudo-body parameterised off a secondary.
	KindLagrangePoint
)

func (k Kind) String() string {
	switch k {
	case KindStar:
		return "star"
	case KindPlanet:
		return "planet"
	case KindDwarfPlanet:
		return "dwarf"
	case KindMoon:
		return "moon"
	case KindLagrangePoint:
		return "lagrange"
	default:
		panic(fmt.Sprintf("starnav: unknown body kind %d", uint8(k)))
	}
}

// LagrangeKind identifies which of the five Lagrange points a
// KindLagrangePoint body represents.
type LagrangeKind uint8

const (
	L1 LagrangeKind = iota + 1
	L2
	L3
	L4
	L5
)

func (l LagrangeKind) String() string {
	switch l {
	case L1:
		return "L1"
	case L2:
		return "L2"
	case L3:
		return "L3"
	case L4:
		return "L4"
	case L5:
		return "L5"
	default:
		panic(fmt.Sprintf("starnav: unknown lagrange point %d", uint8(l)))
	}
}

// BodyID indexes into an Arena; the Star is always ID 0. noBody means
// "no primary" (only the Star has none).
type BodyID int

const noBody BodyID = -1

// Body is a tagged variant over {Star, Planet, DwarfPlanet, Moon,
// LagrangePoint}. Back-references (Primary, Secondary) are indices
// into the owning Arena rather than pointers, so the body graph stays
// a DAG without ownership cycles.
type Body struct {
	Name     string
	Kind     Kind
	RadiusKM float64 // <=0 means undefined (a Moon with unknown radius)
	MassKG   float64

	Elements OrbitalElements // unused for Star

	Primary   BodyID // noBody only for the Star
	Secondary BodyID // only meaningful for KindLagrangePoint

	LagrangePoint LagrangeKind // only meaningful for KindLagrangePoint
	SizeKM        float64      // Hill radius, only meaningful for KindLagrangePoint
}

// Arena is the immutable, process-wide-free catalog of bodies,
// constructed once at startup and passed by value/handle through the
// API (spec §9: "construct them into an arena at startup and pass
// handles through the API; do not rely on process-wide mutable
// state").
type Arena struct {
	bodies []Body
	byName map[string]BodyID
	starID BodyID
}

// NewArena builds an Arena from a Star and a set of orbiting bodies.
// Bodies may reference earlier bodies in the slice as their primary;
// Moons and Lagrange points are validated against the nesting
// invariant in spec §3 ("only two levels of nesting are supported").
func NewArena(star Body, rest ...Body) (*Arena, error) {
	if star.Kind != KindStar {
		return nil, fmt.Errorf("starnav: arena must be rooted at a Star, got %s", star.Kind)
	}
	a := &Arena{byName: make(map[string]BodyID, len(rest)+1)}
	star.Primary = noBody
	starID := a.append(star)
	a.starID = starID

	for _, b := range rest {
		if _, err := a.addValidated(b); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a *Arena) append(b Body) BodyID {
	id := BodyID(len(a.bodies))
	a.bodies = append(a.bodies, b)
	a.byName[b.Name] = id
	return id
}

// AddBody validates and appends b to the arena, returning its new ID.
// Exposed so a separate catalog package can build up an Arena
// incrementally instead of requiring every seed body up front.
func (a *Arena) AddBody(b Body) (BodyID, error) {
	return a.addValidated(b)
}

func (a *Arena) addValidated(b Body) (BodyID, error) {
	switch b.Kind {
	case KindPlanet, KindDwarfPlanet:
		if b.Primary != a.starID {
			return noBody, fmt.Errorf("starnav: %s must orbit the Star", b.Name)
		}
		if err := b.Elements.Validate(); err != nil {
			return noBody, fmt.Errorf("starnav: %s: %w", b.Name, err)
		}
	case KindMoon:
		primary, ok := a.body(b.Primary)
		if !ok {
			return noBody, fmt.Errorf("starnav: %s has an unknown primary", b.Name)
		}
		if primary.Primary != a.starID {
			return noBody, fmt.Errorf("starnav: %s: unsupported nesting, primary's primary is not the Star", b.Name)
		}
		if err := b.Elements.Validate(); err != nil {
			return noBody, fmt.Errorf("starnav: %s: %w", b.Name, err)
		}
	case KindLagrangePoint:
		secondary, ok := a.body(b.Secondary)
		if !ok {
			return noBody, fmt.Errorf("starnav: %s has an unknown secondary", b.Name)
		}
		if secondary.Primary != a.starID {
			return noBody, fmt.Errorf("starnav: %s: unsupported nesting, secondary does not orbit the Star", b.Name)
		}
		if b.Primary != secondary.Primary {
			return noBody, fmt.Errorf("starnav: %s: primary must match its secondary's primary", b.Name)
		}
		if err := b.Elements.Validate(); err != nil {
			return noBody, fmt.Errorf("starnav: %s: %w", b.Name, err)
		}
	default:
		return noBody, fmt.Errorf("starnav: unsupported body kind %s for %s", b.Kind, b.Name)
	}
	return a.append(b), nil
}

func (a *Arena) body(id BodyID) (Body, bool) {
	if id < 0 || int(id) >= len(a.bodies) {
		return Body{}, false
	}
	return a.bodies[id], true
}

// Lookup resolves a body name to its ID.
func (a *Arena) Lookup(name string) (BodyID, error) {
	id, ok := a.byName[name]
	if !ok {
		return noBody, fmt.Errorf("starnav: unknown body %q", name)
	}
	return id, nil
}

// StarID returns the arena's root Star.
func (a *Arena) StarID() BodyID { return a.starID }

// Body returns the body at id. Panics on an invalid id: this is an
// internal-invariant violation (the caller should have validated via
// Lookup), not a caller-facing error.
func (a *Arena) Body(id BodyID) Body {
	b, ok := a.body(id)
	if !ok {
		panic(fmt.Sprintf("starnav: invalid body id %d", id))
	}
	return b
}

// All returns every body ID in the arena, including the Star.
func (a *Arena) All() []BodyID {
	ids := make([]BodyID, len(a.bodies))
	for i := range a.bodies {
		ids[i] = BodyID(i)
	}
	return ids
}

// muOf returns the gravitational parameter of primary, the body being
// orbited, i.e. G * mass of primary.
func (a *Arena) muOf(primary BodyID) float64 {
	p := a.Body(primary)
	return mu * p.MassKG
}

// PositionAt returns the position of id at elapsedSeconds, in AU,
// relative to the Star.
func (a *Arena) PositionAt(id BodyID, elapsedSeconds float64) ([]float64, error) {
	b := a.Body(id)
	switch b.Kind {
	case KindStar:
		return []float64{0, 0, 0}, nil
	case KindPlanet, KindDwarfPlanet:
		return positionRelativeToPrimary(b.Elements, a.muOf(b.Primary), elapsedSeconds), nil
	case KindMoon:
		offset := positionRelativeToPrimary(b.Elements, a.muOf(b.Primary), elapsedSeconds)
		primaryPos, err := a.PositionAt(b.Primary, elapsedSeconds)
		if err != nil {
			return nil, err
		}
		return []float64{
			primaryPos[0] + offset[0],
			primaryPos[1] + offset[1],
			primaryPos[2] + offset[2],
		}, nil
	case KindLagrangePoint:
		return a.lagrangePositionAt(b, elapsedSeconds)
	default:
		panic(fmt.Sprintf("starnav: unhandled body kind %s", b.Kind))
	}
}

// lagrangePositionAt implements spec §4.2's Lagrange-point placement:
// the same Kepler solution as the secondary (phase-shifted at
// construction), displaced toward the origin for L1 and away from it
// for L2; L3/L4/L5 are not displaced.
func (a *Arena) lagrangePositionAt(b Body, elapsedSeconds float64) ([]float64, error) {
	coords := positionRelativeToPrimary(b.Elements, a.muOf(b.Primary), elapsedSeconds)

	var offsetAU float64
	switch b.LagrangePoint {
	case L1:
		offsetAU = b.SizeKM / AUInMetre * 1000
	case L2:
		offsetAU = -b.SizeKM / AUInMetre * 1000
	case L3, L4, L5:
		offsetAU = 0
	default:
		panic(fmt.Sprintf("starnav: unhandled lagrange kind %s", b.LagrangePoint))
	}

	primary := a.Body(b.Primary)
	origin := []float64{0, 0, 0}
	if primary.Kind == KindStar {
		return moveTowards(coords, origin, offsetAU), nil
	}
	if a.Body(primary.Primary).Kind != KindStar {
		return nil, fmt.Errorf("starnav: %s: unsupported nesting, primary-of-primary is not the Star", b.Name)
	}
	primaryPos, err := a.PositionAt(b.Primary, elapsedSeconds)
	if err != nil {
		return nil, err
	}
	absolute := []float64{primaryPos[0] + coords[0], primaryPos[1] + coords[1], primaryPos[2] + coords[2]}
	return moveTowards(absolute, origin, offsetAU), nil
}

// TrueAnomalyAt returns the true anomaly (radians) of an orbiting body
// at elapsedSeconds. Undefined (returns an error) for the Star.
func (a *Arena) TrueAnomalyAt(id BodyID, elapsedSeconds float64) (float64, error) {
	b := a.Body(id)
	if b.Kind == KindStar {
		return 0, fmt.Errorf("starnav: true anomaly undefined for the Star")
	}
	anomalies := computeAnomalies(b.Elements, a.muOf(b.Primary), elapsedSeconds)
	return anomalies.True, nil
}

// SafeRangeM returns the exclusion radius a flight segment must not
// intersect, in metres. The boolean is false when the
// body has no defined safe range (the Star always has one; planets
// and moons with an unknown radius, and all Lagrange points, do not).
func (a *Arena) SafeRangeM(id BodyID) (float64, bool) {
	b := a.Body(id)
	switch b.Kind {
	case KindStar:
		return b.RadiusKM * 5 * 1000, true
	case KindPlanet, KindDwarfPlanet, KindMoon:
		if b.RadiusKM <= 0 {
			return 0, false
		}
		return b.RadiusKM * 1.2 * 1000, true
	case KindLagrangePoint:
		return 0, false
	default:
		panic(fmt.Sprintf("starnav: unhandled body kind %s", b.Kind))
	}
}

// OrbitalPeriodSeconds returns the Keplerian period of an orbiting
// body. Undefined for the Star.
func (a *Arena) OrbitalPeriodSeconds(id BodyID) (float64, error) {
	b := a.Body(id)
	if b.Kind == KindStar {
		return 0, fmt.Errorf("starnav: orbital period undefined for the Star")
	}
	return orbitalPeriodSeconds(b.Elements, a.muOf(b.Primary)), nil
}

// MoonPhase returns the illumination fraction (0 = new, 1 = full) of a
// Moon at elapsedSeconds, from the angle between the moon-to-star and
// moon-to-primary vectors. Supplemented from original_source's
// `current_phase` (spec.md's distillation dropped it).
func (a *Arena) MoonPhase(id BodyID, elapsedSeconds float64) (float64, error) {
	b := a.Body(id)
	if b.Kind != KindMoon {
		return 0, fmt.Errorf("starnav: moon phase only defined for moons, got %s", b.Kind)
	}
	moonPos, err := a.PositionAt(id, elapsedSeconds)
	if err != nil {
		return 0, err
	}
	primaryPos, err := a.PositionAt(b.Primary, elapsedSeconds)
	if err != nil {
		return 0, err
	}
	moonToStar := []float64{-moonPos[0], -moonPos[1], -moonPos[2]}
	moonToPrimary := []float64{primaryPos[0] - moonPos[0], primaryPos[1] - moonPos[1], primaryPos[2] - moonPos[2]}

	magStar, magPrimary := Norm(moonToStar), Norm(moonToPrimary)
	if magStar == 0 || magPrimary == 0 {
		return 0, nil
	}
	cosPhi := dot(moonToStar, moonToPrimary) / (magStar * magPrimary)
	cosPhi = math.Max(-1, math.Min(1, cosPhi))
	phi := math.Acos(cosPhi)
	return (1 + math.Cos(phi)) / 2, nil
}
