package starnav

import "fmt"

// Vessel describes the propulsion envelope of a spacecraft: total
// delta-v budget, dry+propellant mass, and thrust. Everything else
// (burn profiles, travel time) is derived from these three numbers.
type Vessel struct {
	Name     string
	DeltaVMS float64 // total delta-v budget, m/s
	MassT    float64 // metric tons
	ThrustN  float64 // newtons
}

// MaxAccelerationMS2 returns the vessel's constant acceleration under
// full thrust, thrust / mass.
func (v Vessel) MaxAccelerationMS2() float64 {
	massKG := v.MassT * 1000
	return v.ThrustN / massKG
}

// MaxDistanceAtM returns the farthest a vessel can travel under a
// symmetric accelerate-decelerate burn at accelG times Earth gravity,
// spending deltaVMS of its budget. A zero deltaVMS defaults to the
// vessel's full budget.
func (v Vessel) MaxDistanceAtM(accelG, deltaVMS float64) float64 {
	if deltaVMS == 0 {
		deltaVMS = v.DeltaVMS
	}
	accelMS2 := accelG * gInMS2
	return (deltaVMS * deltaVMS) / (4 * accelMS2)
}

// CanSustain reports whether the vessel's engine can produce accelG.
func (v Vessel) CanSustain(accelG float64) bool {
	return accelG*gInMS2 <= v.MaxAccelerationMS2()
}

// CanReach reports whether the vessel can cover distanceM under a
// bang-bang burn at accelG spending deltaVMS (0 meaning its full
// budget).
func (v Vessel) CanReach(distanceM, accelG, deltaVMS float64) bool {
	return distanceM <= v.MaxDistanceAtM(accelG, deltaVMS)
}

// MultiPurpose is the baseline vessel used when no preset is named.
var MultiPurpose = Vessel{Name: "Multi-Purpose", DeltaVMS: 3300000, MassT: 175, ThrustN: 1780000}

// VesselPresets catalogs the named propulsion systems a route request
// may select, supplementing spec.md's generic Vessel envelope with the
// concrete preset table the distillation dropped.
var VesselPresets = map[string]Vessel{
	"Micro-Fission Pulse":     {Name: "Micro-Fission Pulse", DeltaVMS: 240000, MassT: 5000, ThrustN: 1870000},
	"H-B Fusion":              {Name: "H-B Fusion", DeltaVMS: 300000, MassT: 750, ThrustN: 255000},
	"Plasma-Jet MIF CON":      {Name: "Plasma-Jet MIF CON", DeltaVMS: 2100000, MassT: 175, ThrustN: 1040000},
	"Plasma-Jet MIF OPT":      {Name: "Plasma-Jet MIF OPT", DeltaVMS: 3300000, MassT: 250, ThrustN: 1780000},
	"Solid-Core NTR":          {Name: "Solid-Core NTR", DeltaVMS: 7847, MassT: 100, ThrustN: 1780000},
	"Gas-Core NTR Open-Cycle": {Name: "Gas-Core NTR Open-Cycle", DeltaVMS: 108353, MassT: 125, ThrustN: 2452500},
}

// VesselByName resolves a preset name, falling back to an error rather
// than a zero-value Vessel so a typo'd name never silently flies a
// vessel with no thrust.
func VesselByName(name string) (Vessel, error) {
	if name == "" || name == MultiPurpose.Name {
		return MultiPurpose, nil
	}
	v, ok := VesselPresets[name]
	if !ok {
		return Vessel{}, fmt.Errorf("starnav: unknown vessel preset %q", name)
	}
	return v, nil
}
