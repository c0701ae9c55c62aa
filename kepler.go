package starnav

import (
	"fmt"
	"math"

	"github.com/gonum/floats"
)

// keplerMaxIterations bounds the Newton iteration solving Kepler's
// equation: never spin forever on a pathological orbit.
const keplerMaxIterations = 100

// keplerTolerance is the correction magnitude below which the Newton
// iteration on the eccentric anomaly is considered converged.
const keplerTolerance = 1e-6

// OrbitalElements are the six classical Keplerian elements, with the
// mean anomaly given at epoch. Angles are in degrees, matching the public
// construction surface; semimajor axis is in metres.
type OrbitalElements struct {
	SemimajorAxisM        float64 // a, metres
	Eccentricity          float64 // e, 0 <= e < 1
	InclinationDeg        float64 // i
	LongitudeAscNodeDeg   float64 // Ω
	ArgPeriapsisDeg       float64 // ω
	MeanAnomalyAtEpochDeg float64 // M0
}

// Validate enforces the invariant that only closed elliptical orbits
// are supported (0 <= e < 1), and that the semimajor axis is
// physically meaningful.
func (oe OrbitalElements) Validate() error {
	if oe.Eccentricity < 0 || oe.Eccentricity >= 1 {
		return fmt.Errorf("starnav: invalid eccentricity %f: parabolic/hyperbolic orbits are not supported", oe.Eccentricity)
	}
	if oe.SemimajorAxisM <= 0 {
		return fmt.Errorf("starnav: invalid semimajor axis %f: must be positive", oe.SemimajorAxisM)
	}
	return nil
}

// meanMotion returns n = sqrt(mu / a^3), in radians per second.
func meanMotion(muPrimary, semimajorAxisM float64) float64 {
	return math.Sqrt(muPrimary / (semimajorAxisM * semimajorAxisM * semimajorAxisM))
}

// meanAnomalyAt propagates the mean anomaly (in radians) to elapsedSeconds
// past epoch.
func meanAnomalyAt(meanAnomalyAtEpochRad, n, elapsedSeconds float64) float64 {
	return meanAnomalyAtEpochRad + n*elapsedSeconds
}

// eccentricAnomaly solves Kepler's equation E - e*sin(E) = M via Newton
// iteration from E0 = M, bounded at keplerMaxIterations steps and
// terminating once the correction is smaller than keplerTolerance.
func eccentricAnomaly(eccentricity, meanAnomalyRad float64) float64 {
	E := meanAnomalyRad
	for i := 0; i < keplerMaxIterations; i++ {
		delta := (E - eccentricity*math.Sin(E) - meanAnomalyRad) / (1 - eccentricity*math.Cos(E))
		E -= delta
		if floats.EqualWithinAbs(delta, 0, keplerTolerance) {
			break
		}
	}
	return E
}

// trueAnomaly converts an eccentric anomaly to a true anomaly.
func trueAnomaly(eccentricity, eccentricAnomalyRad float64) float64 {
	return 2 * math.Atan2(
		math.Sqrt(1+eccentricity)*math.Sin(eccentricAnomalyRad/2),
		math.Sqrt(1-eccentricity)*math.Cos(eccentricAnomalyRad/2),
	)
}

// keplerAnomalies bundles the mean, eccentric and true anomaly (in
// radians) at elapsedSeconds past epoch, used both by position
// computation and by true-anomaly queries on orbiting bodies.
type keplerAnomalies struct {
	Mean, Eccentric, True float64
}

func computeAnomalies(oe OrbitalElements, muPrimary, elapsedSeconds float64) keplerAnomalies {
	n := meanMotion(muPrimary, oe.SemimajorAxisM)
	M := meanAnomalyAt(Deg2rad(oe.MeanAnomalyAtEpochDeg), n, elapsedSeconds)
	E := eccentricAnomaly(oe.Eccentricity, M)
	ν := trueAnomaly(oe.Eccentricity, E)
	return keplerAnomalies{Mean: M, Eccentric: E, True: ν}
}

// positionRelativeToPrimary solves the two-body Kepler problem at
// elapsedSeconds past epoch and returns the position relative to the
// primary, in AU.
//
// Radius is placed in the orbital plane as (r*cos ν, r*sin ν, 0), then
// rotated into the inertial frame by the 3-1-3 Euler sequence (ω about
// Z, i about X, Ω about Z).
func positionRelativeToPrimary(oe OrbitalElements, muPrimary, elapsedSeconds float64) []float64 {
	anomalies := computeAnomalies(oe, muPrimary, elapsedSeconds)
	r := oe.SemimajorAxisM * (1 - oe.Eccentricity*math.Cos(anomalies.Eccentric))
	sν, cν := math.Sincos(anomalies.True)
	plane := []float64{r * cν, r * sν, 0}

	rot := R3R1R3(Deg2rad(oe.ArgPeriapsisDeg), Deg2rad(oe.InclinationDeg), Deg2rad(oe.LongitudeAscNodeDeg))
	inertial := MxV33(rot, plane)

	return []float64{inertial[0] / AUInMetre, inertial[1] / AUInMetre, inertial[2] / AUInMetre}
}

// orbitalPeriodSeconds returns 2*pi*sqrt(a^3/mu), the period of a
// closed Kepler orbit around the primary with gravitational parameter
// muPrimary.
func orbitalPeriodSeconds(oe OrbitalElements, muPrimary float64) float64 {
	return 2 * math.Pi * math.Sqrt(math.Pow(oe.SemimajorAxisM, 3)/muPrimary)
}
