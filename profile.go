package starnav

import "math"

// MaxAccelG is the system-wide ceiling on burn acceleration, in
// multiples of Earth gravity.
const MaxAccelG = 0.8

// throttleStep is both the step by which compute_travel_time lowers
// its trial acceleration and the floor below which it gives up.
const throttleStep = 0.01

// Profile is one candidate edge in the search graph: a symmetric
// accelerate/coast/decelerate burn covering a straight-line distance.
type Profile struct {
	BurnTimeS         float64
	CoastTimeS        float64
	DeltaVUsedMS      float64
	DeltaVToRefuelMS  float64
	AccelG            float64
	PeakVelocityMS    float64
	DistanceTraveledM float64
}

// TotalTimeS is the duration of the whole leg, burn plus coast.
func (p Profile) TotalTimeS() float64 {
	return p.BurnTimeS + p.CoastTimeS
}

// computeTravelTime searches downward from accelG in throttleStep
// increments for the first acceleration at which distanceM is
// reachable under maxDVMS (0 meaning the vessel's full budget),
// returning the resulting Profile or nil if no acceleration in the
// ladder works.
//
// forceNoCoast rejects any candidate that would require a coast
// phase, backing off to a lower acceleration instead (unless
// forceAccel pins the acceleration and forbids backing off).
func computeTravelTime(v Vessel, distanceM, accelG float64, forceNoCoast, forceAccel bool, maxDVMS float64) *Profile {
	if maxDVMS == 0 {
		maxDVMS = v.DeltaVMS
	}

	for accelG >= throttleStep {
		maxDistance := v.MaxDistanceAtM(accelG, maxDVMS)
		coastDistance := math.Max(0, distanceM-maxDistance)
		accelDistance := distanceM - coastDistance

		if accelDistance <= 0 {
			return nil
		}

		accelMS2 := accelG * gInMS2
		accelTimeS := math.Sqrt(accelDistance / accelMS2)
		peakVelocityMS := accelMS2 * accelTimeS
		deltaVUsedMS := peakVelocityMS * 2
		burnTimeS := 2 * accelTimeS

		needCoast := coastDistance > 0
		if needCoast && forceNoCoast {
			if forceAccel || accelG <= throttleStep {
				return nil
			}
			accelG -= throttleStep
			continue
		}

		var coastTimeS float64
		if needCoast {
			coastTimeS = coastDistance / peakVelocityMS
		}

		return &Profile{
			BurnTimeS:         burnTimeS,
			CoastTimeS:        coastTimeS,
			DeltaVUsedMS:      deltaVUsedMS,
			DeltaVToRefuelMS:  maxDVMS - deltaVUsedMS,
			AccelG:            accelG,
			PeakVelocityMS:    peakVelocityMS,
			DistanceTraveledM: distanceM,
		}
	}
	return nil
}

// candidateProfiles produces the fixed family of burn profiles tried
// for one candidate edge, in priority order: a baseline at the
// vessel's remaining fuel, three "assuming refueling" variants, five
// fuel-throttled variants, and five acceleration-throttled variants.
// Any variant computeTravelTime rejects is simply absent from the
// result; the search engine never sees a nil profile.
func candidateProfiles(v Vessel, distanceM, maxAccelG, dvRemainingMS float64) []Profile {
	var out []Profile
	add := func(p *Profile) {
		if p != nil {
			out = append(out, *p)
		}
	}

	add(computeTravelTime(v, distanceM, maxAccelG, false, false, dvRemainingMS))

	add(computeTravelTime(v, distanceM, maxAccelG, true, true, 0))
	add(computeTravelTime(v, distanceM, maxAccelG, true, false, 0))
	add(computeTravelTime(v, distanceM, maxAccelG, false, false, 0))

	for _, frac := range []float64{0.9, 0.8, 0.7, 0.6, 0.5} {
		add(computeTravelTime(v, distanceM, maxAccelG, false, false, frac*v.DeltaVMS))
	}
	for _, frac := range []float64{0.9, 0.8, 0.7, 0.6, 0.5} {
		add(computeTravelTime(v, distanceM, maxAccelG*frac, false, false, 0))
	}

	return out
}
