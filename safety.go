package starnav

// validatePath reports whether a straight-line burn from origin at
// departureSeconds to target at arrivalSeconds clears every other
// body's safe range at the segment midpoint time. All distances are
// compared in metres, resolving the unit ambiguity in the source by
// converting positions (natively in AU) to metres before comparing
// against safe_range (natively in metres).
func (a *Arena) validatePath(origin, target BodyID, departureSeconds, arrivalSeconds float64) (bool, error) {
	originPos, err := a.PositionAt(origin, departureSeconds)
	if err != nil {
		return false, err
	}
	targetPos, err := a.PositionAt(target, arrivalSeconds)
	if err != nil {
		return false, err
	}
	originPosM := scale(originPos, AUInMetre)
	targetPosM := scale(targetPos, AUInMetre)

	midpointSeconds := (departureSeconds + arrivalSeconds) / 2

	for _, id := range a.All() {
		if id == origin || id == target {
			continue
		}
		if a.Body(id).Kind == KindLagrangePoint {
			continue
		}
		safeRangeM, ok := a.SafeRangeM(id)
		if !ok {
			continue
		}
		bodyPos, err := a.PositionAt(id, midpointSeconds)
		if err != nil {
			return false, err
		}
		bodyPosM := scale(bodyPos, AUInMetre)

		minDistanceM := distancePointToSegment(bodyPosM, originPosM, targetPosM)
		if minDistanceM < safeRangeM {
			return false, nil
		}
	}
	return true, nil
}

func scale(v []float64, factor float64) []float64 {
	return []float64{v[0] * factor, v[1] * factor, v[2] * factor}
}
