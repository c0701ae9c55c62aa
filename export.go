package starnav

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

// LegResult is one leg of a resolved plan request, in the shape the
// external plan-request interface returns.
type LegResult struct {
	LegNumber    int     `json:"leg_number"`
	Destination  string  `json:"destination"`
	DistanceAU   float64 `json:"distance_au"`
	BurnTimeS    float64 `json:"burn_time"`
	CoastTimeS   float64 `json:"coast_time"`
	TotalTimeS   float64 `json:"total_time"`
	DeltaVCostMS float64 `json:"dv_cost"`
	AccelG       float64 `json:"accel_g"`
}

// PlanSummary aggregates a resolved plan request across all its legs.
type PlanSummary struct {
	TotalLegs            int     `json:"total_legs"`
	TotalTimeDays        float64 `json:"total_time_days"`
	TotalDistanceAU      float64 `json:"total_distance_au"`
	TotalDeltaVKMS       float64 `json:"total_delta_v_km_s"`
	AverageAccelerationG float64 `json:"average_acceleration_g"`
}

// PlanResult is the full external-interface response for a plan
// request: the resolved leg list plus its summary.
type PlanResult struct {
	Origin     string      `json:"origin"`
	LaunchTime float64     `json:"launch_time"`
	Legs       []LegResult `json:"legs"`
	Summary    PlanSummary `json:"summary"`
}

// ParsePlanResult builds the external-interface response from a
// PathFinder's most recently found path.
func ParsePlanResult(arena *Arena, pf *PathFinder) (PlanResult, error) {
	legs := pf.FullPath()
	if len(legs) == 0 {
		return PlanResult{}, errNoPath
	}

	result := PlanResult{
		Origin:     arena.Body(pf.Origin()).Name,
		LaunchTime: pf.launchTime,
		Legs:       make([]LegResult, len(legs)),
	}

	var totalTimeS, totalDistanceAU, totalDVMS, totalAccelG float64
	for i, leg := range legs {
		distanceAU := leg.Profile.DistanceTraveledM / AUInMetre
		result.Legs[i] = LegResult{
			LegNumber:    i + 1,
			Destination:  arena.Body(leg.Body).Name,
			DistanceAU:   distanceAU,
			BurnTimeS:    leg.Profile.BurnTimeS,
			CoastTimeS:   leg.Profile.CoastTimeS,
			TotalTimeS:   leg.Profile.TotalTimeS(),
			DeltaVCostMS: leg.Profile.DeltaVUsedMS,
			AccelG:       leg.Profile.AccelG,
		}
		totalTimeS += leg.Profile.TotalTimeS()
		totalDistanceAU += distanceAU
		totalDVMS += leg.Profile.DeltaVUsedMS
		totalAccelG += leg.Profile.AccelG
	}

	result.Summary = PlanSummary{
		TotalLegs:            len(legs),
		TotalTimeDays:        totalTimeS / 86400,
		TotalDistanceAU:      totalDistanceAU,
		TotalDeltaVKMS:       totalDVMS / 1000,
		AverageAccelerationG: totalAccelG / float64(len(legs)),
	}
	return result, nil
}

// WriteJSON marshals a PlanResult to w.
func (p PlanResult) WriteJSON(w io.Writer) error {
	marshaled, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(marshaled)
	return err
}

// WriteCSV writes one row per leg to w, header first.
func (p PlanResult) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"leg_number", "destination", "distance_au", "burn_time", "coast_time", "total_time", "dv_cost", "accel_g"}); err != nil {
		return err
	}
	for _, leg := range p.Legs {
		row := []string{
			strconv.Itoa(leg.LegNumber),
			leg.Destination,
			strconv.FormatFloat(leg.DistanceAU, 'f', 6, 64),
			strconv.FormatFloat(leg.BurnTimeS, 'f', 3, 64),
			strconv.FormatFloat(leg.CoastTimeS, 'f', 3, 64),
			strconv.FormatFloat(leg.TotalTimeS, 'f', 3, 64),
			strconv.FormatFloat(leg.DeltaVCostMS, 'f', 3, 64),
			strconv.FormatFloat(leg.AccelG, 'f', 3, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}
