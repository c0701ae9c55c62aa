package starnav

import "math"

// Policy scores a Profile as a single scalar cost by weighted sum of
// time, delta-v, comfort (headroom below MaxAccelG), and coast
// duration. All weights are expected non-negative.
type Policy struct {
	TimeWeight    float64
	DeltaVWeight  float64
	ComfortWeight float64
	DisableCoast  bool
}

// Evaluate scores profile, or returns +Inf if DisableCoast is set and
// profile has a nonzero coast phase. A nil profile has no cost: the
// caller should treat it as no neighbor, not as zero cost.
func (p Policy) Evaluate(profile *Profile) float64 {
	if profile == nil {
		return math.NaN()
	}
	if p.DisableCoast && profile.CoastTimeS > 0 {
		return math.Inf(1)
	}
	return p.TimeWeight*(profile.TotalTimeS()/1000) +
		p.DeltaVWeight*(profile.DeltaVUsedMS/1000) +
		p.ComfortWeight*((MaxAccelG-profile.AccelG)*1000) +
		p.ComfortWeight*(profile.CoastTimeS/3600)
}
