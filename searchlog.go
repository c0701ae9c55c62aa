package starnav

import (
	"fmt"
	"io"
	"time"

	"github.com/gonum/stat"
	"github.com/soniakeys/meeus/julian"
)

// epoch is the reference instant against which a plan request's
// elapsedSeconds timestamps are measured, used only to stamp
// diagnostic log lines with a Julian Date.
var epoch = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

// searchLogEntry is one expansion record: a body popped off the open
// set, the simulated timestamp it was popped at, and the cost
// accumulated to reach it.
type searchLogEntry struct {
	bodyName  string
	timestamp float64
	costSoFar float64
}

// WriteSearchLog writes one line per expansion, in pop order: body
// name, elapsed seconds, the equivalent Julian Date, and cost_so_far.
func (pf *PathFinder) WriteSearchLog(w io.Writer) error {
	for _, entry := range pf.searchLog {
		jd := julian.TimeToJD(epoch.Add(time.Duration(entry.timestamp) * time.Second))
		if _, err := fmt.Fprintf(w, "%s\t%.1f\t%.5f\t%.1f\n", entry.bodyName, entry.timestamp, jd, entry.costSoFar); err != nil {
			return err
		}
	}
	return nil
}

// SearchLogCostStats summarizes the cost_so_far distribution across a
// completed search's expansions.
type SearchLogCostStats struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// CostStats computes SearchLogCostStats over the current search log.
// Returns the zero value if the log is empty.
func (pf *PathFinder) CostStats() SearchLogCostStats {
	if len(pf.searchLog) == 0 {
		return SearchLogCostStats{}
	}
	costs := make([]float64, len(pf.searchLog))
	min, max := pf.searchLog[0].costSoFar, pf.searchLog[0].costSoFar
	for i, entry := range pf.searchLog {
		costs[i] = entry.costSoFar
		if entry.costSoFar < min {
			min = entry.costSoFar
		}
		if entry.costSoFar > max {
			max = entry.costSoFar
		}
	}
	mean, stddev := stat.MeanStdDev(costs, nil)
	return SearchLogCostStats{Mean: mean, StdDev: stddev, Min: min, Max: max}
}
