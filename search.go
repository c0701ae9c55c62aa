package starnav

import (
	"container/heap"
	"fmt"
	"math"

	kitlog "github.com/go-kit/kit/log"
)

// maxSearchIterations bounds the number of pops the search engine
// performs before giving up: the heuristic is not admissible, so there
// is no other guarantee of termination short of exhausting the open
// set.
const maxSearchIterations = 500

// Leg pairs a burn profile with the body it arrives at, in the order
// the planner visited them.
type Leg struct {
	Profile Profile
	Body    BodyID
}

// nodeState is one entry in the search's open set.
type nodeState struct {
	body        BodyID
	timestamp   float64
	dvRemaining float64
	path        []Leg
	costSoFar   float64
	heuristic   float64
	totalCost   float64
	seq         int // insertion order, for stable tie-breaking
}

type openSet []*nodeState

func (o openSet) Len() int { return len(o) }
func (o openSet) Less(i, j int) bool {
	if o[i].totalCost != o[j].totalCost {
		return o[i].totalCost < o[j].totalCost
	}
	return o[i].seq < o[j].seq
}
func (o openSet) Swap(i, j int) { o[i], o[j] = o[j], o[i] }
func (o *openSet) Push(x any)   { *o = append(*o, x.(*nodeState)) }
func (o *openSet) Pop() any {
	old := *o
	n := len(old)
	item := old[n-1]
	*o = old[:n-1]
	return item
}

type visitedKey struct {
	body BodyID
	time int64
}

func roundTime(t float64) int64 {
	return int64(math.Round(t))
}

// PathFinder runs one planning request against an Arena's body
// catalog. It holds per-instance mutable state (the search log, the
// last full path) so concurrent requests must each use their own
// instance, per the one-thread-per-request concurrency model.
type PathFinder struct {
	arena  *Arena
	vessel Vessel
	policy Policy
	nodes  []BodyID

	maxAccelG float64
	logger    kitlog.Logger

	searchLog  []searchLogEntry
	launchTime float64
	origin     BodyID
	fullPath   []Leg
}

// NewPathFinder constructs a PathFinder scoped to nodes (typically
// Arena.All()). If logger is nil a no-op logger is used.
func NewPathFinder(arena *Arena, vessel Vessel, policy Policy, nodes []BodyID, logger kitlog.Logger) *PathFinder {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	return &PathFinder{
		arena:     arena,
		vessel:    vessel,
		policy:    policy,
		nodes:     nodes,
		maxAccelG: math.Min(MaxAccelG, vessel.MaxAccelerationMS2()/gInMS2),
		logger:    kitlog.With(logger, "subsys", "search"),
		origin:    noBody,
	}
}

// FindPath searches for a route from origin to destination departing
// at launchTime. When mandatoryStops is non-empty the route visits
// them in order (strict ordering); otherwise a single unconstrained
// search is run directly to destination.
func (pf *PathFinder) FindPath(origin, destination BodyID, launchTime float64, mandatoryStops []BodyID) ([]Leg, error) {
	pf.launchTime = launchTime
	pf.origin = origin
	pf.searchLog = nil

	if len(mandatoryStops) > 0 {
		waypoints := append([]BodyID{origin}, mandatoryStops...)
		waypoints = append(waypoints, destination)
		return pf.findPathForWaypoints(waypoints, launchTime)
	}
	return pf.findDirectPath(origin, destination, launchTime)
}

// findPathForWaypoints stitches legs across an ordered sequence of
// waypoints, feeding each leg's arrival time into the next leg's
// departure. A leg with no path aborts the whole request (REDESIGN:
// fail fast, rather than silently extending a nulled path).
func (pf *PathFinder) findPathForWaypoints(waypoints []BodyID, launchTime float64) ([]Leg, error) {
	var full []Leg
	currentOrigin := waypoints[0]
	currentTime := launchTime

	for _, next := range waypoints[1:] {
		legPath, err := pf.findDirectPath(currentOrigin, next, currentTime)
		if err != nil {
			return nil, err
		}
		full = append(full, legPath...)
		currentOrigin = next
		for _, leg := range legPath {
			currentTime += leg.Profile.TotalTimeS()
		}
	}

	pf.fullPath = full
	pf.origin = waypoints[0]
	return full, nil
}

var errNoPath = fmt.Errorf("starnav: no path found")

// IsNoPath reports whether err is the sentinel "no feasible path"
// result rather than a construction or lookup failure.
func IsNoPath(err error) bool { return err == errNoPath }

func (pf *PathFinder) findDirectPath(origin, destination BodyID, launchTime float64) ([]Leg, error) {
	found := false
	for _, n := range pf.nodes {
		if n == destination {
			found = true
			break
		}
	}
	if !found {
		return nil, errNoPath
	}

	start := &nodeState{
		body:        origin,
		timestamp:   launchTime,
		dvRemaining: pf.vessel.DeltaVMS,
	}

	open := &openSet{start}
	heap.Init(open)

	visited := make(map[visitedKey]bool)
	bestCost := make(map[visitedKey]float64)
	seq := 0

	for iterations := 0; open.Len() > 0 && iterations < maxSearchIterations; iterations++ {
		current := heap.Pop(open).(*nodeState)
		key := visitedKey{current.body, roundTime(current.timestamp)}
		if visited[key] {
			continue
		}
		visited[key] = true

		pf.searchLog = append(pf.searchLog, searchLogEntry{
			bodyName:  pf.arena.Body(current.body).Name,
			timestamp: current.timestamp,
			costSoFar: current.costSoFar,
		})

		if current.body == destination {
			pf.fullPath = current.path
			return current.path, nil
		}

		for _, neighbor := range pf.nodes {
			if neighbor == current.body {
				continue
			}

			distanceM, arrivalTime, err := pf.estimateArrival(current.body, neighbor, current.timestamp)
			if err != nil {
				continue
			}
			ok, err := pf.arena.validatePath(current.body, neighbor, current.timestamp, arrivalTime)
			if err != nil || !ok {
				continue
			}

			profiles := candidateProfiles(pf.vessel, distanceM, pf.maxAccelG, current.dvRemaining)
			for i := range profiles {
				profile := profiles[i]
				profileCost := pf.policy.Evaluate(&profile)
				if math.IsInf(profileCost, 1) {
					continue
				}

				arrival := current.timestamp + profile.TotalTimeS()
				dvRemaining := current.dvRemaining - profile.DeltaVUsedMS
				if dvRemaining < 0 {
					dvRemaining = pf.vessel.DeltaVMS
				}

				path := make([]Leg, len(current.path), len(current.path)+1)
				copy(path, current.path)
				path = append(path, Leg{Profile: profile, Body: neighbor})

				seq++
				next := &nodeState{
					body:        neighbor,
					timestamp:   arrival,
					dvRemaining: dvRemaining,
					path:        path,
					seq:         seq,
				}
				next.costSoFar = current.costSoFar + profileCost
				next.heuristic = pf.estimateHeuristic(next, destination)
				next.totalCost = next.costSoFar + next.heuristic

				nextKey := visitedKey{neighbor, roundTime(arrival)}
				if prior, ok := bestCost[nextKey]; ok && next.totalCost >= prior {
					continue
				}
				bestCost[nextKey] = next.totalCost
				heap.Push(open, next)
			}
		}
	}
	return nil, errNoPath
}

// estimateArrival refines a predicted flight time by averaging a fast
// and a slow pseudo-profile, then re-queries target's position at the
// refined arrival time. This single-step refinement stands in for
// true ballistic targeting against a moving body.
func (pf *PathFinder) estimateArrival(origin, target BodyID, timestamp float64) (float64, float64, error) {
	staticDistance, err := pf.distanceAtTime(origin, target, timestamp)
	if err != nil {
		return 0, 0, err
	}

	fast := computeTravelTime(pf.vessel, staticDistance, pf.maxAccelG, false, false, 0)
	slow := computeTravelTime(pf.vessel, staticDistance, 0.05, false, false, 0.3*pf.vessel.DeltaVMS)
	if fast == nil && slow == nil {
		return 0, 0, errNoPath
	}
	var averageTime float64
	switch {
	case fast != nil && slow != nil:
		averageTime = (fast.TotalTimeS() + slow.TotalTimeS()) / 2
	case fast != nil:
		averageTime = fast.TotalTimeS()
	default:
		averageTime = slow.TotalTimeS()
	}

	arrivalTime := timestamp + averageTime
	targetPos, err := pf.arena.PositionAt(target, arrivalTime)
	if err != nil {
		return 0, 0, err
	}
	originPos, err := pf.arena.PositionAt(origin, timestamp)
	if err != nil {
		return 0, 0, err
	}
	newDistanceM := linearDistance(originPos, targetPos) * AUInMetre
	return newDistanceM, arrivalTime, nil
}

func (pf *PathFinder) distanceAtTime(a, b BodyID, timestamp float64) (float64, error) {
	posA, err := pf.arena.PositionAt(a, timestamp)
	if err != nil {
		return 0, err
	}
	posB, err := pf.arena.PositionAt(b, timestamp)
	if err != nil {
		return 0, err
	}
	return linearDistance(posA, posB) * AUInMetre, nil
}

// estimateHeuristic scores the straight-line, full-budget pseudo-leg
// from state's current position to destination, using the same
// policy the search is minimizing. This makes the heuristic
// non-admissible (it double-counts policy cost already paid on the
// real edge) but keeps the search biased toward the destination.
func (pf *PathFinder) estimateHeuristic(state *nodeState, destination BodyID) float64 {
	distanceM, err := pf.distanceAtTime(state.body, destination, state.timestamp)
	if err != nil {
		return 0
	}
	pseudo := computeTravelTime(pf.vessel, distanceM, pf.maxAccelG, false, false, 0)
	if pseudo == nil {
		return 0
	}
	cost := pf.policy.Evaluate(pseudo)
	if math.IsNaN(cost) {
		return 0
	}
	return cost
}

// SearchLog returns the diagnostic expansion log for the most recent
// FindPath call on this PathFinder (every leg of a multi-stop request).
func (pf *PathFinder) SearchLog() []searchLogEntry { return pf.searchLog }

// FullPath returns the most recently computed path, if any.
func (pf *PathFinder) FullPath() []Leg { return pf.fullPath }

// Origin returns the origin of the most recent FindPath call.
func (pf *PathFinder) Origin() BodyID { return pf.origin }
