// Command planrequest resolves a plan request against the static
// catalog: vessel, policy, origin, destination, optional mandatory
// stops, and a launch time, printing the resulting leg list and
// summary or an explicit no-path indicator.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/senteworks/starnav"
	"github.com/senteworks/starnav/catalog"
)

func main() {
	origin := flag.String("origin", "", "origin body name")
	destination := flag.String("destination", "", "destination body name")
	stops := flag.String("stops", "", "comma-separated mandatory stop body names, in order")
	launchTime := flag.Float64("launch-time", 0, "launch time, seconds since system epoch")
	vesselName := flag.String("vessel", "", "vessel preset name (empty = multi-purpose)")
	timeWeight := flag.Float64("time-weight", 1, "policy time weight")
	deltaVWeight := flag.Float64("dv-weight", 1, "policy delta-v weight")
	comfortWeight := flag.Float64("comfort-weight", 1, "policy comfort weight")
	disableCoast := flag.Bool("disable-coast", false, "forbid coasting legs")
	searchLog := flag.String("search-log", "", "optional path to write the diagnostic search log")
	flag.Parse()

	if *origin == "" || *destination == "" {
		log.Fatal("[error] -origin and -destination are required")
	}

	arena, err := catalog.Build()
	if err != nil {
		log.Fatalf("[error] building catalog: %s", err)
	}

	originID, err := arena.Lookup(*origin)
	if err != nil {
		log.Fatalf("[error] %s", err)
	}
	destinationID, err := arena.Lookup(*destination)
	if err != nil {
		log.Fatalf("[error] %s", err)
	}

	var stopIDs []starnav.BodyID
	if *stops != "" {
		for _, name := range strings.Split(*stops, ",") {
			id, err := arena.Lookup(strings.TrimSpace(name))
			if err != nil {
				log.Fatalf("[error] mandatory stop: %s", err)
			}
			stopIDs = append(stopIDs, id)
		}
	}

	vessel, err := starnav.VesselByName(*vesselName)
	if err != nil {
		log.Fatalf("[error] %s", err)
	}
	policy := starnav.Policy{
		TimeWeight:    *timeWeight,
		DeltaVWeight:  *deltaVWeight,
		ComfortWeight: *comfortWeight,
		DisableCoast:  *disableCoast,
	}

	pf := starnav.NewPathFinder(arena, vessel, policy, arena.All(), starnav.NewLogger("planrequest"))
	legs, err := pf.FindPath(originID, destinationID, *launchTime, stopIDs)
	if err != nil {
		if starnav.IsNoPath(err) {
			fmt.Println("no path found")
			return
		}
		log.Fatalf("[error] %s", err)
	}

	printLegs(arena, legs)

	if *searchLog != "" {
		f, err := os.Create(*searchLog)
		if err != nil {
			log.Fatalf("[error] creating search log: %s", err)
		}
		defer f.Close()
		if err := pf.WriteSearchLog(f); err != nil {
			log.Fatalf("[error] writing search log: %s", err)
		}
	}
}

func printLegs(arena *starnav.Arena, legs []starnav.Leg) {
	var totalTimeS, totalDistanceM, totalDVMS, totalAccelG float64
	for i, leg := range legs {
		distanceAU := leg.Profile.DistanceTraveledM / starnav.AUInMetre
		fmt.Printf("leg %d: -> %s (%.4f AU) burn=%.1fs coast=%.1fs total=%.1fs dv=%.1fm/s accel=%.2fg\n",
			i+1, arena.Body(leg.Body).Name, distanceAU,
			leg.Profile.BurnTimeS, leg.Profile.CoastTimeS, leg.Profile.TotalTimeS(),
			leg.Profile.DeltaVUsedMS, leg.Profile.AccelG)

		totalTimeS += leg.Profile.TotalTimeS()
		totalDistanceM += leg.Profile.DistanceTraveledM
		totalDVMS += leg.Profile.DeltaVUsedMS
		totalAccelG += leg.Profile.AccelG
	}
	if len(legs) == 0 {
		return
	}
	fmt.Printf("summary: legs=%d total_time_days=%.2f total_distance_au=%.4f total_dv_km_s=%.3f avg_accel_g=%.2f\n",
		len(legs), totalTimeS/86400, totalDistanceM/starnav.AUInMetre, totalDVMS/1000, totalAccelG/float64(len(legs)))
}
