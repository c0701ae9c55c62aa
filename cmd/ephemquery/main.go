// Command ephemquery prints the position of a named body at a given
// timestamp, in the format the ephemeris-query external interface
// describes: (x, y, z) in AU plus a type tag.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/senteworks/starnav"
	"github.com/senteworks/starnav/catalog"
)

func main() {
	body := flag.String("body", "", "body name to query")
	timestamp := flag.Float64("t", 0, "seconds since system epoch")
	flag.Parse()

	if *body == "" {
		log.Fatal("[error] -body is required")
	}

	arena, err := catalog.Build()
	if err != nil {
		log.Fatalf("[error] building catalog: %s", err)
	}

	id, err := arena.Lookup(*body)
	if err != nil {
		log.Fatalf("[error] %s", err)
	}

	pos, err := arena.PositionAt(id, *timestamp)
	if err != nil {
		log.Fatalf("[error] %s", err)
	}

	fmt.Printf("%s @ t=%.1f: (%.9f, %.9f, %.9f) AU [%s]\n",
		*body, *timestamp, pos[0], pos[1], pos[2], typeTag(arena, id))
}

func typeTag(arena *starnav.Arena, id starnav.BodyID) string {
	b := arena.Body(id)
	switch b.Kind {
	case starnav.KindPlanet:
		return "planet"
	case starnav.KindDwarfPlanet:
		return "dwarf"
	case starnav.KindMoon:
		return "orbital_" + arena.Body(b.Primary).Name
	case starnav.KindLagrangePoint:
		switch b.LagrangePoint {
		case starnav.L1, starnav.L2:
			return "lagrange_orbital_" + arena.Body(b.Secondary).Name
		default:
			return "lagrange"
		}
	default:
		return "star"
	}
}
