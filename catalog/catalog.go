// Package catalog holds the static seed data for the Cise=Sente star
// system: the star, its planets, dwarf planets, moons, and the
// Lagrange points generated for each planet. It is loaded once at
// startup into a starnav.Arena and is otherwise inert data.
package catalog

import (
	"fmt"
	"math"
	"strings"

	"github.com/senteworks/starnav"
)

// auInKM is the kilometre-to-AU conversion the source catalog applies
// to moon semimajor axes (given in kilometres rather than AU).
const auInKM = 149597870.7

type planetSeed struct {
	name                string
	radiusKM, massKG    float64
	semimajorAxisAU     float64
	eccentricity        float64
	inclinationDeg      float64
	longitudeAscNodeDeg float64
	argPeriapsisDeg     float64
	meanAnomalyDeg      float64
}

type moonSeed struct {
	name                string
	primary             string
	semimajorAxisKM     float64
	eccentricity        float64
	inclinationDeg      float64
	longitudeAscNodeDeg float64
	argPeriapsisDeg     float64
	meanAnomalyDeg      float64
}

var planetSeeds = []planetSeed{
	{"Senawasa", 66445, 6.6e27, 0.0417, 0.00151, 0.0175, 42.2, 270, -131},
	{"Ihokronu", 4224, 1.6e24, 0.168, 0.0281, 0.0435, 214, 20.1, -60.7},
	{"Kukkyo", 7985, 2.3e25, 0.394, 0.245, 0.0101, 182, 87, 173},
	{"Junesgi", 58107, 1.35e27, 0.604, 0.00279, 0, 0, 267, 84.1},
	{"Ayurka", 5938, 4.64e24, 1.29, 0.00177, 0.513, 125, 189, 148},
	{"Iraska", 7302, 2.47e24, 2.4, 0.0307, 0.194, 266, 35.4, 171},
	{"Noki Esfero", 25672, 1.36e26, 6.23, 0.00413, 0.338, 98, 209, 10.9},
	{"Gundemon", 104373, 7.8e27, 16.0, 0.0312, 0.745, 317, 259, 144},
	{"Seruna", 42304, 1.75e27, 38.7, 0.148, 2.97, 315, 0.792, -160},
}

var dwarfPlanetSeeds = []planetSeed{
	{"Merua", 468, 1.34e22, 3.76, 0.0579, 3.56, 347, 233, -56.9},
	{"Ixia", 716, 7.71e21, 4.14, 0.0299, 0.0116, 27.7, 228, -37.3},
	{"Akfane", 448, 1.85e21, 4.98, 0.0273, 5.48, 1.11, 45.2, -107},
	{"Casna", 331, 6.73e20, 5.32, 0.0469, 7.43, 132, 82.6, -172},
	{"Yeaik", 1032, 1.9e22, 18.4, 0.0973, 13, 348, 236, -63},
	{"Horta", 884, 1.34e22, 24.5, 0.122, 1.52, 44.9, 219, 110},
	{"Gamio", 943, 1.73e22, 25.7, 0.0462, 11.4, 353, 242, 96.4},
	{"Karmauk", 960, 1.73e22, 62.8, 0.179, 12.6, 22.1, 0, -140},
	{"Oriciknes", 1150, 2.64e22, 103, 0.392, 22.1, 83, 160, -58},
	{"Kidixia", 1350, 4.17e22, 188, 0.512, 8.7, 22.1, 76.1, -52.6},
	{"Opu Yu", 1580, 7.64e22, 639, 0.766, 48.3, 0, 249, -13.2},
}

var moonSeeds = []moonSeed{
	{"Tanau", "Kukkyo", 86466, 0.00155, 0.253, 34.2, 182, 175},
	{"Ca", "Kukkyo", 125465, 0.00306, 0.0727, 278, 144, 47.9},
	{"Onno", "Kukkyo", 178689, 0.0544, 0.0399, 243, 359, -150},
	{"Usiek", "Junesgi", 212810, 0.000227, 0.281, 327, 133, 109},
	{"Nesgada", "Junesgi", 456840, 0.00313, 0.649, 44.9, 51.8, -175},
	{"Haka", "Ayurka", 266958, 0.00494, 0.2, 276, 191, -45.2},
	{"Kerka", "Ayurka", 461834, 0.0232, 0.236, 154, 77.4, 33.4},
	{"Orione", "Iraska", 167815, 0.00126, 0.125, 267, 350, 0.466},
	{"Isune", "Iraska", 244280, 0.000914, 0.113, 64.6, 327, 169},
	{"Funisia", "Noki Esfero", 166115, 0.000397, 0.0117, 342, 270, -180},
	{"Toku", "Noki Esfero", 401156, 0.0002, 0.00429, 34.8, 270, 180},
	{"Animaja", "Noki Esfero", 793670, 0.0, 0.0013, 338, 0, -55.8},
	{"Eikkain", "Gundemon", 460914, 0.0, 0.000883, 6.19, 145, 6.19},
	{"Ahakain", "Gundemon", 1805196, 0.0, 0.0055, 303, 0, 44.3},
	{"Eraaik", "Gundemon", 4433870, 0.0, 5.05, 277, 0.0, -110},
	{"Noui", "Gundemon", 6599255, 0.0, 0.47, 211, 0, -172},
}

func (s planetSeed) elements() starnav.OrbitalElements {
	return starnav.OrbitalElements{
		SemimajorAxisM:        s.semimajorAxisAU * starnav.AUInMetre,
		Eccentricity:          s.eccentricity,
		InclinationDeg:        s.inclinationDeg,
		LongitudeAscNodeDeg:   s.longitudeAscNodeDeg,
		ArgPeriapsisDeg:       s.argPeriapsisDeg,
		MeanAnomalyAtEpochDeg: s.meanAnomalyDeg,
	}
}

// Build constructs the full Cise=Sente arena: the star, every planet
// and dwarf planet, every moon, and the five Lagrange points generated
// for each planet.
func Build() (*starnav.Arena, error) {
	star := starnav.Body{
		Name:     "Cise=Sente",
		Kind:     starnav.KindStar,
		RadiusKM: 649119,
		MassKG:   4.23e30,
	}
	arena, err := starnav.NewArena(star)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	starID := arena.StarID()

	planetIDs := make(map[string]starnav.BodyID, len(planetSeeds))
	for _, seed := range planetSeeds {
		id, err := addBody(arena, starnav.Body{
			Name:     seed.name,
			Kind:     starnav.KindPlanet,
			RadiusKM: seed.radiusKM,
			MassKG:   seed.massKG,
			Primary:  starID,
			Elements: seed.elements(),
		})
		if err != nil {
			return nil, fmt.Errorf("catalog: planet %s: %w", seed.name, err)
		}
		planetIDs[seed.name] = id
	}

	for _, seed := range dwarfPlanetSeeds {
		if _, err := addBody(arena, starnav.Body{
			Name:     seed.name,
			Kind:     starnav.KindDwarfPlanet,
			RadiusKM: seed.radiusKM,
			MassKG:   seed.massKG,
			Primary:  starID,
			Elements: seed.elements(),
		}); err != nil {
			return nil, fmt.Errorf("catalog: dwarf planet %s: %w", seed.name, err)
		}
	}

	for _, seed := range moonSeeds {
		primaryID, ok := planetIDs[seed.primary]
		if !ok {
			return nil, fmt.Errorf("catalog: moon %s: unknown primary %q", seed.name, seed.primary)
		}
		elements := starnav.OrbitalElements{
			SemimajorAxisM:        seed.semimajorAxisKM / auInKM * starnav.AUInMetre,
			Eccentricity:          seed.eccentricity,
			InclinationDeg:        seed.inclinationDeg,
			LongitudeAscNodeDeg:   seed.longitudeAscNodeDeg,
			ArgPeriapsisDeg:       seed.argPeriapsisDeg,
			MeanAnomalyAtEpochDeg: seed.meanAnomalyDeg,
		}
		if _, err := addBody(arena, starnav.Body{
			Name:     seed.name,
			Kind:     starnav.KindMoon,
			Primary:  primaryID,
			Elements: elements,
		}); err != nil {
			return nil, fmt.Errorf("catalog: moon %s: %w", seed.name, err)
		}
	}

	for _, seed := range planetSeeds {
		planetID := planetIDs[seed.name]
		planetMassKG := seed.massKG
		hillRadiusKM := seed.semimajorAxisAU * math.Cbrt(planetMassKG/(3*star.MassKG)) * (starnav.AUInMetre / 1000)

		baseName := strings.ToUpper(seed.name)
		if len(baseName) > 3 {
			baseName = baseName[:3]
		}

		lagrangeSeeds := []struct {
			kind              starnav.LagrangeKind
			meanAnomalyOffset float64
		}{
			{starnav.L1, 0},
			{starnav.L2, 0},
			{starnav.L3, -180},
			{starnav.L4, 60},
			{starnav.L5, -60},
		}
		for _, lp := range lagrangeSeeds {
			elements := seed.elements()
			elements.MeanAnomalyAtEpochDeg += lp.meanAnomalyOffset
			if _, err := addBody(arena, starnav.Body{
				Name:          fmt.Sprintf("%s-%s", baseName, lp.kind),
				Kind:          starnav.KindLagrangePoint,
				Primary:       starID,
				Secondary:     planetID,
				LagrangePoint: lp.kind,
				SizeKM:        hillRadiusKM,
				Elements:      elements,
			}); err != nil {
				return nil, fmt.Errorf("catalog: lagrange point for %s: %w", seed.name, err)
			}
		}
	}

	return arena, nil
}

// addBody is the one seam catalog construction needs into starnav's
// Arena builder: it appends through Arena.AddBody, the same
// validated-append path NewArena uses for the bodies it is given.
func addBody(arena *starnav.Arena, b starnav.Body) (starnav.BodyID, error) {
	return arena.AddBody(b)
}
