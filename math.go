package starnav

import (
	"math"

	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"
)

const (
	deg2rad = math.Pi / 180
	rad2deg = 1 / deg2rad
	// AUInMetre is one astronomical unit, in metres.
	AUInMetre = 1.496e11
	// mu is the universal gravitational constant, m^3 kg^-1 s^-2.
	mu = 6.67430e-11
	// gInMS2 converts a multiple of Earth gravity to m/s^2.
	gInMS2 = 9.81
)

// Norm returns the Euclidean norm of a 3x1 vector.
func Norm(v []float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Unit returns the unit vector of a, or the zero vector if a is too
// close to zero to normalize safely.
func Unit(a []float64) (b []float64) {
	n := Norm(a)
	if floats.EqualWithinAbs(n, 0, 1e-12) {
		return []float64{0, 0, 0}
	}
	b = make([]float64, len(a))
	for i, val := range a {
		b[i] = val / n
	}
	return
}

// dot performs the inner product of two 3x1 vectors.
func dot(a, b []float64) float64 {
	rtn := 0.
	for i := 0; i < len(a); i++ {
		rtn += a[i] * b[i]
	}
	return rtn
}

// linearDistance returns the Euclidean distance between two points,
// in whatever unit the points are expressed in.
func linearDistance(a, b []float64) float64 {
	return Norm([]float64{b[0] - a[0], b[1] - a[1], b[2] - a[2]})
}

// distancePointToSegment returns the shortest distance from point p to
// the segment a-b.
func distancePointToSegment(p, a, b []float64) float64 {
	ab := []float64{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
	denom := dot(ab, ab)
	if floats.EqualWithinAbs(denom, 0, 1e-12) {
		return linearDistance(p, a)
	}
	pa := []float64{p[0] - a[0], p[1] - a[1], p[2] - a[2]}
	t := dot(pa, ab) / denom
	t = math.Max(0, math.Min(1, t))
	projection := []float64{a[0] + t*ab[0], a[1] + t*ab[1], a[2] + t*ab[2]}
	return linearDistance(p, projection)
}

// moveTowards moves current toward target by distance, clamping at
// target should distance overshoot it.
func moveTowards(current, target []float64, distance float64) []float64 {
	direction := []float64{target[0] - current[0], target[1] - current[1], target[2] - current[2]}
	length := Norm(direction)
	if floats.EqualWithinAbs(length, 0, 1e-12) || distance >= length {
		return target
	}
	unit := Unit(direction)
	return []float64{current[0] + unit[0]*distance, current[1] + unit[1]*distance, current[2] + unit[2]*distance}
}

// Deg2rad converts degrees to radians, and enforces only positive numbers.
func Deg2rad(a float64) float64 {
	if a < 0 {
		a += 360
	}
	return math.Mod(a*deg2rad, 2*math.Pi)
}

// Rad2deg converts radians to degrees, and enforces only positive numbers.
func Rad2deg(a float64) float64 {
	if a < 0 {
		a += 2 * math.Pi
	}
	return math.Mod(a/deg2rad, 360)
}

// R3R1R3 performs a 3-1-3 Euler parameter rotation, used to place a
// Kepler-plane coordinate into the inertial frame: rotate by argument
// of periapsis about Z, by inclination about X, then by longitude of
// ascending node about Z.
func R3R1R3(ω, i, Ω float64) *mat64.Dense {
	sω, cω := math.Sincos(ω)
	si, ci := math.Sincos(i)
	sΩ, cΩ := math.Sincos(Ω)
	return mat64.NewDense(3, 3, []float64{
		cΩ*cω - sΩ*ci*sω, -cΩ*sω - sΩ*ci*cω, sΩ * si,
		sΩ*cω + cΩ*ci*sω, -sΩ*sω + cΩ*ci*cω, -cΩ * si,
		si * sω, si * cω, ci,
	})
}

// MxV33 multiplies a 3x3 matrix with a 3x1 vector.
func MxV33(m *mat64.Dense, v []float64) []float64 {
	vVec := mat64.NewVector(3, v)
	var rVec mat64.Vector
	rVec.MulVec(m, vVec)
	return []float64{rVec.At(0, 0), rVec.At(1, 0), rVec.At(2, 0)}
}
