// Package vincenty solves the direct and inverse geodesic problems on a
// reference ellipsoid using Vincenty's formulae, and interpolates
// intermediate points along a geodesic.
package vincenty

// Convergence constants shared by the inverse and direct solvers.
const (
	convergenceEps = 1e-12 // radians
	maxIterations  = 200
)

// Ellipsoid holds the shape constants of a reference ellipsoid.
type Ellipsoid struct {
	A float64 // semi-major axis (meters)
	F float64 // flattening
	B float64 // semi-minor axis (meters), a*(1-f)
}

// NewEllipsoid initializes an ellipsoid from its semi-major axis a (meters)
// and flattening f. The semi-minor axis is derived.
func NewEllipsoid(a, f float64) *Ellipsoid {
	return &Ellipsoid{A: a, F: f, B: a * (1 - f)}
}

// WGS84 is a pre-initialized ellipsoid representing Earth.
// https://en.wikipedia.org/wiki/World_Geodetic_System
var WGS84 = NewEllipsoid(6378137.0, 1/298.257223563)
