package vincenty

import (
	"fmt"
	"math"
)

// DirectResult is the solution of the direct geodesic problem.
type DirectResult struct {
	Destination  GeoPoint
	FinalBearing float64 // azimuth at the destination, degrees [0, 360)
}

// Direct solves the direct geodesic problem: the destination reached by
// following the geodesic from p1 under the given initial bearing (degrees,
// any real value, reduced mod 360) for the given distance (meters).
//
// Unlike Inverse this always terminates: σ is a bounded monotonic function
// of the distance, so the refinement cannot oscillate.
func (e *Ellipsoid) Direct(p1 GeoPoint, bearing, distance float64) (DirectResult, error) {
	if err := p1.Validate(); err != nil {
		return DirectResult{}, err
	}
	if !(distance >= 0) || math.IsInf(distance, 0) {
		return DirectResult{}, fmt.Errorf("distance %v must be finite and non-negative: %w", distance, ErrInvalidInput)
	}
	if math.IsNaN(bearing) || math.IsInf(bearing, 0) {
		return DirectResult{}, fmt.Errorf("bearing %v must be finite: %w", bearing, ErrInvalidInput)
	}

	bearing = normalizeAzimuth(bearing)
	if distance == 0 {
		return DirectResult{Destination: p1, FinalBearing: bearing}, nil
	}

	sinAlpha1, cosAlpha1 := math.Sincos(degreeToRad(bearing))

	tanU1 := (1 - e.F) * math.Tan(degreeToRad(p1.Lat))
	cosU1 := 1 / math.Sqrt(1+tanU1*tanU1)
	sinU1 := tanU1 * cosU1

	// Angular distance on the auxiliary sphere from the equator to p1.
	sigma1 := math.Atan2(tanU1, cosAlpha1)

	// Clairaut's relation: sin α is constant along the geodesic.
	sinAlpha := cosU1 * sinAlpha1
	cos2Alpha := 1 - sinAlpha*sinAlpha

	u2 := cos2Alpha * (e.A*e.A - e.B*e.B) / (e.B * e.B)
	bigA := 1 + u2/16384*(4096+u2*(-768+u2*(320-175*u2)))
	bigB := u2 / 1024 * (256 + u2*(-128+u2*(74-47*u2)))

	sigma := distance / (e.B * bigA)
	var sinSigma, cosSigma, cos2SigmaM float64
	for i := 0; i < maxIterations; i++ {
		cos2SigmaM = math.Cos(2*sigma1 + sigma)
		sinSigma, cosSigma = math.Sincos(sigma)
		deltaSigma := bigB * sinSigma * (cos2SigmaM + bigB/4*
			(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
				bigB/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))
		prev := sigma
		sigma = distance/(e.B*bigA) + deltaSigma
		if math.Abs(sigma-prev) < convergenceEps {
			break
		}
	}

	sinSigma, cosSigma = math.Sincos(sigma)
	lat2 := math.Atan2(sinU1*cosSigma+cosU1*sinSigma*cosAlpha1,
		(1-e.F)*math.Sqrt(sinAlpha*sinAlpha+sq(sinU1*sinSigma-cosU1*cosSigma*cosAlpha1)))
	lambda := math.Atan2(sinSigma*sinAlpha1, cosU1*cosSigma-sinU1*sinSigma*cosAlpha1)
	C := e.F / 16 * cos2Alpha * (4 + e.F*(4-3*cos2Alpha))
	L := lambda - (1-C)*e.F*sinAlpha*
		(sigma+C*sinSigma*(cos2SigmaM+C*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))
	alpha2 := math.Atan2(sinAlpha, -(sinU1*sinSigma - cosU1*cosSigma*cosAlpha1))

	return DirectResult{
		Destination: GeoPoint{
			Lat: radToDegree(lat2),
			Lon: normalizeLon(p1.Lon + radToDegree(L)),
		},
		FinalBearing: normalizeAzimuth(radToDegree(alpha2)),
	}, nil
}
