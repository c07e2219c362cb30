package vincenty

import "math"

// InverseResult is the solution of the inverse geodesic problem.
// When Converged is false the values are the last iterate and must be
// treated as unreliable.
type InverseResult struct {
	Distance       float64 // geodesic distance (meters)
	InitialBearing float64 // azimuth at p1, degrees [0, 360)
	FinalBearing   float64 // azimuth at p2, degrees [0, 360)
	Converged      bool
}

// Inverse solves the inverse geodesic problem: the distance and the
// azimuths at both ends of the geodesic between p1 and p2.
//
// Nearly antipodal pairs are a documented limitation of the method: the
// iteration oscillates or converges arbitrarily slowly, the cap is reached
// and the result is returned with Converged set to false. This is expected
// behavior, not an error.
//
// Notes:
//
//	https://en.wikipedia.org/wiki/Vincenty%27s_formulae
//	https://vldb.gsi.go.jp/sokuchi/surveycalc/surveycalc/bl2stf.html
func (e *Ellipsoid) Inverse(p1, p2 GeoPoint) (InverseResult, error) {
	if err := p1.Validate(); err != nil {
		return InverseResult{}, err
	}
	if err := p2.Validate(); err != nil {
		return InverseResult{}, err
	}

	// Coincident points would make the reduced-latitude difference vanish
	// inside the iteration; answer directly.
	if p1.Lat == p2.Lat && p1.Lon == p2.Lon {
		return InverseResult{Converged: true}, nil
	}

	// Reduced latitudes on the auxiliary sphere.
	U1 := math.Atan((1 - e.F) * math.Tan(degreeToRad(p1.Lat)))
	U2 := math.Atan((1 - e.F) * math.Tan(degreeToRad(p2.Lat)))
	sinU1, cosU1 := math.Sincos(U1)
	sinU2, cosU2 := math.Sincos(U2)

	// Longitude difference, and the iteration variable it seeds.
	L := degreeToRad(p2.Lon - p1.Lon)
	lambda := L

	var sinSigma, cosSigma, sigma, cos2Alpha, cos2SigmaM float64
	converged := false
	for i := 0; i < maxIterations; i++ {
		sinLambda, cosLambda := math.Sincos(lambda)
		sinSigma = math.Sqrt(sq(cosU2*sinLambda) + sq(cosU1*sinU2-sinU1*cosU2*cosLambda))
		if sinSigma == 0 {
			// Zero separation on the auxiliary sphere for distinct points:
			// the pair is antipodal and the iterate is indeterminate.
			return InverseResult{}, nil
		}
		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma = math.Atan2(sinSigma, cosSigma)
		sinAlpha := cosU1 * cosU2 * sinLambda / sinSigma
		cos2Alpha = 1 - sinAlpha*sinAlpha
		if cos2Alpha == 0 {
			// Equatorial geodesic: cos(2σm) would be 0/0.
			cos2SigmaM = 0
		} else {
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cos2Alpha
		}
		C := e.F / 16 * cos2Alpha * (4 + e.F*(4-3*cos2Alpha))

		prev := lambda
		lambda = L + (1-C)*e.F*sinAlpha*
			(sigma+C*sinSigma*(cos2SigmaM+C*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))
		if math.Abs(lambda-prev) < convergenceEps {
			converged = true
			break
		}
	}

	// Hitting the cap is reported through Converged; the last iterate is
	// still evaluated so the caller gets finite numbers.
	u2 := cos2Alpha * (e.A*e.A - e.B*e.B) / (e.B * e.B)
	bigA := 1 + u2/16384*(4096+u2*(-768+u2*(320-175*u2)))
	bigB := u2 / 1024 * (256 + u2*(-128+u2*(74-47*u2)))
	deltaSigma := bigB * sinSigma * (cos2SigmaM + bigB/4*
		(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
			bigB/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))

	sinLambda, cosLambda := math.Sincos(lambda)
	alpha1 := math.Atan2(cosU2*sinLambda, cosU1*sinU2-sinU1*cosU2*cosLambda)
	alpha2 := math.Atan2(cosU1*sinLambda, -sinU1*cosU2+cosU1*sinU2*cosLambda)

	return InverseResult{
		Distance:       e.B * bigA * (sigma - deltaSigma),
		InitialBearing: normalizeAzimuth(radToDegree(alpha1)),
		FinalBearing:   normalizeAzimuth(radToDegree(alpha2)),
		Converged:      converged,
	}, nil
}
