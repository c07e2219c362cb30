package vincenty

import "math"

func degreeToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func radToDegree(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

func sq(x float64) float64 {
	return x * x
}

// normalizeAzimuth reduces an azimuth in degrees to [0, 360).
func normalizeAzimuth(az float64) float64 {
	az = math.Mod(az, 360)
	if az < 0 {
		az += 360
	}
	return az
}

// normalizeLon reduces a longitude in degrees to [-180, 180).
func normalizeLon(lon float64) float64 {
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	return lon - 180
}
