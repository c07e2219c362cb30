package vincenty

import (
	"errors"
	"fmt"
)

// ErrInvalidInput reports an argument outside its valid range. It is
// returned before any computation starts.
var ErrInvalidInput = errors.New("invalid input")

// ErrNoConvergence reports that the inverse iteration hit its cap without
// meeting tolerance, which happens for nearly antipodal points.
var ErrNoConvergence = errors.New("inverse solution did not converge")

// GeoPoint is a geographic coordinate in decimal degrees.
type GeoPoint struct {
	Lat float64 // latitude, [-90, 90]
	Lon float64 // longitude, [-180, 180]
}

// Validate checks the coordinate ranges. The negated comparisons also
// reject NaN.
func (p GeoPoint) Validate() error {
	if !(p.Lat >= -90 && p.Lat <= 90) {
		return fmt.Errorf("latitude %v out of range [-90, 90]: %w", p.Lat, ErrInvalidInput)
	}
	if !(p.Lon >= -180 && p.Lon <= 180) {
		return fmt.Errorf("longitude %v out of range [-180, 180]: %w", p.Lon, ErrInvalidInput)
	}
	return nil
}
