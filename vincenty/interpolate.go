package vincenty

import (
	"fmt"

	"github.com/hhkbp2/go-logging"
	"gonum.org/v1/gonum/floats"
)

// SamplePoint is one requested sample along the geodesic, identified by
// its serial number from the input file and its distance from the start
// point in meters.
type SamplePoint struct {
	Serial   int
	Distance float64
}

// InterpolatedPoint is a placed sample point.
type InterpolatedPoint struct {
	Serial    int
	Distance  float64 // meters from the start point
	Latitude  float64 // decimal degrees
	Longitude float64 // decimal degrees
}

// InterpolationResult carries the placed points together with the total
// geodesic distance and initial bearing they were placed along.
type InterpolationResult struct {
	TotalDistance  float64 // meters
	InitialBearing float64 // degrees [0, 360)
	Points         []InterpolatedPoint
}

// Interpolate places a point at each requested distance along the geodesic
// from p1 towards p2. The geodesic is solved once with Inverse, then every
// sample is placed with Direct. If the inverse solution did not converge
// the points cannot be placed reliably and ErrNoConvergence is returned.
func (e *Ellipsoid) Interpolate(p1, p2 GeoPoint, samples []SamplePoint) (*InterpolationResult, error) {
	logger := logging.GetLogger("vincenty")

	inv, err := e.Inverse(p1, p2)
	if err != nil {
		return nil, err
	}
	if !inv.Converged {
		return nil, fmt.Errorf("points %v and %v are too close to antipodal: %w", p1, p2, ErrNoConvergence)
	}

	logger.Infof("total geodesic distance %.3f m, initial bearing %.4f°", inv.Distance, inv.InitialBearing)

	res := &InterpolationResult{
		TotalDistance:  inv.Distance,
		InitialBearing: inv.InitialBearing,
		Points:         make([]InterpolatedPoint, len(samples)),
	}
	for i, sp := range samples {
		d, err := e.Direct(p1, inv.InitialBearing, sp.Distance)
		if err != nil {
			return nil, fmt.Errorf("sample %d at %.3f m: %w", sp.Serial, sp.Distance, err)
		}
		res.Points[i] = InterpolatedPoint{
			Serial:    sp.Serial,
			Distance:  sp.Distance,
			Latitude:  d.Destination.Lat,
			Longitude: d.Destination.Lon,
		}
	}
	return res, nil
}

// Sample returns count intermediate points on the geodesic from p1 to p2,
// at fractions i/(count+1) of the total distance for i = 1..count. The
// endpoints are not included; the caller already has them. Points are
// ordered by increasing distance from p1.
func (e *Ellipsoid) Sample(p1, p2 GeoPoint, count int) ([]GeoPoint, error) {
	if count < 1 {
		return nil, fmt.Errorf("point count %d must be at least 1: %w", count, ErrInvalidInput)
	}

	inv, err := e.Inverse(p1, p2)
	if err != nil {
		return nil, err
	}
	if !inv.Converged {
		return nil, fmt.Errorf("points %v and %v are too close to antipodal: %w", p1, p2, ErrNoConvergence)
	}

	// Evenly partition [0, D] and keep the interior nodes.
	nodes := floats.Span(make([]float64, count+2), 0, inv.Distance)

	points := make([]GeoPoint, count)
	for i, dist := range nodes[1 : count+1] {
		d, err := e.Direct(p1, inv.InitialBearing, dist)
		if err != nil {
			return nil, err
		}
		points[i] = d.Destination
	}
	return points, nil
}
