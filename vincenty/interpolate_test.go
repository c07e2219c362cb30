package vincenty

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Sample_Monotonic(t *testing.T) {
	p1 := GeoPoint{Lat: 23.776939, Lon: 97.724721}
	p2 := GeoPoint{Lat: 24.374530, Lon: 84.144159}

	total, err := WGS84.Inverse(p1, p2)
	assert.NoError(t, err)

	pts, err := WGS84.Sample(p1, p2, 9)
	assert.NoError(t, err)
	assert.Len(t, pts, 9)

	// Distances from the start point must be strictly increasing and stay
	// short of the full geodesic.
	prev := 0.0
	for _, p := range pts {
		inv, err := WGS84.Inverse(p1, p)
		assert.NoError(t, err)
		assert.Greater(t, inv.Distance, prev)
		assert.Less(t, inv.Distance, total.Distance)
		prev = inv.Distance
	}
}

// A single interior point sits at half the total distance.
func Test_Sample_Midpoint(t *testing.T) {
	p1 := GeoPoint{Lat: 23.776939, Lon: 97.724721}
	p2 := GeoPoint{Lat: 24.374530, Lon: 84.144159}

	total, err := WGS84.Inverse(p1, p2)
	assert.NoError(t, err)

	pts, err := WGS84.Sample(p1, p2, 1)
	assert.NoError(t, err)
	assert.Len(t, pts, 1)

	inv, err := WGS84.Inverse(p1, pts[0])
	assert.NoError(t, err)
	assert.InDelta(t, total.Distance/2, inv.Distance, 0.001)
}

func Test_Sample_InvalidCount(t *testing.T) {
	p1 := GeoPoint{Lat: 0, Lon: 0}
	p2 := GeoPoint{Lat: 1, Lon: 1}

	_, err := WGS84.Sample(p1, p2, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = WGS84.Sample(p1, p2, -3)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// Sampling between antipodal points cannot produce reliable positions and
// must fail instead of returning garbage.
func Test_Sample_Antipodal(t *testing.T) {
	_, err := WGS84.Sample(GeoPoint{Lat: 30, Lon: 10}, GeoPoint{Lat: -30, Lon: -170}, 5)

	assert.ErrorIs(t, err, ErrNoConvergence)
}

func Test_Interpolate(t *testing.T) {
	p1 := GeoPoint{Lat: 23.776939, Lon: 97.724721}
	p2 := GeoPoint{Lat: 24.374530, Lon: 84.144159}
	samples := []SamplePoint{
		{Serial: 1, Distance: 100000},
		{Serial: 2, Distance: 250000},
		{Serial: 3, Distance: 500000},
	}

	res, err := WGS84.Interpolate(p1, p2, samples)

	assert.NoError(t, err)
	assert.InDelta(t, 1382071.739, res.TotalDistance, 0.001)
	assert.InDelta(t, 275.51201, res.InitialBearing, 1.0e-5)
	assert.Len(t, res.Points, 3)

	// Each placed point must sit at its requested distance from the start.
	for _, ip := range res.Points {
		p := GeoPoint{Lat: ip.Latitude, Lon: ip.Longitude}
		assert.NoError(t, p.Validate())

		inv, err := WGS84.Inverse(p1, p)
		assert.NoError(t, err)
		assert.InDelta(t, ip.Distance, inv.Distance, 0.001)
	}
}

func Test_Interpolate_Antipodal(t *testing.T) {
	_, err := WGS84.Interpolate(
		GeoPoint{Lat: 30, Lon: 10},
		GeoPoint{Lat: -30, Lon: -170},
		[]SamplePoint{{Serial: 1, Distance: 1000}},
	)

	assert.ErrorIs(t, err, ErrNoConvergence)
}

func Test_Interpolate_NegativeDistance(t *testing.T) {
	_, err := WGS84.Interpolate(
		GeoPoint{Lat: 0, Lon: 0},
		GeoPoint{Lat: 1, Lon: 1},
		[]SamplePoint{{Serial: 1, Distance: -5}},
	)

	assert.ErrorIs(t, err, ErrInvalidInput)
}
