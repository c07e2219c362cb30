package vincenty

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_WGS84Constants(t *testing.T) {
	assert.Equal(t, 6378137.0, WGS84.A)
	assert.Equal(t, 1/298.257223563, WGS84.F)
	assert.InDelta(t, 6356752.314245, WGS84.B, 1.0e-6)
}

func Test_NewEllipsoid(t *testing.T) {
	// GRS80, as used by the GSI calculation program.
	grs80 := NewEllipsoid(6378137.0, 1/298.257222101)

	assert.Equal(t, 6378137.0, grs80.A)
	assert.InDelta(t, 6356752.314140, grs80.B, 1.0e-6)
}

func Test_NormalizeAzimuth(t *testing.T) {
	assert.Equal(t, 0.0, normalizeAzimuth(360))
	assert.Equal(t, 45.0, normalizeAzimuth(-315))
	assert.Equal(t, 45.0, normalizeAzimuth(765))
	assert.Equal(t, 359.5, normalizeAzimuth(-0.5))
}

func Test_NormalizeLon(t *testing.T) {
	assert.Equal(t, 170.0, normalizeLon(-190))
	assert.Equal(t, -170.0, normalizeLon(190))
	assert.Equal(t, 0.0, normalizeLon(360))
	assert.Equal(t, -180.0, normalizeLon(180))
}
