package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		origin Coordinate
		x, z   float64
	}{
		{"origin itself", Coordinate{Lat: 52.52, Lon: 13.405}, 0, 0},
		{"east offset", Coordinate{Lat: 52.52, Lon: 13.405}, 250, 0},
		{"north offset", Coordinate{Lat: 52.52, Lon: 13.405}, 0, -400},
		{"diagonal", Coordinate{Lat: 40.7128, Lon: -74.006}, 1200.5, 780.25},
		{"southern hemisphere", Coordinate{Lat: -33.8688, Lon: 151.2093}, -90, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProjector(tt.origin)
			c := p.ToGeo(tt.x, tt.z)
			x, z := p.ToLocal(c)
			assert.InDelta(t, tt.x, x, 1e-6)
			assert.InDelta(t, tt.z, z, 1e-6)
		})
	}
}

func TestToGeoDirections(t *testing.T) {
	p := NewProjector(Coordinate{Lat: 48.8566, Lon: 2.3522})

	east := p.ToGeo(1000, 0)
	assert.Greater(t, east.Lon, 2.3522, "positive X should move east")

	north := p.ToGeo(0, -1000)
	assert.Greater(t, north.Lat, 48.8566, "negative Z should move north")
}

func TestOrigin(t *testing.T) {
	origin := Coordinate{Lat: 59.3293, Lon: 18.0686}
	p := NewProjector(origin)
	require.Equal(t, origin, p.Origin())

	// The origin projects back to (0, 0).
	x, z := p.ToLocal(origin)
	assert.InDelta(t, 0, x, 1e-6)
	assert.InDelta(t, 0, z, 1e-6)
}
