package citymap

import (
	"testing"

	"github.com/automoto/citydrive/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMap() *Map {
	zones := []SurfaceZone{
		{X: 0, Z: 0, W: 200, H: 200, Tag: SurfaceGrass},
		{X: 0, Z: 80, W: 200, H: 40, Tag: SurfaceAsphalt},
		{X: 150, Z: 150, W: 30, H: 30, Tag: SurfaceDirt},
	}
	return New("test", "Testville", geo.Coordinate{Lat: 50, Lon: 8}, 200, 200, zones, Spawn{X: 100, Z: 100})
}

func TestSurfaceAt(t *testing.T) {
	m := newTestMap()

	tests := []struct {
		name string
		x, z float64
		want SurfaceTag
	}{
		{"base grass", 50, 30, SurfaceGrass},
		{"road over grass wins", 50, 100, SurfaceAsphalt},
		{"detail patch wins", 160, 160, SurfaceDirt},
		{"outside every zone", 500, 500, SurfaceNone},
		{"negative coordinates", -40, -40, SurfaceNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.SurfaceAt(tt.x, tt.z))
		})
	}
}

func TestSurfaceAtIsRepeatable(t *testing.T) {
	m := newTestMap()

	// The probe moves with every query; earlier queries must not bleed
	// into later ones.
	assert.Equal(t, SurfaceAsphalt, m.SurfaceAt(50, 100))
	assert.Equal(t, SurfaceGrass, m.SurfaceAt(50, 30))
	assert.Equal(t, SurfaceAsphalt, m.SurfaceAt(50, 100))
}

func TestMapMetadata(t *testing.T) {
	m := newTestMap()
	require.Equal(t, "test", m.ID)
	assert.Equal(t, Spawn{X: 100, Z: 100}, m.SpawnPosition())
	assert.Equal(t, geo.Coordinate{Lat: 50, Lon: 8}, m.Origin)
}
