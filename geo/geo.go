// Package geo converts between the simulation's local metric coordinates and
// geographic coordinates. Local space is a flat XZ plane (Y up) anchored at a
// city origin; the projection runs through Web Mercator (EPSG:3857) so local
// offsets stay metric near the origin.
package geo

import "github.com/wroge/wgs84"

// Coordinate is a WGS84 latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Projector anchors local XZ coordinates at a geographic origin.
// +X is east, +Z is south (so -Z points north, matching the world's forward
// direction at heading zero).
type Projector struct {
	origin     Coordinate
	originX    float64
	originY    float64
	geoToMerc  wgs84.Func
	mercToGeo  wgs84.Func
}

// NewProjector builds a projector anchored at origin.
func NewProjector(origin Coordinate) *Projector {
	epsg := wgs84.EPSG()
	p := &Projector{
		origin:    origin,
		geoToMerc: epsg.Transform(4326, 3857),
		mercToGeo: epsg.Transform(3857, 4326),
	}
	p.originX, p.originY, _ = p.geoToMerc(origin.Lon, origin.Lat, 0)
	return p
}

// Origin returns the anchoring coordinate.
func (p *Projector) Origin() Coordinate {
	return p.origin
}

// ToGeo converts a local (x, z) position in meters to latitude/longitude.
func (p *Projector) ToGeo(x, z float64) Coordinate {
	lon, lat, _ := p.mercToGeo(p.originX+x, p.originY-z, 0)
	return Coordinate{Lat: lat, Lon: lon}
}

// ToLocal converts a latitude/longitude back to local (x, z) meters.
func (p *Projector) ToLocal(c Coordinate) (x, z float64) {
	mx, my, _ := p.geoToMerc(c.Lon, c.Lat, 0)
	return mx - p.originX, p.originY - my
}
