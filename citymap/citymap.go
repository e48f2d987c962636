// Package citymap provides the city-side collaborators the simulation core
// consumes: surface classification under a position and spawn placement.
// Maps are authored as TMX files with rectangular surface zones; zones are
// indexed in a resolv space so the per-tick surface query is a cheap cell
// lookup rather than a scan.
package citymap

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/citydrive/geo"
	"github.com/lafriks/go-tiled"
	"github.com/solarlune/resolv"
)

// SurfaceTag classifies the ground material under a position.
type SurfaceTag string

const (
	SurfaceNone    SurfaceTag = "none"
	SurfaceAsphalt SurfaceTag = "asphalt"
	SurfaceGravel  SurfaceTag = "gravel"
	SurfaceGrass   SurfaceTag = "grass"
	SurfaceDirt    SurfaceTag = "dirt"
)

// SurfaceZone is one rectangular surface region in local meters.
// X/Z address the zone's top-left (north-west) corner.
type SurfaceZone struct {
	X, Z, W, H float64
	Tag        SurfaceTag
}

// Spawn is the initial vehicle placement in local meters.
type Spawn struct {
	X, Z    float64
	Heading float64
}

// Map is one loaded city.
type Map struct {
	ID     string
	Name   string
	Origin geo.Coordinate
	Width  float64 // meters
	Height float64
	Zones  []SurfaceZone

	spawn Spawn
	space *resolv.Space
	probe *resolv.Object
}

const cellSize = 16

// New builds a map from already-parsed data. Load goes through here; tests
// can too, without authoring TMX files.
func New(id, name string, origin geo.Coordinate, width, height float64, zones []SurfaceZone, spawn Spawn) *Map {
	m := &Map{
		ID:     id,
		Name:   name,
		Origin: origin,
		Width:  width,
		Height: height,
		Zones:  zones,
		spawn:  spawn,
	}

	m.space = resolv.NewSpace(int(width)+cellSize, int(height)+cellSize, cellSize, cellSize)
	for i, z := range zones {
		obj := resolv.NewObject(z.X, z.Z, z.W, z.H, string(z.Tag))
		// Later zones overlay earlier ones; the index decides the winner.
		obj.Data = i
		m.space.Add(obj)
	}

	m.probe = resolv.NewObject(0, 0, 0.5, 0.5)
	m.space.Add(m.probe)

	return m
}

// Load parses a TMX city file from fsys.
func Load(fsys fs.FS, tmxPath string) (*Map, error) {
	cityMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	scale := cityMap.Properties.GetFloat("metersPerPixel")
	if scale <= 0 {
		scale = 1
	}

	origin := geo.Coordinate{
		Lat: cityMap.Properties.GetFloat("originLat"),
		Lon: cityMap.Properties.GetFloat("originLon"),
	}

	id := strings.TrimSuffix(filepath.Base(tmxPath), ".tmx")
	name := cityMap.Properties.GetString("cityName")
	if name == "" {
		name = id
	}

	var zones []SurfaceZone
	var spawn Spawn
	haveSpawn := false

	for _, og := range cityMap.ObjectGroups {
		switch og.Name {
		case "surfaces":
			for _, o := range og.Objects {
				zones = append(zones, SurfaceZone{
					X:   o.X * scale,
					Z:   o.Y * scale,
					W:   o.Width * scale,
					H:   o.Height * scale,
					Tag: SurfaceTag(o.Type),
				})
			}
		case "spawns":
			for _, o := range og.Objects {
				if haveSpawn && o.Name != "default" {
					continue
				}
				spawn = Spawn{
					X:       o.X * scale,
					Z:       o.Y * scale,
					Heading: o.Properties.GetFloat("heading"),
				}
				haveSpawn = true
			}
		}
	}

	if !haveSpawn {
		return nil, fmt.Errorf("city %s defines no spawn point", id)
	}

	width := float64(cityMap.Width*cityMap.TileWidth) * scale
	height := float64(cityMap.Height*cityMap.TileHeight) * scale

	return New(id, name, origin, width, height, zones, spawn), nil
}

// LoadAll discovers every .tmx city in dir within fsys and returns the loaded
// maps keyed by ID plus a sorted ID list for menus.
func LoadAll(fsys fs.FS, dir string) (map[string]*Map, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	cities := make(map[string]*Map, len(matches))
	ids := make([]string, 0, len(matches))
	for _, path := range matches {
		m, err := Load(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		cities[m.ID] = m
		ids = append(ids, m.ID)
	}

	sort.Strings(ids)
	return cities, ids, nil
}

// SurfaceAt reports the surface category under the local (x, z) position.
// Overlapping zones resolve to the last one authored, so detail zones drawn
// over a base fill win. Positions outside every zone report SurfaceNone.
func (m *Map) SurfaceAt(x, z float64) SurfaceTag {
	m.probe.X = x - 0.25
	m.probe.Y = z - 0.25
	m.probe.Update()

	check := m.probe.Check(0, 0)
	if check == nil {
		return SurfaceNone
	}

	best := -1
	tag := SurfaceNone
	for _, obj := range check.Objects {
		idx, ok := obj.Data.(int)
		if !ok || idx <= best {
			continue
		}
		// Cell overlap is coarse; confirm the point is inside the zone.
		if x < obj.X || x > obj.X+obj.W || z < obj.Y || z > obj.Y+obj.H {
			continue
		}
		best = idx
		tag = SurfaceTag(m.Zones[idx].Tag)
	}
	return tag
}

// SpawnPosition returns the initial vehicle placement.
func (m *Map) SpawnPosition() Spawn {
	return m.spawn
}
