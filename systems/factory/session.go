package factory

import (
	"github.com/automoto/citydrive/archetypes"
	"github.com/automoto/citydrive/audio"
	"github.com/automoto/citydrive/citymap"
	"github.com/automoto/citydrive/components"
	"github.com/automoto/citydrive/geo"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the singleton session entity binding the loaded city
// and its geo projector to this world.
func CreateSession(e *ecs.ECS, city *citymap.Map) *donburi.Entry {
	entry := archetypes.Session.Spawn(e)

	components.Session.Set(entry, &components.SessionData{
		CityID:    city.ID,
		Map:       city,
		Projector: geo.NewProjector(city.Origin),
		Surface:   citymap.SurfaceNone,
	})

	return entry
}

// CreateAudio spawns the singleton audio entity with an explicitly injected
// playback service. A nil service leaves the reaction layer inert, which is
// the degraded mode when audio initialization failed.
func CreateAudio(e *ecs.ECS, service audio.Service) *donburi.Entry {
	entry := archetypes.Audio.Spawn(e)
	components.Audio.Set(entry, &components.AudioData{Service: service})
	return entry
}
