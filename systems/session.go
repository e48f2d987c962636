package systems

import (
	"github.com/automoto/citydrive/archetypes"
	"github.com/automoto/citydrive/components"
	"github.com/yohamta/donburi/ecs"
)

// getSession returns the singleton session component, creating an empty one
// if the scene has not populated it yet.
func getSession(e *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		entry = archetypes.Session.Spawn(e)
	}
	return components.Session.Get(entry)
}

// UpdateSurface queries the surface category under the vehicle at its
// pre-move position. Runs before UpdateVehicle so the audio layer reacts to
// the ground the vehicle was actually on this tick.
func UpdateSurface(e *ecs.ECS) {
	session := getSession(e)
	if session.Map == nil {
		return
	}

	vehicleEntry, ok := components.Vehicle.First(e.World)
	if !ok {
		return
	}
	vehicle := components.Vehicle.Get(vehicleEntry)

	session.Surface = session.Map.SurfaceAt(vehicle.Position.X, vehicle.Position.Z)
}
