package factory

import (
	"github.com/automoto/citydrive/archetypes"
	"github.com/automoto/citydrive/components"
	cfg "github.com/automoto/citydrive/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateVehicle spawns the vehicle entity at a position with a full boost
// meter and zeroed motion state.
func CreateVehicle(e *ecs.ECS, spec cfg.VehicleSpec, pos components.Vec3, heading float64) *donburi.Entry {
	entry := archetypes.Vehicle.Spawn(e)

	data := &components.VehicleData{Spec: spec}
	data.Reset(pos, heading)
	components.Vehicle.Set(entry, data)

	return entry
}
