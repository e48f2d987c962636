package factory

import (
	"github.com/automoto/citydrive/archetypes"
	"github.com/automoto/citydrive/components"
	cfg "github.com/automoto/citydrive/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the orbit camera rig snapped behind the vehicle so the
// first frame never pans in from the world origin.
func CreateCamera(e *ecs.ECS, vehicle *components.VehicleData) *donburi.Entry {
	entry := archetypes.Camera.Spawn(e)

	camera := &components.CameraData{
		Pitch:       cfg.Camera.DefaultPitch,
		TargetPitch: cfg.Camera.DefaultPitch,
		Zoom:        cfg.Camera.DefaultZoom,
		TargetZoom:  cfg.Camera.DefaultZoom,
		Position:    vehicle.Position,
		LookAt:      vehicle.Position,
	}
	components.Camera.Set(entry, camera)

	return entry
}
