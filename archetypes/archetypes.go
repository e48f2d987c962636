package archetypes

import (
	"github.com/automoto/citydrive/components"
	cfg "github.com/automoto/citydrive/config"
	"github.com/automoto/citydrive/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Vehicle = newArchetype(
		tags.Vehicle,
		components.Vehicle,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
	)
	Session = newArchetype(
		tags.Session,
		components.Session,
	)
	Controls = newArchetype(
		components.Controls,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Telemetry = newArchetype(
		components.Telemetry,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
