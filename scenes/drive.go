package scenes

import (
	"log"
	"sync"
	"time"

	"github.com/automoto/citydrive/assets"
	"github.com/automoto/citydrive/audio"
	"github.com/automoto/citydrive/citymap"
	"github.com/automoto/citydrive/components"
	cfg "github.com/automoto/citydrive/config"
	"github.com/automoto/citydrive/geo"
	"github.com/automoto/citydrive/systems"
	"github.com/automoto/citydrive/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// maxFrameDelta caps the wall-clock delta fed to physics so a stalled frame
// (window drag, tab in background) does not integrate one giant step.
const maxFrameDelta = 0.25

// DriveScene hosts one driving session. It owns the per-frame loop, measures
// the wall-clock delta, and guarantees the system tick order: smoothing, then
// dynamics, then camera, telemetry, audio reactions, and persistence.
type DriveScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	cityID       string
	once         sync.Once

	audioService audio.Service
	lastTick     time.Time
	disposed     bool
}

// NewDriveScene creates a driving session for a city.
func NewDriveScene(sc SceneChanger, cityID string) *DriveScene {
	return &DriveScene{sceneChanger: sc, cityID: cityID}
}

func (ds *DriveScene) Update() {
	if ds.disposed {
		return
	}
	ds.once.Do(ds.configure)

	// Variable-timestep integration off the wall clock. The first tick has
	// no previous timestamp and advances nothing.
	now := time.Now()
	delta := 0.0
	if !ds.lastTick.IsZero() {
		delta = now.Sub(ds.lastTick).Seconds()
		if delta > maxFrameDelta {
			delta = maxFrameDelta
		}
	}
	ds.lastTick = now

	if sessionEntry, ok := components.Session.First(ds.ecs.World); ok {
		components.Session.Get(sessionEntry).Delta = delta
	}

	ds.ecs.Update()
	ds.handleSceneActions()
}

// handleSceneActions reacts to the session-level actions after the tick:
// reset-to-spawn, overlay toggle, and leaving for the menu.
func (ds *DriveScene) handleSceneActions() {
	controlsEntry, ok := components.Controls.First(ds.ecs.World)
	if !ok {
		return
	}
	controls := components.Controls.Get(controlsEntry)

	if systems.GetAction(controls, cfg.ActionReset).JustPressed {
		systems.ResetPhysics(ds.ecs)
	}
	if systems.GetAction(controls, cfg.ActionToggleOverlay).JustPressed {
		cfg.Debug.Overlay = !cfg.Debug.Overlay
	}
	if systems.GetAction(controls, cfg.ActionBack).JustPressed {
		ds.Dispose()
		ds.sceneChanger.ChangeScene(NewMenuScene(ds.sceneChanger))
	}
}

func (ds *DriveScene) Draw(screen *ebiten.Image) {
	if ds.disposed || ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}

// Dispose halts the session synchronously: no further ticks run, the audio
// loops stop, and the physics state is zeroed so nothing leaks into the next
// session.
func (ds *DriveScene) Dispose() {
	if ds.disposed {
		return
	}
	ds.disposed = true

	if ds.audioService != nil {
		ds.audioService.StopAll()
	}
	if ds.ecs != nil {
		systems.ResetPhysics(ds.ecs)
		ds.ecs = nil
	}
}

func (ds *DriveScene) configure() {
	city := ds.loadCity()

	settings, _ := systems.LoadSettings()
	specName := cfg.DefaultSpec
	if settings != nil {
		specName = settings.VehicleSpec
		cfg.Debug.Overlay = settings.DebugOverlay
	}

	// The playback service is constructed here and passed in explicitly;
	// a failed audio stack degrades to a silent session, never a crash.
	ds.audioService = audio.NewEngine()
	if settings != nil {
		ds.audioService.SetMasterVolume(settings.MasterVolume)
	}

	world := ecs.NewECS(donburi.NewWorld())

	// Tick order is the contract: smoothing before dynamics before camera
	// and telemetry, persistence last. Never interleaved across ticks.
	world.AddSystem(systems.UpdateInput)
	world.AddSystem(systems.UpdateSurface)
	world.AddSystem(systems.UpdateControls)
	world.AddSystem(systems.UpdateVehicle)
	world.AddSystem(systems.UpdateCamera)
	world.AddSystem(systems.UpdateTelemetry)
	world.AddSystem(systems.UpdateAudioReactions)
	world.AddSystem(systems.UpdatePersistence)

	world.AddRenderer(cfg.Default, systems.DrawWorld)
	world.AddRenderer(cfg.Default, systems.DrawHUD)
	world.AddRenderer(cfg.Default, systems.DrawOverlay)

	ds.ecs = world

	sessionEntry := factory.CreateSession(world, city)
	session := components.Session.Get(sessionEntry)
	factory.CreateAudio(world, ds.audioService)

	pos, heading := startPose(city, session.Projector, ds.cityID)
	vehicleEntry := factory.CreateVehicle(world, cfg.Spec(specName), pos, heading)
	factory.CreateCamera(world, components.Vehicle.Get(vehicleEntry))
}

// loadCity resolves the requested city, falling back to a bare test plane
// when the embedded maps cannot be read. The session still starts: car
// present, physics functional, world visuals absent.
func (ds *DriveScene) loadCity() *citymap.Map {
	cities, _, err := citymap.LoadAll(assets.MapFS(), "maps")
	if err != nil {
		log.Printf("Warning: could not load city maps, starting degraded: %v", err)
		return fallbackCity(ds.cityID)
	}
	if city, ok := cities[ds.cityID]; ok {
		return city
	}
	log.Printf("Warning: unknown city %q, starting degraded", ds.cityID)
	return fallbackCity(ds.cityID)
}

func fallbackCity(id string) *citymap.Map {
	return citymap.New(id, "Fallback", geo.Coordinate{}, 1000, 1000,
		[]citymap.SurfaceZone{{X: 0, Z: 0, W: 1000, H: 1000, Tag: citymap.SurfaceAsphalt}},
		citymap.Spawn{X: 500, Z: 500})
}

// startPose prefers the persisted per-city position over the map spawn.
func startPose(city *citymap.Map, projector *geo.Projector, cityID string) (components.Vec3, float64) {
	if saved, err := systems.LoadPosition(cityID); err == nil && saved != nil {
		x, z := projector.ToLocal(geo.Coordinate{Lat: saved.Lat, Lon: saved.Lon})
		return components.Vec3{X: x, Z: z}, saved.Heading
	}
	spawn := city.SpawnPosition()
	return components.Vec3{X: spawn.X, Z: spawn.Z}, spawn.Heading
}
