package systems

import (
	"log"
	"math"
	"time"

	"github.com/automoto/citydrive/archetypes"
	"github.com/automoto/citydrive/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTelemetry recomputes the derived display values and fans them out to
// every registered observer. Observers are fire-and-forget: one blowing up is
// logged and skipped, and the next tick still happens.
func UpdateTelemetry(e *ecs.ECS) {
	telemetry := getOrCreateTelemetry(e)
	tickFPS(telemetry, time.Now())

	vehicleEntry, ok := components.Vehicle.First(e.World)
	if !ok {
		return
	}
	vehicle := components.Vehicle.Get(vehicleEntry)
	session := getSession(e)

	snapshot := components.TelemetrySnapshot{
		SpeedKmh:     vehicle.Speed * 3.6,
		HeadingDeg:   headingDegrees(vehicle.Heading),
		FPS:          telemetry.FPS,
		BoostPercent: vehicle.Boost,
		Boosting:     vehicle.Boosting,
		Handbrake:    vehicle.HandbrakeActive,
	}
	if session.Projector != nil {
		snapshot.Position = session.Projector.ToGeo(vehicle.Position.X, vehicle.Position.Z)
	}
	telemetry.Last = snapshot

	for _, observer := range telemetry.Observers {
		notify(observer, snapshot)
	}
}

// notify isolates one observer call so a panic cannot take down the loop.
func notify(observer components.TelemetryObserver, snapshot components.TelemetrySnapshot) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Warning: telemetry observer panicked: %v", r)
		}
	}()
	observer(snapshot)
}

// tickFPS counts frames per wall-clock second, reset every full second.
// It measures the host, not the simulation, so it ignores the physics delta.
func tickFPS(t *components.TelemetryData, now time.Time) {
	if t.WindowStart.IsZero() {
		t.WindowStart = now
	}
	t.FrameCount++
	if now.Sub(t.WindowStart) >= time.Second {
		t.FPS = t.FrameCount
		t.FrameCount = 0
		t.WindowStart = now
	}
}

// RegisterTelemetryObserver adds a callback invoked once per tick with the
// latest snapshot.
func RegisterTelemetryObserver(e *ecs.ECS, observer components.TelemetryObserver) {
	telemetry := getOrCreateTelemetry(e)
	telemetry.Observers = append(telemetry.Observers, observer)
}

// LatestTelemetry returns the most recent snapshot for pull-style consumers
// like the HUD.
func LatestTelemetry(e *ecs.ECS) components.TelemetrySnapshot {
	return getOrCreateTelemetry(e).Last
}

func getOrCreateTelemetry(e *ecs.ECS) *components.TelemetryData {
	entry, ok := components.Telemetry.First(e.World)
	if !ok {
		entry = archetypes.Telemetry.Spawn(e)
	}
	return components.Telemetry.Get(entry)
}

// headingDegrees normalizes a yaw in radians to compass degrees [0, 360).
func headingDegrees(heading float64) float64 {
	deg := math.Mod(heading*180/math.Pi, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
