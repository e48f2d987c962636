package components

import (
	"time"

	"github.com/automoto/citydrive/geo"
	"github.com/yohamta/donburi"
)

// TelemetrySnapshot is the derived display state recomputed every frame.
// Values are read-only for observers and never persisted.
type TelemetrySnapshot struct {
	SpeedKmh     float64
	HeadingDeg   float64
	FPS          int
	BoostPercent float64
	Position     geo.Coordinate
	Boosting     bool
	Handbrake    bool
}

// TelemetryObserver receives a snapshot once per tick. Observers are
// fire-and-forget: a panicking observer is logged and skipped, never allowed
// to stop the loop.
type TelemetryObserver func(TelemetrySnapshot)

// TelemetryData owns the latest snapshot, the FPS counter, and the observer
// registrations.
type TelemetryData struct {
	Last TelemetrySnapshot

	// FPS is frames per wall-clock second, independent of the physics delta.
	FrameCount  int
	WindowStart time.Time
	FPS         int

	Observers []TelemetryObserver
}

var Telemetry = donburi.NewComponentType[TelemetryData]()
