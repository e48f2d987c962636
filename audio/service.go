// Package audio defines the playback contract the simulation core drives.
// The core never synthesizes sound; it decides when cues start, stop, and how
// the continuous engine/road loops should sound, and hands those decisions to
// a Service. Tests substitute a fake; the game wires the ebiten-backed Engine.
package audio

import cfg "github.com/automoto/citydrive/config"

// Handle identifies one playing cue instance. The zero value is never issued.
type Handle int

// NoHandle is the absent-handle sentinel.
const NoHandle Handle = 0

// Service is the playback backend contract.
type Service interface {
	// Play starts a cue and returns its handle. Looping cues keep playing
	// until stopped.
	Play(cue cfg.CueID) (Handle, error)

	// IsPlaying reports whether the cue behind the handle is still audible.
	// Unknown or finished handles report false.
	IsPlaying(h Handle) bool

	// Stop halts the cue behind the handle. Safe on unknown handles.
	Stop(h Handle)

	// StopAll halts everything. Called on session teardown.
	StopAll()

	// UpdateEngineSound adjusts the continuous engine loop from vehicle
	// telemetry. Called once per tick while the engine channel is active.
	UpdateEngineSound(speed, throttle float64, accelerating bool)

	// UpdateRoadSound adjusts the road noise loop from speed and the
	// surface category under the vehicle. Called once per tick.
	UpdateRoadSound(speed float64, surface string)

	// SetMasterVolume scales all playback, 0.0 - 1.0.
	SetMasterVolume(v float64)
}
