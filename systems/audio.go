package systems

import (
	"log"
	"math"

	"github.com/automoto/citydrive/archetypes"
	"github.com/automoto/citydrive/audio"
	"github.com/automoto/citydrive/components"
	cfg "github.com/automoto/citydrive/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAudioReactions maps vehicle telemetry onto playback decisions. This
// layer never synthesizes sound: it starts, stops, and parameterizes cues on
// the injected service. All discrete transitions are edge-triggered; the
// continuous engine/road updates run once per tick while their loop is live.
func UpdateAudioReactions(e *ecs.ECS) {
	audioEntry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(audioEntry)
	if audioData.Service == nil {
		return
	}

	vehicleEntry, ok := components.Vehicle.First(e.World)
	if !ok {
		return
	}
	vehicle := components.Vehicle.Get(vehicleEntry)
	session := getSession(e)

	updateEngineChannel(audioData, vehicle)
	updateRoadChannel(audioData, vehicle, string(session.Surface))
	updateBoostCue(audioData, vehicle)
	updateHandbrakeCue(audioData, vehicle)

	audioData.PrevBoosting = vehicle.Boosting
}

// updateEngineChannel runs the engine channel state machine. The engine loop
// starts only once motion or throttle appears after the startup sequence, and
// stops again when both speed and acceleration are negligible.
func updateEngineChannel(a *components.AudioData, v *components.VehicleData) {
	moving := math.Abs(v.Speed) > cfg.Audio.EngineMinSpeed
	working := math.Abs(v.Throttle) > throttleEpsilon || math.Abs(v.LastAccel) > 0.1

	switch a.EngineState {
	case components.ChannelStartupPlaying:
		// The control smoother owns the transition out of startup.
		return
	case components.ChannelIdle, components.ChannelStopped:
		if moving || working {
			h, err := a.Service.Play(cfg.CueEngine)
			if err != nil {
				log.Printf("Warning: engine cue failed: %v", err)
				return
			}
			a.EngineHandle = h
			a.EngineState = components.ChannelDriving
		}
	case components.ChannelDriving:
		if !moving && !working {
			a.Service.Stop(a.EngineHandle)
			a.EngineHandle = audio.NoHandle
			a.EngineState = components.ChannelStopped
			return
		}
		a.Service.UpdateEngineSound(v.Speed, v.Throttle, v.LastAccel > 0.1)
	}
}

// updateRoadChannel keeps the road noise loop alive while driving and feeds
// it speed and surface every tick. The service decides volume and timbre.
func updateRoadChannel(a *components.AudioData, v *components.VehicleData, surface string) {
	moving := math.Abs(v.Speed) > cfg.Audio.RoadMinSpeed

	if moving && a.RoadHandle == audio.NoHandle {
		h, err := a.Service.Play(cfg.CueRoad)
		if err != nil {
			log.Printf("Warning: road cue failed: %v", err)
			return
		}
		a.RoadHandle = h
	}
	if !moving && a.RoadHandle != audio.NoHandle {
		a.Service.Stop(a.RoadHandle)
		a.RoadHandle = audio.NoHandle
		return
	}
	if a.RoadHandle != audio.NoHandle {
		a.Service.UpdateRoadSound(v.Speed, surface)
	}
}

// updateBoostCue fires on boost engagement edges only, stopping the current
// cue on the opposite edge rather than re-firing every frame.
func updateBoostCue(a *components.AudioData, v *components.VehicleData) {
	if v.Boosting && !a.PrevBoosting {
		if a.BoostHandle != audio.NoHandle {
			a.Service.Stop(a.BoostHandle)
		}
		h, err := a.Service.Play(cfg.CueBoost)
		if err != nil {
			log.Printf("Warning: boost cue failed: %v", err)
			return
		}
		a.BoostHandle = h
	}
	if !v.Boosting && a.PrevBoosting && a.BoostHandle != audio.NoHandle {
		a.Service.Stop(a.BoostHandle)
		a.BoostHandle = audio.NoHandle
	}
}

// updateHandbrakeCue keeps the skid loop alive only while the handbrake is
// held at speed. Dragging to a standstill silences the loop even with the
// lever still pulled.
func updateHandbrakeCue(a *components.AudioData, v *components.VehicleData) {
	engaged := v.HandbrakeActive && math.Abs(v.Speed) > cfg.Audio.RoadMinSpeed
	wasEngaged := a.HandbrakeHandle != audio.NoHandle

	if engaged && !wasEngaged {
		h, err := a.Service.Play(cfg.CueHandbrake)
		if err != nil {
			log.Printf("Warning: handbrake cue failed: %v", err)
			return
		}
		a.HandbrakeHandle = h
	}
	if !engaged && wasEngaged {
		a.Service.Stop(a.HandbrakeHandle)
		a.HandbrakeHandle = audio.NoHandle
	}
}

// GetOrCreateAudio returns the singleton audio component. The scene injects
// the playback service right after creation; until then the reaction layer
// is inert.
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = archetypes.Audio.Spawn(e)
	}
	return components.Audio.Get(entry)
}
