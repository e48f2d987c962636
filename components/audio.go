package components

import (
	"github.com/automoto/citydrive/audio"
	"github.com/yohamta/donburi"
)

// ChannelState is the lifecycle of one reactive sound channel.
type ChannelState int

const (
	ChannelIdle ChannelState = iota
	ChannelStartupPlaying
	ChannelDriving
	ChannelStopped
)

// AudioData holds the injected playback service and the per-channel reaction
// state. Transitions are edge-triggered off telemetry changes; the reaction
// layer never re-fires a cue it already started.
type AudioData struct {
	Service audio.Service

	EngineState  ChannelState
	EngineHandle audio.Handle
	RoadHandle   audio.Handle

	BoostHandle     audio.Handle
	HandbrakeHandle audio.Handle

	// Previous-tick value for boost edge detection.
	PrevBoosting bool
}

var Audio = donburi.NewComponentType[AudioData]()
