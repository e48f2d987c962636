package components

import (
	"github.com/automoto/citydrive/audio"
	cfg "github.com/automoto/citydrive/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// Intent is the smoothed, per-frame control signal set fed to the vehicle
// dynamics. Values change only through the control smoother.
type Intent struct {
	Throttle  float64 // [-1, 1], negative is reverse
	Brake     float64 // [0, 1]
	Steer     float64 // [-1, 1], before scaling by max steering angle
	Boost     bool
	Handbrake bool
}

// ControlsData stores the raw per-frame input snapshot and the smoothed
// intent derived from it. Raw state is a pressed-flag array double-buffered
// across frames; JustPressed/JustReleased are computed by comparing frames.
type ControlsData struct {
	Current  [cfg.ActionCount]bool // Current frame's pressed state
	Previous [cfg.ActionCount]bool // Previous frame's pressed state

	Intent Intent

	// Startup gate: while the engine start cue is still playing, the
	// smoother forces the intent to neutral so the vehicle cannot move
	// before the startup sequence completes.
	StartupHandle audio.Handle
	GateOpen      bool // set once the startup cue has finished
}

var Controls = donburi.NewComponentType[ControlsData]()
