package config

// CueID represents a logical sound cue
type CueID int

const (
	CueNone CueID = iota
	CueStartup
	CueEngine
	CueRoad
	CueBoost
	CueHandbrake
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate       int
	DefaultMasterVol float64

	// Reaction thresholds, m/s
	EngineMinSpeed float64 // below this and with no throttle the engine sound stops
	RoadMinSpeed   float64 // road noise is silent below this
	RoadFullSpeed  float64 // road noise reaches full volume here
}

// CueConfig maps cues to embedded file paths and per-cue tuning
type CueConfig struct {
	Paths             map[CueID]string
	VolumeMultipliers map[CueID]float64
	Looping           map[CueID]bool

	// Road noise gain per surface category; unknown surfaces stay silent.
	SurfaceGain map[string]float64
}

var Audio AudioConfig
var Cue CueConfig

func init() {
	Audio = AudioConfig{
		SampleRate:       44100,
		DefaultMasterVol: 0.8,

		EngineMinSpeed: 0.4,
		RoadMinSpeed:   1.5,
		RoadFullSpeed:  30.0,
	}

	Cue = CueConfig{
		Paths: map[CueID]string{
			CueStartup:   "audio/startup.wav",
			CueEngine:    "audio/engine.wav",
			CueRoad:      "audio/road.wav",
			CueBoost:     "audio/boost.wav",
			CueHandbrake: "audio/handbrake.wav",
		},
		VolumeMultipliers: map[CueID]float64{
			CueStartup:   1.0,
			CueEngine:    0.9,
			CueRoad:      0.7,
			CueBoost:     1.0,
			CueHandbrake: 0.8,
		},
		Looping: map[CueID]bool{
			CueEngine:    true,
			CueRoad:      true,
			CueHandbrake: true,
		},
		SurfaceGain: map[string]float64{
			"asphalt": 0.6,
			"gravel":  1.0,
			"grass":   0.8,
			"dirt":    0.9,
		},
	}
}
