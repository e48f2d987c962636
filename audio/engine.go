package audio

import (
	"fmt"
	"math"
	"sync"

	"github.com/automoto/citydrive/assets"
	cfg "github.com/automoto/citydrive/config"
	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// Engine is the ebiten-backed Service. One Engine is constructed per process
// (the ebiten audio context is global) and handed to whoever needs playback;
// nothing in the simulation reaches for it through package state.
type Engine struct {
	loader *assets.AudioLoader
	master float64

	nextHandle Handle
	players    map[Handle]*eaudio.Player
	cues       map[Handle]cfg.CueID

	// Active continuous loops, adjusted every tick.
	engineLoop Handle
	roadLoop   Handle
}

var contextOnce sync.Once
var sharedContext *eaudio.Context

// NewEngine creates the playback engine and preloads every configured cue.
func NewEngine() *Engine {
	contextOnce.Do(func() {
		sharedContext = eaudio.NewContext(cfg.Audio.SampleRate)
	})

	loader := assets.NewAudioLoader(sharedContext)
	paths := make([]string, 0, len(cfg.Cue.Paths))
	for _, p := range cfg.Cue.Paths {
		paths = append(paths, p)
	}
	loader.Preload(paths)

	return &Engine{
		loader:     loader,
		master:     cfg.Audio.DefaultMasterVol,
		nextHandle: 1,
		players:    make(map[Handle]*eaudio.Player),
		cues:       make(map[Handle]cfg.CueID),
	}
}

func (e *Engine) Play(cue cfg.CueID) (Handle, error) {
	path, ok := cfg.Cue.Paths[cue]
	if !ok {
		return NoHandle, fmt.Errorf("no audio path configured for cue %d", cue)
	}

	var player *eaudio.Player
	var err error
	if cfg.Cue.Looping[cue] {
		player, err = e.loader.LoadLoop(path)
	} else {
		player, err = e.loader.LoadCue(path)
	}
	if err != nil {
		return NoHandle, err
	}

	player.SetVolume(e.master * cfg.Cue.VolumeMultipliers[cue])
	player.Play()

	h := e.nextHandle
	e.nextHandle++
	e.players[h] = player
	e.cues[h] = cue

	switch cue {
	case cfg.CueEngine:
		e.engineLoop = h
	case cfg.CueRoad:
		e.roadLoop = h
	}
	return h, nil
}

func (e *Engine) IsPlaying(h Handle) bool {
	player, ok := e.players[h]
	if !ok {
		return false
	}
	if player.IsPlaying() {
		return true
	}
	e.release(h)
	return false
}

func (e *Engine) Stop(h Handle) {
	if player, ok := e.players[h]; ok {
		player.Pause()
		_ = player.Close()
		e.release(h)
	}
}

func (e *Engine) StopAll() {
	for h := range e.players {
		e.Stop(h)
	}
}

func (e *Engine) release(h Handle) {
	delete(e.players, h)
	delete(e.cues, h)
	if e.engineLoop == h {
		e.engineLoop = NoHandle
	}
	if e.roadLoop == h {
		e.roadLoop = NoHandle
	}
}

// UpdateEngineSound maps speed and throttle onto the engine loop volume.
// Without a pitch control in the backend, load is expressed as loudness.
func (e *Engine) UpdateEngineSound(speed, throttle float64, accelerating bool) {
	player, ok := e.players[e.engineLoop]
	if !ok {
		return
	}

	load := math.Abs(speed)/cfg.Audio.RoadFullSpeed + 0.5*math.Abs(throttle)
	if accelerating {
		load += 0.15
	}
	load = clamp01(0.25 + 0.75*clamp01(load))
	player.SetVolume(e.master * cfg.Cue.VolumeMultipliers[cfg.CueEngine] * load)
}

// UpdateRoadSound maps speed and surface category onto the road noise loop.
// Loudness rises monotonically with speed and each surface has its own gain;
// below the minimum speed the loop is silenced.
func (e *Engine) UpdateRoadSound(speed float64, surface string) {
	player, ok := e.players[e.roadLoop]
	if !ok {
		return
	}

	abs := math.Abs(speed)
	if abs < cfg.Audio.RoadMinSpeed {
		player.SetVolume(0)
		return
	}

	ramp := clamp01((abs - cfg.Audio.RoadMinSpeed) / (cfg.Audio.RoadFullSpeed - cfg.Audio.RoadMinSpeed))
	gain := cfg.Cue.SurfaceGain[surface] // unknown surfaces stay at 0
	player.SetVolume(e.master * cfg.Cue.VolumeMultipliers[cfg.CueRoad] * gain * ramp)
}

func (e *Engine) SetMasterVolume(v float64) {
	e.master = clamp01(v)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
