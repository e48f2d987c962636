package systems

import (
	"log"
	"math"

	"github.com/automoto/citydrive/audio"
	"github.com/automoto/citydrive/components"
	cfg "github.com/automoto/citydrive/config"
	"github.com/yohamta/donburi/ecs"
)

const throttleEpsilon = 0.02

// UpdateControls converts the raw input snapshot into the smoothed control
// intent. Runs after UpdateInput and before UpdateVehicle, every tick.
func UpdateControls(e *ecs.ECS) {
	session := getSession(e)
	controls := getOrCreateControls(e)

	vehicleEntry, ok := components.Vehicle.First(e.World)
	if !ok {
		return
	}
	vehicle := components.Vehicle.Get(vehicleEntry)

	gated := updateStartupGate(e, controls, vehicle)
	stepControls(controls, vehicle, gated, session.Delta)
}

// updateStartupGate owns the engine-start sequence. The first throttle press
// at standstill fires the startup cue; until that cue finishes, the smoother
// is forced neutral so the vehicle cannot move during the start sequence.
// The trigger is edge-based: holding the key does not re-fire the cue.
func updateStartupGate(e *ecs.ECS, controls *components.ControlsData, vehicle *components.VehicleData) bool {
	if controls.GateOpen {
		return false
	}

	audioEntry, ok := components.Audio.First(e.World)
	if !ok || components.Audio.Get(audioEntry).Service == nil {
		// No audio backend: degraded mode, nothing to wait for.
		controls.GateOpen = true
		return false
	}
	audioData := components.Audio.Get(audioEntry)

	if controls.StartupHandle == audio.NoHandle {
		throttle := GetAction(controls, cfg.ActionThrottle)
		reverse := GetAction(controls, cfg.ActionReverse)
		if (throttle.JustPressed || reverse.JustPressed) && vehicle.Speed == 0 {
			h, err := audioData.Service.Play(cfg.CueStartup)
			if err != nil {
				log.Printf("Warning: startup cue failed, starting without it: %v", err)
				controls.GateOpen = true
				return false
			}
			controls.StartupHandle = h
			audioData.EngineState = components.ChannelStartupPlaying
		}
		return controls.StartupHandle != audio.NoHandle
	}

	if audioData.Service.IsPlaying(controls.StartupHandle) {
		return true
	}

	// Sequence finished: open the gate once and leave it open.
	controls.GateOpen = true
	audioData.EngineState = components.ChannelIdle
	return false
}

// stepControls advances the smoothed intent by dt seconds. Split out from
// UpdateControls so the damping behavior is testable without an ECS.
func stepControls(c *components.ControlsData, v *components.VehicleData, gated bool, dt float64) {
	cc := cfg.Controls

	throttleTarget, brakeTarget, steerTarget := controlTargets(c, v)
	if gated {
		throttleTarget, brakeTarget, steerTarget = 0, 0, 0
	}

	// Asymmetric damping: each channel rises and falls at its own rate.
	throttleRate := cc.ThrottleRise
	if math.Abs(throttleTarget) < math.Abs(c.Intent.Throttle) {
		throttleRate = cc.ThrottleFall
	}
	c.Intent.Throttle = clampAbs(damp(c.Intent.Throttle, throttleTarget, throttleRate, dt), 1)

	brakeRate := cc.BrakeRise
	if brakeTarget < c.Intent.Brake {
		brakeRate = cc.BrakeFall
	}
	c.Intent.Brake = clamp01f(damp(c.Intent.Brake, brakeTarget, brakeRate, dt))

	// Steering recenters faster than it steers away, unless the handbrake
	// is down: a slow return keeps a drift controllable.
	steerRate := cc.SteerRate
	returning := math.Abs(steerTarget) < math.Abs(c.Intent.Steer) ||
		(steerTarget != 0 && c.Intent.Steer != 0 && math.Signbit(steerTarget) != math.Signbit(c.Intent.Steer))
	if returning {
		steerRate = cc.SteerReturn
		if v.HandbrakeActive {
			steerRate = cc.DriftReturn
		}
	}
	steerTarget *= steeringAuthority(math.Abs(v.Speed))
	c.Intent.Steer = clampAbs(damp(c.Intent.Steer, steerTarget, steerRate, dt), 1)

	if gated {
		c.Intent.Boost = false
		c.Intent.Handbrake = false
		return
	}
	c.Intent.Boost = c.Current[cfg.ActionBoost] && v.Boost > 0
	c.Intent.Handbrake = c.Current[cfg.ActionHandbrake]
}

// controlTargets maps the pressed-key snapshot onto raw channel targets.
// The reverse key brakes while the vehicle still rolls forward and only
// becomes reverse throttle once the vehicle has (nearly) stopped.
func controlTargets(c *components.ControlsData, v *components.VehicleData) (throttle, brake, steer float64) {
	if c.Current[cfg.ActionThrottle] {
		throttle = 1
	}
	if c.Current[cfg.ActionReverse] {
		if v.Speed > 0.5 {
			brake = 1
		} else {
			throttle = -1
		}
	}
	if c.Current[cfg.ActionSteerLeft] {
		steer -= 1
	}
	if c.Current[cfg.ActionSteerRight] {
		steer += 1
	}
	return throttle, brake, steer
}

// steeringAuthority scales down steering at speed: full authority below the
// threshold, linear falloff to a floor. Small inputs at highway speed already
// produce large yaw rates; this keeps the wheel usable.
func steeringAuthority(speed float64) float64 {
	cc := cfg.Controls
	if speed <= cc.FullAuthoritySpeed {
		return 1
	}
	if speed >= cc.FloorSpeed {
		return cc.AttenuationFloor
	}
	t := (speed - cc.FullAuthoritySpeed) / (cc.FloorSpeed - cc.FullAuthoritySpeed)
	return 1 - t*(1-cc.AttenuationFloor)
}

func clamp01f(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
