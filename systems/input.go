package systems

import (
	"github.com/automoto/citydrive/archetypes"
	"github.com/automoto/citydrive/components"
	cfg "github.com/automoto/citydrive/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput snapshots the raw input state for this tick. Platform events
// arrive whenever the host delivers them; everything downstream only ever
// sees this once-per-tick snapshot. Must run before UpdateControls.
func UpdateInput(e *ecs.ECS) {
	controls := getOrCreateControls(e)

	// Swap buffers: current becomes previous, then zero out current
	controls.Previous = controls.Current
	controls.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	// Poll all actions - only set pressed state
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				controls.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					controls.Current[actionID] = true
				}
			}
		}
	}

	// Merge the left analog stick into the steering actions
	mergeAnalogSteering(controls, gamepadIDs)
}

// mergeAnalogSteering reads the left stick from all gamepads and folds it
// into the steering directional actions past the deadzone.
func mergeAnalogSteering(controls *components.ControlsData, gamepads []ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -deadzone {
			controls.Current[cfg.ActionSteerLeft] = true
		}
		if horizontal > deadzone {
			controls.Current[cfg.ActionSteerRight] = true
		}
	}
}

// getOrCreateControls returns the singleton controls component, creating if needed
func getOrCreateControls(e *ecs.ECS) *components.ControlsData {
	entry, ok := components.Controls.First(e.World)
	if !ok {
		entry = archetypes.Controls.Spawn(e)
	}
	return components.Controls.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(controls *components.ControlsData, id cfg.ActionID) components.ActionState {
	curr := controls.Current[id]
	prev := controls.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
