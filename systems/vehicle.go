package systems

import (
	"math"

	"github.com/automoto/citydrive/components"
	"github.com/yohamta/donburi/ecs"
)

const (
	speedEpsilon = 0.05 // m/s below which the vehicle counts as stopped
	steerEpsilon = 0.005
)

// UpdateVehicle advances the vehicle dynamics by the session delta.
// Runs after UpdateControls; nothing else mutates VehicleData.
func UpdateVehicle(e *ecs.ECS) {
	session := getSession(e)

	vehicleEntry, ok := components.Vehicle.First(e.World)
	if !ok {
		return
	}
	vehicle := components.Vehicle.Get(vehicleEntry)

	controlsEntry, ok := components.Controls.First(e.World)
	if !ok {
		return
	}
	intent := components.Controls.Get(controlsEntry).Intent

	stepVehicle(vehicle, intent, session.Delta)
}

// stepVehicle is the dynamics step: pure state transition, no I/O. The
// longitudinal force order matters and matches the tuning: engine force,
// then drag, rolling resistance, engine braking, brake force.
func stepVehicle(v *components.VehicleData, in components.Intent, dt float64) {
	if dt <= 0 {
		return
	}
	spec := v.Spec

	updateBoost(v, in, dt)

	accelScale := 1.0
	if v.Boosting {
		accelScale = spec.BoostAccelMultiplier
	}
	effMax := v.EffectiveMaxSpeed()

	throttle := in.Throttle
	if throttle < 0 {
		throttle *= spec.ReverseAccelScale
	}
	engineAccel := throttle * spec.MaxAcceleration * accelScale

	// Resistive forces all oppose the current motion direction and vanish
	// at exact standstill (speedSign is 0 there).
	sign := speedSign(v.Speed)
	drag := spec.DragCoefficient * v.Speed * v.Speed * sign
	rolling := spec.RollingResistance * v.Speed
	var engineBrake float64
	if math.Abs(in.Throttle) < throttleEpsilon {
		engineBrake = spec.EngineBraking * sign
	}
	brake := in.Brake * spec.BrakeDeceleration * sign

	net := sanitize(engineAccel - drag - rolling - engineBrake - brake)
	newSpeed := sanitize(v.Speed + net*dt)

	// Resistive forces stop the vehicle; they never push it backwards.
	// Without this a large dt would make braking oscillate around zero.
	if sign != 0 && math.Abs(in.Throttle) < throttleEpsilon && speedSign(newSpeed) == -sign {
		newSpeed = 0
	}

	if newSpeed > effMax {
		newSpeed = effMax
	}
	if newSpeed < -spec.MaxReverseSpeed {
		newSpeed = -spec.MaxReverseSpeed
	}
	v.Speed = newSpeed

	// Snap to zero so drag and engine braking cannot creep the vehicle
	// around standstill forever.
	if math.Abs(v.Speed) < speedEpsilon && math.Abs(in.Throttle) < throttleEpsilon {
		v.Speed = 0
	}

	v.SteeringAngle = clampAbs(sanitize(in.Steer*spec.MaxSteeringAngle), spec.MaxSteeringAngle)
	v.HandbrakeActive = in.Handbrake

	// Bicycle-model yaw: only with both steering input and actual motion,
	// so the vehicle can never spin in place.
	if math.Abs(v.SteeringAngle) > steerEpsilon && math.Abs(v.Speed) > speedEpsilon {
		turnRadius := spec.WheelBase / math.Tan(v.SteeringAngle)
		omega := sanitize(v.Speed / turnRadius)
		if in.Handbrake {
			omega *= spec.DriftYawMultiplier
		}
		omega = clampAbs(omega, spec.MaxYawRate)
		v.Heading = wrapAngle(v.Heading + omega*dt)
	}

	// Forward is derived from the heading every tick, never cached.
	fwd := v.Forward()
	v.Position.X = sanitize(v.Position.X + fwd.X*v.Speed*dt)
	v.Position.Z = sanitize(v.Position.Z + fwd.Z*v.Speed*dt)

	// Handbrake slide: lateral displacement on top of the yaw rotation.
	// This is what separates a powerslide from a tight rotation.
	if in.Handbrake {
		right := v.Right()
		slide := sanitize(v.SteeringAngle * math.Abs(v.Speed) * spec.SlideCoefficient * dt)
		v.Position.X = sanitize(v.Position.X + right.X*slide)
		v.Position.Z = sanitize(v.Position.Z + right.Z*slide)
	}

	dist := v.Speed * dt
	v.Odometer += math.Abs(dist)
	if spec.WheelRadius > 0 {
		v.WheelRoll = wrapAngle(v.WheelRoll + sanitize(dist/spec.WheelRadius))
	}

	v.Throttle = in.Throttle
	v.Brake = in.Brake
	v.LastAccel = net
}

// updateBoost runs the boost resource rule: drain while boosting, regen
// while not, and force boosting off the instant the meter empties. A depleted
// meter stays disengaged until the key is released.
func updateBoost(v *components.VehicleData, in components.Intent, dt float64) {
	if !in.Boost {
		v.BoostDepleted = false
	}
	v.Boosting = in.Boost && !v.BoostDepleted && v.Boost > 0

	if v.Boosting {
		v.Boost -= v.Spec.BoostDrainRate * dt
		if v.Boost <= 0 {
			v.Boost = 0
			v.Boosting = false
			v.BoostDepleted = true
		}
	} else if v.Boost < 100 {
		v.Boost += v.Spec.BoostRegenRate * dt
		if v.Boost > 100 {
			v.Boost = 100
		}
	}
}

// ResetPhysics teleports the vehicle back to the city spawn and zeroes all
// motion state.
func ResetPhysics(e *ecs.ECS) {
	session := getSession(e)
	vehicleEntry, ok := components.Vehicle.First(e.World)
	if !ok || session.Map == nil {
		return
	}
	vehicle := components.Vehicle.Get(vehicleEntry)
	spawn := session.Map.SpawnPosition()
	vehicle.Reset(components.Vec3{X: spawn.X, Z: spawn.Z}, spawn.Heading)
}

func wrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return sanitize(a)
}
