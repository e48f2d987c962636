package systems

import (
	"math"
	"testing"

	"github.com/automoto/citydrive/citymap"
	"github.com/automoto/citydrive/components"
	cfg "github.com/automoto/citydrive/config"
	"github.com/automoto/citydrive/geo"
	"github.com/automoto/citydrive/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const dt60 = 1.0 / 60.0

func newTestVehicle() *components.VehicleData {
	v := &components.VehicleData{Spec: cfg.Spec("compact")}
	v.Reset(components.Vec3{}, 0)
	return v
}

func TestThrottleAccelerates(t *testing.T) {
	v := newTestVehicle()
	in := components.Intent{Throttle: 1}

	stepVehicle(v, in, dt60)

	assert.Greater(t, v.Speed, 0.0)
	assert.Greater(t, v.LastAccel, 0.0)
}

func TestSpeedNeverExceedsCaps(t *testing.T) {
	v := newTestVehicle()
	spec := v.Spec

	// Hold full throttle well past any plausible ramp-up time.
	in := components.Intent{Throttle: 1}
	for i := 0; i < 60*60; i++ {
		stepVehicle(v, in, dt60)
		require.LessOrEqual(t, v.Speed, spec.MaxSpeed)
	}

	// Reverse from rest.
	v.Reset(components.Vec3{}, 0)
	in = components.Intent{Throttle: -1}
	for i := 0; i < 60*60; i++ {
		stepVehicle(v, in, dt60)
		require.GreaterOrEqual(t, v.Speed, -spec.MaxReverseSpeed)
	}
}

func TestBoostRaisesSpeedCap(t *testing.T) {
	v := newTestVehicle()
	spec := v.Spec
	v.Speed = spec.MaxSpeed

	in := components.Intent{Throttle: 1, Boost: true}
	peak := 0.0
	for i := 0; i < 60*2; i++ {
		stepVehicle(v, in, dt60)
		require.LessOrEqual(t, v.Speed, spec.BoostMaxSpeed)
		if v.Speed > peak {
			peak = v.Speed
		}
	}
	assert.Greater(t, peak, spec.MaxSpeed, "boost should exceed the normal cap")
}

func TestBoostMeterStaysInRange(t *testing.T) {
	v := newTestVehicle()

	in := components.Intent{Throttle: 1, Boost: true}
	for i := 0; i < 60*30; i++ {
		stepVehicle(v, in, dt60)
		require.GreaterOrEqual(t, v.Boost, 0.0)
		require.LessOrEqual(t, v.Boost, 100.0)
	}

	// The meter emptied early in the run; with the key still held it
	// regenerates back to full without re-engaging.
	assert.False(t, v.Boosting)
	assert.Equal(t, 100.0, v.Boost)
}

func TestBoostNeedsReleaseAfterDepletion(t *testing.T) {
	v := newTestVehicle()
	v.Boost = 5
	held := components.Intent{Boost: true}

	// A stalled frame empties the meter in one step.
	stepVehicle(v, held, 0.25)
	require.Equal(t, 0.0, v.Boost)
	require.False(t, v.Boosting)

	// More stalled frames regenerate a few units each; the held key must
	// not re-engage on the trickle.
	for i := 0; i < 20; i++ {
		stepVehicle(v, held, 0.25)
		require.False(t, v.Boosting)
	}
	assert.Greater(t, v.Boost, 0.0)

	// Release and press again re-engages on the recovered meter.
	stepVehicle(v, components.Intent{}, dt60)
	stepVehicle(v, held, dt60)
	assert.True(t, v.Boosting)
}

func TestNoYawAtStandstill(t *testing.T) {
	v := newTestVehicle()
	v.Heading = 0.7

	in := components.Intent{Steer: 1}
	for i := 0; i < 120; i++ {
		stepVehicle(v, in, dt60)
	}

	assert.Equal(t, 0.7, v.Heading, "a stationary vehicle must not rotate")
	assert.Equal(t, 0.0, v.Position.X)
	assert.Equal(t, 0.0, v.Position.Z)
}

func TestSteeringAngleClamped(t *testing.T) {
	v := newTestVehicle()
	v.Speed = 10

	stepVehicle(v, components.Intent{Steer: 5}, dt60)
	assert.Equal(t, v.Spec.MaxSteeringAngle, v.SteeringAngle)

	stepVehicle(v, components.Intent{Steer: -5}, dt60)
	assert.Equal(t, -v.Spec.MaxSteeringAngle, v.SteeringAngle)
}

func TestBrakingStopsWithoutReversing(t *testing.T) {
	v := newTestVehicle()
	v.Speed = 20

	// Full brake with a coarse timestep. The vehicle must come to rest and
	// stay there rather than oscillate through zero.
	in := components.Intent{Brake: 1}
	for i := 0; i < 100; i++ {
		stepVehicle(v, in, 0.1)
		require.GreaterOrEqual(t, v.Speed, 0.0)
	}
	assert.Equal(t, 0.0, v.Speed)
}

func TestCoastingComesToRest(t *testing.T) {
	v := newTestVehicle()
	v.Speed = 5

	var in components.Intent
	for i := 0; i < 60*30; i++ {
		stepVehicle(v, in, dt60)
	}

	assert.Equal(t, 0.0, v.Speed, "drag and engine braking should park the vehicle exactly")
}

func TestNonFiniteIntentIsNeutralized(t *testing.T) {
	v := newTestVehicle()
	v.Speed = 15
	v.Position = components.Vec3{X: 100, Z: 200}

	in := components.Intent{
		Throttle: math.NaN(),
		Brake:    math.Inf(1),
		Steer:    math.NaN(),
	}
	stepVehicle(v, in, dt60)

	assert.False(t, math.IsNaN(v.Speed) || math.IsInf(v.Speed, 0))
	assert.False(t, math.IsNaN(v.Position.X) || math.IsInf(v.Position.X, 0))
	assert.False(t, math.IsNaN(v.Position.Z) || math.IsInf(v.Position.Z, 0))
	assert.False(t, math.IsNaN(v.Heading))
}

func TestHandbrakeSlidesLaterally(t *testing.T) {
	sliding := newTestVehicle()
	noSlide := newTestVehicle()
	noSlide.Spec.SlideCoefficient = 0
	sliding.Speed = 20
	noSlide.Speed = 20

	// Identical inputs, identical drift yaw multiplier. The only difference
	// between the two runs is the lateral slide term.
	in := components.Intent{Throttle: 0.5, Steer: 0.8, Handbrake: true}
	for i := 0; i < 60; i++ {
		stepVehicle(sliding, in, dt60)
		stepVehicle(noSlide, in, dt60)
	}

	assert.True(t, sliding.HandbrakeActive)
	assert.InDelta(t, noSlide.Heading, sliding.Heading, 1e-9,
		"the slide term must not touch the heading")

	dx := sliding.Position.X - noSlide.Position.X
	dz := sliding.Position.Z - noSlide.Position.Z
	assert.Greater(t, math.Hypot(dx, dz), 1.0,
		"displacement beyond what the heading rotation alone produces")
}

func TestTurningChangesHeadingAndPath(t *testing.T) {
	v := newTestVehicle()
	v.Speed = 10

	for i := 0; i < 60; i++ {
		stepVehicle(v, components.Intent{Throttle: 0.5, Steer: 1}, dt60)
	}

	assert.NotEqual(t, 0.0, v.Heading)
	assert.Greater(t, math.Abs(v.Position.X), 0.0, "a turn must bend the path off the start axis")
	assert.LessOrEqual(t, math.Abs(v.Heading), math.Pi, "heading stays wrapped")
}

func TestFiveSecondDrive(t *testing.T) {
	v := newTestVehicle()

	in := components.Intent{Throttle: 1}
	for i := 0; i < 300; i++ {
		stepVehicle(v, in, dt60)
	}

	assert.Greater(t, v.Speed, 10.0, "five seconds of full throttle should reach road speed")
	assert.LessOrEqual(t, v.Speed, v.Spec.MaxSpeed)
	assert.Equal(t, 0.0, v.Heading, "no steering input, no heading change")
	assert.InDelta(t, 0.0, v.Position.X, 1e-9)
	assert.Less(t, v.Position.Z, -10.0, "heading zero drives north, negative Z")
	assert.Greater(t, v.Odometer, 10.0)
}

func TestZeroDeltaIsANoOp(t *testing.T) {
	v := newTestVehicle()
	v.Speed = 12
	v.Position = components.Vec3{X: 3, Z: 4}

	before := *v
	stepVehicle(v, components.Intent{Throttle: 1, Steer: 1}, 0)

	assert.Equal(t, before, *v)
}

func TestResetClearsDirtyState(t *testing.T) {
	v := newTestVehicle()
	v.Speed = 25
	v.SteeringAngle = 0.4
	v.HandbrakeActive = true
	v.Boost = 12
	v.Boosting = true
	v.BoostDepleted = true
	v.Throttle = 1
	v.Brake = 0.5
	v.LastAccel = 3

	v.Reset(components.Vec3{X: 7, Z: 9}, 1.2)

	assert.Equal(t, components.Vec3{X: 7, Z: 9}, v.Position)
	assert.Equal(t, 1.2, v.Heading)
	assert.Equal(t, 0.0, v.Speed)
	assert.Equal(t, 0.0, v.SteeringAngle)
	assert.False(t, v.HandbrakeActive)
	assert.Equal(t, 100.0, v.Boost)
	assert.False(t, v.Boosting)
	assert.False(t, v.BoostDepleted)
	assert.Equal(t, 0.0, v.Throttle)
	assert.Equal(t, 0.0, v.Brake)
	assert.Equal(t, 0.0, v.LastAccel)
}

func TestResetPhysicsReturnsToSpawn(t *testing.T) {
	world := ecs.NewECS(donburi.NewWorld())
	city := citymap.New("plains", "Plains", geo.Coordinate{}, 200, 200,
		[]citymap.SurfaceZone{{X: 0, Z: 0, W: 200, H: 200, Tag: citymap.SurfaceAsphalt}},
		citymap.Spawn{X: 60, Z: 80, Heading: 0.9})
	factory.CreateSession(world, city)
	entry := factory.CreateVehicle(world, cfg.Spec("compact"), components.Vec3{X: 60, Z: 80}, 0.9)

	// Drive the session dirty, the way a torn-down scene leaves it.
	v := components.Vehicle.Get(entry)
	v.Position = components.Vec3{X: 120, Z: 30}
	v.Speed = 18
	v.SteeringAngle = 0.3
	v.HandbrakeActive = true
	v.Boost = 40
	v.Boosting = true

	ResetPhysics(world)

	assert.Equal(t, components.Vec3{X: 60, Z: 80}, v.Position)
	assert.Equal(t, 0.9, v.Heading)
	assert.Equal(t, 0.0, v.Speed)
	assert.Equal(t, 0.0, v.SteeringAngle)
	assert.False(t, v.HandbrakeActive)
	assert.Equal(t, 100.0, v.Boost)
	assert.False(t, v.Boosting)
}

func TestWrapAngle(t *testing.T) {
	assert.InDelta(t, -math.Pi+0.1, wrapAngle(math.Pi+0.1), 1e-12)
	assert.InDelta(t, math.Pi-0.1, wrapAngle(-math.Pi-0.1), 1e-12)
	assert.InDelta(t, 0.5, wrapAngle(0.5), 1e-12)
}
