package systems

import (
	"testing"

	"github.com/automoto/citydrive/components"
	cfg "github.com/automoto/citydrive/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestControls() (*components.ControlsData, *components.VehicleData) {
	c := &components.ControlsData{GateOpen: true}
	v := &components.VehicleData{Spec: cfg.Spec("compact")}
	v.Reset(components.Vec3{}, 0)
	return c, v
}

func TestThrottleRampsGradually(t *testing.T) {
	c, v := newTestControls()
	c.Current[cfg.ActionThrottle] = true

	stepControls(c, v, false, dt60)
	first := c.Intent.Throttle
	assert.Greater(t, first, 0.0)
	assert.Less(t, first, 1.0, "one frame must not reach full throttle")

	for i := 0; i < 60*5; i++ {
		stepControls(c, v, false, dt60)
	}
	assert.InDelta(t, 1.0, c.Intent.Throttle, 0.01, "held throttle converges to full")
}

func TestThrottleFallsFasterThanItRises(t *testing.T) {
	c, v := newTestControls()

	c.Current[cfg.ActionThrottle] = true
	stepControls(c, v, false, dt60)
	risen := c.Intent.Throttle

	c.Intent.Throttle = 1
	c.Current[cfg.ActionThrottle] = false
	stepControls(c, v, false, dt60)
	fallen := 1 - c.Intent.Throttle

	assert.Greater(t, fallen, risen, "release recovers faster than press builds")
}

func TestSteeringRecentersFasterThanItSteers(t *testing.T) {
	c, v := newTestControls()

	c.Current[cfg.ActionSteerRight] = true
	stepControls(c, v, false, dt60)
	steered := c.Intent.Steer

	c.Intent.Steer = 1
	c.Current[cfg.ActionSteerRight] = false
	stepControls(c, v, false, dt60)
	recentered := 1 - c.Intent.Steer

	assert.Greater(t, recentered, steered)
}

func TestDriftHoldsSteeringLonger(t *testing.T) {
	normal, nv := newTestControls()
	drifting, dv := newTestControls()
	dv.HandbrakeActive = true

	normal.Intent.Steer = 1
	drifting.Intent.Steer = 1

	stepControls(normal, nv, false, dt60)
	stepControls(drifting, dv, false, dt60)

	assert.Greater(t, drifting.Intent.Steer, normal.Intent.Steer,
		"the drift return rate keeps steering applied longer")
}

func TestIntentStaysInRange(t *testing.T) {
	c, v := newTestControls()
	v.Speed = 20

	// Alternate conflicting inputs with a coarse timestep; every channel
	// must hold its range anyway.
	for i := 0; i < 200; i++ {
		c.Current[cfg.ActionThrottle] = i%2 == 0
		c.Current[cfg.ActionReverse] = i%3 == 0
		c.Current[cfg.ActionSteerLeft] = i%2 == 0
		c.Current[cfg.ActionSteerRight] = i%5 == 0
		stepControls(c, v, false, 0.2)

		require.GreaterOrEqual(t, c.Intent.Throttle, -1.0)
		require.LessOrEqual(t, c.Intent.Throttle, 1.0)
		require.GreaterOrEqual(t, c.Intent.Brake, 0.0)
		require.LessOrEqual(t, c.Intent.Brake, 1.0)
		require.GreaterOrEqual(t, c.Intent.Steer, -1.0)
		require.LessOrEqual(t, c.Intent.Steer, 1.0)
	}
}

func TestReverseKeyBrakesWhileRollingForward(t *testing.T) {
	c, v := newTestControls()
	c.Current[cfg.ActionReverse] = true

	v.Speed = 10
	throttle, brake, _ := controlTargets(c, v)
	assert.Equal(t, 0.0, throttle)
	assert.Equal(t, 1.0, brake, "reverse key is the brake while moving forward")

	v.Speed = 0
	throttle, brake, _ = controlTargets(c, v)
	assert.Equal(t, -1.0, throttle, "reverse key is reverse gear at rest")
	assert.Equal(t, 0.0, brake)
}

func TestSteeringAuthorityFalloff(t *testing.T) {
	cc := cfg.Controls

	assert.Equal(t, 1.0, steeringAuthority(0))
	assert.Equal(t, 1.0, steeringAuthority(cc.FullAuthoritySpeed))
	assert.Equal(t, cc.AttenuationFloor, steeringAuthority(cc.FloorSpeed))
	assert.Equal(t, cc.AttenuationFloor, steeringAuthority(cc.FloorSpeed*2))

	mid := steeringAuthority((cc.FullAuthoritySpeed + cc.FloorSpeed) / 2)
	assert.Greater(t, mid, cc.AttenuationFloor)
	assert.Less(t, mid, 1.0)
}

func TestHighSpeedSteeringIsAttenuated(t *testing.T) {
	slow, sv := newTestControls()
	fast, fv := newTestControls()
	sv.Speed = 2
	fv.Speed = 40

	for i := 0; i < 60*3; i++ {
		slow.Current[cfg.ActionSteerRight] = true
		fast.Current[cfg.ActionSteerRight] = true
		stepControls(slow, sv, false, dt60)
		stepControls(fast, fv, false, dt60)
	}

	assert.InDelta(t, 1.0, slow.Intent.Steer, 0.02)
	assert.InDelta(t, cfg.Controls.AttenuationFloor, fast.Intent.Steer, 0.02)
}

func TestGatedIntentIsNeutral(t *testing.T) {
	c, v := newTestControls()
	c.Current[cfg.ActionThrottle] = true
	c.Current[cfg.ActionSteerRight] = true
	c.Current[cfg.ActionBoost] = true
	c.Current[cfg.ActionHandbrake] = true

	for i := 0; i < 60; i++ {
		stepControls(c, v, true, dt60)
	}

	assert.Equal(t, 0.0, c.Intent.Throttle)
	assert.Equal(t, 0.0, c.Intent.Brake)
	assert.Equal(t, 0.0, c.Intent.Steer)
	assert.False(t, c.Intent.Boost)
	assert.False(t, c.Intent.Handbrake)
}

func TestBoostIntentRequiresMeter(t *testing.T) {
	c, v := newTestControls()
	c.Current[cfg.ActionBoost] = true

	stepControls(c, v, false, dt60)
	assert.True(t, c.Intent.Boost)

	v.Boost = 0
	stepControls(c, v, false, dt60)
	assert.False(t, c.Intent.Boost, "an empty meter refuses the boost input")
}

func TestControlsEntityIsSingleton(t *testing.T) {
	world := ecs.NewECS(donburi.NewWorld())

	first := getOrCreateControls(world)
	second := getOrCreateControls(world)

	assert.Same(t, first, second, "repeated lookups must hit the one spawned entity")
}

func TestDampIsFramerateIndependent(t *testing.T) {
	// One 0.1s step and ten 0.01s steps land on (nearly) the same value.
	coarse := damp(0, 1, 5, 0.1)

	fine := 0.0
	for i := 0; i < 10; i++ {
		fine = damp(fine, 1, 5, 0.01)
	}

	assert.InDelta(t, coarse, fine, 1e-9)
}

func TestDampIgnoresNonPositiveDelta(t *testing.T) {
	assert.Equal(t, 0.4, damp(0.4, 1, 5, 0))
	assert.Equal(t, 0.4, damp(0.4, 1, 5, -0.5))
}
