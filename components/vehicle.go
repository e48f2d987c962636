package components

import (
	"math"

	cfg "github.com/automoto/citydrive/config"
	"github.com/yohamta/donburi"
)

// Vec3 represents a 3D vector in world space, Y up.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Length returns the euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// VehicleData is the authoritative physics state of the vehicle. It is
// mutated only by the vehicle dynamics system; everything else reads it.
type VehicleData struct {
	Spec cfg.VehicleSpec

	Position Vec3
	// Heading is the yaw around the world up axis, radians. Zero faces
	// north (-Z), positive turns clockwise viewed from above. The vehicle
	// never rolls or pitches.
	Heading float64

	// Speed is signed: forward positive, reverse negative. m/s.
	Speed float64

	SteeringAngle   float64
	HandbrakeActive bool

	// Boost meter, always within [0, 100].
	Boost    float64
	Boosting bool
	// BoostDepleted latches when the meter empties and clears only on key
	// release, so a regen trickle cannot re-engage boost under a held key.
	BoostDepleted bool

	// Applied control values from the last tick, kept for telemetry and
	// the audio reaction layer.
	Throttle  float64
	Brake     float64
	LastAccel float64 // net longitudinal acceleration, m/s²

	// Rendering pose extras
	WheelRoll float64 // cumulative wheel rotation, radians
	Odometer  float64 // total distance traveled, meters
}

var Vehicle = donburi.NewComponentType[VehicleData]()

// Forward returns the unit vector the vehicle is facing.
func (v *VehicleData) Forward() Vec3 {
	return Vec3{X: math.Sin(v.Heading), Z: -math.Cos(v.Heading)}
}

// Right returns the unit vector to the vehicle's right.
func (v *VehicleData) Right() Vec3 {
	return Vec3{X: math.Cos(v.Heading), Z: math.Sin(v.Heading)}
}

// EffectiveMaxSpeed returns the current forward speed cap.
func (v *VehicleData) EffectiveMaxSpeed() float64 {
	if v.Boosting {
		return v.Spec.BoostMaxSpeed
	}
	return v.Spec.MaxSpeed
}

// Reset teleports the vehicle and zeroes all motion state. Used on spawn,
// on the reset action, and when a session is torn down.
func (v *VehicleData) Reset(pos Vec3, heading float64) {
	v.Position = pos
	v.Heading = heading
	v.Speed = 0
	v.SteeringAngle = 0
	v.HandbrakeActive = false
	v.Boosting = false
	v.Boost = 100
	v.BoostDepleted = false
	v.Throttle = 0
	v.Brake = 0
	v.LastAccel = 0
}
