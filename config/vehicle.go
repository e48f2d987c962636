package config

// VehicleSpec contains the full dynamics tuning for one vehicle variant.
// Variants are data, not types: the same update code runs every spec.
// All speeds are m/s, accelerations m/s², angles radians.
type VehicleSpec struct {
	Name string

	// Longitudinal
	MaxSpeed          float64
	MaxReverseSpeed   float64
	MaxAcceleration   float64
	ReverseAccelScale float64 // reverse gear is weaker than forward
	BrakeDeceleration float64
	EngineBraking     float64 // constant decel when coasting
	DragCoefficient   float64 // decel = coeff * v²
	RollingResistance float64 // decel = coeff * v

	// Steering (bicycle model)
	WheelBase        float64
	MaxSteeringAngle float64
	MaxYawRate       float64 // rad/s clamp, prevents spin-out

	// Handbrake / drift
	DriftYawMultiplier float64
	SlideCoefficient   float64

	// Boost
	BoostMaxSpeed        float64
	BoostAccelMultiplier float64
	BoostDrainRate       float64 // meter units per second while boosting
	BoostRegenRate       float64 // meter units per second while idle

	// Visual
	WheelRadius float64
}

// ControlsConfig contains the input smoothing tuning. Rates are per-second
// exponential damping constants; rise and fall differ per channel.
type ControlsConfig struct {
	ThrottleRise float64
	ThrottleFall float64 // released pedal recovers faster than it presses
	BrakeRise    float64
	BrakeFall    float64
	SteerRate    float64
	SteerReturn  float64 // recentering is faster than steering away
	DriftReturn  float64 // unless drifting, where slow return keeps the slide controllable

	// Speed-dependent steering attenuation: full authority below
	// FullAuthoritySpeed, linear falloff to AttenuationFloor at FloorSpeed.
	FullAuthoritySpeed float64
	FloorSpeed         float64
	AttenuationFloor   float64
}

// Specs holds every selectable vehicle variant keyed by name.
var Specs map[string]VehicleSpec

// DefaultSpec is the variant used when nothing is selected or persisted.
const DefaultSpec = "compact"

var Controls ControlsConfig

func init() {
	Specs = map[string]VehicleSpec{
		"compact": {
			Name:              "Compact",
			MaxSpeed:          33.3, // ~120 km/h
			MaxReverseSpeed:   8.3,
			MaxAcceleration:   7.5,
			ReverseAccelScale: 0.6,
			BrakeDeceleration: 11.0,
			EngineBraking:     1.6,
			DragCoefficient:   0.0045,
			RollingResistance: 0.08,

			WheelBase:        2.6,
			MaxSteeringAngle: 0.55,
			MaxYawRate:       2.2,

			DriftYawMultiplier: 1.6,
			SlideCoefficient:   0.9,

			BoostMaxSpeed:        44.4, // ~160 km/h
			BoostAccelMultiplier: 1.8,
			BoostDrainRate:       35,
			BoostRegenRate:       12,

			WheelRadius: 0.31,
		},
		"roadster": {
			Name:              "Roadster",
			MaxSpeed:          50.0, // ~180 km/h
			MaxReverseSpeed:   10.0,
			MaxAcceleration:   11.0,
			ReverseAccelScale: 0.6,
			BrakeDeceleration: 14.0,
			EngineBraking:     2.0,
			DragCoefficient:   0.0032,
			RollingResistance: 0.06,

			WheelBase:        2.45,
			MaxSteeringAngle: 0.5,
			MaxYawRate:       2.6,

			DriftYawMultiplier: 1.9,
			SlideCoefficient:   1.2,

			BoostMaxSpeed:        63.9, // ~230 km/h
			BoostAccelMultiplier: 2.0,
			BoostDrainRate:       45,
			BoostRegenRate:       10,

			WheelRadius: 0.33,
		},
	}

	Controls = ControlsConfig{
		ThrottleRise: 3.5,
		ThrottleFall: 8.0,
		BrakeRise:    9.0,
		BrakeFall:    12.0,
		SteerRate:    5.0,
		SteerReturn:  9.0,
		DriftReturn:  3.0,

		FullAuthoritySpeed: 8.0,
		FloorSpeed:         35.0,
		AttenuationFloor:   0.35,
	}
}

// Spec returns the named vehicle spec, falling back to the default variant.
func Spec(name string) VehicleSpec {
	if s, ok := Specs[name]; ok {
		return s
	}
	return Specs[DefaultSpec]
}
