package systems

import "math"

// damp moves current toward target with a framerate-independent exponential
// approach. rate is per-second: higher converges faster.
func damp(current, target, rate, dt float64) float64 {
	if dt <= 0 {
		return current
	}
	next := current + (target-current)*(1-math.Exp(-rate*dt))
	return sanitize(next)
}

// clampAbs limits v to [-limit, limit].
func clampAbs(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}

// sanitize substitutes zero for any non-finite value. Every physics formula
// result passes through here before touching state: a NaN that reaches the
// vehicle position is unrecoverable, so it must never get there.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// speedSign is the sign convention for resistive forces: exactly zero speed
// has no motion direction, so resistive forces vanish there instead of
// picking a side.
func speedSign(v float64) float64 {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
