package systems

import (
	"testing"
	"time"

	"github.com/automoto/citydrive/components"
	"github.com/stretchr/testify/assert"
)

func TestHeadingDegrees(t *testing.T) {
	tests := []struct {
		name    string
		heading float64
		want    float64
	}{
		{"north", 0, 0},
		{"east", 1.5707963267948966, 90},
		{"south", 3.141592653589793, 180},
		{"west", -1.5707963267948966, 270},
		{"wrapped negative", -0.017453292519943295, 359},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, headingDegrees(tt.heading), 1e-9)
		})
	}
}

func TestObserverPanicIsContained(t *testing.T) {
	calls := 0

	assert.NotPanics(t, func() {
		notify(func(components.TelemetrySnapshot) {
			panic("observer bug")
		}, components.TelemetrySnapshot{})

		notify(func(components.TelemetrySnapshot) {
			calls++
		}, components.TelemetrySnapshot{})
	})

	assert.Equal(t, 1, calls, "later observers still run after one panics")
}

func TestFPSCountsWallClockFrames(t *testing.T) {
	telemetry := &components.TelemetryData{}
	start := time.Now()

	// 30 frames inside the first second: no published value yet.
	for i := 0; i < 30; i++ {
		tickFPS(telemetry, start.Add(time.Duration(i)*33*time.Millisecond))
	}
	assert.Equal(t, 0, telemetry.FPS)

	// Crossing the second boundary publishes the count and resets.
	tickFPS(telemetry, start.Add(1100*time.Millisecond))
	assert.Equal(t, 31, telemetry.FPS)
	assert.Equal(t, 0, telemetry.FrameCount)
}
