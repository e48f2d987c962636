package systems

import (
	"testing"

	"github.com/automoto/citydrive/components"
	cfg "github.com/automoto/citydrive/config"
	"github.com/stretchr/testify/assert"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

func newTestCamera(vehicle *components.VehicleData) *components.CameraData {
	return &components.CameraData{
		Pitch:       cfg.Camera.DefaultPitch,
		TargetPitch: cfg.Camera.DefaultPitch,
		Zoom:        cfg.Camera.DefaultZoom,
		TargetZoom:  cfg.Camera.DefaultZoom,
		Position:    vehicle.Position,
		LookAt:      vehicle.Position,
	}
}

func TestCameraFollowsVehicle(t *testing.T) {
	v := &components.VehicleData{Spec: cfg.Spec("compact")}
	v.Reset(components.Vec3{X: 100, Z: 100}, 0)
	camera := newTestCamera(v)

	// Teleport the vehicle; the rig converges rather than snapping.
	v.Position = components.Vec3{X: 150, Z: 100}
	stepCamera(camera, v, dt60)
	firstLookAt := camera.LookAt.X
	assert.Greater(t, firstLookAt, 100.0)
	assert.Less(t, firstLookAt, 150.0)

	for i := 0; i < 60*5; i++ {
		stepCamera(camera, v, dt60)
	}
	assert.InDelta(t, 150.0, camera.LookAt.X, 0.1)
	assert.InDelta(t, cfg.Camera.LookAtHeight, camera.LookAt.Y, 0.1)
}

func TestCameraSitsBehindVehicle(t *testing.T) {
	v := &components.VehicleData{Spec: cfg.Spec("compact")}
	v.Reset(components.Vec3{}, 0)
	camera := newTestCamera(v)

	for i := 0; i < 60*5; i++ {
		stepCamera(camera, v, dt60)
	}

	// Heading 0 faces north (-Z), so the eye settles south of the vehicle.
	assert.Greater(t, camera.Position.Z, 0.0)
	assert.InDelta(t, 0.0, camera.Position.X, 0.1)
	assert.Greater(t, camera.Position.Y, 0.0, "pitch lifts the eye above the vehicle")
}

func TestCameraYawConverges(t *testing.T) {
	v := &components.VehicleData{Spec: cfg.Spec("compact")}
	v.Reset(components.Vec3{}, 0)
	camera := newTestCamera(v)
	camera.TargetYaw = 1.0

	stepCamera(camera, v, dt60)
	assert.Greater(t, camera.Yaw, 0.0)
	assert.Less(t, camera.Yaw, 1.0)

	for i := 0; i < 60*3; i++ {
		stepCamera(camera, v, dt60)
	}
	assert.InDelta(t, 1.0, camera.Yaw, 0.01)
}

func TestZoomTweenReachesTargetAndClears(t *testing.T) {
	v := &components.VehicleData{Spec: cfg.Spec("compact")}
	v.Reset(components.Vec3{}, 0)
	camera := newTestCamera(v)

	camera.TargetZoom = 20
	camera.ZoomTween = gween.New(float32(camera.Zoom), 20, cfg.Camera.ZoomTweenTime, ease.OutQuad)

	for i := 0; i < 60; i++ {
		stepCamera(camera, v, dt60)
	}

	assert.InDelta(t, 20.0, camera.Zoom, 0.01)
	assert.Nil(t, camera.ZoomTween, "a finished tween is released")
}
