package systems

import (
	"math"

	"github.com/automoto/citydrive/components"
	cfg "github.com/automoto/citydrive/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera advances the orbit rig: mouse drag orbits, the wheel zooms
// through a tween, and both the eye and the look-at target chase the vehicle
// with independent damping rates. Runs after UpdateVehicle so the camera sees
// this tick's pose.
func UpdateCamera(e *ecs.ECS) {
	session := getSession(e)

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	vehicleEntry, ok := components.Vehicle.First(e.World)
	if !ok {
		return
	}
	vehicle := components.Vehicle.Get(vehicleEntry)

	readOrbitInput(camera)
	stepCamera(camera, vehicle, session.Delta)
}

// readOrbitInput folds the raw mouse state into orbit targets.
func readOrbitInput(camera *components.CameraData) {
	cc := cfg.Camera

	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if camera.Dragging {
			dx := float64(x - camera.LastCursorX)
			dy := float64(y - camera.LastCursorY)
			camera.TargetYaw += dx * cc.DragSensitivity
			camera.TargetPitch = clampRange(camera.TargetPitch+dy*cc.DragSensitivity, cc.MinPitch, cc.MaxPitch)
		}
		camera.Dragging = true
	} else {
		camera.Dragging = false
	}
	camera.LastCursorX = x
	camera.LastCursorY = y

	if _, wy := ebiten.Wheel(); wy != 0 {
		target := clampRange(camera.TargetZoom-wy*cc.WheelZoomStep, cc.MinZoom, cc.MaxZoom)
		if target != camera.TargetZoom {
			camera.TargetZoom = target
			camera.ZoomTween = gween.New(float32(camera.Zoom), float32(target), cc.ZoomTweenTime, ease.OutQuad)
		}
	}
}

// stepCamera damps the rig toward its targets and recomputes the eye and
// look-at. Pure math, testable without ebiten.
func stepCamera(camera *components.CameraData, vehicle *components.VehicleData, dt float64) {
	cc := cfg.Camera

	camera.Yaw = damp(camera.Yaw, camera.TargetYaw, cc.YawSmoothing, dt)
	camera.Pitch = damp(camera.Pitch, camera.TargetPitch, cc.PitchSmoothing, dt)

	if camera.ZoomTween != nil {
		z, done := camera.ZoomTween.Update(float32(dt))
		camera.Zoom = float64(z)
		if done {
			camera.ZoomTween = nil
		}
	}

	// Orbit offset in the vehicle's reference frame: yaw 0 sits behind the
	// vehicle, looking along its heading.
	yaw := vehicle.Heading + camera.Yaw
	horiz := camera.Zoom * math.Cos(camera.Pitch)
	eye := components.Vec3{
		X: vehicle.Position.X - math.Sin(yaw)*horiz,
		Y: vehicle.Position.Y + camera.Zoom*math.Sin(camera.Pitch),
		Z: vehicle.Position.Z + math.Cos(yaw)*horiz,
	}
	target := vehicle.Position.Add(components.Vec3{Y: cc.LookAtHeight})

	// Eye and look-at are smoothed independently so a twitchy heading
	// change never jitters the frame.
	camera.Position = damp3(camera.Position, eye, cc.PosSmoothing, dt)
	camera.LookAt = damp3(camera.LookAt, target, cc.LookAtSmoothing, dt)
}

func damp3(current, target components.Vec3, rate, dt float64) components.Vec3 {
	return components.Vec3{
		X: damp(current.X, target.X, rate, dt),
		Y: damp(current.Y, target.Y, rate, dt),
		Z: damp(current.Z, target.Z, rate, dt),
	}
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
