package systems

import (
	"math"

	"github.com/automoto/citydrive/components"
	cfg "github.com/automoto/citydrive/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawWorld renders the top-down development view: surface zones and the
// vehicle footprint. It consumes only the camera look-at and the vehicle
// pose, the same contract a full 3D renderer would get.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Render.BackgroundColor)

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	session := getSession(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	ppm := cfg.Render.PixelsPerMeter

	// World → screen: center the view on the smoothed look-at.
	toScreenX := func(x float64) float32 { return float32((x-camera.LookAt.X)*ppm + width/2) }
	toScreenZ := func(z float64) float32 { return float32((z-camera.LookAt.Z)*ppm + height/2) }

	if session.Map != nil {
		for _, zone := range session.Map.Zones {
			c, ok := cfg.Render.SurfaceColors[string(zone.Tag)]
			if !ok {
				continue
			}
			vector.DrawFilledRect(screen,
				toScreenX(zone.X), toScreenZ(zone.Z),
				float32(zone.W*ppm), float32(zone.H*ppm),
				c, false)
		}
	}

	vehicleEntry, ok := components.Vehicle.First(e.World)
	if !ok {
		return
	}
	vehicle := components.Vehicle.Get(vehicleEntry)
	drawVehicle(screen, vehicle, toScreenX, toScreenZ, ppm)
}

// drawVehicle draws the rotated vehicle footprint plus a heading line and the
// front wheels yawed by the steering angle.
func drawVehicle(screen *ebiten.Image, v *components.VehicleData, sx func(float64) float32, sz func(float64) float32, ppm float64) {
	halfL := cfg.Render.VehicleLength / 2
	halfW := cfg.Render.VehicleWidth / 2

	fwd := v.Forward()
	right := v.Right()

	corner := func(dl, dw float64) (float32, float32) {
		x := v.Position.X + fwd.X*dl + right.X*dw
		z := v.Position.Z + fwd.Z*dl + right.Z*dw
		return sx(x), sz(z)
	}

	x0, y0 := corner(halfL, -halfW)
	x1, y1 := corner(halfL, halfW)
	x2, y2 := corner(-halfL, halfW)
	x3, y3 := corner(-halfL, -halfW)

	c := cfg.Render.VehicleColor
	vector.StrokeLine(screen, x0, y0, x1, y1, 2, c, false)
	vector.StrokeLine(screen, x1, y1, x2, y2, 2, c, false)
	vector.StrokeLine(screen, x2, y2, x3, y3, 2, c, false)
	vector.StrokeLine(screen, x3, y3, x0, y0, 2, c, false)

	// Heading indicator from the nose.
	noseX, noseY := corner(halfL, 0)
	tipX := v.Position.X + fwd.X*(halfL+1.5)
	tipZ := v.Position.Z + fwd.Z*(halfL+1.5)
	vector.StrokeLine(screen, noseX, noseY, sx(tipX), sz(tipZ), 2, cfg.Render.HeadingColor, false)

	// Front wheels, yawed by the steering angle for the visual pose output.
	wheelYaw := v.Heading + v.SteeringAngle
	wx := math.Sin(wheelYaw)
	wz := -math.Cos(wheelYaw)
	for _, side := range []float64{-1, 1} {
		cx := v.Position.X + fwd.X*halfL*0.7 + right.X*halfW*side*0.8
		cz := v.Position.Z + fwd.Z*halfL*0.7 + right.Z*halfW*side*0.8
		ext := 0.45
		vector.StrokeLine(screen,
			sx(cx-wx*ext), sz(cz-wz*ext),
			sx(cx+wx*ext), sz(cz+wz*ext),
			2, cfg.White, false)
	}
}
