package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CameraData holds the orbit rig state. Yaw/pitch are offsets relative to the
// vehicle heading; zoom is the orbit distance in meters. Position and LookAt
// are the smoothed world-space eye and target the renderer consumes.
type CameraData struct {
	Yaw   float64
	Pitch float64
	Zoom  float64

	TargetYaw   float64
	TargetPitch float64

	// Wheel zoom eases through a tween instead of snapping.
	ZoomTween  *gween.Tween
	TargetZoom float64

	Position Vec3
	LookAt   Vec3

	// Drag tracking
	Dragging    bool
	LastCursorX int
	LastCursorY int
}

var Camera = donburi.NewComponentType[CameraData]()
