package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer every entity and renderer lives on.
const Default ecs.LayerID = 0

// Config contains the top-level window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// CameraConfig contains orbit camera configuration values
type CameraConfig struct {
	// Orbit limits
	MinZoom      float64 // meters from the vehicle
	MaxZoom      float64
	DefaultZoom  float64
	MinPitch     float64 // radians above the horizon
	MaxPitch     float64
	DefaultPitch float64

	// Input
	DragSensitivity float64 // radians per pixel of mouse drag
	WheelZoomStep   float64 // meters per wheel notch
	ZoomTweenTime   float32 // seconds for the zoom ease

	// Per-second exponential damping rates. Position and look-at are
	// smoothed independently so heading jitter never reaches the screen.
	YawSmoothing    float64
	PitchSmoothing  float64
	PosSmoothing    float64
	LookAtSmoothing float64

	LookAtHeight float64 // meters above the vehicle origin
}

// PersistConfig controls the throttled position persistence
type PersistConfig struct {
	SaveInterval time.Duration // wall-clock interval between save checks
	MinMovement  float64       // meters moved since last save to bother writing
}

// RenderConfig contains the top-down development view configuration
type RenderConfig struct {
	PixelsPerMeter float64
	VehicleLength  float64 // meters
	VehicleWidth   float64

	BackgroundColor color.RGBA
	VehicleColor    color.RGBA
	HeadingColor    color.RGBA
	SurfaceColors   map[string]color.RGBA
}

// TelemetryConfig contains HUD and telemetry display configuration
type TelemetryConfig struct {
	BoostBarWidth  float64
	BoostBarHeight float64
	HUDMargin      float64

	BoostBarBg     color.RGBA
	BoostBarFg     color.RGBA
	BoostBarActive color.RGBA
	HUDTextColor   color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool   // Skip the city menu and go directly to driving
	City     string // City to load when skipping the menu
	Overlay  bool   // Draw the debug overlay at startup
}

var C *Config
var Camera CameraConfig
var Persist PersistConfig
var Render RenderConfig
var Telemetry TelemetryConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "citydrive",
	}

	Camera = CameraConfig{
		MinZoom:      4,
		MaxZoom:      40,
		DefaultZoom:  12,
		MinPitch:     0.1,
		MaxPitch:     1.4,
		DefaultPitch: 0.45,

		DragSensitivity: 0.008,
		WheelZoomStep:   2.5,
		ZoomTweenTime:   0.35,

		YawSmoothing:    8,
		PitchSmoothing:  8,
		PosSmoothing:    6,
		LookAtSmoothing: 10,

		LookAtHeight: 1.2,
	}

	Persist = PersistConfig{
		SaveInterval: 5 * time.Second,
		MinMovement:  3.0,
	}

	Render = RenderConfig{
		PixelsPerMeter: 4,
		VehicleLength:  4.4,
		VehicleWidth:   1.8,

		BackgroundColor: color.RGBA{R: 24, G: 26, B: 30, A: 255},
		VehicleColor:    color.RGBA{R: 230, G: 60, B: 50, A: 255},
		HeadingColor:    color.RGBA{R: 255, G: 230, B: 120, A: 255},
		SurfaceColors: map[string]color.RGBA{
			"asphalt": {R: 60, G: 60, B: 66, A: 255},
			"gravel":  {R: 120, G: 108, B: 90, A: 255},
			"grass":   {R: 44, G: 86, B: 48, A: 255},
			"dirt":    {R: 96, G: 72, B: 48, A: 255},
		},
	}

	Telemetry = TelemetryConfig{
		BoostBarWidth:  130,
		BoostBarHeight: 13,
		HUDMargin:      10,

		BoostBarBg:     color.RGBA{R: 40, G: 40, B: 40, A: 255},
		BoostBarFg:     color.RGBA{R: 60, G: 160, B: 220, A: 255},
		BoostBarActive: color.RGBA{R: 120, G: 210, B: 255, A: 255},
		HUDTextColor:   White,
	}

	Debug = DebugConfig{
		SkipMenu: false,
		City:     "riverton",
		Overlay:  false,
	}
}
