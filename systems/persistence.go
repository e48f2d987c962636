package systems

import (
	"encoding/json"
	"log"
	"math"
	"time"

	"github.com/automoto/citydrive/components"
	cfg "github.com/automoto/citydrive/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MasterVolume float64 `json:"masterVolume"`
	VehicleSpec  string  `json:"vehicleSpec"`
	DebugOverlay bool    `json:"debugOverlay"`
}

// SavedPosition is the per-city recovery point. Stored geographically so it
// survives map re-projections.
type SavedPosition struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Heading float64 `json:"heading"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings and position storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "citydrive",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. A missing store or record is not an
// error; defaults apply.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// LoadPosition loads the saved recovery position for a city, or nil when the
// city has never been driven.
func LoadPosition(cityID string) (*SavedPosition, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("position_" + cityID)
	if err != nil {
		log.Printf("Warning: Could not load position for %s: %v", cityID, err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var pos SavedPosition
	if err := json.Unmarshal(data, &pos); err != nil {
		log.Printf("Warning: Could not parse saved position for %s: %v", cityID, err)
		return nil, err
	}
	return &pos, nil
}

// SavePosition writes the recovery position for a city. Fire-and-forget:
// callers never retry, the next throttled save will try again anyway.
func SavePosition(cityID string, pos SavedPosition) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(pos)
	if err != nil {
		log.Printf("Warning: Could not serialize position: %v", err)
		return err
	}
	if err := gdataManager.SaveItem("position_"+cityID, data); err != nil {
		log.Printf("Warning: Could not save position: %v", err)
		return err
	}
	return nil
}

// UpdatePersistence persists the vehicle position at most once per configured
// wall-clock interval, and only when the vehicle has actually moved since the
// last write. The interval is timer-driven, not frame-counted: a slow or fast
// frame rate does not change the save cadence.
func UpdatePersistence(e *ecs.ECS) {
	session := getSession(e)
	if session.Projector == nil {
		return
	}

	vehicleEntry, ok := components.Vehicle.First(e.World)
	if !ok {
		return
	}
	vehicle := components.Vehicle.Get(vehicleEntry)

	now := time.Now()
	if session.LastSave.IsZero() {
		session.LastSave = now
		session.LastSavedX = vehicle.Position.X
		session.LastSavedZ = vehicle.Position.Z
		return
	}
	if now.Sub(session.LastSave) < cfg.Persist.SaveInterval {
		return
	}

	dx := vehicle.Position.X - session.LastSavedX
	dz := vehicle.Position.Z - session.LastSavedZ
	if math.Hypot(dx, dz) < cfg.Persist.MinMovement {
		// Parked: push the window forward without writing.
		session.LastSave = now
		return
	}

	coord := session.Projector.ToGeo(vehicle.Position.X, vehicle.Position.Z)
	_ = SavePosition(session.CityID, SavedPosition{
		Lat:     coord.Lat,
		Lon:     coord.Lon,
		Heading: vehicle.Heading,
	})

	session.LastSave = now
	session.LastSavedX = vehicle.Position.X
	session.LastSavedZ = vehicle.Position.Z
}
