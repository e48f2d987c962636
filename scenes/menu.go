package scenes

import (
	"image/color"
	"log"
	"os"
	"sort"
	"sync"

	"github.com/automoto/citydrive/assets"
	"github.com/automoto/citydrive/citymap"
	"github.com/automoto/citydrive/components"
	cfg "github.com/automoto/citydrive/config"
	"github.com/automoto/citydrive/systems"
	"github.com/automoto/citydrive/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the city selection menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once

	menuUI   *ui.CityMenuUI
	settings systems.SavedSettings
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.menuUI.Update()
	ms.handleMenuActions()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())
	ms.ecs.AddSystem(systems.UpdateInput)

	ms.settings = systems.SavedSettings{
		MasterVolume: cfg.Audio.DefaultMasterVol,
		VehicleSpec:  cfg.DefaultSpec,
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		ms.settings = *saved
	}

	ms.menuUI = ui.NewCityMenuUI(ms.cityEntries(), ms.settings.VehicleSpec, ms.settings.MasterVolume)
	ms.menuUI.OnSelectCity = func(id string) {
		ms.sceneChanger.ChangeScene(NewDriveScene(ms.sceneChanger, id))
	}
	ms.menuUI.OnCycleSpec = func() string {
		ms.settings.VehicleSpec = nextSpec(ms.settings.VehicleSpec)
		ms.saveSettings()
		return ms.settings.VehicleSpec
	}
	ms.menuUI.OnAdjustVol = func(delta float64) float64 {
		ms.settings.MasterVolume = clampVolume(ms.settings.MasterVolume + delta)
		ms.saveSettings()
		return ms.settings.MasterVolume
	}
}

// handleMenuActions maps the keyboard navigation actions onto the UI so the
// menu is usable without a pointer.
func (ms *MenuScene) handleMenuActions() {
	controlsEntry, ok := components.Controls.First(ms.ecs.World)
	if !ok {
		return
	}
	controls := components.Controls.Get(controlsEntry)

	if systems.GetAction(controls, cfg.ActionMenuUp).JustPressed {
		ms.menuUI.MoveHighlight(-1)
	}
	if systems.GetAction(controls, cfg.ActionMenuDown).JustPressed {
		ms.menuUI.MoveHighlight(1)
	}
	if systems.GetAction(controls, cfg.ActionMenuSelect).JustPressed {
		ms.menuUI.SelectHighlighted()
	}
	if systems.GetAction(controls, cfg.ActionBack).JustPressed {
		os.Exit(0)
	}
}

// cityEntries lists the embedded cities sorted by ID. A load failure leaves
// the menu showing the fallback plane so the game is still drivable.
func (ms *MenuScene) cityEntries() []ui.CityEntry {
	cities, ids, err := citymap.LoadAll(assets.MapFS(), "maps")
	if err != nil {
		log.Printf("Warning: could not load city maps for menu: %v", err)
		return []ui.CityEntry{{ID: cfg.Debug.City, Name: "Fallback"}}
	}

	entries := make([]ui.CityEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, ui.CityEntry{ID: id, Name: cities[id].Name})
	}
	return entries
}

func (ms *MenuScene) saveSettings() {
	if err := systems.SaveSettings(&ms.settings); err != nil {
		log.Printf("Warning: could not save settings: %v", err)
	}
}

// nextSpec cycles through the vehicle roster in name order.
func nextSpec(current string) string {
	names := make([]string, 0, len(cfg.Specs))
	for name := range cfg.Specs {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
