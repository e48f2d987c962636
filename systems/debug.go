package systems

import (
	"fmt"

	cfg "github.com/automoto/citydrive/config"
	"github.com/automoto/citydrive/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawOverlay renders the debug overlay: fps, coordinates, heading, surface.
// Toggled with the overlay action; off by default.
func DrawOverlay(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	snapshot := LatestTelemetry(e)
	session := getSession(e)

	lines := []string{
		fmt.Sprintf("fps %d", snapshot.FPS),
		fmt.Sprintf("speed %.1f km/h  heading %.0f", snapshot.SpeedKmh, snapshot.HeadingDeg),
		fmt.Sprintf("lat %.6f  lon %.6f", snapshot.Position.Lat, snapshot.Position.Lon),
		fmt.Sprintf("surface %s", session.Surface),
		fmt.Sprintf("boost %.0f%%", snapshot.BoostPercent),
	}

	face := fonts.Small.Get()
	y := 16
	for _, line := range lines {
		text.Draw(screen, line, face, 8, y, cfg.Green)
		y += 14
	}
}
