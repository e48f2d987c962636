package systems

import (
	"fmt"

	cfg "github.com/automoto/citydrive/config"
	"github.com/automoto/citydrive/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the speedometer, boost meter, and handbrake indicator from
// the latest telemetry snapshot. Pull-style: the HUD is just another
// telemetry consumer and never touches vehicle state.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	snapshot := LatestTelemetry(e)
	tc := cfg.Telemetry

	margin := float32(tc.HUDMargin)
	height := float32(screen.Bounds().Dy())

	// Boost meter, bottom-left.
	barY := height - margin - float32(tc.BoostBarHeight)
	vector.DrawFilledRect(screen,
		margin, barY,
		float32(tc.BoostBarWidth), float32(tc.BoostBarHeight),
		tc.BoostBarBg, false)

	ratio := float32(snapshot.BoostPercent / 100)
	fill := tc.BoostBarFg
	if snapshot.Boosting {
		fill = tc.BoostBarActive
	}
	vector.DrawFilledRect(screen,
		margin, barY,
		float32(tc.BoostBarWidth)*ratio, float32(tc.BoostBarHeight),
		fill, false)

	// Speed readout above the meter.
	speed := fmt.Sprintf("%3.0f km/h", snapshot.SpeedKmh)
	text.Draw(screen, speed, fonts.HUDLarge.Get(), int(margin), int(barY)-8, tc.HUDTextColor)

	if snapshot.Handbrake {
		text.Draw(screen, "HANDBRAKE", fonts.Small.Get(),
			int(margin)+int(tc.BoostBarWidth)+10, int(barY)+int(tc.BoostBarHeight)-2, cfg.Orange)
	}
}
