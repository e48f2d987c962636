package components

import (
	"time"

	"github.com/automoto/citydrive/citymap"
	"github.com/automoto/citydrive/geo"
	"github.com/yohamta/donburi"
)

// SessionData ties one driving session together: the loaded city, the geo
// projector anchored at its origin, the wall-clock frame delta, and the
// persistence throttling state.
type SessionData struct {
	CityID    string
	Map       *citymap.Map
	Projector *geo.Projector

	// Delta is the measured wall-clock seconds since the previous tick,
	// set by the scene before systems run. Physics integrates with this,
	// not with the host's nominal tick rate.
	Delta float64

	// Surface under the vehicle, queried before motion is applied.
	Surface citymap.SurfaceTag

	// Persistence throttling: saves happen at most every interval, and
	// only when the vehicle has moved since the last write.
	LastSave   time.Time
	LastSavedX float64
	LastSavedZ float64
}

var Session = donburi.NewComponentType[SessionData]()
