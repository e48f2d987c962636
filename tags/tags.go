package tags

import "github.com/yohamta/donburi"

var (
	Vehicle = donburi.NewTag().SetName("Vehicle")
	Camera  = donburi.NewTag().SetName("Camera")
	Session = donburi.NewTag().SetName("Session")
)
