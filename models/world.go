package models

import "github.com/4cecoder/walker3d/game"

// WorldInfo describes the static scene so the page can build it.
type WorldInfo struct {
	Building     game.Footprint `json:"building"`
	Spawn        Point          `json:"spawn"`
	CameraOffset Point          `json:"cameraOffset"`
	TickHz       int            `json:"tickHz"`
}
