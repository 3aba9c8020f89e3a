package game

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Tuning holds per-frame movement rates and world layout.
type Tuning struct {
	MoveSpeed    float64       `yaml:"move_speed"` // ground units per frame
	JumpRise     float64       `yaml:"jump_rise"`  // height gained per frame while jump is held
	FallSpeed    float64       `yaml:"fall_speed"` // height lost per frame while airborne
	CrossFade    time.Duration `yaml:"cross_fade"`
	CameraOffset mgl64.Vec3    `yaml:"camera_offset"` // from the player, world axes
	Spawn        mgl64.Vec3    `yaml:"spawn"`
	Building     Footprint     `yaml:"building"`
}

func DefaultTuning() Tuning {
	return Tuning{
		MoveSpeed:    0.1,
		JumpRise:     0.1,
		FallSpeed:    0.1,
		CrossFade:    200 * time.Millisecond,
		CameraOffset: mgl64.Vec3{0, 3, 6},
		Spawn:        mgl64.Vec3{0, 0, 5},
		Building: Footprint{
			Outer:   Rect{MinX: -5, MaxX: 5, MinZ: -15, MaxZ: -5},
			Doorway: Rect{MinX: -1, MaxX: 1, MinZ: -15, MaxZ: -5},
		},
	}
}
