package game

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

type MoveState uint8

const (
	StateIdle MoveState = iota
	StateRun
	StateJumpRising
	StateJumpFalling
)

func (s MoveState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRun:
		return "run"
	case StateJumpRising:
		return "jump-rising"
	case StateJumpFalling:
		return "jump-falling"
	}
	return "unknown"
}

func (s MoveState) Airborne() bool {
	return s == StateJumpRising || s == StateJumpFalling
}

// Player is the controllable character. It starts grounded and idle.
type Player struct {
	Position mgl64.Vec3
	Yaw      float64
	Grounded bool
	State    MoveState
	Anim     *Animator
}

func NewPlayer(spawn mgl64.Vec3, crossFade time.Duration) *Player {
	spawn[1] = 0
	p := &Player{
		Position: spawn,
		Grounded: true,
		State:    StateIdle,
		Anim:     NewAnimator(crossFade),
	}
	p.Anim.Play(AnimIdle, true)
	return p
}
