package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// StepResult describes what happened to the player during one frame.
type StepResult struct {
	Moved      bool
	Blocked    bool
	Landed     bool
	Transition *Transition
}

// Step advances the player by one frame: movement and collision first, then
// the vertical jump/fall rule, then animation selection.
func Step(p *Player, in InputState, t Tuning) StepResult {
	var res StepResult

	dir := direction(in)
	if dir.Len() > 0 {
		dir = dir.Normalize()
		candidate := p.Position.Add(dir.Mul(t.MoveSpeed))
		p.Yaw = math.Atan2(dir.X(), dir.Z())
		if t.Building.Collides(candidate) {
			res.Blocked = true
		} else {
			p.Position[0] = candidate.X()
			p.Position[2] = candidate.Z()
			res.Moved = true
		}
	}

	switch {
	case in.Jumping():
		p.Position[1] += t.JumpRise
		p.Grounded = false
		p.State = StateJumpRising
	case !p.Grounded:
		p.Position[1] -= t.FallSpeed
		p.State = StateJumpFalling
		if p.Position.Y() <= 0 {
			p.Position[1] = 0
			p.Grounded = true
			res.Landed = true
		}
	}

	if p.Grounded {
		if in.Moving() {
			p.State = StateRun
		} else {
			p.State = StateIdle
		}
	}

	var (
		tr      Transition
		changed bool
	)
	switch p.State {
	case StateJumpRising, StateJumpFalling:
		tr, changed = p.Anim.Play(AnimJump, false)
	case StateRun:
		tr, changed = p.Anim.Play(AnimRun, res.Landed)
	default:
		tr, changed = p.Anim.Play(AnimIdle, res.Landed)
	}
	if changed {
		res.Transition = &tr
	}
	return res
}

func direction(in InputState) mgl64.Vec3 {
	var d mgl64.Vec3
	if in.Pressed(KeyUp) {
		d[2]--
	}
	if in.Pressed(KeyDown) {
		d[2]++
	}
	if in.Pressed(KeyLeft) {
		d[0]--
	}
	if in.Pressed(KeyRight) {
		d[0]++
	}
	return d
}
