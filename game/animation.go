package game

import "time"

type Animation string

const (
	AnimNone Animation = ""
	AnimIdle Animation = "idle"
	AnimRun  Animation = "run"
	AnimJump Animation = "jump"
)

// Transition tells the renderer to move from one clip to another.
// A zero Fade means an immediate switch.
type Transition struct {
	From Animation
	To   Animation
	Fade time.Duration
}

// Animator tracks the active clip and produces transitions when it changes.
type Animator struct {
	CrossFade time.Duration
	current   Animation
}

func NewAnimator(crossFade time.Duration) *Animator {
	return &Animator{CrossFade: crossFade}
}

func (a *Animator) Current() Animation {
	return a.current
}

// Play selects anim. Selecting the active clip does nothing and returns false.
// forced switches skip the cross-fade.
func (a *Animator) Play(anim Animation, forced bool) (Transition, bool) {
	if anim == a.current {
		return Transition{}, false
	}
	t := Transition{From: a.current, To: anim, Fade: a.CrossFade}
	if forced || a.current == AnimNone {
		t.Fade = 0
	}
	a.current = anim
	return t, true
}
