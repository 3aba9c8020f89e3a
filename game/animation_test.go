package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimatorPlayIsIdempotent(t *testing.T) {
	a := NewAnimator(200 * time.Millisecond)
	_, changed := a.Play(AnimIdle, false)
	require.True(t, changed)

	_, changed = a.Play(AnimIdle, false)
	assert.False(t, changed)
	_, changed = a.Play(AnimIdle, true)
	assert.False(t, changed)
	assert.Equal(t, AnimIdle, a.Current())
}

func TestAnimatorCrossFade(t *testing.T) {
	a := NewAnimator(200 * time.Millisecond)
	a.Play(AnimIdle, false)

	tr, changed := a.Play(AnimRun, false)
	require.True(t, changed)
	assert.Equal(t, Transition{From: AnimIdle, To: AnimRun, Fade: 200 * time.Millisecond}, tr)

	tr, changed = a.Play(AnimIdle, true)
	require.True(t, changed)
	assert.Zero(t, tr.Fade)
}

func TestAnimatorFirstClipHasNoFade(t *testing.T) {
	a := NewAnimator(time.Second)
	tr, _ := a.Play(AnimRun, false)
	assert.Equal(t, AnimNone, tr.From)
	assert.Zero(t, tr.Fade)
}
