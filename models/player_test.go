package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/4cecoder/walker3d/game"
)

func TestNewFrameStateWithoutPlayer(t *testing.T) {
	fs := NewFrameState(game.Frame{Tick: 3, Camera: game.Follow(mgl64.Vec3{1, 0, 2}, mgl64.Vec3{0, 3, 6})})
	assert.Nil(t, fs.Player)
	assert.Equal(t, Point{1, 3, 8}, fs.Camera.Position)

	b, err := json.Marshal(RenderInstruction{Type: TypeFrame, Payload: fs})
	require.NoError(t, err)
	assert.NotContains(t, string(b), `"player"`)
}

func TestNewFrameStateTransitionInSeconds(t *testing.T) {
	fs := NewFrameState(game.Frame{
		Tick:       1,
		Loaded:     true,
		Position:   mgl64.Vec3{0, 0.5, 1},
		State:      "jump-rising",
		Animation:  game.AnimJump,
		Transition: &game.Transition{From: game.AnimIdle, To: game.AnimJump, Fade: 250 * time.Millisecond},
	})
	require.NotNil(t, fs.Player)
	require.NotNil(t, fs.Player.Transition)
	assert.Equal(t, 0.25, fs.Player.Transition.Fade)
	assert.Equal(t, "jump", fs.Player.Animation)
	assert.Equal(t, 0.5, fs.Player.Position.Y)
}
