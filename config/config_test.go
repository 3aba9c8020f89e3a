package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 60, cfg.TickHz)
	assert.Equal(t, 200*time.Millisecond, cfg.Game.CrossFade)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walker.yaml")
	body := `
tick_hz: 30
game:
  move_speed: 0.25
  cross_fade: 150ms
  camera_offset: [0, 4, 8]
  building:
    outer: {min_x: -2, max_x: 2, min_z: -6, max_z: -2}
    doorway: {min_x: -0.5, max_x: 0.5, min_z: -6, max_z: -2}
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("PORT", "9090")
	t.Setenv("WALKER_LOG_FORMAT", "console")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 30, cfg.TickHz)
	assert.Equal(t, 0.25, cfg.Game.MoveSpeed)
	assert.Equal(t, 0.1, cfg.Game.JumpRise, "unset fields keep defaults")
	assert.Equal(t, 150*time.Millisecond, cfg.Game.CrossFade)
	assert.Equal(t, 8.0, cfg.Game.CameraOffset.Z())
	assert.Equal(t, -0.5, cfg.Game.Building.Doorway.MinX)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestValidateRejects(t *testing.T) {
	bad := Default()
	bad.TickHz = 0
	assert.ErrorIs(t, bad.Validate(), ErrInvalidConfig)

	bad = Default()
	bad.Game.Building.Doorway.MaxX = 50
	assert.ErrorIs(t, bad.Validate(), ErrInvalidConfig)

	bad = Default()
	bad.Game.FallSpeed = 0
	assert.ErrorIs(t, bad.Validate(), ErrInvalidConfig)

	t.Setenv("WALKER_TICK_HZ", "fast")
	_, err := Load("")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestInitEnvMissingFile(t *testing.T) {
	assert.NoError(t, InitEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestValidateRequiresClips(t *testing.T) {
	bad := Default()
	delete(bad.Clips, "jump")
	assert.ErrorIs(t, bad.Validate(), ErrInvalidConfig)
}

func TestValidateRejectsBadLogSettings(t *testing.T) {
	t.Setenv("WALKER_LOG_LEVEL", "loud")
	_, err := Load("")
	assert.ErrorIs(t, err, ErrInvalidConfig)

	bad := Default()
	bad.Log.Format = "xml"
	assert.ErrorIs(t, bad.Validate(), ErrInvalidConfig)
}
