package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/4cecoder/walker3d/game"
	"github.com/4cecoder/walker3d/logger"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Port      string            `yaml:"port"`
	TickHz    int               `yaml:"tick_hz"`
	ModelPath string            `yaml:"model_path"`
	ModelURL  string            `yaml:"model_url"` // prefix the page fetches models from
	Clips     map[string]string `yaml:"clips"`     // animation name -> clip name in the model
	Log       logger.Config     `yaml:"log"`
	Game      game.Tuning       `yaml:"game"`
}

func Default() Config {
	return Config{
		Port:      "8080",
		TickHz:    60,
		ModelPath: "static/models/player.glb",
		ModelURL:  "/static/models/",
		Clips: map[string]string{
			string(game.AnimIdle): "Idle",
			string(game.AnimRun):  "Run",
			string(game.AnimJump): "Jump",
		},
		Log:  logger.DefaultConfig(),
		Game: game.DefaultTuning(),
	}
}

// InitEnv loads a .env file if one exists. A missing file is not an error.
func InitEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}

// Load reads path over the defaults, then applies environment overrides.
// An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("WALKER_TICK_HZ"); v != "" {
		hz, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: WALKER_TICK_HZ=%q", ErrInvalidConfig, v)
		}
		c.TickHz = hz
	}
	if v := os.Getenv("WALKER_MODEL_PATH"); v != "" {
		c.ModelPath = v
	}
	if v := os.Getenv("WALKER_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("WALKER_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	return nil
}

func (c Config) Validate() error {
	g := c.Game
	switch {
	case c.Port == "":
		return fmt.Errorf("%w: port is empty", ErrInvalidConfig)
	case c.TickHz <= 0:
		return fmt.Errorf("%w: tick_hz must be positive, got %d", ErrInvalidConfig, c.TickHz)
	case g.MoveSpeed <= 0 || g.JumpRise <= 0 || g.FallSpeed <= 0:
		return fmt.Errorf("%w: speeds must be positive", ErrInvalidConfig)
	case g.CrossFade < 0:
		return fmt.Errorf("%w: cross_fade is negative", ErrInvalidConfig)
	case !g.Building.Outer.Valid() || !g.Building.Doorway.Valid():
		return fmt.Errorf("%w: building rectangle is inverted", ErrInvalidConfig)
	case !g.Building.Doorway.Within(g.Building.Outer):
		return fmt.Errorf("%w: doorway is not inside the building", ErrInvalidConfig)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	for _, anim := range []game.Animation{game.AnimIdle, game.AnimRun, game.AnimJump} {
		if c.Clips[string(anim)] == "" {
			return fmt.Errorf("%w: no clip configured for %s", ErrInvalidConfig, anim)
		}
	}
	return nil
}
