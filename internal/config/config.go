package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Game    GameConfig    `toml:"game"`
	Data    DataConfig    `toml:"data"`
	Audio   AudioConfig   `toml:"audio"`
	Logging LoggingConfig `toml:"logging"`
}

type GameConfig struct {
	AssetsDir  string        `toml:"assets_dir"` // holds levelNN.txt
	StartLevel int           `toml:"start_level"`
	StartLives int           `toml:"start_lives"`
	Width      int           `toml:"width"`
	Height     int           `toml:"height"`
	TickRate   time.Duration `toml:"tick_rate"`
	Seed       int64         `toml:"seed"` // 0 = seed from the clock
}

type DataConfig struct {
	ActorTable string `toml:"actor_table"` // empty = built-in templates
	ScriptsDir string `toml:"scripts_dir"`
}

type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	Volume     float64 `toml:"volume"` // beep effects.Volume exponent, 0 = unchanged
	SampleRate int     `toml:"sample_rate"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // the terminal owns stdout
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *Config { return defaults() }

// Validate rejects values the game cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Game.Width <= 0 || c.Game.Height <= 0 {
		errs = append(errs, fmt.Errorf("game: grid %dx%d must be positive", c.Game.Width, c.Game.Height))
	}
	if c.Game.StartLevel < 0 || c.Game.StartLevel > 99 {
		errs = append(errs, fmt.Errorf("game: start_level %d out of range 0..99", c.Game.StartLevel))
	}
	if c.Game.StartLives <= 0 {
		errs = append(errs, fmt.Errorf("game: start_lives %d must be positive", c.Game.StartLives))
	}
	if c.Game.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("game: tick_rate %s must be positive", c.Game.TickRate))
	}
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio: sample_rate %d must be positive", c.Audio.SampleRate))
	}
	return errors.Join(errs...)
}

func defaults() *Config {
	return &Config{
		Game: GameConfig{
			AssetsDir:  "assets",
			StartLevel: 0,
			StartLives: 3,
			Width:      15,
			Height:     15,
			TickRate:   100 * time.Millisecond,
		},
		Data: DataConfig{
			ActorTable: "data/yaml/actors.yaml",
			ScriptsDir: "scripts",
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "marblemaze.log",
		},
	}
}
