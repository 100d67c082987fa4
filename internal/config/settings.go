package config

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings is returned when a settings file holds values the battle cannot run with.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings holds the runtime-tunable parameters. Geometry stays compile-time.
type Settings struct {
	StartingMoney   int     `yaml:"starting_money"`
	MaxMoney        int     `yaml:"max_money"`
	MoneyPeriod     int     `yaml:"money_period"`
	EnemyStepPeriod int     `yaml:"enemy_step_period"`
	Waves           bool    `yaml:"waves"`
	Seed            int64   `yaml:"seed"`
	TicksPerSecond  int     `yaml:"ticks_per_second"`
	WindowScale     int     `yaml:"window_scale"`
	Volume          float64 `yaml:"volume"` // 0 выключает звук
	LogLevel        string  `yaml:"log_level"`
	CatalogPath     string  `yaml:"catalog_path"`
	SpriteDir       string  `yaml:"sprite_dir"`
}

// Default returns the settings the game ships with.
func Default() Settings {
	return Settings{
		StartingMoney:   StartingMoney,
		MaxMoney:        MaxMoney,
		MoneyPeriod:     MoneyPeriod,
		EnemyStepPeriod: EnemyStepPeriod,
		Waves:           true,
		TicksPerSecond:  TicksPerSecond,
		WindowScale:     WindowScale,
		Volume:          0.5,
		LogLevel:        "info",
	}
}

// Validate checks the bounds the battle relies on.
func (s Settings) Validate() error {
	switch {
	case s.MaxMoney < 0 || s.MaxMoney > 255:
		return errors.Wrapf(ErrInvalidSettings, "max_money %d out of [0, 255]", s.MaxMoney)
	case s.StartingMoney < 0 || s.StartingMoney > s.MaxMoney:
		return errors.Wrapf(ErrInvalidSettings, "starting_money %d out of [0, %d]", s.StartingMoney, s.MaxMoney)
	case s.MoneyPeriod < 0:
		return errors.Wrapf(ErrInvalidSettings, "money_period %d is negative", s.MoneyPeriod)
	case s.EnemyStepPeriod < 1:
		return errors.Wrapf(ErrInvalidSettings, "enemy_step_period %d must be at least 1", s.EnemyStepPeriod)
	case s.TicksPerSecond < 1:
		return errors.Wrapf(ErrInvalidSettings, "ticks_per_second %d must be positive", s.TicksPerSecond)
	case s.WindowScale < 1:
		return errors.Wrapf(ErrInvalidSettings, "window_scale %d must be positive", s.WindowScale)
	case s.Volume < 0 || s.Volume > 1:
		return errors.Wrapf(ErrInvalidSettings, "volume %g out of [0, 1]", s.Volume)
	}
	return nil
}

// DecodeSettings reads YAML on top of the defaults, so a file only lists what it overrides.
func DecodeSettings(r io.Reader) (Settings, error) {
	s := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return Settings{}, errors.Wrap(err, "failed to decode settings")
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// LoadSettings reads a settings file. An empty path yields the defaults.
func LoadSettings(path string) (Settings, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, errors.Wrapf(err, "failed to read settings file %s", path)
	}
	return DecodeSettings(bytes.NewReader(data))
}
