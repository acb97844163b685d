// Package settings persists the player's preferences (difficulty, theme
// and custom board dimensions) as a small TOML file under the user config
// directory. Missing files and unknown names fall back to defaults; the
// game must always be able to start.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Difficulty names a board-size preset.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Expert       Difficulty = "expert"
	// Custom uses the Width/Height/Mines fields instead of a preset.
	Custom Difficulty = "custom"
)

// Dimensions returns the preset board size. ok is false for Custom and
// unknown names.
func (d Difficulty) Dimensions() (width, height, mines int, ok bool) {
	switch d {
	case Beginner:
		return 9, 9, 10, true
	case Intermediate:
		return 16, 16, 40, true
	case Expert:
		return 30, 16, 99, true
	}
	return 0, 0, 0, false
}

// Settings is everything the game remembers between runs.
type Settings struct {
	Difficulty Difficulty `mapstructure:"difficulty"`
	Theme      string     `mapstructure:"theme"`
	Width      int        `mapstructure:"width"`
	Height     int        `mapstructure:"height"`
	Mines      int        `mapstructure:"mines"`
}

// Default returns the out-of-the-box settings: an intermediate board with
// the classic theme.
func Default() Settings {
	return Settings{
		Difficulty: Intermediate,
		Theme:      "classic",
		Width:      16,
		Height:     16,
		Mines:      40,
	}
}

// Board returns the board dimensions the settings select: the preset for
// named difficulties, the stored custom fields otherwise.
func (s Settings) Board() (width, height, mines int) {
	if w, h, m, ok := s.Difficulty.Dimensions(); ok {
		return w, h, m
	}
	return s.Width, s.Height, s.Mines
}

const (
	configName = "mines"
	configType = "toml"
)

func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "mines"), nil
}

// Load reads saved settings. A missing file is not an error; it simply
// yields Default. Malformed files are reported but still return usable
// defaults so the caller can start the game regardless.
func Load() (Settings, error) {
	def := Default()
	dir, err := configDir()
	if err != nil {
		return def, err
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)
	v.SetDefault("difficulty", string(def.Difficulty))
	v.SetDefault("theme", def.Theme)
	v.SetDefault("width", def.Width)
	v.SetDefault("height", def.Height)
	v.SetDefault("mines", def.Mines)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return def, fmt.Errorf("read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return def, fmt.Errorf("parse config: %w", err)
	}
	s.normalize()
	return s, nil
}

// Save writes the settings as TOML, creating the config directory on first
// use.
func Save(s Settings) error {
	dir, err := configDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	v := viper.New()
	v.Set("difficulty", string(s.Difficulty))
	v.Set("theme", s.Theme)
	v.Set("width", s.Width)
	v.Set("height", s.Height)
	v.Set("mines", s.Mines)

	path := filepath.Join(dir, configName+"."+configType)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// normalize replaces unknown or unusable values with defaults rather than
// erroring: stale config files must never block startup.
func (s *Settings) normalize() {
	switch s.Difficulty {
	case Beginner, Intermediate, Expert, Custom:
	default:
		s.Difficulty = Default().Difficulty
	}
	if s.Theme == "" {
		s.Theme = Default().Theme
	}
	if s.Width <= 0 || s.Height <= 0 || s.Mines <= 0 || s.Mines >= s.Width*s.Height {
		def := Default()
		s.Width, s.Height, s.Mines = def.Width, def.Height, def.Mines
		if s.Difficulty == Custom {
			s.Difficulty = def.Difficulty
		}
	}
}
