package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by the CLI. A .env file may supply them.
const (
	EnvConfig   = "NIGHTFALL_CONFIG"
	EnvLogLevel = "NIGHTFALL_LOG_LEVEL"
	EnvDB       = "NIGHTFALL_DB"
	EnvLevels   = "NIGHTFALL_LEVELS"
)

// Tuning is the overridable subset of the configuration. Sections missing
// from the file keep their defaults, and so do missing fields.
type Tuning struct {
	Physics *PhysicsConfig `yaml:"physics"`
	Player  *PlayerConfig  `yaml:"player"`
	Enemy   *EnemyConfig   `yaml:"enemy"`
	Pickup  *PickupConfig  `yaml:"pickup"`
	Level   *LevelConfig   `yaml:"level"`
	Session *SessionConfig `yaml:"session"`
}

// Load applies YAML overrides to the global configuration.
// Search order: customPath -> ~/.nightfall/config.yaml -> ./configs/nightfall.yaml.
// It returns the path that was applied, or "" when no file was found.
func Load(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return customPath, nil
	}

	candidates := []string{filepath.Join("configs", "nightfall.yaml")}
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", p, err)
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", p, err)
		}
		return p, nil
	}
	return "", nil
}

// Apply decodes YAML tuning data over the current global values.
func Apply(data []byte) error {
	physics, player, enemy := Physics, Player, Enemy
	pickup, level, session := Pickup, Level, Session
	t := Tuning{
		Physics: &physics,
		Player:  &player,
		Enemy:   &enemy,
		Pickup:  &pickup,
		Level:   &level,
		Session: &session,
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return err
	}
	if session.LevelCount <= 0 {
		return fmt.Errorf("session.level_count must be positive, got %d", session.LevelCount)
	}

	Physics, Player, Enemy = physics, player, enemy
	Pickup, Level, Session = pickup, level, session
	return nil
}

// LoadEnv loads .env files into the process environment. Missing files are
// skipped; variables already set are left alone.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load env %s: %w", f, err)
		}
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".nightfall", filename)
}
