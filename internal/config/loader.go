package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// ErrUnknownPreset is returned by ParsePreset for unrecognized names.
var ErrUnknownPreset = errors.New("unknown difficulty preset")

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Load loads Alien Invasion configuration.
// Search order: customPath -> ~/.arcade/configs/invasion.yaml -> ./configs/invasion.yaml -> embedded default.
// Files only need to contain the keys they override; everything else keeps its default.
func Load(customPath string) (InvasionConfig, error) {
	cfg := embeddedDefault()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory.
	// Broken files here are skipped rather than fatal.
	for _, path := range []string{userConfigPath("invasion.yaml"), filepath.Join("configs", "invasion.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := embeddedDefault()
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			continue
		}
		if candidate.Validate() == nil {
			return candidate, nil
		}
	}

	return cfg, nil
}

// embeddedDefault parses the embedded YAML, falling back to the hardcoded default.
func embeddedDefault() InvasionConfig {
	var cfg InvasionConfig
	if err := yaml.Unmarshal(defaultInvasionYAML, &cfg); err != nil {
		return DefaultInvasionConfig()
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Marshal renders a configuration as YAML.
func Marshal(cfg InvasionConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// Validate reports the first invalid value in the configuration.
func (c InvasionConfig) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"screen.width", c.Screen.Width},
		{"screen.height", c.Screen.Height},
		{"ship.width", c.Ship.Width},
		{"ship.height", c.Ship.Height},
		{"ship.limit", c.Ship.Limit},
		{"bullet.width", c.Bullet.Width},
		{"bullet.height", c.Bullet.Height},
		{"bullet.allowed", c.Bullet.Allowed},
		{"alien.width", c.Alien.Width},
		{"alien.height", c.Alien.Height},
		{"alien.points", c.Alien.Points},
		{"button.width", c.Button.Width},
		{"button.height", c.Button.Height},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive, got %d", p.name, p.value)
		}
	}

	speeds := []struct {
		name  string
		value float64
	}{
		{"ship.speed", c.Ship.Speed},
		{"bullet.speed", c.Bullet.Speed},
		{"alien.speed", c.Alien.Speed},
	}
	for _, s := range speeds {
		if s.value <= 0 {
			return fmt.Errorf("%s must be positive, got %g", s.name, s.value)
		}
	}

	// One column needs a margin of one alien each side plus the alien and its gap;
	// one row needs the top margin, the row, and the eight alien heights plus the ship below.
	if c.Screen.Width < 4*c.Alien.Width {
		return fmt.Errorf("screen.width %d too small for one alien column (need %d)", c.Screen.Width, 4*c.Alien.Width)
	}
	if minH := 10*c.Alien.Height + c.Ship.Height; c.Screen.Height < minH {
		return fmt.Errorf("screen.height %d too small for one alien row (need %d)", c.Screen.Height, minH)
	}
	if c.Ship.Width > c.Screen.Width {
		return fmt.Errorf("ship.width %d exceeds screen.width %d", c.Ship.Width, c.Screen.Width)
	}

	if c.Alien.FleetDropSpeed < 0 {
		return fmt.Errorf("alien.fleet_drop_speed must not be negative, got %d", c.Alien.FleetDropSpeed)
	}
	if c.Scaling.Speedup <= 1.0 {
		return fmt.Errorf("scaling.speedup must be greater than 1.0, got %g", c.Scaling.Speedup)
	}
	if c.Scaling.Score < 1.0 {
		return fmt.Errorf("scaling.score must be at least 1.0, got %g", c.Scaling.Score)
	}
	if c.Timing.LifeLostPauseMS < 0 {
		return fmt.Errorf("timing.life_lost_pause_ms must not be negative, got %d", c.Timing.LifeLostPauseMS)
	}

	colors := [][2]string{
		{"colors.background", c.Colors.Background},
		{"colors.text", c.Colors.Text},
		{"colors.ship", c.Colors.Ship},
		{"colors.alien", c.Colors.Alien},
		{"colors.bullet", c.Colors.Bullet},
		{"colors.button", c.Colors.Button},
	}
	for _, col := range colors {
		if !hexColor.MatchString(col[1]) {
			return fmt.Errorf("%s must be a #rrggbb color, got %q", col[0], col[1])
		}
	}

	return nil
}

// ParsePreset converts a CLI string into a preset. Empty means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("%w %q (want easy, normal, hard or fixed)", ErrUnknownPreset, name)
	}
}

// ApplyInvasionPreset modifies the config based on a difficulty preset.
func ApplyInvasionPreset(cfg *InvasionConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ship.Limit = 5
		cfg.Bullet.Allowed = 15
		cfg.Scaling.Speedup = 1.05
	case DifficultyHard:
		cfg.Ship.Limit = 2
		cfg.Bullet.Allowed = 5
		cfg.Scaling.Speedup = 1.2
	case DifficultyFixed:
		cfg.Scaling.Fixed = true
	}
}
