// Package config provides YAML-based game configuration loading and
// difficulty presets for Alien Invasion.
package config

// InvasionConfig contains all static configuration for Alien Invasion.
// Sizes and speeds are in world units (virtual pixels) per tick.
type InvasionConfig struct {
	Screen  ScreenConfig  `yaml:"screen"`
	Colors  ColorsConfig  `yaml:"colors"`
	Ship    ShipConfig    `yaml:"ship"`
	Bullet  BulletConfig  `yaml:"bullet"`
	Alien   AlienConfig   `yaml:"alien"`
	Button  ButtonConfig  `yaml:"button"`
	Scaling ScalingConfig `yaml:"scaling"`
	Timing  TimingConfig  `yaml:"timing"`
}

// ScreenConfig defines the size of the playfield in world units.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ColorsConfig holds hex colors ("#rrggbb") for each drawn element.
type ColorsConfig struct {
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
	Ship       string `yaml:"ship"`
	Alien      string `yaml:"alien"`
	Bullet     string `yaml:"bullet"`
	Button     string `yaml:"button"`
}

// ShipConfig defines the player's ship.
type ShipConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Limit  int     `yaml:"limit"` // Ships per game
	Speed  float64 `yaml:"speed"` // Initial horizontal speed
}

// BulletConfig defines the player's projectiles.
type BulletConfig struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Speed   float64 `yaml:"speed"`   // Initial vertical speed
	Allowed int     `yaml:"allowed"` // Max bullets alive at once
}

// AlienConfig defines a single alien and the fleet's motion.
type AlienConfig struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	Speed          float64 `yaml:"speed"`            // Initial horizontal speed
	Points         int     `yaml:"points"`           // Initial points per alien
	FleetDropSpeed int     `yaml:"fleet_drop_speed"` // Drop on each edge hit
}

// ButtonConfig defines the Play button shown while no game is running.
type ButtonConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Label  string `yaml:"label"`
}

// ScalingConfig defines how the game speeds up after each cleared wave.
type ScalingConfig struct {
	Speedup float64 `yaml:"speedup"` // Multiplier for all speeds
	Score   float64 `yaml:"score"`   // Multiplier for alien points
	Fixed   bool    `yaml:"fixed"`   // Waves keep the starting speeds and points
}

// TimingConfig defines time-based behavior.
type TimingConfig struct {
	LifeLostPauseMS int `yaml:"life_lost_pause_ms"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// IsFixedPreset returns true if the preset disables per-wave scaling.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
