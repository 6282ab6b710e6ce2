package config

import (
	_ "embed"
)

//go:embed defaults/invasion.yaml
var defaultInvasionYAML []byte

// DefaultInvasionConfig returns the default Alien Invasion configuration.
// It mirrors defaults/invasion.yaml and is used when the embed cannot be parsed.
func DefaultInvasionConfig() InvasionConfig {
	return InvasionConfig{
		Screen: ScreenConfig{
			Width:  1200,
			Height: 800,
		},
		Colors: ColorsConfig{
			Background: "#e6e6e6",
			Text:       "#1e1e1e",
			Ship:       "#1f4e9c",
			Alien:      "#2e7d32",
			Bullet:     "#3c3c3c",
			Button:     "#00aa00",
		},
		Ship: ShipConfig{
			Width:  60,
			Height: 48,
			Limit:  3,
			Speed:  1.5,
		},
		Bullet: BulletConfig{
			Width:   3,
			Height:  15,
			Speed:   3.0,
			Allowed: 10,
		},
		Alien: AlienConfig{
			Width:          60,
			Height:         58,
			Speed:          1.0,
			Points:         50,
			FleetDropSpeed: 10,
		},
		Button: ButtonConfig{
			Width:  200,
			Height: 50,
			Label:  "Play",
		},
		Scaling: ScalingConfig{
			Speedup: 1.1,
			Score:   1.5,
		},
		Timing: TimingConfig{
			LifeLostPauseMS: 500,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultInvasionYAML
}
