// invasion is a terminal edition of the Alien Invasion arcade shooter.
//
// Usage:
//
//	invasion                 - Play (same as "invasion play")
//	invasion play            - Play the game
//	invasion config          - Print the effective configuration as YAML
//	invasion controls        - Show the key bindings
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: 60)
//	--config <path>         - Custom config YAML
//	--difficulty <preset>   - easy, normal, hard or fixed
//	--log-file <path>       - Write logs to a file (default: no logging)
//	--log-level <level>     - debug, info, warn or error (default: info)
//	--no-color              - Draw without colors
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-invasion/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
	flagNoColor    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invasion",
	Short: "Alien Invasion - shoot down the fleet in your terminal",
	Long: `Alien Invasion is a fixed-screen arcade shooter. Move your ship along
the bottom of the screen and shoot down the alien fleet before it lands.
Every cleared wave is faster and worth more points.

Available commands:
  play      - Play the game (default)
  config    - Print the effective configuration
  controls  - Show the key bindings

Examples:
  invasion
  invasion play --difficulty hard
  invasion --config ./my-invasion.yaml
  invasion config > ~/.arcade/configs/invasion.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Draw without colors")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(controlsCmd)
}

// loadConfig loads the configuration and applies the difficulty preset.
func loadConfig() (config.InvasionConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.InvasionConfig{}, "", err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, "", err
	}
	if preset != "" {
		config.ApplyInvasionPreset(&cfg, preset)
	}
	return cfg, preset, nil
}

// newLogger creates the logger for a run. The terminal belongs to the game,
// so without --log-file everything is discarded.
func newLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "invasion",
		Level:           level,
	})
	return logger, closeFn, nil
}
