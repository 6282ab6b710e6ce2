package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/games/invasion"
	"github.com/vovakirdan/alien-invasion/internal/platform/tui"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start Alien Invasion. Press Enter or click Play to begin.

Controls:
  Left/A, Right/D  - Move (held)
  Down/S           - Stop
  Space            - Fire
  Enter/P          - Play
  Esc              - Pause
  Tab              - Session scores (between games)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 ships, 15 bullets, slow speedup
  normal - Defaults from the config
  hard   - 2 ships, 5 bullets, fast speedup
  fixed  - No speedup or score growth between waves

Examples:
  invasion play
  invasion play --difficulty easy
  invasion play --fps 30
  invasion play --config ./my-invasion.yaml --log-file invasion.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
	if runtime.TickRate <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	game := invasion.New(cfg)
	game.SetLogger(logger)
	game.Reset(runtime)
	if game.ScreenTooSmall() {
		return fmt.Errorf("screen %dx%d cannot hold a single alien", cfg.Screen.Width, cfg.Screen.Height)
	}

	// Results only live for this process
	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("session scores unavailable", "error", err)
		store = nil
	}

	logger.Info("starting",
		"terminal", fmt.Sprintf("%dx%d", width, height),
		"fps", runtime.TickRate,
		"difficulty", presetName(preset),
		"fixed_speed", config.IsFixedPreset(preset),
	)

	theme := tui.NewTheme(cfg.Colors)
	if flagNoColor {
		theme = tui.PlainTheme()
	}
	runErr := tui.Run(game, store, logger, theme, runtime)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	logger.Info("quit", "high_score", game.Stats().HighScore)
	return nil
}

// presetName returns the preset for logging.
func presetName(p config.DifficultyPreset) string {
	if p == "" {
		return string(config.DifficultyNormal)
	}
	return string(p)
}
