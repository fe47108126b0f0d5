package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagConfig  string
	flagLogFile string
	flagPlayer  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the runner in this terminal.

Controls:
  Left/Right, A/D  - Move
  Space/Up/W       - Jump (press again in the air to double jump)
  P                - Pause
  R                - Restart
  B                - Back to menu (paused or game over)
  Tab              - High scores (menu)
  ?                - Help
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Examples:
  runner play
  runner play --seed 42
  runner play --config ./my-runner.yaml --log runner.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write debug logs to this file")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with your scores")
}

func runPlay(_ *cobra.Command, _ []string) error {
	runnerCfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs only go to a file.
	var logger *log.Logger
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Level:           log.DebugLevel,
			Prefix:          "runner",
		})
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	player := flagPlayer
	if player == "" {
		player = os.Getenv("USER")
	}

	return tui.Run(tui.Options{
		Runner: runnerCfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:  store,
		Logger: logger,
		Player: player,
		Host:   "tui",
	})
}
