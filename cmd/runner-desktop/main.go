// runner-desktop plays the runner in a desktop window.
//
// Usage:
//
//	runner-desktop [--config file] [--seed n] [--scale 1.5] [--mute]
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/platform/desktop"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagConfig string
	flagDBPath string
	flagSeed   int64
	flagTPS    int
	flagScale  float64
	flagMute   bool
	flagPlayer string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner-desktop",
	Short: "Coin Runner in a desktop window",
	Long: `Play Coin Runner in a desktop window with sound.

Controls:
  Left/Right, A/D  - Move
  Space/Up/W       - Jump (press again in the air to double jump)
  Enter            - Start
  P                - Pause
  R                - Restart
  B                - Back to menu
  H/F1             - Help
  Esc/Q            - Quit`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().IntVar(&flagTPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with your scores")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}

func run(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner-desktop",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	runnerCfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	player := flagPlayer
	if player == "" {
		player = os.Getenv("USER")
	}

	return desktop.Run(desktop.Options{
		Runner: runnerCfg,
		Seed:   flagSeed,
		TPS:    flagTPS,
		Scale:  flagScale,
		Store:  store,
		Logger: logger,
		Player: player,
		Mute:   flagMute,
	})
}
