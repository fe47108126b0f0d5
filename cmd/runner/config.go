package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
)

var flagCheck string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default gameplay config",
	Long: `Print the built-in gameplay config as YAML. Save it to
~/.arcade/configs/runner.yaml or ./configs/runner.yaml and edit it to
tune the game; files only need the values they change.

Examples:
  runner config > ~/.arcade/configs/runner.yaml
  runner config --check ./my-runner.yaml`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Validate a config file instead of printing the default")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagCheck == "" {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}
	if _, err := config.LoadRunner(flagCheck); err != nil {
		return err
	}
	fmt.Printf("%s is valid\n", flagCheck)
	return nil
}
