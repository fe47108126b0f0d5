package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RunnerFile is the config file name looked up in the search directories.
const RunnerFile = "runner.yaml"

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.arcade/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Only a custom path reports read or parse errors; the implicit locations are best-effort.
// Files are decoded on top of the defaults, so partial files only override what they set.
func LoadRunner(customPath string) (RunnerConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseRunner(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(RunnerFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseRunner(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", RunnerFile)); err == nil {
		if cfg, err := ParseRunner(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := ParseRunner(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseRunner decodes YAML over the default configuration and validates the result.
func ParseRunner(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate checks that the configuration describes a playable world.
// All problems are reported together.
func (c RunnerConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	interval := func(name string, lo, hi float64) {
		if lo <= 0 || hi < lo {
			errs = append(errs, fmt.Errorf("%s interval [%v, %v) is invalid", name, lo, hi))
		}
	}

	positive("viewport.width", c.Viewport.Width)
	positive("viewport.height", c.Viewport.Height)
	positive("physics.gravity", c.Physics.Gravity)
	positive("physics.move_speed", c.Physics.MoveSpeed)
	positive("physics.scroll_speed", c.Physics.ScrollSpeed)
	positive("physics.max_dt", c.Physics.MaxDT)
	positive("hero.width", c.Hero.Width)
	positive("hero.height", c.Hero.Height)
	positive("coins.width", c.Coins.Width)
	positive("coins.height", c.Coins.Height)
	positive("spikes.width", c.Spikes.Width)
	positive("spikes.height", c.Spikes.Height)
	positive("platforms.width", c.Platforms.Width)
	positive("platforms.height", c.Platforms.Height)
	positive("animation.hero_frame_duration", c.Animation.HeroFrameDuration)
	positive("animation.coin_frame_duration", c.Animation.CoinFrameDuration)

	if c.Physics.JumpVelocity >= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_velocity must be negative (upward), got %v", c.Physics.JumpVelocity))
	}
	if c.Physics.GroundY <= 0 || c.Physics.GroundY+c.Hero.Height > c.Viewport.Height {
		errs = append(errs, fmt.Errorf("physics.ground_y %v does not fit the viewport", c.Physics.GroundY))
	}
	if c.Hero.Width > c.Viewport.Width {
		errs = append(errs, fmt.Errorf("hero.width %v exceeds viewport width", c.Hero.Width))
	}
	if c.Hero.MaxJumps < 1 {
		errs = append(errs, fmt.Errorf("hero.max_jumps must be at least 1, got %d", c.Hero.MaxJumps))
	}
	if c.Animation.HeroFrames < 1 || c.Animation.CoinFrames < 1 {
		errs = append(errs, errors.New("animation frame counts must be at least 1"))
	}

	interval("coins", c.Coins.MinInterval, c.Coins.MaxInterval)
	interval("spikes", c.Spikes.MinInterval, c.Spikes.MaxInterval)

	if c.Platforms.Chance < 0 || c.Platforms.Chance > 1 {
		errs = append(errs, fmt.Errorf("platforms.chance must be within [0, 1], got %v", c.Platforms.Chance))
	}
	// Platform tops must sit strictly above the ground so ground landing always wins.
	if c.Platforms.LowRise <= 0 || c.Platforms.HighRise < c.Platforms.LowRise {
		errs = append(errs, fmt.Errorf("platform rise range [%v, %v] is invalid", c.Platforms.LowRise, c.Platforms.HighRise))
	}

	if c.Gameplay.Lives < 1 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be at least 1, got %d", c.Gameplay.Lives))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid runner config: %w", errors.Join(errs...))
	}
	return nil
}
