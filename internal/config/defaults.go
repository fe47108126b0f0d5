package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Viewport: ViewportConfig{
			Width:  800,
			Height: 400,
		},
		Physics: PhysicsConfig{
			Gravity:          900,
			JumpVelocity:     -380,
			MoveSpeed:        220,
			ScrollSpeed:      220,
			GroundY:          300,
			MaxJumpHeight:    80,
			LandingTolerance: 10,
			MaxDT:            0.033,
		},
		Hero: HeroConfig{
			SpawnX:   50,
			Width:    40,
			Height:   40,
			MaxJumps: 2,
		},
		Coins: CoinConfig{
			Width:       24,
			Height:      24,
			MinInterval: 0.25,
			MaxInterval: 0.6,
			BandMargin:  10,
		},
		Spikes: SpikeConfig{
			Width:       40,
			Height:      40,
			MinInterval: 0.9,
			MaxInterval: 1.7,
		},
		Platforms: PlatformConfig{
			Width:    200,
			Height:   20,
			Chance:   0.004,
			HighRise: 140,
			LowRise:  60,
		},
		Animation: AnimationConfig{
			HeroFrames:        4,
			HeroFrameDuration: 0.1,
			CoinFrames:        6,
			CoinFrameDuration: 0.08,
		},
		Gameplay: GameplayConfig{
			Lives:       3,
			SpawnOffset: 40,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
// Used by the CLI to print a starting point for custom configs.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
