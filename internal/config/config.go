// Package config provides YAML-based configuration loading for the runner.
package config

// RunnerConfig contains every tunable of the runner simulation.
type RunnerConfig struct {
	Viewport  ViewportConfig  `yaml:"viewport"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Hero      HeroConfig      `yaml:"hero"`
	Coins     CoinConfig      `yaml:"coins"`
	Spikes    SpikeConfig     `yaml:"spikes"`
	Platforms PlatformConfig  `yaml:"platforms"`
	Animation AnimationConfig `yaml:"animation"`
	Gameplay  GameplayConfig  `yaml:"gameplay"`
}

// ViewportConfig defines the visible world area in world units.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines hero motion and world scrolling.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`           // units/s^2, applied every tick
	JumpVelocity     float64 `yaml:"jump_velocity"`     // negative = up
	MoveSpeed        float64 `yaml:"move_speed"`        // horizontal hero speed
	ScrollSpeed      float64 `yaml:"scroll_speed"`      // leftward entity speed
	GroundY          float64 `yaml:"ground_y"`          // hero top edge when standing
	MaxJumpHeight    float64 `yaml:"max_jump_height"`   // used for coin placement
	LandingTolerance float64 `yaml:"landing_tolerance"` // platform landing band half-height
	MaxDT            float64 `yaml:"max_dt"`            // per-tick delta clamp in seconds
}

// HeroConfig defines the controllable character.
type HeroConfig struct {
	SpawnX   float64 `yaml:"spawn_x"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	MaxJumps int     `yaml:"max_jumps"`
}

// CoinConfig defines coin size and spawn cadence.
type CoinConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	MinInterval float64 `yaml:"min_interval"`
	MaxInterval float64 `yaml:"max_interval"`
	BandMargin  float64 `yaml:"band_margin"` // clearance kept around a platform
}

// SpikeConfig defines spike size and spawn cadence.
type SpikeConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	MinInterval float64 `yaml:"min_interval"`
	MaxInterval float64 `yaml:"max_interval"`
}

// PlatformConfig defines floating platforms.
// Heights are expressed as rises above physics.ground_y.
type PlatformConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Chance   float64 `yaml:"chance"`    // spawn probability per tick while absent
	HighRise float64 `yaml:"high_rise"` // highest platform: ground_y - high_rise
	LowRise  float64 `yaml:"low_rise"`  // lowest platform: ground_y - low_rise
}

// AnimationConfig defines sprite-frame timing.
type AnimationConfig struct {
	HeroFrames        int     `yaml:"hero_frames"`
	HeroFrameDuration float64 `yaml:"hero_frame_duration"`
	CoinFrames        int     `yaml:"coin_frames"`
	CoinFrameDuration float64 `yaml:"coin_frame_duration"`
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives       int     `yaml:"lives"`
	SpawnOffset float64 `yaml:"spawn_offset"` // entities appear at viewport width + offset
}

// MinPlatformY returns the highest (smallest y) platform position.
func (c RunnerConfig) MinPlatformY() float64 {
	return c.Physics.GroundY - c.Platforms.HighRise
}

// MaxPlatformY returns the lowest (largest y) platform position.
func (c RunnerConfig) MaxPlatformY() float64 {
	return c.Physics.GroundY - c.Platforms.LowRise
}

// SpawnX returns the x coordinate where new entities appear.
func (c RunnerConfig) SpawnX() float64 {
	return c.Viewport.Width + c.Gameplay.SpawnOffset
}
