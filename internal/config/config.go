// Package config provides YAML-based tuning for the runner: physics constants,
// spawn probabilities and ranges, gesture polling, and difficulty progression.
package config

import (
	"fmt"
	"math/rand"
	"time"
)

// DinoConfig is the complete tuning table for one game session.
type DinoConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Decor      DecorConfig      `yaml:"decor"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Gesture    GestureConfig    `yaml:"gesture"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the logical playfield. The simulation runs in these
// units; the renderer scales them to terminal cells.
type WorldConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	GroundHeight  float64 `yaml:"ground_height"`
	GroundPattern float64 `yaml:"ground_pattern"` // Spacing of the scrolling ground dashes
}

// PlayerConfig defines the player's fixed column and sprite size.
type PlayerConfig struct {
	X            float64 `yaml:"x"`
	Size         float64 `yaml:"size"`
	HitboxMargin float64 `yaml:"hitbox_margin"`
}

// PhysicsConfig defines per-tick physics constants.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	ScrollSpeed float64 `yaml:"scroll_speed"`
}

// Range is a half-open interval [Min, Max) sampled uniformly.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Sample draws a uniform value from the range.
func (r Range) Sample(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// ClusterConfig is one row of the obstacle cluster table.
type ClusterConfig struct {
	Size    int     `yaml:"size"`
	Weight  float64 `yaml:"weight"`
	Spacing Range   `yaml:"spacing"`
}

// VariantConfig describes an obstacle look and its hitbox.
type VariantConfig struct {
	Name     string  `yaml:"name"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Size     Range   `yaml:"size"`
	Seasonal bool    `yaml:"seasonal"`
}

// ObstacleConfig defines obstacle spawning.
type ObstacleConfig struct {
	SpawnChance    float64         `yaml:"spawn_chance"`    // Per-tick Bernoulli trial
	MinGap         float64         `yaml:"min_gap"`         // Distance from the right edge the last obstacle must clear
	SpawnOffset    float64         `yaml:"spawn_offset"`    // Spawn this far past the right edge
	HitboxMargin   float64         `yaml:"hitbox_margin"`   // Inward margin on obstacle hitboxes
	SeasonalChance float64         `yaml:"seasonal_chance"` // Probability the cluster uses the seasonal variant
	Clusters       []ClusterConfig `yaml:"clusters"`
	Variants       []VariantConfig `yaml:"variants"`
}

// BirdConfig defines bird spawning and flight.
type BirdConfig struct {
	Chance    float64   `yaml:"chance"`
	Spread    float64   `yaml:"spread"`
	Lanes     []float64 `yaml:"lanes"` // Fractions of world height
	Size      float64   `yaml:"size"`
	Speed     Range     `yaml:"speed"`
	Amplitude Range     `yaml:"amplitude"`
	Frequency Range     `yaml:"frequency"`
}

// CloudConfig defines cloud spawning.
type CloudConfig struct {
	Chance  float64 `yaml:"chance"`
	Spread  float64 `yaml:"spread"`
	Band    float64 `yaml:"band"` // Fraction of world height clouds may occupy
	YOffset float64 `yaml:"y_offset"`
	Speed   Range   `yaml:"speed"`
	Size    Range   `yaml:"size"`
}

// SnowConfig defines snowfall.
type SnowConfig struct {
	Chance float64 `yaml:"chance"`
	Size   Range   `yaml:"size"`
	Speed  Range   `yaml:"speed"`
	Drift  Range   `yaml:"drift"`
}

// OrnamentConfig defines the rare rotating ornaments.
type OrnamentConfig struct {
	Chance        float64 `yaml:"chance"`
	Spread        float64 `yaml:"spread"`
	Band          float64 `yaml:"band"`
	YOffset       float64 `yaml:"y_offset"`
	Speed         Range   `yaml:"speed"`
	Size          Range   `yaml:"size"`
	RotationSpeed Range   `yaml:"rotation_speed"`
}

// DecorConfig groups the decorative entities. None of them collide.
type DecorConfig struct {
	Birds     BirdConfig     `yaml:"birds"`
	Clouds    CloudConfig    `yaml:"clouds"`
	Snow      SnowConfig     `yaml:"snow"`
	Ornaments OrnamentConfig `yaml:"ornaments"`
	CullX     float64        `yaml:"cull_x"` // Entities left of this X are dropped
}

// GameplayConfig defines lives and damage handling.
type GameplayConfig struct {
	Lives         int           `yaml:"lives"`
	Invincibility time.Duration `yaml:"invincibility"`
	BlinkPeriod   time.Duration `yaml:"blink_period"`
	SparkleChance float64       `yaml:"sparkle_chance"`
}

// Classification modes for the gesture client.
const (
	ClassifyRemote    = "remote"    // Trust the endpoint's jump flag
	ClassifyLandmarks = "landmarks" // Derive the jump flag from returned landmarks
)

// Frame source kinds.
const (
	SourceNone    = "none"
	SourceCommand = "command"
	SourceDir     = "dir"
)

// GestureConfig defines how frames are captured and classified.
type GestureConfig struct {
	Endpoint    string        `yaml:"endpoint"`
	Interval    time.Duration `yaml:"interval"`
	Timeout     time.Duration `yaml:"timeout"` // Zero means no timeout
	JPEGQuality int           `yaml:"jpeg_quality"`
	MaxWidth    int           `yaml:"max_width"` // Frames wider than this are downscaled; 0 disables
	Classify    string        `yaml:"classify"`
	Source      string        `yaml:"source"`
	Command     []string      `yaml:"command"` // Capture command writing one image to stdout
	Dir         string        `yaml:"dir"`     // Directory of recorded frames
}

// DifficultyConfig defines the optional difficulty progression.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to scroll speed multiplier at max difficulty
	GapReduction    float64 `yaml:"gap_reduction"`    // Min gap reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name keeps the config value.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *DinoConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// GroundLine returns the Y coordinate of the ground surface.
func (c DinoConfig) GroundLine() float64 {
	return c.World.Height - c.World.GroundHeight
}

// Validate reports the first inconsistency that would break the simulation.
func (c DinoConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("config: world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	case c.World.GroundHeight <= 0 || c.World.GroundHeight >= c.World.Height:
		return fmt.Errorf("config: ground_height %v out of range", c.World.GroundHeight)
	case c.Player.Size <= 0:
		return fmt.Errorf("config: player size must be positive")
	case c.Physics.Gravity <= 0 || c.Physics.JumpImpulse >= 0:
		return fmt.Errorf("config: gravity must be positive and jump_impulse negative")
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("config: lives must be positive, got %d", c.Gameplay.Lives)
	case len(c.Obstacles.Clusters) == 0:
		return fmt.Errorf("config: at least one obstacle cluster is required")
	case len(c.Obstacles.Variants) == 0:
		return fmt.Errorf("config: at least one obstacle variant is required")
	case c.Gesture.Interval <= 0:
		return fmt.Errorf("config: gesture interval must be positive")
	}

	for _, cl := range c.Obstacles.Clusters {
		if cl.Size <= 0 || cl.Weight < 0 {
			return fmt.Errorf("config: invalid cluster size=%d weight=%v", cl.Size, cl.Weight)
		}
	}

	switch c.Gesture.Classify {
	case ClassifyRemote, ClassifyLandmarks:
	default:
		return fmt.Errorf("config: unknown gesture classify mode %q", c.Gesture.Classify)
	}

	switch c.Gesture.Source {
	case SourceNone, SourceCommand, SourceDir:
	default:
		return fmt.Errorf("config: unknown gesture source %q", c.Gesture.Source)
	}

	switch c.Difficulty.Progression.Type {
	case ProgressScore, ProgressTime, ProgressNone:
	default:
		return fmt.Errorf("config: unknown progression type %q", c.Difficulty.Progression.Type)
	}
	return nil
}
