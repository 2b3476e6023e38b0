package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/dino.yaml
var defaultDinoYAML []byte

// DefaultDinoConfig returns the built-in tuning table. The embedded YAML
// carries the same values; this is the fallback if it fails to parse.
func DefaultDinoConfig() DinoConfig {
	return DinoConfig{
		World: WorldConfig{
			Width:         960,
			Height:        400,
			GroundHeight:  80,
			GroundPattern: 40,
		},
		Player: PlayerConfig{
			X:            80,
			Size:         55,
			HitboxMargin: 8,
		},
		Physics: PhysicsConfig{
			Gravity:     0.5,
			JumpImpulse: -12,
			ScrollSpeed: 3.5,
		},
		Obstacles: ObstacleConfig{
			SpawnChance:    0.015,
			MinGap:         450,
			SpawnOffset:    50,
			HitboxMargin:   10,
			SeasonalChance: 0.25,
			Clusters: []ClusterConfig{
				{Size: 1, Weight: 0.60, Spacing: Range{Min: 60, Max: 60}},
				{Size: 2, Weight: 0.25, Spacing: Range{Min: 55, Max: 85}},
				{Size: 3, Weight: 0.15, Spacing: Range{Min: 50, Max: 70}},
			},
			Variants: []VariantConfig{
				{Name: "cactus", Width: 40, Height: 60, Size: Range{Min: 55, Max: 70}},
				{Name: "palm", Width: 40, Height: 60, Size: Range{Min: 55, Max: 70}},
				{Name: "tree", Width: 45, Height: 65, Size: Range{Min: 60, Max: 75}, Seasonal: true},
			},
		},
		Decor: DecorConfig{
			Birds: BirdConfig{
				Chance:    0.001,
				Spread:    900,
				Lanes:     []float64{0.12, 0.20, 0.28},
				Size:      25,
				Speed:     Range{Min: 1.5, Max: 2.3},
				Amplitude: Range{Min: 2, Max: 6},
				Frequency: Range{Min: 0.008, Max: 0.028},
			},
			Clouds: CloudConfig{
				Chance:  0.01,
				Spread:  600,
				Band:    0.15,
				YOffset: 15,
				Speed:   Range{Min: 0.1, Max: 0.25},
				Size:    Range{Min: 20, Max: 30},
			},
			Snow: SnowConfig{
				Chance: 0.02,
				Size:   Range{Min: 8, Max: 20},
				Speed:  Range{Min: 0.3, Max: 0.9},
				Drift:  Range{Min: -0.15, Max: 0.15},
			},
			Ornaments: OrnamentConfig{
				Chance:        0.0005,
				Spread:        600,
				Band:          0.25,
				YOffset:       25,
				Speed:         Range{Min: 0.2, Max: 0.5},
				Size:          Range{Min: 22, Max: 34},
				RotationSpeed: Range{Min: -0.015, Max: 0.015},
			},
			CullX: -100,
		},
		Gameplay: GameplayConfig{
			Lives:         5,
			Invincibility: 1500 * time.Millisecond,
			BlinkPeriod:   100 * time.Millisecond,
			SparkleChance: 0.1,
		},
		Gesture: GestureConfig{
			Endpoint:    "http://127.0.0.1:5000/process_frame",
			Interval:    200 * time.Millisecond,
			Timeout:     0,
			JPEGQuality: 70,
			MaxWidth:    640,
			Classify:    ClassifyRemote,
			Source:      SourceNone,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressScore,
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				GapReduction:    150,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultDinoYAML
}
