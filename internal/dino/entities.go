package dino

import (
	"time"

	"github.com/vovakirdan/dino-gesture/internal/config"
	"github.com/vovakirdan/dino-gesture/internal/core"
)

// Phase is the state machine position of a session.
type Phase int

const (
	PhaseIdle     Phase = iota // Waiting for the first click
	PhaseRunning               // Entities move, collisions active
	PhaseGameOver              // Terminal until the next click
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Player is the runner. Y is the top edge in world units; X is fixed by config.
type Player struct {
	Y              float64
	VY             float64
	Jumping        bool
	Invincible     bool
	InvincibleLeft time.Duration
}

// Obstacle is one ground obstacle. Y anchors its bottom to the ground line.
type Obstacle struct {
	X        float64
	Y        float64
	Size     float64 // Visual size
	Width    float64 // Hitbox width
	Height   float64 // Hitbox height
	Variant  string
	Seasonal bool
	Scored   bool
}

// Hitbox returns the obstacle box shrunk by margin on every side.
func (o Obstacle) Hitbox(margin float64) core.AABB {
	return core.AABB{
		Left:   o.X + margin,
		Right:  o.X + o.Width - margin,
		Top:    o.Y - o.Height + margin,
		Bottom: o.Y - margin,
	}
}

// Bird flies across the sky on a sine path.
type Bird struct {
	X, Y      float64
	Speed     float64
	Size      float64
	Amplitude float64
	Frequency float64
	Phase     float64
	Kind      int
}

// Cloud drifts slowly left.
type Cloud struct {
	X, Y  float64
	Speed float64
	Size  float64
}

// Snowflake falls from the top with sideways drift.
type Snowflake struct {
	X, Y  float64
	Size  float64
	Speed float64
	Drift float64
}

// Ornament is a rare rotating decoration.
type Ornament struct {
	X, Y          float64
	Speed         float64
	Size          float64
	Rotation      float64
	RotationSpeed float64
	Kind          int
}

// Number of visual kinds for birds and ornaments.
const (
	birdKinds     = 3
	ornamentKinds = 5
)

// State is everything that changes during a session. It is built fresh on
// every reset; only Best carries over.
type State struct {
	Phase        Phase
	Player       Player
	Score        int
	Lives        int
	Best         int
	Elapsed      time.Duration
	Ticks        int
	GroundOffset float64

	Obstacles []Obstacle
	Birds     []Bird
	Clouds    []Cloud
	Snow      []Snowflake
	Ornaments []Ornament
}

// NewState returns a state with the player on the ground and full lives.
func NewState(cfg *config.DinoConfig, phase Phase, best int) *State {
	return &State{
		Phase:  phase,
		Player: Player{Y: playerGroundY(cfg)},
		Lives:  cfg.Gameplay.Lives,
		Best:   best,
	}
}

// Summary returns the externally visible part of the state.
func (s *State) Summary() core.GameState {
	return core.GameState{
		Score:    s.Score,
		Best:     s.Best,
		Lives:    s.Lives,
		Elapsed:  s.Elapsed,
		Running:  s.Phase == PhaseRunning,
		GameOver: s.Phase == PhaseGameOver,
	}
}
