// Package dino implements the gesture-controlled runner: the player jumps
// over obstacle clusters while decorations drift by, loses a life per hit,
// and the best score survives across runs.
package dino

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-gesture/internal/config"
	"github.com/vovakirdan/dino-gesture/internal/core"
)

// Scores persists results. Implemented by storage.Store.
type Scores interface {
	SaveBest(score int) error
	RecordRun(score int, duration time.Duration) error
}

// Game owns the simulation of one session.
type Game struct {
	cfg        config.DinoConfig
	pending    *config.DinoConfig
	difficulty *config.DifficultyManager
	spawner    *Spawner
	fx         *rand.Rand // Render-only randomness; never touches the simulation
	state      *State
	scores     Scores
	logger     *log.Logger
}

// New creates a game in the idle phase.
func New(cfg config.DinoConfig, seed int64) *Game {
	g := &Game{
		cfg:    cfg,
		fx:     rand.New(rand.NewSource(seed + 1)),
		logger: log.Default(),
	}
	g.spawner = NewSpawner(&g.cfg, seed)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.state = NewState(&g.cfg, PhaseIdle, 0)
	return g
}

// SetScores attaches persistent storage. Nil disables persistence.
func (g *Game) SetScores(s Scores) {
	g.scores = s
}

// SetLogger sets the logger used for storage failures.
func (g *Game) SetLogger(l *log.Logger) {
	if l != nil {
		g.logger = l
	}
}

// SetBest seeds the best score, typically from storage at startup.
func (g *Game) SetBest(best int) {
	if best > g.state.Best {
		g.state.Best = best
	}
}

// SetConfig queues a new tuning table. It takes effect at the next reset so
// a run never changes rules halfway through.
func (g *Game) SetConfig(cfg config.DinoConfig) {
	g.pending = &cfg
}

// Config returns the active tuning table.
func (g *Game) Config() config.DinoConfig {
	return g.cfg
}

// State exposes the live state for rendering and inspection.
func (g *Game) State() *State {
	return g.state
}

// Start replaces the state wholesale and begins a run. The best score is
// carried over.
func (g *Game) Start() {
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
		g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
		g.logger.Info("applied new configuration")
	}
	g.state = NewState(&g.cfg, PhaseRunning, g.state.Best)
}

// Jump applies the jump impulse if a run is active and the player is grounded.
func (g *Game) Jump() bool {
	if g.state.Phase != PhaseRunning {
		return false
	}
	return jump(&g.state.Player, g.cfg.Physics.JumpImpulse)
}

// Step advances the simulation by one tick. dt is the wall-clock time since
// the previous tick and drives timers only; motion is per tick.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.GameState {
	s := g.state
	if in.Has(core.ActionStart) && s.Phase != PhaseRunning {
		g.Start()
		s = g.state
	}
	if s.Phase != PhaseRunning {
		return s.Summary()
	}

	s.Ticks++
	s.Elapsed += dt

	applyGravity(&s.Player, g.cfg.Physics.Gravity, playerGroundY(&g.cfg))

	speed := g.difficulty.Speed(g.cfg.Physics.ScrollSpeed, s.Score, s.Ticks)
	s.GroundOffset = advanceGround(s.GroundOffset, speed, g.cfg.World.GroundPattern)

	g.spawner.Spawn(s, g.difficulty.MinGap(g.cfg.Obstacles.MinGap, s.Score, s.Ticks))

	if s.Player.Invincible {
		s.Player.InvincibleLeft -= dt
		if s.Player.InvincibleLeft <= 0 {
			s.Player.Invincible = false
			s.Player.InvincibleLeft = 0
		}
	}

	updateDecor(s, &g.cfg)
	g.updateObstacles(speed)

	// Input lands between ticks, so gravity first acts on the impulse next tick.
	if in.Has(core.ActionJump) {
		g.Jump()
	}

	return s.Summary()
}

// updateObstacles scrolls obstacles, resolves hits and awards points.
func (g *Game) updateObstacles(speed float64) {
	s := g.state
	kept := s.Obstacles[:0]
	for _, o := range s.Obstacles {
		if s.Phase != PhaseRunning {
			kept = append(kept, o)
			continue
		}

		o.X -= speed

		if !s.Player.Invincible && collides(&g.cfg, s.Player, o) {
			g.loseLife()
			continue
		}

		if !o.Scored && o.X+o.Width < g.cfg.Player.X {
			o.Scored = true
			s.Score++
		}

		if o.X > -o.Width {
			kept = append(kept, o)
		}
	}
	s.Obstacles = kept
}

// loseLife handles one hit.
func (g *Game) loseLife() {
	s := g.state
	if s.Lives <= 0 {
		return
	}
	s.Lives--
	s.Player.Invincible = true
	s.Player.InvincibleLeft = g.cfg.Gameplay.Invincibility

	if s.Lives == 0 {
		g.endGame()
	}
}

// endGame moves to GameOver and persists the result.
func (g *Game) endGame() {
	s := g.state
	s.Phase = PhaseGameOver

	if s.Score > s.Best {
		s.Best = s.Score
		if g.scores != nil {
			if err := g.scores.SaveBest(s.Best); err != nil {
				g.logger.Error("failed to save best score", "score", s.Best, "error", err)
			}
		}
	}

	if g.scores != nil {
		if err := g.scores.RecordRun(s.Score, s.Elapsed); err != nil {
			g.logger.Error("failed to record run", "error", err)
		}
	}
	g.logger.Info("game over", "score", s.Score, "best", s.Best, "elapsed", s.Elapsed.Round(time.Second))
}
