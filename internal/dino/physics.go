package dino

import (
	"math"

	"github.com/vovakirdan/dino-gesture/internal/config"
	"github.com/vovakirdan/dino-gesture/internal/core"
)

// playerGroundY is the player's Y when standing on the ground.
func playerGroundY(cfg *config.DinoConfig) float64 {
	return cfg.GroundLine() - cfg.Player.Size
}

// applyGravity integrates one tick of vertical motion and lands the player.
func applyGravity(p *Player, gravity, groundY float64) {
	p.VY += gravity
	p.Y += p.VY

	if p.Y >= groundY {
		p.Y = groundY
		p.VY = 0
		p.Jumping = false
	}
}

// jump applies the impulse unless the player is already airborne.
func jump(p *Player, impulse float64) bool {
	if p.Jumping {
		return false
	}
	p.VY = impulse
	p.Jumping = true
	return true
}

// playerHitbox returns the player's forgiving collision box.
func playerHitbox(cfg *config.DinoConfig, p Player) core.AABB {
	size := cfg.Player.Size
	return core.NewAABB(cfg.Player.X, p.Y, size, size).Shrink(cfg.Player.HitboxMargin)
}

// collides tests the player against one obstacle.
func collides(cfg *config.DinoConfig, p Player, o Obstacle) bool {
	return playerHitbox(cfg, p).Intersects(o.Hitbox(cfg.Obstacles.HitboxMargin))
}

// advanceGround scrolls the ground pattern, wrapping at the pattern width.
func advanceGround(offset, speed, pattern float64) float64 {
	if pattern <= 0 {
		return 0
	}
	return math.Mod(offset+speed, pattern)
}
