package dino

import (
	"testing"

	"github.com/vovakirdan/dino-gesture/internal/config"
)

func TestApplyGravityLands(t *testing.T) {
	p := Player{Y: 100, VY: 10, Jumping: true}
	applyGravity(&p, 0.5, 200)
	if p.VY != 10.5 || p.Y != 110.5 || !p.Jumping {
		t.Errorf("mid-air step = %+v", p)
	}

	p = Player{Y: 195, VY: 8, Jumping: true}
	applyGravity(&p, 0.5, 200)
	if p.Y != 200 || p.VY != 0 || p.Jumping {
		t.Errorf("landing step = %+v", p)
	}
}

func TestJumpGatedOnGround(t *testing.T) {
	p := Player{Y: 200}
	if !jump(&p, -12) || p.VY != -12 || !p.Jumping {
		t.Errorf("grounded jump = %+v", p)
	}
	p.VY = -3
	if jump(&p, -12) || p.VY != -3 {
		t.Error("airborne jump should be ignored")
	}
}

func TestCollisionMargins(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	p := Player{Y: playerGroundY(&cfg)}
	ground := cfg.GroundLine()

	// Player box right edge is X+Size-8 = 127; obstacle left edge is X+10
	tests := []struct {
		name     string
		x        float64
		playerY  float64
		expected bool
	}{
		{"edges touch", 117, p.Y, false},
		{"one unit overlap", 116, p.Y, true},
		{"raw boxes overlap but margins clear", 125, p.Y, false},
		{"jumping over", 90, 150, false},
		{"landing onto it", 90, 230, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := Obstacle{X: tc.x, Y: ground, Width: 40, Height: 60}
			pl := Player{Y: tc.playerY}
			if got := collides(&cfg, pl, o); got != tc.expected {
				t.Errorf("collides() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestAdvanceGroundWraps(t *testing.T) {
	if got := advanceGround(38, 3.5, 40); got != 1.5 {
		t.Errorf("advanceGround(38, 3.5, 40) = %v, expected 1.5", got)
	}
	if got := advanceGround(10, 3.5, 0); got != 0 {
		t.Errorf("zero pattern should pin the offset, got %v", got)
	}
}
