package dino

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/dino-gesture/internal/core"
	"github.com/vovakirdan/dino-gesture/internal/gesture"
)

// Visual characters for rendering
const (
	DinoBody    = '█'
	DinoHead    = '◆'
	DinoLeg1    = '╱'
	DinoLeg2    = '╲'
	GroundChar  = '═'
	GroundDash  = '┊'
	SnowChar    = '*'
	SparkleChar = '✦'
	HeartFull   = '♥'
	HeartEmpty  = '♡'
	LandmarkDot = '●'
	BoneChar    = '·'
)

var (
	birdFrames     = [birdKinds][2]rune{{'v', '^'}, {'w', 'm'}, {'V', 'A'}}
	ornamentGlyphs = [ornamentKinds]rune{'☃', '♦', '♫', '★', '✶'}
	spinner        = []rune{'|', '/', '-', '\\'}
)

// hudRows is the number of rows reserved above the playfield.
const hudRows = 1

// Camera panel size in cells, including the border.
const (
	panelW = 20
	panelH = 9
)

// viewport maps world units onto screen cells below the HUD.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	rows := dst.Height() - hudRows
	if rows < 1 {
		rows = 1
	}
	return viewport{
		sx:  float64(dst.Width()) / worldW,
		sy:  float64(rows) / worldH,
		top: hudRows,
	}
}

func (v viewport) x(wx float64) int { return int(math.Floor(wx * v.sx)) }
func (v viewport) y(wy float64) int { return v.top + int(math.Floor(wy*v.sy)) }

// cols and rows convert a world length to a span of at least one cell.
func (v viewport) cols(w float64) int { return core.Max(1, int(math.Round(w*v.sx))) }
func (v viewport) rows(h float64) int { return core.Max(1, int(math.Round(h*v.sy))) }

// Render draws the current frame: sky decorations, ground, obstacles, player,
// HUD, camera preview and the start or game-over overlay.
func (g *Game) Render(dst *core.Screen, snap gesture.Snapshot) {
	dst.Clear()
	s := g.state
	v := newViewport(dst, g.cfg.World.Width, g.cfg.World.Height)

	g.drawSky(dst, v)
	g.drawGround(dst, v)
	for _, o := range s.Obstacles {
		g.drawObstacle(dst, v, o)
	}
	for _, b := range s.Birds {
		frame := birdFrames[b.Kind%birdKinds][(s.Ticks/8)%2]
		dst.SetColored(v.x(b.X), v.y(b.Y), frame, core.ColorWhite)
	}
	g.drawDino(dst, v)

	g.drawHUD(dst, snap)
	g.drawCameraPanel(dst, snap)

	switch s.Phase {
	case PhaseIdle:
		drawCenteredBox(dst, core.ColorBrightWhite,
			"★ CHRISTMAS DINO ★",
			"",
			"Make a FIST to JUMP!",
			"Click to Start",
		)
	case PhaseGameOver:
		drawCenteredBox(dst, core.ColorBrightRed,
			"GAME OVER",
			"",
			fmt.Sprintf("Final Score: %d", s.Score),
			fmt.Sprintf("Best: %d", s.Best),
			"Click to Restart",
		)
	}
}

func (g *Game) drawSky(dst *core.Screen, v viewport) {
	s := g.state
	for _, f := range s.Snow {
		dst.SetColored(v.x(f.X), v.y(f.Y), SnowChar, core.ColorBrightWhite)
	}
	for _, o := range s.Ornaments {
		x, y := v.x(o.X), v.y(o.Y)
		dst.SetColored(x, y, ornamentGlyphs[o.Kind%ornamentKinds], core.ColorBrightYellow)
		dst.SetColored(x+1, y, spinner[spinIndex(o.Rotation)], core.ColorYellow)
	}
	for _, c := range s.Clouds {
		n := v.cols(c.Size * 2)
		dst.DrawTextColored(v.x(c.X), v.y(c.Y), strings.Repeat("░", n), core.ColorGray)
	}
}

// spinIndex maps a rotation angle to a spinner frame.
func spinIndex(rot float64) int {
	quarter := math.Pi / 4
	i := int(math.Floor(rot/quarter)) % len(spinner)
	if i < 0 {
		i += len(spinner)
	}
	return i
}

func (g *Game) drawGround(dst *core.Screen, v viewport) {
	gy := v.y(g.cfg.GroundLine())
	dst.DrawHLine(0, gy, dst.Width(), GroundChar, core.ColorWhite)

	pattern := g.cfg.World.GroundPattern
	if pattern <= 0 {
		return
	}
	for wx := -pattern; wx < g.cfg.World.Width; wx += pattern {
		x := v.x(wx + pattern - g.state.GroundOffset)
		for y := gy + 1; y < dst.Height(); y++ {
			dst.SetColored(x, y, GroundDash, core.ColorDarkGray)
		}
	}
}

func (g *Game) drawObstacle(dst *core.Screen, v viewport, o Obstacle) {
	w := v.cols(o.Size * o.Width / o.Height)
	h := v.rows(o.Size)
	left := v.x(o.X)
	bottom := v.y(o.Y) - 1

	switch {
	case o.Seasonal:
		// Tree: widening layers with a star on top
		for dy := 0; dy < h; dy++ {
			row := bottom - dy
			half := (w * (h - dy)) / (2 * h)
			mid := left + w/2
			for x := mid - half; x <= mid+half; x++ {
				dst.SetColored(x, row, '▲', core.ColorGreen)
			}
		}
		dst.SetColored(left+w/2, bottom-h, '★', core.ColorBrightYellow)
		if g.fx.Float64() < g.cfg.Gameplay.SparkleChance {
			sx := left + g.fx.Intn(w+1)
			sy := bottom - g.fx.Intn(h+1)
			dst.SetColored(sx, sy, SparkleChar, core.ColorBrightYellow)
		}
	case o.Variant == "palm":
		for dy := 0; dy < h-1; dy++ {
			dst.SetColored(left+w/2, bottom-dy, '┃', core.ColorOrange)
		}
		dst.DrawTextColored(left+w/2-1, bottom-h+1, "\\|/", core.ColorBrightGreen)
	default:
		dst.DrawRect(core.NewRect(left, bottom-h+1, w, h), '▓', core.ColorGreen)
	}
}

func (g *Game) drawDino(dst *core.Screen, v viewport) {
	s := g.state
	p := s.Player
	w := v.cols(g.cfg.Player.Size)
	h := core.Max(2, v.rows(g.cfg.Player.Size))
	x := v.x(g.cfg.Player.X)
	y := v.y(p.Y)

	color := core.ColorBrightGreen
	if p.Invincible && g.blinkOff() {
		color = core.ColorDarkGray
	}

	// Head row, body rows, legs
	dst.DrawHLine(x+w/2, y, w-w/2, DinoBody, color)
	dst.SetColored(x+w-1, y, DinoHead, color)
	for dy := 1; dy < h-1; dy++ {
		dst.DrawHLine(x, y+dy, w, DinoBody, color)
	}
	legs := y + h - 1
	switch {
	case p.Jumping:
		dst.SetColored(x+1, legs, DinoLeg1, color)
		dst.SetColored(x+2, legs, DinoLeg2, color)
	case (s.Ticks/5)%2 == 0:
		dst.SetColored(x, legs, DinoLeg1, color)
		dst.SetColored(x+w-1, legs, DinoLeg2, color)
	default:
		dst.SetColored(x+1, legs, DinoLeg1, color)
		dst.SetColored(x+w-2, legs, DinoLeg2, color)
	}
}

// blinkOff reports whether the invincibility blink is in its dim half.
func (g *Game) blinkOff() bool {
	period := g.cfg.Gameplay.BlinkPeriod
	if period <= 0 {
		return false
	}
	return (g.state.Elapsed/period)%2 == 0
}

func (g *Game) drawHUD(dst *core.Screen, snap gesture.Snapshot) {
	s := g.state
	var hearts strings.Builder
	for i := 0; i < g.cfg.Gameplay.Lives; i++ {
		if i < s.Lives {
			hearts.WriteRune(HeartFull)
		} else {
			hearts.WriteRune(HeartEmpty)
		}
	}

	x := 1
	x += drawField(dst, x, fmt.Sprintf("Score: %d", s.Score), core.ColorBrightWhite)
	x += drawField(dst, x, fmt.Sprintf("Best: %d", s.Best), core.ColorYellow)
	x += drawField(dst, x, hearts.String(), core.ColorBrightRed)
	drawField(dst, x, fmt.Sprintf("%ds", int(s.Elapsed/time.Second)), core.ColorCyan)

	status := snap.Status.String()
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(status)-1, 0, status, statusColor(snap.Status))
}

// drawField writes a HUD field and returns the width it used.
func drawField(dst *core.Screen, x int, text string, c core.Color) int {
	dst.DrawTextColored(x, 0, text, c)
	return utf8.RuneCountInString(text) + 2
}

func statusColor(st gesture.Status) core.Color {
	switch st {
	case gesture.StatusFist:
		return core.ColorBrightYellow
	case gesture.StatusOpenHand:
		return core.ColorBrightWhite
	case gesture.StatusCameraError:
		return core.ColorBrightRed
	default:
		return core.ColorGray
	}
}

// drawCameraPanel draws the hand skeleton in a box under the HUD, right side.
func (g *Game) drawCameraPanel(dst *core.Screen, snap gesture.Snapshot) {
	if dst.Width() < panelW*3 || dst.Height() < panelH+hudRows+6 {
		return
	}
	box := core.NewRect(dst.Width()-panelW-1, hudRows, panelW, panelH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorDarkGray)

	inner := core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2)
	if len(snap.Landmarks) == 0 {
		msg := "no hand"
		if snap.Status == gesture.StatusCameraError {
			msg = "no camera"
		}
		dst.DrawTextColored(inner.X+(inner.W-len(msg))/2, inner.Y+inner.H/2, msg, core.ColorGray)
		return
	}

	px := func(lm gesture.Landmark) (int, int) {
		x := inner.X + int(core.ClampF(lm.X, 0, 1)*float64(inner.W-1)+0.5)
		y := inner.Y + int(core.ClampF(lm.Y, 0, 1)*float64(inner.H-1)+0.5)
		return x, y
	}

	for _, c := range gesture.Connections {
		if c[0] >= len(snap.Landmarks) || c[1] >= len(snap.Landmarks) {
			continue
		}
		x0, y0 := px(snap.Landmarks[c[0]])
		x1, y1 := px(snap.Landmarks[c[1]])
		dst.DrawLine(x0, y0, x1, y1, BoneChar, core.ColorGreen)
	}

	dot := core.ColorBrightGreen
	if snap.Jump {
		dot = core.ColorBrightRed
	}
	for _, lm := range snap.Landmarks {
		x, y := px(lm)
		dst.SetColored(x, y, LandmarkDot, dot)
	}
}

// drawCenteredBox draws a bordered message box in the centre of the screen.
func drawCenteredBox(dst *core.Screen, c core.Color, lines ...string) {
	inner := 0
	for _, l := range lines {
		inner = core.Max(inner, utf8.RuneCountInString(l))
	}
	boxW := inner + 6
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+2+i, l, c)
	}
}
