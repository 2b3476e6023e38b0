package gesture

import "math"

// Landmark is one hand keypoint. Coordinates are normalized to [0, 1]
// relative to the frame, with Y growing downward.
type Landmark struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Hand keypoint indices (21-point hand model).
const (
	Wrist     = 0
	ThumbTip  = 4
	IndexPIP  = 6
	IndexTip  = 8
	PalmBase  = 9 // Middle finger MCP, used as the palm centre
	MiddlePIP = 10
	MiddleTip = 12
	RingPIP   = 14
	RingTip   = 16
	PinkyPIP  = 18
	PinkyTip  = 20

	HandPoints = 21
)

// Connections lists the skeleton edges drawn between landmarks.
var Connections = [][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 4},
	{0, 5}, {5, 6}, {6, 7}, {7, 8},
	{0, 9}, {9, 10}, {10, 11}, {11, 12},
	{0, 13}, {13, 14}, {14, 15}, {15, 16},
	{0, 17}, {17, 18}, {18, 19}, {19, 20},
	{5, 9}, {9, 13}, {13, 17},
}

// Fist detection thresholds, as fractions of hand size (wrist to middle tip).
const (
	fingertipPalmRatio = 0.4
	thumbPalmRatio     = 0.35
)

func dist(a, b Landmark) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// IsFist classifies a closed fist from 21 normalized landmarks.
// A fist is at least two folded fingers with two fingertips near the palm,
// or three folded fingers, or a tucked thumb with two folded fingers.
func IsFist(lm []Landmark) bool {
	if len(lm) < HandPoints {
		return false
	}

	handSize := dist(lm[Wrist], lm[MiddleTip])
	if handSize <= 0 {
		return false
	}

	palm := lm[PalmBase]
	fingers := [][2]int{
		{IndexTip, IndexPIP},
		{MiddleTip, MiddlePIP},
		{RingTip, RingPIP},
		{PinkyTip, PinkyPIP},
	}

	folded, near := 0, 0
	for _, f := range fingers {
		tip, pip := lm[f[0]], lm[f[1]]
		if tip.Y > pip.Y {
			folded++
		}
		if dist(tip, palm) < handSize*fingertipPalmRatio {
			near++
		}
	}
	thumbTucked := dist(lm[ThumbTip], palm) < handSize*thumbPalmRatio

	return (folded >= 2 && near >= 2) ||
		folded >= 3 ||
		(thumbTucked && folded >= 2)
}

// normalize converts pixel landmarks to frame-relative coordinates.
// Endpoints differ: some return normalized points, others pixels.
func normalize(lms []Landmark, w, h int) []Landmark {
	if len(lms) == 0 {
		return nil
	}
	pixels := false
	for _, p := range lms {
		if p.X > 1.5 || p.Y > 1.5 {
			pixels = true
			break
		}
	}
	out := make([]Landmark, len(lms))
	copy(out, lms)
	if !pixels || w <= 0 || h <= 0 {
		return out
	}
	for i := range out {
		out[i].X /= float64(w)
		out[i].Y /= float64(h)
	}
	return out
}
