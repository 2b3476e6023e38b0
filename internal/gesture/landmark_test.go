package gesture

import "testing"

// hand builds a 21-point hand with the wrist at the bottom and the palm
// centre above it. Fingers listed in folded are curled below their PIP joint.
func hand(folded map[int]bool, thumbTucked bool) []Landmark {
	lm := make([]Landmark, HandPoints)
	for i := range lm {
		lm[i] = Landmark{X: 0.5, Y: 0.8}
	}
	lm[Wrist] = Landmark{X: 0.5, Y: 0.9}
	lm[PalmBase] = Landmark{X: 0.5, Y: 0.6}

	fingers := []struct {
		tip, pip int
		x        float64
	}{
		{IndexTip, IndexPIP, 0.45},
		{MiddleTip, MiddlePIP, 0.5},
		{RingTip, RingPIP, 0.55},
		{PinkyTip, PinkyPIP, 0.6},
	}
	for _, f := range fingers {
		if folded[f.tip] {
			lm[f.pip] = Landmark{X: f.x, Y: 0.55}
			lm[f.tip] = Landmark{X: f.x, Y: 0.65}
		} else {
			lm[f.pip] = Landmark{X: f.x, Y: 0.45}
			lm[f.tip] = Landmark{X: f.x, Y: 0.2}
		}
	}

	lm[ThumbTip] = Landmark{X: 0.2, Y: 0.6}
	if thumbTucked {
		lm[ThumbTip] = Landmark{X: 0.52, Y: 0.62}
	}
	return lm
}

func TestIsFist(t *testing.T) {
	all := map[int]bool{IndexTip: true, MiddleTip: true, RingTip: true, PinkyTip: true}

	tests := []struct {
		name     string
		lm       []Landmark
		expected bool
	}{
		{"open hand", hand(nil, false), false},
		{"closed fist", hand(all, true), true},
		{"three folded", hand(map[int]bool{IndexTip: true, MiddleTip: true, RingTip: true}, false), true},
		{"two folded near palm", hand(map[int]bool{IndexTip: true, MiddleTip: true}, false), true},
		{"one folded", hand(map[int]bool{RingTip: true}, false), false},
		{"too few points", hand(all, true)[:10], false},
		{"empty", nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsFist(tc.lm); got != tc.expected {
				t.Errorf("IsFist() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	px := []Landmark{{X: 320, Y: 240}, {X: 0, Y: 480}}
	got := normalize(px, 640, 480)
	if got[0] != (Landmark{X: 0.5, Y: 0.5}) || got[1] != (Landmark{X: 0, Y: 1}) {
		t.Errorf("pixel landmarks not normalized: %+v", got)
	}
	if px[0].X != 320 {
		t.Error("normalize must not modify its input")
	}

	rel := []Landmark{{X: 0.25, Y: 0.75}}
	if got := normalize(rel, 640, 480); got[0] != rel[0] {
		t.Errorf("normalized landmarks changed: %+v", got)
	}

	if normalize(nil, 640, 480) != nil {
		t.Error("empty input should stay nil")
	}
}
