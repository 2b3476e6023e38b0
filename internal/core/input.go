package core

// Action is a semantic input, independent of where it came from
// (mouse, keyboard or gesture).
type Action uint8

const (
	ActionNone  Action = iota
	ActionStart        // Click on the game surface: start or restart a run
	ActionJump         // Rising edge of the gesture signal
	ActionQuit         // Q, Ctrl+C: leave the program or session

	actionCount
)

var actionNames = [actionCount]string{"None", "Start", "Jump", "Quit"}

func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions collected between two ticks.
type InputFrame uint8

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return 0
}

// Set adds a to the frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	*f |= 1 << a
}

// Has reports whether a was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && a < actionCount && f&(1<<a) != 0
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	*f = 0
}
