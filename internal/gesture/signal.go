// Package gesture turns webcam frames into a jump signal by polling an
// external hand-classification endpoint.
package gesture

import (
	"sync/atomic"
	"time"
)

// Status is the state shown by the on-screen gesture indicator.
type Status int

const (
	StatusWaiting     Status = iota // No classification received yet
	StatusOpenHand                  // Hand (or nothing) seen, no fist
	StatusFist                      // Fist detected: jump
	StatusCameraError               // No frame source; gesture jumping disabled
)

// String returns the indicator text.
func (s Status) String() string {
	switch s {
	case StatusWaiting:
		return "Waiting for camera"
	case StatusOpenHand:
		return "Open Hand"
	case StatusFist:
		return "FIST - JUMP!"
	case StatusCameraError:
		return "Camera Error"
	default:
		return "Unknown"
	}
}

// Snapshot is the latest classification result.
type Snapshot struct {
	Jump      bool
	Landmarks []Landmark
	Status    Status
	Updated   time.Time
}

// Signal holds the latest Snapshot. The client is the only writer; the game
// loop reads it once per tick. Snapshots are immutable once stored.
type Signal struct {
	v atomic.Pointer[Snapshot]
}

// NewSignal returns a signal in the waiting state.
func NewSignal() *Signal {
	s := &Signal{}
	s.v.Store(&Snapshot{Status: StatusWaiting})
	return s
}

// Load returns the latest snapshot.
func (s *Signal) Load() Snapshot {
	return *s.v.Load()
}

// Store publishes a new snapshot.
func (s *Signal) Store(snap Snapshot) {
	s.v.Store(&snap)
}

// SetCameraError marks gesture input as permanently unavailable.
func (s *Signal) SetCameraError() {
	s.Store(Snapshot{Status: StatusCameraError, Updated: time.Now()})
}

// EdgeDetector converts a level signal into rising-edge events.
// Each consumer of a Signal owns its own detector.
type EdgeDetector struct {
	prev bool
}

// Rising reports whether cur is true while the previous value was false.
func (e *EdgeDetector) Rising(cur bool) bool {
	fired := cur && !e.prev
	e.prev = cur
	return fired
}
