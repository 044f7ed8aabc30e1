// SPDX-License-Identifier: EPL-2.0

package selection

import "math"

const (
	// MinGap is the shortest selection, in seconds.
	MinGap = 0.1

	// HandleHitPx is how far from a selection edge, in pixels, a pointer-down
	// still grabs that edge's handle.
	HandleHitPx = 10

	// PlayheadHitPx is the grab distance for the playhead.
	PlayheadHitPx = 8
)

// DragMode is what the pointer is currently holding.
type DragMode int

const (
	None DragMode = iota
	DraggingStart
	DraggingEnd
	DraggingPlayhead
)

func (d DragMode) String() string {
	switch d {
	case None:
		return "none"
	case DraggingStart:
		return "start"
	case DraggingEnd:
		return "end"
	case DraggingPlayhead:
		return "playhead"
	default:
		return "unknown"
	}
}

// State is the selected range, the playhead and the active drag, all in
// seconds. Every function in this package returns a State where
// 0 <= Start, End <= Duration and Start+MinGap <= End, unless the clip is
// shorter than MinGap.
type State struct {
	Start    float64
	End      float64
	Current  float64
	Duration float64
	Drag     DragMode
}

// Reset returns the state for a freshly loaded clip: the whole clip selected
// and the playhead at zero. A negative or NaN duration is treated as empty.
func Reset(duration float64) State {
	if math.IsNaN(duration) || duration < 0 || math.IsInf(duration, 0) {
		duration = 0
	}
	return State{End: duration, Duration: duration}
}

// Degenerate reports whether the clip is too short to select from. Pointer
// events and edits are ignored on a degenerate state.
func (s State) Degenerate() bool {
	return s.Duration < MinGap
}

// Length is the selected duration.
func (s State) Length() float64 {
	return s.End - s.Start
}

// Contains reports whether t lies inside the selection, edges included.
func (s State) Contains(t float64) bool {
	return t >= s.Start && t <= s.End
}

// SetStart moves the start edge to t, keeping it at least MinGap before End.
func SetStart(s State, t float64) State {
	if s.Degenerate() || math.IsNaN(t) {
		return s
	}
	s.Start = clamp(t, 0, s.End-MinGap)
	return s
}

// SetEnd moves the end edge to t, keeping it at least MinGap after Start.
func SetEnd(s State, t float64) State {
	if s.Degenerate() || math.IsNaN(t) {
		return s
	}
	s.End = clamp(t, s.Start+MinGap, s.Duration)
	return s
}

// Seek places the playhead anywhere in the clip. Unlike a playhead drag it
// is not limited to the selection.
func Seek(s State, t float64) (State, Effect) {
	if s.Degenerate() || math.IsNaN(t) {
		return s, Effect{}
	}
	s.Current = clamp(t, 0, s.Duration)
	return s, Effect{Seek: true, To: s.Current}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
