// SPDX-License-Identifier: EPL-2.0

package selection

import "math"

// EventKind is the pointer gesture behind an Event.
type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	PointerLeave
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// Event is a pointer gesture at X pixels on a waveform Width pixels wide.
// Width is the live width at the time of the event.
type Event struct {
	Kind  EventKind
	X     float64
	Width float64
}

// Effect asks the caller to move the playback transport.
type Effect struct {
	Seek bool
	To   float64
}

// Transition applies ev to s. It has no side effects. Up and leave always
// end the drag, whatever the geometry.
func Transition(s State, ev Event) (State, Effect) {
	switch ev.Kind {
	case PointerUp, PointerLeave:
		s.Drag = None
		return s, Effect{}
	case PointerDown:
		return pointerDown(s, ev)
	case PointerMove:
		return pointerMove(s, ev)
	}

	return s, Effect{}
}

func validGeometry(s State, ev Event) bool {
	return !s.Degenerate() && ev.Width > 0 && !math.IsNaN(ev.X) && !math.IsInf(ev.X, 0)
}

func pointerDown(s State, ev Event) (State, Effect) {
	if !validGeometry(s, ev) {
		return s, Effect{}
	}

	toX := func(t float64) float64 { return t / s.Duration * ev.Width }
	t := ev.X / ev.Width * s.Duration

	switch {
	case math.Abs(ev.X-toX(s.Start)) <= HandleHitPx:
		s.Drag = DraggingStart
	case math.Abs(ev.X-toX(s.End)) <= HandleHitPx:
		s.Drag = DraggingEnd
	case math.Abs(ev.X-toX(s.Current)) <= PlayheadHitPx:
		s.Drag = DraggingPlayhead
	case s.Contains(t):
		s.Current = t
		return s, Effect{Seek: true, To: t}
	}

	return s, Effect{}
}

func pointerMove(s State, ev Event) (State, Effect) {
	if s.Drag == None || !validGeometry(s, ev) {
		return s, Effect{}
	}

	t := clamp(ev.X/ev.Width*s.Duration, 0, s.Duration)

	switch s.Drag {
	case DraggingStart:
		s = SetStart(s, t)
	case DraggingEnd:
		s = SetEnd(s, t)
	case DraggingPlayhead:
		s.Current = clamp(t, s.Start, s.End)
		return s, Effect{Seek: true, To: s.Current}
	}

	return s, Effect{}
}
