// SPDX-License-Identifier: EPL-2.0

// Package selection models the trim range picked on a waveform and the
// pointer gestures that edit it.
//
// Transition is a pure function from a State and a pointer Event to the next
// State, plus an optional Effect asking the caller to seek playback:
//
//	s := selection.Reset(buf.Duration())
//	s, eff := selection.Transition(s, selection.Event{
//	    Kind:  selection.PointerDown,
//	    X:     12,
//	    Width: 800,
//	})
//
// A pointer-down grabs the start handle, the end handle or the playhead, in
// that order, when it lands within HandleHitPx or PlayheadHitPx of it. A
// press inside the selection that grabs nothing seeks there. A press outside
// it does nothing.
//
// Machine wraps a State behind a mutex for use by a session and its playback
// monitor. Transport updates go through SetCurrent, which yields to an
// active drag.
package selection
