// SPDX-License-Identifier: EPL-2.0

package selection

import (
	"math"
	"sync"
)

// Machine holds the selection of one session and serializes changes to it.
type Machine struct {
	mtx   sync.Mutex
	state State
}

func NewMachine(duration float64) *Machine {
	return &Machine{state: Reset(duration)}
}

func (m *Machine) State() State {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	return m.state
}

func (m *Machine) Dragging() bool {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	return m.state.Drag != None
}

func (m *Machine) Dispatch(ev Event) (State, Effect) {
	return m.apply(func(s State) (State, Effect) { return Transition(s, ev) })
}

func (m *Machine) SetStart(t float64) State {
	s, _ := m.apply(func(s State) (State, Effect) { return SetStart(s, t), Effect{} })
	return s
}

func (m *Machine) SetEnd(t float64) State {
	s, _ := m.apply(func(s State) (State, Effect) { return SetEnd(s, t), Effect{} })
	return s
}

func (m *Machine) Seek(t float64) (State, Effect) {
	return m.apply(func(s State) (State, Effect) { return Seek(s, t) })
}

func (m *Machine) Reset(duration float64) State {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.state = Reset(duration)
	return m.state
}

// SetCurrent moves the playhead to a position reported by the transport.
// While a drag is active the drag owns the playhead, so the update is dropped
// and ok is false.
func (m *Machine) SetCurrent(t float64) (s State, ok bool) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if m.state.Drag != None || m.state.Degenerate() || math.IsNaN(t) {
		return m.state, false
	}

	m.state.Current = clamp(t, 0, m.state.Duration)
	return m.state, true
}

func (m *Machine) apply(fn func(State) (State, Effect)) (State, Effect) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	var eff Effect
	m.state, eff = fn(m.state)
	return m.state, eff
}
