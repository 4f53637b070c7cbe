// Package core contains the runtime of the BeaconNav controller: the shared
// interrupt state, the mode coordinator, the display monitor and the
// wiring of host and board devices.
package core

import "sync/atomic"

// buttonLockoutMs is how long presses are ignored after an accepted one.
const buttonLockoutMs = 700

// buttonChecks is how many times the button line is re-read before a press
// is accepted.
const buttonChecks = 3

// Signals is the state shared between interrupt handlers and the control
// loop. Every field is atomic:
//
//	running    button handler
//	ticks      timer tick, never reset
//	elapsed    timer tick adds, the loop resets it at phase start
//	lastPress  button handler
//
// Presses may arrive from several sources (pin interrupt, monitor, stdin).
// Only one is handled at a time; a press arriving while another is being
// handled is dropped as part of the same edge.
type Signals struct {
	running   atomic.Bool
	ticks     atomic.Uint32
	elapsed   atomic.Uint32
	pressed   atomic.Bool
	lastPress atomic.Uint32
	handling  atomic.Bool

	// ButtonDown reads the button line. Nil means the line always reads
	// pressed, as with a software button.
	ButtonDown func() bool
	// LockoutMs is the time presses are ignored after an accepted one.
	LockoutMs uint32
}

// NewSignals returns signals in standby with the given press lockout.
func NewSignals(lockoutMs uint32) *Signals {
	return &Signals{LockoutMs: lockoutMs}
}

// Tick advances the tick counters by ms. Timer interrupt side.
func (s *Signals) Tick(ms uint32) {
	s.ticks.Add(ms)
	s.elapsed.Add(ms)
}

// OnButton handles a button edge. The line is re-checked before the mode is
// toggled and further presses are ignored until the lockout expires. It
// reports whether the press was accepted.
func (s *Signals) OnButton() bool {
	if !s.handling.CompareAndSwap(false, true) {
		return false
	}
	defer s.handling.Store(false)

	now := s.ticks.Load()
	if s.pressed.Load() && now-s.lastPress.Load() < s.LockoutMs {
		return false
	}
	for i := 0; i < buttonChecks; i++ {
		if s.ButtonDown != nil && !s.ButtonDown() {
			return false
		}
	}
	for {
		cur := s.running.Load()
		if s.running.CompareAndSwap(cur, !cur) {
			break
		}
	}
	s.lastPress.Store(now)
	s.pressed.Store(true)
	return true
}

// Running reports the requested mode.
func (s *Signals) Running() bool {
	return s.running.Load()
}

// Ticks is the time since start in ms.
func (s *Signals) Ticks() uint32 {
	return s.ticks.Load()
}

// Elapsed is the time since the last ResetElapsed in ms.
func (s *Signals) Elapsed() uint32 {
	return s.elapsed.Load()
}

// ResetElapsed restarts the phase counter. Control loop side.
func (s *Signals) ResetElapsed() {
	s.elapsed.Store(0)
}
