// Package stub provides in-memory collaborators for host-side tests. Nothing
// here sleeps: the Clock only advances a virtual millisecond counter.
package stub

import (
	"strings"
	"sync"

	"BeaconNav/internal/model"
)

// Clock is a virtual clock. OnSleep, when set, runs after every sleep with
// the requested duration and the virtual time after it.
type Clock struct {
	mu      sync.Mutex
	now     int
	counts  map[int]int
	OnSleep func(n, now int)
}

// NewClock creates a clock at t=0.
func NewClock() *Clock {
	return &Clock{counts: map[int]int{}}
}

// SleepMs advances virtual time by n ms.
func (c *Clock) SleepMs(n int) {
	c.mu.Lock()
	c.now += n
	c.counts[n]++
	now := c.now
	hook := c.OnSleep
	c.mu.Unlock()
	if hook != nil {
		hook(n, now)
	}
}

// Now returns the virtual time in ms.
func (c *Clock) Now() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Count returns how many sleeps of exactly n ms happened.
func (c *Clock) Count(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[n]
}

// Write is one recorded duty write.
type Write struct {
	Channel int
	Value   int
}

// PWM records duty writes.
type PWM struct {
	mu     sync.Mutex
	writes []Write
}

// SetDuty records the write.
func (p *PWM) SetDuty(channel int, value int) {
	p.mu.Lock()
	p.writes = append(p.writes, Write{Channel: channel, Value: value})
	p.mu.Unlock()
}

// Writes returns a copy of every write so far.
func (p *PWM) Writes() []Write {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Write, len(p.writes))
	copy(out, p.writes)
	return out
}

// Last returns the last value written to channel and whether any was.
func (p *PWM) Last(channel int) (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := len(p.writes) - 1; i >= 0; i-- {
		if p.writes[i].Channel == channel {
			return p.writes[i].Value, true
		}
	}
	return 0, false
}

// Reset forgets recorded writes.
func (p *PWM) Reset() {
	p.mu.Lock()
	p.writes = nil
	p.mu.Unlock()
}

// Sensor serves scripted readings per sensor. Once a queue is drained the
// last value keeps being returned.
type Sensor struct {
	mu     sync.Mutex
	queues map[model.SensorID][]uint16
	last   map[model.SensorID]uint16
	reads  map[model.SensorID]int
}

// NewSensor creates a sensor reading zero on both channels.
func NewSensor() *Sensor {
	return &Sensor{
		queues: map[model.SensorID][]uint16{},
		last:   map[model.SensorID]uint16{},
		reads:  map[model.SensorID]int{},
	}
}

// Push queues readings for id.
func (s *Sensor) Push(id model.SensorID, values ...uint16) {
	s.mu.Lock()
	s.queues[id] = append(s.queues[id], values...)
	s.mu.Unlock()
}

// RawReading pops the next scripted value for id.
func (s *Sensor) RawReading(id model.SensorID) uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads[id]++
	q := s.queues[id]
	if len(q) > 0 {
		s.last[id] = q[0]
		s.queues[id] = q[1:]
	}
	return s.last[id]
}

// Reads returns how many times id was sampled.
func (s *Sensor) Reads(id model.SensorID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads[id]
}

// Display models a two-line screen and keeps every text write.
type Display struct {
	mu    sync.Mutex
	line  int
	lines [2]string
	texts []string
}

// NewDisplay creates a blank display.
func NewDisplay() *Display {
	return &Display{line: 1}
}

// WriteText appends s to the current line.
func (d *Display) WriteText(s string) {
	d.mu.Lock()
	d.lines[d.line-1] += s
	d.texts = append(d.texts, s)
	d.mu.Unlock()
}

// SetCursorLine moves to the start of a line, clearing it.
func (d *Display) SetCursorLine(line int) {
	if line != 2 {
		line = 1
	}
	d.mu.Lock()
	d.line = line
	d.lines[line-1] = ""
	d.mu.Unlock()
}

// Line returns the current content of line 1 or 2 without trailing blanks.
func (d *Display) Line(n int) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return strings.TrimRight(d.lines[n-1], " ")
}

// Wrote reports whether any single text write contained s.
func (d *Display) Wrote(s string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, t := range d.texts {
		if strings.Contains(t, s) {
			return true
		}
	}
	return false
}
