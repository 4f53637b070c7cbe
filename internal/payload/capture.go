// Package payload assembles RFID frames delivered byte by byte from the
// serial interrupt and validates their XOR checksum.
//
// Frame layout after the start marker:
//
//	D0..D9  payload
//	C0 C1   checksum, compared as C0|C1
//	CR LF   line terminators
//	ETX     end marker, stored as 0
package payload

import "sync/atomic"

const (
	StartByte = 0x02
	EndByte   = 0x03

	// FrameLen is the number of bytes kept after the start marker. A frame
	// that fills it without an end marker is abandoned.
	FrameLen = 15
	// DataLen is the payload length.
	DataLen = 10
)

// Frame is a captured frame without its start marker.
type Frame [FrameLen]byte

// Capture is the frame assembler shared between the byte interrupt and the
// control loop.
//
// OnByte is the only writer of the assembly buffer and of the published
// frame, and it never touches the frame while a capture is pending. The loop
// reads the frame only after Ready reports true. Reset asks the interrupt
// side to drop its partial frame on the next byte instead of touching the
// buffer itself.
type Capture struct {
	// interrupt side
	buf    Frame
	pos    int
	active bool

	frame    Frame
	ready    atomic.Bool
	resetReq atomic.Bool
	dropped  atomic.Uint32
}

// OnByte consumes one received byte. It runs in interrupt context.
func (c *Capture) OnByte(b byte) {
	if c.resetReq.CompareAndSwap(true, false) {
		c.active = false
		c.pos = 0
	}
	if c.ready.Load() {
		return
	}
	if !c.active {
		if b == StartByte {
			c.buf = Frame{}
			c.pos = 0
			c.active = true
		}
		return
	}
	if b == EndByte {
		c.buf[c.pos] = 0
		c.frame = c.buf
		c.active = false
		c.ready.Store(true)
		return
	}
	c.buf[c.pos] = b
	c.pos++
	if c.pos == FrameLen {
		c.active = false
		c.dropped.Add(1)
	}
}

// Ready reports whether a complete frame is waiting.
func (c *Capture) Ready() bool {
	return c.ready.Load()
}

// Frame returns the pending frame. Only meaningful after Ready.
func (c *Capture) Frame() Frame {
	return c.frame
}

// Reset discards any pending or partial frame.
func (c *Capture) Reset() {
	c.resetReq.Store(true)
	c.ready.Store(false)
}

// Dropped counts frames abandoned for missing their end marker.
func (c *Capture) Dropped() uint32 {
	return c.dropped.Load()
}
