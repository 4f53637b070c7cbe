package device

import (
	"io"
	"strings"
	"sync"

	"BeaconNav/internal/util"
)

// SerLCD command bytes understood by common serial LCD backpacks.
const (
	lcdCommand = 0xFE
	lcdClear   = 0x01
	lcdLine1   = 0x80
	lcdLine2   = 0xC0
)

// SerialLCD drives a 16x2 character LCD through a serial backpack.
type SerialLCD struct {
	mu sync.Mutex
	w  io.Writer
}

// NewSerialLCD returns a display writing to w (usually a *SerialDevice) and
// clears the screen.
func NewSerialLCD(w io.Writer) *SerialLCD {
	lcd := &SerialLCD{w: w}
	lcd.send([]byte{lcdCommand, lcdClear})
	return lcd
}

// WriteText writes s at the cursor. Bytes outside printable ASCII are sent
// as spaces so they cannot be taken for commands.
func (l *SerialLCD) WriteText(s string) {
	b := []byte(s)
	for i, c := range b {
		if c < 0x20 || c > 0x7E {
			b[i] = ' '
		}
	}
	l.send(b)
}

// SetCursorLine moves the cursor to the first column of line 1 or 2.
func (l *SerialLCD) SetCursorLine(line int) {
	pos := byte(lcdLine1)
	if line == 2 {
		pos = lcdLine2
	}
	l.send([]byte{lcdCommand, pos})
}

func (l *SerialLCD) send(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := l.w.Write(b); err != nil {
		util.Warn("[lcd] write failed: %v", err)
	}
}

// ConsoleDisplay keeps a two-line screen model and logs every completed
// line change.
type ConsoleDisplay struct {
	mu    sync.Mutex
	line  int
	lines [2]string
}

// NewConsoleDisplay returns a console display with the cursor on line 1.
func NewConsoleDisplay() *ConsoleDisplay {
	return &ConsoleDisplay{line: 1}
}

// WriteText appends s to the current line.
func (c *ConsoleDisplay) WriteText(s string) {
	c.mu.Lock()
	c.lines[c.line-1] += s
	text := strings.TrimRight(c.lines[c.line-1], " ")
	line := c.line
	c.mu.Unlock()
	util.Info("[lcd%d] %s", line, text)
}

// SetCursorLine selects a line and starts it over.
func (c *ConsoleDisplay) SetCursorLine(line int) {
	if line != 2 {
		line = 1
	}
	c.mu.Lock()
	c.line = line
	c.lines[line-1] = ""
	c.mu.Unlock()
}

type multiDisplay []Display

func (md multiDisplay) WriteText(s string) {
	for i := range md {
		md[i].WriteText(s)
	}
}

func (md multiDisplay) SetCursorLine(line int) {
	for i := range md {
		md[i].SetCursorLine(line)
	}
}

// MultiDisplay returns a Display that forwards every call to all displays,
// skipping nil entries.
func MultiDisplay(displays ...Display) Display {
	md := make(multiDisplay, 0, len(displays))
	for _, d := range displays {
		if d != nil {
			md = append(md, d)
		}
	}
	return md
}
