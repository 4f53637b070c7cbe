package device

import (
	"bytes"
	"testing"
)

func TestSerialLCDCommands(t *testing.T) {
	var buf bytes.Buffer
	lcd := NewSerialLCD(&buf)
	lcd.SetCursorLine(1)
	lcd.WriteText("R")
	lcd.SetCursorLine(2)
	lcd.WriteText("A\nB")

	want := []byte{0xFE, 0x01, 0xFE, 0x80, 'R', 0xFE, 0xC0, 'A', ' ', 'B'}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("bytes = % X, want % X", buf.Bytes(), want)
	}
}

type recordDisplay struct {
	calls []string
}

func (r *recordDisplay) WriteText(s string)     { r.calls = append(r.calls, "text:"+s) }
func (r *recordDisplay) SetCursorLine(line int) { r.calls = append(r.calls, "line") }

func TestMultiDisplayFansOut(t *testing.T) {
	a, b := &recordDisplay{}, &recordDisplay{}
	md := MultiDisplay(a, nil, b)
	md.SetCursorLine(1)
	md.WriteText("S")

	for _, r := range []*recordDisplay{a, b} {
		if len(r.calls) != 2 || r.calls[1] != "text:S" {
			t.Errorf("calls = %v", r.calls)
		}
	}
}

func TestConsoleDisplayLines(t *testing.T) {
	c := NewConsoleDisplay()
	c.SetCursorLine(2)
	c.WriteText("1b|")
	c.WriteText("00003")
	if c.lines[1] != "1b|00003" {
		t.Errorf("line 2 = %q", c.lines[1])
	}
	c.SetCursorLine(2)
	if c.lines[1] != "" {
		t.Errorf("line 2 not reset: %q", c.lines[1])
	}
}

type clockCounter struct{ total, calls int }

func (c *clockCounter) SleepMs(n int) { c.total += n; c.calls++ }

func TestSleepSeconds(t *testing.T) {
	c := &clockCounter{}
	SleepSeconds(c, 5)
	if c.total != 5000 || c.calls != 100 {
		t.Errorf("total=%d calls=%d, want 5000/100", c.total, c.calls)
	}
}
