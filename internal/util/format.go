package util

// Digits5 renders n as exactly five ASCII digits, keeping the last five
// digits of larger values. The display has no room for anything wider.
func Digits5(n int) string {
	if n < 0 {
		n = -n
	}
	var buf [5]byte
	for i := len(buf) - 1; i >= 0; i-- {
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[:])
}

// Readings formats a left/right sensor pair the way the calibration screen
// shows it: L#####|R#####.
func Readings(left, right uint16) string {
	return "L" + Digits5(int(left)) + "|R" + Digits5(int(right))
}

// PadLine pads or cuts s to the 16 columns of a display line.
func PadLine(s string) string {
	const cols = 16
	if len(s) >= cols {
		return s[:cols]
	}
	b := make([]byte, cols)
	copy(b, s)
	for i := len(s); i < cols; i++ {
		b[i] = ' '
	}
	return string(b)
}
