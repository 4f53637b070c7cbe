package device

// ByteSource is a receive FIFO filled by a UART interrupt, such as
// machine.UART on TinyGo targets.
type ByteSource interface {
	Buffered() int
	ReadByte() (byte, error)
}

// Drain hands every buffered byte to onByte and returns how many were
// delivered. A read error ends the drain early.
func Drain(src ByteSource, onByte func(byte)) int {
	n := 0
	for src.Buffered() > 0 {
		b, err := src.ReadByte()
		if err != nil {
			break
		}
		onByte(b)
		n++
	}
	return n
}
