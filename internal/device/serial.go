//go:build !tinygo

package device

import (
	"errors"
	"fmt"
	"io"
	"time"

	serial "go.bug.st/serial"
)

// ErrNotOpen is returned by operations on a closed serial device.
var ErrNotOpen = errors.New("serial port not open")

// SerialDevice wraps a go.bug.st/serial port for byte and line traffic.
type SerialDevice struct {
	port io.ReadWriteCloser
	dev  string
	baud int
}

// NewSerialDevice creates and opens a serial device with the given path and baudrate.
func NewSerialDevice(dev string, baud int) (*SerialDevice, error) {
	s := &SerialDevice{dev: dev, baud: baud}
	if err := s.Open(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSerialDeviceFromPort wraps an already opened port.
func NewSerialDeviceFromPort(port io.ReadWriteCloser) *SerialDevice {
	return &SerialDevice{port: port}
}

// Open ensures that the serial port is ready for use.
func (s *SerialDevice) Open() error {
	if s.port != nil {
		return nil
	}
	p, err := serial.Open(s.dev, &serial.Mode{BaudRate: s.baud})
	if err != nil {
		return fmt.Errorf("failed to open serial %s: %w", s.dev, err)
	}
	// Bounded reads let the byte stream notice a stop request.
	if err := p.SetReadTimeout(100 * time.Millisecond); err != nil {
		_ = p.Close()
		return fmt.Errorf("set read timeout on %s: %w", s.dev, err)
	}
	s.port = p
	return nil
}

// Close closes the underlying serial connection.
func (s *SerialDevice) Close() error {
	if s.port == nil {
		return nil
	}
	err := s.port.Close()
	s.port = nil
	return err
}

// Write sends raw bytes.
func (s *SerialDevice) Write(b []byte) (int, error) {
	if s.port == nil {
		return 0, ErrNotOpen
	}
	return s.port.Write(b)
}

// Stream delivers every received byte to onByte from a background goroutine,
// one call per byte like a receive interrupt. The returned function stops the
// stream and waits for it to exit.
func (s *SerialDevice) Stream(onByte func(byte)) (func(), error) {
	if s.port == nil {
		return nil, ErrNotOpen
	}

	port := s.port
	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		buf := make([]byte, 32)
		for {
			select {
			case <-stop:
				return
			default:
			}

			n, err := port.Read(buf)
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				time.Sleep(100 * time.Millisecond)
				continue
			}
			if n == 0 {
				time.Sleep(time.Millisecond)
				continue
			}
			for _, b := range buf[:n] {
				onByte(b)
			}
		}
	}()
	return func() {
		close(stop)
		<-done
	}, nil
}
