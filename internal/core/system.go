//go:build !tinygo

package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	"BeaconNav/internal/device"
	"BeaconNav/internal/model"
	"BeaconNav/internal/motor"
	"BeaconNav/internal/payload"
	"BeaconNav/internal/sim"
	"BeaconNav/internal/util"
)

// System manages the lifecycle of the controller. It loads configuration
// from a YAML file, builds the devices and runs the interrupt goroutines
// and the coordinator loop.
type System struct {
	cfgPath string
	cfg     *model.Config

	Signals *Signals
	Capture *payload.Capture
	Monitor *Monitor
	World   *sim.World
	PWM     *device.LogPWM

	feed    chan byte
	closers []func()
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	started   bool
	startLock sync.Mutex
}

// NewSystem reads the YAML configuration at cfgPath and constructs the
// components that do not touch any device yet.
func NewSystem(cfgPath string) (*System, error) {
	cfg, err := model.LoadConfig(cfgPath)
	if err != nil {
		return nil, err
	}
	if !cfg.Simulation.Enabled {
		return nil, ErrNoSensor
	}

	s := &System{
		cfgPath: cfgPath,
		cfg:     cfg,
		Signals: NewSignals(buttonLockoutMs),
		Capture: &payload.Capture{},
		PWM:     device.NewLogPWM(),
		feed:    make(chan byte, 256),
	}
	s.PWM.Verbose = cfg.Global.Verbose
	if cfg.Monitor.Addr != "" {
		s.Monitor = NewMonitor(cfg.Monitor.Addr, s.Signals.OnButton)
	}
	return s, nil
}

// Config returns the loaded configuration.
func (s *System) Config() *model.Config {
	return s.cfg
}

// StartAll opens the devices and starts the tick, byte and control
// goroutines.
func (s *System) StartAll() error {
	s.startLock.Lock()
	defer s.startLock.Unlock()
	if s.started {
		return ErrAlreadyStarted
	}

	if err := s.startDevices(); err != nil {
		s.closeAll()
		return err
	}

	display := s.buildDisplay()
	if s.Monitor != nil {
		go s.Monitor.Start()
		s.closers = append(s.closers, s.Monitor.Stop)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	clock := sim.Clock{World: s.World, Inner: device.SystemClock{}}
	s.PWM.Sink = s.World
	coord := NewCoordinator(s.cfg, s.Signals, s.Capture, Devices{
		Display: display,
		Clock:   clock,
		Sensor:  s.World,
		Drive:   motor.NewDrive(s.PWM, clock, s.cfg.Motors),
	})

	s.wg.Add(3)
	go func() {
		defer s.wg.Done()
		s.runTicks(ctx)
	}()
	go func() {
		defer s.wg.Done()
		s.runBytes(ctx)
	}()
	go func() {
		defer s.wg.Done()
		coord.Run(ctx)
	}()

	s.started = true
	util.Info("[system] started with %s", s.cfgPath)
	return nil
}

// startDevices creates the simulated world and opens the RFID line. With a
// virtual serial link the world's card is written to one end of a socat
// pair and read back from the other like a real reader.
func (s *System) startDevices() error {
	simCfg := s.cfg.Simulation
	emit := s.push

	if simCfg.VirtualSerial {
		socat := util.NewSocatManager()
		s.closers = append(s.closers, socat.Cleanup)
		if err := socat.CreatePair(s.cfg.Payload.Device, simCfg.CardDevice); err != nil {
			return err
		}
		if err := socat.WaitReady(2 * time.Second); err != nil {
			return err
		}
		card, err := device.NewSerialDevice(simCfg.CardDevice, s.cfg.Payload.Baud)
		if err != nil {
			return err
		}
		s.closeWith(card)
		emit = func(b byte) {
			if _, err := card.Write([]byte{b}); err != nil {
				util.Warn("[sim] card write failed: %v", err)
			}
		}
	}

	world, err := sim.NewWorld(simCfg, s.cfg.Motors, emit)
	if err != nil {
		return err
	}
	s.World = world

	if s.cfg.Payload.Device != "" {
		reader, err := device.NewSerialDevice(s.cfg.Payload.Device, s.cfg.Payload.Baud)
		if err != nil {
			return err
		}
		s.closeWith(reader)
		stop, err := reader.Stream(s.push)
		if err != nil {
			return fmt.Errorf("stream %s: %w", s.cfg.Payload.Device, err)
		}
		s.closers = append(s.closers, stop)
		util.Info("[system] reading cards from %s", s.cfg.Payload.Device)
	}
	return nil
}

func (s *System) buildDisplay() device.Display {
	var displays []device.Display
	if s.cfg.Display.Device != "" {
		port, err := device.NewSerialDevice(s.cfg.Display.Device, s.cfg.Display.Baud)
		if err != nil {
			util.Warn("[system] serial LCD disabled: %v", err)
		} else {
			s.closeWith(port)
			displays = append(displays, device.NewSerialLCD(port))
		}
	}
	if s.cfg.Display.Console {
		displays = append(displays, device.NewConsoleDisplay())
	}
	if s.Monitor != nil {
		displays = append(displays, s.Monitor)
	}
	return device.MultiDisplay(displays...)
}

// push hands a received byte to the byte interrupt goroutine. A full queue
// drops the byte like a UART overrun.
func (s *System) push(b byte) {
	select {
	case s.feed <- b:
	default:
		util.Warn("[system] byte queue full, dropped 0x%02x", b)
	}
}

// runBytes is the byte interrupt: the only caller of Capture.OnByte.
func (s *System) runBytes(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case b := <-s.feed:
			s.Capture.OnByte(b)
		}
	}
}

// runTicks is the timer interrupt.
func (s *System) runTicks(ctx context.Context) {
	period := time.Duration(s.cfg.Global.TickMs) * time.Millisecond
	t := time.NewTicker(period)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Signals.Tick(uint32(s.cfg.Global.TickMs))
		}
	}
}

func (s *System) closeWith(d *device.SerialDevice) {
	s.closers = append(s.closers, func() {
		if err := d.Close(); err != nil {
			util.Warn("[system] close serial: %v", err)
		}
	})
}

// closeAll runs closers in reverse order of registration.
func (s *System) closeAll() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}

// StopAll stops the control loop, waits for the goroutines and releases
// every device.
func (s *System) StopAll() {
	s.startLock.Lock()
	defer s.startLock.Unlock()
	if !s.started {
		return
	}
	s.cancel()
	s.wg.Wait()
	s.closeAll()
	s.started = false
	util.Info("[system] stopped")
}
