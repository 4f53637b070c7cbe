// Package sim models the vehicle, its infrared sensors and the beacon on a
// plane so the controller can run on a host without hardware.
package sim

import (
	"fmt"
	"math"
	"sync"

	"BeaconNav/internal/device"
	"BeaconNav/internal/model"
	"BeaconNav/internal/payload"
)

// Sensor model constants. Intensities are in capture counter units.
const (
	staleReading = 30000
	baseReading  = 46000
	peakGain     = 6000
	jitter       = 25
)

// World is a differential drive vehicle and a beacon carrying an RFID card.
// It implements device.DutyWriter, device.DirectionWriter and device.Sensor.
// The vehicle starts at the origin heading along +x.
type World struct {
	MaxSpeed     float64 // m/s at full power
	TrackWidth   float64 // m between wheels
	SensorOffset float64 // rad, each sensor axis off the heading
	FieldOfView  float64 // rad, half-angle of a sensor cone

	mu      sync.Mutex
	motors  model.MotorConfig
	beaconX float64
	beaconY float64
	radius  float64
	x, y    float64
	heading float64
	dir     map[int]model.Direction
	duty    map[int]int
	reads   map[model.SensorID]int
	frame   []byte
	emitted bool
	onByte  func(byte)
}

// NewWorld places the beacon from cfg and encodes its card. onByte receives
// the card frame once the vehicle reaches the capture radius.
func NewWorld(cfg model.SimulationConfig, motors model.MotorConfig, onByte func(byte)) (*World, error) {
	frame, err := payload.EncodeID(cfg.CardID)
	if err != nil {
		return nil, fmt.Errorf("encode card: %w", err)
	}
	return &World{
		MaxSpeed:     0.5,
		TrackWidth:   0.15,
		SensorOffset: 20 * math.Pi / 180,
		FieldOfView:  45 * math.Pi / 180,
		motors:       motors,
		beaconX:      cfg.BeaconX,
		beaconY:      cfg.BeaconY,
		radius:       cfg.CaptureRadius,
		dir:          map[int]model.Direction{},
		duty:         map[int]int{},
		reads:        map[model.SensorID]int{},
		frame:        frame,
		onByte:       onByte,
	}, nil
}

// SetDirection records the direction line of a channel.
func (w *World) SetDirection(channel int, dir model.Direction) {
	w.mu.Lock()
	w.dir[channel] = dir
	w.mu.Unlock()
}

// SetDuty records the duty of a channel.
func (w *World) SetDuty(channel int, value int) {
	w.mu.Lock()
	w.duty[channel] = value
	w.mu.Unlock()
}

// speed decodes the wheel speed of a channel in m/s, negative in reverse.
func (w *World) speed(channel int) float64 {
	period := w.motors.Period
	if period <= 0 {
		return 0
	}
	d := w.duty[channel]
	if w.dir[channel] == model.Reverse {
		return -float64(period-d) / float64(period) * w.MaxSpeed
	}
	return float64(d) / float64(period) * w.MaxSpeed
}

// Step integrates the motion over ms milliseconds.
func (w *World) Step(ms int) {
	w.mu.Lock()
	dt := float64(ms) / 1000
	vl := w.speed(w.motors.LeftChannel)
	vr := w.speed(w.motors.RightChannel)
	v := (vl + vr) / 2
	w.heading += (vr - vl) / w.TrackWidth * dt
	w.x += v * math.Cos(w.heading) * dt
	w.y += v * math.Sin(w.heading) * dt

	var emit []byte
	if !w.emitted && w.distance() <= w.radius {
		w.emitted = true
		emit = w.frame
	}
	onByte := w.onByte
	w.mu.Unlock()

	if onByte != nil {
		for _, b := range emit {
			onByte(b)
		}
	}
}

func (w *World) distance() float64 {
	return math.Hypot(w.beaconX-w.x, w.beaconY-w.y)
}

// RawReading returns the capture counter of a sensor. Inside the sensor
// cone the value rises as the beacon gets closer to the sensor axis and
// alternates slightly between pulses; outside it the counter is frozen.
func (w *World) RawReading(id model.SensorID) uint16 {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.reads[id]++

	axis := w.heading + w.SensorOffset
	if id == model.SensorRight {
		axis = w.heading - w.SensorOffset
	}
	bearing := math.Atan2(w.beaconY-w.y, w.beaconX-w.x)
	off := math.Abs(math.Remainder(bearing-axis, 2*math.Pi))
	if off > w.FieldOfView {
		return staleReading
	}

	strength := math.Cos(off*math.Pi/2/w.FieldOfView) / (1 + 0.2*w.distance())
	v := baseReading + peakGain*strength
	if w.reads[id]%2 == 0 {
		v += jitter
	} else {
		v -= jitter
	}
	return uint16(math.Min(v, math.MaxUint16))
}

// Pose returns the vehicle position and heading.
func (w *World) Pose() (x, y, heading float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.x, w.y, w.heading
}

// Emitted reports whether the card frame has been sent.
func (w *World) Emitted() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.emitted
}

// Clock advances the world by every sleep before delegating to Inner.
type Clock struct {
	World *World
	Inner device.Clock
}

// SleepMs steps the world by n ms and waits on the inner clock.
func (c Clock) SleepMs(n int) {
	c.World.Step(n)
	if c.Inner != nil {
		c.Inner.SleepMs(n)
	}
}
