package core

import (
	"context"

	"BeaconNav/internal/device"
	"BeaconNav/internal/filter"
	"BeaconNav/internal/model"
	"BeaconNav/internal/nav"
	"BeaconNav/internal/payload"
	"BeaconNav/internal/util"
)

const (
	bannerMs = 500
	pollMs   = 200
)

// Devices groups the collaborators the coordinator drives.
type Devices struct {
	Display device.Display
	Clock   device.Clock
	Sensor  device.Sensor
	Drive   nav.Maneuverer
}

// Coordinator is the control loop. It alternates between standby, showing
// live sensor readings, and run cycles that seek the beacon, wait for a
// card read, drive back and report the checksum result.
//
// Maneuvers block; the mode flag and ctx are only observed between them.
type Coordinator struct {
	cfg     *model.Config
	signals *Signals
	capture *payload.Capture
	dev     Devices
	filter  *filter.Filter
	nav     *nav.Context
}

// NewCoordinator wires a coordinator to its shared state and devices.
func NewCoordinator(cfg *model.Config, signals *Signals, capture *payload.Capture, dev Devices) *Coordinator {
	return &Coordinator{
		cfg:     cfg,
		signals: signals,
		capture: capture,
		dev:     dev,
		filter:  filter.New(dev.Sensor, dev.Clock, cfg.Sensors),
		nav:     nav.NewContext(cfg.Navigation),
	}
}

// Run loops until ctx is done. The motors are stopped on return.
func (c *Coordinator) Run(ctx context.Context) {
	util.Info("[coordinator] started")
	for ctx.Err() == nil {
		c.standby(ctx)
		if ctx.Err() != nil {
			break
		}
		c.runCycle(ctx)
	}
	c.dev.Drive.Stop()
	util.Info("[coordinator] stopped")
}

func (c *Coordinator) active(ctx context.Context) bool {
	return c.signals.Running() && ctx.Err() == nil
}

func (c *Coordinator) standby(ctx context.Context) {
	c.capture.Reset()
	c.nav.Reset()
	c.dev.Drive.Stop()
	util.Info("[coordinator] standby")

	c.screen("S", "")
	c.dev.Clock.SleepMs(bannerMs)
	for !c.signals.Running() && ctx.Err() == nil {
		l := c.filter.Reading(model.SensorLeft)
		r := c.filter.Reading(model.SensorRight)
		c.line(2, util.Readings(l, r))
		c.dev.Clock.SleepMs(pollMs)
	}
}

func (c *Coordinator) runCycle(ctx context.Context) {
	navCfg := c.cfg.Navigation
	util.Info("[coordinator] run")

	c.screen("R", "")
	c.dev.Clock.SleepMs(bannerMs)
	c.capture.Reset()
	c.nav.Reset()
	c.signals.ResetElapsed()

	for !c.capture.Ready() && c.active(ctx) {
		c.screen("1", "")
		device.SleepSeconds(c.dev.Clock, 1)

		for c.nav.FindingDirection && !c.capture.Ready() && c.active(ctx) {
			l := c.filter.Reading(model.SensorLeft)
			r := c.filter.Reading(model.SensorRight)
			c.nav.Observe(l, r)
			c.screen("1a|"+nav.Classify(c.nav).Label(), util.Readings(l, r))
			nav.Orient(c.nav, c.dev.Drive, c.dev.Clock, navCfg)
			c.dev.Clock.SleepMs(navCfg.OrientDelayMs)
		}
		if !c.nav.FindingDirection {
			util.Info("[coordinator] beacon centered after %d ms", c.signals.Elapsed())
		}

		full := false
		for !c.capture.Ready() && c.active(ctx) {
			l := c.dev.Sensor.RawReading(model.SensorLeft)
			r := c.dev.Sensor.RawReading(model.SensorRight)
			c.nav.Observe(l, r)
			c.screen("1b|"+util.Digits5(c.nav.I), util.Readings(l, r))
			nav.Steer(c.nav, c.dev.Drive)
			c.dev.Clock.SleepMs(navCfg.StepMs)
			c.nav.Advance()
			if c.nav.Full() && !full {
				full = true
				util.Warn("[coordinator] action log full, further steps are not recorded")
			}
		}
	}

	c.dev.Drive.Stop()
	if !c.capture.Ready() {
		util.Info("[coordinator] run interrupted after %d ms", c.signals.Elapsed())
		return
	}
	util.Info("[coordinator] card read after %d ms, %d steps logged", c.signals.Elapsed(), c.nav.I)

	c.dev.Clock.SleepMs(bannerMs)
	c.screen("2", "")
	c.signals.ResetElapsed()
	done := nav.Retrace(c.nav, c.dev.Drive, c.dev.Clock, navCfg, func(idx int, a model.Action) bool {
		c.line(1, "2a|"+util.Digits5(idx)+a.Label())
		return c.active(ctx)
	})
	if !done {
		util.Info("[coordinator] return interrupted after %d ms", c.signals.Elapsed())
		return
	}
	util.Info("[coordinator] returned in %d ms", c.signals.Elapsed())

	c.screen("2b", "")
	device.SleepSeconds(c.dev.Clock, 1)

	f := c.capture.Frame()
	payload.Strip(&f)
	res := payload.Validate(f)
	if res.Valid {
		util.Info("[coordinator] checksum valid, card %s", res.ID)
		c.screen("CHECKSUM VALID", res.ID)
	} else {
		util.Warn("[coordinator] checksum invalid: computed 0x%02x received 0x%02x", res.Computed, res.Received)
		c.screen("CHECKSUM INVALID", "")
	}

	for c.active(ctx) {
		c.dev.Clock.SleepMs(pollMs)
	}
}

// line rewrites one display line. There is no clear command, so the text
// is padded over the old content.
func (c *Coordinator) line(n int, text string) {
	c.dev.Display.SetCursorLine(n)
	c.dev.Display.WriteText(util.PadLine(text))
}

func (c *Coordinator) screen(l1, l2 string) {
	c.line(1, l1)
	c.line(2, l2)
}
