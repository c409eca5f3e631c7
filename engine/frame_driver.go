package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/lane-racer/event"
	"github.com/lixenwraith/lane-racer/input"
	"github.com/lixenwraith/lane-racer/parameter"
)

// Frame is what presenters receive after each tick or control change
type Frame struct {
	Snapshot Snapshot
	Events   []event.GameEvent
	Paused   bool
}

// Presenter consumes frames; it must not mutate the session
type Presenter interface {
	Present(Frame)
}

// Resizer is implemented by presenters that track the terminal size
type Resizer interface {
	Resize(width, height int)
}

// DriverOption configures a FrameDriver
type DriverOption func(*FrameDriver)

// WithInterval sets the frame cadence
func WithInterval(d time.Duration) DriverOption {
	return func(fd *FrameDriver) {
		if d >= parameter.MinFrameInterval {
			fd.interval = d
		}
	}
}

// WithLogger sets the driver logger
func WithLogger(l zerolog.Logger) DriverOption {
	return func(fd *FrameDriver) {
		fd.logger = l
	}
}

// WithClock replaces the clock used for input release timing
func WithClock(c TimeProvider) DriverOption {
	return func(fd *FrameDriver) {
		fd.clock = c
	}
}

// WithMeterProvider sets the provider for driver instruments; defaults to the global one
func WithMeterProvider(mp metric.MeterProvider) DriverOption {
	return func(fd *FrameDriver) {
		fd.meterProvider = mp
	}
}

// WithPresenter registers a presenter; frames are delivered in registration order
func WithPresenter(p Presenter) DriverOption {
	return func(fd *FrameDriver) {
		fd.presenters = append(fd.presenters, p)
	}
}

// FrameDriver runs the session at a fixed frame cadence
// Input and ticks are serialized on the goroutine calling Run, so input only
// mutates the session between ticks. Start and Stop are idempotent and the
// driver can be restarted after a stop
type FrameDriver struct {
	session    *Session
	mapper     *input.Mapper
	clock      TimeProvider
	interval   time.Duration
	presenters []Presenter
	logger     zerolog.Logger
	metrics    *driverMetrics

	meterProvider metric.MeterProvider

	// Owned by the Run goroutine
	ticker *time.Ticker
	paused bool

	running atomic.Bool
}

// NewFrameDriver wires a session to its input mapper and presenters
func NewFrameDriver(session *Session, mapper *input.Mapper, opts ...DriverOption) (*FrameDriver, error) {
	fd := &FrameDriver{
		session:       session,
		mapper:        mapper,
		clock:         NewMonotonicTimeProvider(),
		interval:      parameter.FrameInterval,
		logger:        zerolog.Nop(),
		meterProvider: otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(fd)
	}

	metrics, err := newDriverMetrics(fd.meterProvider)
	if err != nil {
		return nil, err
	}
	fd.metrics = metrics
	return fd, nil
}

// Start begins ticking; no-op when already running
func (fd *FrameDriver) Start() {
	if fd.running.CompareAndSwap(false, true) {
		fd.ticker = time.NewTicker(fd.interval)
		fd.logger.Debug().Dur("interval", fd.interval).Msg("frame driver started")
	}
}

// Stop halts ticking; no-op when already stopped
func (fd *FrameDriver) Stop() {
	if fd.running.CompareAndSwap(true, false) {
		if fd.ticker != nil {
			fd.ticker.Stop()
			fd.ticker = nil
		}
		fd.logger.Debug().Uint64("tick", fd.session.Ticks()).Msg("frame driver stopped")
	}
}

// Running reports whether frames are being ticked
func (fd *FrameDriver) Running() bool {
	return fd.running.Load()
}

// Paused reports whether the player paused the run
func (fd *FrameDriver) Paused() bool {
	return fd.paused
}

// Step runs one frame: input release detection, one tick, then presentation
// Stops the driver when the tick ends the session
func (fd *FrameDriver) Step() {
	if intent, ok := fd.mapper.Expire(fd.clock.Now()); ok && intent == input.IntentAccelerateRelease {
		fd.session.Decelerate()
	}

	wasOver := fd.session.IsOver()
	fd.session.Tick()
	if !wasOver {
		fd.metrics.recordTick(context.Background())
	}

	fd.publish()

	if fd.session.IsOver() {
		fd.Stop()
	}
}

// HandleKey applies one key press; returns false when the player quits
func (fd *FrameDriver) HandleKey(p input.Press) bool {
	intent := fd.mapper.Press(p, fd.clock.Now())

	switch intent {
	case input.IntentQuit:
		fd.logger.Info().Int64("score", fd.session.Score()).Msg("quit requested")
		return false

	case input.IntentRestart:
		fd.Restart()

	case input.IntentPause:
		fd.TogglePause()

	case input.IntentAccelerate, input.IntentSteerLeft, input.IntentSteerRight:
		if fd.paused {
			return true
		}
		switch intent {
		case input.IntentAccelerate:
			fd.session.Accelerate()
		case input.IntentSteerLeft:
			fd.session.SteerLeft()
		case input.IntentSteerRight:
			fd.session.SteerRight()
		}
	}

	return true
}

// Restart resets the session and resumes ticking
func (fd *FrameDriver) Restart() {
	fd.session.Reset()
	fd.mapper.Reset()
	fd.paused = false
	fd.logger.Debug().Msg("session reset")
	fd.Start()
	fd.publish()
}

// TogglePause stops or resumes ticking; ignored once the session is over
func (fd *FrameDriver) TogglePause() {
	if fd.session.IsOver() {
		return
	}
	if fd.paused {
		fd.paused = false
		fd.Start()
		fd.logger.Debug().Msg("resumed")
	} else {
		fd.paused = true
		fd.Stop()
		fd.logger.Debug().Msg("paused")
	}
	fd.publish()
}

// Run drives frames and input until ctx is done, the event channel closes or
// the player quits. Quitting and a closed channel return nil
func (fd *FrameDriver) Run(ctx context.Context, events <-chan tcell.Event) error {
	fd.Start()
	defer fd.Stop()

	fd.publish()

	for {
		var tick <-chan time.Time
		if fd.ticker != nil {
			tick = fd.ticker.C
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !fd.handleEvent(ev) {
				return nil
			}

		case <-tick:
			fd.Step()
		}
	}
}

func (fd *FrameDriver) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return fd.HandleKey(input.FromEvent(ev))

	case *tcell.EventResize:
		w, h := ev.Size()
		for _, p := range fd.presenters {
			if r, ok := p.(Resizer); ok {
				r.Resize(w, h)
			}
		}
		fd.publish()
	}
	return true
}

// publish drains the session's events and hands the frame to every presenter
func (fd *FrameDriver) publish() {
	events := fd.session.DrainEvents()
	fd.metrics.recordEvents(context.Background(), events)

	for _, ev := range events {
		switch ev.Type {
		case event.EventGameOver:
			fd.logger.Info().
				Int64("score", ev.Score).
				Uint64("tick", fd.session.Ticks()).
				Msg("game over")
		case event.EventCollision:
			fd.logger.Debug().
				Uint64("obstacle", ev.ObstacleID).
				Float64("lane", ev.Lane).
				Float64("depth", ev.Depth).
				Msg("collision")
		}
	}

	frame := Frame{
		Snapshot: fd.session.Snapshot(),
		Events:   events,
		Paused:   fd.paused,
	}
	for _, p := range fd.presenters {
		p.Present(frame)
	}
}
