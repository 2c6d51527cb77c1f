package timer

import (
	"time"

	"github.com/SelvamKrishna/warp"
	"github.com/SelvamKrishna/warp/ansi"
)

const timerTagText = "[TIMER]"

// Option customizes a Timer, Hierarchy, Measure, or Benchmark.
type Option func(*config)

type config struct {
	unit Unit
	sink *warp.Sink
}

// WithUnit sets the display unit. Milliseconds by default.
func WithUnit(u Unit) Option {
	return func(c *config) {
		c.unit = u
	}
}

// WithSink routes reports through sink instead of the default one. Tests use
// this to capture output in memory.
func WithSink(s *warp.Sink) Option {
	return func(c *config) {
		c.sink = s
	}
}

func resolve(opts []Option) config {
	cfg := config{unit: Milliseconds}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.sink == nil {
		cfg.sink = warp.DefaultSink()
	}
	return cfg
}

func timerLogger(sink *warp.Sink) *warp.Logger {
	factory := warp.NewTagFactory(sink.ColorEnabled())
	return warp.NewWithSink(sink, factory.Colored(ansi.Snapshot().Timer, timerTagText))
}

// Timer measures elapsed wall-clock time between a start point and a stop
// point, converts it to a configured unit, and reports it through the warp
// logger on completion.
//
// A Timer is owned by its creator and is not safe for concurrent use by
// multiple goroutines; give each measured scope its own instance.
type Timer struct {
	desc    string
	unit    Unit
	log     *warp.Logger
	start   time.Time
	running bool
}

// New returns a running Timer. Defer Done to guarantee exactly one report on
// every exit path:
//
//	t := timer.New("load index")
//	defer t.Done()
func New(desc string, opts ...Option) *Timer {
	cfg := resolve(opts)
	return &Timer{
		desc:    desc,
		unit:    cfg.unit,
		log:     timerLogger(cfg.sink),
		start:   time.Now(),
		running: true,
	}
}

// Start begins (or restarts) the measurement.
func (t *Timer) Start() {
	t.running = true
	t.start = time.Now()
}

// Reset restarts the measurement, discarding any elapsed time.
func (t *Timer) Reset() {
	t.Start()
}

// Elapsed returns the time since the last Start converted to the timer's
// unit, without stopping it.
func (t *Timer) Elapsed() float64 {
	return Convert(millisecondsSince(t.start), Milliseconds, t.unit)
}

// Stop ends the measurement, reports the elapsed time, and returns it in the
// timer's unit. Stopping a stopped timer is non-fatal: it warns and returns
// zero rather than reporting a garbage value.
func (t *Timer) Stop() float64 {
	if !t.running {
		t.log.Warn("stop on a stopped timer: %s", t.desc)
		return 0
	}
	elapsed := t.Elapsed()
	t.running = false
	t.start = time.Now()
	t.report(elapsed)
	return elapsed
}

// Done stops and reports the timer if it is still running, silently doing
// nothing otherwise. It is meant to be deferred.
func (t *Timer) Done() {
	if t.running {
		t.Stop()
	}
}

// Running reports whether the timer is measuring.
func (t *Timer) Running() bool {
	return t.running
}

func (t *Timer) report(elapsed float64) {
	colorize := t.log.Sink().ColorEnabled()
	t.log.Msg("%s : %s", elapsedTag(elapsed, t.unit, colorize), t.desc)
}

// Measure times exactly one invocation of fn, reports it, and returns the
// elapsed value in the configured unit.
func Measure(desc string, fn func(), opts ...Option) float64 {
	cfg := resolve(opts)
	elapsed := Convert(measureMS(fn), Milliseconds, cfg.unit)
	log := timerLogger(cfg.sink)
	log.Msg("%s : %s", elapsedTag(elapsed, cfg.unit, cfg.sink.ColorEnabled()), desc)
	return elapsed
}

// measureMS times one invocation of fn in the base unit.
func measureMS(fn func()) float64 {
	start := time.Now()
	fn()
	return millisecondsSince(start)
}

func millisecondsSince(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}
