package warp

import (
	"time"

	"github.com/SelvamKrishna/warp/ansi"
)

// TimedLogger is a Logger that prepends a cached, color-wrapped [HH:MM:SS]
// tag to every line. The tag is recomputed only when more than the refresh
// interval has elapsed since the last refresh, trading timestamp precision
// for reduced formatting cost on high-frequency logging paths.
type TimedLogger struct {
	inner Logger
	cache *stampCache
}

// TimedOption customizes a TimedLogger.
type TimedOption func(*timedConfig)

type timedConfig struct {
	color    ansi.Fore
	interval time.Duration
}

// WithStampColor sets the timestamp tag color. White by default.
func WithStampColor(fg ansi.Fore) TimedOption {
	return func(c *timedConfig) {
		c.color = fg
	}
}

// WithStampInterval sets how long the cached timestamp stays valid.
func WithStampInterval(d time.Duration) TimedOption {
	return func(c *timedConfig) {
		c.interval = d
	}
}

// NewTimed returns a TimedLogger writing through the default sink.
func NewTimed(tags ...Tag) *TimedLogger {
	return NewTimedWithSink(DefaultSink(), tags)
}

// NewTimedWithSink returns a TimedLogger writing through sink.
func NewTimedWithSink(sink *Sink, tags []Tag, opts ...TimedOption) *TimedLogger {
	cfg := timedConfig{color: ansi.White, interval: StampIntervalFromEnv()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	colorize := sink != nil && sink.ColorEnabled()
	return &TimedLogger{
		inner: Logger{sink: sink, ctx: JoinTags(tags, "")},
		cache: newStampCache(cfg.color, cfg.interval, colorize),
	}
}

// Sink returns the sink this logger writes through.
func (l *TimedLogger) Sink() *Sink {
	return l.inner.sink
}

// RefreshTimestamp drops the cached timestamp so the next line reformats it.
func (l *TimedLogger) RefreshTimestamp() {
	l.cache.invalidate()
}

// Msg logs without a level tag.
func (l *TimedLogger) Msg(format string, args ...any) {
	l.inner.emit(MessageLevel, "", l.cache.tag(time.Now()), format, args)
}

// Info logs at InfoLevel.
func (l *TimedLogger) Info(format string, args ...any) {
	l.inner.emit(InfoLevel, "", l.cache.tag(time.Now()), format, args)
}

// Warn logs at WarnLevel.
func (l *TimedLogger) Warn(format string, args ...any) {
	l.inner.emit(WarnLevel, "", l.cache.tag(time.Now()), format, args)
}

// Err logs at ErrorLevel.
func (l *TimedLogger) Err(format string, args ...any) {
	l.inner.emit(ErrorLevel, "", l.cache.tag(time.Now()), format, args)
}

// Dbg logs at DebugLevel; a no-op under the warp_release build tag.
func (l *TimedLogger) Dbg(format string, args ...any) {
	if !debugEnabled {
		return
	}
	l.inner.emit(DebugLevel, "", l.cache.tag(time.Now()), format, args)
}

// DbgLazy logs the result of fn at DebugLevel; under the warp_release build
// tag fn is never invoked.
func (l *TimedLogger) DbgLazy(fn func() string) {
	if !debugEnabled || fn == nil {
		return
	}
	l.inner.emit(DebugLevel, "", l.cache.tag(time.Now()), fn(), nil)
}
