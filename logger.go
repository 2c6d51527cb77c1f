package warp

import (
	"bytes"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Logger holds a composed context of one or more tags, pre-joined once at
// construction, and exposes leveled logging calls that format a message and
// hand it to a Sink.
//
// A Logger is safe for concurrent use: the only shared mutable state is the
// sink's lock and its destination streams.
type Logger struct {
	sink *Sink
	ctx  string
}

// New returns a Logger writing through the default sink.
func New(tags ...Tag) *Logger {
	return NewWithSink(DefaultSink(), tags...)
}

// NewWithSink returns a Logger writing through sink. Tags are joined into the
// logger's immutable context string here, amortizing concatenation cost
// across all subsequent calls.
func NewWithSink(sink *Sink, tags ...Tag) *Logger {
	return &Logger{sink: sink, ctx: JoinTags(tags, "")}
}

// Noop returns a Logger that discards everything.
func Noop() *Logger {
	return &Logger{}
}

// Context returns the logger's pre-joined tag context.
func (l *Logger) Context() string {
	return l.ctx
}

// Sink returns the sink this logger writes through, nil for a Noop logger.
func (l *Logger) Sink() *Sink {
	return l.sink
}

// Msg logs without a level tag.
func (l *Logger) Msg(format string, args ...any) {
	l.emit(MessageLevel, "", "", format, args)
}

// Info logs at InfoLevel.
func (l *Logger) Info(format string, args ...any) {
	l.emit(InfoLevel, "", "", format, args)
}

// Warn logs at WarnLevel.
func (l *Logger) Warn(format string, args ...any) {
	l.emit(WarnLevel, "", "", format, args)
}

// Err logs at ErrorLevel.
func (l *Logger) Err(format string, args ...any) {
	l.emit(ErrorLevel, "", "", format, args)
}

// Dbg logs at DebugLevel. Under the warp_release build tag the call body is
// eliminated; use DbgLazy when building the message itself is expensive.
func (l *Logger) Dbg(format string, args ...any) {
	if !debugEnabled {
		return
	}
	l.emit(DebugLevel, "", "", format, args)
}

// DbgLazy logs the result of fn at DebugLevel. Under the warp_release build
// tag fn is never invoked.
func (l *Logger) DbgLazy(fn func() string) {
	if !debugEnabled || fn == nil {
		return
	}
	l.emit(DebugLevel, "", "", fn(), nil)
}

// Break emits a bare separator line.
func (l *Logger) Break() {
	if l.sink == nil {
		return
	}
	l.sink.Break()
}

// emit is the shared path: format into the pooled scratch buffer, compose the
// line, commit it. Formatting failures never propagate: panics are recovered,
// and fmt's mismatch artifacts ("%!d(string=...)" and friends) are converted
// into a best-effort error line instead of the requested message.
func (l *Logger) emit(level Level, indent, prefix, format string, args []any) {
	s := l.sink
	if s == nil {
		return
	}
	b := acquireLineBuffer()
	defer releaseLineBuffer(b)

	if len(args) == 0 {
		b.line = composeLine(b.line, level, indent, prefix, l.ctx, format, s.color)
		s.commit(level, b.line)
		return
	}

	var ok bool
	b.scratch, ok = appendFormat(b.scratch, format, args)
	if !ok || hasFormatArtifact(b.scratch) {
		b.line = composeLine(b.line, ErrorLevel, indent, prefix, l.ctx,
			"log formatting failed for "+strconv.Quote(format), s.color)
		s.commit(ErrorLevel, b.line)
		return
	}
	b.line = composeLine(b.line, level, indent, prefix, l.ctx, b.scratch, s.color)
	s.commit(level, b.line)
}

// formatErrMark prefixes every fmt formatting-error artifact.
var formatErrMark = []byte("%!")

// hasFormatArtifact reports whether rendered output contains one of fmt's
// mismatch artifacts. Artifacts always have the shape "%!(" or "%!<verb>(",
// as in "%!d(string=x)" or "%!(EXTRA int=1)", so a literal "%!" arriving via
// an argument value or an escaped percent passes through untouched.
func hasFormatArtifact(s []byte) bool {
	for {
		i := bytes.Index(s, formatErrMark)
		if i < 0 {
			return false
		}
		rest := s[i+2:]
		if len(rest) > 0 {
			if rest[0] == '(' {
				return true
			}
			_, size := utf8.DecodeRune(rest)
			if len(rest) > size && rest[size] == '(' {
				return true
			}
		}
		s = rest
	}
}

func appendFormat(dst []byte, format string, args []any) (out []byte, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			out, ok = dst, false
		}
	}()
	return fmt.Appendf(dst, format, args...), true
}
