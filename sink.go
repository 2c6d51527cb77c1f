package warp

import (
	"io"
	"os"
	"sync"

	"github.com/SelvamKrishna/warp/ansi"
)

// Options controls how a Sink renders output.
type Options struct {
	// NoColor forces color escape codes off regardless of terminal detection.
	NoColor bool

	// ForceColor bypasses terminal detection and emits color even when the
	// destination is not a TTY. Useful for tests and forced-color logs.
	ForceColor bool
}

// Sink is the single serialization point for all output. It owns one mutex
// guarding both destination streams; a single Write call is atomic with
// respect to other Write calls, so two lines never interleave their bytes.
//
// Info, Debug, and Message levels route to the ordinary stream; Warn and
// Error route to the diagnostic stream.
type Sink struct {
	mu    sync.Mutex
	out   io.Writer
	diag  io.Writer
	color bool
}

type flusher interface {
	Flush() error
}

// NewSink builds a sink writing ordinary output to out and diagnostic output
// to diag. Color is enabled when forced, or when out is a terminal and color
// is not disabled.
func NewSink(out, diag io.Writer, opts Options) *Sink {
	if out == nil {
		out = io.Discard
	}
	if diag == nil {
		diag = io.Discard
	}
	return &Sink{
		out:   out,
		diag:  diag,
		color: !opts.NoColor && (opts.ForceColor || isTerminal(out)),
	}
}

var defaultSink = sync.OnceValue(func() *Sink {
	return NewSink(os.Stdout, os.Stderr, FromEnv())
})

// DefaultSink returns the process-wide sink writing to stdout and stderr,
// honoring the WARP_* environment variables on first use.
func DefaultSink() *Sink {
	return defaultSink()
}

// ColorEnabled reports whether the sink emits ANSI color sequences.
func (s *Sink) ColorEnabled() bool {
	return s.color
}

// Write formats one line into a pooled buffer and writes it to the stream
// selected by level as a single write call. It never panics and reports no
// error; write failures on the underlying stream are dropped.
//
// The line layout is context, a color-wrapped level tag for leveled entries,
// and the message, joined by " : " and terminated by a newline.
func (s *Sink) Write(level Level, context, message string) {
	b := acquireLineBuffer()
	b.line = composeLine(b.line, level, "", "", context, message, s.color)
	s.commit(level, b.line)
	releaseLineBuffer(b)
}

// BreakLine is the separator emitted by Break.
const BreakLine = "---"

// Break writes a bare separator line to the ordinary stream.
func (s *Sink) Break() {
	b := acquireLineBuffer()
	b.line = append(b.line, BreakLine...)
	b.line = append(b.line, '\n')
	s.commit(MessageLevel, b.line)
	releaseLineBuffer(b)
}

// commit holds the lock for exactly one line: select stream, write, flush.
func (s *Sink) commit(level Level, line []byte) {
	w := s.out
	if level.diagnostic() {
		w = s.diag
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = w.Write(line)
	if f, ok := w.(flusher); ok {
		_ = f.Flush()
	}
}

const fieldSep = " : "

// composeLine renders one output line. indent is pure leading whitespace (a
// depth indicator) and never participates in separator placement; prefix (a
// timestamp tag) and context do.
func composeLine[T string | []byte](dst []byte, level Level, indent, prefix, context string, message T, color bool) []byte {
	dst = append(dst, indent...)
	dst = append(dst, prefix...)
	dst = append(dst, context...)
	head := len(prefix)+len(context) > 0

	if tag := level.tag(); tag != "" {
		if head {
			dst = append(dst, fieldSep...)
		}
		if color {
			dst = append(dst, level.color(ansi.Snapshot()).Set()...)
			dst = append(dst, tag...)
			dst = append(dst, ansi.Reset...)
		} else {
			dst = append(dst, tag...)
		}
		dst = append(dst, fieldSep...)
	} else if head {
		dst = append(dst, fieldSep...)
	}

	dst = append(dst, message...)
	return append(dst, '\n')
}
