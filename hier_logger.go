package warp

import "strings"

// HierLogger is a Logger that prefixes each line with a depth-indicator tag,
// one tab per nesting level. Depth is supplied by the caller per call; the
// logger holds no depth state of its own. The timer package uses it to
// visually nest sub-task reports.
type HierLogger struct {
	inner Logger
}

// NewHier returns a HierLogger writing through the default sink.
func NewHier(tags ...Tag) *HierLogger {
	return NewHierWithSink(DefaultSink(), tags...)
}

// NewHierWithSink returns a HierLogger writing through sink.
func NewHierWithSink(sink *Sink, tags ...Tag) *HierLogger {
	return &HierLogger{inner: Logger{sink: sink, ctx: JoinTags(tags, "")}}
}

// Sink returns the sink this logger writes through.
func (l *HierLogger) Sink() *Sink {
	return l.inner.sink
}

var depthPrefixes = [...]string{"", "\t", "\t\t", "\t\t\t", "\t\t\t\t"}

func depthPrefix(depth int) string {
	if depth <= 0 {
		return ""
	}
	if depth < len(depthPrefixes) {
		return depthPrefixes[depth]
	}
	return strings.Repeat("\t", depth)
}

// MsgAt logs without a level tag at the given nesting depth.
func (l *HierLogger) MsgAt(depth int, format string, args ...any) {
	l.inner.emit(MessageLevel, depthPrefix(depth), "", format, args)
}

// InfoAt logs at InfoLevel at the given nesting depth.
func (l *HierLogger) InfoAt(depth int, format string, args ...any) {
	l.inner.emit(InfoLevel, depthPrefix(depth), "", format, args)
}

// WarnAt logs at WarnLevel at the given nesting depth.
func (l *HierLogger) WarnAt(depth int, format string, args ...any) {
	l.inner.emit(WarnLevel, depthPrefix(depth), "", format, args)
}

// ErrAt logs at ErrorLevel at the given nesting depth.
func (l *HierLogger) ErrAt(depth int, format string, args ...any) {
	l.inner.emit(ErrorLevel, depthPrefix(depth), "", format, args)
}

// DbgAt logs at DebugLevel at the given nesting depth; a no-op under the
// warp_release build tag.
func (l *HierLogger) DbgAt(depth int, format string, args ...any) {
	if !debugEnabled {
		return
	}
	l.inner.emit(DebugLevel, depthPrefix(depth), "", format, args)
}
