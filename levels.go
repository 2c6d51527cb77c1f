package warp

import (
	"strings"

	"github.com/SelvamKrishna/warp/ansi"
)

// Level defines logging severity. It controls the level tag's color and the
// destination stream a line routes to.
type Level uint8

const (
	// MessageLevel emits the message without a level tag.
	MessageLevel Level = iota
	// InfoLevel defines info log level.
	InfoLevel
	// DebugLevel defines debug log level. Debug calls compile to no-ops under
	// the warp_release build tag.
	DebugLevel
	// WarnLevel defines warn log level.
	WarnLevel
	// ErrorLevel defines error log level.
	ErrorLevel
)

// String returns the canonical lower-case name of a Level.
func (l Level) String() string {
	switch l {
	case MessageLevel:
		return "message"
	case InfoLevel:
		return "info"
	case DebugLevel:
		return "debug"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	default:
		return "message"
	}
}

// ParseLevel converts a textual level into a Level value. It accepts "msg",
// "message", "info", "debug", "warn", "warning", "error", and "err", case
// insensitive.
func ParseLevel(value string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "msg", "message":
		return MessageLevel, true
	case "info":
		return InfoLevel, true
	case "debug", "dbg":
		return DebugLevel, true
	case "warn", "warning":
		return WarnLevel, true
	case "error", "err":
		return ErrorLevel, true
	default:
		return MessageLevel, false
	}
}

// tag returns the bracketed level tag, empty for MessageLevel.
func (l Level) tag() string {
	switch l {
	case InfoLevel:
		return "[INFO]"
	case DebugLevel:
		return "[DEBUG]"
	case WarnLevel:
		return "[WARN]"
	case ErrorLevel:
		return "[ERROR]"
	default:
		return ""
	}
}

func (l Level) color(p ansi.Palette) ansi.Fore {
	switch l {
	case InfoLevel:
		return p.Info
	case DebugLevel:
		return p.Debug
	case WarnLevel:
		return p.Warn
	case ErrorLevel:
		return p.Error
	default:
		return ansi.White
	}
}

// diagnostic reports whether l routes to the diagnostic (error) stream.
func (l Level) diagnostic() bool {
	return l == WarnLevel || l == ErrorLevel
}
