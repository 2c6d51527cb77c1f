// Package ansi provides the ANSI escape sequences and palette helpers used by
// warp's colored output. The palette can be swapped via SetPalette so callers
// can restyle level tags, timestamps, and elapsed-time tags without touching
// warp internals.
package ansi

import (
	"strconv"
	"sync"
)

var foreSequences = map[Fore]string{
	Black:        "\x1b[30m",
	Red:          "\x1b[31m",
	Green:        "\x1b[32m",
	Yellow:       "\x1b[33m",
	Blue:         "\x1b[34m",
	Magenta:      "\x1b[35m",
	Cyan:         "\x1b[36m",
	White:        "\x1b[37m",
	Default:      "\x1b[39m",
	LightBlack:   "\x1b[90m",
	LightRed:     "\x1b[91m",
	LightGreen:   "\x1b[92m",
	LightYellow:  "\x1b[93m",
	LightBlue:    "\x1b[94m",
	LightMagenta: "\x1b[95m",
	LightCyan:    "\x1b[96m",
	LightWhite:   "\x1b[97m",
}

// Reset clears all terminal styling.
const Reset = "\x1b[0m"

// Fore is an ANSI foreground color code (SGR 30-37 and 90-97).
type Fore uint8

// Standard and bright foreground colors.
const (
	Black Fore = iota + 30
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White

	Default Fore = 39

	LightBlack Fore = iota + 81 // 90
	LightRed
	LightGreen
	LightYellow
	LightBlue
	LightMagenta
	LightCyan
	LightWhite
)

// Set returns the escape sequence that switches the terminal foreground to f.
// Known color codes resolve to constant strings so the logging hot path does
// not allocate.
func (f Fore) Set() string {
	if s, ok := foreSequences[f]; ok {
		return s
	}
	return "\x1b[" + strconv.Itoa(int(f)) + "m"
}

// Wrap returns text surrounded by f's set sequence and Reset. The reset is
// always appended so color never leaks into subsequent output.
func Wrap(f Fore, text string) string {
	code := f.Set()
	b := make([]byte, 0, len(code)+len(text)+len(Reset))
	b = append(b, code...)
	b = append(b, text...)
	b = append(b, Reset...)
	return string(b)
}

// Palette maps warp's semantic roles to foreground colors. Zero values fall
// back to the current palette entry in SetPalette.
type Palette struct {
	Info      Fore
	Debug     Fore
	Warn      Fore
	Error     Fore
	Timestamp Fore
	Elapsed   Fore
	Timer     Fore
	Stat      Fore
	Tally     Fore
}

// PaletteDefault matches the toolkit's stock colors.
var PaletteDefault = Palette{
	Info:      Green,
	Debug:     Cyan,
	Warn:      Yellow,
	Error:     Red,
	Timestamp: White,
	Elapsed:   Yellow,
	Timer:     Blue,
	Stat:      Green,
	Tally:     Yellow,
}

var (
	paletteMu sync.RWMutex
	current   = PaletteDefault
)

// SetPalette replaces the active palette. Zero-valued fields keep their
// current color.
func SetPalette(p Palette) {
	paletteMu.Lock()
	defer paletteMu.Unlock()
	current = Palette{
		Info:      pick(p.Info, current.Info),
		Debug:     pick(p.Debug, current.Debug),
		Warn:      pick(p.Warn, current.Warn),
		Error:     pick(p.Error, current.Error),
		Timestamp: pick(p.Timestamp, current.Timestamp),
		Elapsed:   pick(p.Elapsed, current.Elapsed),
		Timer:     pick(p.Timer, current.Timer),
		Stat:      pick(p.Stat, current.Stat),
		Tally:     pick(p.Tally, current.Tally),
	}
}

// Snapshot returns the active palette. Typical test usage:
//
//	snap := ansi.Snapshot()
//	defer ansi.SetPalette(snap)
func Snapshot() Palette {
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	return current
}

func pick(f, fallback Fore) Fore {
	if f != 0 {
		return f
	}
	return fallback
}
