// Package timer measures execution durations and reports them, along with
// aggregate statistics over repeated samples, through the warp logger.
package timer

import (
	"strconv"

	"github.com/SelvamKrishna/warp/ansi"
)

// Unit is a display unit for elapsed durations.
type Unit uint8

const (
	// Microseconds displays elapsed time in microseconds ("us").
	Microseconds Unit = iota
	// Milliseconds displays elapsed time in milliseconds ("ms"). This is the
	// base unit all raw measurements are taken in.
	Milliseconds
	// Seconds displays elapsed time in seconds ("s").
	Seconds
)

// conversion factors, indexed [from][to]; identity on the diagonal.
var unitTable = [3][3]float64{
	{1, 0.001, 0.000001},
	{1000, 1, 0.001},
	{1_000_000, 1000, 1},
}

// Convert converts a duration value between units.
func Convert(value float64, from, to Unit) float64 {
	if from == to {
		return value
	}
	return value * unitTable[from][to]
}

// Suffix returns the unit's display suffix.
func (u Unit) Suffix() string {
	switch u {
	case Microseconds:
		return "us"
	case Seconds:
		return "s"
	default:
		return "ms"
	}
}

// appendElapsedTag appends a color-wrapped "[%.3f <unit>]" tag for value.
func appendElapsedTag(dst []byte, value float64, u Unit, colorize bool) []byte {
	if colorize {
		dst = append(dst, ansi.Snapshot().Elapsed.Set()...)
	}
	dst = append(dst, '[')
	dst = strconv.AppendFloat(dst, value, 'f', 3, 64)
	dst = append(dst, ' ')
	dst = append(dst, u.Suffix()...)
	dst = append(dst, ']')
	if colorize {
		dst = append(dst, ansi.Reset...)
	}
	return dst
}

func elapsedTag(value float64, u Unit, colorize bool) string {
	return string(appendElapsedTag(nil, value, u, colorize))
}
