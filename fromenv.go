package warp

import (
	"io"
	"os"
	"strconv"
	"time"
)

// FromEnv builds sink Options from environment variables. Recognised
// variables are WARP_NO_COLOR and WARP_FORCE_COLOR (boolean, per
// strconv.ParseBool, with a bare non-empty value counting as true). The
// conventional NO_COLOR variable is honored as well.
func FromEnv() Options {
	return Options{
		NoColor:    envBool("WARP_NO_COLOR") || envBool("NO_COLOR"),
		ForceColor: envBool("WARP_FORCE_COLOR"),
	}
}

// SinkFromEnv builds a sink from environment variables. WARP_OUTPUT selects
// the ordinary stream: "stdout" (default), "stderr", or "discard"; the
// diagnostic stream always goes to stderr unless output is discarded.
func SinkFromEnv() *Sink {
	var out, diag io.Writer = os.Stdout, os.Stderr
	switch os.Getenv("WARP_OUTPUT") {
	case "", "stdout":
	case "stderr":
		out = os.Stderr
	case "discard":
		out, diag = io.Discard, io.Discard
	}
	return NewSink(out, diag, FromEnv())
}

// StampIntervalFromEnv returns the timestamp cache interval configured via
// WARP_TS_INTERVAL (a time.ParseDuration string, e.g. "250ms"), falling back
// to DefaultStampInterval when the variable is unset, unparsable, or not
// positive. WithStampInterval overrides it per logger.
func StampIntervalFromEnv() time.Duration {
	value, ok := os.LookupEnv("WARP_TS_INTERVAL")
	if !ok {
		return DefaultStampInterval
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return DefaultStampInterval
	}
	return d
}

func envBool(key string) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return false
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return value != ""
	}
	return parsed
}
