package warp

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

var stampedLine = regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\]\[APP\] : \[INFO\] : ready\n$`)

func TestTimedLoggerPrependsTimestampTag(t *testing.T) {
	sink, out, _ := newCaptureSink(t, Options{NoColor: true})
	log := NewTimedWithSink(sink, []Tag{MakeDefaultTag("[APP]")})

	log.Info("ready")
	if !stampedLine.MatchString(out.String()) {
		t.Fatalf("unexpected line %q", out.String())
	}
}

func TestTimedLoggerRoutesLikeLogger(t *testing.T) {
	sink, out, diag := newCaptureSink(t, Options{NoColor: true})
	log := NewTimedWithSink(sink, []Tag{MakeDefaultTag("[APP]")})

	log.Msg("m")
	log.Warn("w")
	log.Err("e")

	if !strings.Contains(out.String(), " : m\n") {
		t.Fatalf("message line missing from ordinary stream: %q", out.String())
	}
	if !strings.Contains(diag.String(), "[WARN] : w") || !strings.Contains(diag.String(), "[ERROR] : e") {
		t.Fatalf("diagnostic lines missing: %q", diag.String())
	}
}

func TestTimedLoggerCachesAcrossCalls(t *testing.T) {
	sink, out, _ := newCaptureSink(t, Options{NoColor: true})
	log := NewTimedWithSink(sink, []Tag{MakeDefaultTag("[APP]")},
		WithStampInterval(time.Hour))

	log.Msg("one")
	log.Msg("two")

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	stamp := func(line string) string { return line[:len("[00:00:00]")] }
	if stamp(lines[0]) != stamp(lines[1]) {
		t.Fatalf("timestamp not cached: %q vs %q", lines[0], lines[1])
	}
}

func TestTimedLoggerRefreshTimestamp(t *testing.T) {
	sink, out, _ := newCaptureSink(t, Options{NoColor: true})
	log := NewTimedWithSink(sink, []Tag{MakeDefaultTag("[APP]")},
		WithStampInterval(time.Hour))

	log.Msg("one")
	log.RefreshTimestamp()
	log.Msg("two")

	// Both lines still carry a well-formed stamp; refresh must not corrupt
	// the cache even when the reformatted value lands on the same second.
	for _, line := range strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n") {
		if !regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\]`).MatchString(line) {
			t.Fatalf("line missing timestamp after refresh: %q", line)
		}
	}
}

func TestTimedLoggerEnvInterval(t *testing.T) {
	t.Setenv("WARP_TS_INTERVAL", "2h")
	sink, _, _ := newCaptureSink(t, Options{NoColor: true})

	log := NewTimedWithSink(sink, []Tag{MakeDefaultTag("[APP]")})
	if log.cache.interval != 2*time.Hour {
		t.Fatalf("interval %v, want 2h from environment", log.cache.interval)
	}

	// An explicit option still wins over the environment.
	log = NewTimedWithSink(sink, nil, WithStampInterval(time.Minute))
	if log.cache.interval != time.Minute {
		t.Fatalf("interval %v, want explicit 1m", log.cache.interval)
	}
}

func TestTimedLoggerColoredStampOnColoredSink(t *testing.T) {
	sink, out, _ := newCaptureSink(t, Options{ForceColor: true})
	log := NewTimedWithSink(sink, []Tag{MakeDefaultTag("[APP]")})

	log.Msg("ready")
	if !strings.HasPrefix(out.String(), "\x1b[37m[") {
		t.Fatalf("expected white-wrapped stamp prefix, got %q", out.String())
	}
}
