package timer

import (
	"strings"
	"testing"
)

func TestBenchmarkReportsStatistics(t *testing.T) {
	sink, out, diag := newCaptureSink(t)

	calls := 0
	Benchmark("tight loop", func() { calls++ }, 4, WithSink(sink))

	if calls != 4 {
		t.Fatalf("callable invoked %d times, want 4", calls)
	}
	if diag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %q", diag.String())
	}
	got := out.String()
	for _, want := range []string{"[TIMER][BENCHMARK]", "tight loop", "[MEAN]", "[MEDIAN]", "[MODE]"} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
}

func TestBenchmarkDefaultSampleCount(t *testing.T) {
	sink, _, _ := newCaptureSink(t)

	calls := 0
	Benchmark("default run", func() { calls++ }, DefaultSamples, WithSink(sink))
	if calls != 8 {
		t.Fatalf("callable invoked %d times, want 8", calls)
	}
}

// A zero sample count must warn instead of dividing by zero.
func TestBenchmarkZeroSamplesWarns(t *testing.T) {
	sink, out, diag := newCaptureSink(t)

	calls := 0
	Benchmark("empty run", func() { calls++ }, 0, WithSink(sink))

	if calls != 0 {
		t.Fatalf("callable invoked %d times, want 0", calls)
	}
	if out.Len() != 0 {
		t.Fatalf("statistics emitted for empty run: %q", out.String())
	}
	got := diag.String()
	if !strings.Contains(got, "[WARN]") || !strings.Contains(got, "no samples") {
		t.Fatalf("missing warning: %q", got)
	}
}

func TestBenchmarkNegativeSamplesWarns(t *testing.T) {
	sink, out, diag := newCaptureSink(t)

	Benchmark("negative run", func() {}, -3, WithSink(sink))
	if out.Len() != 0 || diag.Len() == 0 {
		t.Fatalf("out=%q diag=%q", out.String(), diag.String())
	}
}

func TestBenchmarkDisplayUnit(t *testing.T) {
	sink, out, _ := newCaptureSink(t)

	Benchmark("unit run", func() {}, 2, WithSink(sink), WithUnit(Microseconds))
	if !strings.Contains(out.String(), " us]") {
		t.Fatalf("missing microsecond tags in %q", out.String())
	}
}

// The whole statistics report is one sink write: its lines cannot be torn
// apart by concurrent logging.
func TestBenchmarkReportIsOneEntry(t *testing.T) {
	sink, out, _ := newCaptureSink(t)

	Benchmark("atomic report", func() {}, 2, WithSink(sink))
	got := out.String()
	if strings.Count(got, "\n") != 4 {
		t.Fatalf("expected a 4-line report, got %q", got)
	}
	if !strings.HasPrefix(got, "[TIMER][BENCHMARK] : atomic report\n") {
		t.Fatalf("report head: %q", got)
	}
}
