package timer

import (
	"github.com/SelvamKrishna/warp"
	"github.com/SelvamKrishna/warp/ansi"
)

const benchTagText = "[TIMER][BENCHMARK]"

// DefaultSamples is the conventional sample count; pass it to Benchmark when
// no specific count is called for.
const DefaultSamples = 8

// Benchmark invokes fn exactly samples times, recording each call's
// wall-clock duration, then reports the mean, median, and mode of the sample
// set in the configured display unit through one multi-line log entry.
//
// A non-positive sample count produces a warning instead of a statistics
// report. All invocations run to completion; there is no way to abort a run
// mid-flight.
func Benchmark(desc string, fn func(), samples int, opts ...Option) {
	cfg := resolve(opts)
	colorize := cfg.sink.ColorEnabled()
	factory := warp.NewTagFactory(colorize)
	log := warp.NewWithSink(cfg.sink, factory.Colored(ansi.Snapshot().Timer, benchTagText))

	if samples <= 0 {
		log.Warn("benchmarking %q with no samples", desc)
		return
	}

	results := make([]float64, 0, samples)
	for i := 0; i < samples; i++ {
		results = append(results, measureMS(fn))
	}
	stats := summarize(results)

	statTag := func(text string) warp.Tag {
		return factory.Colored(ansi.Snapshot().Stat, text)
	}
	display := func(ms float64) string {
		return elapsedTag(Convert(ms, Milliseconds, cfg.unit), cfg.unit, colorize)
	}
	log.Msg("%s\n\t%s %s\n\t%s %s\n\t%s %s",
		desc,
		statTag("[MEAN]  "), display(stats.mean),
		statTag("[MEDIAN]"), display(stats.median),
		statTag("[MODE]  "), display(stats.mode),
	)
}
