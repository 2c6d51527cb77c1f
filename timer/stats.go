package timer

import "sort"

// summary holds the aggregate statistics of one benchmark run, in the base
// unit. It is not persisted beyond the report line it produces.
type summary struct {
	mean   float64
	median float64
	mode   float64
}

// summarize sorts samples in place and computes mean, median, and mode.
// samples must be non-empty; Benchmark guards the empty case before calling.
func summarize(samples []float64) summary {
	sort.Float64s(samples)
	return summary{
		mean:   mean(samples),
		median: median(samples),
		mode:   mode(samples),
	}
}

func mean(sorted []float64) float64 {
	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	return sum / float64(len(sorted))
}

// median of an ascending slice: the middle element for odd counts, the
// average of the two middle elements for even counts.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// mode scans the ascending slice once, tracking the longest run of equal
// adjacent values. Ties break toward the first value to reach the maximum run
// length; with no repeats that is the smallest sample.
func mode(sorted []float64) float64 {
	best := sorted[0]
	maxRun, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			run++
		} else {
			run = 1
		}
		if run > maxRun {
			maxRun = run
			best = sorted[i]
		}
	}
	return best
}
