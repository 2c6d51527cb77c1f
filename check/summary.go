// Package check provides the pass/fail counter consumed by external test
// harnesses built on top of warp.
package check

import (
	"strconv"

	"github.com/SelvamKrishna/warp/ansi"
)

// Summary accumulates pass/fail counts. The zero value is ready to use.
type Summary struct {
	total  uint32
	passed uint32
}

// Add records one case result.
func (s *Summary) Add(passed bool) {
	s.total++
	if passed {
		s.passed++
	}
}

// Total returns the number of recorded cases.
func (s *Summary) Total() uint32 {
	return s.total
}

// Passed returns the number of passing cases.
func (s *Summary) Passed() uint32 {
	return s.passed
}

// Failed returns the number of failing cases.
func (s *Summary) Failed() uint32 {
	return s.total - s.passed
}

// Merge folds other's counts into s.
func (s *Summary) Merge(other Summary) {
	s.total += other.total
	s.passed += other.passed
}

// String renders the summary as a color-wrapped "[passed/total]" tag.
func (s Summary) String() string {
	text := "[" + strconv.FormatUint(uint64(s.passed), 10) +
		"/" + strconv.FormatUint(uint64(s.total), 10) + "]"
	return ansi.Wrap(ansi.Snapshot().Tally, text)
}
