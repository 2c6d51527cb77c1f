package timer

import (
	"time"

	"github.com/SelvamKrishna/warp"
	"github.com/SelvamKrishna/warp/ansi"
)

const subTagText = "[TIMER][SUB]"

// Hierarchy is a timer that also measures named sub-tasks nested within its
// own lifetime, accumulating their total alongside its own elapsed figure.
// Construction always starts it and prints an opening line; there is no
// manual Start or Reset, only one Stop is meaningful.
//
// The reported total is independent of the sum of sub-task totals: the
// parent's own un-instrumented work counts too.
type Hierarchy struct {
	desc     string
	unit     Unit
	log      *warp.HierLogger
	tags     warp.TagFactory
	start    time.Time
	running  bool
	subTotal float64
	depth    int
}

// NewHierarchy returns a running Hierarchy and emits its opening line. Defer
// Done to close the report on every exit path.
func NewHierarchy(desc string, opts ...Option) *Hierarchy {
	cfg := resolve(opts)
	h := &Hierarchy{
		desc:    desc,
		unit:    cfg.unit,
		log:     warp.NewHierWithSink(cfg.sink),
		tags:    warp.NewTagFactory(cfg.sink.ColorEnabled()),
		start:   time.Now(),
		running: true,
	}
	h.log.MsgAt(0, "%s : %s {", h.tags.Colored(ansi.Snapshot().Timer, timerTagText), desc)
	return h
}

// SubTask measures one nested invocation of fn, adds its elapsed time
// (converted to the Hierarchy's own unit) to the running sub-task total, and
// emits a nested-depth report. It returns the sub-task's elapsed time in the
// Hierarchy's unit. Sub-tasks started from within fn nest one level deeper.
func (h *Hierarchy) SubTask(desc string, fn func()) float64 {
	h.depth++
	elapsedMS := measureMS(fn)
	h.depth--

	elapsed := Convert(elapsedMS, Milliseconds, h.unit)
	h.subTotal += elapsed

	colorize := h.log.Sink().ColorEnabled()
	h.log.MsgAt(h.depth+1, "%s%s : %s",
		h.tags.Colored(ansi.Snapshot().Timer, subTagText),
		elapsedTag(elapsed, h.unit, colorize),
		desc,
	)
	return elapsed
}

// SubTotal returns the accumulated sub-task time in the Hierarchy's unit.
func (h *Hierarchy) SubTotal() float64 {
	return h.subTotal
}

// Stop ends the measurement, emits the closing line with the Hierarchy's own
// total elapsed time, and returns it in the Hierarchy's unit. Stopping a
// stopped Hierarchy warns and returns zero.
func (h *Hierarchy) Stop() float64 {
	if !h.running {
		h.log.WarnAt(0, "stop on a stopped timer: %s", h.desc)
		return 0
	}
	elapsed := Convert(millisecondsSince(h.start), Milliseconds, h.unit)
	h.running = false
	h.log.MsgAt(0, "} %s", elapsedTag(elapsed, h.unit, h.log.Sink().ColorEnabled()))
	return elapsed
}

// Done stops and reports the Hierarchy if it is still running. It is meant to
// be deferred.
func (h *Hierarchy) Done() {
	if h.running {
		h.Stop()
	}
}
