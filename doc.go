// Package warp provides a small embeddable instrumentation toolkit: a
// concurrent-safe, tag-based, colorized console logger, and (in the timer
// subpackage) timing and benchmarking helpers that report through it.
//
// # Design overview
//
//   - Construction-time setup: tags are joined into an immutable context
//     string once, when a Logger is created, so the per-call path never
//     concatenates tags.
//   - Single serialization point: all output funnels through a Sink that owns
//     one mutex and two destination streams. Info, Debug, and Message lines
//     go to the ordinary stream; Warn and Error lines go to the diagnostic
//     stream. A single Write call is atomic with respect to other Write
//     calls.
//   - Buffer reuse: line and format-scratch buffers come from a pool and are
//     cleared, not reallocated, between calls, so the steady-state logging
//     path does not allocate.
//   - Cached timestamps: TimedLogger prepends a color-wrapped [HH:MM:SS] tag
//     that is recomputed only when it is older than a configured interval
//     (one second by default), trading precision for formatting cost.
//
// # Usage
//
//	log := warp.New(warp.MakeColoredTag(ansi.Cyan, "[NET]"))
//	log.Info("listening on %s", addr)
//	log.Warn("retrying in %v", delay)
//
// The timestamped variant mirrors the API:
//
//	log := warp.NewTimed(warp.MakeDefaultTag("[CORE]"))
//	log.Msg("starting up")
//
// Debug logging compiles to a no-op under the warp_release build tag; use
// DbgLazy when the message is expensive to build:
//
//	log.DbgLazy(func() string { return dump(state) })
//
// # Integration notes
//
//   - The ansi subpackage exposes palette controls (ansi.SetPalette).
//   - Tests can substitute an in-memory sink via NewSink and NewWithSink.
//   - The timer subpackage measures elapsed durations and computes
//     mean/median/mode over repeated samples, reporting through this logger.
package warp
