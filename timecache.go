package warp

import (
	"sync/atomic"
	"time"

	"github.com/SelvamKrishna/warp/ansi"
)

// DefaultStampInterval is how long a cached timestamp tag stays valid.
const DefaultStampInterval = time.Second

const stampLayout = "15:04:05"

// stampCache holds a color-wrapped [HH:MM:SS] tag that is recomputed on
// demand once it is older than interval. The cached value is published
// atomically so concurrent readers never see a partial tag; under contention
// more than one goroutine may reformat the same second, which is harmless.
type stampCache struct {
	interval time.Duration
	color    ansi.Fore
	colorize bool
	value    atomic.Pointer[stamp]
}

type stamp struct {
	at  time.Time
	tag string
}

func newStampCache(color ansi.Fore, interval time.Duration, colorize bool) *stampCache {
	if interval <= 0 {
		interval = DefaultStampInterval
	}
	return &stampCache{interval: interval, color: color, colorize: colorize}
}

// tag returns the cached timestamp tag, refreshing it when stale.
func (c *stampCache) tag(now time.Time) string {
	if s := c.value.Load(); s != nil && now.Sub(s.at) <= c.interval {
		return s.tag
	}
	var buf [len(stampLayout) + 2]byte
	b := append(buf[:0], '[')
	b = now.AppendFormat(b, stampLayout)
	b = append(b, ']')
	tag := string(b)
	if c.colorize {
		tag = ansi.Wrap(c.color, tag)
	}
	c.value.Store(&stamp{at: now, tag: tag})
	return tag
}

// invalidate drops the cached tag so the next call reformats.
func (c *stampCache) invalidate() {
	c.value.Store(nil)
}
