package warp

import "sync"

const (
	lineBufferDefaultCap = 256
	scratchDefaultCap    = 128
	lineBufferMaxCap     = 64 << 10
)

// lineBuffer carries one reusable output buffer and one reusable
// format-scratch buffer through a single log call. Buffers are cleared, never
// reallocated, between calls unless they grew past lineBufferMaxCap.
type lineBuffer struct {
	line    []byte
	scratch []byte
}

var lineBufferPool = sync.Pool{
	New: func() any {
		return &lineBuffer{
			line:    make([]byte, 0, lineBufferDefaultCap),
			scratch: make([]byte, 0, scratchDefaultCap),
		}
	},
}

func acquireLineBuffer() *lineBuffer {
	b := lineBufferPool.Get().(*lineBuffer)
	b.line = b.line[:0]
	b.scratch = b.scratch[:0]
	return b
}

func releaseLineBuffer(b *lineBuffer) {
	if cap(b.line) > lineBufferMaxCap {
		b.line = make([]byte, 0, lineBufferDefaultCap)
	}
	if cap(b.scratch) > lineBufferMaxCap {
		b.scratch = make([]byte, 0, scratchDefaultCap)
	}
	lineBufferPool.Put(b)
}
