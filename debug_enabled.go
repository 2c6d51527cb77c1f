//go:build !warp_release

package warp

// debugEnabled gates Dbg and DbgLazy. In release builds (-tags warp_release)
// it is a false constant, so the guarded bodies are eliminated at compile
// time and DbgLazy never evaluates its argument.
const debugEnabled = true
