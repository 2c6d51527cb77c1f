//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd || solaris || windows)

package warp

import "io"

// Platforms without terminal introspection support fall back to no color;
// ForceColor still applies.
func isTerminal(io.Writer) bool {
	return false
}
