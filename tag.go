package warp

import (
	"github.com/SelvamKrishna/warp/ansi"
)

// Tag is a short display label used as logging context. Tags are immutable
// once built; colored tags embed their reset sequence so color never leaks
// into subsequent output.
type Tag string

// MakeDefaultTag wraps text verbatim.
func MakeDefaultTag(text string) Tag {
	return Tag(text)
}

// MakeColoredTag wraps text with fg's start sequence and the reset sequence.
func MakeColoredTag(fg ansi.Fore, text string) Tag {
	return Tag(ansi.Wrap(fg, text))
}

// JoinTags concatenates tag texts in order, separated by delim. An empty
// input yields an empty string; there is no trailing delimiter. The result is
// built in a single allocation.
func JoinTags(tags []Tag, delim string) string {
	if len(tags) == 0 {
		return ""
	}
	total := len(delim) * (len(tags) - 1)
	for _, t := range tags {
		total += len(t)
	}
	b := make([]byte, 0, total)
	b = append(b, tags[0]...)
	for _, t := range tags[1:] {
		b = append(b, delim...)
		b = append(b, t...)
	}
	return string(b)
}

// TagFactory builds tags with color emission as a configurable no-op, for
// callers targeting terminals without ANSI support.
type TagFactory struct {
	color bool
}

// NewTagFactory returns a factory that emits color sequences only when
// colorEnabled is true.
func NewTagFactory(colorEnabled bool) TagFactory {
	return TagFactory{color: colorEnabled}
}

// Default wraps text verbatim.
func (f TagFactory) Default(text string) Tag {
	return Tag(text)
}

// Colored wraps text in fg when the factory has color enabled, and verbatim
// otherwise.
func (f TagFactory) Colored(fg ansi.Fore, text string) Tag {
	if !f.color {
		return Tag(text)
	}
	return MakeColoredTag(fg, text)
}
