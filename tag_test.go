package warp

import (
	"strings"
	"testing"

	"github.com/SelvamKrishna/warp/ansi"
)

func TestJoinTagsEmpty(t *testing.T) {
	if got := JoinTags(nil, ""); got != "" {
		t.Fatalf("empty tag list: got %q, want empty", got)
	}
	if got := JoinTags([]Tag{}, "-"); got != "" {
		t.Fatalf("empty tag list with delim: got %q, want empty", got)
	}
}

func TestJoinTagsSingle(t *testing.T) {
	if got := JoinTags([]Tag{"[CORE]"}, " "); got != "[CORE]" {
		t.Fatalf("single tag: got %q, want unchanged element", got)
	}
}

func TestJoinTagsOrderAndDelimiter(t *testing.T) {
	tags := []Tag{"[A]", "[B]", "[C]"}
	if got := JoinTags(tags, ""); got != "[A][B][C]" {
		t.Fatalf("joined without delim: got %q", got)
	}
	got := JoinTags(tags, " ")
	if got != "[A] [B] [C]" {
		t.Fatalf("joined with delim: got %q", got)
	}
	if strings.HasSuffix(got, " ") {
		t.Fatalf("trailing delimiter in %q", got)
	}
}

// Regression: JoinTags must pre-size its result so joining N tags costs at
// most one allocation.
func TestJoinTagsSingleAllocation(t *testing.T) {
	tags := []Tag{"[A]", "[BB]", "[CCC]", "[DDDD]"}
	allocs := testing.AllocsPerRun(1000, func() {
		_ = JoinTags(tags, " ")
	})
	if allocs > 1 {
		t.Fatalf("expected at most 1 alloc/join, got %.2f", allocs)
	}
}

func TestMakeColoredTagAlwaysResets(t *testing.T) {
	tag := string(MakeColoredTag(ansi.Red, "[NET]"))
	if !strings.HasPrefix(tag, "\x1b[31m") {
		t.Fatalf("missing color start in %q", tag)
	}
	if !strings.HasSuffix(tag, ansi.Reset) {
		t.Fatalf("missing reset suffix in %q", tag)
	}
	if !strings.Contains(tag, "[NET]") {
		t.Fatalf("missing text in %q", tag)
	}
}

func TestMakeDefaultTagVerbatim(t *testing.T) {
	if got := MakeDefaultTag("[CORE]"); got != "[CORE]" {
		t.Fatalf("got %q", got)
	}
}

func TestTagFactoryColorToggle(t *testing.T) {
	colored := NewTagFactory(true)
	plain := NewTagFactory(false)

	if got := string(colored.Colored(ansi.Blue, "[X]")); !strings.Contains(got, "\x1b[34m") {
		t.Fatalf("color-enabled factory emitted %q", got)
	}
	if got := string(plain.Colored(ansi.Blue, "[X]")); got != "[X]" {
		t.Fatalf("color-disabled factory emitted %q, want plain text", got)
	}
	if got := string(plain.Default("[Y]")); got != "[Y]" {
		t.Fatalf("Default emitted %q", got)
	}
}
