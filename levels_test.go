package warp

import "testing"

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"info", InfoLevel, true},
		{"INFO", InfoLevel, true},
		{" warn ", WarnLevel, true},
		{"warning", WarnLevel, true},
		{"error", ErrorLevel, true},
		{"err", ErrorLevel, true},
		{"debug", DebugLevel, true},
		{"dbg", DebugLevel, true},
		{"msg", MessageLevel, true},
		{"message", MessageLevel, true},
		{"bogus", MessageLevel, false},
	}
	for _, tc := range cases {
		got, ok := ParseLevel(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestLevelString(t *testing.T) {
	for lvl, want := range map[Level]string{
		MessageLevel: "message",
		InfoLevel:    "info",
		DebugLevel:   "debug",
		WarnLevel:    "warn",
		ErrorLevel:   "error",
	} {
		if got := lvl.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", lvl, got, want)
		}
	}
}

func TestLevelRouting(t *testing.T) {
	for lvl, wantDiag := range map[Level]bool{
		MessageLevel: false,
		InfoLevel:    false,
		DebugLevel:   false,
		WarnLevel:    true,
		ErrorLevel:   true,
	} {
		if got := lvl.diagnostic(); got != wantDiag {
			t.Errorf("%v.diagnostic() = %v, want %v", lvl, got, wantDiag)
		}
	}
}
