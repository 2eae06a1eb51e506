package notation

import (
	"testing"

	"github.com/kestrelgames/isolator/isolation"
)

func TestParseMove(t *testing.T) {
	cases := []struct {
		in   string
		want isolation.Move
	}{
		{"a1", isolation.Move{X: 0, Y: 0}},
		{"d3", isolation.Move{X: 3, Y: 2}},
		{"h8", isolation.Move{X: 7, Y: 7}},
		{"--", isolation.NoMove},
	}
	for _, tc := range cases {
		got, err := ParseMove(tc.in)
		if err != nil {
			t.Errorf("ParseMove(%q): %v", tc.in, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("ParseMove(%q) = %v, want %v", tc.in, got, tc.want)
		}
		if back := FormatMove(got); back != tc.in {
			t.Errorf("FormatMove(%v) = %q, want %q", got, back, tc.in)
		}
	}

	for _, bad := range []string{"", "a", "a9", "i1", "1a", "a10"} {
		if _, err := ParseMove(bad); err == nil {
			t.Errorf("ParseMove(%q): expected error", bad)
		}
	}
}
