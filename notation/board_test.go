package notation

import (
	"testing"

	"github.com/kestrelgames/isolator/isolation"
)

func TestPositionRoundTrip(t *testing.T) {
	cases := []string{
		"...../...../..1../...../2.... 4",
		".#2/..#/1.. 6",
		"......./......./......./......./......./......./....... 0",
		"..2/..#/1.. 5",
	}
	for _, tc := range cases {
		p, err := ParsePosition(tc)
		if err != nil {
			t.Errorf("ParsePosition(%q): %v", tc, err)
			continue
		}
		if got := FormatPosition(p); got != tc {
			t.Errorf("round trip %q -> %q", tc, got)
		}
	}
}

func TestParsePosition(t *testing.T) {
	p, err := ParsePosition("..2/..#/1.. 4")
	if err != nil {
		t.Fatal(err)
	}
	if p.Width() != 3 || p.Height() != 3 {
		t.Errorf("size: %dx%d", p.Width(), p.Height())
	}
	if !p.Location(isolation.Player1).Equal(isolation.Move{X: 0, Y: 0}) {
		t.Errorf("player1: %v", p.Location(isolation.Player1))
	}
	if !p.Location(isolation.Player2).Equal(isolation.Move{X: 2, Y: 2}) {
		t.Errorf("player2: %v", p.Location(isolation.Player2))
	}
	if !p.Blocked(isolation.Move{X: 2, Y: 1}) {
		t.Error("c2 should be blocked")
	}
	if p.MoveCount() != 4 || p.ToMove() != isolation.Player1 {
		t.Errorf("move=%d to-move=%s", p.MoveCount(), p.ToMove())
	}

	for _, bad := range []string{
		"",
		"../... 1",
		"..../... 2",
		"..q/.../... 0",
		"11./.../... 0",
		".../.../...",
		".../.../... x",
		// 9x8 exceeds the 64-cell board limit.
		"........./........./........./........./........./........./........./......... 0",
	} {
		if _, err := ParsePosition(bad); err == nil {
			t.Errorf("ParsePosition(%q): expected error", bad)
		}
	}
}
