package selfplay

import (
	"testing"

	"github.com/kestrelgames/isolator/isolation"
)

func TestSimulate(t *testing.T) {
	cfg := &Config{
		Games:   2,
		P1:      "rand:1",
		P2:      "alphabeta:2",
		Width:   5,
		Height:  5,
		Swap:    true,
		Threads: 2,
		Seed:    42,
		Cutoff:  60,
	}
	st := Simulate(cfg)
	if got := st.Count(); got != 4 {
		t.Fatalf("played %d games, want 4", got)
	}
	// Every cell blocks when visited, so no game can outlast the
	// board: there is always a winner.
	if st.Cutoff != 0 {
		t.Errorf("%d games hit the cutoff", st.Cutoff)
	}
	if st.Players[0].Wins+st.Players[1].Wins != 4 {
		t.Errorf("wins don't add up: %+v", st.Players)
	}
	seats := map[isolation.Player]int{}
	for i := range st.Games {
		seats[st.Games[i].P1Seat()]++
		if n := st.Games[i].Final.MoveCount(); n == 0 || n > 25 {
			t.Errorf("game %d ran %d plies", i, n)
		}
	}
	if seats[isolation.Player1] != 2 || seats[isolation.Player2] != 2 {
		t.Errorf("seat swap: %v", seats)
	}
}
