package isolation

import "testing"

func TestPlacementMoves(t *testing.T) {
	p := New(Config{Width: 3, Height: 3})
	ms := p.LegalMoves(Player1)
	if len(ms) != 9 {
		t.Fatalf("empty board: %d placement moves, want 9", len(ms))
	}
	// Row-major enumeration order.
	if !ms[0].Equal(Move{0, 0}) || !ms[1].Equal(Move{1, 0}) || !ms[3].Equal(Move{0, 1}) {
		t.Errorf("placement order: %v", ms)
	}

	p, err := p.Move(Move{0, 0})
	if err != nil {
		t.Fatal("place:", err)
	}
	if got := len(p.LegalMoves(Player2)); got != 8 {
		t.Errorf("after one placement: %d moves, want 8", got)
	}
	if p.ToMove() != Player2 {
		t.Errorf("to move: %s, want player2", p.ToMove())
	}
}

func TestKnightMoves(t *testing.T) {
	p := New(Config{Width: 5, Height: 5})
	var err error
	p, err = p.Move(Move{2, 2})
	if err != nil {
		t.Fatal(err)
	}
	p, err = p.Move(Move{0, 0})
	if err != nil {
		t.Fatal(err)
	}

	ms := p.LegalMoves(Player1)
	want := []Move{
		{0, 1}, {0, 3},
		{1, 0}, {1, 4},
		{3, 0}, {3, 4},
		{4, 1}, {4, 3},
	}
	if len(ms) != len(want) {
		t.Fatalf("knight moves: got %v", ms)
	}
	for i, m := range ms {
		if !m.Equal(want[i]) {
			t.Errorf("move %d: got %v, want %v", i, m, want[i])
		}
	}
}

func TestForecastPure(t *testing.T) {
	p := New(Config{Width: 5, Height: 5})
	var err error
	p, err = p.Move(Move{2, 2})
	if err != nil {
		t.Fatal(err)
	}
	p, err = p.Move(Move{0, 0})
	if err != nil {
		t.Fatal(err)
	}

	before := *p
	child := p.Forecast(Move{3, 4})
	if *p != before {
		t.Error("Forecast mutated the parent position")
	}
	if child.MoveCount() != p.MoveCount()+1 {
		t.Errorf("child move count: %d", child.MoveCount())
	}
	if !child.Location(Player1).Equal(Move{3, 4}) {
		t.Errorf("child location: %v", child.Location(Player1))
	}
	if !p.Location(Player1).Equal(Move{2, 2}) {
		t.Errorf("parent location changed: %v", p.Location(Player1))
	}
	// The vacated cell stays blocked in the child.
	if !child.(*Position).Blocked(Move{2, 2}) {
		t.Error("vacated cell not blocked")
	}
}

func TestMoveValidates(t *testing.T) {
	p := New(Config{Width: 5, Height: 5})
	var err error
	p, err = p.Move(Move{2, 2})
	if err != nil {
		t.Fatal(err)
	}
	p, err = p.Move(Move{0, 0})
	if err != nil {
		t.Fatal(err)
	}

	cases := []Move{
		{2, 2},  // blocked (own cell)
		{2, 3},  // not a knight move
		{-1, 0}, // out of bounds
		{5, 5},  // out of bounds
	}
	for _, m := range cases {
		if _, err := p.Move(m); err == nil {
			t.Errorf("move %v: expected error", m)
		}
	}
}

func TestGameOver(t *testing.T) {
	p := New(Config{Width: 5, Height: 5})
	if over, _ := p.GameOver(); over {
		t.Fatal("fresh game over")
	}

	// player1 cornered at a1 with both escapes blocked.
	stuck, err := FromCells(Config{Width: 3, Height: 3},
		[]Move{{1, 2}, {2, 1}},
		Move{0, 0}, Move{2, 2}, 6)
	if err != nil {
		t.Fatal(err)
	}
	over, winner := stuck.GameOver()
	if !over || winner != Player2 {
		t.Errorf("got over=%v winner=%s, want player2 win", over, winner)
	}
	if !stuck.IsLoser(Player1) {
		t.Error("player1 should be the loser")
	}
	if !stuck.IsWinner(Player2) {
		t.Error("player2 should be the winner")
	}
	if stuck.IsWinner(Player1) || stuck.IsLoser(Player2) {
		t.Error("mirrored predicates disagree")
	}
}

func TestFromCellsValidates(t *testing.T) {
	if _, err := FromCells(Config{Width: 3, Height: 3},
		[]Move{{3, 0}}, NoMove, NoMove, 0); err == nil {
		t.Error("out-of-bounds blocked cell accepted")
	}
	if _, err := FromCells(Config{Width: 3, Height: 3},
		nil, Move{0, 3}, NoMove, 0); err == nil {
		t.Error("out-of-bounds player accepted")
	}
	if _, err := FromCells(Config{Width: 9, Height: 8},
		nil, NoMove, NoMove, 0); err == nil {
		t.Error("oversized board accepted")
	}
}
