package ai

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/kestrelgames/isolator/gametest"
	"github.com/kestrelgames/isolator/isolation"
)

func TestEvaluateTerminal(t *testing.T) {
	// player1 sits in the a1 corner with both knight escapes
	// blocked, and is to move.
	p := gametest.Position(".#2/..#/1.. 6")
	if len(p.LegalMoves(isolation.Player1)) != 0 {
		t.Fatalf("fixture: player1 has moves %v", p.LegalMoves(isolation.Player1))
	}
	if got := DefaultEvaluate(p, isolation.Player1); !math.IsInf(got, -1) {
		t.Errorf("loser: got %f, want -Inf", got)
	}
	if got := DefaultEvaluate(p, isolation.Player2); !math.IsInf(got, 1) {
		t.Errorf("winner: got %f, want +Inf", got)
	}
}

func TestEvaluateCenter(t *testing.T) {
	p := gametest.Position("...../...../..1../...../2.... 4")
	if got := DefaultEvaluate(p, isolation.Player1); !math.IsInf(got, 1) {
		t.Errorf("at center: got %f, want +Inf", got)
	}
	if got := DefaultEvaluate(p, isolation.Player2); math.IsInf(got, 0) {
		t.Errorf("off center: got %f, want finite", got)
	}
}

func TestEvaluateDeterminism(t *testing.T) {
	p := gametest.Position("...../.2.../...../..1../..... 8")
	a := DefaultEvaluate(p, isolation.Player1)
	b := DefaultEvaluate(p, isolation.Player1)
	if a != b {
		t.Errorf("same state scored %f then %f", a, b)
	}
}

func TestEvaluateMobility(t *testing.T) {
	p := gametest.Position("...../...../..1../...../2.... 4")
	// player1 has all 8 knight moves from the center, player2 only
	// 2 from the corner.
	if got := EvaluateMobility(p, isolation.Player1); got != 6 {
		t.Errorf("mobility: got %f, want 6", got)
	}
	if got := EvaluateMobility(p, isolation.Player2); got != -6 {
		t.Errorf("mobility: got %f, want -6", got)
	}
}

func TestEvaluateUnplaced(t *testing.T) {
	// Neither player placed yet: the positional term contributes
	// nothing and the score stays finite.
	p := isolation.New(isolation.Config{Width: 5, Height: 5})
	if got := DefaultEvaluate(p, isolation.Player1); math.IsInf(got, 0) || math.IsNaN(got) {
		t.Errorf("empty board: got %f, want finite", got)
	}
}

func TestExplainScore(t *testing.T) {
	p := gametest.Position("...../.2.../...../..1../..... 8")
	var buf bytes.Buffer
	ExplainScore(&DefaultWeights, &buf, p, isolation.Player1)
	for _, want := range []string{"mobility", "survival", "positional", "total"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("missing %q in:\n%s", want, buf.String())
		}
	}
}
