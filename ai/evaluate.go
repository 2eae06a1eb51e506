package ai

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/kestrelgames/isolator/isolation"
)

// Weights tunes the default positional evaluation. The terms mirror
// the shape of the heuristic, not a correctness contract: any setting
// yields a deterministic, zero-sum-consistent evaluation.
type Weights struct {
	// OwnMoves and OppMoves weight the mobility differential,
	// normalized by the number of open cells left.
	OwnMoves float64
	OppMoves float64

	// Survival scales the penalty for having fewer than
	// SurvivalFloor moves available.
	Survival      float64
	SurvivalFloor float64

	// CenterScale damps the early-game preference for cells near
	// the board center. Standing exactly on the center scores
	// +Inf.
	CenterScale float64
}

var DefaultWeights = Weights{
	OwnMoves: 1,
	OppMoves: 2,

	Survival:      3,
	SurvivalFloor: 3,

	CenterScale: 5,
}

func MakeEvaluator(w *Weights) EvaluationFunc {
	return func(g isolation.State, pl isolation.Player) float64 {
		return evaluate(w, g, pl)
	}
}

var DefaultEvaluate = MakeEvaluator(&DefaultWeights)

// EvaluateMobility is the plain move-count differential. It is a
// cheap baseline for tournaments and tests.
func EvaluateMobility(g isolation.State, pl isolation.Player) float64 {
	if g.IsLoser(pl) {
		return math.Inf(-1)
	}
	if g.IsWinner(pl) {
		return math.Inf(1)
	}
	return float64(len(g.LegalMoves(pl)) - len(g.LegalMoves(pl.Opponent())))
}

func evaluate(w *Weights, g isolation.State, pl isolation.Player) float64 {
	if g.IsLoser(pl) {
		return math.Inf(-1)
	}
	if g.IsWinner(pl) {
		return math.Inf(1)
	}
	remaining := remainingCells(g)
	return mobilityScore(w, g, pl, remaining) +
		survivalScore(w, g, pl, remaining) +
		positionalScore(w, g, pl, remaining)
}

func remainingCells(g isolation.State) float64 {
	return float64(g.Width()*g.Height() - g.MoveCount())
}

func mobilityScore(w *Weights, g isolation.State, pl isolation.Player, remaining float64) float64 {
	own := float64(len(g.LegalMoves(pl)))
	opp := float64(len(g.LegalMoves(pl.Opponent())))
	return (w.OwnMoves*own - w.OppMoves*opp) / remaining
}

func survivalScore(w *Weights, g isolation.State, pl isolation.Player, remaining float64) float64 {
	own := float64(len(g.LegalMoves(pl)))
	return w.Survival * (own - w.SurvivalFloor) / remaining
}

func positionalScore(w *Weights, g isolation.State, pl isolation.Player, remaining float64) float64 {
	loc := g.Location(pl)
	if loc.Equal(isolation.NoMove) {
		return 0
	}
	center := isolation.Move{X: g.Width() / 2, Y: g.Height() / 2}
	dist := abs(loc.X-center.X) + abs(loc.Y-center.Y)
	if dist == 0 {
		return math.Inf(1)
	}
	return remaining / (float64(dist) * w.CenterScale)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// ExplainScore writes a per-term breakdown of the default evaluation
// for pl at g.
func ExplainScore(w *Weights, out io.Writer, g isolation.State, pl isolation.Player) {
	tw := tabwriter.NewWriter(out, 4, 8, 1, '\t', 0)
	remaining := remainingCells(g)
	fmt.Fprintf(tw, "own moves\t%d\n", len(g.LegalMoves(pl)))
	fmt.Fprintf(tw, "opp moves\t%d\n", len(g.LegalMoves(pl.Opponent())))
	fmt.Fprintf(tw, "remaining\t%.0f\n", remaining)
	fmt.Fprintf(tw, "mobility\t%f\n", mobilityScore(w, g, pl, remaining))
	fmt.Fprintf(tw, "survival\t%f\n", survivalScore(w, g, pl, remaining))
	fmt.Fprintf(tw, "positional\t%f\n", positionalScore(w, g, pl, remaining))
	fmt.Fprintf(tw, "total\t%f\n", evaluate(w, g, pl))
	tw.Flush()
}
