package ai

import (
	"errors"
	"log"
	"math"
	"math/rand"
	"time"

	"golang.org/x/net/context"

	"github.com/kestrelgames/isolator/isolation"
)

// DefaultTimeout is the remaining-time threshold below which a search
// frame treats the budget as exhausted. It must leave enough headroom
// for the in-flight frames to unwind and SelectMove to return.
const DefaultTimeout = 10 * time.Millisecond

const defaultDepth = 3

type EvaluationFunc func(g isolation.State, pl isolation.Player) float64

// Clock reports the wall-clock time remaining for the current move.
// It is queried at every search frame and never mutated.
type Clock func() time.Duration

type MinimaxConfig struct {
	// Depth is the ply limit for a fixed-depth search. It is
	// ignored when Iterative is set.
	Depth int
	// Iterative selects unbounded iterative deepening, limited
	// only by the Clock.
	Iterative bool
	// Prune selects the alpha-beta variant. Pruning never changes
	// the computed root score, only the number of leaves visited.
	Prune bool
	// Timeout is the abort threshold; see DefaultTimeout.
	Timeout time.Duration

	Seed  int64
	Debug int

	Evaluate EvaluationFunc
}

type MinimaxAI struct {
	cfg  MinimaxConfig
	rand *rand.Rand

	st Stats

	evaluate EvaluationFunc
}

type Stats struct {
	Depth     int
	Visited   uint64
	Evaluated uint64
	Terminal  uint64
	CutNodes  uint64
}

func NewMinimax(cfg MinimaxConfig) *MinimaxAI {
	m := &MinimaxAI{cfg: cfg}
	if m.cfg.Depth == 0 {
		m.cfg.Depth = defaultDepth
	}
	if m.cfg.Timeout == 0 {
		m.cfg.Timeout = DefaultTimeout
	}
	m.evaluate = cfg.Evaluate
	if m.evaluate == nil {
		m.evaluate = DefaultEvaluate
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().Unix()
	}
	m.rand = rand.New(rand.NewSource(seed))
	return m
}

// Stats returns the counters for the most recent SelectMove call,
// accumulated over every completed and aborted depth iteration.
func (m *MinimaxAI) Stats() Stats {
	return m.st
}

// errTimeout aborts the in-flight depth iteration. It propagates up
// through every active search frame and is absorbed by SelectMove; it
// is never visible to callers.
var errTimeout = errors.New("ai: time budget exhausted")

type budget struct {
	remaining Clock
	threshold time.Duration
}

func (b *budget) expired() bool {
	return b.remaining() < b.threshold
}

type searchResult struct {
	score float64
	move  isolation.Move
}

// direction parameterizes one search routine over both the maximizing
// and minimizing halves of minimax, so the traversal, cutoff, and
// tie-break logic cannot drift apart.
type direction int8

const (
	maximize direction = 1
	minimize direction = -1
)

func (d direction) flip() direction {
	return -d
}

func (d direction) worst() float64 {
	return math.Inf(-int(d))
}

// better reports whether cand should replace best: a strict score
// improvement, or an exact tie broken toward the lexicographically
// greatest move when maximizing and the smallest when minimizing.
func (d direction) better(cand, best searchResult) bool {
	if cand.score != best.score {
		if d == maximize {
			return cand.score > best.score
		}
		return cand.score < best.score
	}
	if d == maximize {
		return cand.move.Greater(best.move)
	}
	return cand.move.Less(best.move)
}

// cutoff reports whether best already falls outside the (α, β)
// window, proving the remaining siblings irrelevant.
func (d direction) cutoff(score, α, β float64) bool {
	if d == maximize {
		return score >= β
	}
	return score <= α
}

func (d direction) tighten(score, α, β float64) (float64, float64) {
	if d == maximize && score > α {
		α = score
	}
	if d == minimize && score < β {
		β = score
	}
	return α, β
}

// SelectMove picks a move for the side to move in g before the clock
// runs out. It always returns: an exhausted budget falls back to the
// best move from the last fully completed depth, or failing that a
// random legal move. The only state with no answer is one with no
// legal moves, which yields the NoMove sentinel.
func (m *MinimaxAI) SelectMove(g isolation.State, legalMoves []isolation.Move, remaining Clock) isolation.Move {
	m.st = Stats{}
	if len(legalMoves) == 0 {
		return isolation.NoMove
	}
	if g.MoveCount() < 2 {
		// Opening book: claim the center while it is still open. On
		// the second placement the opponent may already hold it, in
		// which case we search like any other move.
		center := isolation.Move{X: g.Width() / 2, Y: g.Height() / 2}
		if g.MoveCount() == 0 {
			return center
		}
		for _, lm := range legalMoves {
			if lm.Equal(center) {
				return center
			}
		}
	}

	b := &budget{remaining: remaining, threshold: m.cfg.Timeout}
	me := g.ToMove()
	best := legalMoves[m.rand.Intn(len(legalMoves))]
	bestScore := math.Inf(-1)

	depth := 1
	if !m.cfg.Iterative {
		depth = m.cfg.Depth
	}
	top := time.Now()
	for {
		if b.expired() {
			break
		}
		start := time.Now()
		r, err := m.search(g, me, depth, maximize, math.Inf(-1), math.Inf(1), b)
		if err != nil {
			break
		}
		m.st.Depth = depth
		if m.cfg.Debug > 0 {
			log.Printf("[minimax] deepen: depth=%d score=%f time=%s total=%s evaluated=%d cut=%d",
				depth, r.score,
				time.Now().Sub(start),
				time.Now().Sub(top),
				m.st.Evaluated,
				m.st.CutNodes)
		}
		if r.score > bestScore {
			bestScore = r.score
			best = r.move
		}
		if !m.cfg.Iterative {
			break
		}
		depth++
	}
	return best
}

// Analyze runs a single search at the configured fixed depth and
// reports the chosen move, its score, and the visit counters. It
// bypasses the opening and fallback policies; an exhausted budget
// yields the NoMove sentinel.
func (m *MinimaxAI) Analyze(g isolation.State, remaining Clock) (isolation.Move, float64, Stats) {
	m.st = Stats{}
	b := &budget{remaining: remaining, threshold: m.cfg.Timeout}
	r, err := m.search(g, g.ToMove(), m.cfg.Depth, maximize, math.Inf(-1), math.Inf(1), b)
	if err != nil {
		return isolation.NoMove, 0, m.st
	}
	m.st.Depth = m.cfg.Depth
	return r.move, r.score, m.st
}

// search is the shared value computation for both variants and both
// directions. Leaves are always scored from me's perspective, not the
// side to move's. It returns errTimeout, and no partial result, the
// moment the budget runs dry.
func (m *MinimaxAI) search(g isolation.State, me isolation.Player, depth int, dir direction, α, β float64, b *budget) (searchResult, error) {
	if b.expired() {
		return searchResult{}, errTimeout
	}
	moves := g.LegalMoves(g.ToMove())
	if depth == 0 || len(moves) == 0 {
		m.st.Evaluated++
		if len(moves) == 0 {
			m.st.Terminal++
		}
		return searchResult{m.evaluate(g, me), isolation.NoMove}, nil
	}

	m.st.Visited++
	best := searchResult{dir.worst(), isolation.NoMove}
	for _, mv := range moves {
		if b.expired() {
			return searchResult{}, errTimeout
		}
		r, err := m.search(g.Forecast(mv), me, depth-1, dir.flip(), α, β, b)
		if err != nil {
			return searchResult{}, err
		}
		if cand := (searchResult{r.score, mv}); dir.better(cand, best) {
			best = cand
		}
		if m.cfg.Prune {
			if dir.cutoff(best.score, α, β) {
				m.st.CutNodes++
				return best, nil
			}
			α, β = dir.tighten(best.score, α, β)
		}
	}
	return best, nil
}

// GetMove adapts SelectMove to the Player interface, deriving the
// Clock from the context deadline.
func (m *MinimaxAI) GetMove(ctx context.Context, g isolation.State) isolation.Move {
	remaining := Clock(func() time.Duration {
		return time.Duration(math.MaxInt64)
	})
	if deadline, ok := ctx.Deadline(); ok {
		remaining = func() time.Duration {
			return deadline.Sub(time.Now())
		}
	}
	return m.SelectMove(g, g.LegalMoves(g.ToMove()), remaining)
}
