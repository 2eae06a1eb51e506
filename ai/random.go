package ai

import (
	"math/rand"

	"golang.org/x/net/context"

	"github.com/kestrelgames/isolator/isolation"
)

type RandomAI struct {
	r *rand.Rand
}

func (r *RandomAI) GetMove(ctx context.Context, g isolation.State) isolation.Move {
	moves := g.LegalMoves(g.ToMove())
	if len(moves) == 0 {
		return isolation.NoMove
	}
	return moves[r.r.Int31n(int32(len(moves)))]
}

func NewRandom(seed int64) Player {
	return &RandomAI{
		r: rand.New(rand.NewSource(seed)),
	}
}
