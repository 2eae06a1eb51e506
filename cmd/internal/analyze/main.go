package analyze

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/kestrelgames/isolator/ai"
	"github.com/kestrelgames/isolator/notation"
)

type Command struct {
	depth   int
	prune   bool
	both    bool
	explain bool
	seed    int64
	debug   int

	timeLimit time.Duration
}

func (*Command) Name() string     { return "analyze" }
func (*Command) Synopsis() string { return "Evaluate an Isolation position" }
func (*Command) Usage() string {
	return `analyze [options] "POSITION"

Evaluate a position in board notation (e.g. "..2/..#/1.. 4") and
report the engine's chosen move.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.depth, "depth", 5, "search depth")
	flags.BoolVar(&c.prune, "prune", true, "use alpha-beta pruning")
	flags.BoolVar(&c.both, "both", false, "run both variants and compare")
	flags.BoolVar(&c.explain, "explain", false, "explain the static evaluation")
	flags.Int64Var(&c.seed, "seed", 1, "random seed")
	flags.IntVar(&c.debug, "debug", 0, "debug level")
	flags.DurationVar(&c.timeLimit, "limit", time.Minute, "analysis time limit")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(flag.Args()) != 1 {
		flag.Usage()
		return subcommands.ExitUsageError
	}
	p, err := notation.ParsePosition(flag.Arg(0))
	if err != nil {
		log.Println("parse: ", err.Error())
		return subcommands.ExitFailure
	}

	if c.explain {
		ai.ExplainScore(&ai.DefaultWeights, os.Stdout, p, p.ToMove())
	}

	deadline := time.Now().Add(c.timeLimit)
	remaining := func() time.Duration {
		return deadline.Sub(time.Now())
	}

	variants := []bool{c.prune}
	if c.both {
		variants = []bool{false, true}
	}
	for _, prune := range variants {
		engine := ai.NewMinimax(ai.MinimaxConfig{
			Depth: c.depth,
			Prune: prune,
			Seed:  c.seed,
			Debug: c.debug,
		})
		start := time.Now()
		m, score, st := engine.Analyze(p, ai.Clock(remaining))
		name := "minimax"
		if prune {
			name = "alphabeta"
		}
		log.Printf("[%s] move=%s score=%f depth=%d visited=%d evaluated=%d cut=%d time=%s",
			name, notation.FormatMove(m), score,
			st.Depth, st.Visited, st.Evaluated, st.CutNodes,
			time.Now().Sub(start))
	}

	return subcommands.ExitSuccess
}
