package selfplay

import (
	"context"
	"log"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kestrelgames/isolator/ai"
	"github.com/kestrelgames/isolator/isolation"
)

type Config struct {
	Games int

	Verbose bool

	P1, P2 string

	Width  int
	Height int
	Debug  int

	Iterative bool

	Swap    bool
	Threads int
	Seed    int64
	Cutoff  int
	Limit   time.Duration
}

type Stats struct {
	Players [2]struct {
		Wins       int
		FirstWins  int
		SecondWins int
	}
	First, Second int
	Cutoff        int

	Games []Result `json:"-"`
}

func (s *Stats) Count() int {
	return s.First + s.Second + s.Cutoff
}

type gameSpec struct {
	c      *Config
	i      int
	seed   int64
	p1seat isolation.Player
}

type Result struct {
	spec   gameSpec
	Final  *isolation.Position
	Moves  []isolation.Move
	Winner isolation.Player
}

// P1Seat reports which seat the first configured agent occupied.
func (r *Result) P1Seat() isolation.Player {
	return r.spec.p1seat
}

func (r *Result) Index() int {
	return r.spec.i
}

func Simulate(c *Config) Stats {
	var st Stats
	rc := make(chan Result)
	go startGames(c, rc)
	for r := range rc {
		if c.Verbose {
			log.Printf("game n=%d plies=%d p1seat=%s winner=%s",
				r.spec.i, r.Final.MoveCount(), r.spec.p1seat, r.Winner)
		}
		switch r.Winner {
		case isolation.Player1:
			st.First++
		case isolation.Player2:
			st.Second++
		default:
			st.Cutoff++
		}
		if r.Winner != isolation.NoPlayer {
			pst := &st.Players[0]
			if r.Winner != r.spec.p1seat {
				pst = &st.Players[1]
			}
			pst.Wins++
			if r.Winner == isolation.Player1 {
				pst.FirstWins++
			} else {
				pst.SecondWins++
			}
		}
		st.Games = append(st.Games, r)
	}
	return st
}

func startGames(c *Config, rc chan<- Result) {
	gc := make(chan gameSpec)
	var grp errgroup.Group
	for i := 0; i < c.Threads; i++ {
		grp.Go(func() error {
			worker(c, gc, rc)
			return nil
		})
	}
	r := rand.New(rand.NewSource(c.Seed))
	n := c.Games
	if c.Swap {
		n *= 2
	}
	for g := 0; g < n; g++ {
		p1seat := isolation.Player1
		if c.Swap && g%2 == 1 {
			p1seat = isolation.Player2
		}
		gc <- gameSpec{
			c:      c,
			i:      g,
			seed:   r.Int63(),
			p1seat: p1seat,
		}
	}
	close(gc)
	grp.Wait()
	close(rc)
}

func worker(c *Config, games <-chan gameSpec, out chan<- Result) {
	for g := range games {
		r := rand.New(rand.NewSource(g.seed))
		first := buildAgent(c, c.P1, r.Int63())
		second := buildAgent(c, c.P2, r.Int63())
		if g.p1seat != isolation.Player1 {
			first, second = second, first
		}

		var ms []isolation.Move
		p := isolation.New(isolation.Config{Width: c.Width, Height: c.Height})
		var winner isolation.Player
		for i := 0; i < c.Cutoff; i++ {
			var m isolation.Move
			ctx := context.Background()
			var cancel context.CancelFunc
			if c.Limit != 0 {
				ctx, cancel = context.WithTimeout(ctx, c.Limit)
			}
			if p.ToMove() == isolation.Player1 {
				m = first.GetMove(ctx, p)
			} else {
				m = second.GetMove(ctx, p)
			}
			if cancel != nil {
				cancel()
			}
			next, e := p.Move(m)
			if e != nil {
				// An illegal or sentinel move forfeits.
				winner = p.ToMove().Opponent()
				break
			}
			ms = append(ms, m)
			p = next
			if over, w := p.GameOver(); over {
				winner = w
				break
			}
		}
		out <- Result{
			spec:   g,
			Final:  p,
			Moves:  ms,
			Winner: winner,
		}
	}
}

// buildAgent parses an agent spec: "rand[:seed]", "minimax[:depth]",
// or "alphabeta[:depth]".
func buildAgent(c *Config, s string, seed int64) ai.Player {
	if strings.HasPrefix(s, "rand") {
		if len(s) > len("rand") {
			i, err := strconv.Atoi(s[len("rand:"):])
			if err != nil {
				log.Fatalf("agent %q: %v", s, err)
			}
			seed = int64(i)
		}
		return ai.NewRandom(seed)
	}
	if strings.HasPrefix(s, "minimax") || strings.HasPrefix(s, "alphabeta") {
		prune := strings.HasPrefix(s, "alphabeta")
		name := "minimax"
		if prune {
			name = "alphabeta"
		}
		depth := 3
		if len(s) > len(name) {
			i, err := strconv.Atoi(s[len(name)+1:])
			if err != nil {
				log.Fatalf("agent %q: %v", s, err)
			}
			depth = i
		}
		return ai.NewMinimax(ai.MinimaxConfig{
			Depth:     depth,
			Iterative: c.Iterative,
			Prune:     prune,
			Seed:      seed,
			Debug:     c.Debug,
		})
	}
	log.Fatalf("unparseable agent: %q", s)
	return nil
}
