package selfplay

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"

	"github.com/kestrelgames/isolator/isolation"
	"github.com/kestrelgames/isolator/logs"
	"github.com/kestrelgames/isolator/notation"
)

type Command struct {
	p1   string
	p2   string
	seed int64

	width  int
	height int

	games  int
	cutoff int
	swap   bool

	iterative bool
	debug     int
	limit     time.Duration

	threads int

	db      string
	summary string
	verbose bool
}

func (*Command) Name() string     { return "selfplay" }
func (*Command) Synopsis() string { return "Play two AIs against each other and report results" }
func (*Command) Usage() string {
	return `selfplay [flags]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.p1, "p1", "alphabeta", "player1 agent spec")
	flags.StringVar(&c.p2, "p2", "minimax", "player2 agent spec")
	flags.Int64Var(&c.seed, "seed", 0, "starting random seed")
	flags.IntVar(&c.width, "width", isolation.DefaultWidth, "board width")
	flags.IntVar(&c.height, "height", isolation.DefaultHeight, "board height")
	flags.IntVar(&c.games, "games", 10, "number of games to play per seat")
	flags.IntVar(&c.cutoff, "cutoff", 120, "cut games off after how many plies")
	flags.BoolVar(&c.swap, "swap", true, "swap seats each game")
	flags.BoolVar(&c.iterative, "iterative", true, "agents search with iterative deepening")
	flags.IntVar(&c.debug, "debug", 0, "debug level")
	flags.DurationVar(&c.limit, "limit", 100*time.Millisecond, "amount of time to search each move")
	flags.IntVar(&c.threads, "threads", 4, "number of parallel threads")
	flags.StringVar(&c.db, "db", "", "record results to a sqlite database")
	flags.StringVar(&c.summary, "summary", "", "write summary JSON file")
	flags.BoolVar(&c.verbose, "v", false, "verbose output")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.seed == 0 {
		c.seed = time.Now().Unix()
	}

	cfg := &Config{
		Games:     c.games,
		Verbose:   c.verbose,
		P1:        c.p1,
		P2:        c.p2,
		Width:     c.width,
		Height:    c.height,
		Debug:     c.debug,
		Iterative: c.iterative,
		Swap:      c.swap,
		Threads:   c.threads,
		Seed:      c.seed,
		Cutoff:    c.cutoff,
		Limit:     c.limit,
	}

	st := Simulate(cfg)

	if c.db != "" {
		if err := c.record(c.db, &st); err != nil {
			log.Println("recording matches: ", err.Error())
		}
	}
	if c.summary != "" {
		if err := c.writeSummary(c.summary, &st); err != nil {
			log.Println("writing summary: ", err.Error())
		}
	}

	log.Printf("done games=%d seed=%d cutoff=%d first=%d second=%d limit=%s",
		len(st.Games), c.seed, st.Cutoff, st.First, st.Second, c.limit)

	tw := tabwriter.NewWriter(os.Stderr, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\tfirst\tsecond\tsum\n")
	fmt.Fprintf(tw, "p1\t%d\t%d\t%d\n", st.Players[0].FirstWins, st.Players[0].SecondWins, st.Players[0].Wins)
	fmt.Fprintf(tw, "p2\t%d\t%d\t%d\n", st.Players[1].FirstWins, st.Players[1].SecondWins, st.Players[1].Wins)
	fmt.Fprintf(tw, "sum\t%d\t%d\t%d\n",
		st.Players[0].FirstWins+st.Players[1].FirstWins,
		st.Players[0].SecondWins+st.Players[1].SecondWins,
		st.Players[0].Wins+st.Players[1].Wins,
	)
	tw.Flush()

	return subcommands.ExitSuccess
}

func (c *Command) record(path string, st *Stats) error {
	repo, err := logs.Open(path)
	if err != nil {
		return err
	}
	defer repo.Close()

	now := time.Now()
	day := now.Format("2006-01-02")
	var ms []*logs.Match
	for i := range st.Games {
		r := &st.Games[i]
		p1, p2 := c.p1, c.p2
		if r.P1Seat() != isolation.Player1 {
			p1, p2 = p2, p1
		}
		var winner string
		if r.Winner != isolation.NoPlayer {
			winner = r.Winner.String()
		}
		ms = append(ms, &logs.Match{
			Day:       day,
			ID:        r.Index(),
			Timestamp: now,
			Width:     c.width,
			Height:    c.height,
			Player1:   p1,
			Player2:   p2,
			Winner:    winner,
			Moves:     len(r.Moves),
			Final:     notation.FormatPosition(r.Final),
		})
	}
	return repo.InsertMatches(ms)
}

type Summary struct {
	Cmdline []string
	Player1 string
	Player2 string
	Limit   time.Duration
	Stats   *Stats
}

func (c *Command) writeSummary(path string, stats *Stats) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	summary := Summary{
		Cmdline: os.Args,
		Player1: c.p1,
		Player2: c.p2,
		Limit:   c.limit,
		Stats:   stats,
	}

	bs, err := json.MarshalIndent(&summary, "", "  ")
	if err != nil {
		return err
	}
	f.Write(bs)
	return nil
}
