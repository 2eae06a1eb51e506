package play

import (
	"bufio"
	"context"
	"flag"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/subcommands"

	"github.com/kestrelgames/isolator/ai"
	"github.com/kestrelgames/isolator/cli"
	"github.com/kestrelgames/isolator/isolation"
)

type Command struct {
	p1     string
	p2     string
	width  int
	height int
	debug  int
	limit  time.Duration

	iterative bool
	unicode   bool
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play Isolation from the command line" }
func (*Command) Usage() string {
	return `play

Play Isolation on the command-line, against a human or AI.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.p1, "p1", "human", "first player")
	flags.StringVar(&c.p2, "p2", "human", "second player")
	flags.IntVar(&c.width, "width", isolation.DefaultWidth, "board width")
	flags.IntVar(&c.height, "height", isolation.DefaultHeight, "board height")
	flags.IntVar(&c.debug, "debug", 0, "debug level")
	flags.DurationVar(&c.limit, "limit", time.Second, "ai time limit")
	flags.BoolVar(&c.iterative, "iterative", true, "ai searches with iterative deepening")

	flags.BoolVar(&c.unicode, "unicode", false, "render board with utf8 glyphs")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := bufio.NewReader(os.Stdin)
	st := &cli.CLI{
		Config: isolation.Config{Width: c.width, Height: c.height},
		Out:    os.Stdout,
		P1:     c.parsePlayer(in, c.p1),
		P2:     c.parsePlayer(in, c.p2),
		Glyphs: glyphs(c.unicode),
	}
	st.Play()
	return subcommands.ExitSuccess
}

func glyphs(unicode bool) *cli.Glyphs {
	if unicode {
		return &cli.UnicodeGlyphs
	}
	return &cli.DefaultGlyphs
}

type aiWrapper struct {
	limit time.Duration
	p     ai.Player
}

func (a *aiWrapper) GetMove(p *isolation.Position) isolation.Move {
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(a.limit))
	defer cancel()
	return a.p.GetMove(ctx, p)
}

func (c *Command) parsePlayer(in *bufio.Reader, s string) cli.Player {
	if s == "human" {
		return cli.NewCLIPlayer(os.Stdout, in)
	}
	if strings.HasPrefix(s, "rand") {
		var seed int64
		if len(s) > len("rand") {
			i, err := strconv.Atoi(s[len("rand:"):])
			if err != nil {
				log.Fatal(err)
			}
			seed = int64(i)
		}
		return &aiWrapper{c.limit, ai.NewRandom(seed)}
	}
	if strings.HasPrefix(s, "minimax") || strings.HasPrefix(s, "alphabeta") {
		prune := strings.HasPrefix(s, "alphabeta")
		name := "minimax"
		if prune {
			name = "alphabeta"
		}
		var depth = 3
		if len(s) > len(name) {
			i, err := strconv.Atoi(s[len(name)+1:])
			if err != nil {
				log.Fatal(err)
			}
			depth = i
		}
		p := ai.NewMinimax(ai.MinimaxConfig{
			Depth:     depth,
			Iterative: c.iterative,
			Prune:     prune,
			Debug:     c.debug,
		})
		return &aiWrapper{c.limit, p}
	}
	log.Fatalf("unparseable player: %s", s)
	return nil
}
