package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/kestrelgames/isolator/isolation"
	"github.com/kestrelgames/isolator/notation"
)

type Player interface {
	GetMove(p *isolation.Position) isolation.Move
}

type Glyphs struct {
	Player1 string
	Player2 string
	Blocked string
	Open    string
}

type CLI struct {
	moves []isolation.Move
	p     *isolation.Position

	Config isolation.Config
	Glyphs *Glyphs
	Out    io.Writer
	P1     Player
	P2     Player
}

var DefaultGlyphs = Glyphs{
	Player1: "1",
	Player2: "2",
	Blocked: "#",
	Open:    ".",
}

var UnicodeGlyphs = Glyphs{
	Player1: "♞",
	Player2: "♘",
	Blocked: "▦",
	Open:    "·",
}

func (c *CLI) Play() *isolation.Position {
	c.moves = nil
	c.p = isolation.New(c.Config)
	for {
		c.render()
		if over, winner := c.p.GameOver(); over {
			fmt.Fprintf(c.Out, "Game Over! %s wins: %s is isolated.\n",
				winner, winner.Opponent())
			return c.p
		}
		var m isolation.Move
		if c.p.ToMove() == isolation.Player1 {
			m = c.P1.GetMove(c.p)
		} else {
			m = c.P2.GetMove(c.p)
		}
		p, e := c.p.Move(m)
		if e != nil {
			fmt.Fprintln(c.Out, "illegal move:", e)
		} else {
			fmt.Fprintf(c.Out, "%d. %s %s\n",
				c.p.MoveCount()/2+1, c.p.ToMove(), notation.FormatMove(m))
			c.p = p
			c.moves = append(c.moves, m)
		}
	}
}

func (c *CLI) Moves() []isolation.Move {
	return c.moves
}

func (c *CLI) render() {
	RenderBoard(c.Glyphs, c.Out, c.p)
}

func RenderBoard(g *Glyphs, out io.Writer, p *isolation.Position) {
	if g == nil {
		g = &DefaultGlyphs
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "[%s to play]\n", p.ToMove())
	w := tabwriter.NewWriter(out, 2, 4, 1, ' ', 0)
	for y := p.Height() - 1; y >= 0; y-- {
		fmt.Fprintf(w, "%c.\t", '1'+y)
		for x := 0; x < p.Width(); x++ {
			m := isolation.Move{X: x, Y: y}
			switch {
			case m.Equal(p.Location(isolation.Player1)):
				fmt.Fprintf(w, "%s\t", g.Player1)
			case m.Equal(p.Location(isolation.Player2)):
				fmt.Fprintf(w, "%s\t", g.Player2)
			case p.Blocked(m):
				fmt.Fprintf(w, "%s\t", g.Blocked)
			default:
				fmt.Fprintf(w, "%s\t", g.Open)
			}
		}
		fmt.Fprintf(w, "\n")
	}
	fmt.Fprintf(w, "\t")
	for x := 0; x < p.Width(); x++ {
		fmt.Fprintf(w, "%c.\t", 'a'+x)
	}
	fmt.Fprintf(w, "\n")
	w.Flush()
}
