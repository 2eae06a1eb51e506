package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/kestrelgames/isolator/isolation"
	"github.com/kestrelgames/isolator/notation"
)

func NewCLIPlayer(out io.Writer, in *bufio.Reader) Player {
	return &cliPlayer{out, in}
}

type cliPlayer struct {
	out io.Writer
	in  *bufio.Reader
}

func (c *cliPlayer) GetMove(p *isolation.Position) isolation.Move {
	for {
		fmt.Fprintf(c.out, "%s> ", p.ToMove())
		line, err := c.in.ReadString('\n')
		if err != nil {
			panic(err)
		}
		m, err := notation.ParseMove(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(c.out, "parse error: ", err)
			continue
		}
		return m
	}
}
