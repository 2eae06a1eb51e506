package gametest

import (
	"strings"

	"github.com/kestrelgames/isolator/isolation"
	"github.com/kestrelgames/isolator/notation"
)

func Move(s string) isolation.Move {
	m, e := notation.ParseMove(s)
	if e != nil {
		panic(e)
	}
	return m
}

func Moves(s string) []isolation.Move {
	if s == "" {
		return nil
	}
	bits := strings.Split(s, " ")
	var ms []isolation.Move
	for _, b := range bits {
		ms = append(ms, Move(b))
	}
	return ms
}

func FormatMoves(ms []isolation.Move) string {
	var bits []string
	for _, m := range ms {
		bits = append(bits, notation.FormatMove(m))
	}
	return strings.Join(bits, " ")
}

// Position builds a board from the compact notation, e.g.
// "..2/..#/1.. 4".
func Position(s string) *isolation.Position {
	p, e := notation.ParsePosition(s)
	if e != nil {
		panic(e)
	}
	return p
}

// Play applies a space-separated move sequence to a fresh board.
func Play(g isolation.Config, ms string) *isolation.Position {
	p := isolation.New(g)
	for _, m := range Moves(ms) {
		next, e := p.Move(m)
		if e != nil {
			panic(e)
		}
		p = next
	}
	return p
}
