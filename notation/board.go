package notation

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/kestrelgames/isolator/isolation"
)

// Board notation is a compact single-line position format, in the
// spirit of FEN: rows from the top of the board (highest y) down,
// separated by "/", followed by the move count. Cells are "." (open),
// "#" (blocked), "1" and "2" (player locations, implicitly blocked).
//
//	......./......./...1.../......./..#2.../......./....... 5
//
// The side to move follows from the move count's parity.

func FormatPosition(p *isolation.Position) string {
	var out bytes.Buffer
	for y := p.Height() - 1; y >= 0; y-- {
		if y != p.Height()-1 {
			out.WriteByte('/')
		}
		for x := 0; x < p.Width(); x++ {
			m := isolation.Move{X: x, Y: y}
			switch {
			case m.Equal(p.Location(isolation.Player1)):
				out.WriteByte('1')
			case m.Equal(p.Location(isolation.Player2)):
				out.WriteByte('2')
			case p.Blocked(m):
				out.WriteByte('#')
			default:
				out.WriteByte('.')
			}
		}
	}
	fmt.Fprintf(&out, " %d", p.MoveCount())
	return out.String()
}

func ParsePosition(s string) (*isolation.Position, error) {
	bits := strings.Split(strings.TrimSpace(s), " ")
	if len(bits) != 2 {
		return nil, fmt.Errorf("notation: expected `BOARD MOVES`: %q", s)
	}
	move, err := strconv.Atoi(bits[1])
	if err != nil {
		return nil, fmt.Errorf("notation: bad move count: %q", bits[1])
	}
	rows := strings.Split(bits[0], "/")
	height := len(rows)
	width := len(rows[0])
	var blocked []isolation.Move
	p1, p2 := isolation.NoMove, isolation.NoMove
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("notation: ragged row %d", i)
		}
		y := height - 1 - i
		for x := 0; x < width; x++ {
			m := isolation.Move{X: x, Y: y}
			switch row[x] {
			case '.':
			case '#':
				blocked = append(blocked, m)
			case '1':
				if !p1.Equal(isolation.NoMove) {
					return nil, fmt.Errorf("notation: duplicate player1")
				}
				p1 = m
			case '2':
				if !p2.Equal(isolation.NoMove) {
					return nil, fmt.Errorf("notation: duplicate player2")
				}
				p2 = m
			default:
				return nil, fmt.Errorf("notation: bad cell %q", row[x])
			}
		}
	}
	return isolation.FromCells(
		isolation.Config{Width: width, Height: height},
		blocked, p1, p2, move,
	)
}
