package notation

import (
	"errors"
	"regexp"

	"github.com/kestrelgames/isolator/isolation"
)

var moveRE = regexp.MustCompile(`^([a-h])([1-8])$`)

// ParseMove parses an algebraic cell ("d3"). "--" is the no-move
// sentinel.
func ParseMove(move string) (isolation.Move, error) {
	if move == "--" {
		return isolation.NoMove, nil
	}
	groups := moveRE.FindStringSubmatch(move)
	if groups == nil {
		return isolation.Move{}, errors.New("illegal move")
	}
	x := groups[1][0] - 'a'
	y := groups[2][0] - '1'
	return isolation.Move{X: int(x), Y: int(y)}, nil
}

func FormatMove(m isolation.Move) string {
	if m.Equal(isolation.NoMove) {
		return "--"
	}
	return string([]byte{byte('a' + m.X), byte('1' + m.Y)})
}
