package isolation

import "fmt"

type Player byte

const (
	NoPlayer Player = iota
	Player1
	Player2
)

func (p Player) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	case NoPlayer:
		return "no player"
	default:
		panic(fmt.Sprintf("bad player: %x", int(p)))
	}
}

func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	case NoPlayer:
		return NoPlayer
	default:
		panic(fmt.Sprintf("bad player: %x", int(p)))
	}
}
