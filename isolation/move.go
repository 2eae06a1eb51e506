package isolation

// A Move names the cell a player occupies next. Moves are compared
// lexicographically (X, then Y); the search engine's tie-break depends
// on this ordering.
type Move struct {
	X, Y int
}

// NoMove is the sentinel returned when a player has no legal moves.
var NoMove = Move{-1, -1}

func (m Move) Equal(o Move) bool {
	return m.X == o.X && m.Y == o.Y
}

func (m Move) Less(o Move) bool {
	if m.X != o.X {
		return m.X < o.X
	}
	return m.Y < o.Y
}

func (m Move) Greater(o Move) bool {
	return o.Less(m)
}
