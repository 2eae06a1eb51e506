package isolation

// State is the board contract the search engine is written against.
// *Position implements it; tests substitute synthetic game trees.
//
// Implementations must be pure from the engine's point of view:
// Forecast returns a fresh successor and never mutates the receiver,
// and LegalMoves returns moves in a stable, deterministic order.
type State interface {
	LegalMoves(pl Player) []Move
	Forecast(m Move) State
	IsWinner(pl Player) bool
	IsLoser(pl Player) bool
	Location(pl Player) Move
	Width() int
	Height() int
	MoveCount() int
	ToMove() Player
}
