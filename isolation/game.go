package isolation

import "errors"

type Config struct {
	Width  int
	Height int
}

const (
	DefaultWidth  = 7
	DefaultHeight = 7

	// The blocked set is a single 64-bit mask.
	maxCells = 64
)

// knightOffsets fixes the enumeration order of moves for a placed
// player. Search determinism depends on this order never changing.
var knightOffsets = [8]Move{
	{-2, -1}, {-2, 1},
	{-1, -2}, {-1, 2},
	{1, -2}, {1, 2},
	{2, -1}, {2, 1},
}

type Position struct {
	cfg     *Config
	blocked uint64
	p1, p2  Move
	move    int
}

func New(g Config) *Position {
	if g.Width == 0 {
		g.Width = DefaultWidth
	}
	if g.Height == 0 {
		g.Height = DefaultHeight
	}
	if g.Width*g.Height > maxCells {
		panic("isolation: board too large")
	}
	return &Position{
		cfg: &g,
		p1:  NoMove,
		p2:  NoMove,
	}
}

// FromCells reconstructs a position from an explicit blocked-cell
// list, the two player locations (NoMove if unplaced), and a move
// count. Player locations are blocked implicitly.
func FromCells(g Config, blocked []Move, p1, p2 Move, move int) (*Position, error) {
	if g.Width*g.Height > maxCells {
		return nil, errors.New("board too large")
	}
	p := New(g)
	p.move = move
	for _, c := range blocked {
		if !p.inBounds(c) {
			return nil, errors.New("blocked cell out of bounds")
		}
		p.blocked |= p.bit(c)
	}
	for _, loc := range []Move{p1, p2} {
		if loc.Equal(NoMove) {
			continue
		}
		if !p.inBounds(loc) {
			return nil, errors.New("player location out of bounds")
		}
		p.blocked |= p.bit(loc)
	}
	p.p1 = p1
	p.p2 = p2
	return p, nil
}

func (p *Position) Width() int {
	return p.cfg.Width
}

func (p *Position) Height() int {
	return p.cfg.Height
}

func (p *Position) MoveCount() int {
	return p.move
}

func (p *Position) ToMove() Player {
	if p.move%2 == 0 {
		return Player1
	}
	return Player2
}

func (p *Position) Location(pl Player) Move {
	if pl == Player1 {
		return p.p1
	}
	return p.p2
}

// Center is the cell returned by the engine's opening policy.
func (p *Position) Center() Move {
	return Move{p.cfg.Width / 2, p.cfg.Height / 2}
}

func (p *Position) bit(m Move) uint64 {
	return 1 << uint(m.Y*p.cfg.Width+m.X)
}

func (p *Position) inBounds(m Move) bool {
	return m.X >= 0 && m.X < p.cfg.Width && m.Y >= 0 && m.Y < p.cfg.Height
}

func (p *Position) Blocked(m Move) bool {
	return p.blocked&p.bit(m) != 0
}

// LegalMoves lists pl's moves in a stable order: an unplaced player
// may occupy any open cell, scanned row by row; a placed player moves
// like a chess knight, in knightOffsets order.
func (p *Position) LegalMoves(pl Player) []Move {
	loc := p.Location(pl)
	if loc.Equal(NoMove) {
		var ms []Move
		for y := 0; y < p.cfg.Height; y++ {
			for x := 0; x < p.cfg.Width; x++ {
				m := Move{x, y}
				if !p.Blocked(m) {
					ms = append(ms, m)
				}
			}
		}
		return ms
	}
	var ms []Move
	for _, d := range knightOffsets {
		m := Move{loc.X + d.X, loc.Y + d.Y}
		if p.inBounds(m) && !p.Blocked(m) {
			ms = append(ms, m)
		}
	}
	return ms
}

// Forecast applies a move for the side to move and returns the
// successor. It does not validate the move; use Move for that.
func (p *Position) Forecast(m Move) State {
	return p.apply(m)
}

func (p *Position) apply(m Move) *Position {
	next := *p
	next.blocked |= next.bit(m)
	if p.ToMove() == Player1 {
		next.p1 = m
	} else {
		next.p2 = m
	}
	next.move++
	return &next
}

// Move validates and applies a move for the side to move.
func (p *Position) Move(m Move) (*Position, error) {
	for _, legal := range p.LegalMoves(p.ToMove()) {
		if legal.Equal(m) {
			return p.apply(m), nil
		}
	}
	return nil, errors.New("illegal move")
}

// IsLoser reports whether pl is the active player and has nowhere to
// go. IsWinner is the mirror: the opponent is to move and is stuck.
func (p *Position) IsLoser(pl Player) bool {
	return pl == p.ToMove() && len(p.LegalMoves(pl)) == 0
}

func (p *Position) IsWinner(pl Player) bool {
	return pl != p.ToMove() && len(p.LegalMoves(p.ToMove())) == 0
}

func (p *Position) GameOver() (over bool, winner Player) {
	if len(p.LegalMoves(p.ToMove())) == 0 {
		return true, p.ToMove().Opponent()
	}
	return false, NoPlayer
}
