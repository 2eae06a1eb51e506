package logs

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/mattn/go-sqlite3" // repository assumes sqlite
)

type Repository struct {
	db *sqlx.DB
}

// Match is one finished game between two configured agents.
type Match struct {
	Day       string    `db:"day"`
	ID        int       `db:"id"`
	Timestamp time.Time `db:"time"`
	Width     int       `db:"width"`
	Height    int       `db:"height"`
	Player1   string    `db:"player1"`
	Player2   string    `db:"player2"`
	Winner    string    `db:"winner"`
	Moves     int       `db:"moves"`
	Final     string    `db:"final"`
}

func Open(db string) (*Repository, error) {
	sql, err := sqlx.Open("sqlite3", db)
	if err != nil {
		return nil, err
	}
	if _, err = sql.Exec(createMatchTable); err != nil {
		sql.Close()
		return nil, fmt.Errorf("create matches table: %v", err)
	}
	if _, err = sql.Exec(createPlayerView); err != nil {
		sql.Close()
		return nil, fmt.Errorf("create player_matches view: %v", err)
	}
	return &Repository{db: sql}, nil
}

func (r *Repository) InsertMatch(m *Match) error {
	_, err := r.db.NamedExec(insertStmt, m)
	return err
}

func (r *Repository) InsertMatches(ms []*Match) error {
	txn, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer txn.Rollback()
	for _, m := range ms {
		if _, e := txn.NamedExec(insertStmt, m); e != nil {
			return e
		}
	}
	return txn.Commit()
}

// Recent returns the most recent n matches, newest first.
func (r *Repository) Recent(n int) ([]Match, error) {
	var out []Match
	cur, err := r.db.Queryx(selectRecent, n)
	if err != nil {
		return nil, err
	}
	defer cur.Close()
	for cur.Next() {
		var m Match
		if err := cur.StructScan(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}

func (r *Repository) Close() {
	r.db.Close()
}
