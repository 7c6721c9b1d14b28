// Package persistence provides the SQLite game journal: one row per game,
// its action log, and its final standings.
package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/engine"
)

// ErrGameNotFound is returned when a game id has no row.
var ErrGameNotFound = errors.New("game not found")

// DB wraps a SQLite connection for the game journal.
type DB struct {
	conn *sqlx.DB
}

// Game is one journaled game.
type Game struct {
	ID         string        `db:"id"`
	Seed       int64         `db:"seed"`
	MaxRounds  int           `db:"max_rounds"`
	Players    int           `db:"players"`
	StartedAt  time.Time     `db:"started_at"`
	FinishedAt sql.NullTime  `db:"finished_at"`
	Rounds     int           `db:"rounds"`
	WinnerID   sql.NullInt64 `db:"winner_id"`
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS games (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		max_rounds INTEGER NOT NULL,
		players INTEGER NOT NULL,
		started_at TIMESTAMP NOT NULL,
		finished_at TIMESTAMP,
		rounds INTEGER NOT NULL DEFAULT 0,
		winner_id INTEGER
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL REFERENCES games(id),
		round INTEGER NOT NULL,
		player_id INTEGER NOT NULL,
		category TEXT NOT NULL,
		description TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS standings (
		game_id TEXT NOT NULL REFERENCES games(id),
		player_id INTEGER NOT NULL,
		rank INTEGER NOT NULL,
		victory_points INTEGER NOT NULL,
		resources INTEGER NOT NULL,
		settlements INTEGER NOT NULL,
		cities INTEGER NOT NULL,
		roads INTEGER NOT NULL,
		PRIMARY KEY (game_id, player_id)
	);

	CREATE INDEX IF NOT EXISTS idx_events_game ON events(game_id, round);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// BeginGame records a new game and returns its id.
func (db *DB) BeginGame(seed int64, maxRounds, players int) (string, error) {
	id := uuid.NewString()
	_, err := db.conn.Exec(
		"INSERT INTO games (id, seed, max_rounds, players, started_at) VALUES (?, ?, ?, ?, ?)",
		id, seed, maxRounds, players, time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("begin game: %w", err)
	}
	return id, nil
}

// SaveEvents appends events to a game's log.
func (db *DB) SaveEvents(gameID string, events []engine.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`INSERT INTO events
		(game_id, round, player_id, category, description) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range events {
		if _, err := stmt.Exec(gameID, e.Round, e.PlayerID, e.Category, e.Description); err != nil {
			return fmt.Errorf("save event: %w", err)
		}
	}

	return tx.Commit()
}

// FinishGame stores the outcome and final standings of a game.
func (db *DB) FinishGame(gameID string, r engine.Result) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var winner sql.NullInt64
	if r.WinnerID != 0 {
		winner = sql.NullInt64{Int64: int64(r.WinnerID), Valid: true}
	}
	res, err := tx.Exec(
		"UPDATE games SET finished_at = ?, rounds = ?, winner_id = ? WHERE id = ?",
		time.Now().UTC(), r.Rounds, winner, gameID,
	)
	if err != nil {
		return fmt.Errorf("finish game: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("finish game %s: %w", gameID, ErrGameNotFound)
	}

	for _, s := range r.Standings {
		_, err := tx.Exec(`INSERT OR REPLACE INTO standings
			(game_id, player_id, rank, victory_points, resources, settlements, cities, roads)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			gameID, s.PlayerID, s.Rank, s.VictoryPoints, s.Resources, s.Settlements, s.Cities, s.Roads,
		)
		if err != nil {
			return fmt.Errorf("save standing: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	slog.Info("game journaled", "game", gameID, "rounds", r.Rounds, "winner", r.WinnerID)
	return nil
}

// Game returns a game's row.
func (db *DB) Game(gameID string) (Game, error) {
	var g Game
	err := db.conn.Get(&g, "SELECT * FROM games WHERE id = ?", gameID)
	if errors.Is(err, sql.ErrNoRows) {
		return Game{}, fmt.Errorf("game %s: %w", gameID, ErrGameNotFound)
	}
	return g, err
}

// RecentEvents returns a game's most recent events, newest first.
func (db *DB) RecentEvents(gameID string, limit int) ([]engine.Event, error) {
	var events []engine.Event
	err := db.conn.Select(&events,
		`SELECT round, player_id, category, description FROM events
		WHERE game_id = ? ORDER BY id DESC LIMIT ?`,
		gameID, limit,
	)
	return events, err
}

// Standings returns a game's final standings by rank.
func (db *DB) Standings(gameID string) ([]engine.Standing, error) {
	var out []engine.Standing
	err := db.conn.Select(&out,
		`SELECT rank, player_id, victory_points, resources, settlements, cities, roads
		FROM standings WHERE game_id = ? ORDER BY rank`,
		gameID,
	)
	return out, err
}

// GameCount returns how many games have been journaled.
func (db *DB) GameCount() (int, error) {
	var n int
	err := db.conn.Get(&n, "SELECT COUNT(*) FROM games")
	return n, err
}
