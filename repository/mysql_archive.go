package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go-splendor/game"

	"github.com/go-sql-driver/mysql"
)

// OpenMySQL opens a pool for dsn with parseTime forced on and pings it.
func OpenMySQL(ctx context.Context, dsn string) (*sql.DB, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("mysql connector: %w", err)
	}
	db := sql.OpenDB(connector)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("mysql ping: %w", err)
	}
	return db, nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS game_events (
		game_id    VARCHAR(64) NOT NULL,
		seq        BIGINT      NOT NULL,
		type       VARCHAR(32) NOT NULL,
		seat       INT         NOT NULL,
		player_id  VARCHAR(64) NOT NULL,
		payload    JSON        NOT NULL,
		created_at DATETIME    NOT NULL,
		PRIMARY KEY (game_id, seq)
	)`,
	`CREATE TABLE IF NOT EXISTS games (
		game_id     VARCHAR(64) NOT NULL PRIMARY KEY,
		winner_id   VARCHAR(64) NOT NULL,
		seed        BIGINT      NOT NULL,
		rounds      INT         NOT NULL,
		state       JSON        NOT NULL,
		finished_at DATETIME    NOT NULL
	)`,
}

// MySQLArchive is the durable game log: every event plus the final snapshot of finished games.
type MySQLArchive struct {
	db  *sql.DB
	now func() time.Time
}

func NewMySQLArchive(db *sql.DB) *MySQLArchive {
	return &MySQLArchive{db: db, now: time.Now}
}

func (a *MySQLArchive) Migrate(ctx context.Context) error {
	for _, stmt := range migrations {
		if _, err := a.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func (a *MySQLArchive) AppendEvents(ctx context.Context, gameID string, events []game.Event) (err error) {
	if len(events) == 0 {
		return nil
	}
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO game_events (game_id, seq, type, seat, player_id, payload, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert event: %w", err)
	}
	defer stmt.Close()

	createdAt := a.now().UTC()
	for _, ev := range events {
		payload, err := json.Marshal(ev)
		if err != nil {
			return fmt.Errorf("marshal event %d: %w", ev.Seq, err)
		}
		if _, err := stmt.ExecContext(ctx, gameID, ev.Seq, string(ev.Type), ev.Seat, ev.PlayerID, payload, createdAt); err != nil {
			return fmt.Errorf("insert event %d: %w", ev.Seq, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit events: %w", err)
	}
	return nil
}

func (a *MySQLArchive) ListEvents(ctx context.Context, gameID string) ([]game.Event, error) {
	rows, err := a.db.QueryContext(ctx,
		`SELECT payload FROM game_events WHERE game_id = ? ORDER BY seq`, gameID)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []game.Event
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		var ev game.Event
		if err := json.Unmarshal(payload, &ev); err != nil {
			return nil, fmt.Errorf("decode event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

// ArchiveGame stores the final snapshot. Re-archiving the same game overwrites it.
func (a *MySQLArchive) ArchiveGame(ctx context.Context, state *game.GameState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal game %s: %w", state.ID, err)
	}
	_, err = a.db.ExecContext(ctx,
		`INSERT INTO games (game_id, winner_id, seed, rounds, state, finished_at) VALUES (?, ?, ?, ?, ?, ?)
		 ON DUPLICATE KEY UPDATE winner_id = VALUES(winner_id), rounds = VALUES(rounds), state = VALUES(state), finished_at = VALUES(finished_at)`,
		state.ID, state.WinnerID, state.Seed, state.Round, data, a.now().UTC())
	if err != nil {
		return fmt.Errorf("archive game %s: %w", state.ID, err)
	}
	return nil
}
