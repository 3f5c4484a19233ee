// Package journal records focus sessions for the lifetime of the process.
// Sessions live in an in-memory SQLite database and are gone after exit.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"pomoboard/internal/core/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// OpError wraps a failed journal operation.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("journal %s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Err: err}
}

// Totals summarises completed sessions.
type Totals struct {
	Completed    int
	Incomplete   int
	FocusMinutes int
}

// Journal stores sessions.
type Journal struct {
	db  *sql.DB
	log zerolog.Logger
}

// Open creates an empty session journal.
func Open(ctx context.Context, logger *zerolog.Logger) (*Journal, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, wrapErr("open", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, wrapErr("ping", err)
	}

	log := zerolog.Nop()
	if logger != nil {
		log = logger.With().Str("component", "journal").Logger()
	}
	journal := &Journal{db: db, log: log}
	if err := journal.migrate(ctx); err != nil {
		db.Close()
		return nil, wrapErr("migrate", err)
	}
	return journal, nil
}

func (journal *Journal) migrate(ctx context.Context) error {
	_, err := journal.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			started_at INTEGER NOT NULL,
			planned_secs INTEGER NOT NULL,
			elapsed_secs INTEGER NOT NULL DEFAULT 0,
			completed INTEGER NOT NULL DEFAULT 0
		);
	`)
	return err
}

// Record stores session, assigning an ID when it has none.
func (journal *Journal) Record(ctx context.Context, session model.Session) (model.Session, error) {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	completed := 0
	if session.Completed {
		completed = 1
	}
	_, err := journal.db.ExecContext(ctx, `
		INSERT INTO sessions (id, started_at, planned_secs, elapsed_secs, completed)
		VALUES (?, ?, ?, ?, ?)`,
		session.ID,
		session.StartedAt.UnixNano(),
		session.PlannedSecs,
		session.ElapsedSecs,
		completed,
	)
	if err != nil {
		return session, wrapErr("record", err)
	}
	journal.log.Debug().
		Str("id", session.ID).
		Int("elapsed_secs", session.ElapsedSecs).
		Bool("completed", session.Completed).
		Msg("session recorded")
	return session, nil
}

// List returns every session, oldest first.
func (journal *Journal) List(ctx context.Context) ([]model.Session, error) {
	rows, err := journal.db.QueryContext(ctx, `
		SELECT
			id,
			started_at,
			planned_secs,
			elapsed_secs,
			completed
		FROM sessions
		ORDER BY started_at ASC`,
	)
	if err != nil {
		return nil, wrapErr("list", err)
	}
	defer rows.Close()

	var sessions []model.Session
	for rows.Next() {
		var (
			session   model.Session
			startedAt int64
			completed int
		)
		if err := rows.Scan(
			&session.ID,
			&startedAt,
			&session.PlannedSecs,
			&session.ElapsedSecs,
			&completed,
		); err != nil {
			return nil, wrapErr("list", err)
		}
		session.StartedAt = time.Unix(0, startedAt)
		session.Completed = completed == 1
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("list", err)
	}
	return sessions, nil
}

// Totals counts sessions and sums focused minutes of completed ones.
func (journal *Journal) Totals(ctx context.Context) (Totals, error) {
	var (
		totals       Totals
		focusSeconds int
	)
	err := journal.db.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN completed = 1 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN completed = 0 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN completed = 1 THEN elapsed_secs ELSE 0 END), 0)
		FROM sessions`,
	).Scan(&totals.Completed, &totals.Incomplete, &focusSeconds)
	if err != nil {
		return Totals{}, wrapErr("totals", err)
	}
	totals.FocusMinutes = focusSeconds / 60
	return totals, nil
}

// Close releases the database.
func (journal *Journal) Close() error {
	return journal.db.Close()
}
