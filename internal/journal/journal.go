// Package journal keeps a local SQLite history of list mutations.
//
// The journal is advisory: list files stay the source of truth, and callers treat
// journal failures as warnings.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const FileName = "history.sqlite"

const (
	OpAdd    = "add"
	OpDelete = "delete"
	OpReset  = "reset"
)

type Event struct {
	ID    int64     `json:"id"`
	At    time.Time `json:"at"`
	List  string    `json:"list"`
	Op    string    `json:"op"`
	Index int       `json:"index,omitempty"`
	Text  string    `json:"text,omitempty"`
}

type Journal struct {
	db *sql.DB
}

// Open opens (creating if needed) the journal database at path.
func Open(ctx context.Context, path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Journal{db: db}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			at_unixms INTEGER NOT NULL,
			list TEXT NOT NULL,
			op TEXT NOT NULL,
			item_index INTEGER NOT NULL DEFAULT 0,
			text TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE INDEX IF NOT EXISTS idx_events_list ON events(list, id);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

func (j *Journal) Close() error {
	if j == nil || j.db == nil {
		return nil
	}
	return j.db.Close()
}

// Record appends events in a single transaction. A zero At is stamped with the current time.
func (j *Journal) Record(ctx context.Context, evs ...Event) error {
	if len(evs) == 0 {
		return nil
	}
	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	for _, ev := range evs {
		if strings.TrimSpace(ev.List) == "" || strings.TrimSpace(ev.Op) == "" {
			return fmt.Errorf("journal event missing list or op: %+v", ev)
		}
		at := ev.At
		if at.IsZero() {
			at = now
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO events(at_unixms, list, op, item_index, text) VALUES(?, ?, ?, ?, ?)`,
			at.UnixMilli(), ev.List, ev.Op, ev.Index, ev.Text,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Recent returns up to limit events, newest first. An empty list name selects
// all lists; limit <= 0 means all events.
func (j *Journal) Recent(ctx context.Context, list string, limit int) ([]Event, error) {
	q := `SELECT id, at_unixms, list, op, item_index, text FROM events`
	var args []any
	if list != "" {
		q += ` WHERE list = ?`
		args = append(args, list)
	}
	q += ` ORDER BY id DESC`
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := j.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Event{}
	for rows.Next() {
		var (
			ev   Event
			atMs int64
		)
		if err := rows.Scan(&ev.ID, &atMs, &ev.List, &ev.Op, &ev.Index, &ev.Text); err != nil {
			return nil, err
		}
		ev.At = time.UnixMilli(atMs).UTC()
		out = append(out, ev)
	}
	return out, rows.Err()
}
