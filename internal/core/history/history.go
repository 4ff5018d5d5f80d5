// Package history keeps a local record of interface toggles in a small
// sqlite file, one row per completed set run.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS toggles (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	ts        INTEGER NOT NULL,
	run_id    TEXT    NOT NULL,
	iface     TEXT    NOT NULL,
	state     TEXT    NOT NULL,
	outcome   TEXT    NOT NULL
);`

type Entry struct {
	Timestamp int64
	RunID     string
	Iface     string
	State     string
	Outcome   string
}

type RecorderContract interface {
	Record(ctx context.Context, e Entry) error
	Recent(ctx context.Context, limit int) ([]Entry, error)
}

type Recorder struct {
	path string
	log  *slog.Logger
}

func New(path string, log *slog.Logger) *Recorder {
	return &Recorder{path: path, log: log}
}

// open dials the db file per call. The tool is strictly sequential, one
// short-lived connection per operation is enough.
func (r *Recorder) open() (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return nil, fmt.Errorf("history dir: %w", err)
	}
	db, err := sql.Open("sqlite", r.path+"?_busy_timeout=5000&_journal_mode=WAL&_sync=NORMAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("history schema: %w", err)
	}
	return db, nil
}

func (r *Recorder) Record(ctx context.Context, e Entry) error {
	db, err := r.open()
	if err != nil {
		return err
	}
	defer db.Close()

	if e.Timestamp == 0 {
		e.Timestamp = time.Now().Unix()
	}

	r.log.Debug("recording toggle",
		slog.String("iface", e.Iface),
		slog.String("state", e.State),
		slog.String("outcome", e.Outcome))

	_, err = db.ExecContext(ctx,
		`INSERT INTO toggles (ts, run_id, iface, state, outcome) VALUES (?, ?, ?, ?, ?)`,
		e.Timestamp, e.RunID, e.Iface, e.State, e.Outcome)
	return err
}

func (r *Recorder) Recent(ctx context.Context, limit int) ([]Entry, error) {
	db, err := r.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT ts, run_id, iface, state, outcome FROM toggles ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Timestamp, &e.RunID, &e.Iface, &e.State, &e.Outcome); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
