// Package journal keeps an append-only SQLite log of the REST operations a
// console session issued. Only request outcomes are stored; the edit form
// itself is never persisted.
package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"wishlist-console/internal/restapi"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

type Entry struct {
	ID         int64     `json:"id"`
	SessionID  string    `json:"sessionId"`
	At         time.Time `json:"at"`
	Op         string    `json:"op"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	Query      string    `json:"query,omitempty"`
	Status     int       `json:"status"`
	OK         bool      `json:"ok"`
	Message    string    `json:"message,omitempty"`
	DurationMS int64     `json:"durationMs"`
}

var _ restapi.Observer = (*Journal)(nil)

type Journal struct {
	db      *sql.DB
	session string
	logger  logrus.FieldLogger
	now     func() time.Time
}

type Option func(*Journal)

func WithLogger(l logrus.FieldLogger) Option {
	return func(j *Journal) {
		if l != nil {
			j.logger = l
		}
	}
}

// WithSessionID fixes the session id instead of generating one.
func WithSessionID(id string) Option {
	return func(j *Journal) {
		if strings.TrimSpace(id) != "" {
			j.session = strings.TrimSpace(id)
		}
	}
}

var errPathRequired = errors.New("journal: path is required")

// Open opens (creating if needed) the journal database at path and starts a
// new session.
func Open(ctx context.Context, path string, opts ...Option) (*Journal, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errPathRequired
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("journal: create dir: %w", err)
		}
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// Pragmas are per connection; one connection keeps them in force and
	// serializes writers.
	db.SetMaxOpenConns(1)
	// WAL lets `journal list` read while a console is writing.
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

	discard := logrus.New()
	discard.SetLevel(logrus.PanicLevel)
	j := &Journal{db: db, session: uuid.NewString(), logger: discard, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(j)
		}
	}
	return j, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS operations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			at_unixms INTEGER NOT NULL,
			op TEXT NOT NULL,
			method TEXT NOT NULL,
			path TEXT NOT NULL,
			query TEXT NOT NULL,
			status INTEGER NOT NULL,
			ok INTEGER NOT NULL,
			message TEXT NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_operations_session ON operations(session_id, id);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

func (j *Journal) SessionID() string { return j.session }

func (j *Journal) Close() error { return j.db.Close() }

// Append records one finished request.
func (j *Journal) Append(ctx context.Context, rec restapi.Record) error {
	msg := ""
	if rec.Err != nil {
		msg = rec.Err.Error()
	}
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO operations (session_id, at_unixms, op, method, path, query, status, ok, message, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		j.session, j.now().UnixMilli(), string(rec.Op), rec.Method, rec.Path, rec.Query,
		rec.Status, rec.OK(), msg, rec.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("journal: append: %w", err)
	}
	return nil
}

// ObserveRequest appends rec, logging instead of failing: the journal never
// blocks an operation.
func (j *Journal) ObserveRequest(ctx context.Context, rec restapi.Record) {
	if err := j.Append(context.WithoutCancel(ctx), rec); err != nil {
		j.logger.WithError(err).WithField("op", rec.Op).Warn("journal write failed")
	}
}

type ListOptions struct {
	// SessionID restricts the listing to one session.
	SessionID string
	// Limit keeps only the newest entries; zero means all.
	Limit int
}

// List returns entries oldest first.
func (j *Journal) List(ctx context.Context, opts ListOptions) ([]Entry, error) {
	q := `SELECT id, session_id, at_unixms, op, method, path, query, status, ok, message, duration_ms FROM operations`
	var args []any
	if s := strings.TrimSpace(opts.SessionID); s != "" {
		q += ` WHERE session_id = ?`
		args = append(args, s)
	}
	q += ` ORDER BY id DESC`
	if opts.Limit > 0 {
		q += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := j.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("journal: list: %w", err)
	}
	defer rows.Close()

	out := []Entry{}
	for rows.Next() {
		var (
			e  Entry
			at int64
		)
		if err := rows.Scan(&e.ID, &e.SessionID, &at, &e.Op, &e.Method, &e.Path, &e.Query, &e.Status, &e.OK, &e.Message, &e.DurationMS); err != nil {
			return nil, fmt.Errorf("journal: scan: %w", err)
		}
		e.At = time.UnixMilli(at).UTC()
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i, k := 0, len(out)-1; i < k; i, k = i+1, k-1 {
		out[i], out[k] = out[k], out[i]
	}
	return out, nil
}
