package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"holohome/internal/models"
)

// MaxEntries is how many log entries are retained. Appending the 17th
// evicts the oldest.
const MaxEntries = 16

const (
	insertEntrySQL = `
		INSERT INTO log_entries (id, occurred_at, source, message, level)
		VALUES (?, ?, ?, ?, ?)
	`

	// rowid preserves insertion order even when timestamps collide.
	pruneEntriesSQL = `
		DELETE FROM log_entries
		WHERE rowid NOT IN (SELECT rowid FROM log_entries ORDER BY rowid DESC LIMIT ?)
	`
)

type EventSQLite struct {
	db *sql.DB
}

func NewEventSQLite(db *sql.DB) *EventSQLite { return &EventSQLite{db: db} }

// Append inserts a new entry and prunes everything beyond the retention
// bound. If ID or OccurredAt are empty, they're set.
func (r *EventSQLite) Append(ctx context.Context, e models.LogEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	} else {
		e.OccurredAt = e.OccurredAt.UTC()
	}

	if _, err := r.db.ExecContext(ctx, insertEntrySQL,
		e.ID,
		e.OccurredAt.Format("2006-01-02 15:04:05"),
		e.Source,
		e.Message,
		strings.ToLower(strings.TrimSpace(string(e.Level))),
	); err != nil {
		return err
	}

	_, err := r.db.ExecContext(ctx, pruneEntriesSQL, MaxEntries)
	return err
}

// List returns retained entries in insertion order, optionally filtered by
// level and/or source.
func (r *EventSQLite) List(ctx context.Context, level models.LogLevel, source string) ([]models.LogEntry, error) {
	var (
		conds []string
		args  []any
	)
	if level != "" {
		conds = append(conds, "level = ?")
		args = append(args, string(level))
	}
	if source != "" {
		conds = append(conds, "source = ?")
		args = append(args, source)
	}

	q := `SELECT id, occurred_at, source, message, level FROM log_entries`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY rowid ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.LogEntry, 0, MaxEntries)
	for rows.Next() {
		var e models.LogEntry
		if err := rows.Scan(&e.ID, &e.OccurredAt, &e.Source, &e.Message, &e.Level); err != nil {
			return nil, err
		}
		e.OccurredAt = e.OccurredAt.UTC()
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
