package repository

import (
	"context"
	"database/sql"

	"holohome/internal/models"
)

// EventRepo is the append-only activity log. Retention is bounded: only the
// most recent entries survive (see MaxEntries), oldest evicted first.
type EventRepo interface {
	Append(ctx context.Context, e models.LogEntry) error
	List(ctx context.Context, level models.LogLevel, source string) ([]models.LogEntry, error)
}

type Repository struct {
	Events EventRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Events: NewEventSQLite(db),
	}
}
