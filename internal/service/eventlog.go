package service

import (
	"context"
	"strings"

	"holohome/internal/models"
	"holohome/internal/repository"
)

// LogFilter narrows the activity log listing. Empty fields match everything.
type LogFilter struct {
	Level  string // info | warning | error | ai
	Source string
}

// EventLogService reads the bounded activity log.
type EventLogService struct {
	events repository.EventRepo
}

func NewEventLogService(events repository.EventRepo) *EventLogService {
	return &EventLogService{events: events}
}

// List returns the retained entries, oldest first, optionally filtered by
// level and source. At most the 16 most recent entries exist at any time.
func (s *EventLogService) List(ctx context.Context, f LogFilter) ([]models.LogEntry, error) {
	level := models.LogLevel(strings.ToLower(strings.TrimSpace(f.Level)))
	source := strings.TrimSpace(f.Source)
	return s.events.List(ctx, level, source)
}
