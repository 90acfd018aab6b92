package service

import (
	"context"

	"holohome/internal/models"
	"holohome/internal/repository"
	"holohome/internal/store"
)

// MonitoringService serves read-only views of the dashboard state.
type MonitoringService struct {
	store  *store.Store
	events repository.EventRepo
}

func NewMonitoringService(st *store.Store, events repository.EventRepo) *MonitoringService {
	return &MonitoringService{store: st, events: events}
}

func (s *MonitoringService) Status(ctx context.Context) (models.SystemStatus, error) {
	return s.store.Status(), nil
}

// Snapshot returns the full dashboard state with the recent activity log
// attached. The log read is best-effort; a snapshot without log lines is
// still a valid snapshot.
func (s *MonitoringService) Snapshot(ctx context.Context) (models.Snapshot, error) {
	snap := s.store.Snapshot()
	entries, err := s.events.List(ctx, "", "")
	if err != nil {
		return snap, nil
	}
	snap.Log = entries
	return snap, nil
}
