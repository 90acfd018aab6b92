package service

import (
	"context"
	"time"

	"holohome/internal/metrics"
	"holohome/internal/models"
	"holohome/internal/repository"
	"holohome/internal/store"
)

// Home exposes room and device control: listing, light/device toggles and
// the security panel toggle.
type Home interface {
	Rooms(ctx context.Context) ([]models.Room, error)
	Room(ctx context.Context, id string) (models.Room, error)
	ToggleLight(ctx context.Context, roomID string) (models.Room, error)
	ToggleDevice(ctx context.Context, deviceID string) (models.Device, error)
	ToggleSecurity(ctx context.Context) (models.SystemStatus, error)
}

// Monitoring exposes read-only state: system status and the full snapshot.
type Monitoring interface {
	Status(ctx context.Context) (models.SystemStatus, error)
	Snapshot(ctx context.Context) (models.Snapshot, error)
}

// Viewport owns the floor-plan overlay mode and the selection focus state.
type Viewport interface {
	View(ctx context.Context) models.ViewMode
	SetView(ctx context.Context, mode string) (models.ViewMode, error)
	Selection(ctx context.Context) models.Selection
	SelectRoom(ctx context.Context, roomID string) (models.Selection, error)
	SelectDevice(ctx context.Context, deviceID string) (models.Selection, error)
	Back(ctx context.Context) models.Selection
}

// Assistant dispatches free-text commands to the text-generation
// collaborator. Submit returns immediately; the reply lands in the log.
type Assistant interface {
	Submit(ctx context.Context, text string) error
}

// EventLog exposes the bounded activity log with filtering.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.LogEntry, error)
}

// Generator is the single operation the external text-generation
// collaborator offers.
type Generator interface {
	Generate(ctx context.Context, summary models.HomeSummary, query string) (string, error)
}

// Config carries the service-level tunables.
type Config struct {
	// SimulatedLatency is waited before the collaborator is invoked, so the
	// assistant visibly "thinks" even when the backend answers instantly.
	SimulatedLatency time.Duration
}

// Service aggregates all sub-services.
type Service struct {
	Home
	Monitoring
	Viewport
	Assistant
	EventLog
}

// NewService wires the store, repositories and collaborator client into the
// concrete services.
func NewService(st *store.Store, repos *repository.Repository, gen Generator, mtr *metrics.Metrics, cfg Config) (*Service, error) {
	asst, err := NewAssistantService(st, repos.Events, gen, mtr, cfg.SimulatedLatency)
	if err != nil {
		return nil, err
	}
	return &Service{
		Home:       NewHomeService(st, repos.Events, mtr),
		Monitoring: NewMonitoringService(st, repos.Events),
		Viewport:   NewViewportService(st),
		Assistant:  asst,
		EventLog:   NewEventLogService(repos.Events),
	}, nil
}
