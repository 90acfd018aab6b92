package service

import (
	"context"

	"holohome/internal/models"
	"holohome/internal/store"
)

// ViewportService owns the overlay mode and the selection focus. Selecting a
// room clears any device focus; selecting a device also focuses its owning
// room; backing out of a device keeps the room focused.
type ViewportService struct {
	store *store.Store
}

func NewViewportService(st *store.Store) *ViewportService {
	return &ViewportService{store: st}
}

func (s *ViewportService) View(ctx context.Context) models.ViewMode {
	return s.store.ViewMode()
}

func (s *ViewportService) SetView(ctx context.Context, mode string) (models.ViewMode, error) {
	m, err := models.ParseViewMode(mode)
	if err != nil {
		return s.store.ViewMode(), err
	}
	s.store.SetViewMode(m)
	return m, nil
}

func (s *ViewportService) Selection(ctx context.Context) models.Selection {
	return s.store.Selection()
}

func (s *ViewportService) SelectRoom(ctx context.Context, roomID string) (models.Selection, error) {
	return s.store.SelectRoom(roomID)
}

func (s *ViewportService) SelectDevice(ctx context.Context, deviceID string) (models.Selection, error) {
	return s.store.SelectDevice(deviceID)
}

func (s *ViewportService) Back(ctx context.Context) models.Selection {
	return s.store.ClearDevice()
}
