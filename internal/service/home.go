package service

import (
	"context"
	"fmt"

	"holohome/internal/metrics"
	"holohome/internal/models"
	"holohome/internal/repository"
	"holohome/internal/store"
)

// HomeService mutates room and device state. Every toggle lands an entry in
// the activity log and refreshes the total-power gauge.
type HomeService struct {
	store  *store.Store
	events repository.EventRepo
	mtr    *metrics.Metrics
}

func NewHomeService(st *store.Store, events repository.EventRepo, mtr *metrics.Metrics) *HomeService {
	return &HomeService{store: st, events: events, mtr: mtr}
}

func (s *HomeService) Rooms(ctx context.Context) ([]models.Room, error) {
	return s.store.Rooms(), nil
}

func (s *HomeService) Room(ctx context.Context, id string) (models.Room, error) {
	return s.store.Room(id)
}

// ToggleLight flips a room's lights and logs the change.
func (s *HomeService) ToggleLight(ctx context.Context, roomID string) (models.Room, error) {
	room, err := s.store.ToggleLight(roomID)
	if err != nil {
		return models.Room{}, err
	}
	s.mtr.IncLightToggles()
	s.mtr.SetTotalPower(s.store.Status().TotalPowerWatts)

	state := "off"
	if room.LightsOn {
		state = "on"
	}
	if err := s.events.Append(ctx, models.LogEntry{
		Source:  room.Name,
		Message: fmt.Sprintf("Lights switched %s", state),
		Level:   models.LevelInfo,
	}); err != nil {
		return models.Room{}, err
	}
	return room, nil
}

// ToggleDevice flips a device between active and idle and logs the change.
// The entry is a warning when the device spins up, info when it winds down.
func (s *HomeService) ToggleDevice(ctx context.Context, deviceID string) (models.Device, error) {
	room, device, err := s.store.ToggleDevice(deviceID)
	if err != nil {
		return models.Device{}, err
	}
	s.mtr.IncDeviceToggles()
	s.mtr.SetTotalPower(s.store.Status().TotalPowerWatts)

	level := models.LevelInfo
	if device.Status == models.DeviceActive {
		level = models.LevelWarning
	}
	if err := s.events.Append(ctx, models.LogEntry{
		Source:  room.Name,
		Message: fmt.Sprintf("%s is now %s", device.Name, device.Status),
		Level:   level,
	}); err != nil {
		return models.Device{}, err
	}
	return device, nil
}

// ToggleSecurity flips the panel between armed and disarmed.
func (s *HomeService) ToggleSecurity(ctx context.Context) (models.SystemStatus, error) {
	status := s.store.ToggleSecurity()
	if err := s.events.Append(ctx, models.LogEntry{
		Source:  "security",
		Message: fmt.Sprintf("Security mode set to %s", status.Security),
		Level:   models.LevelInfo,
	}); err != nil {
		return models.SystemStatus{}, err
	}
	return status, nil
}
