package handlers

import (
	"context"

	"holohome/internal/models"
	"holohome/internal/service"
)

// Function-field fakes for the service interfaces. A nil field falls back to
// a zero-value response so tests only set what they assert on.

type mockHome struct {
	roomsFn          func(ctx context.Context) ([]models.Room, error)
	roomFn           func(ctx context.Context, id string) (models.Room, error)
	toggleLightFn    func(ctx context.Context, roomID string) (models.Room, error)
	toggleDeviceFn   func(ctx context.Context, deviceID string) (models.Device, error)
	toggleSecurityFn func(ctx context.Context) (models.SystemStatus, error)
}

func (m *mockHome) Rooms(ctx context.Context) ([]models.Room, error) {
	if m.roomsFn != nil {
		return m.roomsFn(ctx)
	}
	return nil, nil
}

func (m *mockHome) Room(ctx context.Context, id string) (models.Room, error) {
	if m.roomFn != nil {
		return m.roomFn(ctx, id)
	}
	return models.Room{}, nil
}

func (m *mockHome) ToggleLight(ctx context.Context, roomID string) (models.Room, error) {
	if m.toggleLightFn != nil {
		return m.toggleLightFn(ctx, roomID)
	}
	return models.Room{}, nil
}

func (m *mockHome) ToggleDevice(ctx context.Context, deviceID string) (models.Device, error) {
	if m.toggleDeviceFn != nil {
		return m.toggleDeviceFn(ctx, deviceID)
	}
	return models.Device{}, nil
}

func (m *mockHome) ToggleSecurity(ctx context.Context) (models.SystemStatus, error) {
	if m.toggleSecurityFn != nil {
		return m.toggleSecurityFn(ctx)
	}
	return models.SystemStatus{}, nil
}

type mockMonitoring struct {
	statusFn   func(ctx context.Context) (models.SystemStatus, error)
	snapshotFn func(ctx context.Context) (models.Snapshot, error)
}

func (m *mockMonitoring) Status(ctx context.Context) (models.SystemStatus, error) {
	if m.statusFn != nil {
		return m.statusFn(ctx)
	}
	return models.SystemStatus{}, nil
}

func (m *mockMonitoring) Snapshot(ctx context.Context) (models.Snapshot, error) {
	if m.snapshotFn != nil {
		return m.snapshotFn(ctx)
	}
	return models.Snapshot{}, nil
}

type mockViewport struct {
	viewFn         func(ctx context.Context) models.ViewMode
	setViewFn      func(ctx context.Context, mode string) (models.ViewMode, error)
	selectionFn    func(ctx context.Context) models.Selection
	selectRoomFn   func(ctx context.Context, roomID string) (models.Selection, error)
	selectDeviceFn func(ctx context.Context, deviceID string) (models.Selection, error)
	backFn         func(ctx context.Context) models.Selection
}

func (m *mockViewport) View(ctx context.Context) models.ViewMode {
	if m.viewFn != nil {
		return m.viewFn(ctx)
	}
	return models.ViewStandard
}

func (m *mockViewport) SetView(ctx context.Context, mode string) (models.ViewMode, error) {
	if m.setViewFn != nil {
		return m.setViewFn(ctx, mode)
	}
	return models.ViewStandard, nil
}

func (m *mockViewport) Selection(ctx context.Context) models.Selection {
	if m.selectionFn != nil {
		return m.selectionFn(ctx)
	}
	return models.Selection{}
}

func (m *mockViewport) SelectRoom(ctx context.Context, roomID string) (models.Selection, error) {
	if m.selectRoomFn != nil {
		return m.selectRoomFn(ctx, roomID)
	}
	return models.Selection{}, nil
}

func (m *mockViewport) SelectDevice(ctx context.Context, deviceID string) (models.Selection, error) {
	if m.selectDeviceFn != nil {
		return m.selectDeviceFn(ctx, deviceID)
	}
	return models.Selection{}, nil
}

func (m *mockViewport) Back(ctx context.Context) models.Selection {
	if m.backFn != nil {
		return m.backFn(ctx)
	}
	return models.Selection{}
}

type mockAssistant struct {
	submitFn func(ctx context.Context, text string) error
}

func (m *mockAssistant) Submit(ctx context.Context, text string) error {
	if m.submitFn != nil {
		return m.submitFn(ctx, text)
	}
	return nil
}

type mockEventLog struct {
	listFn func(ctx context.Context, f service.LogFilter) ([]models.LogEntry, error)
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.LogEntry, error) {
	if m.listFn != nil {
		return m.listFn(ctx, f)
	}
	return nil, nil
}

// newMockService bundles the fakes; nil parts get an empty mock.
func newMockService(home *mockHome, mon *mockMonitoring, vp *mockViewport, asst *mockAssistant, elog *mockEventLog) *service.Service {
	if home == nil {
		home = &mockHome{}
	}
	if mon == nil {
		mon = &mockMonitoring{}
	}
	if vp == nil {
		vp = &mockViewport{}
	}
	if asst == nil {
		asst = &mockAssistant{}
	}
	if elog == nil {
		elog = &mockEventLog{}
	}
	return &service.Service{
		Home:       home,
		Monitoring: mon,
		Viewport:   vp,
		Assistant:  asst,
		EventLog:   elog,
	}
}
