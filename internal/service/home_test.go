package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"holohome/internal/models"
	"holohome/internal/store"
)

// fakeEventRepo records appended entries in memory. Mutex-guarded because
// the dispatcher appends from its own goroutine.
type fakeEventRepo struct {
	mu        sync.Mutex
	appendErr error
	events    []models.LogEntry
}

func (f *fakeEventRepo) Append(ctx context.Context, e models.LogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.appendErr != nil {
		return f.appendErr
	}
	f.events = append(f.events, e)
	return nil
}

func (f *fakeEventRepo) List(ctx context.Context, level models.LogLevel, source string) ([]models.LogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.LogEntry
	for _, e := range f.events {
		if level != "" && e.Level != level {
			continue
		}
		if source != "" && e.Source != source {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEventRepo) all() []models.LogEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.LogEntry, len(f.events))
	copy(out, f.events)
	return out
}

func homeFixture() (*store.Store, *fakeEventRepo, *HomeService) {
	st := store.New([]models.Room{
		{
			ID: "lounge", Name: "Lounge", LightsOn: true, PowerWatts: 120,
			Devices: []models.Device{
				{ID: "tv", Name: "TV", Status: models.DeviceActive, PowerWatts: 80},
				{ID: "amp", Name: "Amp", Status: models.DeviceIdle, PowerWatts: 40},
			},
		},
	}, TotalPower)
	repo := &fakeEventRepo{}
	return st, repo, NewHomeService(st, repo, nil)
}

func TestHomeService_ToggleDevice_TwiceRestoresAndLogsTwice(t *testing.T) {
	_, repo, svc := homeFixture()

	d, err := svc.ToggleDevice(context.Background(), "amp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Status != models.DeviceActive {
		t.Fatalf("expected active, got %s", d.Status)
	}

	d, err = svc.ToggleDevice(context.Background(), "amp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Status != models.DeviceIdle {
		t.Fatalf("expected idle again, got %s", d.Status)
	}

	events := repo.all()
	if len(events) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(events))
	}
	if events[0].Level != models.LevelWarning {
		t.Fatalf("activation entry should be a warning, got %s", events[0].Level)
	}
	if events[1].Level != models.LevelInfo {
		t.Fatalf("deactivation entry should be info, got %s", events[1].Level)
	}
	if events[0].Source != "Lounge" {
		t.Fatalf("expected room name as source, got %q", events[0].Source)
	}
}

func TestHomeService_ToggleDevice_PowerFollowsTheRule(t *testing.T) {
	st, _, svc := homeFixture()

	// Lights on (120) + tv active (80) + amp idle baseline.
	if got := st.Status().TotalPowerWatts; got != 120+80+DeviceIdleWatts {
		t.Fatalf("unexpected starting aggregate %.1f", got)
	}

	if _, err := svc.ToggleDevice(context.Background(), "amp"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := st.Status().TotalPowerWatts; got != 120+80+40 {
		t.Fatalf("expected 240W with amp active, got %.1f", got)
	}
}

func TestHomeService_ToggleLight_LogsAndRecomputes(t *testing.T) {
	st, repo, svc := homeFixture()

	room, err := svc.ToggleLight(context.Background(), "lounge")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if room.LightsOn {
		t.Fatalf("expected lights off after toggle")
	}
	// Room falls back to the flat idle baseline.
	if got := st.Status().TotalPowerWatts; got != RoomIdleWatts+80+DeviceIdleWatts {
		t.Fatalf("unexpected aggregate %.1f", got)
	}

	events := repo.all()
	if len(events) != 1 || events[0].Level != models.LevelInfo {
		t.Fatalf("expected one info entry, got %#v", events)
	}
}

func TestHomeService_ToggleDevice_Unknown(t *testing.T) {
	_, repo, svc := homeFixture()

	if _, err := svc.ToggleDevice(context.Background(), "ghost"); !errors.Is(err, store.ErrDeviceNotFound) {
		t.Fatalf("expected ErrDeviceNotFound, got %v", err)
	}
	if len(repo.all()) != 0 {
		t.Fatalf("failed toggle must not log")
	}
}

func TestHomeService_ToggleSecurity_Logs(t *testing.T) {
	_, repo, svc := homeFixture()

	st, err := svc.ToggleSecurity(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.Security != models.SecurityArmed {
		t.Fatalf("expected armed, got %s", st.Security)
	}
	events := repo.all()
	if len(events) != 1 || events[0].Source != "security" {
		t.Fatalf("expected one security entry, got %#v", events)
	}
}
