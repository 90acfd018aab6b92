package service

import (
	"context"
	"testing"

	"holohome/internal/models"
	"holohome/internal/store"
)

func viewportFixture() (*store.Store, *ViewportService) {
	st := store.New([]models.Room{
		{ID: "hall", Name: "Hall",
			Devices: []models.Device{{ID: "cam", Name: "Camera", Status: models.DeviceIdle}}},
	}, TotalPower)
	return st, NewViewportService(st)
}

func TestViewport_SetView(t *testing.T) {
	_, svc := viewportFixture()

	mode, err := svc.SetView(context.Background(), "  Thermal ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mode != models.ViewThermal {
		t.Fatalf("expected thermal, got %s", mode)
	}
	if got := svc.View(context.Background()); got != models.ViewThermal {
		t.Fatalf("expected thermal persisted, got %s", got)
	}
}

func TestViewport_SetView_InvalidModeRejected(t *testing.T) {
	_, svc := viewportFixture()

	if _, err := svc.SetView(context.Background(), "xray"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
	if got := svc.View(context.Background()); got != models.ViewStandard {
		t.Fatalf("invalid mode must not change the view, got %s", got)
	}
}

func TestViewport_SelectionFlow(t *testing.T) {
	_, svc := viewportFixture()
	ctx := context.Background()

	sel, err := svc.SelectDevice(ctx, "cam")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel.RoomID != "hall" || sel.DeviceID != "cam" {
		t.Fatalf("expected hall/cam, got %+v", sel)
	}

	sel = svc.Back(ctx)
	if sel.RoomID != "hall" || sel.DeviceID != "" {
		t.Fatalf("back should keep the room, got %+v", sel)
	}
}
