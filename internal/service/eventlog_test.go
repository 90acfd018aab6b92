package service

import (
	"context"
	"testing"

	"holohome/internal/models"
)

func TestEventLogService_List_NormalizesFilter(t *testing.T) {
	repo := &fakeEventRepo{events: []models.LogEntry{
		{Source: "user", Message: "hi", Level: models.LevelInfo},
		{Source: "assistant", Message: "hello", Level: models.LevelAI},
		{Source: "Kitchen", Message: "Washer is now active", Level: models.LevelWarning},
	}}
	svc := NewEventLogService(repo)

	entries, err := svc.List(context.Background(), LogFilter{Level: "  AI "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].Source != "assistant" {
		t.Fatalf("expected the single ai entry, got %#v", entries)
	}

	entries, err = svc.List(context.Background(), LogFilter{Source: "Kitchen"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].Level != models.LevelWarning {
		t.Fatalf("expected the kitchen warning, got %#v", entries)
	}

	entries, err = svc.List(context.Background(), LogFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected all entries, got %d", len(entries))
	}
}
