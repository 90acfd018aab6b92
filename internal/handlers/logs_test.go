package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"holohome/internal/models"
	"holohome/internal/service"
)

func TestGetLogs_PassesFiltersThrough(t *testing.T) {
	var gotFilter service.LogFilter
	elog := &mockEventLog{
		listFn: func(ctx context.Context, f service.LogFilter) ([]models.LogEntry, error) {
			gotFilter = f
			return []models.LogEntry{
				{ID: "a", OccurredAt: time.Now().UTC(), Source: "assistant", Message: "hi", Level: models.LevelAI},
			}, nil
		},
	}
	r := newTestRouter(t, newMockService(nil, nil, nil, nil, elog))

	w := doRequest(t, r, http.MethodGet, "/api/v1/logs?level=ai&source=assistant", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if gotFilter.Level != "ai" || gotFilter.Source != "assistant" {
		t.Fatalf("filters not passed through: %+v", gotFilter)
	}

	body := decodeBody(t, w)
	if body["count"].(float64) != 1 {
		t.Fatalf("expected count 1, got %v", body["count"])
	}
	entries := body["entries"].([]interface{})
	first := entries[0].(map[string]interface{})
	if first["source"] != "assistant" || first["level"] != "ai" {
		t.Fatalf("unexpected entry: %v", first)
	}
}

func TestGetLogs_EmptyLogGivesZeroCount(t *testing.T) {
	r := newTestRouter(t, newMockService(nil, nil, nil, nil, nil))

	w := doRequest(t, r, http.MethodGet, "/api/v1/logs", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if decodeBody(t, w)["count"].(float64) != 0 {
		t.Fatalf("expected count 0: %s", w.Body.String())
	}
}
