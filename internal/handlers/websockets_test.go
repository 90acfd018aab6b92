package handlers

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"holohome/internal/models"
)

func TestWSConnect_StreamsSnapshots(t *testing.T) {
	mon := &mockMonitoring{
		snapshotFn: func(ctx context.Context) (models.Snapshot, error) {
			return models.Snapshot{
				Status: models.SystemStatus{
					Security:        models.SecurityDisarmed,
					Network:         models.NetworkOnline,
					Assistant:       models.AssistantIdle,
					TotalPowerWatts: 12.0,
				},
				View: models.ViewStandard,
			}, nil
		},
	}
	srv := httptest.NewServer(newTestRouter(t, newMockService(nil, mon, nil, nil, nil)))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?interval_ms=50"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer func() { _ = conn.Close() }()
	defer func() { _ = resp.Body.Close() }()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	// Initial push arrives without waiting for a tick.
	var first wsEnvelope
	if err := conn.ReadJSON(&first); err != nil {
		t.Fatalf("read initial envelope: %v", err)
	}
	if first.Type != "snapshot" {
		t.Fatalf("expected snapshot envelope, got %q", first.Type)
	}
	if first.Data == nil {
		t.Fatalf("expected snapshot payload")
	}

	// The ticker keeps sending after the initial push.
	var second wsEnvelope
	if err := conn.ReadJSON(&second); err != nil {
		t.Fatalf("read second envelope: %v", err)
	}
	if second.Type != "snapshot" {
		t.Fatalf("expected snapshot envelope, got %q", second.Type)
	}
}

func TestParseInterval_Bounds(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &Handler{}

	cases := []struct {
		query string
		want  time.Duration
	}{
		{"", defaultInterval},
		{"interval=2s", 2 * time.Second},
		{"interval=0s", defaultInterval},
		{"interval=11s", defaultInterval},
		{"interval_ms=250", 250 * time.Millisecond},
		{"interval_ms=20000", defaultInterval},
		{"interval=garbage", defaultInterval},
	}
	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/ws?"+tc.query, nil)
		if got := h.parseInterval(c); got != tc.want {
			t.Errorf("query %q: expected %v, got %v", tc.query, tc.want, got)
		}
	}
}
