package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"holohome/internal/models"
)

func testSummary() models.HomeSummary {
	return models.HomeSummary{
		Security: models.SecurityDisarmed,
		Network:  models.NetworkOnline,
		Rooms: []models.RoomSummary{
			{Name: "Lounge", LightsOn: true, Devices: []string{"TV: active"}},
		},
	}
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "   "})
	require.Error(t, err)
}

func TestGenerate_SendsSnapshotAndQuery(t *testing.T) {
	var gotPath, gotAuth, gotContentType string
	var gotBody map[string]json.RawMessage

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]string{"reply": "All quiet."})
	}))
	defer srv.Close()

	client, err := NewClient(Config{BaseURL: srv.URL + "/", APIKey: "sk-test"})
	require.NoError(t, err)

	reply, err := client.Generate(context.Background(), testSummary(), "how are things?")
	require.NoError(t, err)
	require.Equal(t, "All quiet.", reply)

	require.Equal(t, "/v1/generate", gotPath)
	require.Equal(t, "Bearer sk-test", gotAuth)
	require.Equal(t, "application/json", gotContentType)
	require.Contains(t, gotBody, "snapshot")
	require.JSONEq(t, `"how are things?"`, string(gotBody["query"]))
}

func TestGenerate_NoAuthHeaderWithoutKey(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]string{"reply": "ok"})
	}))
	defer srv.Close()

	client, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), testSummary(), "q")
	require.NoError(t, err)
	require.Empty(t, gotAuth)
}

func TestGenerate_NonOKStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), testSummary(), "q")
	require.ErrorContains(t, err, "unexpected status 503")
}

func TestGenerate_EmptyReplyIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"reply": "   "})
	}))
	defer srv.Close()

	client, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), testSummary(), "q")
	require.ErrorContains(t, err, "empty reply")
}

func TestGenerate_MalformedBodyIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), testSummary(), "q")
	require.ErrorContains(t, err, "decode response")
}
