package scorer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func newTestClient(url string, apiKey string, timeout time.Duration) *Client {
	return NewClient(ClientConfig{
		Endpoint: url,
		APIKey:   apiKey,
		Timeout:  timeout,
	}, fixtureStore(), newTestLogger())
}

func TestClient_Score_SendsQueryAndItems(t *testing.T) {
	var got scoreRequest
	var contentType, authorization string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		contentType = r.Header.Get("Content-Type")
		authorization = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"matches": [1]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "secret-token", time.Second)
	result := client.Score(context.Background(), "Q4", fixtureStore().All())

	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, "Bearer secret-token", authorization)
	assert.Equal(t, "Q4", got.Query)
	assert.Len(t, got.Items, 3)

	require.Equal(t, StatusAvailable, result.Status)
	assert.Equal(t, KindByIndex, result.Kind)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "Re: Q4 forecast spreadsheet", result.Records[0].Title)
}

func TestClient_Score_NoAPIKeyOmitsAuthorization(t *testing.T) {
	var authorization string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		w.Write([]byte(`{"matches": []}`))
	}))
	defer server.Close()

	result := newTestClient(server.URL, "", time.Second).Score(context.Background(), "q", nil)

	assert.Empty(t, authorization)
	assert.Equal(t, StatusAvailable, result.Status)
	assert.Empty(t, result.Records)
}

func TestClient_Score_Outcomes(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus Status
		wantKind   Kind
		wantCount  int
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"matches": [0]}`, wantStatus: StatusUnavailable},
		{name: "not found", status: http.StatusNotFound, body: ``, wantStatus: StatusUnavailable},
		{name: "malformed json", status: http.StatusOK, body: `{"matches":`, wantStatus: StatusUnavailable},
		{name: "inline results", status: http.StatusOK, body: `{"results": [{"source": "Teams", "title": "x", "snippet": "y", "link": "https://z"}]}`, wantStatus: StatusAvailable, wantKind: KindInline, wantCount: 1},
		{name: "unrecognized shape", status: http.StatusOK, body: `{"ok": true}`, wantStatus: StatusAvailable, wantKind: KindUnrecognized, wantCount: 0},
		{name: "indices out of range", status: http.StatusOK, body: `{"matches": [5, 9]}`, wantStatus: StatusAvailable, wantKind: KindByIndex, wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			result := newTestClient(server.URL, "", time.Second).Score(context.Background(), "q", fixtureStore().All())

			assert.Equal(t, tt.wantStatus, result.Status)
			if tt.wantStatus == StatusUnavailable {
				assert.NotEmpty(t, result.Reason)
				return
			}
			assert.Equal(t, tt.wantKind, result.Kind)
			assert.Len(t, result.Records, tt.wantCount)
		})
	}
}

func TestClient_Score_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	result := newTestClient(server.URL, "", 50*time.Millisecond).Score(context.Background(), "q", nil)

	assert.Equal(t, StatusUnavailable, result.Status)
}

func TestClient_Score_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	result := newTestClient(url, "", time.Second).Score(context.Background(), "q", nil)

	assert.Equal(t, StatusUnavailable, result.Status)
}
