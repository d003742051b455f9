package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betaradio/nowplaying/internal/domain/onair"
	"github.com/betaradio/nowplaying/internal/domain/stats"
	"github.com/betaradio/nowplaying/internal/infra/config"
)

type stubResolver struct {
	result onair.Result
}

func (s *stubResolver) Resolve(ctx context.Context) onair.Result {
	return s.result
}

type stubSampler struct{}

func (stubSampler) Tick() stats.ListenerStats {
	return stats.ListenerStats{Listeners: 42, Timestamp: time.Now().UTC()}
}

func newTestServer(result onair.Result) *Server {
	cfg := &config.Config{
		Server:    config.ServerConfig{Addr: ":0"},
		Listeners: config.ListenersConfig{PushIntervalSec: 1},
	}
	return New(cfg, &stubResolver{result: result}, stubSampler{})
}

func TestRoutes_Health(t *testing.T) {
	s := newTestServer(onair.Silence{})
	ts := httptest.NewServer(s.router)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "nowplaying", body["service"])
}

func TestRoutes_NowPlayingWithCORS(t *testing.T) {
	s := newTestServer(onair.Song{
		Radio:        "Beta",
		Interpreters: "Queen",
		Title:        "Radio Ga Ga",
		StartTime:    onair.StartTime{Hour: 14, Minute: 5},
		Timestamp:    time.Date(2021, 6, 1, 14, 6, 2, 0, time.UTC),
	})
	ts := httptest.NewServer(s.router)
	defer ts.Close()

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/now-playing", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://widget.example")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Queen", body["interpreters"])
	assert.Equal(t, "14:05:00", body["start_time"])
}

func TestRoutes_Metrics(t *testing.T) {
	s := newTestServer(onair.Silence{})
	ts := httptest.NewServer(s.router)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "go_goroutines")
}
