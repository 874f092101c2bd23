package onedrive

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// testLogger records every message so tests can assert on logging.
type testLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *testLogger) record(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, level+": "+msg)
}

func (l *testLogger) Debug(msg string, args ...any) { l.record("DEBUG", msg) }
func (l *testLogger) Info(msg string, args ...any)  { l.record("INFO", msg) }
func (l *testLogger) Warn(msg string, args ...any)  { l.record("WARN", msg) }
func (l *testLogger) Error(msg string, args ...any) { l.record("ERROR", msg) }

func (l *testLogger) Debugf(format string, args ...any) {
	l.record("DEBUG", fmt.Sprintf(format, args...))
}

func (l *testLogger) Infof(format string, args ...any) {
	l.record("INFO", fmt.Sprintf(format, args...))
}

func (l *testLogger) Warnf(format string, args ...any) {
	l.record("WARN", fmt.Sprintf(format, args...))
}

func (l *testLogger) Errorf(format string, args ...any) {
	l.record("ERROR", fmt.Sprintf(format, args...))
}

// transportCounter hands out transports backed by one client and counts
// how many were acquired and released.
type transportCounter struct {
	client   *http.Client
	acquired atomic.Int32
	released atomic.Int32
}

type countedTransport struct {
	counter *transportCounter
}

func (t *countedTransport) Do(req *http.Request) (*http.Response, error) {
	return t.counter.client.Do(req)
}

func (t *countedTransport) Close() error {
	t.counter.released.Add(1)
	return nil
}

func (c *transportCounter) factory() (Transport, error) {
	c.acquired.Add(1)
	return &countedTransport{counter: c}, nil
}

func (c *transportCounter) balanced(t *testing.T) {
	t.Helper()
	require.Equal(t, c.acquired.Load(), c.released.Load(), "every acquired transport must be released")
}

// newTestOneDrive points a OneDrive at a fake provider served by handler.
func newTestOneDrive(t *testing.T, handler http.HandlerFunc) (*OneDrive, *transportCounter) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	counter := &transportCounter{client: server.Client()}
	od, err := New(Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		Callback:     "https://example.com/callback",
		Endpoint: Endpoint{
			AuthURL:  server.URL + "/authorize",
			TokenURL: server.URL + "/token",
			APIURL:   server.URL,
		},
		NewTransport: counter.factory,
		Logger:       &testLogger{},
	})
	require.NoError(t, err)
	return od, counter
}

// writeJSON serves v as the response body with the given status.
func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// photoPayload returns a complete photo payload.
func photoPayload(id string) map[string]any {
	return map[string]any{
		"id":                   id,
		"name":                 "sunset.jpg",
		"from":                 map[string]any{"id": "user-1", "name": "Test User"},
		"description":          "at the beach",
		"parent_id":            "album-1",
		"size":                 float64(2048),
		"comments_count":       float64(2),
		"comments_enabled":     true,
		"tags_count":           float64(0),
		"tags_enabled":         true,
		"is_embeddable":        true,
		"picture":              "https://example.com/sunset_s.jpg",
		"source":               "https://example.com/sunset.jpg",
		"upload_location":      "https://apis.live.net/v5.0/" + id + "/content/",
		"link":                 "https://example.com/" + id,
		"when_taken":           "2014-04-30T18:00:00+0000",
		"width":                float64(1024),
		"height":               float64(768),
		"type":                 "photo",
		"camera_make":          "Canon",
		"camera_model":         "EOS",
		"focal_length":         35.0,
		"focal_ratio":          2.8,
		"exposure_numerator":   1.0,
		"exposure_denominator": 250.0,
		"shared_with":          map[string]any{"access": "Just me"},
		"created_time":         "2014-05-01T10:15:00+0000",
		"updated_time":         "2014-05-02T10:15:00+0000",
		"client_updated_time":  "2014-05-03T10:15:00+0000",
		"images": []any{
			map[string]any{"height": 768.0, "width": 1024.0, "source": "https://example.com/full.jpg", "type": "full"},
			map[string]any{"height": 450.0, "width": 600.0, "source": "https://example.com/normal.jpg", "type": "normal"},
			map[string]any{"height": 96.0, "width": 128.0, "source": "https://example.com/thumb.jpg", "type": "thumbnail"},
		},
	}
}

func albumPayload(id string) map[string]any {
	return map[string]any{
		"id":                  id,
		"name":                "Holidays",
		"description":         nil,
		"parent_id":           "folder.root",
		"upload_location":     "https://apis.live.net/v5.0/" + id + "/files/",
		"is_embeddable":       true,
		"count":               float64(3),
		"link":                "https://example.com/" + id,
		"type":                "album",
		"shared_with":         map[string]any{"access": "Friends"},
		"created_time":        "2014-05-01T10:15:00+0000",
		"updated_time":        "2014-05-01T10:15:00+0000",
		"client_updated_time": "2014-05-01T10:15:00+0000",
	}
}
