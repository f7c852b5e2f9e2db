package datasource

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/solblist-api/internal/platform/logging"
	"github.com/riskibarqy/solblist-api/internal/platform/resilience"
	"github.com/riskibarqy/solblist-api/internal/usecase"
)

const levelsJSON = `[
  {"levelId": "cosmic-cyclone", "rank": 1, "name": "Cosmic Cyclone", "videoUrl": "https://youtu.be/Xq2Jd1sK9aA",
   "victors": [{"name": "Aurora", "completionUrl": "https://youtu.be/a", "completionDate": "2024-03-02"}]},
  {"levelId": "first-light", "rank": 16, "name": "First Light", "victors": []}
]`

func newTestFetcher(retries int, breaker resilience.CircuitBreakerConfig) *Fetcher {
	return NewFetcher(Config{
		Timeout:        2 * time.Second,
		MaxRetries:     retries,
		Logger:         logging.NewNop(),
		CircuitBreaker: breaker,
	})
}

func TestFetcher_Levels_FromURL(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(levelsJSON))
	}))
	defer server.Close()

	levels, err := newTestFetcher(0, resilience.CircuitBreakerConfig{}).Levels(context.Background(), server.URL+"/data.json")
	if err != nil {
		t.Fatalf("fetch levels: %v", err)
	}
	if len(levels) != 2 || levels[0].LevelID != "cosmic-cyclone" || levels[0].Victors[0].CompletionDate != "2024-03-02" {
		t.Fatalf("unexpected levels: %+v", levels)
	}
}

func TestFetcher_RetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(levelsJSON))
	}))
	defer server.Close()

	levels, err := newTestFetcher(2, resilience.CircuitBreakerConfig{}).Levels(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("fetch levels: %v", err)
	}
	if len(levels) != 2 || calls.Load() != 2 {
		t.Fatalf("expected one retry, calls=%d levels=%d", calls.Load(), len(levels))
	}
}

func TestFetcher_DoesNotRetryClientError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := newTestFetcher(3, resilience.CircuitBreakerConfig{}).Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatalf("expected error for 404")
	}
	if calls.Load() != 1 {
		t.Fatalf("client errors must not be retried, calls=%d", calls.Load())
	}
}

func TestFetcher_CircuitOpensAfterFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	fetcher := newTestFetcher(0, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})

	for i := 0; i < 2; i++ {
		if _, err := fetcher.Fetch(context.Background(), server.URL); err == nil {
			t.Fatalf("attempt %d: expected failure", i)
		}
	}

	_, err := fetcher.Fetch(context.Background(), server.URL)
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable once open, got %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("open circuit must not reach the server, calls=%d", calls.Load())
	}
}

func TestFetcher_LocalYAMLFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "changelog.yaml")
	content := "versionChanges:\n  - version: 1.0.0\n    date: \"2024-12-10\"\n    changes: [Initial release]\nlistChanges:\n  - date: \"2025-01-20\"\n    changes: [Moved]\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := newTestFetcher(0, resilience.CircuitBreakerConfig{}).Changelogs(context.Background(), path)
	if err != nil {
		t.Fatalf("read changelog: %v", err)
	}
	if len(got.VersionChanges) != 1 || got.VersionChanges[0].Version != "1.0.0" || len(got.ListChanges) != 1 {
		t.Fatalf("unexpected changelog: %+v", got)
	}
}

func TestFetcher_Errors(t *testing.T) {
	t.Parallel()

	fetcher := newTestFetcher(0, resilience.CircuitBreakerConfig{})
	if _, err := fetcher.Fetch(context.Background(), "  "); err == nil {
		t.Fatalf("expected error for blank source")
	}
	if _, err := fetcher.Fetch(context.Background(), filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}

	var target []int
	if err := Decode("data.json", []byte("{not json"), &target); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestFetcher_BodiesOutliveThePooledBuffer(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("body-for" + r.URL.Path))
	}))
	defer server.Close()

	fetcher := newTestFetcher(0, resilience.CircuitBreakerConfig{})
	first, err := fetcher.Fetch(context.Background(), server.URL+"/first")
	if err != nil {
		t.Fatalf("fetch first: %v", err)
	}
	second, err := fetcher.Fetch(context.Background(), server.URL+"/second-longer")
	if err != nil {
		t.Fatalf("fetch second: %v", err)
	}
	if string(first) != "body-for/first" || string(second) != "body-for/second-longer" {
		t.Fatalf("unexpected bodies: %q %q", first, second)
	}
}
