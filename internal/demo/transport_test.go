package demo

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"likebike_backend/internal/util"
)

func newTestClient(latency time.Duration) (*http.Client, *Store) {
	store := NewStore()
	adapter := NewAdapter(store, zap.NewNop())
	return &http.Client{Transport: NewTransport(adapter, latency)}, store
}

func TestRoundTripServesProfile(t *testing.T) {
	client, _ := newTestClient(0)

	resp, err := client.Get("http://demo.local/users/profile")
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q, want application/json", ct)
	}

	var envelope util.Response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	if envelope.Code != http.StatusOK || envelope.Message != "success" {
		t.Errorf("envelope = code %d message %q, want 200 success", envelope.Code, envelope.Message)
	}
}

func TestRoundTripCarriesBody(t *testing.T) {
	client, store := newTestClient(0)

	req, _ := http.NewRequest(http.MethodPut, "http://demo.local/users/score",
		strings.NewReader(`{"experience_points": 50, "reward_reason": "테스트"}`))
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	if p := store.Profile(); p.ExperiencePoints != 200 {
		t.Errorf("experience = %d, want 200", p.ExperiencePoints)
	}
}

func TestRoundTripNeverErrors(t *testing.T) {
	client, _ := newTestClient(0)

	req, _ := http.NewRequest(http.MethodDelete, "http://demo.local/users/bike-logs/1", nil)
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("unmatched route returned transport error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestRoundTripSimulatesLatency(t *testing.T) {
	client, _ := newTestClient(50 * time.Millisecond)

	start := time.Now()
	resp, err := client.Get("http://demo.local/health")
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	resp.Body.Close()

	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("elapsed = %v, want at least the configured 50ms latency", elapsed)
	}
}
