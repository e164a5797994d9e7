package promo_test

import (
	"bufio"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"TheoVia/internal/handlers/promo"
)

func TestCountdownStreamEmitsDecreasingValues(t *testing.T) {
	ts := httptest.NewServer(promo.CountdownStream(2 * time.Millisecond))
	defer ts.Close()

	resp, err := http.Get(ts.URL)
	if err != nil {
		t.Fatalf("GET stream: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("Content-Type = %q, want text/event-stream", ct)
	}

	want := []string{"data: 01:24:59", "data: 01:24:58", "data: 01:24:57"}
	scanner := bufio.NewScanner(resp.Body)

	got := make([]string, 0, len(want))
	for scanner.Scan() && len(got) < len(want) {
		line := scanner.Text()
		if line == "" {
			continue
		}
		got = append(got, line)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("reading stream: %v", err)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCountdownStreamEndsWithClient(t *testing.T) {
	ts := httptest.NewServer(promo.CountdownStream(2 * time.Millisecond))
	defer ts.Close()

	resp, err := http.Get(ts.URL)
	if err != nil {
		t.Fatalf("GET stream: %v", err)
	}

	// Dropping the connection cancels the request context; the server
	// side must wind down its ticker rather than stream forever. Close
	// and let httptest's shutdown (which waits on handlers) prove it.
	resp.Body.Close()
}
