package server_test

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"TheoVia/internal/config"
	"TheoVia/internal/server"
)

func newTestClient(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()

	cfg := config.Config{
		Port:       "0",
		VisitorTTL: time.Minute,
	}
	ts := httptest.NewServer(server.New(cfg).Handler())
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return ts, &http.Client{Jar: jar}
}

func getBody(t *testing.T, client *http.Client, url string) string {
	t.Helper()

	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(body)
}

func TestLandingPageServes(t *testing.T) {
	ts, client := newTestClient(t)

	resp, err := client.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("Content-Type = %q, want text/html", ct)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	for _, want := range []string{`id="hero"`, `id="pricing"`, `id="faq-0"`, "01:24:59"} {
		if !strings.Contains(string(body), want) {
			t.Errorf("landing page missing %s", want)
		}
	}
}

// The stylesheet mentions is-open too, so assertions match the end of
// the rendered class attribute instead of the bare class name.
const faqOpenMarker = `bg-white is-open"`

func TestFAQToggleRoundTrip(t *testing.T) {
	ts, client := newTestClient(t)

	if body := getBody(t, client, ts.URL+"/"); strings.Contains(body, faqOpenMarker) {
		t.Fatal("an FAQ item renders open before any toggle")
	}

	// The toggle redirects back to the page; the client follows it with
	// the visitor cookie attached.
	resp, err := client.PostForm(ts.URL+"/faq/0/toggle", url.Values{})
	if err != nil {
		t.Fatalf("POST toggle: %v", err)
	}
	resp.Body.Close()

	body := getBody(t, client, ts.URL+"/")
	if !strings.Contains(body, faqOpenMarker) {
		t.Fatal("FAQ item not open after toggle")
	}
	if strings.Count(body, faqOpenMarker) != 1 {
		t.Fatalf("%d items open after one toggle, want 1", strings.Count(body, faqOpenMarker))
	}

	resp, err = client.PostForm(ts.URL+"/faq/0/toggle", url.Values{})
	if err != nil {
		t.Fatalf("POST second toggle: %v", err)
	}
	resp.Body.Close()

	if body := getBody(t, client, ts.URL+"/"); strings.Contains(body, faqOpenMarker) {
		t.Fatal("FAQ item still open after double toggle")
	}
}

func TestFAQToggleIgnoresBadIndex(t *testing.T) {
	ts, client := newTestClient(t)

	resp, err := client.PostForm(ts.URL+"/faq/99/toggle", url.Values{})
	if err != nil {
		t.Fatalf("POST toggle: %v", err)
	}
	resp.Body.Close()

	if body := getBody(t, client, ts.URL+"/"); strings.Contains(body, faqOpenMarker) {
		t.Fatal("out-of-range toggle opened an item")
	}
}

func TestVisibilityBeaconSettlesSection(t *testing.T) {
	ts, client := newTestClient(t)

	if body := getBody(t, client, ts.URL+"/"); strings.Contains(body, `class="section-reveal is-revealed"`) {
		t.Fatal("a section renders settled before any beacon")
	}

	resp, err := client.Post(ts.URL+"/api/visibility/pricing", "", nil)
	if err != nil {
		t.Fatalf("POST beacon: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("beacon status = %d, want 204", resp.StatusCode)
	}

	body := getBody(t, client, ts.URL+"/")
	if !strings.Contains(body, `class="section-reveal is-revealed" data-reveal="pricing"`) {
		t.Fatal("pricing section not settled after its beacon")
	}
	if strings.Contains(body, `class="section-reveal is-revealed" data-reveal="hero"`) {
		t.Fatal("beacon for pricing settled the hero section too")
	}
}

func TestHealthEndpoint(t *testing.T) {
	ts, client := newTestClient(t)

	resp, err := client.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != `{"status":"ok"}` {
		t.Fatalf("health = %d %q", resp.StatusCode, body)
	}
}
