package probe

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"canary/config"

	"github.com/rs/zerolog"
)

func testProber(settings config.Settings) *Prober {
	log := zerolog.Nop()
	return NewProber(settings, &log)
}

func site(url string) config.Site {
	return config.Site{
		Name:           "test-site",
		URL:            url,
		TimeoutSeconds: 5,
		ExpectedStatus: 200,
	}
}

func TestCheckSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != "canary-test/1.0" {
			t.Errorf("unexpected user agent %q", ua)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := testProber(config.Settings{UserAgent: "canary-test/1.0"})
	result := p.Check(site(srv.URL))

	if !result.Success {
		t.Fatalf("expected success, got error %q", result.Error)
	}
	if result.Error != "" {
		t.Errorf("expected no error, got %q", result.Error)
	}
	if result.StatusCode == nil || *result.StatusCode != 200 {
		t.Errorf("expected status code 200, got %v", result.StatusCode)
	}
	if result.ResponseTime == nil {
		t.Errorf("expected a response time on success")
	}
}

func TestCheckUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	s := site(srv.URL)
	// keywords must not be evaluated once the status check fails
	s.ContentKeywords = []string{"definitely-not-in-body"}

	p := testProber(config.Settings{})
	result := p.Check(s)

	if result.Success {
		t.Fatal("expected failure")
	}
	if result.Error != "Expected status 200, got 503" {
		t.Errorf("unexpected error %q", result.Error)
	}
	if result.StatusCode == nil || *result.StatusCode != 503 {
		t.Errorf("expected status code 503, got %v", result.StatusCode)
	}
	if result.ResponseTime == nil {
		t.Errorf("expected a response time when a response was received")
	}
}

func TestCheckMissingKeywords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("some page containing FOO only"))
	}))
	defer srv.Close()

	s := site(srv.URL)
	s.ContentKeywords = []string{"foo", "bar"}

	p := testProber(config.Settings{})
	result := p.Check(s)

	if result.Success {
		t.Fatal("expected failure")
	}
	if result.Error != "Missing keywords in content: bar" {
		t.Errorf("unexpected error %q", result.Error)
	}
}

func TestCheckTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer srv.Close()

	s := site(srv.URL)
	s.TimeoutSeconds = 1

	p := testProber(config.Settings{})
	result := p.Check(s)

	if result.Success {
		t.Fatal("expected failure")
	}
	if result.Error != "Timeout after 1 seconds" {
		t.Errorf("unexpected error %q", result.Error)
	}
	if result.StatusCode != nil || result.ResponseTime != nil {
		t.Errorf("transport failure must leave status code and response time unset")
	}
}

func TestCheckConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	p := testProber(config.Settings{})
	result := p.Check(site(url))

	if result.Success {
		t.Fatal("expected failure")
	}
	if result.Error != "Connection error - site may be down" {
		t.Errorf("unexpected error %q", result.Error)
	}
}

func TestRetryCheckSucceedsAfterRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := testProber(config.Settings{RetryAttempts: 2, RetryDelaySeconds: 5})

	var sleeps int
	p.sleep = func(d time.Duration) {
		if d != 5*time.Second {
			t.Errorf("expected 5s delay, got %s", d)
		}
		sleeps++
	}

	result := p.RetryCheck(site(srv.URL))

	if !result.Success {
		t.Fatalf("expected eventual success, got %q", result.Error)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("expected 3 attempts, got %d", got)
	}
	if sleeps != 2 {
		t.Errorf("expected exactly 2 sleeps, got %d", sleeps)
	}
}

func TestRetryCheckReturnsFinalFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := testProber(config.Settings{RetryAttempts: 1})
	p.sleep = func(time.Duration) {}

	result := p.RetryCheck(site(srv.URL))

	if result.Success {
		t.Fatal("expected failure")
	}
	if !strings.Contains(result.Error, "got 503") {
		t.Errorf("unexpected error %q", result.Error)
	}
}

func TestAverageResponseTime(t *testing.T) {
	rt := func(v float64) *float64 { return &v }

	results := []Result{
		{Success: true, ResponseTime: rt(0.2)},
		{Success: true, ResponseTime: rt(0.4)},
		{Success: false, ResponseTime: rt(10)}, // failures excluded
		{Success: true},                        // no measurement
	}

	if got := AverageResponseTime(results); got != 0.3 {
		t.Errorf("expected 0.3, got %g", got)
	}

	if got := AverageResponseTime(nil); got != 0 {
		t.Errorf("expected 0 for empty input, got %g", got)
	}
}
