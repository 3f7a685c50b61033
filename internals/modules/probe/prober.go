package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"canary/config"
	"canary/pkg/httpclient"
	"canary/pkg/timeutil"

	"github.com/rs/zerolog"
)

type Prober struct {
	transport     http.RoundTripper
	userAgent     string
	retryAttempts int
	retryDelay    time.Duration
	sleep         func(time.Duration)
	log           *zerolog.Logger
}

func NewProber(settings config.Settings, log *zerolog.Logger) *Prober {
	return &Prober{
		transport:     httpclient.NewTransport(),
		userAgent:     settings.UserAgent,
		retryAttempts: settings.RetryAttempts,
		retryDelay:    settings.RetryDelay(),
		sleep:         time.Sleep,
		log:           log,
	}
}

// Check performs a single GET against the site and classifies the outcome.
// Priority: transport failure, then status mismatch, then missing keywords.
func (p *Prober) Check(site config.Site) Result {

	result := Result{
		Name:      site.Name,
		URL:       site.URL,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	client := &http.Client{
		Transport: p.transport,
		Timeout:   site.Timeout(),
	}

	req, err := http.NewRequest(http.MethodGet, site.URL, nil)
	if err != nil {
		result.Error = fmt.Sprintf("Unexpected error: %s", err)
		return result
	}
	req.Header.Set("User-Agent", p.userAgent)

	start := time.Now()
	resp, err := client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		result.Error = p.classifyError(err, site)
		p.log.Debug().Str("site", site.Name).Str("error", result.Error).Msg("check failed")
		return result
	}
	defer resp.Body.Close()

	statusCode := resp.StatusCode
	responseTime := timeutil.Round2(elapsed.Seconds())
	result.StatusCode = &statusCode
	result.ResponseTime = &responseTime

	if statusCode != site.ExpectedStatus {
		result.Error = fmt.Sprintf("Expected status %d, got %d", site.ExpectedStatus, statusCode)
		return result
	}

	if len(site.ContentKeywords) > 0 {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			result.Error = fmt.Sprintf("Unexpected error: %s", err)
			return result
		}
		if missing := missingKeywords(string(body), site.ContentKeywords); len(missing) > 0 {
			result.Error = fmt.Sprintf("Missing keywords in content: %s", strings.Join(missing, ", "))
			return result
		}
	}

	result.Success = true
	return result
}

// RetryCheck calls Check up to retryAttempts+1 times with a fixed delay
// between attempts. First success wins; otherwise the final attempt's
// result is returned.
func (p *Prober) RetryCheck(site config.Site) Result {
	var result Result

	for attempt := 0; attempt <= p.retryAttempts; attempt++ {
		if attempt > 0 {
			p.log.Info().
				Str("site", site.Name).
				Int("attempt", attempt).
				Int("max_retries", p.retryAttempts).
				Dur("delay", p.retryDelay).
				Msg("retrying check")
			p.sleep(p.retryDelay)
		}

		result = p.Check(site)
		if result.Success {
			return result
		}
	}

	return result
}

func (p *Prober) classifyError(err error, site config.Site) string {

	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return fmt.Sprintf("Timeout after %d seconds", site.TimeoutSeconds)
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return "Connection error - site may be down"
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return "Connection error - site may be down"
	}

	return fmt.Sprintf("Unexpected error: %s", err)
}

func missingKeywords(body string, keywords []string) []string {
	content := strings.ToLower(body)

	var missing []string
	for _, kw := range keywords {
		if !strings.Contains(content, strings.ToLower(kw)) {
			missing = append(missing, kw)
		}
	}
	return missing
}
