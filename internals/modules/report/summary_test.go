package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"canary/internals/modules/probe"

	"github.com/rs/zerolog"
)

func TestWriteSummarySkippedWhenUnconfigured(t *testing.T) {
	log := zerolog.Nop()
	r := &Reporter{log: &log}

	// must not panic or create anything
	r.WriteSummary([]probe.Result{{Name: "a"}}, nil)
}

func TestWriteSummaryAppendsMarkdown(t *testing.T) {
	log := zerolog.Nop()
	path := filepath.Join(t.TempDir(), "summary.md")
	r := &Reporter{Path: path, log: &log}

	rt := 0.31
	results := []probe.Result{
		{Name: "ok-site", URL: "https://ok.example", Success: true, ResponseTime: &rt},
		{Name: "bad-site", URL: "https://bad.example", Success: false, Error: "Missing keywords in content: a | b"},
	}

	r.WriteSummary(results, results[1:])

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	for _, want := range []string{
		"Website Monitoring Report",
		"1 site down",
		"| ok-site | [https://ok.example](https://ok.example) | ✅ | 0.31s | None |",
		"❌",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}

	// pipes inside error text must be escaped to keep the table intact
	if !strings.Contains(out, `a \| b`) {
		t.Errorf("expected escaped pipe in error cell:\n%s", out)
	}
}

func TestWriteSummaryAllOperational(t *testing.T) {
	log := zerolog.Nop()
	path := filepath.Join(t.TempDir(), "summary.md")
	r := &Reporter{Path: path, log: &log}

	r.WriteSummary([]probe.Result{{Name: "a", URL: "https://a.example", Success: true}}, nil)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "All systems operational") {
		t.Fatalf("expected operational headline:\n%s", data)
	}
}
