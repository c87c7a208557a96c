package metadata

import (
	"context"
	"net/http"
	"time"
)

const internetProbeURL = "https://www.google.com/generate_204"

// ProbeReport summarizes the startup connectivity checks. GoogleReady and
// OpenLibrary gate which sources end up in the session's lookup chain.
type ProbeReport struct {
	Internet    bool
	KeyPresent  bool
	GoogleReady bool
	OpenLibrary bool
}

// Probe runs the startup diagnostics: general internet reachability, API key
// presence, Google Books readiness and Open Library reachability. The
// expensive checks are skipped when their prerequisites already failed.
func Probe(ctx context.Context, ol *OpenLibraryClient, gb *GoogleBooksClient) ProbeReport {
	report := ProbeReport{
		Internet:   probeInternet(ctx),
		KeyPresent: gb.HasKey(),
	}

	if report.Internet && report.KeyPresent {
		report.GoogleReady = gb.Ready(ctx)
	}
	if report.Internet {
		report.OpenLibrary = ol.Ping(ctx) == nil
	}
	return report
}

func probeInternet(ctx context.Context) bool {
	client := &http.Client{Timeout: 5 * time.Second}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, internetProbeURL, nil)
	if err != nil {
		return false
	}

	resp, err := client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode < 400
}
