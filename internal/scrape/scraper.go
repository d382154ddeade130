// Package scrape talks to the external email-scraping service used by the
// domains operation as an alternative to per-domain contact discovery. The
// vendor has shipped two incompatible response shapes; each gets its own
// adapter behind the Scraper interface, selected by configuration, so the
// orchestrator stays shape-agnostic.
package scrape

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/mailscout/internal/config"
)

// Scraper extracts email addresses from a set of websites.
type Scraper interface {
	Scrape(ctx context.Context, websites []string) ([]string, error)
}

// APIError is a non-2xx response from the scraping service.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("scrape: HTTP %d: %s", e.StatusCode, e.Body)
}

// scrapeRequest is the body both vendor shapes accept.
type scrapeRequest struct {
	Websites []string `json:"websites"`
}

// New selects the adapter for the configured vendor response shape. Returns
// nil (and no error) when no scraper URL is configured.
func New(cfg config.ScraperConfig) (Scraper, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	hc := &http.Client{Timeout: 60 * time.Second}
	switch cfg.Shape {
	case "", "flat":
		return &FlatScraper{url: cfg.URL, http: hc}, nil
	case "per_site":
		return &PerSiteScraper{url: cfg.URL, http: hc}, nil
	default:
		return nil, eris.Errorf("scrape: unknown vendor shape %q", cfg.Shape)
	}
}

// doPost sends the website list and returns the raw response body.
func doPost(ctx context.Context, hc *http.Client, url string, websites []string) ([]byte, error) {
	buf, err := json.Marshal(scrapeRequest{Websites: websites})
	if err != nil {
		return nil, eris.Wrap(err, "scrape: marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(buf))
	if err != nil {
		return nil, eris.Wrap(err, "scrape: create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := hc.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "scrape: execute request")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "scrape: read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	return data, nil
}
